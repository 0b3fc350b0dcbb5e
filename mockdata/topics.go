package mockdata

// topics lists the fixture corpus in a fixed order. The first topic is the
// fallback for queries that match nothing.
var topics = []Topic{
	{
		Name: "photosynthesis",
		Papers: []Fixture{
			{
				Title:    "C4 Photosynthesis in Tropical Grasses: Mechanisms and Evolution",
				Summary:  "This paper explores the evolutionary adaptations of C4 photosynthesis in tropical grasses, examining the biochemical pathways that concentrate CO2 around Rubisco to reduce photorespiration. The study demonstrates efficiency advantages in warm climates and discusses the genetic modifications required for C4 pathway development.",
				Keywords: []string{"C4 plants", "carbon fixation", "evolution", "tropical ecology"},
			},
			{
				Title:    "Light-Dependent Reactions in Thylakoid Membranes",
				Summary:  "A comprehensive review of the light-dependent reactions occurring in the thylakoid membranes of chloroplasts. This research details the electron transport chain, photosystem I and II complexes, and ATP synthesis mechanisms that convert light energy into chemical energy.",
				Keywords: []string{"chloroplast", "electron transport", "photosystems", "ATP synthesis"},
			},
			{
				Title:    "CAM Photosynthesis: Adaptation to Arid Environments",
				Summary:  "Analysis of Crassulacean Acid Metabolism as an evolutionary response to water scarcity in desert plants. The paper examines temporal separation of carbon fixation and the Calvin cycle, allowing plants to minimize water loss while maintaining photosynthetic efficiency.",
				Keywords: []string{"CAM metabolism", "desert plants", "water conservation", "adaptation"},
			},
			{
				Title:    "Rubisco: Structure, Function, and Evolutionary Engineering",
				Summary:  "Detailed examination of ribulose-1,5-bisphosphate carboxylase/oxygenase (Rubisco), the most abundant protein on Earth. This study investigates its dual carboxylase and oxygenase activities, structural analysis, and attempts to engineer more efficient variants for improved crop productivity.",
				Keywords: []string{"Rubisco", "carbon fixation", "protein engineering", "crop improvement"},
			},
			{
				Title:    "Chlorophyll Biosynthesis and Light Absorption Mechanisms",
				Summary:  "Investigation of chlorophyll biosynthetic pathways and the molecular mechanisms of light absorption in photosynthetic organisms. The research covers antenna complexes, energy transfer, and the role of accessory pigments in expanding the absorption spectrum.",
				Keywords: []string{"chlorophyll", "light harvesting", "antenna complexes", "pigments"},
			},
			{
				Title:    "Carbon Fixation Pathways: Comparative Analysis",
				Summary:  "Comparative study of C3, C4, and CAM carbon fixation pathways across diverse plant species. The paper analyzes metabolic efficiency, environmental adaptations, and evolutionary pressures that led to pathway diversification.",
				Keywords: []string{"carbon fixation", "metabolic pathways", "plant evolution", "photosynthetic efficiency"},
			},
			{
				Title:    "Photorespiration and Its Role in Plant Metabolism",
				Summary:  "Examination of photorespiration as a wasteful process competing with photosynthesis at high temperatures. The study explores its metabolic costs, evolutionary origins, and potential strategies for reducing its impact on crop yields.",
				Keywords: []string{"photorespiration", "metabolic cost", "temperature effects", "crop productivity"},
			},
			{
				Title:    "Artificial Photosynthesis for Renewable Energy",
				Summary:  "Research on bio-inspired artificial photosynthesis systems for sustainable energy production. The paper discusses water-splitting catalysts, light-harvesting materials, and attempts to replicate natural photosynthetic efficiency in synthetic systems.",
				Keywords: []string{"artificial photosynthesis", "renewable energy", "catalysts", "biomimicry"},
			},
		},
	},
	{
		Name: "quantum computing",
		Papers: []Fixture{
			{
				Title:    "Quantum Entanglement in Multi-Qubit Systems",
				Summary:  "Investigation of entanglement properties in quantum computing systems with multiple qubits. This research explores Bell states, EPR pairs, and the role of entanglement in quantum algorithms and quantum communication protocols.",
				Keywords: []string{"entanglement", "qubits", "quantum states", "Bell inequality"},
			},
			{
				Title:    "Superconducting Qubits for Fault-Tolerant Quantum Computing",
				Summary:  "Analysis of superconducting circuit architectures for building scalable, fault-tolerant quantum computers. The paper examines transmon qubits, error correction codes, and decoherence mitigation strategies.",
				Keywords: []string{"superconducting qubits", "error correction", "decoherence", "scalability"},
			},
			{
				Title:    "Quantum Algorithms: From Shor to Variational Approaches",
				Summary:  "Comprehensive review of quantum algorithms ranging from Shor's factoring algorithm to modern variational quantum eigensolvers. The study compares computational complexity, resource requirements, and practical applications.",
				Keywords: []string{"quantum algorithms", "Shor algorithm", "VQE", "computational complexity"},
			},
			{
				Title:    "Topological Quantum Computing with Anyons",
				Summary:  "Exploration of topological approaches to quantum computing using anyonic excitations in two-dimensional systems. The research discusses Majorana fermions, braiding operations, and inherent fault tolerance.",
				Keywords: []string{"topological computing", "anyons", "Majorana fermions", "braiding"},
			},
			{
				Title:    "Quantum Error Correction: Surface Codes and Beyond",
				Summary:  "Detailed analysis of quantum error correction techniques, focusing on surface codes and their implementation in near-term quantum devices. The paper examines threshold theorems and overhead costs.",
				Keywords: []string{"error correction", "surface codes", "threshold theorem", "fault tolerance"},
			},
			{
				Title:    "Ion Trap Quantum Computers: Architecture and Scalability",
				Summary:  "Study of trapped-ion quantum computing platforms, analyzing gate operations, coherence times, and approaches to scaling up to hundreds of qubits while maintaining high fidelity.",
				Keywords: []string{"ion traps", "quantum gates", "coherence", "scalability"},
			},
			{
				Title:    "Quantum Machine Learning: Hybrid Classical-Quantum Approaches",
				Summary:  "Investigation of hybrid quantum-classical algorithms for machine learning applications. The research covers parameterized quantum circuits, gradient-based optimization, and potential quantum advantages.",
				Keywords: []string{"quantum ML", "hybrid algorithms", "parameterized circuits", "optimization"},
			},
		},
	},
	{
		Name: "machine learning",
		Papers: []Fixture{
			{
				Title:    "Deep Neural Networks: Architecture and Optimization",
				Summary:  "Comprehensive analysis of deep neural network architectures, examining convolutional, recurrent, and transformer-based models. The paper discusses optimization techniques, regularization methods, and training strategies for large-scale networks.",
				Keywords: []string{"deep learning", "neural networks", "optimization", "architectures"},
			},
			{
				Title:    "Transfer Learning in Computer Vision Applications",
				Summary:  "Study of transfer learning methodologies for adapting pre-trained models to new vision tasks. The research explores fine-tuning strategies, domain adaptation, and few-shot learning techniques.",
				Keywords: []string{"transfer learning", "computer vision", "fine-tuning", "domain adaptation"},
			},
			{
				Title:    "Reinforcement Learning: From Q-Learning to Deep RL",
				Summary:  "Evolution of reinforcement learning algorithms from classical Q-learning to modern deep RL approaches. The paper analyzes policy gradient methods, actor-critic architectures, and applications in robotics and game playing.",
				Keywords: []string{"reinforcement learning", "Q-learning", "policy gradients", "deep RL"},
			},
			{
				Title:    "Attention Mechanisms and Transformer Models",
				Summary:  "Detailed examination of attention mechanisms in neural networks, culminating in transformer architectures. The research covers self-attention, multi-head attention, and applications in NLP and vision tasks.",
				Keywords: []string{"attention", "transformers", "self-attention", "NLP"},
			},
			{
				Title:    "Generative Adversarial Networks for Image Synthesis",
				Summary:  "Investigation of GAN architectures for generating realistic images and other data modalities. The paper discusses training stability, mode collapse, and various GAN variants for different applications.",
				Keywords: []string{"GANs", "generative models", "image synthesis", "training dynamics"},
			},
			{
				Title:    "Explainable AI: Interpretability in Deep Learning",
				Summary:  "Research on methods for interpreting and explaining decisions made by deep learning models. The study covers attention visualization, saliency maps, and post-hoc explanation techniques.",
				Keywords: []string{"explainable AI", "interpretability", "attention visualization", "transparency"},
			},
			{
				Title:    "Few-Shot Learning and Meta-Learning Approaches",
				Summary:  "Analysis of learning strategies that enable models to generalize from limited training examples. The paper examines metric learning, prototypical networks, and model-agnostic meta-learning.",
				Keywords: []string{"few-shot learning", "meta-learning", "metric learning", "generalization"},
			},
		},
	},
	{
		Name: "climate change",
		Papers: []Fixture{
			{
				Title:    "Global Temperature Trends and Greenhouse Gas Emissions",
				Summary:  "Analysis of long-term global temperature records and their correlation with anthropogenic greenhouse gas emissions. The study uses climate models to project future warming scenarios under different emission pathways.",
				Keywords: []string{"temperature trends", "greenhouse gases", "climate models", "emissions"},
			},
			{
				Title:    "Arctic Ice Melt and Sea Level Rise Projections",
				Summary:  "Investigation of accelerating Arctic ice loss and its contribution to global sea level rise. The research combines satellite observations with ice sheet models to project future coastal impacts.",
				Keywords: []string{"Arctic ice", "sea level rise", "ice sheets", "coastal impacts"},
			},
			{
				Title:    "Ocean Acidification and Marine Ecosystem Impacts",
				Summary:  "Study of increasing ocean acidity due to CO2 absorption and its effects on marine calcifying organisms. The paper examines coral reefs, shellfish, and broader ecosystem disruptions.",
				Keywords: []string{"ocean acidification", "marine ecosystems", "coral reefs", "CO2 absorption"},
			},
			{
				Title:    "Extreme Weather Events: Attribution and Trends",
				Summary:  "Analysis of trends in extreme weather phenomena including hurricanes, droughts, and heat waves. The research uses attribution science to quantify climate change's role in specific events.",
				Keywords: []string{"extreme weather", "attribution", "hurricanes", "droughts"},
			},
			{
				Title:    "Carbon Sequestration Technologies and Natural Solutions",
				Summary:  "Comprehensive review of carbon capture and storage technologies alongside nature-based solutions like reforestation. The study evaluates effectiveness, costs, and scalability of various approaches.",
				Keywords: []string{"carbon sequestration", "CCS", "reforestation", "climate solutions"},
			},
			{
				Title:    "Climate Feedback Loops: Amplification and Tipping Points",
				Summary:  "Examination of positive and negative feedback mechanisms in the climate system. The paper identifies critical tipping points and analyzes permafrost thaw, albedo changes, and methane release.",
				Keywords: []string{"feedback loops", "tipping points", "permafrost", "methane"},
			},
		},
	},
	{
		Name: "neuroscience",
		Papers: []Fixture{
			{
				Title:    "Neuroplasticity and Synaptic Modification Mechanisms",
				Summary:  "Investigation of brain plasticity at molecular and cellular levels. The research examines long-term potentiation, synaptic pruning, and activity-dependent remodeling throughout development and learning.",
				Keywords: []string{"neuroplasticity", "synaptic plasticity", "LTP", "learning"},
			},
			{
				Title:    "Neural Networks and Brain Connectivity Mapping",
				Summary:  "Study of structural and functional connectivity in the human brain using advanced neuroimaging. The paper analyzes network topology, hub regions, and connectivity patterns in health and disease.",
				Keywords: []string{"brain networks", "connectivity", "neuroimaging", "topology"},
			},
			{
				Title:    "Neurotransmitter Systems and Behavioral Regulation",
				Summary:  "Comprehensive analysis of major neurotransmitter systems including dopamine, serotonin, and glutamate. The research links molecular mechanisms to behavior, mood regulation, and cognitive functions.",
				Keywords: []string{"neurotransmitters", "dopamine", "serotonin", "behavior"},
			},
			{
				Title:    "Memory Formation and Consolidation in the Hippocampus",
				Summary:  "Detailed examination of hippocampal circuits involved in encoding and consolidating episodic memories. The study investigates place cells, replay mechanisms, and interactions with cortical regions.",
				Keywords: []string{"memory", "hippocampus", "consolidation", "place cells"},
			},
			{
				Title:    "Brain-Computer Interfaces: From Neurons to Algorithms",
				Summary:  "Research on direct brain-to-computer communication systems. The paper covers neural signal decoding, machine learning applications, and clinical implementations for paralysis and communication disorders.",
				Keywords: []string{"BCI", "neural decoding", "neuroprosthetics", "machine learning"},
			},
			{
				Title:    "Cortical Processing of Visual Information",
				Summary:  "Investigation of hierarchical visual processing from retina through primary visual cortex to higher association areas. The research examines receptive fields, feature detection, and object recognition mechanisms.",
				Keywords: []string{"visual cortex", "processing hierarchy", "receptive fields", "object recognition"},
			},
		},
	},
	{
		Name: "artificial intelligence",
		Papers: []Fixture{
			{
				Title:    "Large Language Models: Architecture and Scaling Laws",
				Summary:  "Analysis of transformer-based language models and their scaling properties. The research examines the relationship between model size, training data, and emergent capabilities in models like GPT and BERT.",
				Keywords: []string{"LLMs", "transformers", "scaling laws", "language models"},
			},
			{
				Title:    "AI Safety and Alignment: Challenges and Approaches",
				Summary:  "Study of techniques for ensuring AI systems behave according to human values and intentions. The paper discusses reward modeling, interpretability, and robustness in increasingly capable AI systems.",
				Keywords: []string{"AI safety", "alignment", "robustness", "interpretability"},
			},
			{
				Title:    "Multi-Modal Learning: Vision, Language, and Beyond",
				Summary:  "Investigation of AI models that integrate multiple modalities including vision, language, and audio. The research covers cross-modal attention, contrastive learning, and unified representation spaces.",
				Keywords: []string{"multi-modal", "vision-language", "contrastive learning", "representations"},
			},
			{
				Title:    "Neural Architecture Search and AutoML",
				Summary:  "Automated methods for discovering optimal neural network architectures. The paper examines evolutionary algorithms, reinforcement learning approaches, and efficient search strategies.",
				Keywords: []string{"NAS", "AutoML", "architecture search", "optimization"},
			},
			{
				Title:    "Continual Learning: Overcoming Catastrophic Forgetting",
				Summary:  "Research on enabling neural networks to learn new tasks without forgetting previously learned information. The study covers rehearsal methods, regularization approaches, and dynamic architectures.",
				Keywords: []string{"continual learning", "catastrophic forgetting", "lifelong learning", "plasticity"},
			},
			{
				Title:    "Graph Neural Networks for Relational Reasoning",
				Summary:  "Analysis of neural architectures designed for graph-structured data. The paper examines message passing, attention mechanisms on graphs, and applications in molecular property prediction and social networks.",
				Keywords: []string{"GNNs", "graph learning", "relational reasoning", "message passing"},
			},
		},
	},
	{
		Name: "genetics",
		Papers: []Fixture{
			{
				Title:    "CRISPR-Cas9 Gene Editing: Mechanisms and Applications",
				Summary:  "Comprehensive review of CRISPR-Cas9 technology for precise genome editing. The research covers molecular mechanisms, off-target effects, and therapeutic applications in genetic diseases.",
				Keywords: []string{"CRISPR", "gene editing", "genome engineering", "therapeutics"},
			},
			{
				Title:    "Epigenetics: DNA Methylation and Histone Modifications",
				Summary:  "Study of heritable changes in gene expression without alterations to DNA sequence. The paper examines methylation patterns, chromatin remodeling, and epigenetic inheritance across generations.",
				Keywords: []string{"epigenetics", "DNA methylation", "chromatin", "gene expression"},
			},
			{
				Title:    "Single-Cell RNA Sequencing: Revealing Cellular Heterogeneity",
				Summary:  "Investigation of single-cell transcriptomics technologies and their applications in understanding tissue complexity. The research covers clustering methods, trajectory analysis, and cell type identification.",
				Keywords: []string{"scRNA-seq", "transcriptomics", "cell heterogeneity", "clustering"},
			},
			{
				Title:    "Population Genetics and Human Evolution",
				Summary:  "Analysis of genetic variation across human populations and evolutionary history. The paper uses whole-genome sequencing to trace migrations, admixture events, and selection pressures.",
				Keywords: []string{"population genetics", "human evolution", "genetic variation", "selection"},
			},
			{
				Title:    "Gene Regulatory Networks and Transcription Factors",
				Summary:  "Examination of complex regulatory networks controlling gene expression. The research models transcription factor binding, enhancer activity, and network dynamics during development.",
				Keywords: []string{"gene regulation", "transcription factors", "regulatory networks", "development"},
			},
			{
				Title:    "Cancer Genomics: Mutations and Driver Genes",
				Summary:  "Study of somatic mutations in cancer genomes and identification of driver genes. The paper analyzes mutational signatures, clonal evolution, and implications for targeted therapies.",
				Keywords: []string{"cancer genomics", "somatic mutations", "driver genes", "evolution"},
			},
		},
	},
}

var relatedTopics = map[string][]string{
	"photosynthesis": {"climate change", "genetics"},
	"quantum computing": {"artificial intelligence", "machine learning"},
	"machine learning": {"artificial intelligence", "neuroscience"},
	"climate change": {"photosynthesis", "genetics"},
	"neuroscience": {"artificial intelligence", "machine learning"},
	"artificial intelligence": {"machine learning", "neuroscience", "quantum computing"},
	"genetics": {"neuroscience", "photosynthesis"},
}
