package llmclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"research-graph/config"
	apperrors "research-graph/errors"

	"go.uber.org/zap"
)

// ErrContextWindowExceeded is returned when the model reports the prompt
// exceeds the available context size.
var ErrContextWindowExceeded = errors.New("context window exceeded")

// completionRequest mirrors llama.cpp's /completion schema.
type completionRequest struct {
	Prompt        string   `json:"prompt"`
	NPredict      int      `json:"n_predict"`
	Temperature   float64  `json:"temperature"`
	RepeatPenalty float64  `json:"repeat_penalty"`
	Stream        bool     `json:"stream"`
	Stop          []string `json:"stop,omitempty"`
}

type completionResponse struct {
	Content string `json:"content"`
}

// Embedding request/response mirror llama.cpp's expected schema
type embeddingRequest struct {
	Content string `json:"content"`
}

type embeddingResponse []struct {
	Embedding [][]float32 `json:"embedding"`
}

type Client struct {
	cfg        *config.Config
	httpClient *http.Client
	logger     *zap.Logger
}

func New(cfg *config.Config, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.LLMRequestTimeout},
		logger:     logger,
	}
}

// Complete runs a single non-streaming text completion on the main model
// with the configured sampling parameters.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	reqBody := completionRequest{
		Prompt:        prompt,
		NPredict:      c.cfg.MaxNewTokens,
		Temperature:   c.cfg.Temperature,
		RepeatPenalty: c.cfg.RepeatPenalty,
	}
	url := fmt.Sprintf("%s/completion", strings.TrimRight(c.cfg.MainLLMHost, "/"))

	body, err := c.post(ctx, url, reqBody, "completion")
	if err != nil {
		return "", err
	}

	var cr completionResponse
	if err := json.Unmarshal(body, &cr); err != nil {
		return "", fmt.Errorf("decode completion response: %w", err)
	}
	return cr.Content, nil
}

// Embed generates an embedding vector for the provided document using the
// llama.cpp-compatible embeddings endpoint.
func (c *Client) Embed(ctx context.Context, doc string) ([]float32, error) {
	url := fmt.Sprintf("%s/v1/embeddings", strings.TrimRight(c.cfg.EmbeddingLLMHost, "/"))

	body, err := c.post(ctx, url, embeddingRequest{Content: doc}, "embedding")
	if err != nil {
		return nil, err
	}

	var er embeddingResponse
	if err := json.Unmarshal(body, &er); err != nil {
		return nil, fmt.Errorf("decode embedding response: %w", err)
	}
	if len(er) == 0 || len(er[0].Embedding) == 0 {
		return nil, fmt.Errorf("embedding response was empty")
	}
	return er[0].Embedding[0], nil
}

// post sends payload as JSON and returns the body of a 200 response.
// 503 means the model is still loading and is retried with backoff.
func (c *Client) post(ctx context.Context, url string, payload any, what string) ([]byte, error) {
	jsonBody, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal %s request: %w", what, err)
	}

	attempts := c.cfg.MaxRetries
	if attempts < 1 {
		attempts = 1
	}

	var resp *http.Response
	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonBody))
		if err != nil {
			return nil, fmt.Errorf("create %s request: %w", what, err)
		}
		req.Header.Set("Content-Type", "application/json")

		r, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = err
			// Do not retry on context cancellation/deadline
			if ctx.Err() != nil {
				break
			}
			continue
		}

		if r.StatusCode == http.StatusServiceUnavailable {
			io.Copy(io.Discard, r.Body)
			r.Body.Close()
			lastErr = fmt.Errorf("%s server status %s", what, r.Status)
			c.logger.Warn("Model loading, retrying",
				zap.String("endpoint", what),
				zap.Int("attempt", attempt+1))
			if err := c.backoffSleep(ctx, attempt); err != nil {
				lastErr = err
				break
			}
			continue
		}

		resp = r
		break
	}
	if resp == nil {
		return nil, fmt.Errorf("%w: no response from %s server: %w", apperrors.ErrServiceUnavailable, what, lastErr)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s response: %w", what, err)
	}
	if resp.StatusCode != http.StatusOK {
		if strings.Contains(string(bodyBytes), "exceeds the available context size") {
			return nil, ErrContextWindowExceeded
		}
		return nil, fmt.Errorf("%s server status %s: %s", what, resp.Status, string(bodyBytes))
	}
	return bodyBytes, nil
}

// backoffSleep waits base*2^attempt, capped and jittered. It returns early
// with the context error when ctx ends first.
func (c *Client) backoffSleep(ctx context.Context, attempt int) error {
	base := c.cfg.RetryDelaySeconds
	if base <= 0 {
		base = time.Second
	}
	d := base * time.Duration(1<<attempt)
	maxWait := c.cfg.LLMBackoffMax
	if maxWait > 0 && d > maxWait {
		d = maxWait
	}
	jitterRatio := c.cfg.LLMBackoffJitter
	if jitterRatio < 0 || jitterRatio > 1 {
		jitterRatio = 0.1
	}
	jitter := time.Duration(float64(d) * jitterRatio)
	d = d - jitter + time.Duration(time.Now().UnixNano()%int64(2*jitter+1))

	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
