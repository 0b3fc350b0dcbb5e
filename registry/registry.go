// Package registry keeps the process-lifetime paper and session state behind
// bounded LRU caches.
package registry

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru"
	"go.uber.org/zap"
)

const (
	DefaultPaperCapacity   = 10000
	DefaultSessionCapacity = 1000
)

// PaperRecord is what the registry remembers about a paper id.
type PaperRecord struct {
	SessionID string
	Link      string
	Title     string
	Query     string
	Summary   string
}

// TopResult is one entry of a session's ranked result list.
type TopResult struct {
	Title    string
	Link     string
	Distance float64
}

// Message is one turn of a session's chat history.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Session holds the query context that chat turns are grounded on.
// Identity fields are fixed at creation; history is guarded by mu.
type Session struct {
	ID         string
	OrigQuery  string
	Summary    string
	TopResults []TopResult
	CreatedAt  time.Time

	turn       sync.Mutex
	retired    bool // guarded by turn; set once the sweep has removed the session
	mu         sync.Mutex
	history    []Message
	lastActive time.Time
}

// NewSession builds a session record. An empty id gets a fresh random one.
func NewSession(id, query, summary string, top []TopResult) *Session {
	if id == "" {
		id = uuid.NewString()
	}
	now := time.Now()
	return &Session{
		ID:         id,
		OrigQuery:  query,
		Summary:    summary,
		TopResults: append([]TopResult(nil), top...),
		CreatedAt:  now,
		lastActive: now,
	}
}

// Append adds messages to the history in the given order.
func (s *Session) Append(msgs ...Message) {
	s.mu.Lock()
	s.history = append(s.history, msgs...)
	s.lastActive = time.Now()
	s.mu.Unlock()
}

// History returns a copy of the chat history.
func (s *Session) History() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Message, len(s.history))
	copy(out, s.history)
	return out
}

func (s *Session) LastActive() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastActive
}

func (s *Session) touch() {
	s.mu.Lock()
	s.lastActive = time.Now()
	s.mu.Unlock()
}

// Store owns the paper registry and the session store. Both caches lock
// internally, so a Store is safe for concurrent use.
type Store struct {
	papers   *lru.Cache
	sessions *lru.Cache
	logger   *zap.Logger
}

// New creates a Store holding at most paperCap papers and sessionCap sessions.
// Non-positive capacities fall back to the package defaults.
func New(paperCap, sessionCap int, logger *zap.Logger) (*Store, error) {
	if paperCap <= 0 {
		paperCap = DefaultPaperCapacity
	}
	if sessionCap <= 0 {
		sessionCap = DefaultSessionCapacity
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	papers, err := lru.NewWithEvict(paperCap, func(key, _ interface{}) {
		logger.Debug("Evicted paper from registry", zap.Any("paper_id", key))
	})
	if err != nil {
		return nil, fmt.Errorf("create paper registry: %w", err)
	}
	sessions, err := lru.NewWithEvict(sessionCap, func(key, _ interface{}) {
		logger.Debug("Evicted session", zap.Any("session_id", key))
	})
	if err != nil {
		return nil, fmt.Errorf("create session store: %w", err)
	}

	return &Store{papers: papers, sessions: sessions, logger: logger}, nil
}

// RegisterPaper inserts or overwrites the record for id. The last write wins.
func (s *Store) RegisterPaper(id string, rec PaperRecord) {
	s.papers.Add(id, rec)
}

// RegisterPaperIfAbsent stores rec only when id is unknown. It returns the
// record now held for id and whether rec was the one stored.
func (s *Store) RegisterPaperIfAbsent(id string, rec PaperRecord) (PaperRecord, bool) {
	prev, found, _ := s.papers.PeekOrAdd(id, rec)
	if found {
		return prev.(PaperRecord), false
	}
	return rec, true
}

// Paper looks up a registered paper. Lookups refresh the entry's recency.
func (s *Store) Paper(id string) (PaperRecord, bool) {
	v, ok := s.papers.Get(id)
	if !ok {
		return PaperRecord{}, false
	}
	return v.(PaperRecord), true
}

// CreateSession stores a new session for a search request.
func (s *Store) CreateSession(query, summary string, top []TopResult) *Session {
	sess := NewSession("", query, summary, top)
	s.sessions.Add(sess.ID, sess)
	return sess
}

// Session returns the live session for id.
func (s *Store) Session(id string) (*Session, bool) {
	v, ok := s.sessions.Get(id)
	if !ok {
		return nil, false
	}
	return v.(*Session), true
}

// EnsureSession returns the session for id, storing seed() under id when the
// session is unknown (never created, evicted or swept).
func (s *Store) EnsureSession(id string, seed func() *Session) *Session {
	if sess, ok := s.Session(id); ok {
		return sess
	}
	candidate := seed()
	candidate.ID = id
	prev, found, _ := s.sessions.PeekOrAdd(id, candidate)
	if found {
		return prev.(*Session)
	}
	s.logger.Debug("Recreated session", zap.String("session_id", id))
	return candidate
}

// BeginTurn returns the session for id with its turn held, recreating it
// from seed when unknown. Turns on one session run one at a time, so
// history is appended in call order. A session retired by SweepSessions while the
// caller waited is never handed out; the lookup is retried instead.
func (s *Store) BeginTurn(id string, seed func() *Session) (*Session, func()) {
	for {
		sess := s.EnsureSession(id, seed)
		sess.turn.Lock()
		if !sess.retired {
			sess.touch()
			return sess, sess.turn.Unlock
		}
		sess.turn.Unlock()
	}
}

// SweepSessions drops sessions idle for longer than maxIdle and returns how
// many were removed. Sessions with a turn in progress are skipped.
func (s *Store) SweepSessions(maxIdle time.Duration) int {
	if maxIdle <= 0 {
		return 0
	}
	cutoff := time.Now().Add(-maxIdle)
	removed := 0
	for _, key := range s.sessions.Keys() {
		v, ok := s.sessions.Peek(key)
		if !ok {
			continue
		}
		sess := v.(*Session)
		if !sess.turn.TryLock() {
			continue
		}
		if sess.LastActive().Before(cutoff) {
			if s.sessions.Remove(key) {
				removed++
			}
			sess.retired = true
		}
		sess.turn.Unlock()
	}
	return removed
}

// Stats reports current occupancy.
func (s *Store) Stats() (papers, sessions int) {
	return s.papers.Len(), s.sessions.Len()
}
