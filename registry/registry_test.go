package registry

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T, papers, sessions int) *Store {
	t.Helper()
	s, err := New(papers, sessions, nil)
	require.NoError(t, err)
	return s
}

func TestRegisterPaperLastWriteWins(t *testing.T) {
	s := newStore(t, 10, 10)

	s.RegisterPaper("p1", PaperRecord{SessionID: "s1", Title: "first"})
	s.RegisterPaper("p1", PaperRecord{SessionID: "s2", Title: "second"})

	rec, ok := s.Paper("p1")
	require.True(t, ok)
	assert.Equal(t, "s2", rec.SessionID)
	assert.Equal(t, "second", rec.Title)
}

func TestRegisterPaperIfAbsentKeepsExisting(t *testing.T) {
	s := newStore(t, 10, 10)

	got, stored := s.RegisterPaperIfAbsent("p1", PaperRecord{SessionID: "s1"})
	assert.True(t, stored)
	assert.Equal(t, "s1", got.SessionID)

	got, stored = s.RegisterPaperIfAbsent("p1", PaperRecord{SessionID: "s2"})
	assert.False(t, stored)
	assert.Equal(t, "s1", got.SessionID)

	rec, _ := s.Paper("p1")
	assert.Equal(t, "s1", rec.SessionID)
}

func TestPaperRegistryIsBounded(t *testing.T) {
	s := newStore(t, 3, 10)
	for i := 0; i < 5; i++ {
		s.RegisterPaper(fmt.Sprintf("p%d", i), PaperRecord{Title: "t"})
	}

	papers, _ := s.Stats()
	assert.Equal(t, 3, papers)
	_, ok := s.Paper("p0")
	assert.False(t, ok, "oldest entry should be evicted")
	_, ok = s.Paper("p4")
	assert.True(t, ok)
}

func TestUnknownPaper(t *testing.T) {
	s := newStore(t, 0, 0)
	_, ok := s.Paper("missing")
	assert.False(t, ok)
}

func TestCreateSession(t *testing.T) {
	s := newStore(t, 10, 10)
	sess := s.CreateSession("bone loss", "summary", []TopResult{{Title: "A", Link: "L", Distance: 0.2}})

	assert.Len(t, sess.ID, 36)
	got, ok := s.Session(sess.ID)
	require.True(t, ok)
	assert.Same(t, sess, got)
	assert.Equal(t, "bone loss", got.OrigQuery)
	assert.Empty(t, got.History())
}

func TestEnsureSessionRecreatesMissing(t *testing.T) {
	s := newStore(t, 10, 10)

	calls := 0
	seed := func() *Session {
		calls++
		return NewSession("", "T", "T", nil)
	}

	sess := s.EnsureSession("sid-1", seed)
	assert.Equal(t, "sid-1", sess.ID)
	assert.Equal(t, "T", sess.OrigQuery)
	assert.Equal(t, 1, calls)

	again := s.EnsureSession("sid-1", seed)
	assert.Same(t, sess, again)
	assert.Equal(t, 1, calls)
}

func TestSessionHistoryOrder(t *testing.T) {
	sess := NewSession("", "q", "s", nil)
	sess.Append(Message{Role: "user", Content: "a"}, Message{Role: "assistant", Content: "b"})
	sess.Append(Message{Role: "user", Content: "c"})

	h := sess.History()
	require.Len(t, h, 3)
	assert.Equal(t, "a", h[0].Content)
	assert.Equal(t, "assistant", h[1].Role)
	assert.Equal(t, "c", h[2].Content)

	h[0].Content = "mutated"
	assert.Equal(t, "a", sess.History()[0].Content)
}

func TestConcurrentTurnsKeepPairsTogether(t *testing.T) {
	s := newStore(t, 10, 10)
	sess := s.CreateSession("q", "s", nil)
	seed := func() *Session { return NewSession("", "q", "s", nil) }

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			cur, release := s.BeginTurn(sess.ID, seed)
			defer release()
			msg := fmt.Sprintf("m%d", i)
			cur.Append(Message{Role: "user", Content: msg})
			time.Sleep(time.Microsecond)
			cur.Append(Message{Role: "assistant", Content: msg})
		}(i)
	}
	wg.Wait()

	h := sess.History()
	require.Len(t, h, 100)
	for i := 0; i < len(h); i += 2 {
		assert.Equal(t, "user", h[i].Role)
		assert.Equal(t, "assistant", h[i+1].Role)
		assert.Equal(t, h[i].Content, h[i+1].Content)
	}
}

func TestSweepSessions(t *testing.T) {
	s := newStore(t, 10, 10)
	stale := s.CreateSession("old", "", nil)
	fresh := s.CreateSession("new", "", nil)

	stale.mu.Lock()
	stale.lastActive = time.Now().Add(-2 * time.Hour)
	stale.mu.Unlock()

	removed := s.SweepSessions(time.Hour)
	assert.Equal(t, 1, removed)

	_, ok := s.Session(stale.ID)
	assert.False(t, ok)
	_, ok = s.Session(fresh.ID)
	assert.True(t, ok)

	assert.Equal(t, 0, s.SweepSessions(0))
}

func TestSweepSkipsSessionWithTurnInProgress(t *testing.T) {
	s := newStore(t, 10, 10)
	created := s.CreateSession("q", "s", nil)
	seed := func() *Session { return NewSession("", "seeded", "", nil) }

	sess, release := s.BeginTurn(created.ID, seed)
	sess.mu.Lock()
	sess.lastActive = time.Now().Add(-2 * time.Hour)
	sess.mu.Unlock()

	assert.Equal(t, 0, s.SweepSessions(time.Hour))
	sess.Append(Message{Role: "user", Content: "a"}, Message{Role: "assistant", Content: "b"})
	release()

	again, release := s.BeginTurn(created.ID, seed)
	release()
	assert.Same(t, created, again)
	assert.Len(t, again.History(), 2)
}

func TestBeginTurnNeverReturnsSweptSession(t *testing.T) {
	s := newStore(t, 10, 10)
	old := s.CreateSession("q", "s", nil)
	old.mu.Lock()
	old.lastActive = time.Now().Add(-2 * time.Hour)
	old.mu.Unlock()

	require.Equal(t, 1, s.SweepSessions(time.Hour))
	assert.True(t, old.retired)

	sess, release := s.BeginTurn(old.ID, func() *Session { return NewSession("", "seeded", "", nil) })
	defer release()
	assert.NotSame(t, old, sess)
	assert.Equal(t, old.ID, sess.ID)
	assert.Equal(t, "seeded", sess.OrigQuery)
}

func TestConcurrentRegistryAccess(t *testing.T) {
	s := newStore(t, 100, 100)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				id := fmt.Sprintf("p%d", j)
				s.RegisterPaper(id, PaperRecord{SessionID: fmt.Sprintf("s%d", i)})
				s.Paper(id)
				s.CreateSession("q", "", nil)
			}
		}(i)
	}
	wg.Wait()

	papers, sessions := s.Stats()
	assert.Equal(t, 50, papers)
	assert.Equal(t, 100, sessions)
}
