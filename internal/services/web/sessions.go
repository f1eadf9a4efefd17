package web

import (
	"context"
	"sync"
	"time"

	"pcaobdash/internal/core/pipeline"
	"pcaobdash/internal/platform/logger"
)

// DefaultSessionTTL is how long an idle session keeps its filters
const DefaultSessionTTL = 30 * time.Minute

// Sessions keeps the sidebar state of each dashboard session in memory
// entries idle longer than the ttl are dropped on read and by Sweep
type Sessions struct {
	mu    sync.Mutex
	ttl   time.Duration
	now   func() time.Time
	items map[string]session
}

type session struct {
	sel  pipeline.Selection
	seen time.Time
}

// NewSessions builds a session store, ttl <= 0 means DefaultSessionTTL
func NewSessions(ttl time.Duration) *Sessions {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &Sessions{ttl: ttl, now: time.Now, items: map[string]session{}}
}

// Get returns the selection held for id and refreshes its idle clock
func (s *Sessions) Get(id string) (pipeline.Selection, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	it, ok := s.items[id]
	if !ok {
		return pipeline.Selection{}, false
	}
	now := s.now()
	if now.Sub(it.seen) > s.ttl {
		delete(s.items, id)
		return pipeline.Selection{}, false
	}
	it.seen = now
	s.items[id] = it
	return it.sel, true
}

// Put replaces the selection held for id
func (s *Sessions) Put(id string, sel pipeline.Selection) {
	s.mu.Lock()
	s.items[id] = session{sel: sel, seen: s.now()}
	s.mu.Unlock()
}

// Delete forgets id
func (s *Sessions) Delete(id string) {
	s.mu.Lock()
	delete(s.items, id)
	s.mu.Unlock()
}

// Len counts live and not yet swept sessions
func (s *Sessions) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// Sweep drops every expired session and reports how many went
func (s *Sessions) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now, n := s.now(), 0
	for id, it := range s.items {
		if now.Sub(it.seen) > s.ttl {
			delete(s.items, id)
			n++
		}
	}
	return n
}

// Run sweeps every interval until ctx is done
func (s *Sessions) Run(ctx context.Context, every time.Duration) {
	if every <= 0 {
		every = s.ttl / 2
	}
	log := logger.Named("web.sessions")
	t := time.NewTicker(every)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if n := s.Sweep(); n > 0 {
				log.Debug().Int("expired", n).Int("live", s.Len()).Msg("sessions swept")
			}
		}
	}
}
