package catalog

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/joefazee/bosko/app/remote"
	"github.com/joefazee/bosko/internal/logger"
	"github.com/joefazee/bosko/internal/sanitizer"
)

// Store owns the resource cache. All transitions go through dispatch, which
// applies the reducer under a single lock; network calls run outside it.
type Store struct {
	mu    sync.Mutex
	state State

	remote      Remote
	eligibility EligibilityChecker
	sanitizer   sanitizer.HTMLStripperer
	logger      logger.Logger
	now         func() time.Time
	seq         atomic.Uint64
	// version counts applied transitions; guarded by mu.
	version uint64

	subsMu  sync.Mutex
	subs    map[uint64]func(State)
	nextSub uint64

	// deliverMu serializes notifications; delivered is the last version sent.
	deliverMu sync.Mutex
	delivered uint64
}

func NewStore(remote Remote, eligibility EligibilityChecker, stripper sanitizer.HTMLStripperer, log logger.Logger) *Store {
	if log == nil {
		log = logger.NewNullLogger()
	}
	if stripper == nil {
		stripper = sanitizer.NewHTMLStripper()
	}
	return &Store{
		state:       NewState(),
		remote:      remote,
		eligibility: eligibility,
		sanitizer:   stripper,
		logger:      log,
		now:         time.Now,
		subs:        map[uint64]func(State){},
	}
}

// Snapshot returns the current state. It is safe to keep and read concurrently.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Subscribe registers fn to run after applied transitions, in the order they
// were applied. A transition overtaken by a newer one before it could be
// delivered is skipped, so the last state fn sees is always the current one.
// fn must not call store actions synchronously. The returned func unregisters it.
func (s *Store) Subscribe(fn func(State)) func() {
	s.subsMu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.subsMu.Unlock()

	return func() {
		s.subsMu.Lock()
		delete(s.subs, id)
		s.subsMu.Unlock()
	}
}

func (s *Store) dispatch(a action) bool {
	s.mu.Lock()
	next, applied := reduce(s.state, a)
	var version uint64
	if applied {
		s.state = next
		s.version++
		version = s.version
	}
	s.mu.Unlock()

	s.logger.Debug("catalog transition", logger.Fields{
		"action":  fmt.Sprintf("%T", a),
		"applied": applied,
	})
	if applied {
		s.notify(version, next)
	}
	return applied
}

func (s *Store) notify(version uint64, st State) {
	s.deliverMu.Lock()
	defer s.deliverMu.Unlock()
	if version <= s.delivered {
		return
	}
	s.delivered = version

	s.subsMu.Lock()
	fns := make([]func(State), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.subsMu.Unlock()

	for _, fn := range fns {
		fn(st)
	}
}

// errorMessage turns a fetch failure into the text stored on a resource.
func errorMessage(err error) string {
	var he *remote.HTTPError
	if errors.As(err, &he) {
		return he.Message
	}
	if err == nil || err.Error() == "" {
		return "unknown error"
	}
	return err.Error()
}
