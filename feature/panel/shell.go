package panel

import (
	"context"
	"sync"
	"sync/atomic"

	"redelex-panel/core/navigation"

	"go.uber.org/zap"
)

// Shell composes the navigation registry with per-session breadcrumb
// trackers. It follows the registry's section stream so menus and
// breadcrumbs always use the latest published snapshot.
type Shell struct {
	registry *navigation.Registry
	logger   *zap.Logger
	sections atomic.Pointer[[]navigation.MenuSection]

	mu       sync.Mutex
	trackers map[string]*navigation.Tracker
}

// NewShell creates a shell over registry, seeded with its current sections.
func NewShell(registry *navigation.Registry, logger *zap.Logger) *Shell {
	s := &Shell{
		registry: registry,
		logger:   logger,
		trackers: make(map[string]*navigation.Tracker),
	}
	sections := registry.MenuSections()
	s.sections.Store(&sections)
	return s
}

// Run follows the registry until ctx is done.
func (s *Shell) Run(ctx context.Context) {
	updates, cancel := s.registry.Subscribe()
	defer cancel()

	for {
		select {
		case <-ctx.Done():
			return
		case sections, ok := <-updates:
			if !ok {
				return
			}
			s.sections.Store(&sections)
			s.logger.Debug("Menu updated", zap.Int("sections", len(sections)))
		}
	}
}

// MenuSections returns the latest section snapshot.
func (s *Shell) MenuSections() []navigation.MenuSection {
	return *s.sections.Load()
}

// Tracker returns the breadcrumb tracker of a session, creating it on first use.
func (s *Shell) Tracker(token string) *navigation.Tracker {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.trackers[token]
	if !ok {
		t = navigation.NewTracker(s)
		s.trackers[token] = t
	}
	return t
}

// Forget drops the tracker of a closed session.
func (s *Shell) Forget(token string) {
	s.mu.Lock()
	delete(s.trackers, token)
	s.mu.Unlock()
}

// Sessions returns how many sessions currently hold a tracker.
func (s *Shell) Sessions() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.trackers)
}
