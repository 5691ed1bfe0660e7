package services

import (
	"context"
	"sync"
	"time"

	"github.com/DiengWinz/acl-chatbot-api/internal/core/ports/driving"
	"github.com/DiengWinz/acl-chatbot-api/internal/logger"
)

// Sweeper removes expired sessions on a fixed interval.
// It is the caller-side trigger for SessionService.SweepExpired.
type Sweeper struct {
	sessions driving.SessionService
	interval time.Duration

	mu      sync.Mutex
	running bool
	stopCh  chan struct{}
	doneCh  chan struct{}
}

// NewSweeper creates a sweeper. A non-positive interval uses ten minutes.
func NewSweeper(sessions driving.SessionService, interval time.Duration) *Sweeper {
	if interval <= 0 {
		interval = 10 * time.Minute
	}
	return &Sweeper{
		sessions: sessions,
		interval: interval,
	}
}

// Start begins the sweep loop. This method blocks until Stop is called or
// ctx is done.
func (s *Sweeper) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return nil // Already running
	}
	s.running = true
	s.stopCh = make(chan struct{})
	s.doneCh = make(chan struct{})
	stopCh, doneCh := s.stopCh, s.doneCh
	s.mu.Unlock()

	defer close(doneCh)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	logger.Debug("session sweeper started, interval %s", s.interval)
	for {
		select {
		case <-ctx.Done():
			s.markStopped()
			return ctx.Err()
		case <-stopCh:
			return nil
		case <-ticker.C:
			s.sweep()
		}
	}
}

// Stop gracefully shuts down the sweeper and waits for the loop to exit.
func (s *Sweeper) Stop() error {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return nil
	}
	s.running = false
	close(s.stopCh)
	doneCh := s.doneCh
	s.mu.Unlock()

	<-doneCh
	return nil
}

// IsRunning returns whether the sweeper is currently running.
func (s *Sweeper) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

func (s *Sweeper) sweep() {
	removed := s.sessions.SweepExpired()
	logger.Debug("session sweep removed %d sessions", removed)
}

func (s *Sweeper) markStopped() {
	s.mu.Lock()
	s.running = false
	s.mu.Unlock()
}
