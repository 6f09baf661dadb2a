package services

import (
	"sync"
	"time"
)

// ConfirmScheduler holds one pending timer per booking id. Timers live only
// in this process: a restart loses them and the affected bookings stay
// pending, matching the behavior this core simulates.
type ConfirmScheduler struct {
	mu      sync.Mutex
	delay   time.Duration
	timers  map[string]*time.Timer
	stopped bool
}

func NewConfirmScheduler(delay time.Duration) *ConfirmScheduler {
	return &ConfirmScheduler{
		delay:  delay,
		timers: make(map[string]*time.Timer),
	}
}

// Schedule arms the deferred callback for a booking id. It fires exactly
// once after the configured delay unless cancelled first. Re-scheduling an
// id replaces its timer.
func (s *ConfirmScheduler) Schedule(bookingID string, fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		return
	}
	if t, ok := s.timers[bookingID]; ok {
		t.Stop()
	}
	s.timers[bookingID] = time.AfterFunc(s.delay, func() {
		s.mu.Lock()
		delete(s.timers, bookingID)
		s.mu.Unlock()
		fn()
	})
}

// Cancel disarms a booking's timer if it has not fired yet.
func (s *ConfirmScheduler) Cancel(bookingID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t, ok := s.timers[bookingID]; ok {
		t.Stop()
		delete(s.timers, bookingID)
	}
}

// Stop disarms everything and refuses new schedules. Called on shutdown.
func (s *ConfirmScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopped = true
	for id, t := range s.timers {
		t.Stop()
		delete(s.timers, id)
	}
}
