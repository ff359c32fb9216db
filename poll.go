package beryl

import (
	"time"

	"github.com/veandco/go-sdl2/sdl"
)

// PollEvent takes the next pending event off the queue without blocking.
//
// It returns (nil, nil) when the queue holds nothing this package models:
// raw records outside the modeled set are drained and discarded. A record
// whose sub-discriminator is unknown is returned as (nil, ErrUnrepresented);
// polling again continues past it.
func (s *Sdl) PollEvent() (Event, error) {
	for {
		var raw sdl.Event
		s.do(func() {
			raw = sdl.PollEvent()
		})
		if raw == nil {
			return nil, nil
		}
		ev, err := TranslateEvent(raw)
		if err != nil {
			return nil, err
		}
		if ev != nil {
			return ev, nil
		}
	}
}

// WaitEventTimeout blocks until an event arrives or the timeout passes,
// whichever comes first. It returns (nil, nil) on timeout. The timeout is
// rounded up to a whole millisecond.
//
// Waiting occupies the init-owning thread, so calls routed through other
// goroutines (including PollEvent elsewhere) stall until it returns. Keep
// timeouts short if the token is shared.
func (s *Sdl) WaitEventTimeout(timeout time.Duration) (Event, error) {
	deadline := time.Now().Add(timeout)
	for {
		remaining := time.Until(deadline)
		if remaining <= 0 {
			return nil, nil
		}
		ms := int((remaining + time.Millisecond - 1) / time.Millisecond)
		var raw sdl.Event
		s.do(func() {
			raw = sdl.WaitEventTimeout(ms)
		})
		if raw == nil {
			return nil, nil
		}
		ev, err := TranslateEvent(raw)
		if err != nil {
			return nil, err
		}
		if ev != nil {
			return ev, nil
		}
	}
}

// WaitEvent blocks until an event arrives. It waits in short slices so the
// init-owning thread is not held hostage between arrivals.
func (s *Sdl) WaitEvent() (Event, error) {
	for {
		ev, err := s.WaitEventTimeout(100 * time.Millisecond)
		if err != nil {
			return nil, err
		}
		if ev != nil {
			return ev, nil
		}
	}
}

// PumpEvents gathers pending input from the OS into the event queue. Poll
// and wait already pump implicitly; call this only when driving the queue
// by other means.
func (s *Sdl) PumpEvents() {
	s.do(sdl.PumpEvents)
}

// FlushAllEvents drops every event currently in the queue.
func (s *Sdl) FlushAllEvents() {
	s.do(func() {
		sdl.FlushEvents(sdl.FIRSTEVENT, sdl.LASTEVENT)
	})
}

// StartTextInput enables TextInputEvent delivery (and the platform IME,
// where one exists).
func (s *Sdl) StartTextInput() {
	s.do(sdl.StartTextInput)
}

// StopTextInput disables TextInputEvent delivery.
func (s *Sdl) StopTextInput() {
	s.do(sdl.StopTextInput)
}

// HasEvents reports whether any raw records are pending, modeled or not.
func (s *Sdl) HasEvents() bool {
	var has bool
	s.do(func() {
		has = sdl.HasEvents(sdl.FIRSTEVENT, sdl.LASTEVENT)
	})
	return has
}
