// Package player owns playback state: which frame to show and whether
// time is advancing.
package player

// Sequencer turns an endless stream of ticks into frame indices over a
// fixed window, freezing the index while paused. It is driven from a
// single event loop and is not safe for concurrent use.
type Sequencer struct {
	span    int
	ticks   int
	running bool
	last    int
}

// New returns a running sequencer over span frames.
func New(span int) *Sequencer {
	return &Sequencer{span: span, running: true}
}

// Advance consumes one tick and returns the frame index to render. While
// paused it returns the frozen index without consuming the tick. An
// empty window always yields frame 0.
func (s *Sequencer) Advance() int {
	if s.span <= 0 {
		return 0
	}
	if !s.running {
		return s.last
	}
	s.ticks++
	s.last = s.ticks % s.span
	return s.last
}

// Toggle flips between running and paused without touching the tick
// count, so playback resumes exactly where it froze.
func (s *Sequencer) Toggle() {
	s.running = !s.running
}

// Running reports whether playback advances on the next tick.
func (s *Sequencer) Running() bool { return s.running }
