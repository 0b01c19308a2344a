// Package vga models a 640x480@60 sync generator: two beam counters advanced
// one pixel clock per tick, with the standard horizontal and vertical sync
// intervals. The controller consumes VSync as its pacing pulse.
package vga

// Timing constants for the 640x480@60 mode at a 24 MHz-class pixel clock.
const (
	VisibleW = 640
	VisibleH = 480

	TotalW = 800
	TotalH = 525

	hSyncStart = 656
	hSyncEnd   = 752
	vSyncStart = 490
	vSyncEnd   = 492

	// FrameTicks is the exact length of one frame in pixel clocks.
	FrameTicks = TotalW * TotalH
)

// Sync holds the beam position. The zero value starts a frame at (0,0).
type Sync struct {
	x int
	y int
}

// NewSync returns a generator at the start of a frame.
func NewSync() *Sync { return &Sync{} }

// Tick advances the beam by one pixel clock, wrapping at line and frame ends.
func (s *Sync) Tick() {
	s.x++
	if s.x == TotalW {
		s.x = 0
		s.y++
		if s.y == TotalH {
			s.y = 0
		}
	}
}

// Reset returns the beam to the start of the frame.
func (s *Sync) Reset() { s.x, s.y = 0, 0 }

// Beam returns the current beam position, including blanking regions.
func (s *Sync) Beam() (x, y int) { return s.x, s.y }

// HSync reports whether the beam is inside the horizontal sync interval.
func (s *Sync) HSync() bool { return s.x >= hSyncStart && s.x < hSyncEnd }

// VSync reports whether the beam is inside the vertical sync interval.
func (s *Sync) VSync() bool { return s.y >= vSyncStart && s.y < vSyncEnd }

// DisplayOn reports whether the beam is inside the visible area.
func (s *Sync) DisplayOn() bool { return s.x < VisibleW && s.y < VisibleH }

// FrameStart reports whether the beam is at the first pixel of a frame.
func (s *Sync) FrameStart() bool { return s.x == 0 && s.y == 0 }
