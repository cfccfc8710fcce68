package tui

import "github.com/vovakirdan/alien-invasion/internal/core"

// Terminals report key repeats but never key releases. HoldTracker keeps a
// movement key held while repeats keep arriving and emits the matching
// release action once they stop.
//
// A fresh press waits initialHoldFactor times longer than a repeat, so the
// ship keeps moving through the terminal's initial repeat delay.
const initialHoldFactor = 4

// HoldTracker emulates key-up events for the two movement keys.
type HoldTracker struct {
	holdTicks int
	left      int // Ticks until the left key counts as released
	right     int
}

// NewHoldTracker creates a tracker releasing keys holdTicks after their last repeat.
func NewHoldTracker(holdTicks int) *HoldTracker {
	h := &HoldTracker{}
	h.SetHoldTicks(holdTicks)
	return h
}

// SetHoldTicks changes the hold window. Values below 1 are treated as 1.
func (h *HoldTracker) SetHoldTicks(holdTicks int) {
	h.holdTicks = max(holdTicks, 1)
}

// Press records a movement key press or repeat. Other actions are ignored.
func (h *HoldTracker) Press(a core.Action) {
	switch a {
	case core.ActionLeft:
		h.left = h.window(h.left)
	case core.ActionRight:
		h.right = h.window(h.right)
	}
}

func (h *HoldTracker) window(remaining int) int {
	if remaining > 0 {
		return h.holdTicks
	}
	return h.holdTicks * initialHoldFactor
}

// Advance counts down one tick and sets a release action in frame for every
// key whose window just ran out.
func (h *HoldTracker) Advance(frame *core.InputFrame) {
	if h.left > 0 {
		h.left--
		if h.left == 0 {
			frame.Set(core.ActionLeftRelease)
		}
	}
	if h.right > 0 {
		h.right--
		if h.right == 0 {
			frame.Set(core.ActionRightRelease)
		}
	}
}

// ReleaseAll forgets both keys and sets their release actions in frame.
func (h *HoldTracker) ReleaseAll(frame *core.InputFrame) {
	if h.left > 0 {
		frame.Set(core.ActionLeftRelease)
	}
	if h.right > 0 {
		frame.Set(core.ActionRightRelease)
	}
	h.left, h.right = 0, 0
}
