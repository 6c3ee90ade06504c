package telegram

import (
	"github.com/nikmy/hcalendar/pkg/calendar"
)

const defaultStripWidth = 7

func newStrip(width int) *strip {
	if width <= 0 {
		width = defaultStripWidth
	}
	return &strip{width: width}
}

// strip is the visible window over a month view. It follows the scroll
// hints of the model and the ◀/▶ buttons.
type strip struct {
	width  int
	center int
}

func (s *strip) ScrollTo(hint calendar.ScrollHint) {
	s.center = hint.Index
}

// shift moves the window by whole pages, n is the length of the view.
func (s *strip) shift(pages, n int) {
	s.center = clamp(s.center+pages*s.width, 0, n-1)
}

// window returns the half-open range of cells to draw for a view of n cells.
func (s *strip) window(n int) (from, to int) {
	if n <= s.width {
		return 0, n
	}
	from = clamp(s.center-s.width/2, 0, n-s.width)
	return from, from + s.width
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return min(max(v, lo), hi)
}
