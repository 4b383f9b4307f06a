package views

import (
	"math"

	"studyreel/internal/carousel"
)

// Terminal cells are mapped to px so the engine's px thresholds keep their
// meaning: one cell is 8 px wide and 16 px tall.
const (
	CellWidthPx  = 8
	CellHeightPx = 16
)

const (
	NavWidth         = 3  // columns taken by each ‹ › button
	DefaultCardWidth = 30 // card width when items per view is auto
	minCardWidth     = 8
	stripTop         = 2 // header row plus a blank row
)

// Layout places every region of the screen in cells
type Layout struct {
	Width, Height int

	StripX, StripY int
	StripWidth     int
	CardWidth      int
	CardHeight     int
	GapCells       int
	ItemCount      int

	IndicatorY int
	IndicatorX int
	DotsFit    bool

	NavLeftX  int
	NavRightX int
	StatusY   int
}

// LayoutParams are the inputs of ComputeLayout
type LayoutParams struct {
	Width, Height int
	ItemCount     int
	ItemsPerView  carousel.ItemsPerView
	GapPx         float64
	CardHeight    int
}

// ComputeLayout sizes the strip and its chrome for the terminal size
func ComputeLayout(p LayoutParams) Layout {
	l := Layout{
		Width:      p.Width,
		Height:     p.Height,
		StripX:     NavWidth,
		StripY:     stripTop,
		CardHeight: p.CardHeight,
		GapCells:   int(math.Round(p.GapPx / CellWidthPx)),
		ItemCount:  p.ItemCount,
		NavLeftX:   0,
	}
	if l.CardHeight < 3 {
		l.CardHeight = 3
	}

	available := p.Width - 2*NavWidth
	if available < minCardWidth {
		available = minCardWidth
	}

	if p.ItemsPerView.IsAuto() {
		l.CardWidth = DefaultCardWidth
		if l.CardWidth > available {
			l.CardWidth = available
		}
		l.StripWidth = available
	} else {
		stride := available / int(p.ItemsPerView)
		if stride-l.GapCells < minCardWidth {
			stride = minCardWidth + l.GapCells
		}
		l.CardWidth = stride - l.GapCells
		l.StripWidth = stride * int(p.ItemsPerView)
	}

	l.NavRightX = l.StripX + l.StripWidth
	l.IndicatorY = l.StripY + l.CardHeight + 1
	l.StatusY = l.IndicatorY + 2

	dotsWidth := 2*p.ItemCount - 1
	l.DotsFit = p.ItemCount > 0 && dotsWidth <= l.StripWidth
	l.IndicatorX = l.StripX
	if l.DotsFit {
		l.IndicatorX = l.StripX + (l.StripWidth-dotsWidth)/2
	}
	return l
}

// Stride is the horizontal distance between card starts in cells
func (l Layout) Stride() int {
	return l.CardWidth + l.GapCells
}

// ScrollExtentPx is the total strip length the surface can scroll over
func (l Layout) ScrollExtentPx() float64 {
	return float64(l.ItemCount*l.Stride()) * CellWidthPx
}

// ViewportExtentPx is the visible strip width
func (l Layout) ViewportExtentPx() float64 {
	return float64(l.StripWidth) * CellWidthPx
}

// InStrip reports whether the cell is over the scrollable strip
func (l Layout) InStrip(x, y int) bool {
	return x >= l.StripX && x < l.StripX+l.StripWidth &&
		y >= l.StripY && y < l.StripY+l.CardHeight
}

// InCarousel is the hover region: the strip plus its buttons and indicators
func (l Layout) InCarousel(x, y int) bool {
	return x >= l.NavLeftX && x < l.NavRightX+NavWidth &&
		y >= l.StripY && y <= l.IndicatorY
}

// ToPx converts a cell to strip-relative px
func (l Layout) ToPx(x, y int) (float64, float64) {
	return float64(x-l.StripX) * CellWidthPx, float64(y-l.StripY) * CellHeightPx
}

// NavAt returns the button under the cell
func (l Layout) NavAt(x, y int) (carousel.Direction, bool) {
	if y < l.StripY || y >= l.StripY+l.CardHeight {
		return "", false
	}
	switch {
	case x >= l.NavLeftX && x < l.NavLeftX+NavWidth:
		return carousel.DirectionLeft, true
	case x >= l.NavRightX && x < l.NavRightX+NavWidth:
		return carousel.DirectionRight, true
	}
	return "", false
}

// IndicatorAt returns the index of the dot under the cell
func (l Layout) IndicatorAt(x, y int) (int, bool) {
	if !l.DotsFit || y != l.IndicatorY || x < l.IndicatorX {
		return 0, false
	}
	rel := x - l.IndicatorX
	if rel%2 != 0 {
		return 0, false
	}
	idx := rel / 2
	if idx >= l.ItemCount {
		return 0, false
	}
	return idx, true
}
