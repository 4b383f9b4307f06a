package carousel

import "math"

// Boundaries tells which directions can still scroll
type Boundaries struct {
	CanScrollLeft  bool
	CanScrollRight bool
}

// DeriveBoundaries computes the scrollability flags for g. Within
// EdgeEpsilon of the start CanScrollLeft is already true while DeriveIndex
// still snaps to 0; the two agree at every rest position.
func DeriveBoundaries(g Geometry) Boundaries {
	return Boundaries{
		CanScrollLeft:  g.Offset > 0,
		CanScrollRight: g.Offset < g.MaxOffset()-EdgeEpsilon,
	}
}

// DeriveIndex maps a scroll offset to the active item. Both ends snap
// explicitly since rounding at the exact boundaries is unreliable.
func DeriveIndex(g Geometry, itemCount int, perView ItemsPerView) int {
	if itemCount <= 0 || !g.Measured() {
		return 0
	}
	if g.Offset >= g.MaxOffset()-EdgeEpsilon {
		return itemCount - 1
	}
	if g.Offset <= EdgeEpsilon {
		return 0
	}

	var itemWidth float64
	if perView.IsAuto() {
		itemWidth = g.ScrollExtent / float64(itemCount)
	} else {
		itemWidth = g.ViewportExtent / float64(perView)
	}
	if itemWidth <= 0 {
		return 0
	}
	return clampIndex(int(math.Round(g.Offset/itemWidth)), itemCount)
}

// IndexOffset is the scroll offset that brings index to the leading edge
func IndexOffset(g Geometry, index, itemCount int) float64 {
	if itemCount <= 0 {
		return 0
	}
	return float64(index) * (g.ScrollExtent / float64(itemCount))
}

func clampIndex(index, itemCount int) int {
	if itemCount <= 0 || index < 0 {
		return 0
	}
	if index > itemCount-1 {
		return itemCount - 1
	}
	return index
}
