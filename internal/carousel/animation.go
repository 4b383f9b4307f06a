package carousel

import "time"

// EasingFunc maps time progress (0-1) to value progress (0-1)
type EasingFunc func(t float64) float64

var (
	// EaseLinear - constant speed
	EaseLinear EasingFunc = func(t float64) float64 { return t }

	// EaseOutCubic - smooth deceleration, the default for scroll commands
	EaseOutCubic EasingFunc = func(t float64) float64 {
		t--
		return t*t*t + 1
	}
)

// scrollAnimation interpolates the viewport offset between two positions
type scrollAnimation struct {
	from     float64
	to       float64
	start    time.Time
	duration time.Duration
	easing   EasingFunc
}

// at returns the offset for now and whether the animation has finished
func (a *scrollAnimation) at(now time.Time) (float64, bool) {
	if a.duration <= 0 {
		return a.to, true
	}
	progress := float64(now.Sub(a.start)) / float64(a.duration)
	if progress >= 1 {
		return a.to, true
	}
	if progress < 0 {
		progress = 0
	}
	return a.from + (a.to-a.from)*a.easing(progress), false
}
