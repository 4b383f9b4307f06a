package carousel

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidOptions is returned by Options.Validate
var ErrInvalidOptions = errors.New("invalid carousel options")

// Engine-wide constants, all distances in px
const (
	// EdgeEpsilon absorbs float rounding at both ends of the scroll range
	EdgeEpsilon = 1.0
	// AxisLockThreshold is the horizontal travel needed before a gesture becomes a drag
	AxisLockThreshold = 10.0
	// FlickVelocity in px/ms above which the swipe threshold is reduced
	FlickVelocity = 0.5
	// FlickThresholdFactor scales SwipeThreshold for fast flicks
	FlickThresholdFactor = 0.6
	// PageFraction of the viewport moved by ScrollTo
	PageFraction = 0.8
	// ScrollDuration of a smooth scroll animation
	ScrollDuration = 300 * time.Millisecond
)

// Direction of a scroll command
type Direction string

const (
	DirectionLeft  Direction = "left"
	DirectionRight Direction = "right"
)

// ItemsPerView is the number of slots visible at once, ItemsPerViewAuto lets
// item widths come from the content itself.
type ItemsPerView int

// ItemsPerViewAuto derives item width from ScrollExtent / ItemCount
const ItemsPerViewAuto ItemsPerView = 0

// IsAuto reports whether item width is content-derived
func (v ItemsPerView) IsAuto() bool {
	return v <= ItemsPerViewAuto
}

func (v ItemsPerView) String() string {
	if v.IsAuto() {
		return "auto"
	}
	return strconv.Itoa(int(v))
}

// ParseItemsPerView accepts "auto" (or an empty string) and positive integers
func ParseItemsPerView(s string) (ItemsPerView, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" || s == "auto" {
		return ItemsPerViewAuto, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return ItemsPerViewAuto, fmt.Errorf("%w: items per view %q", ErrInvalidOptions, s)
	}
	if n <= 0 {
		return ItemsPerViewAuto, fmt.Errorf("%w: items per view must be positive, got %d", ErrInvalidOptions, n)
	}
	return ItemsPerView(n), nil
}

// Options configures one carousel instance
type Options struct {
	ItemsPerView     ItemsPerView
	Gap              float64 // visual spacing only, never used in index math
	AutoPlay         bool
	AutoPlayInterval time.Duration
	Loop             bool
	PauseOnHover     bool
	SwipeThreshold   float64
	EnableTouch      bool
}

// DefaultOptions returns the documented defaults
func DefaultOptions() Options {
	return Options{
		ItemsPerView:     ItemsPerViewAuto,
		Gap:              16,
		AutoPlay:         false,
		AutoPlayInterval: 3 * time.Second,
		Loop:             false,
		PauseOnHover:     true,
		SwipeThreshold:   50,
		EnableTouch:      true,
	}
}

// Validate checks the invariants callers must uphold
func (o Options) Validate() error {
	if o.AutoPlay && o.AutoPlayInterval <= 0 {
		return fmt.Errorf("%w: autoplay interval must be positive, got %s", ErrInvalidOptions, o.AutoPlayInterval)
	}
	if o.SwipeThreshold < 0 {
		return fmt.Errorf("%w: swipe threshold must not be negative", ErrInvalidOptions)
	}
	if o.Gap < 0 {
		return fmt.Errorf("%w: gap must not be negative", ErrInvalidOptions)
	}
	return nil
}
