package carousel

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()

	assert.True(t, opts.ItemsPerView.IsAuto())
	assert.Equal(t, 16.0, opts.Gap)
	assert.False(t, opts.AutoPlay)
	assert.Equal(t, 3*time.Second, opts.AutoPlayInterval)
	assert.False(t, opts.Loop)
	assert.True(t, opts.PauseOnHover)
	assert.Equal(t, 50.0, opts.SwipeThreshold)
	assert.True(t, opts.EnableTouch)
	assert.NoError(t, opts.Validate())
}

func TestOptionsValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Options)
		ok     bool
	}{
		{name: "defaults", mutate: func(*Options) {}, ok: true},
		{name: "autoplay without interval", mutate: func(o *Options) { o.AutoPlay = true; o.AutoPlayInterval = 0 }},
		{name: "zero interval while off", mutate: func(o *Options) { o.AutoPlayInterval = 0 }, ok: true},
		{name: "negative threshold", mutate: func(o *Options) { o.SwipeThreshold = -5 }},
		{name: "zero threshold", mutate: func(o *Options) { o.SwipeThreshold = 0 }, ok: true},
		{name: "negative gap", mutate: func(o *Options) { o.Gap = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultOptions()
			tt.mutate(&opts)
			err := opts.Validate()
			if tt.ok {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, ErrInvalidOptions)
		})
	}
}

func TestParseItemsPerView(t *testing.T) {
	for _, in := range []string{"", "auto", " AUTO "} {
		v, err := ParseItemsPerView(in)
		require.NoError(t, err, in)
		assert.Equal(t, ItemsPerViewAuto, v)
		assert.Equal(t, "auto", v.String())
	}

	v, err := ParseItemsPerView("3")
	require.NoError(t, err)
	assert.Equal(t, ItemsPerView(3), v)
	assert.Equal(t, "3", v.String())

	for _, in := range []string{"0", "-2", "three"} {
		_, err := ParseItemsPerView(in)
		assert.ErrorIs(t, err, ErrInvalidOptions, in)
	}
}

func TestEasing(t *testing.T) {
	assert.Equal(t, 0.0, EaseOutCubic(0))
	assert.Equal(t, 1.0, EaseOutCubic(1))
	assert.Greater(t, EaseOutCubic(0.5), EaseLinear(0.5))

	a := scrollAnimation{from: 0, to: 100, start: epoch, duration: 300 * time.Millisecond, easing: EaseLinear}
	off, done := a.at(epoch.Add(150 * time.Millisecond))
	assert.InDelta(t, 50, off, 1e-9)
	assert.False(t, done)

	off, done = a.at(epoch.Add(time.Second))
	assert.Equal(t, 100.0, off)
	assert.True(t, done)
}
