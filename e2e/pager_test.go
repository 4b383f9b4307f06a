//go:build e2e && unix

package main

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var counterRe = regexp.MustCompile(`\b(\d+/\d+)\b`)

// lastCounter returns the most recently drawn "i/n" counter
func lastCounter(s string) string {
	m := counterRe.FindAllString(s, -1)
	if len(m) == 0 {
		return ""
	}
	return m[len(m)-1]
}

func TestHelpPager(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	_, err := startWithDeck(tf)
	require.NoError(t, err, "Failed to start app")
	require.True(t, tf.Ready(), "Should render the first card")

	tf.OpenHelp()
	require.True(t, tf.OutputContainsPlain("studyreel Help", 3*time.Second), "Should show help in pager")
	require.True(t, tf.SeePlain("Keyboard"), "Help lists the key bindings")
	require.True(t, tf.SeePlain("swipe between slides"), "Help lists the mouse gestures")

	// Quit pager and ensure TUI again
	before := len(tf.Snapshot())
	tf.Quit()
	require.True(t, tf.WaitFor(func(s string) bool {
		return len(s) > before && counterRe.MatchString(s[before:])
	}, 3*time.Second), "Should return to main TUI after closing pager")

	tf.Next()
	require.True(t, tf.SeePlain("4/10"), "Keys work again after the pager")
}
