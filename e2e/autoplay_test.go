//go:build e2e && unix

package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestAutoplayAdvancesAndPauses(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	_, err := startWithDeck(tf, "--autoplay", "--interval", "500ms")
	require.NoError(t, err, "Failed to start app")
	require.True(t, tf.SeePlain("▶ autoplay"), "Header should show autoplay running")

	require.True(t, tf.OutputContainsPlain("4/10", 2*time.Second), "Autoplay should page forward")

	tf.TogglePause()
	require.True(t, tf.SeePlain("⏸ paused"), "Space should pause autoplay")

	tf.TogglePause()
	require.True(t, tf.SeePlain("autoplay resumed"), "Space again should resume")
}

func TestAutoplayFromConfigFile(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	_, err := tf.CreateTestWorkspace()
	require.NoError(t, err, "Failed to create test workspace")
	deckPath, err := tf.WriteDeck("deck.toml")
	require.NoError(t, err, "Failed to write deck")
	configPath, err := tf.WriteConfig(`
[carousel]
items_per_view = "2"
autoplay = true
autoplay_interval = "300ms"

[deck]
path = "` + deckPath + `"
`)
	require.NoError(t, err, "Failed to write config")

	require.NoError(t, tf.StartApp("--config", configPath), "Failed to start app")
	require.True(t, tf.SeePlain("1/10"), "Deck path should come from the config")

	// two per view: a page is 0.8 of two cards, rounding to the third post
	require.True(t, tf.OutputContainsPlain("3/10", 2*time.Second), "Autoplay should page by the configured width")
}
