//go:build e2e && unix

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// CreateTestWorkspace creates the temporary directory the app runs in
func (tf *TUITestFramework) CreateTestWorkspace() (string, error) {
	tmpDir := tf.t.TempDir()
	tf.workspace = tmpDir
	return tmpDir, nil
}

// DeckOption customizes a generated deck
type DeckOption func(*deckFixture)

type deckFixture struct {
	title    string
	items    int
	inactive []int
}

// WithTitle sets the deck title
func WithTitle(title string) DeckOption {
	return func(d *deckFixture) { d.title = title }
}

// WithItems sets how many posts the deck holds
func WithItems(n int) DeckOption {
	return func(d *deckFixture) { d.items = n }
}

// WithInactive marks the 1-based posts as inactive
func WithInactive(positions ...int) DeckOption {
	return func(d *deckFixture) { d.inactive = append(d.inactive, positions...) }
}

// WriteDeck writes a TOML deck into the workspace and returns its path
func (tf *TUITestFramework) WriteDeck(name string, options ...DeckOption) (string, error) {
	if tf.workspace == "" {
		return "", fmt.Errorf("workspace not created")
	}

	fx := deckFixture{title: "E2E deck", items: 10}
	for _, opt := range options {
		opt(&fx)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "title = %q\n", fx.title)
	for i := 1; i <= fx.items; i++ {
		fmt.Fprintf(&b, "\n[[items]]\nid = \"post-%d\"\ntitle = \"Post %d\"\nauthor = \"e2e\"\norder = %d\n", i, i, i)
		for _, p := range fx.inactive {
			if p == i {
				b.WriteString("active = false\n")
			}
		}
	}

	path := filepath.Join(tf.workspace, name)
	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return "", err
	}
	return path, nil
}

// WriteConfig writes a config file into the workspace and returns its path
func (tf *TUITestFramework) WriteConfig(content string) (string, error) {
	if tf.workspace == "" {
		return "", fmt.Errorf("workspace not created")
	}
	path := filepath.Join(tf.workspace, "config.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", err
	}
	return path, nil
}

// startWithDeck creates a workspace with a ten post deck and starts the app on it
func startWithDeck(tf *TUITestFramework, args ...string) (string, error) {
	if _, err := tf.CreateTestWorkspace(); err != nil {
		return "", err
	}
	deckPath, err := tf.WriteDeck("deck.toml")
	if err != nil {
		return "", err
	}
	return deckPath, tf.StartApp(append([]string{deckPath}, args...)...)
}
