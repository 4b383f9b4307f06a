package ui

import (
	"studyreel/internal/domain"
	"studyreel/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// deckLoadedMsg carries the result of a manual reload
type deckLoadedMsg struct {
	deck *domain.Deck
	err  error
}

// clearStatusMsg clears the status line if it still shows the message with seq
type clearStatusMsg struct {
	seq int
}

// helpPagerMsg contains the result of a help pager command
type helpPagerMsg struct {
	err error
}

// pauseRenderingMsg signals to pause Bubble Tea rendering
type pauseRenderingMsg struct{}

// resumeRenderingMsg signals to resume Bubble Tea rendering
type resumeRenderingMsg struct{}
