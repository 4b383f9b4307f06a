package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventDeckLoaded   EventType = "DeckLoaded"
	EventDeckError    EventType = "DeckError"
	EventSlideChanged EventType = "SlideChanged"
	EventConfigLoaded EventType = "ConfigLoaded"
	EventConfigSaved  EventType = "ConfigSaved"
	EventError        EventType = "Error"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// DeckLoadedEvent is emitted after a deck file was (re)loaded
type DeckLoadedEvent struct {
	Deck   *Deck
	Reload bool
}

func (e DeckLoadedEvent) Type() EventType { return EventDeckLoaded }

// DeckErrorEvent is emitted when a deck file could not be read or decoded
type DeckErrorEvent struct {
	Path string
	Err  error
}

func (e DeckErrorEvent) Type() EventType { return EventDeckError }

// SlideChangedEvent is emitted when the active slide index changes
type SlideChangedEvent struct {
	Index  int
	ItemID string
	Total  int
}

func (e SlideChangedEvent) Type() EventType { return EventSlideChanged }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path    string
	Default bool // no file existed
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }
