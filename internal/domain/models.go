package domain

import "time"

// Item is one study post shown as a slide
type Item struct {
	ID      string   `toml:"id" json:"id" cbor:"id"`
	Title   string   `toml:"title" json:"title" cbor:"title"`
	Author  string   `toml:"author" json:"author" cbor:"author"`
	Summary string   `toml:"summary" json:"summary" cbor:"summary"`
	Tags    []string `toml:"tags,omitempty" json:"tags,omitempty" cbor:"tags,omitempty"`
	Order   int      `toml:"order" json:"order" cbor:"order"`
	Active  *bool    `toml:"active,omitempty" json:"active,omitempty" cbor:"active,omitempty"` // nil means active
}

// IsActive reports whether the item should be shown
func (i Item) IsActive() bool {
	return i.Active == nil || *i.Active
}

// Deck is an ordered list of items loaded from a file
type Deck struct {
	Title    string    `toml:"title" json:"title" cbor:"title"`
	Items    []Item    `toml:"items" json:"items" cbor:"items"`
	Path     string    `toml:"-" json:"-" cbor:"-"`
	LoadedAt time.Time `toml:"-" json:"-" cbor:"-"`
}

// Len returns the number of items
func (d *Deck) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Items)
}

// At returns the item at index, or false when out of range
func (d *Deck) At(index int) (Item, bool) {
	if d == nil || index < 0 || index >= len(d.Items) {
		return Item{}, false
	}
	return d.Items[index], true
}
