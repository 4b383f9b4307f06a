package deck

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fxamacker/cbor/v2"
	"github.com/pelletier/go-toml/v2"

	"studyreel/internal/domain"
)

// ErrUnsupportedFormat is returned for deck files with an unknown extension
var ErrUnsupportedFormat = errors.New("unsupported deck format")

// Format is a deck file encoding
type Format string

const (
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
	FormatCBOR Format = "cbor"
)

// FormatFor picks the encoding from the file extension
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	case ".cbor":
		return FormatCBOR, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Decode parses data and normalizes the result
func Decode(format Format, data []byte) (*domain.Deck, error) {
	var d domain.Deck
	var err error
	switch format {
	case FormatTOML:
		err = toml.Unmarshal(data, &d)
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(&d)
	case FormatCBOR:
		err = cbor.Unmarshal(data, &d)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s deck: %w", format, err)
	}
	Normalize(&d)
	return &d, nil
}

// Encode serializes d in format
func Encode(format Format, d *domain.Deck) ([]byte, error) {
	switch format {
	case FormatTOML:
		return toml.Marshal(d)
	case FormatJSON:
		return json.MarshalIndent(d, "", "  ")
	case FormatCBOR:
		return cbor.Marshal(d)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// Normalize drops inactive items, orders the rest by Order (ties keep file
// order) and fills in missing ids
func Normalize(d *domain.Deck) {
	active := d.Items[:0]
	for _, it := range d.Items {
		if it.IsActive() {
			active = append(active, it)
		}
	}
	sort.SliceStable(active, func(i, j int) bool {
		return active[i].Order < active[j].Order
	})

	// explicit ids are claimed first so a generated one never shadows them
	used := make(map[string]bool, len(active))
	var missing []int
	for i := range active {
		if active[i].ID == "" || used[active[i].ID] {
			missing = append(missing, i)
			continue
		}
		used[active[i].ID] = true
	}
	for _, i := range missing {
		n := i + 1
		for used[fmt.Sprintf("item-%d", n)] {
			n++
		}
		active[i].ID = fmt.Sprintf("item-%d", n)
		used[active[i].ID] = true
	}
	d.Items = active
}
