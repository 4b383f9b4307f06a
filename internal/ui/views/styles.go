package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title         lipgloss.Style
	Counter       lipgloss.Style
	Card          lipgloss.Style
	CardActive    lipgloss.Style
	CardTitle     lipgloss.Style
	CardAuthor    lipgloss.Style
	CardSummary   lipgloss.Style
	Tag           lipgloss.Style
	Nav           lipgloss.Style
	NavDisabled   lipgloss.Style
	Dot           lipgloss.Style
	DotActive     lipgloss.Style
	DotPending    lipgloss.Style
	Status        lipgloss.Style
	StatusError   lipgloss.Style
	StatusPlaying lipgloss.Style
	StatusPaused  lipgloss.Style
	Help          lipgloss.Style
	Empty         lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Counter: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1),
		CardActive: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("99")).
			Padding(0, 1),
		CardTitle:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("226")),
		CardAuthor:    lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("39")),
		CardSummary:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Tag:           lipgloss.NewStyle().Foreground(lipgloss.Color("78")),
		Nav:           lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")),
		NavDisabled:   lipgloss.NewStyle().Faint(true),
		Dot:           lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		DotActive:     lipgloss.NewStyle().Foreground(lipgloss.Color("99")).Bold(true),
		DotPending:    lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Status:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		StatusPlaying: lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
		StatusPaused:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		Help:          lipgloss.NewStyle().Faint(true),
		Empty:         lipgloss.NewStyle().Faint(true).Italic(true),
	}
}
