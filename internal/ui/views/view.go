package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"studyreel/internal/carousel"
	"studyreel/internal/domain"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Layout         Layout
	Title          string
	Items          []domain.Item
	Carousel       carousel.View
	OffsetPx       float64
	ManualPause    bool
	ShowIndicators bool
	StatusMessage  string
	StatusError    bool
	HelpLine       string
}

// Renderer handles all view rendering
type Renderer struct {
	styles *Styles
	strip  *StripRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles: styles,
		strip:  NewStripRenderer(styles),
	}
}

// Styles returns the renderer's styles
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// Render produces the complete view. Rows match the positions in
// state.Layout so mouse hit testing lines up with what is drawn.
func (r *Renderer) Render(state ViewState) string {
	l := state.Layout
	v := state.Carousel
	content := &strings.Builder{}

	content.WriteString(Header(r.styles, state.Title, v, state.ManualPause))
	content.WriteString("\n\n")

	strip := r.strip.Render(state.Items, l, state.OffsetPx, v.CurrentIndex)
	content.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		NavColumn(r.styles, l, carousel.DirectionLeft, v.CanScrollLeft),
		strip,
		NavColumn(r.styles, l, carousel.DirectionRight, v.CanScrollRight),
	))
	content.WriteString("\n\n")

	if state.ShowIndicators {
		content.WriteString(Indicators(r.styles, l, v))
	}
	content.WriteString("\n\n")

	if state.StatusMessage != "" {
		style := r.styles.Status
		if state.StatusError {
			style = r.styles.StatusError
		}
		content.WriteString(style.Render(state.StatusMessage))
	}

	if state.HelpLine != "" {
		used := strings.Count(content.String(), "\n") + 1
		if padding := l.Height - used - 1; padding > 0 {
			content.WriteString(strings.Repeat("\n", padding))
		}
		content.WriteString("\n")
		content.WriteString(state.HelpLine)
	}
	return content.String()
}
