package views

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"studyreel/internal/domain"
)

// StripRenderer draws the visible window of the card strip
type StripRenderer struct {
	styles *Styles
}

// NewStripRenderer creates a new strip renderer
func NewStripRenderer(styles *Styles) *StripRenderer {
	return &StripRenderer{styles: styles}
}

// Render returns exactly l.CardHeight lines of l.StripWidth cells showing the
// strip scrolled by offsetPx. Only cards intersecting the window are drawn.
func (r *StripRenderer) Render(items []domain.Item, l Layout, offsetPx float64, current int) string {
	if len(items) == 0 {
		return r.blank(l, r.styles.Empty.Render("no items in deck"))
	}

	stride := l.Stride()
	offset := int(math.Round(offsetPx / CellWidthPx))
	first := offset / stride
	last := (offset + l.StripWidth) / stride
	if last >= len(items) {
		last = len(items) - 1
	}

	blocks := make([]string, 0, 2*(last-first+1))
	gap := r.gap(l)
	for i := first; i <= last; i++ {
		blocks = append(blocks, r.card(items[i], l, i == current))
		if gap != "" {
			blocks = append(blocks, gap)
		}
	}
	joined := lipgloss.JoinHorizontal(lipgloss.Top, blocks...)

	left := offset - first*stride
	lines := strings.Split(joined, "\n")
	out := make([]string, l.CardHeight)
	for row := 0; row < l.CardHeight; row++ {
		var line string
		if row < len(lines) {
			line = ansi.Cut(lines[row], left, left+l.StripWidth)
		}
		out[row] = pad(line, l.StripWidth)
	}
	return strings.Join(out, "\n")
}

func (r *StripRenderer) card(item domain.Item, l Layout, active bool) string {
	style := r.styles.Card
	if active {
		style = r.styles.CardActive
	}
	// border takes one cell on each side
	inner := l.CardWidth - 2
	style = style.Width(inner).Height(l.CardHeight - 2).MaxHeight(l.CardHeight)

	var b strings.Builder
	b.WriteString(r.styles.CardTitle.Render(item.Title))
	if item.Author != "" {
		b.WriteString("\n")
		b.WriteString(r.styles.CardAuthor.Render("by " + item.Author))
	}
	if item.Summary != "" {
		b.WriteString("\n\n")
		b.WriteString(r.styles.CardSummary.Render(item.Summary))
	}
	if len(item.Tags) > 0 {
		b.WriteString("\n")
		b.WriteString(r.styles.Tag.Render("#" + strings.Join(item.Tags, " #")))
	}
	return style.Render(b.String())
}

func (r *StripRenderer) gap(l Layout) string {
	if l.GapCells <= 0 {
		return ""
	}
	return lipgloss.NewStyle().Width(l.GapCells).Height(l.CardHeight).Render("")
}

func (r *StripRenderer) blank(l Layout, msg string) string {
	out := make([]string, l.CardHeight)
	for i := range out {
		out[i] = strings.Repeat(" ", l.StripWidth)
	}
	out[l.CardHeight/2] = lipgloss.PlaceHorizontal(l.StripWidth, lipgloss.Center, msg)
	return strings.Join(out, "\n")
}

// pad right-fills s with spaces to width cells
func pad(s string, width int) string {
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
