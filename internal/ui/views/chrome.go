package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"studyreel/internal/carousel"
)

// NavColumn draws one ‹ or › button as a column of l.CardHeight lines
func NavColumn(styles *Styles, l Layout, dir carousel.Direction, enabled bool) string {
	glyph := "‹"
	if dir == carousel.DirectionRight {
		glyph = "›"
	}
	style := styles.Nav
	if !enabled {
		style = styles.NavDisabled
	}

	lines := make([]string, l.CardHeight)
	for i := range lines {
		lines[i] = strings.Repeat(" ", NavWidth)
	}
	lines[l.CardHeight/2] = " " + style.Render(glyph) + " "
	return strings.Join(lines, "\n")
}

// Indicators draws one dot per item, or a compact counter when they do not fit
func Indicators(styles *Styles, l Layout, v carousel.View) string {
	if v.ItemCount == 0 {
		return ""
	}
	if !l.DotsFit {
		counter := styles.Counter.Render(fmt.Sprintf("%d / %d", v.CurrentIndex+1, v.ItemCount))
		return strings.Repeat(" ", l.StripX) + lipgloss.PlaceHorizontal(l.StripWidth, lipgloss.Center, counter)
	}

	dots := make([]string, v.ItemCount)
	for i := range dots {
		switch {
		case i == v.PendingIndex:
			dots[i] = styles.DotPending.Render("◉")
		case i == v.CurrentIndex:
			dots[i] = styles.DotActive.Render("●")
		default:
			dots[i] = styles.Dot.Render("○")
		}
	}
	return strings.Repeat(" ", l.IndicatorX) + strings.Join(dots, " ")
}

// Header shows the deck title, the position and the autoplay state
func Header(styles *Styles, title string, v carousel.View, manualPause bool) string {
	if title == "" {
		title = "studyreel"
	}
	parts := []string{styles.Title.Render(title)}
	if v.ItemCount > 0 {
		parts = append(parts, styles.Counter.Render(fmt.Sprintf("%d/%d", v.CurrentIndex+1, v.ItemCount)))
	}
	if v.AutoPlay {
		switch {
		case manualPause:
			parts = append(parts, styles.StatusPaused.Render("⏸ paused"))
		case v.AutoplayPaused:
			parts = append(parts, styles.StatusPaused.Render("⏸ hover"))
		case v.AutoplayRunning:
			parts = append(parts, styles.StatusPlaying.Render("▶ autoplay"))
		default:
			parts = append(parts, styles.Status.Render("■ stopped"))
		}
	}
	return strings.Join(parts, "  ")
}
