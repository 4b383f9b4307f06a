package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"

	"studyreel/internal/carousel"
)

// HelpRenderer handles help content rendering
type HelpRenderer struct {
	keys keyMap
}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer(keys keyMap) *HelpRenderer {
	return &HelpRenderer{keys: keys}
}

// RenderHelpContent generates the full help page shown in the pager
func (r *HelpRenderer) RenderHelpContent(opts carousel.Options, deckPath string) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Width(12).
		Foreground(lipgloss.Color("220"))

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	var help strings.Builder
	line := func(k, desc string) {
		help.WriteString(fmt.Sprintf("  %s %s\n", keyStyle.Render(k), descStyle.Render(desc)))
	}

	help.WriteString(titleStyle.Render("studyreel Help"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Keyboard"))
	help.WriteString("\n")
	for _, column := range r.keys.FullHelp() {
		for _, b := range column {
			h := b.Help()
			line(h.Key, h.Desc)
		}
	}
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Mouse"))
	help.WriteString("\n")
	line("drag", "swipe between slides")
	line("wheel", "scroll the strip")
	line("‹ ›", "previous / next page")
	line("● ○", "jump to a slide")
	line("hover", "pauses autoplay")
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Carousel"))
	help.WriteString("\n")
	line("per view", opts.ItemsPerView.String())
	line("autoplay", autoplaySummary(opts))
	line("swipe", fmt.Sprintf("%.0fpx (touch %s)", opts.SwipeThreshold, onOff(opts.EnableTouch)))
	if deckPath != "" {
		line("deck", deckPath)
	}

	return strings.TrimRight(help.String(), "\n")
}

func autoplaySummary(opts carousel.Options) string {
	if !opts.AutoPlay {
		return "off"
	}
	s := "every " + opts.AutoPlayInterval.String()
	if opts.Loop {
		s += ", loops"
	}
	if opts.PauseOnHover {
		s += ", pauses on hover"
	}
	return s
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

// HelpOps shows help outside the bubbletea renderer
type HelpOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewHelpOps creates a new help operations instance
func NewHelpOps(program *tea.Program) *HelpOps {
	return &HelpOps{
		program: program,
	}
}

// SetProgram sets the program reference
func (h *HelpOps) SetProgram(p *tea.Program) {
	h.program = p
}

// ShowHelpInPager shows help content using ov pager
func (h *HelpOps) ShowHelpInPager(helpContent string) error {
	if h.program == nil {
		return fmt.Errorf("program not set")
	}

	if err := h.program.ReleaseTerminal(); err != nil {
		return err
	}
	defer func() {
		// ov needs a moment to leave the alternate screen
		time.Sleep(100 * time.Millisecond)
		_ = h.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(helpContent))
	if err != nil {
		return err
	}

	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}
