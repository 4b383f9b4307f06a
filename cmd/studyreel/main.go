// Package main provides the studyreel command: a terminal carousel over a
// deck of study posts.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"studyreel/internal/config"
	"studyreel/internal/deck"
	"studyreel/internal/eventbus"
	"studyreel/internal/logger"
	"studyreel/internal/ui"
)

// Build information, set with -ldflags "-X main.version=..."
var (
	version = "dev"
	commit  = "none"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := buildRootCmd().ExecuteContext(ctx); err != nil {
		log, _, lerr := logger.New(logger.CommandConfig())
		if lerr != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
		} else {
			log.Error("command failed", zap.Error(err))
		}
		os.Exit(1)
	}
}

// runFlags are the root command flags that override the config file
type runFlags struct {
	configPath   string
	itemsPerView string
	gap          float64
	autoplay     bool
	interval     string
	loop         bool
	noWatch      bool
	noMouse      bool
	logLevel     string
}

func buildRootCmd() *cobra.Command {
	return newRootCmd(&runFlags{})
}

func newRootCmd(flags *runFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "studyreel [deck]",
		Short: "Browse a deck of study posts as a carousel",
		Long: `studyreel shows the posts of a deck file (.toml, .json or .cbor) as a
horizontally scrolling carousel. Page with the arrow keys or the side
buttons, drag the strip with the mouse, or let autoplay advance it.

The deck file is watched and reloaded when it changes.`,
		Example: `  # Open a deck
  studyreel posts.toml

  # Autoplay every 5 seconds, wrapping at the end
  studyreel posts.toml --autoplay --interval 5s --loop

  # Two cards per view
  studyreel posts.toml --per-view 2`,
		Version:       fmt.Sprintf("%s (commit: %s)", version, commit),
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, flags)
			if err != nil {
				return err
			}
			deckPath := cfg.Deck.Path
			if len(args) == 1 {
				deckPath = args[0]
			}
			if deckPath == "" {
				return fmt.Errorf("no deck file given: pass one as an argument or set deck.path in %s", configPath(flags))
			}
			return runUI(cmd.Context(), cfg, deckPath)
		},
	}

	f := cmd.Flags()
	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to the config file (default "+config.DefaultPath()+")")
	f.StringVarP(&flags.itemsPerView, "per-view", "p", "", `Cards per view, a number or "auto"`)
	f.Float64Var(&flags.gap, "gap", 0, "Gap between cards in px")
	f.BoolVarP(&flags.autoplay, "autoplay", "a", false, "Advance automatically")
	f.StringVarP(&flags.interval, "interval", "i", "", "Autoplay interval, e.g. 3s")
	f.BoolVar(&flags.loop, "loop", false, "Wrap to the first card after the last")
	f.BoolVar(&flags.noWatch, "no-watch", false, "Do not reload the deck when the file changes")
	f.BoolVar(&flags.noMouse, "no-mouse", false, "Disable mouse input")
	f.StringVar(&flags.logLevel, "log-level", "", "Log level (debug, info, warn, error, none)")

	cmd.AddCommand(buildConfigCmd(flags), buildDeckCmd())
	return cmd
}

func configPath(flags *runFlags) string {
	if flags.configPath != "" {
		return flags.configPath
	}
	return config.DefaultPath()
}

// loadConfig loads the config file and applies the flags that were set
func loadConfig(cmd *cobra.Command, flags *runFlags) (*config.Config, error) {
	cfg, err := config.NewConfigService(flags.configPath).Load()
	if err != nil {
		return nil, err
	}

	changed := cmd.Flags().Changed
	if changed("per-view") {
		cfg.Carousel.ItemsPerView = flags.itemsPerView
	}
	if changed("gap") {
		cfg.Carousel.Gap = flags.gap
	}
	if changed("autoplay") {
		cfg.Carousel.AutoPlay = flags.autoplay
	}
	if changed("interval") {
		var d config.Duration
		if err := d.UnmarshalText([]byte(flags.interval)); err != nil {
			return nil, fmt.Errorf("invalid --interval: %w", err)
		}
		cfg.Carousel.AutoPlayInterval = d
	}
	if changed("loop") {
		cfg.Carousel.Loop = flags.loop
	}
	if changed("no-watch") {
		cfg.Deck.Watch = !flags.noWatch
	}
	if changed("no-mouse") {
		cfg.UI.MouseEnabled = !flags.noMouse
	}
	if changed("log-level") {
		cfg.Log.Level = flags.logLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runUI(ctx context.Context, cfg *config.Config, deckPath string) error {
	log, closeLog, err := logger.New(cfg.LoggerConfig())
	if err != nil {
		return err
	}
	defer func() { _ = closeLog() }()
	defer func() { _ = log.Sync() }()

	bus := eventbus.New(log)
	defer bus.Close()

	deckSvc := deck.NewDeckService(bus, log)
	defer deckSvc.Stop()

	d, err := deckSvc.Load(deckPath)
	if err != nil {
		return err
	}
	log.Info("deck loaded", zap.String("path", d.Path), zap.Int("items", d.Len()))

	model, err := ui.NewModel(bus, cfg, d, log)
	if err != nil {
		return err
	}
	defer model.Close()

	opts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}
	if cfg.UI.MouseEnabled {
		opts = append(opts, tea.WithMouseAllMotion())
	}
	p := tea.NewProgram(model, opts...)
	model.SetProgram(p)

	// Deck changes come from the watcher goroutine and reach the model as messages
	forward := func(e eventbus.DomainEvent) {
		p.Send(ui.EventMsg{Event: e})
	}
	for _, t := range []eventbus.EventType{eventbus.EventDeckLoaded, eventbus.EventDeckError, eventbus.EventError} {
		unsubscribe := bus.Subscribe(t, forward)
		defer unsubscribe()
	}
	defer bus.Subscribe(eventbus.EventSlideChanged, func(e eventbus.DomainEvent) {
		if ev, ok := e.(eventbus.SlideChangedEvent); ok {
			log.Info("slide", zap.Int("index", ev.Index), zap.String("item", ev.ItemID), zap.Int("total", ev.Total))
		}
	})()

	if cfg.Deck.Watch {
		if err := deckSvc.Watch(ctx, d.Path); err != nil {
			log.Warn("deck watch disabled", zap.Error(err))
		}
	}

	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("error running program: %w", err)
	}
	log.Info("exited")
	return nil
}
