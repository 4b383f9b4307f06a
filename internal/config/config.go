package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"

	"studyreel/internal/carousel"
	"studyreel/internal/eventbus"
	"studyreel/internal/logger"
)

// ErrInvalidConfig is returned when a loaded configuration fails validation
var ErrInvalidConfig = errors.New("invalid configuration")

// EnvPrefix is prepended to every environment override, e.g. STUDYREEL_CAROUSEL_LOOP
const EnvPrefix = "STUDYREEL"

// Config represents the application configuration
type Config struct {
	Version  int              `toml:"version"`
	Carousel CarouselSettings `toml:"carousel"`
	Deck     DeckSettings     `toml:"deck"`
	Log      LogSettings      `toml:"log"`
	UI       UISettings       `toml:"ui"`
}

// CarouselSettings mirrors carousel.Options in file form
type CarouselSettings struct {
	ItemsPerView     string   `toml:"items_per_view"`
	Gap              float64  `toml:"gap"`
	AutoPlay         bool     `toml:"autoplay"`
	AutoPlayInterval Duration `toml:"autoplay_interval"`
	Loop             bool     `toml:"loop"`
	PauseOnHover     bool     `toml:"pause_on_hover"`
	SwipeThreshold   float64  `toml:"swipe_threshold"`
	EnableTouch      bool     `toml:"enable_touch"`
}

// DeckSettings points at the deck file shown on start
type DeckSettings struct {
	Path  string `toml:"path"`
	Watch bool   `toml:"watch"`
}

// LogSettings configures internal/logger
type LogSettings struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
	Output string `toml:"output"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	ShowHelpBar    bool `toml:"show_help_bar"`
	ShowIndicators bool `toml:"show_indicators"`
	CardHeight     int  `toml:"card_height"`
	MouseEnabled   bool `toml:"mouse"`
}

// Duration is a time.Duration written as "3s" in TOML. A bare integer
// is read as milliseconds.
type Duration time.Duration

// MarshalText implements encoding.TextMarshaler
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (d *Duration) UnmarshalText(text []byte) error {
	raw := strings.TrimSpace(string(text))
	if ms, err := strconv.ParseInt(raw, 10, 64); err == nil {
		*d = Duration(time.Duration(ms) * time.Millisecond)
		return nil
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// DefaultPath is config.toml inside the user config directory
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "studyreel", "config.toml")
}

// NewConfigService creates a config service for path, DefaultPath when empty
func NewConfigService(path string) ConfigService {
	if path == "" {
		path = DefaultPath()
	}
	return &configService{filePath: path}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(path string, bus eventbus.EventBus) ConfigService {
	cs := NewConfigService(path).(*configService)
	cs.bus = bus
	return cs
}

// Path returns the file Load and Save use
func (cs *configService) Path() string {
	return cs.filePath
}

// Load reads the service's file. A missing file yields defaults plus
// environment overrides.
func (cs *configService) Load() (*Config, error) {
	_, statErr := os.Stat(cs.filePath)
	missing := os.IsNotExist(statErr)

	path := cs.filePath
	if missing {
		path = ""
	}
	cfg, err := load(path)
	if err != nil {
		return nil, err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{Path: cs.filePath, Default: missing})
	}
	return cfg, nil
}

// Save writes config to the service's file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}
	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}
	return nil
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}
	return load(path)
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	if err := config.Validate(); err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// load layers defaults, the file at path (skipped when empty) and
// STUDYREEL_ environment variables, highest last
func load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("toml")
	setDefaults(v, DefaultConfig())

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var interval Duration
	if err := interval.UnmarshalText([]byte(v.GetString("carousel.autoplay_interval"))); err != nil {
		return nil, fmt.Errorf("%w: autoplay_interval: %v", ErrInvalidConfig, err)
	}

	cfg := &Config{
		Version: v.GetInt("version"),
		Carousel: CarouselSettings{
			ItemsPerView:     v.GetString("carousel.items_per_view"),
			Gap:              v.GetFloat64("carousel.gap"),
			AutoPlay:         v.GetBool("carousel.autoplay"),
			AutoPlayInterval: interval,
			Loop:             v.GetBool("carousel.loop"),
			PauseOnHover:     v.GetBool("carousel.pause_on_hover"),
			SwipeThreshold:   v.GetFloat64("carousel.swipe_threshold"),
			EnableTouch:      v.GetBool("carousel.enable_touch"),
		},
		Deck: DeckSettings{
			Path:  v.GetString("deck.path"),
			Watch: v.GetBool("deck.watch"),
		},
		Log: LogSettings{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
			Output: v.GetString("log.output"),
		},
		UI: UISettings{
			ShowHelpBar:    v.GetBool("ui.show_help_bar"),
			ShowIndicators: v.GetBool("ui.show_indicators"),
			CardHeight:     v.GetInt("ui.card_height"),
			MouseEnabled:   v.GetBool("ui.mouse"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("version", d.Version)
	v.SetDefault("carousel.items_per_view", d.Carousel.ItemsPerView)
	v.SetDefault("carousel.gap", d.Carousel.Gap)
	v.SetDefault("carousel.autoplay", d.Carousel.AutoPlay)
	v.SetDefault("carousel.autoplay_interval", time.Duration(d.Carousel.AutoPlayInterval).String())
	v.SetDefault("carousel.loop", d.Carousel.Loop)
	v.SetDefault("carousel.pause_on_hover", d.Carousel.PauseOnHover)
	v.SetDefault("carousel.swipe_threshold", d.Carousel.SwipeThreshold)
	v.SetDefault("carousel.enable_touch", d.Carousel.EnableTouch)
	v.SetDefault("deck.path", d.Deck.Path)
	v.SetDefault("deck.watch", d.Deck.Watch)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
	v.SetDefault("log.output", d.Log.Output)
	v.SetDefault("ui.show_help_bar", d.UI.ShowHelpBar)
	v.SetDefault("ui.show_indicators", d.UI.ShowIndicators)
	v.SetDefault("ui.card_height", d.UI.CardHeight)
	v.SetDefault("ui.mouse", d.UI.MouseEnabled)
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	opts := carousel.DefaultOptions()
	logCfg := logger.DefaultConfig()

	return &Config{
		Version: 1,
		Carousel: CarouselSettings{
			ItemsPerView:     opts.ItemsPerView.String(),
			Gap:              opts.Gap,
			AutoPlay:         opts.AutoPlay,
			AutoPlayInterval: Duration(opts.AutoPlayInterval),
			Loop:             opts.Loop,
			PauseOnHover:     opts.PauseOnHover,
			SwipeThreshold:   opts.SwipeThreshold,
			EnableTouch:      opts.EnableTouch,
		},
		Deck: DeckSettings{
			Watch: true,
		},
		Log: LogSettings{
			Level:  logCfg.Level,
			Format: logCfg.Format,
			Output: logCfg.Output,
		},
		UI: UISettings{
			ShowHelpBar:    true,
			ShowIndicators: true,
			CardHeight:     9,
			MouseEnabled:   true,
		},
	}
}

// CarouselOptions converts the carousel section to engine options
func (c *Config) CarouselOptions() (carousel.Options, error) {
	perView, err := carousel.ParseItemsPerView(c.Carousel.ItemsPerView)
	if err != nil {
		return carousel.Options{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	opts := carousel.Options{
		ItemsPerView:     perView,
		Gap:              c.Carousel.Gap,
		AutoPlay:         c.Carousel.AutoPlay,
		AutoPlayInterval: time.Duration(c.Carousel.AutoPlayInterval),
		Loop:             c.Carousel.Loop,
		PauseOnHover:     c.Carousel.PauseOnHover,
		SwipeThreshold:   c.Carousel.SwipeThreshold,
		EnableTouch:      c.Carousel.EnableTouch,
	}
	if err := opts.Validate(); err != nil {
		return carousel.Options{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return opts, nil
}

// LoggerConfig converts the log section for logger.New
func (c *Config) LoggerConfig() *logger.Config {
	cfg := logger.DefaultConfig()
	cfg.Level = c.Log.Level
	cfg.Format = c.Log.Format
	cfg.Output = c.Log.Output
	return cfg
}

// Validate checks every section
func (c *Config) Validate() error {
	if _, err := c.CarouselOptions(); err != nil {
		return err
	}
	switch c.Log.Format {
	case "", "console", "json":
	default:
		return fmt.Errorf("%w: log format %q", ErrInvalidConfig, c.Log.Format)
	}
	if c.UI.CardHeight < 3 {
		return fmt.Errorf("%w: card height must be at least 3, got %d", ErrInvalidConfig, c.UI.CardHeight)
	}
	return nil
}
