package deck

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"studyreel/internal/domain"
	"studyreel/internal/eventbus"
)

// DefaultDebounce collapses editor save bursts into one reload
const DefaultDebounce = 250 * time.Millisecond

// DeckService loads deck files and watches them for changes
type DeckService interface {
	Load(path string) (*domain.Deck, error)
	Watch(ctx context.Context, path string) error
	Stop()
}

// deckService is the concrete implementation
type deckService struct {
	bus      eventbus.EventBus
	logger   *zap.Logger
	debounce time.Duration

	mu      sync.Mutex
	watcher *fsnotify.Watcher
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

// Option configures the service
type Option func(*deckService)

// WithDebounce overrides DefaultDebounce
func WithDebounce(d time.Duration) Option {
	return func(s *deckService) {
		s.debounce = d
	}
}

// NewDeckService creates a deck service publishing reloads on bus
func NewDeckService(bus eventbus.EventBus, logger *zap.Logger, opts ...Option) DeckService {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &deckService{
		bus:      bus,
		logger:   logger.Named("deck"),
		debounce: DefaultDebounce,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load reads and decodes the deck at path
func (s *deckService) Load(path string) (*domain.Deck, error) {
	return LoadFile(path)
}

// LoadFile reads and decodes the deck at path
func LoadFile(path string) (*domain.Deck, error) {
	format, err := FormatFor(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read deck file: %w", err)
	}
	d, err := Decode(format, data)
	if err != nil {
		return nil, err
	}
	d.Path = path
	d.LoadedAt = time.Now()
	return d, nil
}

// Watch reloads the deck whenever the file changes and publishes the result.
// The parent directory is watched so editors that replace the file on save
// keep working.
func (s *deckService) Watch(ctx context.Context, path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.watcher != nil {
		return errors.New("deck watch already running")
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to resolve deck path: %w", err)
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		_ = watcher.Close()
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}

	watchCtx, cancel := context.WithCancel(ctx)
	s.watcher = watcher
	s.cancel = cancel

	s.wg.Add(1)
	go s.watchLoop(watchCtx, watcher, abs)
	s.logger.Info("watching deck", zap.String("path", abs))
	return nil
}

// Stop ends any active watch and waits for the watch goroutine
func (s *deckService) Stop() {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	watcher := s.watcher
	s.watcher = nil
	s.mu.Unlock()

	if watcher != nil {
		_ = watcher.Close()
	}
	s.wg.Wait()
}

func (s *deckService) watchLoop(ctx context.Context, watcher *fsnotify.Watcher, path string) {
	defer s.wg.Done()

	var mu sync.Mutex
	var timer *time.Timer
	scheduleReload := func() {
		mu.Lock()
		defer mu.Unlock()
		if timer != nil {
			timer.Stop()
		}
		timer = time.AfterFunc(s.debounce, func() {
			if ctx.Err() != nil {
				return
			}
			s.reload(path)
		})
	}
	defer func() {
		mu.Lock()
		if timer != nil {
			timer.Stop()
		}
		mu.Unlock()
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != path {
				continue
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) != 0 {
				scheduleReload()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			s.logger.Warn("deck watch error", zap.Error(err))
		}
	}
}

func (s *deckService) reload(path string) {
	d, err := LoadFile(path)
	if err != nil {
		s.logger.Warn("deck reload failed", zap.String("path", path), zap.Error(err))
		if s.bus != nil {
			s.bus.Publish(eventbus.DeckErrorEvent{Path: path, Err: err})
		}
		return
	}
	s.logger.Info("deck reloaded", zap.String("path", path), zap.Int("items", d.Len()))
	if s.bus != nil {
		s.bus.Publish(eventbus.DeckLoadedEvent{Deck: d, Reload: true})
	}
}
