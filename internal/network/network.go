package network

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"
	"github.com/thirdweb-dev/blobflow/internal/metrics"
	"github.com/thirdweb-dev/blobflow/internal/storage"
)

// PreferenceKey is the store key holding the selected network name as a JSON string.
const PreferenceKey = "selectedNetwork"

var ErrUnknownNetwork = errors.New("unknown network")

type Config struct {
	Name     string `json:"name"`
	APIParam string `json:"apiParam"`
	Icon     string `json:"icon"`
}

var (
	Mainnet = Config{Name: "Mainnet", APIParam: "mainnet", Icon: "/ethereum.svg"}
	Sepolia = Config{Name: "Sepolia", APIParam: "sepolia", Icon: "/sepolia.svg"}

	Registry = []Config{Mainnet, Sepolia}
)

// Lookup resolves a network by display name or api param, case-insensitively.
func Lookup(name string) (Config, error) {
	for _, n := range Registry {
		if strings.EqualFold(n.Name, name) || strings.EqualFold(n.APIParam, name) {
			return n, nil
		}
	}
	return Config{}, fmt.Errorf("%w: %q", ErrUnknownNetwork, name)
}

// ReloadHook is invoked after the selection changed. Dependent views rebuild
// from scratch rather than patching their current state.
type ReloadHook func(ctx context.Context, selected Config) error

// Selector owns the current network choice and its persisted copy.
type Selector struct {
	store storage.IPreferenceStore

	mu      sync.RWMutex
	current Config
	hooks   []ReloadHook
}

// NewSelector restores the persisted choice. A missing, unreadable or unknown
// value falls back to defaultName, then to Mainnet.
func NewSelector(ctx context.Context, store storage.IPreferenceStore, defaultName string) *Selector {
	fallback, err := Lookup(defaultName)
	if err != nil {
		fallback = Mainnet
	}

	s := &Selector{store: store, current: fallback}
	if store == nil {
		return s
	}

	raw, err := store.GetPreference(ctx, PreferenceKey)
	if err != nil {
		if !errors.Is(err, storage.ErrPreferenceNotFound) {
			log.Warn().Err(err).Msg("Failed to read persisted network, using default")
		}
		return s
	}

	var name string
	if err := json.Unmarshal(raw, &name); err != nil {
		log.Warn().Err(err).Str("value", string(raw)).Msg("Ignoring corrupt persisted network")
		return s
	}
	restored, err := Lookup(name)
	if err != nil {
		log.Warn().Err(err).Msg("Ignoring persisted network")
		return s
	}
	s.current = restored
	return s
}

func (s *Selector) Current() Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

func (s *Selector) OnChange(hook ReloadHook) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hooks = append(s.hooks, hook)
}

// Select persists the new choice and then runs every reload hook. Selecting
// the current network is a no-op.
func (s *Selector) Select(ctx context.Context, name string) (Config, error) {
	selected, err := Lookup(name)
	if err != nil {
		return Config{}, err
	}

	s.mu.Lock()
	if selected == s.current {
		s.mu.Unlock()
		return selected, nil
	}
	if s.store != nil {
		value, err := json.Marshal(selected.Name)
		if err != nil {
			s.mu.Unlock()
			return Config{}, err
		}
		if err := s.store.SetPreference(ctx, PreferenceKey, value); err != nil {
			s.mu.Unlock()
			return Config{}, fmt.Errorf("failed to persist network selection: %w", err)
		}
	}
	previous := s.current
	s.current = selected
	hooks := append([]ReloadHook(nil), s.hooks...)
	s.mu.Unlock()

	metrics.NetworkSelectionChanges.Inc()
	log.Info().Str("from", previous.Name).Str("to", selected.Name).Msg("Network selection changed")

	var errs []error
	for _, hook := range hooks {
		if err := hook(ctx, selected); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return selected, fmt.Errorf("reload after network change: %w", errors.Join(errs...))
	}
	return selected, nil
}
