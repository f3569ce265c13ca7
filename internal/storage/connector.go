package storage

import (
	"context"
	"errors"
	"fmt"

	config "github.com/thirdweb-dev/blobflow/configs"
)

// ErrPreferenceNotFound is returned when a preference key was never written.
var ErrPreferenceNotFound = errors.New("preference not found")

// IPreferenceStore persists small UI preferences as raw JSON values.
type IPreferenceStore interface {
	GetPreference(ctx context.Context, key string) ([]byte, error)
	SetPreference(ctx context.Context, key string, value []byte) error
	DeletePreference(ctx context.Context, key string) error
	Close() error
}

func NewPreferenceStore(cfg *config.PreferenceStorageConfig) (IPreferenceStore, error) {
	var store IPreferenceStore
	var err error

	switch cfg.Type {
	case config.PreferenceStoreBadger, "":
		badgerCfg := cfg.Badger
		if badgerCfg == nil {
			badgerCfg = &config.BadgerConfig{}
		}
		store, err = NewBadgerConnector(badgerCfg)
	case config.PreferenceStoreRedis:
		if cfg.Redis == nil {
			return nil, fmt.Errorf("redis preference store selected but not configured")
		}
		store, err = NewRedisConnector(cfg.Redis)
	case config.PreferenceStoreMemory:
		memoryCfg := cfg.Memory
		if memoryCfg == nil {
			memoryCfg = &config.MemoryConfig{}
		}
		store, err = NewMemoryConnector(memoryCfg)
	default:
		return nil, fmt.Errorf("unsupported preference store type %q", cfg.Type)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to create %s preference store: %w", cfg.Type, err)
	}
	return store, nil
}
