package storage

import (
	"context"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
	config "github.com/thirdweb-dev/blobflow/configs"
)

type MemoryConnector struct {
	cache *lru.Cache[string, []byte]
}

func NewMemoryConnector(cfg *config.MemoryConfig) (*MemoryConnector, error) {
	maxItems := 64
	if cfg != nil && cfg.MaxItems > 0 {
		maxItems = cfg.MaxItems
	}

	cache, err := lru.New[string, []byte](maxItems)
	if err != nil {
		return nil, fmt.Errorf("failed to create LRU cache: %w", err)
	}
	return &MemoryConnector{cache: cache}, nil
}

func (m *MemoryConnector) GetPreference(ctx context.Context, key string) ([]byte, error) {
	value, ok := m.cache.Get(key)
	if !ok {
		return nil, ErrPreferenceNotFound
	}
	return append([]byte(nil), value...), nil
}

func (m *MemoryConnector) SetPreference(ctx context.Context, key string, value []byte) error {
	m.cache.Add(key, append([]byte(nil), value...))
	return nil
}

func (m *MemoryConnector) DeletePreference(ctx context.Context, key string) error {
	m.cache.Remove(key)
	return nil
}

func (m *MemoryConnector) Close() error {
	m.cache.Purge()
	return nil
}
