package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dgraph-io/badger/v4"
	config "github.com/thirdweb-dev/blobflow/configs"
)

const preferenceKeyPrefix = "pref:"

type BadgerConnector struct {
	db *badger.DB
}

func NewBadgerConnector(cfg *config.BadgerConfig) (*BadgerConnector, error) {
	path := cfg.Path
	if path == "" {
		path = filepath.Join(os.TempDir(), "blobflow-preferences")
	}
	opts := badger.DefaultOptions(path)

	// preferences are tiny, keep the footprint small
	opts.MemTableSize = 8 << 20
	opts.NumMemtables = 1
	opts.SyncWrites = true

	opts.Logger = nil // Disable badger's internal logging

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger db: %w", err)
	}
	return &BadgerConnector{db: db}, nil
}

func preferenceKey(key string) []byte {
	return []byte(preferenceKeyPrefix + key)
}

func (bc *BadgerConnector) GetPreference(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := bc.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(preferenceKey(key))
		if err != nil {
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, ErrPreferenceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read preference %s: %w", key, err)
	}
	return value, nil
}

func (bc *BadgerConnector) SetPreference(ctx context.Context, key string, value []byte) error {
	err := bc.db.Update(func(txn *badger.Txn) error {
		return txn.Set(preferenceKey(key), value)
	})
	if err != nil {
		return fmt.Errorf("failed to write preference %s: %w", key, err)
	}
	return nil
}

func (bc *BadgerConnector) DeletePreference(ctx context.Context, key string) error {
	err := bc.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(preferenceKey(key))
	})
	if err != nil {
		return fmt.Errorf("failed to delete preference %s: %w", key, err)
	}
	return nil
}

func (bc *BadgerConnector) Close() error {
	return bc.db.Close()
}
