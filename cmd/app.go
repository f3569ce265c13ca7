package cmd

import (
	"context"
	"fmt"

	config "github.com/thirdweb-dev/blobflow/configs"
	"github.com/thirdweb-dev/blobflow/internal/adapters"
	"github.com/thirdweb-dev/blobflow/internal/client"
	"github.com/thirdweb-dev/blobflow/internal/network"
	"github.com/thirdweb-dev/blobflow/internal/storage"
)

// app is the state shared by every command: one client, one preference
// store and the network selector restored from it.
type app struct {
	store    storage.IPreferenceStore
	selector *network.Selector
	service  *adapters.Service
}

func newApp(ctx context.Context) (*app, error) {
	store, err := storage.NewPreferenceStore(&config.Cfg.Storage.Preferences)
	if err != nil {
		return nil, fmt.Errorf("failed to open preference store: %w", err)
	}

	selector := network.NewSelector(ctx, store, config.Cfg.Network.Default)
	service := adapters.NewServiceFromConfig(client.NewFromConfig(), selector.Current().APIParam)

	return &app{
		store:    store,
		selector: selector,
		service:  service,
	}, nil
}

func (a *app) Close() error {
	return a.store.Close()
}
