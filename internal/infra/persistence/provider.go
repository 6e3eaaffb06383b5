// Package persistence selects the person store backend from configuration.
package persistence

import (
	"context"
	"log/slog"

	"familytree/config"
	"familytree/internal/domain/repository"
	"familytree/internal/errors"
	"familytree/internal/infra/persistence/firestoredb"
	"familytree/internal/infra/persistence/gormdb"
	"familytree/internal/infra/persistence/memory"

	fb "firebase.google.com/go/v4"
	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config      *config.Config
	Logger      *slog.Logger
	FirebaseApp *fb.App `optional:"true"`
}

// NewTransactionManager builds the transaction manager of the configured backend.
func NewTransactionManager(params Params) (repository.TransactionManager, error) {
	backend := params.Config.Store.Backend
	params.Logger.Info("Opening person store", slog.String("backend", backend))

	switch backend {
	case config.StoreMemory:
		return memory.NewTransactionManager(memory.NewStore()), nil
	case config.StorePostgres, config.StoreSQLite:
		db, err := gormdb.New(gormdb.Params{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return nil, err
		}

		return gormdb.NewTransactionManager(db), nil
	case config.StoreFirestore:
		if params.FirebaseApp == nil {
			return nil, errors.New("firestore backend requires a Firebase app")
		}
		client, err := params.FirebaseApp.Firestore(context.Background())
		if err != nil {
			return nil, errors.Wrap(err, "failed to get Firestore client")
		}
		params.Append(fx.Hook{
			OnStop: func(context.Context) error {
				return client.Close()
			},
		})

		return firestoredb.NewTransactionManager(client, params.Config.Store.Collection), nil
	default:
		return nil, errors.Errorf("unknown store backend %q", backend)
	}
}
