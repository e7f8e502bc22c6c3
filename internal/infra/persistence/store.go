// Package persistence selects the account store backend named in the configuration.
package persistence

import (
	"log/slog"

	"storefront/config"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/memory"
	"storefront/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params defines the parameters required to build the account store.
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewAccountRepository returns the repository for the configured store driver.
// The postgres connection is only opened when that driver is selected.
func NewAccountRepository(params Params) (repository.AccountRepository, error) {
	switch params.Config.Store.Driver {
	case config.StoreDriverMemory:
		params.Logger.Warn("Using in-memory account store; accounts are lost on restart")

		return memory.NewAccountRepository(), nil
	case config.StoreDriverPostgres:
		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return nil, err
		}

		return postgres.NewAccountRepository(db), nil
	default:
		return nil, errors.Errorf("unknown store driver: %q", params.Config.Store.Driver)
	}
}
