package main

import (
	"context"

	"storefront/config"
	"storefront/internal/domain/repository"
	logs "storefront/internal/infra/log"
	"storefront/internal/infra/persistence"
	"storefront/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// fxBackend builds the stores with the same providers as the API server.
type fxBackend struct{}

func (fxBackend) OpenAccounts(ctx context.Context) (repository.AccountRepository, func(context.Context) error, error) {
	var accounts repository.AccountRepository

	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			persistence.NewAccountRepository,
		),
		fx.Populate(&accounts),
	)
	if err := app.Start(ctx); err != nil {
		return nil, nil, errors.Wrap(err, "open account store")
	}

	return accounts, app.Stop, nil
}

// Migrate connects to postgres with migrations forced on, so starting the app applies them.
func (fxBackend) Migrate(ctx context.Context) error {
	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			postgres.New,
		),
		fx.Decorate(forceMigrations),
		fx.Invoke(func(*gorm.DB) {}),
	)
	if err := app.Start(ctx); err != nil {
		return errors.Wrap(err, "apply migrations")
	}

	return errors.WithStack(app.Stop(ctx))
}

func forceMigrations(cfg *config.Config) (*config.Config, error) {
	if cfg.Store.Driver != config.StoreDriverPostgres || cfg.Postgres == nil {
		return nil, errors.Errorf("migrate needs store.driver %q with a postgres section, got %q",
			config.StoreDriverPostgres, cfg.Store.Driver)
	}

	cfg.Store.RunMigrations = true

	return cfg, nil
}
