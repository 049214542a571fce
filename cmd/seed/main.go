package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"orderbot/config"
	"orderbot/internal/domain/lifecycle"
	"orderbot/internal/domain/repository"
	logs "orderbot/internal/infra/log"
	"orderbot/internal/infra/persistence/postgres"
	"orderbot/internal/infra/storage"
	"orderbot/internal/usecase"
	"orderbot/internal/usecase/impl"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

func main() {
	force := flag.Bool("force", false, "Insert the starter catalog even if products already exist")
	flag.Parse()

	var (
		catalogUC usecase.CatalogUsecase
		logger    *slog.Logger
	)

	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
			postgres.NewProductRepository,
			impl.NewCatalogService,
		),
		storage.Module,
		fx.Populate(&catalogUC, &logger),
	)

	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	err := seed(context.Background(), catalogUC, logger, *force)

	stopCtx, stopCancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer stopCancel()
	if stopErr := app.Stop(stopCtx); stopErr != nil {
		logger.Warn("Failed to stop cleanly", slog.Any("error", stopErr))
	}

	if err != nil {
		logger.Error("Seeding failed", slog.Any("error", err))
		os.Exit(1)
	}
}

// seed inserts starterCatalog when the products table is empty.
func seed(ctx context.Context, catalogUC usecase.CatalogUsecase, logger *slog.Logger, force bool) error {
	existing, err := catalogUC.ListProducts(ctx, repository.ProductFilter{Page: repository.Page{Page: 1, Limit: 1}})
	if err != nil {
		return errors.Wrap(err, "failed to count products")
	}
	if existing.Total > 0 && !force {
		logger.Info("Products already present, skipping seed", slog.Int64("count", existing.Total))

		return nil
	}

	for _, input := range starterCatalog() {
		product, err := catalogUC.CreateProduct(ctx, input, nil)
		if err != nil {
			return errors.Wrapf(err, "failed to create %s", input.Name)
		}
		logger.Info("Seeded product",
			slog.String("id", product.ID.String()),
			slog.String("name", product.Name),
			slog.String("category", string(product.Category)),
		)
	}

	logger.Info("Catalog seeded", slog.Int("count", len(starterCatalog())))

	return nil
}
