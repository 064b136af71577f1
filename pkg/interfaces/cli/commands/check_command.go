package commands

import (
	"context"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/vsinha/stockcheck/pkg/application/dto"
	"github.com/vsinha/stockcheck/pkg/application/services/stock"
	"github.com/vsinha/stockcheck/pkg/domain/services"
	"github.com/vsinha/stockcheck/pkg/infrastructure/config"
	"github.com/vsinha/stockcheck/pkg/infrastructure/events"
	"github.com/vsinha/stockcheck/pkg/infrastructure/repositories/csv"
	"github.com/vsinha/stockcheck/pkg/infrastructure/repositories/memory"
	"github.com/vsinha/stockcheck/pkg/infrastructure/retailapi"
	"github.com/vsinha/stockcheck/pkg/interfaces/cli/output"
)

// Config holds configuration for the check command
type Config struct {
	ConfigFile       string
	StoresFile       string
	InputFile        string
	OutputDir        string
	Format           string
	StrictStores     bool
	LegacyConfidence bool
	SkipFailed       bool
	MaxPartDepth     int
	Timeout          time.Duration // overrides the config file when non-zero
}

// CheckCommand runs the stock check for a shopping list
type CheckCommand struct {
	config  Config
	logger  *zap.Logger
	console *output.Console
}

// NewCheckCommand creates a new check command with the given configuration
func NewCheckCommand(cfg Config, logger *zap.Logger, out io.Writer) *CheckCommand {
	return &CheckCommand{
		config:  cfg,
		logger:  logger,
		console: output.NewConsole(out),
	}
}

// Execute runs the check command. Reports are only written once every
// lookup has succeeded.
func (c *CheckCommand) Execute(ctx context.Context) (*dto.StockResult, error) {
	settings, err := config.Load(c.config.ConfigFile)
	if err != nil {
		return nil, err
	}

	directory, err := config.LoadStoreDirectory(c.config.StoresFile)
	if err != nil {
		return nil, err
	}

	storeRepo := memory.NewStoreRepository(len(directory))
	if err := storeRepo.LoadStores(directory); err != nil {
		return nil, fmt.Errorf("failed to load store directory: %w", err)
	}

	stores, err := config.ResolveStores(storeRepo, settings.Stores, c.config.StrictStores, c.logger)
	if err != nil {
		return nil, err
	}

	entries, err := csv.NewLoader().LoadShoppingList(c.config.InputFile)
	if err != nil {
		return nil, err
	}

	c.logger.Info("loaded shopping list",
		zap.String("input", c.config.InputFile),
		zap.Int("entries", len(entries)),
		zap.Int("stores", len(stores)),
		zap.String("country", settings.Country),
		zap.String("language", settings.Language))

	timeout := settings.GetHTTPTimeout()
	if c.config.Timeout > 0 {
		timeout = c.config.Timeout
	}

	client, err := retailapi.NewClient(retailapi.Options{
		BaseURL:  settings.BaseURL,
		Country:  settings.Country,
		Language: settings.Language,
		Timeout:  timeout,
	}, c.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create upstream client: %w", err)
	}

	productCache := memory.NewProductCache(retailapi.NewCatalogClient(client))
	availabilityCache := memory.NewAvailabilityCache(retailapi.NewAvailabilityClient(client, stores))

	eventStore := events.NewInMemoryEventStore()
	if err := eventStore.Subscribe(output.ProgressEvents, c.console); err != nil {
		return nil, fmt.Errorf("failed to subscribe console: %w", err)
	}

	rollup := services.RollupStrict
	if c.config.LegacyConfidence {
		rollup = services.RollupLegacy
	}

	service := stock.NewService(
		productCache,
		availabilityCache,
		stores,
		events.NewPublisher(eventStore, c.logger),
		stock.Options{
			Rollup:       rollup,
			SkipFailed:   c.config.SkipFailed,
			MaxPartDepth: c.config.MaxPartDepth,
		},
		c.logger,
	)

	startTime := time.Now()
	result, err := service.Check(ctx, entries)
	if err != nil {
		return nil, err
	}

	published, err := eventStore.ReadAllEvents(0)
	if err != nil {
		return nil, fmt.Errorf("failed to read progress events: %w", err)
	}

	c.logger.Info("stock check complete",
		zap.Duration("elapsed", time.Since(startTime)),
		zap.Int("catalog_fetches", productCache.Fetches()),
		zap.Int("availability_fetches", availabilityCache.Fetches()),
		zap.Int("events", len(published)),
		zap.Int("skipped", len(result.Skipped)))

	c.console.Skipped(result.Skipped)

	if _, err := output.Generate(result, output.Config{
		Format:    c.config.Format,
		OutputDir: c.config.OutputDir,
	}, c.console); err != nil {
		return nil, fmt.Errorf("error generating output: %w", err)
	}

	c.console.Done()
	return result, nil
}
