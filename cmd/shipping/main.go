package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/flexprice/shipdiscount/internal/cache"
	"github.com/flexprice/shipdiscount/internal/config"
	ierr "github.com/flexprice/shipdiscount/internal/errors"
	"github.com/flexprice/shipdiscount/internal/logger"
	"github.com/flexprice/shipdiscount/internal/publisher"
	"github.com/flexprice/shipdiscount/internal/pubsub"
	"github.com/flexprice/shipdiscount/internal/pubsub/memory"
	"github.com/flexprice/shipdiscount/internal/service"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

func init() {
	// Set UTC timezone for the entire application
	time.Local = time.UTC
}

func main() {
	inputPath := flag.String("input", "", "Transaction file with one \"<date> <package_size> <carrier>\" per line, - for stdin")
	configPath := flag.String("config", "", "Configuration file, defaults to config.yaml in the usual locations")
	flag.Parse()

	// .env is optional
	_ = godotenv.Load()

	var (
		processor service.TransactionProcessor
		cfg       *config.Configuration
		appLogger *logger.Logger
	)

	app := fx.New(
		fx.WithLogger(func(log *logger.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log.Named("fx").Desugar()}
		}),
		fx.Provide(
			// Config
			func() (*config.Configuration, error) {
				return provideConfig(*configPath)
			},

			// Logger
			logger.NewLogger,

			// Cache
			fx.Annotate(cache.Initialize, fx.As(new(cache.Cache))),

			// PubSub
			providePubSub,

			// Event Publisher
			publisher.NewEventPublisher,

			// Services
			service.NewServiceParams,
			service.NewTransactionProcessor,
		),
		fx.Populate(&processor, &cfg, &appLogger),
	)
	if err := app.Err(); err != nil {
		if ierr.IsConfiguration(err) {
			log.Fatalf("Invalid shipping configuration: %v\n%s", err, strings.Join(ierr.GetHints(err), "\n"))
		}
		log.Fatalf("Failed to initialize: %v", err)
	}

	ctx := context.Background()
	startCtx, cancel := context.WithTimeout(ctx, app.StartTimeout())
	defer cancel()
	if err := app.Start(startCtx); err != nil {
		log.Fatalf("Failed to start: %v", err)
	}

	exitCode := 0
	if err := run(ctx, processor, resolveInput(*inputPath, cfg), appLogger); err != nil {
		appLogger.Errorw("failed to process transactions",
			"error", err,
			"hint", strings.Join(ierr.GetHints(err), "; "),
		)
		exitCode = 1
	}

	stopCtx, cancelStop := context.WithTimeout(ctx, app.StopTimeout())
	defer cancelStop()
	if err := app.Stop(stopCtx); err != nil {
		appLogger.Warnw("failed to stop cleanly", "error", err)
	}
	os.Exit(exitCode)
}

func provideConfig(path string) (*config.Configuration, error) {
	if path != "" {
		return config.NewConfigFromFile(path)
	}
	return config.NewConfig()
}

func providePubSub(lc fx.Lifecycle, cfg *config.Configuration, log *logger.Logger) pubsub.Publisher {
	ps := memory.NewPubSub(cfg, log)
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return ps.Close()
		},
	})
	return ps
}

// resolveInput picks the flag over the configured input file, stdin when both are empty
func resolveInput(flagPath string, cfg *config.Configuration) string {
	if flagPath != "" {
		return flagPath
	}
	if cfg.Input.File != "" {
		return cfg.Input.File
	}
	return "-"
}

func run(ctx context.Context, processor service.TransactionProcessor, path string, log *logger.Logger) error {
	var in io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return ierr.WithError(err).
				WithHintf("Failed to open input file %s", path).
				Mark(ierr.ErrNotFound)
		}
		defer f.Close()
		in = f
	}

	log.Infow("processing transactions", "input", path)
	return processor.ProcessReader(ctx, in, os.Stdout)
}
