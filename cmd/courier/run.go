package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"relay-hq/courier/pkg/audit"
	"relay-hq/courier/pkg/audit/retention"
	"relay-hq/courier/pkg/audit/storage"
	"relay-hq/courier/pkg/cli"
	"relay-hq/courier/pkg/config"
	"relay-hq/courier/pkg/server"
	"relay-hq/courier/pkg/telegram"
	"relay-hq/courier/pkg/telemetry/health"
	"relay-hq/courier/pkg/telemetry/logging"
	"relay-hq/courier/pkg/telemetry/metrics"
)

var runFlags struct {
	listenAddress string
	logLevel      string
	dryRun        bool
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the Courier relay server",
	Long: `Start the Courier relay server with the specified configuration.

The server listens on the configured address and relays Telegram Bot API
calls through the audit recorder and telemetry stack.

Examples:
  # Start with defaults
  courier run

  # Start with custom config
  courier run --config /etc/courier/config.yaml

  # Override listen address
  courier run --listen 0.0.0.0:8080

  # Validate config without starting server
  courier run --dry-run`,
	RunE: runServer,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&runFlags.listenAddress, "listen", "l", "", "override listen address")
	runCmd.Flags().StringVar(&runFlags.logLevel, "log-level", "", "override log level (debug, info, warn, error)")
	runCmd.Flags().BoolVar(&runFlags.dryRun, "dry-run", false, "validate config without starting server")
}

func runServer(cmd *cobra.Command, args []string) error {
	// Load configuration
	cfg, err := config.LoadConfigWithEnvOverrides(cfgFile)
	if err != nil {
		return cli.NewConfigError("", fmt.Sprintf("failed to load config: %v", err))
	}

	// Apply flag overrides
	if runFlags.listenAddress != "" {
		cfg.Server.ListenAddress = runFlags.listenAddress
	}
	if runFlags.logLevel != "" {
		cfg.Telemetry.Logging.Level = runFlags.logLevel
	}
	if verbose {
		cfg.Telemetry.Logging.Level = "debug"
	}

	// Initialize logging based on config
	logger, err := logging.New(logging.Config{
		Level:        cfg.Telemetry.Logging.Level,
		Format:       cfg.Telemetry.Logging.Format,
		AddSource:    cfg.Telemetry.Logging.AddSource,
		RedactTokens: cfg.Telemetry.Logging.RedactTokens,
		Writer:       os.Stdout,
	})
	if err != nil {
		return cli.NewConfigError("telemetry.logging", err.Error())
	}

	if runFlags.dryRun {
		fmt.Println("✓ Configuration valid")
		return nil
	}

	printBanner(cfg, logger)

	// Shutdown context; cancelled on SIGINT/SIGTERM
	ctx := cli.SetupSignalHandler()

	// Bot API client
	botClient := telegram.NewClient(telegram.Config{
		BaseURL:             cfg.Telegram.BaseURL,
		Timeout:             cfg.Telegram.Timeout,
		MaxIdleConns:        cfg.Telegram.MaxIdleConns,
		MaxIdleConnsPerHost: cfg.Telegram.MaxIdleConnsPerHost,
		IdleConnTimeout:     cfg.Telegram.IdleConnTimeout,
	})
	defer botClient.Close()

	// Health checker
	checker := health.New(cfg.Telemetry.Health.CheckTimeout)

	// Metrics collector
	var collector *metrics.Collector
	if cfg.Telemetry.Metrics.Enabled {
		collector = metrics.NewCollector(&cfg.Telemetry.Metrics, nil)
	}

	deps := server.Dependencies{
		Config:  cfg,
		BotAPI:  botClient,
		Checker: checker,
		Metrics: collector,
		Logger:  logger,
	}

	// Audit trail (if enabled)
	if cfg.Audit.Enabled {
		logger.Info("initializing audit trail", "backend", cfg.Audit.Backend)

		var store audit.Storage
		switch cfg.Audit.Backend {
		case "sqlite":
			store, err = storage.NewSQLiteStorage(&storage.SQLiteConfig{
				Path:         cfg.Audit.SQLite.Path,
				Driver:       cfg.Audit.SQLite.Driver,
				MaxOpenConns: cfg.Audit.SQLite.MaxOpenConns,
				MaxIdleConns: cfg.Audit.SQLite.MaxIdleConns,
				WALMode:      cfg.Audit.SQLite.WALMode,
				BusyTimeout:  cfg.Audit.SQLite.BusyTimeout,
			})
			if err != nil {
				return cli.NewCommandError("run", fmt.Errorf("failed to create SQLite storage: %w", err))
			}
		case "memory":
			store = storage.NewMemoryStorage()
		default:
			return cli.NewConfigError("audit.backend", fmt.Sprintf("unsupported backend: %s", cfg.Audit.Backend))
		}
		defer store.Close()

		checker.RegisterCheck("audit_store", store.Ping)

		recorder := audit.NewRecorder(store, &audit.RecorderConfig{
			Enabled:      true,
			AsyncBuffer:  cfg.Audit.Recorder.AsyncBuffer,
			WriteTimeout: cfg.Audit.Recorder.WriteTimeout,
		})
		defer recorder.Close()

		deps.Auditor = recorder
		deps.Store = store

		// Retention pruning on a cron schedule
		if cfg.Audit.Retention.PruneSchedule != "" {
			pruner := retention.NewPruner(store, &retention.Config{
				RetentionDays: cfg.Audit.Retention.Days,
				PruneSchedule: cfg.Audit.Retention.PruneSchedule,
				MaxRecords:    cfg.Audit.Retention.MaxRecords,
			})
			scheduler := retention.NewScheduler(pruner)
			if err := scheduler.Start(ctx); err != nil {
				logger.Warn("failed to start retention scheduler", "error", err)
			} else {
				defer scheduler.Stop()
			}
		}

		fmt.Println("✓ Audit store initialized")
	}

	// Hot-reload the log level when the config file changes
	if cfgFile != "" {
		watcher, err := config.NewFileWatcher(cfgFile, logger.Slog())
		if err != nil {
			logger.Warn("config watcher disabled", "error", err)
		} else {
			defer watcher.Stop()
			go func() {
				watchErr := watcher.Watch(ctx, func() error {
					reloaded, reloadErr := config.LoadConfigWithEnvOverrides(cfgFile)
					if reloadErr != nil {
						return reloadErr
					}
					if setErr := logger.SetLevel(reloaded.Telemetry.Logging.Level); setErr != nil {
						return setErr
					}
					logger.Info("log level reloaded", "level", reloaded.Telemetry.Logging.Level)
					return nil
				})
				if watchErr != nil {
					logger.Warn("config watcher stopped", "error", watchErr)
				}
			}()
		}
	}

	srv := server.NewServer(deps)

	fmt.Printf("✓ Server listening on %s\n", cfg.Server.ListenAddress)
	if cfg.Telemetry.Health.Enabled {
		fmt.Printf("✓ Health endpoint: http://%s%s\n", cfg.Server.ListenAddress, cfg.Telemetry.Health.Path)
	}
	if cfg.Telemetry.Metrics.Enabled {
		fmt.Printf("✓ Metrics endpoint: http://%s%s\n", cfg.Server.ListenAddress, cfg.Telemetry.Metrics.Path)
	}
	fmt.Println("\nPress Ctrl+C to stop")

	// Blocks until signal, context cancellation, or server error
	if err := srv.Start(ctx); err != nil {
		return cli.NewCommandError("run", err)
	}

	fmt.Println("✓ Server stopped")
	return nil
}

func printBanner(cfg *config.Config, logger *logging.Logger) {
	fmt.Printf("Courier v%s\n", Version)
	if cfgFile != "" {
		fmt.Printf("Loading configuration from: %s\n", cfgFile)
	} else {
		fmt.Println("No config file supplied, using defaults")
	}
	fmt.Println("✓ Configuration loaded")

	logger.Debug("upstream configured", "base_url", cfg.Telegram.BaseURL, "timeout", cfg.Telegram.Timeout.String())

	if cfg.Audit.Enabled {
		logger.Debug("audit enabled", "backend", cfg.Audit.Backend)
	}
}
