package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/yourusername/trade-journal/internal/config"
	"github.com/yourusername/trade-journal/internal/importer"
	"github.com/yourusername/trade-journal/internal/logger"
	"github.com/yourusername/trade-journal/internal/metrics"
	"github.com/yourusername/trade-journal/internal/models"
	"github.com/yourusername/trade-journal/internal/report"
	"github.com/yourusername/trade-journal/internal/scheduler"
	"github.com/yourusername/trade-journal/internal/server"
	"github.com/yourusername/trade-journal/internal/stats"
)

// Build information - set via ldflags
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var (
	configFile string
	csvPath    string
	htmlPath   string

	appLogger   *logrus.Logger
	auditLogger *logger.ImportAuditLogger
	cfg         *config.Config
	session     *stats.Session
	source      importer.Source
	fillsPath   string
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "./config/config.yaml", "Path to configuration file")

	reportCmd.Flags().StringVar(&csvPath, "csv", "", "Write a CSV export to the given path")
	reportCmd.Flags().StringVar(&htmlPath, "html", "", "Write an HTML report to the given path")

	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}

var rootCmd = &cobra.Command{
	Use:   "journal",
	Short: "Trading journal analytics",
	Long:  `Imports trading journal exports and computes performance statistics.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "version" {
			return nil
		}
		if err := setupDependencies(); err != nil {
			return fmt.Errorf("failed to setup dependencies: %w", err)
		}
		return nil
	},
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Import the journal and print a report",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

		if err := importAll(ctx, "manual"); err != nil {
			return err
		}

		bundle := session.Bundle()
		fmt.Print(report.GenerateConsoleReport(bundle))

		if csvPath != "" {
			if err := report.GenerateCSVExport(bundle, csvPath); err != nil {
				return fmt.Errorf("failed to write CSV export: %w", err)
			}
			appLogger.WithField("path", csvPath).Info("CSV export written")
		}
		if htmlPath != "" {
			if err := report.GenerateHTMLReport(bundle, htmlPath); err != nil {
				return fmt.Errorf("failed to write HTML report: %w", err)
			}
			appLogger.WithField("path", htmlPath).Info("HTML report written")
		}

		return nil
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Import the journal and serve statistics over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		importCtx, importCancel := context.WithTimeout(ctx, 2*time.Minute)
		if err := importAll(importCtx, "startup"); err != nil {
			// The server still starts so probes and metrics are
			// reachable; it reports not ready until an import lands.
			appLogger.WithError(err).Error("Initial import failed")
		}
		importCancel()

		metricsPath := ""
		if cfg.Metrics.Enabled {
			metricsPath = cfg.Metrics.Path
		}

		srv := server.NewServer(server.Config{
			ServiceName: cfg.App.Name,
			Version:     Version,
			Commit:      GitCommit,
			Port:        fmt.Sprintf("%d", cfg.Server.Port),
			MetricsPath: metricsPath,
			Logger:      appLogger,
			Session:     session,
		})
		if err := srv.Start(ctx); err != nil {
			return fmt.Errorf("failed to start server: %w", err)
		}
		srv.SetReady(true)

		var refresher *scheduler.Refresher
		if cfg.Refresh.Enabled {
			refresher = scheduler.NewRefresher(func(ctx context.Context) error {
				return importAll(ctx, "scheduled")
			}, appLogger)
			if err := refresher.ScheduleRefresh(cfg.Refresh.Cron); err != nil {
				return fmt.Errorf("failed to schedule refresh: %w", err)
			}
			if err := refresher.Start(); err != nil {
				return fmt.Errorf("failed to start scheduler: %w", err)
			}
		}

		appLogger.WithFields(logrus.Fields{
			"port":    cfg.Server.Port,
			"version": Version,
		}).Info("Trade journal serving")

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		appLogger.Info("Shutting down")
		if refresher != nil {
			refresher.Stop()
		}
		srv.SetReady(false)
		return srv.Shutdown()
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("journal %s (commit %s, built %s)\n", Version, GitCommit, BuildDate)
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func setupDependencies() error {
	var err error
	cfg, err = config.LoadWithDefaults(configFile)
	if err != nil {
		return err
	}

	// Overlay secrets when a secrets manager location is configured
	if region, secretName := os.Getenv("TRADE_JOURNAL_SECRETS_REGION"), os.Getenv("TRADE_JOURNAL_SECRETS_NAME"); region != "" && secretName != "" {
		if err := config.LoadSecretsFromAWS(cfg, region, secretName); err != nil {
			return fmt.Errorf("failed to load secrets: %w", err)
		}
	}

	if err := config.Validate(cfg); err != nil {
		return err
	}

	appLogger = logger.NewLogger(cfg.App.LogLevel, cfg.App.Environment)
	auditLogger = logger.NewImportAuditLogger(appLogger)
	metrics.InitRegistry()
	session = stats.NewSession(appLogger)
	source, err = buildSource(cfg, appLogger)
	if err != nil {
		return err
	}
	fillsPath = cfg.Source.FillsPath

	return nil
}

// buildSource assembles the summary source chain from configuration.
// A remote endpoint wins over a local file and gets a TTL cache in
// front of it.
func buildSource(cfg *config.Config, appLogger *logrus.Logger) (importer.Source, error) {
	if cfg.HasRemoteSource() {
		httpCfg := importer.HTTPSourceConfig{
			URL:          cfg.Source.SummaryURL,
			Token:        cfg.Source.Token,
			Timeout:      time.Duration(cfg.HTTP.TimeoutSeconds) * time.Second,
			MaxRetries:   cfg.HTTP.MaxRetries,
			RetryWaitMin: time.Duration(cfg.HTTP.RetryWaitMinMillis) * time.Millisecond,
			RetryWaitMax: time.Duration(cfg.HTTP.RetryWaitMaxMillis) * time.Millisecond,
			RateLimit:    cfg.HTTP.RequestsPerSecond,
		}
		remote := importer.NewHTTPSource(httpCfg, appLogger)
		if cfg.Source.CacheTTLSeconds > 0 {
			return importer.NewCachedSource(remote, time.Duration(cfg.Source.CacheTTLSeconds)*time.Second), nil
		}
		return remote, nil
	}
	if cfg.Source.SummaryPath == "" {
		return nil, models.ErrNoSourceConfigured
	}
	return importer.NewFileSource(cfg.Source.SummaryPath), nil
}

// importAll fetches the summary and fill list and replaces the session
// contents with the result.
func importAll(ctx context.Context, trigger string) error {
	start := time.Now()
	auditLogger.LogImportStarted(source.Name(), trigger, start)

	summaryText, err := source.Fetch(ctx)
	if err != nil {
		metrics.RecordImportFailure()
		auditLogger.LogImportFailed(source.Name(), trigger, err)
		return err
	}

	var trades []models.Trade
	if fillsPath != "" {
		fillSource := importer.NewFileSource(fillsPath)
		fillsText, err := fillSource.Fetch(ctx)
		if err != nil {
			metrics.RecordImportFailure()
			auditLogger.LogImportFailed(fillSource.Name(), trigger, err)
			return err
		}
		trades = importer.ParseFills(fillsText)
	}

	session.Import(summaryText, trades)
	metrics.RecordImport()

	bundle := session.Bundle()
	auditLogger.LogImportCompleted(source.Name(), bundle.ImportID.String(), len(trades), time.Since(start).Milliseconds())

	return nil
}
