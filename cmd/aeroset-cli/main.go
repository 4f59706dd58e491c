// Command aeroset-cli is an interactive settings console for a flight
// controller parameter store.
//
// It builds the full settings catalog, applies defaults, optionally
// restores the last saved snapshot, and drops into a readline shell
// for inspecting and changing values.
//
// Usage:
//
//	aeroset-cli [flags]
//
// Flags:
//
//	-config string     Station configuration file path (YAML)
//	-snapshot string   Snapshot file path (default "aeroset.snap")
//	-audit string      Audit log file path (default "aeroset.alog")
//	-restore           Restore the saved snapshot at startup
//	-log-level string  Log level: debug, info, warn, error (default "info")
//	-version           Print version and exit
//
// Examples:
//
//	# Start with defaults
//	aeroset-cli
//
//	# Start a minimal build without GPS or OSD settings
//	aeroset-cli -config station.yaml
//
//	# Restore the previous session's values
//	aeroset-cli -restore -snapshot bench.snap
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/aeroset/aeroset-go/cmd/aeroset-cli/interactive"
	"github.com/aeroset/aeroset-go/pkg/auditlog"
	"github.com/aeroset/aeroset-go/pkg/catalog"
	"github.com/aeroset/aeroset-go/pkg/snapshot"
	"github.com/aeroset/aeroset-go/pkg/version"
)

// Config holds the command configuration.
type Config struct {
	ConfigFile   string
	SnapshotPath string
	AuditPath    string
	Restore      bool
	LogLevel     string
	ShowVersion  bool
}

var config Config

func init() {
	flag.StringVar(&config.ConfigFile, "config", "", "Station configuration file path (YAML)")
	flag.StringVar(&config.SnapshotPath, "snapshot", "aeroset.snap", "Snapshot file path")
	flag.StringVar(&config.AuditPath, "audit", "aeroset.alog", "Audit log file path")
	flag.BoolVar(&config.Restore, "restore", false, "Restore the saved snapshot at startup")
	flag.StringVar(&config.LogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	flag.BoolVar(&config.ShowVersion, "version", false, "Print version and exit")
}

func main() {
	flag.Parse()

	if config.ShowVersion {
		fmt.Println("aeroset-cli", version.Current)
		return
	}

	logger := setupLogging(config.LogLevel)

	opts := catalog.Options{}
	if config.ConfigFile != "" {
		raw, err := LoadStationConfig(config.ConfigFile)
		if err != nil {
			logger.Error("failed to load station config", "error", err)
			os.Exit(1)
		}
		opts, err = raw.CatalogOptions()
		if err != nil {
			logger.Error("invalid station config", "error", err)
			os.Exit(1)
		}
		if raw.SnapshotPath != "" {
			config.SnapshotPath = raw.SnapshotPath
		}
		if raw.AuditPath != "" {
			config.AuditPath = raw.AuditPath
		}
	}

	// Registry consistency failures are fatal; a broken declaration
	// table must never reach the operator.
	sys, err := catalog.New(opts)
	if err != nil {
		logger.Error("settings catalog is inconsistent", "error", err)
		os.Exit(1)
	}
	logger.Info("settings catalog ready", "settings", sys.Registry.Count())

	fileAudit, err := auditlog.NewFileLogger(config.AuditPath)
	if err != nil {
		logger.Error("failed to open audit log", "path", config.AuditPath, "error", err)
		os.Exit(1)
	}
	defer fileAudit.Close()
	audit := auditlog.NewMultiLogger(fileAudit, auditlog.NewSlogAdapter(logger))

	store := snapshot.NewStore(config.SnapshotPath)

	if config.Restore {
		if err := restoreSnapshot(sys, store, audit, logger); err != nil {
			logger.Error("snapshot restore failed", "error", err)
			os.Exit(1)
		}
	}

	console, err := interactive.New(sys, store, audit)
	if err != nil {
		logger.Error("failed to start console", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	console.Run(ctx, cancel)
}

func setupLogging(level string) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
	slog.SetDefault(logger)
	return logger
}

func restoreSnapshot(sys *catalog.System, store *snapshot.Store, audit auditlog.Logger, logger *slog.Logger) error {
	snap, err := store.Load()
	if err != nil {
		return err
	}
	if snap == nil {
		logger.Info("no snapshot to restore", "path", config.SnapshotPath)
		return nil
	}

	report, err := snapshot.Apply(snap, sys.Accessor, audit)
	if err != nil {
		return err
	}

	logger.Info("snapshot restored",
		"id", snap.ID,
		"applied", report.Applied,
		"skipped", len(report.Skipped))
	for _, skip := range report.Skipped {
		logger.Warn("snapshot entry skipped",
			"setting", skip.Entry.Name,
			"reason", skip.Reason)
	}
	if !report.Clean() {
		fmt.Fprintf(os.Stderr, "warning: %d snapshot entries were skipped\n", len(report.Skipped))
	}
	return nil
}
