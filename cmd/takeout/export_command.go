package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"takeout/internal/config"
	"takeout/internal/logging"
	"takeout/internal/runlock"
	"takeout/internal/services"
	"takeout/internal/services/somtoday"
	"takeout/internal/takeout"
)

func runExport(cmd *cobra.Command, ctx *commandContext, token string, flags exportFlags) error {
	base, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	cfg, timeout, err := applyExportFlags(cmd, *base, flags)
	if err != nil {
		return err
	}

	logger, err := logging.NewFromConfig(cfg)
	if err != nil {
		return services.Wrap(services.ErrConfiguration, "logging", "init", "", err)
	}

	lock, err := runlock.Acquire(cfg.Paths.StateDir, cfg.Output.Dir)
	if err != nil {
		return err
	}
	logger.Debug("export lock acquired", logging.String("lock", lock.Path()))
	defer func() {
		if err := lock.Release(); err != nil {
			logger.Warn("failed to release export lock", logging.Error(err))
		}
	}()

	client, err := somtoday.New(cfg.API.BaseURL, token,
		somtoday.WithTimeout(timeout),
		somtoday.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	runCtx := services.WithRunID(cmd.Context(), uuid.NewString())
	exporter := takeout.NewExporter(client, cfg.Output.Dir, logger)
	if _, err := exporter.Run(runCtx); err != nil {
		logging.WithContext(runCtx, logger).Error("export failed",
			logging.String(logging.FieldEventType, "export_failed"),
			logging.String(logging.FieldErrorKind, services.Kind(err)),
			logging.Error(err),
		)
		return err
	}
	return nil
}

// applyExportFlags layers explicitly set flags over the loaded config.
func applyExportFlags(cmd *cobra.Command, cfg config.Config, flags exportFlags) (config.Config, time.Duration, error) {
	fs := cmd.Flags()
	if fs.Changed("output") {
		dir := strings.TrimSpace(flags.output)
		if dir == "" {
			return cfg, 0, services.Wrap(services.ErrConfiguration, "flags", "output", "must not be empty", nil)
		}
		expanded, err := config.ExpandPath(dir)
		if err != nil {
			return cfg, 0, services.Wrap(services.ErrConfiguration, "flags", "output", "", err)
		}
		cfg.Output.Dir = expanded
	}
	if fs.Changed("log-level") {
		cfg.Logging.Level = strings.ToLower(strings.TrimSpace(flags.logLevel))
	}

	timeout := cfg.RequestTimeout()
	if fs.Changed("timeout") {
		if flags.timeout < 0 {
			return cfg, 0, services.Wrap(services.ErrConfiguration, "flags", "timeout", fmt.Sprintf("must be >= 0, got %s", flags.timeout), nil)
		}
		timeout = flags.timeout
	}

	if err := cfg.Validate(); err != nil {
		return cfg, 0, services.Wrap(services.ErrConfiguration, "flags", "validate", "", err)
	}
	return cfg, timeout, nil
}
