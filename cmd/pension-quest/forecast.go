package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/iwvelando/pension-quest/internal/config"
	"github.com/iwvelando/pension-quest/internal/forecast"
	"github.com/iwvelando/pension-quest/internal/optimizer"
	"github.com/iwvelando/pension-quest/pkg/constants"
	"github.com/iwvelando/pension-quest/pkg/output"
	"github.com/iwvelando/pension-quest/pkg/validation"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var forecastCmd = &cobra.Command{
	Use:   "forecast",
	Short: "Project the configured answers for every active scenario",
	RunE:  runForecast,
}

func runForecast(cmd *cobra.Command, args []string) error {
	if _, err := os.Stat(configLocation); errors.Is(err, fs.ErrNotExist) {
		err = fmt.Errorf("configuration %s not found, start from %s: %w", configLocation, constants.ExampleConfigFile, err)
		fatalf("runForecast", "failed to load configuration at "+configLocation, err)
		return err
	}

	conf, err := config.LoadConfiguration(configLocation)
	if err != nil {
		fatalf("runForecast", "failed to load configuration at "+configLocation, err)
		return err
	}

	logger, err := initializeLogger(conf.Logging, logLevel)
	if err != nil {
		fatalf("runForecast", "failed to initialize logger", err)
		return err
	}
	defer func() {
		_ = logger.Sync()
	}()

	format := resolveOutputFormat(conf.Output.Format, outputFormat)
	if err := validation.ValidateOutputFormat(format); err != nil {
		logger.Error(err.Error(),
			zap.String("op", "runForecast"),
		)
		return err
	}

	for _, warning := range conf.ValidateConfiguration() {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "runForecast"),
		)
	}

	now := time.Now()
	results, err := forecast.GetForecast(logger, *conf, now)
	if err != nil {
		logger.Error("failed to compute forecast",
			zap.String("op", "runForecast"),
			zap.Error(err),
		)
		return err
	}

	runner, err := optimizer.NewRunner(logger, conf, now)
	if err != nil {
		logger.Error("failed to initialize optimizer",
			zap.String("op", "runForecast"),
			zap.Error(err),
		)
		return err
	}
	optimized, err := runner.Run()
	if err != nil {
		logger.Error("failed to run optimizer",
			zap.String("op", "runForecast"),
			zap.Error(err),
		)
		return err
	}
	optimized.Apply(results)

	if err := output.Write(cmd.OutOrStdout(), format, results); err != nil {
		logger.Error("failed to write forecast",
			zap.String("op", "runForecast"),
			zap.String("format", format),
			zap.Error(err),
		)
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

// resolveOutputFormat applies the CLI override over the configured format.
func resolveOutputFormat(configured, override string) string {
	if override != "" {
		return override
	}
	if configured != "" {
		return configured
	}
	return constants.OutputFormatPretty
}
