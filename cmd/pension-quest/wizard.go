package main

import (
	"errors"
	"io/fs"
	"os"
	"time"

	"github.com/iwvelando/pension-quest/internal/config"
	"github.com/iwvelando/pension-quest/internal/projection"
	"github.com/iwvelando/pension-quest/internal/tui"
	"github.com/iwvelando/pension-quest/pkg/validation"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var wizardCmd = &cobra.Command{
	Use:   "wizard",
	Short: "Answer the questionnaire interactively in the terminal",
	RunE:  runWizard,
}

func runWizard(cmd *cobra.Command, args []string) error {
	assumptions := projection.DefaultAssumptions
	loggingConfig := config.LoggingConfig{}

	// The config file is optional here; it only supplies assumptions and logging.
	if _, statErr := os.Stat(configLocation); statErr == nil {
		conf, err := config.LoadConfiguration(configLocation)
		if err != nil {
			fatalf("runWizard", "failed to load configuration at "+configLocation, err)
			return err
		}
		assumptions = conf.ProjectionAssumptions()
		loggingConfig = conf.Logging
	} else if !errors.Is(statErr, fs.ErrNotExist) {
		fatalf("runWizard", "failed to stat configuration at "+configLocation, statErr)
		return statErr
	}

	// Log lines written to the terminal would tear the questionnaire, so
	// only warnings and above reach stdout unless a file is configured.
	if loggingConfig.OutputFile == "" && logLevel == "" {
		loggingConfig.Level = "warn"
	}
	logger, err := initializeLogger(loggingConfig, logLevel)
	if err != nil {
		fatalf("runWizard", "failed to initialize logger", err)
		return err
	}
	defer func() {
		_ = logger.Sync()
	}()

	for _, warning := range validation.ValidateAssumptions(assumptions.BenefitFactor, assumptions.SalaryGrowthRate) {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "runWizard"),
		)
	}

	final, err := tui.Run(assumptions, time.Now)
	if err != nil {
		logger.Error("questionnaire failed",
			zap.String("op", "runWizard"),
			zap.Error(err),
		)
		return err
	}

	if final.Aborted() {
		logger.Debug("questionnaire aborted",
			zap.String("op", "runWizard"),
			zap.String("step", final.State().Step.String()),
		)
		return nil
	}

	if p := final.State().Projection; p != nil {
		logger.Debug("questionnaire complete",
			zap.String("op", "runWizard"),
			zap.Float64("monthlyPension", p.MonthlyPension),
			zap.Int("yearsOfService", p.YearsOfService),
		)
	}
	return nil
}
