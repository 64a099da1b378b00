package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/iwvelando/pension-quest/internal/server"
	"github.com/iwvelando/pension-quest/pkg/constants"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	serverConfigLocation string
	serverAddress        string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the questionnaire over an HTTP JSON API",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serverConfigLocation, "server-config", constants.DefaultServerConfigFile, "path to server configuration file")
	serveCmd.Flags().StringVar(&serverAddress, "address", "", "listen address override (e.g. :8080)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := server.LoadConfig(serverConfigLocation)
	if err != nil {
		fatalf("runServe", "failed to load server configuration at "+serverConfigLocation, err)
		return err
	}
	if serverAddress != "" {
		cfg.Address = serverAddress
	}

	logger, err := initializeLogger(cfg.Logging, logLevel)
	if err != nil {
		fatalf("runServe", "failed to initialize logger", err)
		return err
	}
	defer func() {
		_ = logger.Sync()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("starting server",
		zap.String("op", "runServe"),
		zap.String("address", cfg.Address),
		zap.String("version", version),
		zap.Int64("maxRequestSizeBytes", cfg.RequestSizeBytes()),
	)

	handler := server.NewHandler(logger, cfg, version)
	if err := server.ListenAndServe(ctx, logger, cfg, handler); err != nil {
		logger.Error("server stopped",
			zap.String("op", "runServe"),
			zap.Error(err),
		)
		return err
	}

	logger.Info("server shut down",
		zap.String("op", "runServe"),
	)
	return nil
}
