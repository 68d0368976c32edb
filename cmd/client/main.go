package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/dmitrijs2005/interviewprep/internal/client/cli"
	"github.com/dmitrijs2005/interviewprep/internal/client/config"
	"github.com/dmitrijs2005/interviewprep/internal/logging"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()
	logger := logging.NewTextLogger(os.Stderr, slog.LevelInfo)

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		logger.Error(ctx, "client start failed", "error", err)
		os.Exit(1)
	}

	app.Run(ctx)

}
