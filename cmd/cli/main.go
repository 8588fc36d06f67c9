package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/dmitrijs2005/goldtrack/internal/client/api"
	"github.com/dmitrijs2005/goldtrack/internal/client/cli"
	"github.com/dmitrijs2005/goldtrack/internal/client/config"
	"github.com/dmitrijs2005/goldtrack/internal/client/session"
	"github.com/dmitrijs2005/goldtrack/internal/logging"
)

func main() {
	cfg := config.LoadConfig()
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	sess := session.New(cfg.TokenFile, log)
	client := api.NewHTTPClient(cfg.ServerBaseURL)

	app := cli.NewApp(cfg, client, sess, log, os.Stdin, os.Stdout)
	app.Run(context.Background())
}
