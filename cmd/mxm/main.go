package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/devaoto/go-musixmatch/internal/app"
	"github.com/devaoto/go-musixmatch/internal/config"
	"github.com/devaoto/go-musixmatch/internal/logger"
)

const usage = `usage: mxm <endpoint> [key=value ...]
       mxm endpoints

Calls a Musixmatch endpoint by its wire name and prints the response
envelope, e.g.:

  mxm track.search q_artist=Daft\ Punk q_track=One\ More\ Time
  mxm music.genres.get

The API key is read from MUSIXMATCH_API_KEY (or a .env file).`

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "mxm: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := logger.Init(cfg)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	runner, err := app.NewRunner(cfg, log, os.Stdout)
	if err != nil {
		return err
	}

	if os.Args[1] == "endpoints" {
		return runner.ListEndpoints()
	}

	return runner.Run(ctx, os.Args[1], os.Args[2:])
}
