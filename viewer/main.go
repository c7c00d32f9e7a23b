package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/quatray/go-quaternion-julia/pkg/config"
)

func main() {
	configPath := flag.String("config", "", "Path to a TOML scene options file (watched for changes)")
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
	})

	cfg := config.Default()
	var updates <-chan config.Config

	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			logger.Fatalf("loading config: %v", err)
		}
		cfg = loaded

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		updates, err = config.Watch(ctx, *configPath, logger)
		if err != nil {
			logger.Fatalf("watching config: %v", err)
		}
		logger.Infof("watching %s for changes", *configPath)
	}

	app := NewApp(cfg, updates, logger)

	ebiten.SetWindowTitle("Quaternion Julia")
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetTPS(60)
	if err := ebiten.RunGame(app); err != nil {
		logger.Fatalf("viewer exited: %v", err)
	}
}
