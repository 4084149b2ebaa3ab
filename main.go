package main

import (
	"log/slog"
	"os"

	"github.com/glarsen/timedata-go/cmd"
	"github.com/glarsen/timedata-go/internal/conf"
	"github.com/glarsen/timedata-go/internal/logging"
)

func main() {
	logging.Init()

	settings, err := conf.Load()
	if err != nil {
		logging.Fatal("Error loading configuration", "error", err)
	}

	logging.SetLevel(logging.ParseLevel(settings.Main.Log.Level))
	if settings.Main.Debug {
		logging.SetLevel(slog.LevelDebug)
	}

	rootCmd := cmd.RootCommand(settings)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
