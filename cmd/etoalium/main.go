// Command etoalium opens the showcase in a window.
//
//	etoalium -config etoalium.yaml -path /works/dm-seigaiha
package main

import (
	"flag"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/phanxgames/etoalium"
	"github.com/phanxgames/etoalium/internal/config"
)

func main() {
	// ---- Flags (override the config file when set) ----
	var (
		configPath = flag.String("config", "etoalium.yaml", "path to config file (.yaml or .toml)")
		path       = flag.String("path", "", "start at this URL path")
		theme      = flag.String("theme", "", "theme: dark | light")
		script     = flag.String("script", "", "navigation script (JSON) to replay")
		debug      = flag.Bool("debug", false, "log per-frame stats")
		showFPS    = flag.Bool("fps", false, "show the FPS overlay")
		level      = flag.String("log-level", "", "log level: trace | debug | info | warn | error")
	)
	flag.Parse()

	// ---- Logging ----
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", *configPath).Msg("config load failed")
	}

	// ---- Effective settings ----
	if *path != "" {
		cfg.StartPath = *path
	}
	if *theme != "" {
		cfg.Theme = *theme
	}
	if *script != "" {
		cfg.Script = *script
	}
	if *level != "" {
		cfg.LogLevel = *level
	}
	cfg.Debug = cfg.Debug || *debug
	cfg.ShowFPS = cfg.ShowFPS || *showFPS

	lvl, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Warn().Str("level", cfg.LogLevel).Msg("unknown log level; using info")
		lvl = zerolog.InfoLevel
	}
	if cfg.Debug && lvl > zerolog.DebugLevel {
		lvl = zerolog.DebugLevel
	}
	logger := log.Logger.Level(lvl)

	th, err := etoalium.ParseTheme(cfg.Theme)
	if err != nil {
		logger.Warn().Err(err).Msg("using dark theme")
	}

	app, err := etoalium.NewApp(etoalium.AppConfig{
		Width:     cfg.Window.Width,
		Height:    cfg.Window.Height,
		StartPath: cfg.StartPath,
		Theme:     th,
		Debug:     cfg.Debug,
		ShowFPS:   cfg.ShowFPS,
		Logger:    logger,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("app init failed")
	}

	if cfg.Script != "" {
		data, err := os.ReadFile(cfg.Script)
		if err != nil {
			logger.Fatal().Err(err).Str("script", cfg.Script).Msg("read script")
		}
		s, err := etoalium.LoadScript(data)
		if err != nil {
			logger.Fatal().Err(err).Str("script", cfg.Script).Msg("load script")
		}
		app.SetScript(s)
	}

	if err := etoalium.Run(app, etoalium.RunConfig{
		Title:     cfg.Window.Title,
		Width:     cfg.Window.Width,
		Height:    cfg.Window.Height,
		Resizable: cfg.Window.Resizable,
	}); err != nil {
		logger.Fatal().Err(err).Msg("run failed")
	}
}
