package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/cliplens/internal/app"
	"github.com/hyperifyio/cliplens/internal/httpapi"
)

func main() {
	// Logging setup
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	var (
		listen     string
		configPath string
		verbose    bool
	)
	flag.StringVar(&listen, "listen", "", "Bind address, e.g. 127.0.0.1:8532")
	flag.StringVar(&configPath, "config", "cliplens.yml", "Path to YAML config file")
	flag.BoolVar(&verbose, "v", false, "Verbose logging")
	flag.Parse()

	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	cfg := app.Config{
		ListenAddr: listen,
		UserAgent:  os.Getenv("CLIPLENS_UA"),
		Vision: app.VisionConfig{
			BaseURL: os.Getenv("CLIPLENS_VISION_BASE"),
			APIKey:  os.Getenv("CLIPLENS_VISION_KEY"),
			Model:   os.Getenv("CLIPLENS_VISION_MODEL"),
		},
	}
	explicitConfig := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "config" {
			explicitConfig = true
		}
	})
	fc, err := app.LoadFileConfig(configPath, explicitConfig)
	if err != nil {
		log.Error().Err(err).Msg("load config")
		os.Exit(1)
	}
	fc.Merge(&cfg)
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = "127.0.0.1:8532"
	}

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           httpapi.New(app.New(cfg)).Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info().Str("addr", cfg.ListenAddr).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("server failed")
			stop()
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Warn().Err(err).Msg("shutdown")
	}
	log.Info().Msg("stopped")
}
