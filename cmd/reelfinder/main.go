package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/reelfinder/reelfinder/internal/api"
	"github.com/reelfinder/reelfinder/internal/catalog"
	"github.com/reelfinder/reelfinder/internal/config"
	"github.com/reelfinder/reelfinder/internal/logger"
	"github.com/reelfinder/reelfinder/internal/providers"
	"github.com/reelfinder/reelfinder/internal/search"
	"github.com/reelfinder/reelfinder/internal/tui"
)

func main() {
	_ = godotenv.Load()

	configPath := flag.String("config", "", "Path to config file")
	serve := flag.Bool("serve", false, "Run the HTTP API facade instead of the TUI")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := newLogger(cfg, *serve)
	defer log.Close()

	catalogClient := catalog.NewClient(cfg.Catalog, log.Logger)
	providersClient := providers.NewClient(cfg.Providers, log.Logger)
	vocabulary := catalog.NewVocabulary(catalogClient, log.Logger)
	service := search.NewService(catalogClient, providersClient, cfg.Providers.Country, log.Logger)

	if *serve {
		runServer(cfg, service, vocabulary, log)
		return
	}

	runTUI(service, vocabulary, log)
}

// newLogger builds the application logger. In TUI mode console output
// would corrupt the screen, so logs go to the configured file only, or
// nowhere when no path is set.
func newLogger(cfg *config.Config, serve bool) *logger.Logger {
	if !serve && cfg.Logging.Path == "" {
		return &logger.Logger{Logger: zerolog.New(io.Discard)}
	}
	return logger.New(logger.Config{
		Level:    cfg.Logging.Level,
		Format:   cfg.Logging.Format,
		Path:     cfg.Logging.Path,
		FileOnly: !serve,
	})
}

func runTUI(service *search.Service, vocabulary *catalog.Vocabulary, log *logger.Logger) {
	defer vocabulary.Close()

	bridge := tui.NewEventBridge()
	service.SetNotifier(bridge)

	program := tea.NewProgram(tui.New(service, vocabulary, bridge), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		log.Error().Err(err).Msg("TUI exited with error")
		os.Exit(1)
	}
}

func runServer(cfg *config.Config, service *search.Service, vocabulary *catalog.Vocabulary, log *logger.Logger) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Warm the genre vocabulary; failures keep the fallback list.
	go vocabulary.Refresh(ctx)

	server := api.NewServer(service, vocabulary, log.Logger)

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start(cfg.Server.Address())
	}()

	select {
	case err := <-errCh:
		if err != nil {
			log.Error().Err(err).Msg("API server failed")
			os.Exit(1)
		}
	case <-ctx.Done():
		log.Info().Msg("Shutting down")
		vocabulary.Close()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("Shutdown failed")
		}
	}
}
