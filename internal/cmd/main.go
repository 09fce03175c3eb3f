package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Matthieu-Gauthier/octagon-sub000/clients/octagon_api_client"
	"github.com/Matthieu-Gauthier/octagon-sub000/internal/eventbus"
	"github.com/Matthieu-Gauthier/octagon-sub000/internal/livesync"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Warn().Err(err).Msg("could not load .env file")
	}
	setupLogging()

	config, err := loadConfig(getEnv("CONFIG_PATH", "config.yaml"))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	database, err := setupDatabase()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to setup database")
	}
	defer database.Close()

	publisher, closePublisher, err := setupPublisher(config)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to setup publisher")
	}
	defer closePublisher()

	clock := clockwork.NewRealClock()
	services := setupServices(database, publisher, clock)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if config.Sync.Enabled {
		pollInterval, err := config.SyncPollInterval()
		if err != nil {
			log.Fatal().Err(err).Msg("invalid sync configuration")
		}
		client := octagon_api_client.NewOctagonApiClient(config.Sync.APIBaseURL, os.Getenv("OCTAGON_API_KEY"))
		syncer := livesync.NewSyncer(services.EventsApp, client, clock, livesync.Config{
			PollInterval: pollInterval,
		})
		if err := syncer.Start(ctx); err != nil {
			log.Fatal().Err(err).Msg("failed to start live sync")
		}
		defer func() {
			if err := syncer.Stop(); err != nil {
				log.Error().Err(err).Msg("failed to stop live sync")
			}
		}()
	}

	server := setupServer(services)
	go func() {
		log.Info().Str("addr", server.Addr).Msg("server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
}

func setupLogging() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	level, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if getEnv("LOG_PRETTY", "") != "" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}

func setupPublisher(config *Config) (eventbus.Publisher, func(), error) {
	if !config.NATS.Enabled {
		return eventbus.NopPublisher{}, func() {}, nil
	}

	cfg := eventbus.DefaultJetStreamConfig()
	if config.NATS.URL != "" {
		cfg.URL = config.NATS.URL
	}
	if config.NATS.StreamName != "" {
		cfg.StreamName = config.NATS.StreamName
	}

	publisher, err := eventbus.NewJetStreamPublisher(cfg)
	if err != nil {
		return nil, nil, err
	}
	return publisher, func() {
		if err := publisher.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close publisher")
		}
	}, nil
}
