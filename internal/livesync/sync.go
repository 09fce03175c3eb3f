package livesync

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"

	"github.com/Matthieu-Gauthier/octagon-sub000/clients/octagon_api_client"
	"github.com/Matthieu-Gauthier/octagon-sub000/internal/events"
	"github.com/Matthieu-Gauthier/octagon-sub000/internal/models"
)

type Config struct {
	PollInterval time.Duration
}

func DefaultConfig() Config {
	return Config{
		PollInterval: 30 * time.Second,
	}
}

// EventsApp is the slice of the events application the syncer drives.
type EventsApp interface {
	ListTrackedEvents(ctx context.Context) ([]models.Event, error)
	AdvanceEventStatus(ctx context.Context, id uuid.UUID, next models.EventStatus) (*models.Event, error)
	FinishEventIfComplete(ctx context.Context, id uuid.UUID) (*models.Event, error)
	SetFightResult(ctx context.Context, fightID uuid.UUID, result models.FightResult) (*models.Fight, error)
	UpsertFighterStats(ctx context.Context, req events.UpsertFighterRequest) (*models.Fighter, error)
}

// CardSource is the external data API surface the syncer reads from.
type CardSource interface {
	GetEventCard(ctx context.Context, eventID uuid.UUID) (*octagon_api_client.Card, error)
	GetFighter(ctx context.Context, fighterID uuid.UUID) (*octagon_api_client.Fighter, error)
}

// Syncer polls the data API for every tracked event and folds what it finds
// back through the events app. Every write it performs is idempotent, so a
// cycle that partially fails is simply retried whole on the next tick.
type Syncer struct {
	app    EventsApp
	source CardSource
	clock  clockwork.Clock
	config Config

	mu       sync.Mutex
	running  bool
	stopChan chan struct{}
	wg       sync.WaitGroup
}

func NewSyncer(app EventsApp, source CardSource, clock clockwork.Clock, cfg Config) *Syncer {
	return &Syncer{
		app:      app,
		source:   source,
		clock:    clock,
		config:   cfg,
		stopChan: make(chan struct{}),
	}
}

func (s *Syncer) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return fmt.Errorf("live sync already running")
	}
	s.running = true
	s.mu.Unlock()

	s.wg.Add(1)
	go s.run(ctx)

	log.Info().
		Dur("poll_interval", s.config.PollInterval).
		Msg("live sync started")
	return nil
}

func (s *Syncer) Stop() error {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return fmt.Errorf("live sync not running")
	}
	s.running = false
	s.mu.Unlock()

	close(s.stopChan)
	s.wg.Wait()

	log.Info().Msg("live sync stopped")
	return nil
}

func (s *Syncer) run(ctx context.Context) {
	defer s.wg.Done()

	ticker := s.clock.NewTicker(s.config.PollInterval)
	defer ticker.Stop()

	// Sync immediately on start
	s.SyncOnce(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-s.stopChan:
			return
		case <-ticker.Chan():
			s.SyncOnce(ctx)
		}
	}
}

// SyncOnce runs a single sync cycle over all tracked events. Failures are
// logged and swallowed; the next tick picks up where this one failed.
func (s *Syncer) SyncOnce(ctx context.Context) {
	tracked, err := s.app.ListTrackedEvents(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to list tracked events")
		return
	}

	for _, event := range tracked {
		if err := s.syncEvent(ctx, event); err != nil {
			log.Error().
				Err(err).
				Str("event_id", event.ID.String()).
				Msg("failed to sync event")
		}
		if ctx.Err() != nil {
			return
		}
	}
}

func (s *Syncer) syncEvent(ctx context.Context, event models.Event) error {
	card, err := s.source.GetEventCard(ctx, event.ID)
	if err != nil {
		return fmt.Errorf("failed to fetch card: %w", err)
	}

	if status, ok := apiEventStatus(card.Event.Status); ok && status != event.Status {
		if _, err := s.app.AdvanceEventStatus(ctx, event.ID, status); err != nil {
			// A stale API snapshot can report an earlier status; keep going.
			log.Warn().
				Err(err).
				Str("event_id", event.ID.String()).
				Str("status", string(status)).
				Msg("skipping status change")
		}
	}

	var finished []octagon_api_client.Fight
	for _, fight := range card.Fights {
		if fight.Result == nil || !strings.EqualFold(fight.Status, octagon_api_client.APIStatusFinished) {
			continue
		}
		result := models.FightResult{
			WinnerID: fight.Result.WinnerID,
			Method:   fight.Result.Method,
			Round:    fight.Result.Round,
			Time:     fight.Result.Time,
		}
		if _, err := s.app.SetFightResult(ctx, fight.ID, result); err != nil {
			log.Error().
				Err(err).
				Str("fight_id", fight.ID.String()).
				Msg("failed to apply fight result")
			continue
		}
		finished = append(finished, fight)
	}

	var errs []error
	for _, fight := range finished {
		for _, fighterID := range []uuid.UUID{fight.FighterAID, fight.FighterBID} {
			if err := s.refreshFighter(ctx, fighterID); err != nil {
				errs = append(errs, err)
			}
		}
	}

	if len(finished) > 0 {
		if _, err := s.app.FinishEventIfComplete(ctx, event.ID); err != nil {
			errs = append(errs, fmt.Errorf("failed to finish event: %w", err))
		}
	}

	return errors.Join(errs...)
}

func (s *Syncer) refreshFighter(ctx context.Context, fighterID uuid.UUID) error {
	fighter, err := s.source.GetFighter(ctx, fighterID)
	if err != nil {
		return fmt.Errorf("failed to fetch fighter %s: %w", fighterID, err)
	}

	_, err = s.app.UpsertFighterStats(ctx, events.UpsertFighterRequest{
		ID:       fighter.ID,
		Name:     fighter.Name,
		Nickname: fighter.Nickname,
		Division: fighter.Division,
		Wins:     fighter.Wins,
		Losses:   fighter.Losses,
		Draws:    fighter.Draws,
	})
	if err != nil {
		return fmt.Errorf("failed to upsert fighter %s: %w", fighterID, err)
	}
	return nil
}

func apiEventStatus(raw string) (models.EventStatus, bool) {
	switch strings.ToLower(raw) {
	case octagon_api_client.APIStatusScheduled:
		return models.EventStatusScheduled, true
	case octagon_api_client.APIStatusLive:
		return models.EventStatusLive, true
	case octagon_api_client.APIStatusFinished:
		return models.EventStatusFinished, true
	default:
		return "", false
	}
}
