package events

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/Matthieu-Gauthier/octagon-sub000/internal/apperrors"
	"github.com/Matthieu-Gauthier/octagon-sub000/internal/eventbus"
	"github.com/Matthieu-Gauthier/octagon-sub000/internal/models"
)

// EventsRepository defines what the app layer needs from the repository
type EventsRepository interface {
	CreateEvent(ctx context.Context, req CreateEventRequest) (*models.Event, error)
	GetEvent(ctx context.Context, id uuid.UUID) (*models.Event, error)
	GetEventWithFights(ctx context.Context, id uuid.UUID) (*models.Event, error)
	ListEvents(ctx context.Context) ([]models.Event, error)
	ListEventsByStatus(ctx context.Context, statuses []models.EventStatus) ([]models.Event, error)
	UpdateEventStatus(ctx context.Context, id uuid.UUID, status models.EventStatus) (*models.Event, error)
	DeleteEvent(ctx context.Context, id uuid.UUID) error
	CreateFight(ctx context.Context, req CreateFightRequest) (*models.Fight, error)
	GetFight(ctx context.Context, id uuid.UUID) (*models.Fight, error)
	GetFightWithEvent(ctx context.Context, id uuid.UUID) (*models.Fight, *models.Event, error)
	ListFightsByEvent(ctx context.Context, eventID uuid.UUID) ([]models.Fight, error)
	SetFightResult(ctx context.Context, id uuid.UUID, result models.FightResult) (*models.Fight, error)
	ClearFightResult(ctx context.Context, id uuid.UUID) (*models.Fight, error)
	CountUnfinishedFights(ctx context.Context, eventID uuid.UUID) (int, error)
	CreateFighter(ctx context.Context, req UpsertFighterRequest) (*models.Fighter, error)
	GetFighter(ctx context.Context, id uuid.UUID) (*models.Fighter, error)
	ListFighters(ctx context.Context) ([]models.Fighter, error)
	UpsertFighterStats(ctx context.Context, req UpsertFighterRequest) (*models.Fighter, error)
}

// App handles event, fight and fighter business logic
type App struct {
	repo      EventsRepository
	publisher eventbus.Publisher
}

// NewApp creates a new events App
func NewApp(repo EventsRepository, publisher eventbus.Publisher) *App {
	return &App{
		repo:      repo,
		publisher: publisher,
	}
}

// CreateEvent creates a new event with validation
func (a *App) CreateEvent(ctx context.Context, req CreateEventRequest) (*models.Event, error) {
	if req.Name == "" {
		return nil, apperrors.Validation("event name is required")
	}
	if req.Date.IsZero() {
		return nil, apperrors.Validation("event date is required")
	}
	if req.ID == uuid.Nil {
		req.ID = uuid.New()
	}

	event, err := a.repo.CreateEvent(ctx, req)
	if err != nil {
		return nil, err
	}

	log.Info().Str("event_id", event.ID.String()).Str("name", event.Name).Msg("created event")
	return event, nil
}

// GetEvent retrieves an event by ID
func (a *App) GetEvent(ctx context.Context, id uuid.UUID) (*models.Event, error) {
	return a.repo.GetEvent(ctx, id)
}

// GetEventWithFights retrieves an event with its full card
func (a *App) GetEventWithFights(ctx context.Context, id uuid.UUID) (*models.Event, error) {
	return a.repo.GetEventWithFights(ctx, id)
}

// ListEvents retrieves all events
func (a *App) ListEvents(ctx context.Context) ([]models.Event, error) {
	return a.repo.ListEvents(ctx)
}

// ListTrackedEvents retrieves events the live sync job still cares about
func (a *App) ListTrackedEvents(ctx context.Context) ([]models.Event, error) {
	return a.repo.ListEventsByStatus(ctx, []models.EventStatus{
		models.EventStatusScheduled,
		models.EventStatusLive,
	})
}

// AdvanceEventStatus moves an event's status forward. Transitions only ever
// run SCHEDULED -> LIVE -> FINISHED; re-applying the current status is a
// no-op so the sync job can safely repeat itself.
func (a *App) AdvanceEventStatus(ctx context.Context, id uuid.UUID, next models.EventStatus) (*models.Event, error) {
	event, err := a.repo.GetEvent(ctx, id)
	if err != nil {
		return nil, err
	}

	if event.Status == next {
		return event, nil
	}
	if !event.Status.CanTransitionTo(next) {
		return nil, apperrors.Validation("event status cannot go from %s to %s", event.Status, next)
	}

	updated, err := a.repo.UpdateEventStatus(ctx, id, next)
	if err != nil {
		return nil, err
	}

	a.publish(ctx, eventbus.SubjectEventStatusChanged, eventbus.EventStatusChanged{
		EventID: updated.ID,
		Status:  string(updated.Status),
	})

	log.Info().
		Str("event_id", id.String()).
		Str("from", string(event.Status)).
		Str("to", string(next)).
		Msg("event status advanced")
	return updated, nil
}

// FinishEventIfComplete marks an event FINISHED once every fight on its card
// has a result. Called by the live sync job after applying results.
func (a *App) FinishEventIfComplete(ctx context.Context, id uuid.UUID) (*models.Event, error) {
	event, err := a.repo.GetEvent(ctx, id)
	if err != nil {
		return nil, err
	}
	if event.Status == models.EventStatusFinished {
		return event, nil
	}

	remaining, err := a.repo.CountUnfinishedFights(ctx, id)
	if err != nil {
		return nil, err
	}
	if remaining > 0 {
		return event, nil
	}

	return a.AdvanceEventStatus(ctx, id, models.EventStatusFinished)
}

// DeleteEvent removes an event and, via the store's cascade, its fights
func (a *App) DeleteEvent(ctx context.Context, id uuid.UUID) error {
	if _, err := a.repo.GetEvent(ctx, id); err != nil {
		return err
	}
	if err := a.repo.DeleteEvent(ctx, id); err != nil {
		return err
	}
	log.Info().Str("event_id", id.String()).Msg("deleted event")
	return nil
}

// CreateFight adds a fight to an event's card with validation
func (a *App) CreateFight(ctx context.Context, req CreateFightRequest) (*models.Fight, error) {
	if req.FighterAID == req.FighterBID {
		return nil, apperrors.Validation("a fight needs two distinct fighters")
	}
	if req.Rounds != 3 && req.Rounds != 5 {
		return nil, apperrors.Validation("rounds must be 3 or 5, got %d", req.Rounds)
	}
	if _, err := a.repo.GetEvent(ctx, req.EventID); err != nil {
		return nil, err
	}
	if req.ID == uuid.Nil {
		req.ID = uuid.New()
	}

	fight, err := a.repo.CreateFight(ctx, req)
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("fight_id", fight.ID.String()).
		Str("event_id", fight.EventID.String()).
		Msg("created fight")
	return fight, nil
}

// GetFight retrieves a fight by ID
func (a *App) GetFight(ctx context.Context, id uuid.UUID) (*models.Fight, error) {
	return a.repo.GetFight(ctx, id)
}

// SetFightResult writes an official result onto a fight and freezes its
// predictions. Re-applying an identical result to a finished fight is a
// no-op so the sync job can repeat itself; a different result overwrites
// (admin correction).
func (a *App) SetFightResult(ctx context.Context, fightID uuid.UUID, result models.FightResult) (*models.Fight, error) {
	fight, err := a.repo.GetFight(ctx, fightID)
	if err != nil {
		return nil, err
	}

	if err := validateResult(fight, result); err != nil {
		return nil, err
	}

	// Round is only determinable for stoppages.
	if result.Method == models.MethodDecision || models.MethodHasNoWinner(result.Method) {
		result.Round = nil
	}

	if fight.Status == models.FightStatusFinished && resultEqual(fight, result) {
		return fight, nil
	}

	updated, err := a.repo.SetFightResult(ctx, fightID, result)
	if err != nil {
		return nil, err
	}

	a.publish(ctx, eventbus.SubjectFightResultSet, eventbus.FightResultSet{
		FightID:  updated.ID,
		EventID:  updated.EventID,
		WinnerID: updated.WinnerID,
		Method:   result.Method,
		Round:    updated.Round,
	})

	log.Info().
		Str("fight_id", fightID.String()).
		Str("method", result.Method).
		Msg("fight result set")
	return updated, nil
}

// ClearFightResult resets a fight to SCHEDULED and nulls its result fields.
// Predictions stay frozen or open purely on time grounds afterwards.
func (a *App) ClearFightResult(ctx context.Context, fightID uuid.UUID) (*models.Fight, error) {
	fight, err := a.repo.GetFight(ctx, fightID)
	if err != nil {
		return nil, err
	}
	if fight.Status == models.FightStatusScheduled {
		return fight, nil
	}

	updated, err := a.repo.ClearFightResult(ctx, fightID)
	if err != nil {
		return nil, err
	}

	a.publish(ctx, eventbus.SubjectFightResultCleared, eventbus.FightResultCleared{
		FightID: updated.ID,
		EventID: updated.EventID,
	})

	log.Info().Str("fight_id", fightID.String()).Msg("fight result cleared")
	return updated, nil
}

// GetFighter retrieves a fighter by ID
func (a *App) GetFighter(ctx context.Context, id uuid.UUID) (*models.Fighter, error) {
	return a.repo.GetFighter(ctx, id)
}

// ListFighters retrieves all fighters
func (a *App) ListFighters(ctx context.Context) ([]models.Fighter, error) {
	return a.repo.ListFighters(ctx)
}

// UpsertFighterStats creates or refreshes a fighter record from synced data
func (a *App) UpsertFighterStats(ctx context.Context, req UpsertFighterRequest) (*models.Fighter, error) {
	if req.ID == uuid.Nil {
		return nil, apperrors.Validation("fighter id is required")
	}
	if req.Name == "" {
		return nil, apperrors.Validation("fighter name is required")
	}
	return a.repo.UpsertFighterStats(ctx, req)
}

func (a *App) publish(ctx context.Context, subject string, payload interface{}) {
	if err := a.publisher.Publish(ctx, subject, payload); err != nil {
		// The write has already committed; publish failures are logged only.
		log.Error().Err(err).Str("subject", subject).Msg("failed to publish event")
	}
}

func validateResult(fight *models.Fight, result models.FightResult) error {
	if result.Method == "" {
		return apperrors.Validation("result method is required")
	}
	if models.MethodHasNoWinner(result.Method) {
		if result.WinnerID != nil {
			return apperrors.Validation("method %s cannot name a winner", result.Method)
		}
		return nil
	}
	if result.WinnerID == nil {
		return apperrors.Validation("winner is required unless method is %s or %s", models.MethodDraw, models.MethodNoContest)
	}
	if !fight.HasFighter(*result.WinnerID) {
		return apperrors.Validation("winner %s is not in this fight", result.WinnerID)
	}
	return nil
}

func resultEqual(fight *models.Fight, result models.FightResult) bool {
	if fight.Method == nil || *fight.Method != result.Method {
		return false
	}
	if (fight.WinnerID == nil) != (result.WinnerID == nil) {
		return false
	}
	if fight.WinnerID != nil && *fight.WinnerID != *result.WinnerID {
		return false
	}
	if (fight.Round == nil) != (result.Round == nil) {
		return false
	}
	if fight.Round != nil && *fight.Round != *result.Round {
		return false
	}
	return true
}
