package events

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Matthieu-Gauthier/octagon-sub000/internal/apperrors"
	"github.com/Matthieu-Gauthier/octagon-sub000/internal/events/db"
	"github.com/Matthieu-Gauthier/octagon-sub000/internal/models"
	"github.com/Matthieu-Gauthier/octagon-sub000/internal/sqlutil"
)

// Querier defines what the repository needs from the database layer
type Querier interface {
	CreateEvent(ctx context.Context, arg db.CreateEventParams) (db.Event, error)
	GetEvent(ctx context.Context, id uuid.UUID) (db.Event, error)
	ListEvents(ctx context.Context) ([]db.Event, error)
	ListEventsByStatus(ctx context.Context, statuses []string) ([]db.Event, error)
	UpdateEventStatus(ctx context.Context, arg db.UpdateEventStatusParams) (db.Event, error)
	DeleteEvent(ctx context.Context, id uuid.UUID) error
	CreateFight(ctx context.Context, arg db.CreateFightParams) (db.Fight, error)
	GetFight(ctx context.Context, id uuid.UUID) (db.Fight, error)
	ListFightsByEvent(ctx context.Context, eventID uuid.UUID) ([]db.Fight, error)
	ListFightsByIDs(ctx context.Context, ids []uuid.UUID) ([]db.Fight, error)
	SetFightResult(ctx context.Context, arg db.SetFightResultParams) (db.Fight, error)
	ClearFightResult(ctx context.Context, id uuid.UUID) (db.Fight, error)
	CountUnfinishedFights(ctx context.Context, eventID uuid.UUID) (int64, error)
	CreateFighter(ctx context.Context, arg db.CreateFighterParams) (db.Fighter, error)
	GetFighter(ctx context.Context, id uuid.UUID) (db.Fighter, error)
	ListFighters(ctx context.Context) ([]db.Fighter, error)
	UpsertFighterStats(ctx context.Context, arg db.UpsertFighterStatsParams) (db.Fighter, error)
}

// Repository implements event, fight and fighter data access
type Repository struct {
	queries Querier
}

// NewRepository creates a new events repository
func NewRepository(querier Querier) *Repository {
	return &Repository{
		queries: querier,
	}
}

type CreateEventRequest struct {
	ID              uuid.UUID  `json:"id"`
	Name            string     `json:"name"`
	Date            time.Time  `json:"date"`
	Location        string     `json:"location"`
	PrelimsStartAt  *time.Time `json:"prelims_start_at,omitempty"`
	MainCardStartAt *time.Time `json:"main_card_start_at,omitempty"`
}

type CreateFightRequest struct {
	ID            uuid.UUID `json:"id"`
	EventID       uuid.UUID `json:"event_id"`
	FighterAID    uuid.UUID `json:"fighter_a_id"`
	FighterBID    uuid.UUID `json:"fighter_b_id"`
	Division      string    `json:"division"`
	Rounds        int       `json:"rounds"`
	IsMainEvent   bool      `json:"is_main_event"`
	IsCoMainEvent bool      `json:"is_co_main_event"`
	IsMainCard    bool      `json:"is_main_card"`
}

type UpsertFighterRequest struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Nickname *string   `json:"nickname,omitempty"`
	Division string    `json:"division"`
	Wins     int       `json:"wins"`
	Losses   int       `json:"losses"`
	Draws    int       `json:"draws"`
}

// CreateEvent creates a new event in SCHEDULED status
func (r *Repository) CreateEvent(ctx context.Context, req CreateEventRequest) (*models.Event, error) {
	event, err := r.queries.CreateEvent(ctx, db.CreateEventParams{
		ID:              req.ID,
		Name:            req.Name,
		Date:            req.Date,
		Location:        req.Location,
		Status:          string(models.EventStatusScheduled),
		PrelimsStartAt:  sqlutil.ToSqlTime(req.PrelimsStartAt),
		MainCardStartAt: sqlutil.ToSqlTime(req.MainCardStartAt),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	return r.dbEventToModel(event), nil
}

// GetEvent retrieves an event by ID
func (r *Repository) GetEvent(ctx context.Context, id uuid.UUID) (*models.Event, error) {
	event, err := r.queries.GetEvent(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("event %s", id)
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	return r.dbEventToModel(event), nil
}

// GetEventWithFights retrieves an event and its full card
func (r *Repository) GetEventWithFights(ctx context.Context, id uuid.UUID) (*models.Event, error) {
	event, err := r.GetEvent(ctx, id)
	if err != nil {
		return nil, err
	}

	fights, err := r.ListFightsByEvent(ctx, id)
	if err != nil {
		return nil, err
	}
	event.Fights = fights

	return event, nil
}

// ListEvents retrieves all events, newest first
func (r *Repository) ListEvents(ctx context.Context) ([]models.Event, error) {
	events, err := r.queries.ListEvents(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	return r.dbEventsToModels(events), nil
}

// ListEventsByStatus retrieves events in any of the given statuses
func (r *Repository) ListEventsByStatus(ctx context.Context, statuses []models.EventStatus) ([]models.Event, error) {
	strs := make([]string, len(statuses))
	for i, s := range statuses {
		strs[i] = string(s)
	}

	events, err := r.queries.ListEventsByStatus(ctx, strs)
	if err != nil {
		return nil, fmt.Errorf("failed to list events by status: %w", err)
	}

	return r.dbEventsToModels(events), nil
}

// UpdateEventStatus updates only the status of an event
func (r *Repository) UpdateEventStatus(ctx context.Context, id uuid.UUID, status models.EventStatus) (*models.Event, error) {
	event, err := r.queries.UpdateEventStatus(ctx, db.UpdateEventStatusParams{
		ID:     id,
		Status: string(status),
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("event %s", id)
		}
		return nil, fmt.Errorf("failed to update event status: %w", err)
	}

	return r.dbEventToModel(event), nil
}

// DeleteEvent deletes an event; its fights cascade at the store level
func (r *Repository) DeleteEvent(ctx context.Context, id uuid.UUID) error {
	if err := r.queries.DeleteEvent(ctx, id); err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	return nil
}

// CreateFight creates a new fight on an event's card
func (r *Repository) CreateFight(ctx context.Context, req CreateFightRequest) (*models.Fight, error) {
	fight, err := r.queries.CreateFight(ctx, db.CreateFightParams{
		ID:            req.ID,
		EventID:       req.EventID,
		FighterAID:    req.FighterAID,
		FighterBID:    req.FighterBID,
		Division:      req.Division,
		Rounds:        int32(req.Rounds),
		IsMainEvent:   req.IsMainEvent,
		IsCoMainEvent: req.IsCoMainEvent,
		IsMainCard:    req.IsMainCard,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create fight: %w", err)
	}

	return r.dbFightToModel(fight), nil
}

// GetFight retrieves a fight by ID
func (r *Repository) GetFight(ctx context.Context, id uuid.UUID) (*models.Fight, error) {
	fight, err := r.queries.GetFight(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("fight %s", id)
		}
		return nil, fmt.Errorf("failed to get fight: %w", err)
	}

	return r.dbFightToModel(fight), nil
}

// GetFightWithEvent retrieves a fight along with its parent event, which
// carries the betting cutoff fields
func (r *Repository) GetFightWithEvent(ctx context.Context, id uuid.UUID) (*models.Fight, *models.Event, error) {
	fight, err := r.GetFight(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	event, err := r.GetEvent(ctx, fight.EventID)
	if err != nil {
		return nil, nil, err
	}

	return fight, event, nil
}

// ListFightsByEvent retrieves the card for an event
func (r *Repository) ListFightsByEvent(ctx context.Context, eventID uuid.UUID) ([]models.Fight, error) {
	fights, err := r.queries.ListFightsByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to list fights by event: %w", err)
	}

	return r.dbFightsToModels(fights), nil
}

// ListFightsByIDs retrieves the given fights in one round trip
func (r *Repository) ListFightsByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Fight, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	fights, err := r.queries.ListFightsByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to list fights by ids: %w", err)
	}

	return r.dbFightsToModels(fights), nil
}

// SetFightResult writes an official result and marks the fight FINISHED
func (r *Repository) SetFightResult(ctx context.Context, id uuid.UUID, result models.FightResult) (*models.Fight, error) {
	fight, err := r.queries.SetFightResult(ctx, db.SetFightResultParams{
		ID:       id,
		WinnerID: sqlutil.ToNullUUID(result.WinnerID),
		Method:   sql.NullString{String: result.Method, Valid: true},
		Round:    sqlutil.ToSqlInt32(result.Round),
		Time:     sqlutil.ToSqlString(result.Time),
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("fight %s", id)
		}
		return nil, fmt.Errorf("failed to set fight result: %w", err)
	}

	return r.dbFightToModel(fight), nil
}

// ClearFightResult nulls all result fields and reverts the fight to SCHEDULED
func (r *Repository) ClearFightResult(ctx context.Context, id uuid.UUID) (*models.Fight, error) {
	fight, err := r.queries.ClearFightResult(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("fight %s", id)
		}
		return nil, fmt.Errorf("failed to clear fight result: %w", err)
	}

	return r.dbFightToModel(fight), nil
}

// CountUnfinishedFights counts fights on an event's card that have no result
func (r *Repository) CountUnfinishedFights(ctx context.Context, eventID uuid.UUID) (int, error) {
	count, err := r.queries.CountUnfinishedFights(ctx, eventID)
	if err != nil {
		return 0, fmt.Errorf("failed to count unfinished fights: %w", err)
	}
	return int(count), nil
}

// CreateFighter creates a new fighter profile
func (r *Repository) CreateFighter(ctx context.Context, req UpsertFighterRequest) (*models.Fighter, error) {
	fighter, err := r.queries.CreateFighter(ctx, db.CreateFighterParams{
		ID:       req.ID,
		Name:     req.Name,
		Nickname: sqlutil.ToSqlString(req.Nickname),
		Division: req.Division,
		Wins:     int32(req.Wins),
		Losses:   int32(req.Losses),
		Draws:    int32(req.Draws),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create fighter: %w", err)
	}

	return r.dbFighterToModel(fighter), nil
}

// GetFighter retrieves a fighter by ID
func (r *Repository) GetFighter(ctx context.Context, id uuid.UUID) (*models.Fighter, error) {
	fighter, err := r.queries.GetFighter(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("fighter %s", id)
		}
		return nil, fmt.Errorf("failed to get fighter: %w", err)
	}

	return r.dbFighterToModel(fighter), nil
}

// ListFighters retrieves all fighters
func (r *Repository) ListFighters(ctx context.Context) ([]models.Fighter, error) {
	fighters, err := r.queries.ListFighters(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list fighters: %w", err)
	}

	out := make([]models.Fighter, len(fighters))
	for i, f := range fighters {
		out[i] = *r.dbFighterToModel(f)
	}
	return out, nil
}

// UpsertFighterStats creates a fighter or refreshes its mutable stats
func (r *Repository) UpsertFighterStats(ctx context.Context, req UpsertFighterRequest) (*models.Fighter, error) {
	fighter, err := r.queries.UpsertFighterStats(ctx, db.UpsertFighterStatsParams{
		ID:       req.ID,
		Name:     req.Name,
		Nickname: sqlutil.ToSqlString(req.Nickname),
		Division: req.Division,
		Wins:     int32(req.Wins),
		Losses:   int32(req.Losses),
		Draws:    int32(req.Draws),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upsert fighter stats: %w", err)
	}

	return r.dbFighterToModel(fighter), nil
}

func (r *Repository) dbEventToModel(e db.Event) *models.Event {
	return &models.Event{
		ID:              e.ID,
		Name:            e.Name,
		Date:            e.Date,
		Location:        e.Location,
		Status:          models.EventStatus(e.Status),
		PrelimsStartAt:  sqlutil.FromSqlTime(e.PrelimsStartAt),
		MainCardStartAt: sqlutil.FromSqlTime(e.MainCardStartAt),
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
}

func (r *Repository) dbEventsToModels(events []db.Event) []models.Event {
	out := make([]models.Event, len(events))
	for i, e := range events {
		out[i] = *r.dbEventToModel(e)
	}
	return out
}

func (r *Repository) dbFightToModel(f db.Fight) *models.Fight {
	return &models.Fight{
		ID:            f.ID,
		EventID:       f.EventID,
		FighterAID:    f.FighterAID,
		FighterBID:    f.FighterBID,
		Division:      f.Division,
		Rounds:        int(f.Rounds),
		IsMainEvent:   f.IsMainEvent,
		IsCoMainEvent: f.IsCoMainEvent,
		IsMainCard:    f.IsMainCard,
		Status:        models.FightStatus(f.Status),
		WinnerID:      sqlutil.FromNullUUID(f.WinnerID),
		Method:        sqlutil.FromSqlStringPtr(f.Method),
		Round:         sqlutil.FromSqlInt32(f.Round),
		Time:          sqlutil.FromSqlStringPtr(f.Time),
		CreatedAt:     f.CreatedAt,
		UpdatedAt:     f.UpdatedAt,
	}
}

func (r *Repository) dbFightsToModels(fights []db.Fight) []models.Fight {
	out := make([]models.Fight, len(fights))
	for i, f := range fights {
		out[i] = *r.dbFightToModel(f)
	}
	return out
}

func (r *Repository) dbFighterToModel(f db.Fighter) *models.Fighter {
	return &models.Fighter{
		ID:        f.ID,
		Name:      f.Name,
		Nickname:  sqlutil.FromSqlStringPtr(f.Nickname),
		Division:  f.Division,
		Wins:      int(f.Wins),
		Losses:    int(f.Losses),
		Draws:     int(f.Draws),
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.UpdatedAt,
	}
}
