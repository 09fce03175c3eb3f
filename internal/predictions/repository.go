package predictions

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/Matthieu-Gauthier/octagon-sub000/internal/apperrors"
	"github.com/Matthieu-Gauthier/octagon-sub000/internal/models"
	"github.com/Matthieu-Gauthier/octagon-sub000/internal/predictions/db"
	"github.com/Matthieu-Gauthier/octagon-sub000/internal/sqlutil"
)

// Querier defines what the repository needs from the database layer
type Querier interface {
	UpsertPrediction(ctx context.Context, arg db.UpsertPredictionParams) (db.Prediction, error)
	GetPrediction(ctx context.Context, id uuid.UUID) (db.Prediction, error)
	DeletePrediction(ctx context.Context, id uuid.UUID) error
	ListPredictionsForUser(ctx context.Context, arg db.ListPredictionsForUserParams) ([]db.Prediction, error)
	ListPredictionsByLeague(ctx context.Context, leagueID uuid.UUID) ([]db.Prediction, error)
}

// Repository implements prediction data access operations
type Repository struct {
	queries Querier
}

// NewRepository creates a new predictions repository
func NewRepository(querier Querier) *Repository {
	return &Repository{
		queries: querier,
	}
}

type UpsertPredictionRequest struct {
	LeagueID uuid.UUID  `json:"league_id"`
	UserID   uuid.UUID  `json:"user_id"`
	FightID  uuid.UUID  `json:"fight_id"`
	WinnerID *uuid.UUID `json:"winner_id,omitempty"`
	Method   *string    `json:"method,omitempty"`
	Round    *int       `json:"round,omitempty"`
}

// UpsertPrediction atomically creates or fully replaces the prediction keyed
// by (league, user, fight). The store's unique constraint is the only
// concurrency control; concurrent writers race and last commit wins.
func (r *Repository) UpsertPrediction(ctx context.Context, req UpsertPredictionRequest) (*models.Prediction, error) {
	prediction, err := r.queries.UpsertPrediction(ctx, db.UpsertPredictionParams{
		ID:       uuid.New(),
		LeagueID: req.LeagueID,
		UserID:   req.UserID,
		FightID:  req.FightID,
		WinnerID: sqlutil.ToNullUUID(req.WinnerID),
		Method:   sqlutil.ToSqlString(req.Method),
		Round:    sqlutil.ToSqlInt32(req.Round),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upsert prediction: %w", err)
	}

	return r.dbPredictionToModel(prediction), nil
}

// GetPrediction retrieves a prediction by ID
func (r *Repository) GetPrediction(ctx context.Context, id uuid.UUID) (*models.Prediction, error) {
	prediction, err := r.queries.GetPrediction(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("prediction %s", id)
		}
		return nil, fmt.Errorf("failed to get prediction: %w", err)
	}

	return r.dbPredictionToModel(prediction), nil
}

// DeletePrediction permanently removes a prediction row
func (r *Repository) DeletePrediction(ctx context.Context, id uuid.UUID) error {
	if err := r.queries.DeletePrediction(ctx, id); err != nil {
		return fmt.Errorf("failed to delete prediction: %w", err)
	}
	return nil
}

// ListPredictionsForUser retrieves every prediction a user holds in a league
func (r *Repository) ListPredictionsForUser(ctx context.Context, leagueID, userID uuid.UUID) ([]models.Prediction, error) {
	predictions, err := r.queries.ListPredictionsForUser(ctx, db.ListPredictionsForUserParams{
		LeagueID: leagueID,
		UserID:   userID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list predictions for user: %w", err)
	}

	return r.dbPredictionsToModels(predictions), nil
}

// ListPredictionsByLeague retrieves every prediction in a league
func (r *Repository) ListPredictionsByLeague(ctx context.Context, leagueID uuid.UUID) ([]models.Prediction, error) {
	predictions, err := r.queries.ListPredictionsByLeague(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("failed to list predictions by league: %w", err)
	}

	return r.dbPredictionsToModels(predictions), nil
}

func (r *Repository) dbPredictionToModel(p db.Prediction) *models.Prediction {
	return &models.Prediction{
		ID:        p.ID,
		LeagueID:  p.LeagueID,
		UserID:    p.UserID,
		FightID:   p.FightID,
		WinnerID:  sqlutil.FromNullUUID(p.WinnerID),
		Method:    sqlutil.FromSqlStringPtr(p.Method),
		Round:     sqlutil.FromSqlInt32(p.Round),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func (r *Repository) dbPredictionsToModels(predictions []db.Prediction) []models.Prediction {
	out := make([]models.Prediction, len(predictions))
	for i, p := range predictions {
		out[i] = *r.dbPredictionToModel(p)
	}
	return out
}
