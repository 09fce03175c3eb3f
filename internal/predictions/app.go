package predictions

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"

	"github.com/Matthieu-Gauthier/octagon-sub000/internal/apperrors"
	"github.com/Matthieu-Gauthier/octagon-sub000/internal/models"
)

// PredictionsRepository defines what the app layer needs from the repository
type PredictionsRepository interface {
	UpsertPrediction(ctx context.Context, req UpsertPredictionRequest) (*models.Prediction, error)
	GetPrediction(ctx context.Context, id uuid.UUID) (*models.Prediction, error)
	DeletePrediction(ctx context.Context, id uuid.UUID) error
	ListPredictionsForUser(ctx context.Context, leagueID, userID uuid.UUID) ([]models.Prediction, error)
	ListPredictionsByLeague(ctx context.Context, leagueID uuid.UUID) ([]models.Prediction, error)
}

// FightStore defines what the app layer needs from the events application
type FightStore interface {
	GetFightWithEvent(ctx context.Context, id uuid.UUID) (*models.Fight, *models.Event, error)
}

// MembershipRegistry defines what the app layer needs from the leagues application
type MembershipRegistry interface {
	IsMember(ctx context.Context, leagueID, userID uuid.UUID) (bool, error)
}

// Pick is a user's proposed forecast for one fight.
type Pick struct {
	WinnerID *uuid.UUID `json:"winner_id,omitempty"`
	Method   *string    `json:"method,omitempty"`
	Round    *int       `json:"round,omitempty"`
}

// App gates prediction writes by time and fight state and owns the
// authoritative prediction set.
type App struct {
	repo    PredictionsRepository
	fights  FightStore
	members MembershipRegistry
	clock   clockwork.Clock
}

// NewApp creates a new predictions App
func NewApp(repo PredictionsRepository, fights FightStore, members MembershipRegistry, clock clockwork.Clock) *App {
	return &App{
		repo:    repo,
		fights:  fights,
		members: members,
		clock:   clock,
	}
}

// Place creates or fully replaces the user's prediction for a fight.
// Preconditions run in order, first failure wins: the fight must exist, the
// betting window for its card section must still be open, and the fight must
// not already be finished. There is no limit on revisions before the cutoff.
func (a *App) Place(ctx context.Context, leagueID, userID, fightID uuid.UUID, pick Pick) (*models.Prediction, error) {
	fight, event, err := a.fights.GetFightWithEvent(ctx, fightID)
	if err != nil {
		return nil, err
	}

	cutoff, section := Cutoff(fight, event)
	if !a.clock.Now().Before(cutoff) {
		return nil, apperrors.BettingClosed("betting closed for the %s at %s", section, cutoff.Format(time.RFC3339))
	}
	if fight.Status == models.FightStatusFinished {
		return nil, apperrors.BettingClosed("fight already has an official result")
	}

	if err := validatePick(fight, pick); err != nil {
		return nil, err
	}

	isMember, err := a.members.IsMember(ctx, leagueID, userID)
	if err != nil {
		return nil, err
	}
	if !isMember {
		return nil, apperrors.Forbidden("user %s is not a member of league %s", userID, leagueID)
	}

	prediction, err := a.repo.UpsertPrediction(ctx, UpsertPredictionRequest{
		LeagueID: leagueID,
		UserID:   userID,
		FightID:  fightID,
		WinnerID: pick.WinnerID,
		Method:   pick.Method,
		Round:    pick.Round,
	})
	if err != nil {
		return nil, err
	}

	log.Debug().
		Str("league_id", leagueID.String()).
		Str("user_id", userID.String()).
		Str("fight_id", fightID.String()).
		Msg("prediction placed")
	return prediction, nil
}

// Remove deletes a prediction. Only its owner may do so, and only while the
// fight has no official result; once a result lands the pick is frozen even
// if the clock-based cutoff has not technically passed (early stoppage).
func (a *App) Remove(ctx context.Context, predictionID, requestingUser uuid.UUID) error {
	prediction, err := a.repo.GetPrediction(ctx, predictionID)
	if err != nil {
		return err
	}
	if prediction.UserID != requestingUser {
		return apperrors.Forbidden("prediction %s belongs to another user", predictionID)
	}

	fight, _, err := a.fights.GetFightWithEvent(ctx, prediction.FightID)
	if err != nil {
		return err
	}
	if fight.Status == models.FightStatusFinished {
		return apperrors.BettingClosed("fight already has an official result")
	}

	if err := a.repo.DeletePrediction(ctx, predictionID); err != nil {
		return err
	}

	log.Debug().Str("prediction_id", predictionID.String()).Msg("prediction removed")
	return nil
}

// ListForUser returns every prediction the user owns within the league,
// regardless of fight status. Callers wanting "active only" filter themselves.
func (a *App) ListForUser(ctx context.Context, leagueID, userID uuid.UUID) ([]models.Prediction, error) {
	return a.repo.ListPredictionsForUser(ctx, leagueID, userID)
}

// ListByLeague returns every prediction in the league. Used by the scoring
// engine.
func (a *App) ListByLeague(ctx context.Context, leagueID uuid.UUID) ([]models.Prediction, error) {
	return a.repo.ListPredictionsByLeague(ctx, leagueID)
}

// Cutoff selects the betting deadline for a fight: the start of its card
// section when the event announces one, else the event date. Returns the
// section name for error messages.
func Cutoff(fight *models.Fight, event *models.Event) (time.Time, string) {
	if fight.IsMainCard {
		if event.MainCardStartAt != nil {
			return *event.MainCardStartAt, "main card"
		}
		return event.Date, "main card"
	}
	if event.PrelimsStartAt != nil {
		return *event.PrelimsStartAt, "preliminary card"
	}
	return event.Date, "preliminary card"
}

func validatePick(fight *models.Fight, pick Pick) error {
	if pick.WinnerID == nil {
		// A no-winner forecast has to say so explicitly.
		if pick.Method == nil || !models.MethodHasNoWinner(*pick.Method) {
			return apperrors.Validation("a pick needs a winner unless it predicts %s or %s", models.MethodDraw, models.MethodNoContest)
		}
		return nil
	}
	if !fight.HasFighter(*pick.WinnerID) {
		return apperrors.Validation("picked winner %s is not in this fight", pick.WinnerID)
	}
	if pick.Round != nil && (*pick.Round < 1 || *pick.Round > fight.Rounds) {
		return apperrors.Validation("round must be between 1 and %d", fight.Rounds)
	}
	return nil
}
