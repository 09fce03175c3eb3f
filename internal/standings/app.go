package standings

import (
	"context"

	"github.com/google/uuid"

	"github.com/Matthieu-Gauthier/octagon-sub000/internal/models"
)

// LeagueStore defines what the app layer needs from the leagues application
type LeagueStore interface {
	GetLeague(ctx context.Context, id uuid.UUID) (*models.League, error)
	ListMembers(ctx context.Context, leagueID uuid.UUID) ([]models.LeagueMember, error)
}

// PredictionSource defines what the app layer needs from the predictions application
type PredictionSource interface {
	ListByLeague(ctx context.Context, leagueID uuid.UUID) ([]models.Prediction, error)
}

// FightSource defines what the app layer needs from the events repository
type FightSource interface {
	ListFightsByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Fight, error)
}

// App assembles the scoring engine's inputs and runs it. It only reads; the
// standings table exists nowhere but in the response.
type App struct {
	leagues     LeagueStore
	predictions PredictionSource
	fights      FightSource
}

// NewApp creates a new standings App
func NewApp(leagues LeagueStore, predictions PredictionSource, fights FightSource) *App {
	return &App{
		leagues:     leagues,
		predictions: predictions,
		fights:      fights,
	}
}

// GetStandings computes the league table fresh from current members,
// predictions and official results.
func (a *App) GetStandings(ctx context.Context, leagueID uuid.UUID) ([]models.StandingRow, error) {
	league, err := a.leagues.GetLeague(ctx, leagueID)
	if err != nil {
		return nil, err
	}

	members, err := a.leagues.ListMembers(ctx, leagueID)
	if err != nil {
		return nil, err
	}

	predictions, err := a.predictions.ListByLeague(ctx, leagueID)
	if err != nil {
		return nil, err
	}

	fights, err := a.fights.ListFightsByIDs(ctx, distinctFightIDs(predictions))
	if err != nil {
		return nil, err
	}

	return Compute(members, predictions, fights, league.ScoringSettings.Resolve()), nil
}

func distinctFightIDs(predictions []models.Prediction) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(predictions))
	ids := make([]uuid.UUID, 0, len(predictions))
	for _, p := range predictions {
		if _, ok := seen[p.FightID]; ok {
			continue
		}
		seen[p.FightID] = struct{}{}
		ids = append(ids, p.FightID)
	}
	return ids
}
