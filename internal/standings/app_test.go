package standings

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Matthieu-Gauthier/octagon-sub000/internal/models"
)

type fakeLeagueStore struct {
	league  *models.League
	members []models.LeagueMember
}

func (f *fakeLeagueStore) GetLeague(ctx context.Context, id uuid.UUID) (*models.League, error) {
	return f.league, nil
}

func (f *fakeLeagueStore) ListMembers(ctx context.Context, leagueID uuid.UUID) ([]models.LeagueMember, error) {
	return f.members, nil
}

type fakePredictionSource struct {
	predictions []models.Prediction
}

func (f *fakePredictionSource) ListByLeague(ctx context.Context, leagueID uuid.UUID) ([]models.Prediction, error) {
	return f.predictions, nil
}

type fakeFightSource struct {
	fights    []models.Fight
	askedFor  []uuid.UUID
	callCount int
}

func (f *fakeFightSource) ListFightsByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Fight, error) {
	f.askedFor = ids
	f.callCount++
	return f.fights, nil
}

func TestGetStandings_AppliesLeagueOverrides(t *testing.T) {
	fight := finishedFight(&fighterA, models.MethodKO, ptr(1))
	league := &models.League{
		ID:              leagueID,
		ScoringSettings: models.ScoringSettings{Winner: ptr(3)},
	}
	leagueStore := &fakeLeagueStore{
		league:  league,
		members: []models.LeagueMember{member(alice, "alice")},
	}
	preds := &fakePredictionSource{predictions: []models.Prediction{
		prediction(alice, fight.ID, models.Prediction{WinnerID: &fighterA}),
	}}
	fights := &fakeFightSource{fights: []models.Fight{fight}}

	app := NewApp(leagueStore, preds, fights)
	rows, err := app.GetStandings(context.Background(), leagueID)

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 3, rows[0].Points, "winner override should replace the default 10")
}

func TestGetStandings_DeduplicatesFightLookups(t *testing.T) {
	fight := finishedFight(&fighterA, models.MethodKO, ptr(1))
	leagueStore := &fakeLeagueStore{
		league:  &models.League{ID: leagueID},
		members: []models.LeagueMember{member(alice, "alice"), member(bob, "bob")},
	}
	preds := &fakePredictionSource{predictions: []models.Prediction{
		prediction(alice, fight.ID, models.Prediction{WinnerID: &fighterA}),
		prediction(bob, fight.ID, models.Prediction{WinnerID: &fighterB}),
	}}
	fights := &fakeFightSource{fights: []models.Fight{fight}}

	app := NewApp(leagueStore, preds, fights)
	_, err := app.GetStandings(context.Background(), leagueID)

	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{fight.ID}, fights.askedFor)
	assert.Equal(t, 1, fights.callCount)
}
