package standings

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Matthieu-Gauthier/octagon-sub000/internal/models"
)

var (
	fighterA = uuid.MustParse("11111111-1111-1111-1111-111111111111")
	fighterB = uuid.MustParse("22222222-2222-2222-2222-222222222222")
	alice    = uuid.MustParse("aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa")
	bob      = uuid.MustParse("bbbbbbbb-bbbb-bbbb-bbbb-bbbbbbbbbbbb")
	leagueID = uuid.MustParse("99999999-9999-9999-9999-999999999999")
)

func ptr[T any](v T) *T { return &v }

func member(userID uuid.UUID, username string) models.LeagueMember {
	return models.LeagueMember{LeagueID: leagueID, UserID: userID, Username: username, Role: models.LeagueRoleMember}
}

func finishedFight(winner *uuid.UUID, method string, round *int) models.Fight {
	return models.Fight{
		ID:         uuid.New(),
		FighterAID: fighterA,
		FighterBID: fighterB,
		Rounds:     3,
		Status:     models.FightStatusFinished,
		WinnerID:   winner,
		Method:     &method,
		Round:      round,
	}
}

func prediction(userID, fightID uuid.UUID, pick models.Prediction) models.Prediction {
	pick.ID = uuid.New()
	pick.LeagueID = leagueID
	pick.UserID = userID
	pick.FightID = fightID
	return pick
}

func TestCompute_FullyCorrectStoppage(t *testing.T) {
	// Winner + method + round all correct: 10 + 5 + 5.
	fight := finishedFight(&fighterA, models.MethodKO, ptr(2))
	preds := []models.Prediction{
		prediction(alice, fight.ID, models.Prediction{WinnerID: &fighterA, Method: ptr(models.MethodKO), Round: ptr(2)}),
	}

	rows := Compute([]models.LeagueMember{member(alice, "alice")}, preds, []models.Fight{fight}, models.DefaultScoringSettings())

	require.Len(t, rows, 1)
	assert.Equal(t, 20, rows[0].Points)
	assert.Equal(t, 1, rows[0].Correct)
	assert.Equal(t, 1, rows[0].Total)
	assert.Equal(t, 1, rows[0].PerfectPicks)
	assert.Equal(t, 1, rows[0].Rank)
}

func TestCompute_CorrectWinnerWrongMethod(t *testing.T) {
	fight := finishedFight(&fighterA, models.MethodKO, ptr(2))
	preds := []models.Prediction{
		prediction(alice, fight.ID, models.Prediction{WinnerID: &fighterA, Method: ptr(models.MethodSubmission)}),
	}

	rows := Compute([]models.LeagueMember{member(alice, "alice")}, preds, []models.Fight{fight}, models.DefaultScoringSettings())

	require.Len(t, rows, 1)
	assert.Equal(t, 10, rows[0].Points)
	assert.Equal(t, 1, rows[0].Correct)
	assert.Equal(t, 0, rows[0].PerfectPicks)
}

func TestCompute_WrongWinnerScoresNothing(t *testing.T) {
	fight := finishedFight(&fighterA, models.MethodKO, ptr(2))
	preds := []models.Prediction{
		prediction(alice, fight.ID, models.Prediction{WinnerID: &fighterB}),
	}

	rows := Compute([]models.LeagueMember{member(alice, "alice")}, preds, []models.Fight{fight}, models.DefaultScoringSettings())

	require.Len(t, rows, 1)
	assert.Equal(t, 0, rows[0].Points)
	assert.Equal(t, 0, rows[0].Correct)
	assert.Equal(t, 1, rows[0].Total, "a resolved fight with a wrong pick still counts as scored")
}

func TestCompute_NoContestScoresNobody(t *testing.T) {
	// A fight with no official winner is not scoreable at all, even for a
	// user who predicted NC. Surprising but intentional.
	fight := finishedFight(nil, models.MethodNoContest, nil)
	preds := []models.Prediction{
		prediction(alice, fight.ID, models.Prediction{Method: ptr(models.MethodNoContest)}),
		prediction(bob, fight.ID, models.Prediction{WinnerID: &fighterA, Method: ptr(models.MethodKO)}),
	}
	members := []models.LeagueMember{member(alice, "alice"), member(bob, "bob")}

	rows := Compute(members, preds, []models.Fight{fight}, models.DefaultScoringSettings())

	require.Len(t, rows, 2)
	for _, row := range rows {
		assert.Equal(t, 0, row.Points)
		assert.Equal(t, 0, row.Total, "draw/NC must not increment bets scored")
	}
}

func TestCompute_DecisionBonusReplacesRoundBonus(t *testing.T) {
	settings := models.DefaultScoringSettings()
	settings.Decision = 10

	fight := finishedFight(&fighterA, models.MethodDecision, nil)
	// Round 3 on the pick must not add the round bonus on top of the
	// decision bonus.
	preds := []models.Prediction{
		prediction(alice, fight.ID, models.Prediction{WinnerID: &fighterA, Method: ptr(models.MethodDecision), Round: ptr(3)}),
	}

	rows := Compute([]models.LeagueMember{member(alice, "alice")}, preds, []models.Fight{fight}, settings)

	require.Len(t, rows, 1)
	assert.Equal(t, 25, rows[0].Points) // 10 winner + 5 method + 10 decision
	assert.Equal(t, 1, rows[0].PerfectPicks)
}

func TestCompute_ScheduledFightNotScored(t *testing.T) {
	fight := models.Fight{
		ID:         uuid.New(),
		FighterAID: fighterA,
		FighterBID: fighterB,
		Status:     models.FightStatusScheduled,
	}
	preds := []models.Prediction{
		prediction(alice, fight.ID, models.Prediction{WinnerID: &fighterA}),
	}

	rows := Compute([]models.LeagueMember{member(alice, "alice")}, preds, []models.Fight{fight}, models.DefaultScoringSettings())

	require.Len(t, rows, 1)
	assert.Equal(t, 0, rows[0].Points)
	assert.Equal(t, 0, rows[0].Total)
}

func TestCompute_EveryMemberAppearsOnce(t *testing.T) {
	fight := finishedFight(&fighterA, models.MethodKO, ptr(1))
	members := []models.LeagueMember{member(alice, "alice"), member(bob, "bob")}
	preds := []models.Prediction{
		prediction(alice, fight.ID, models.Prediction{WinnerID: &fighterA}),
	}

	rows := Compute(members, preds, []models.Fight{fight}, models.DefaultScoringSettings())

	require.Len(t, rows, 2)
	assert.Equal(t, "alice", rows[0].Username)
	assert.Equal(t, 10, rows[0].Points)
	assert.Equal(t, "bob", rows[1].Username)
	assert.Equal(t, 0, rows[1].Points)
	assert.Equal(t, 0, rows[1].Total)
	assert.Equal(t, 2, rows[1].Rank)
}

func TestCompute_TieBreaksOnUsername(t *testing.T) {
	fight := finishedFight(&fighterA, models.MethodKO, ptr(1))
	members := []models.LeagueMember{member(bob, "zed"), member(alice, "andy")}
	preds := []models.Prediction{
		prediction(alice, fight.ID, models.Prediction{WinnerID: &fighterA}),
		prediction(bob, fight.ID, models.Prediction{WinnerID: &fighterA}),
	}

	rows := Compute(members, preds, []models.Fight{fight}, models.DefaultScoringSettings())

	require.Len(t, rows, 2)
	assert.Equal(t, "andy", rows[0].Username)
	assert.Equal(t, 1, rows[0].Rank)
	assert.Equal(t, "zed", rows[1].Username)
	assert.Equal(t, 2, rows[1].Rank, "equal points get consecutive distinct ranks")
}

func TestCompute_Deterministic(t *testing.T) {
	fightA := finishedFight(&fighterA, models.MethodKO, ptr(2))
	fightB := finishedFight(&fighterB, models.MethodDecision, nil)
	members := []models.LeagueMember{member(alice, "alice"), member(bob, "bob")}
	preds := []models.Prediction{
		prediction(alice, fightA.ID, models.Prediction{WinnerID: &fighterA, Method: ptr(models.MethodKO), Round: ptr(2)}),
		prediction(alice, fightB.ID, models.Prediction{WinnerID: &fighterA}),
		prediction(bob, fightA.ID, models.Prediction{WinnerID: &fighterB}),
		prediction(bob, fightB.ID, models.Prediction{WinnerID: &fighterB, Method: ptr(models.MethodDecision)}),
	}
	fights := []models.Fight{fightA, fightB}

	first := Compute(members, preds, fights, models.DefaultScoringSettings())
	second := Compute(members, preds, fights, models.DefaultScoringSettings())

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("standings not deterministic (-first +second):\n%s", diff)
	}
}
