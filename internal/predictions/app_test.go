package predictions

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Matthieu-Gauthier/octagon-sub000/internal/apperrors"
	"github.com/Matthieu-Gauthier/octagon-sub000/internal/models"
)

var (
	fighterA = uuid.MustParse("11111111-1111-1111-1111-111111111111")
	fighterB = uuid.MustParse("22222222-2222-2222-2222-222222222222")
	alice    = uuid.MustParse("aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa")
	bob      = uuid.MustParse("bbbbbbbb-bbbb-bbbb-bbbb-bbbbbbbbbbbb")
	leagueID = uuid.MustParse("99999999-9999-9999-9999-999999999999")

	eventDate = time.Date(2026, 9, 12, 22, 0, 0, 0, time.UTC)
)

func ptr[T any](v T) *T { return &v }

type fakeRepo struct {
	byKey   map[string]*models.Prediction
	byID    map[uuid.UUID]*models.Prediction
	upserts int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		byKey: make(map[string]*models.Prediction),
		byID:  make(map[uuid.UUID]*models.Prediction),
	}
}

func key(leagueID, userID, fightID uuid.UUID) string {
	return leagueID.String() + "/" + userID.String() + "/" + fightID.String()
}

func (f *fakeRepo) UpsertPrediction(ctx context.Context, req UpsertPredictionRequest) (*models.Prediction, error) {
	f.upserts++
	k := key(req.LeagueID, req.UserID, req.FightID)
	existing, ok := f.byKey[k]
	if !ok {
		existing = &models.Prediction{
			ID:       uuid.New(),
			LeagueID: req.LeagueID,
			UserID:   req.UserID,
			FightID:  req.FightID,
		}
		f.byKey[k] = existing
		f.byID[existing.ID] = existing
	}
	existing.WinnerID = req.WinnerID
	existing.Method = req.Method
	existing.Round = req.Round
	return existing, nil
}

func (f *fakeRepo) GetPrediction(ctx context.Context, id uuid.UUID) (*models.Prediction, error) {
	p, ok := f.byID[id]
	if !ok {
		return nil, apperrors.NotFound("prediction %s", id)
	}
	return p, nil
}

func (f *fakeRepo) DeletePrediction(ctx context.Context, id uuid.UUID) error {
	p, ok := f.byID[id]
	if !ok {
		return nil
	}
	delete(f.byID, id)
	delete(f.byKey, key(p.LeagueID, p.UserID, p.FightID))
	return nil
}

func (f *fakeRepo) ListPredictionsForUser(ctx context.Context, leagueID, userID uuid.UUID) ([]models.Prediction, error) {
	var out []models.Prediction
	for _, p := range f.byID {
		if p.LeagueID == leagueID && p.UserID == userID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListPredictionsByLeague(ctx context.Context, leagueID uuid.UUID) ([]models.Prediction, error) {
	var out []models.Prediction
	for _, p := range f.byID {
		if p.LeagueID == leagueID {
			out = append(out, *p)
		}
	}
	return out, nil
}

type fakeFightStore struct {
	fights map[uuid.UUID]*models.Fight
	event  *models.Event
}

func (f *fakeFightStore) GetFightWithEvent(ctx context.Context, id uuid.UUID) (*models.Fight, *models.Event, error) {
	fight, ok := f.fights[id]
	if !ok {
		return nil, nil, apperrors.NotFound("fight %s", id)
	}
	return fight, f.event, nil
}

type fakeRegistry struct {
	members map[uuid.UUID]bool
}

func (f *fakeRegistry) IsMember(ctx context.Context, leagueID, userID uuid.UUID) (bool, error) {
	return f.members[userID], nil
}

type fixture struct {
	app    *App
	repo   *fakeRepo
	clock  *clockwork.FakeClock
	event  *models.Event
	fights *fakeFightStore
}

// setup starts the clock a day before the event with both card-section
// cutoffs announced: prelims two hours before the event date, main card one
// hour after it.
func setup(t *testing.T) *fixture {
	t.Helper()

	event := &models.Event{
		ID:              uuid.New(),
		Name:            "Contender Series 41",
		Date:            eventDate,
		Status:          models.EventStatusScheduled,
		PrelimsStartAt:  ptr(eventDate.Add(-2 * time.Hour)),
		MainCardStartAt: ptr(eventDate.Add(1 * time.Hour)),
	}
	fights := &fakeFightStore{
		fights: make(map[uuid.UUID]*models.Fight),
		event:  event,
	}
	repo := newFakeRepo()
	clock := clockwork.NewFakeClockAt(eventDate.Add(-24 * time.Hour))
	registry := &fakeRegistry{members: map[uuid.UUID]bool{alice: true, bob: true}}

	return &fixture{
		app:    NewApp(repo, fights, registry, clock),
		repo:   repo,
		clock:  clock,
		event:  event,
		fights: fights,
	}
}

func (fx *fixture) addFight(mainCard bool) *models.Fight {
	fight := &models.Fight{
		ID:         uuid.New(),
		EventID:    fx.event.ID,
		FighterAID: fighterA,
		FighterBID: fighterB,
		Rounds:     3,
		IsMainCard: mainCard,
		Status:     models.FightStatusScheduled,
	}
	fx.fights.fights[fight.ID] = fight
	return fight
}

func TestPlace_BeforeCutoffSucceeds(t *testing.T) {
	fx := setup(t)
	fight := fx.addFight(false)

	p, err := fx.app.Place(context.Background(), leagueID, alice, fight.ID, Pick{
		WinnerID: &fighterA,
		Method:   ptr(models.MethodKO),
		Round:    ptr(2),
	})

	require.NoError(t, err)
	assert.Equal(t, &fighterA, p.WinnerID)
	assert.Equal(t, models.MethodKO, *p.Method)
	assert.Equal(t, 2, *p.Round)
}

func TestPlace_UnknownFightFailsNotFound(t *testing.T) {
	fx := setup(t)

	_, err := fx.app.Place(context.Background(), leagueID, alice, uuid.New(), Pick{WinnerID: &fighterA})

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestPlace_CutoffSelection(t *testing.T) {
	tests := []struct {
		name     string
		mainCard bool
		now      time.Time
		wantErr  bool
	}{
		{
			name:     "prelim fight open until prelims start",
			mainCard: false,
			now:      eventDate.Add(-2*time.Hour - time.Minute),
			wantErr:  false,
		},
		{
			name:     "prelim fight closed at prelims start",
			mainCard: false,
			now:      eventDate.Add(-2 * time.Hour),
			wantErr:  true,
		},
		{
			name:     "main card fight still open after prelims start",
			mainCard: true,
			now:      eventDate.Add(30 * time.Minute),
			wantErr:  false,
		},
		{
			name:     "main card fight closed at main card start",
			mainCard: true,
			now:      eventDate.Add(1 * time.Hour),
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := setup(t)
			fight := fx.addFight(tt.mainCard)
			fx.clock.Advance(tt.now.Sub(fx.clock.Now()))

			_, err := fx.app.Place(context.Background(), leagueID, alice, fight.ID, Pick{WinnerID: &fighterA})

			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrBettingClosed)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPlace_FallsBackToEventDateWithoutSectionTimes(t *testing.T) {
	fx := setup(t)
	fx.event.PrelimsStartAt = nil
	fx.event.MainCardStartAt = nil
	fight := fx.addFight(true)

	_, err := fx.app.Place(context.Background(), leagueID, alice, fight.ID, Pick{WinnerID: &fighterA})
	require.NoError(t, err)

	fx.clock.Advance(25 * time.Hour) // past the event date
	_, err = fx.app.Place(context.Background(), leagueID, alice, fight.ID, Pick{WinnerID: &fighterB})
	assert.ErrorIs(t, err, apperrors.ErrBettingClosed)
}

func TestPlace_FinishedFightClosedRegardlessOfClock(t *testing.T) {
	fx := setup(t)
	fight := fx.addFight(false)
	// Early stoppage: the result lands before the clock-based cutoff.
	fight.Status = models.FightStatusFinished
	fight.WinnerID = &fighterA

	_, err := fx.app.Place(context.Background(), leagueID, alice, fight.ID, Pick{WinnerID: &fighterA})

	assert.ErrorIs(t, err, apperrors.ErrBettingClosed)
}

func TestPlace_RepickOverwritesInPlace(t *testing.T) {
	fx := setup(t)
	fight := fx.addFight(false)

	first, err := fx.app.Place(context.Background(), leagueID, alice, fight.ID, Pick{WinnerID: &fighterA, Method: ptr(models.MethodKO)})
	require.NoError(t, err)

	second, err := fx.app.Place(context.Background(), leagueID, alice, fight.ID, Pick{WinnerID: &fighterB})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID, "re-pick must replace, not create")
	assert.Equal(t, &fighterB, second.WinnerID)
	assert.Nil(t, second.Method, "each call fully replaces all pick fields")

	stored, err := fx.app.ListForUser(context.Background(), leagueID, alice)
	require.NoError(t, err)
	assert.Len(t, stored, 1)
}

func TestPlace_IdenticalRepickIsIdempotent(t *testing.T) {
	fx := setup(t)
	fight := fx.addFight(false)
	pick := Pick{WinnerID: &fighterA, Method: ptr(models.MethodKO), Round: ptr(2)}

	first, err := fx.app.Place(context.Background(), leagueID, alice, fight.ID, pick)
	require.NoError(t, err)
	second, err := fx.app.Place(context.Background(), leagueID, alice, fight.ID, pick)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.WinnerID, second.WinnerID)
	assert.Equal(t, first.Method, second.Method)
	assert.Equal(t, first.Round, second.Round)
}

func TestPlace_WinnerMustBeInFight(t *testing.T) {
	fx := setup(t)
	fight := fx.addFight(false)
	stranger := uuid.New()

	_, err := fx.app.Place(context.Background(), leagueID, alice, fight.ID, Pick{WinnerID: &stranger})

	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestPlace_NoWinnerNeedsDrawOrNC(t *testing.T) {
	fx := setup(t)
	fight := fx.addFight(false)

	_, err := fx.app.Place(context.Background(), leagueID, alice, fight.ID, Pick{})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = fx.app.Place(context.Background(), leagueID, alice, fight.ID, Pick{Method: ptr(models.MethodDraw)})
	assert.NoError(t, err, "an explicit draw forecast needs no winner")
}

func TestPlace_NonMemberForbidden(t *testing.T) {
	fx := setup(t)
	fight := fx.addFight(false)
	outsider := uuid.New()

	_, err := fx.app.Place(context.Background(), leagueID, outsider, fight.ID, Pick{WinnerID: &fighterA})

	assert.ErrorIs(t, err, apperrors.ErrForbidden)
}

func TestRemove_OwnerOnly(t *testing.T) {
	fx := setup(t)
	fight := fx.addFight(false)

	p, err := fx.app.Place(context.Background(), leagueID, alice, fight.ID, Pick{WinnerID: &fighterA})
	require.NoError(t, err)

	err = fx.app.Remove(context.Background(), p.ID, bob)
	assert.ErrorIs(t, err, apperrors.ErrForbidden)

	err = fx.app.Remove(context.Background(), p.ID, alice)
	require.NoError(t, err)

	stored, err := fx.app.ListForUser(context.Background(), leagueID, alice)
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestRemove_UnknownPredictionNotFound(t *testing.T) {
	fx := setup(t)

	err := fx.app.Remove(context.Background(), uuid.New(), alice)

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestRemove_FrozenOnceFightFinished(t *testing.T) {
	fx := setup(t)
	fight := fx.addFight(false)

	p, err := fx.app.Place(context.Background(), leagueID, alice, fight.ID, Pick{WinnerID: &fighterA})
	require.NoError(t, err)

	fight.Status = models.FightStatusFinished
	fight.WinnerID = &fighterA

	err = fx.app.Remove(context.Background(), p.ID, alice)
	assert.ErrorIs(t, err, apperrors.ErrBettingClosed)
}

func TestCutoff_SectionNames(t *testing.T) {
	event := &models.Event{
		Date:            eventDate,
		PrelimsStartAt:  ptr(eventDate.Add(-2 * time.Hour)),
		MainCardStartAt: ptr(eventDate.Add(time.Hour)),
	}

	_, section := Cutoff(&models.Fight{IsMainCard: false}, event)
	assert.Equal(t, "preliminary card", section)

	_, section = Cutoff(&models.Fight{IsMainCard: true}, event)
	assert.Equal(t, "main card", section)
}
