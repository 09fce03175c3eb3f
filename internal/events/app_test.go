package events

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Matthieu-Gauthier/octagon-sub000/internal/apperrors"
	"github.com/Matthieu-Gauthier/octagon-sub000/internal/eventbus"
	"github.com/Matthieu-Gauthier/octagon-sub000/internal/models"
)

var (
	fighterA = uuid.MustParse("11111111-1111-1111-1111-111111111111")
	fighterB = uuid.MustParse("22222222-2222-2222-2222-222222222222")
)

func ptr[T any](v T) *T { return &v }

type fakeRepo struct {
	events   map[uuid.UUID]*models.Event
	fights   map[uuid.UUID]*models.Fight
	fighters map[uuid.UUID]*models.Fighter

	resultWrites int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		events:   make(map[uuid.UUID]*models.Event),
		fights:   make(map[uuid.UUID]*models.Fight),
		fighters: make(map[uuid.UUID]*models.Fighter),
	}
}

func (f *fakeRepo) CreateEvent(ctx context.Context, req CreateEventRequest) (*models.Event, error) {
	e := &models.Event{
		ID:              req.ID,
		Name:            req.Name,
		Date:            req.Date,
		Location:        req.Location,
		Status:          models.EventStatusScheduled,
		PrelimsStartAt:  req.PrelimsStartAt,
		MainCardStartAt: req.MainCardStartAt,
	}
	f.events[e.ID] = e
	return e, nil
}

func (f *fakeRepo) GetEvent(ctx context.Context, id uuid.UUID) (*models.Event, error) {
	e, ok := f.events[id]
	if !ok {
		return nil, apperrors.NotFound("event %s", id)
	}
	cp := *e
	return &cp, nil
}

func (f *fakeRepo) GetEventWithFights(ctx context.Context, id uuid.UUID) (*models.Event, error) {
	e, err := f.GetEvent(ctx, id)
	if err != nil {
		return nil, err
	}
	fights, _ := f.ListFightsByEvent(ctx, id)
	e.Fights = fights
	return e, nil
}

func (f *fakeRepo) ListEvents(ctx context.Context) ([]models.Event, error) {
	var out []models.Event
	for _, e := range f.events {
		out = append(out, *e)
	}
	return out, nil
}

func (f *fakeRepo) ListEventsByStatus(ctx context.Context, statuses []models.EventStatus) ([]models.Event, error) {
	var out []models.Event
	for _, e := range f.events {
		for _, s := range statuses {
			if e.Status == s {
				out = append(out, *e)
				break
			}
		}
	}
	return out, nil
}

func (f *fakeRepo) UpdateEventStatus(ctx context.Context, id uuid.UUID, status models.EventStatus) (*models.Event, error) {
	e, ok := f.events[id]
	if !ok {
		return nil, apperrors.NotFound("event %s", id)
	}
	e.Status = status
	cp := *e
	return &cp, nil
}

func (f *fakeRepo) DeleteEvent(ctx context.Context, id uuid.UUID) error {
	delete(f.events, id)
	for fid, fight := range f.fights {
		if fight.EventID == id {
			delete(f.fights, fid)
		}
	}
	return nil
}

func (f *fakeRepo) CreateFight(ctx context.Context, req CreateFightRequest) (*models.Fight, error) {
	fight := &models.Fight{
		ID:         req.ID,
		EventID:    req.EventID,
		FighterAID: req.FighterAID,
		FighterBID: req.FighterBID,
		Division:   req.Division,
		Rounds:     req.Rounds,
		IsMainCard: req.IsMainCard,
		Status:     models.FightStatusScheduled,
	}
	f.fights[fight.ID] = fight
	return fight, nil
}

func (f *fakeRepo) GetFight(ctx context.Context, id uuid.UUID) (*models.Fight, error) {
	fight, ok := f.fights[id]
	if !ok {
		return nil, apperrors.NotFound("fight %s", id)
	}
	cp := *fight
	return &cp, nil
}

func (f *fakeRepo) GetFightWithEvent(ctx context.Context, id uuid.UUID) (*models.Fight, *models.Event, error) {
	fight, err := f.GetFight(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	event, err := f.GetEvent(ctx, fight.EventID)
	if err != nil {
		return nil, nil, err
	}
	return fight, event, nil
}

func (f *fakeRepo) ListFightsByEvent(ctx context.Context, eventID uuid.UUID) ([]models.Fight, error) {
	var out []models.Fight
	for _, fight := range f.fights {
		if fight.EventID == eventID {
			out = append(out, *fight)
		}
	}
	return out, nil
}

func (f *fakeRepo) SetFightResult(ctx context.Context, id uuid.UUID, result models.FightResult) (*models.Fight, error) {
	fight, ok := f.fights[id]
	if !ok {
		return nil, apperrors.NotFound("fight %s", id)
	}
	f.resultWrites++
	fight.Status = models.FightStatusFinished
	fight.WinnerID = result.WinnerID
	fight.Method = &result.Method
	fight.Round = result.Round
	fight.Time = result.Time
	cp := *fight
	return &cp, nil
}

func (f *fakeRepo) ClearFightResult(ctx context.Context, id uuid.UUID) (*models.Fight, error) {
	fight, ok := f.fights[id]
	if !ok {
		return nil, apperrors.NotFound("fight %s", id)
	}
	fight.Status = models.FightStatusScheduled
	fight.WinnerID = nil
	fight.Method = nil
	fight.Round = nil
	fight.Time = nil
	cp := *fight
	return &cp, nil
}

func (f *fakeRepo) CountUnfinishedFights(ctx context.Context, eventID uuid.UUID) (int, error) {
	count := 0
	for _, fight := range f.fights {
		if fight.EventID == eventID && fight.Status != models.FightStatusFinished {
			count++
		}
	}
	return count, nil
}

func (f *fakeRepo) CreateFighter(ctx context.Context, req UpsertFighterRequest) (*models.Fighter, error) {
	return f.UpsertFighterStats(ctx, req)
}

func (f *fakeRepo) GetFighter(ctx context.Context, id uuid.UUID) (*models.Fighter, error) {
	fighter, ok := f.fighters[id]
	if !ok {
		return nil, apperrors.NotFound("fighter %s", id)
	}
	return fighter, nil
}

func (f *fakeRepo) ListFighters(ctx context.Context) ([]models.Fighter, error) {
	var out []models.Fighter
	for _, fighter := range f.fighters {
		out = append(out, *fighter)
	}
	return out, nil
}

func (f *fakeRepo) UpsertFighterStats(ctx context.Context, req UpsertFighterRequest) (*models.Fighter, error) {
	fighter := &models.Fighter{
		ID:       req.ID,
		Name:     req.Name,
		Nickname: req.Nickname,
		Division: req.Division,
		Wins:     req.Wins,
		Losses:   req.Losses,
		Draws:    req.Draws,
	}
	f.fighters[fighter.ID] = fighter
	return fighter, nil
}

type recordingPublisher struct {
	subjects []string
}

func (r *recordingPublisher) Publish(ctx context.Context, subject string, payload interface{}) error {
	r.subjects = append(r.subjects, subject)
	return nil
}

func setup(t *testing.T) (*App, *fakeRepo, *recordingPublisher) {
	t.Helper()
	repo := newFakeRepo()
	pub := &recordingPublisher{}
	return NewApp(repo, pub), repo, pub
}

func addFight(t *testing.T, app *App) *models.Fight {
	t.Helper()
	event, err := app.CreateEvent(context.Background(), CreateEventRequest{
		Name: "Fight Night 240",
		Date: time.Date(2026, 10, 3, 22, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	fight, err := app.CreateFight(context.Background(), CreateFightRequest{
		EventID:    event.ID,
		FighterAID: fighterA,
		FighterBID: fighterB,
		Division:   "Lightweight",
		Rounds:     3,
	})
	require.NoError(t, err)
	return fight
}

func TestSetFightResult_Valid(t *testing.T) {
	app, _, pub := setup(t)
	fight := addFight(t, app)

	updated, err := app.SetFightResult(context.Background(), fight.ID, models.FightResult{
		WinnerID: &fighterA,
		Method:   models.MethodKO,
		Round:    ptr(2),
	})

	require.NoError(t, err)
	assert.Equal(t, models.FightStatusFinished, updated.Status)
	assert.Equal(t, &fighterA, updated.WinnerID)
	assert.Contains(t, pub.subjects, eventbus.SubjectFightResultSet)
}

func TestSetFightResult_ValidationMatrix(t *testing.T) {
	tests := []struct {
		name   string
		result models.FightResult
		wantOK bool
	}{
		{"missing method", models.FightResult{WinnerID: &fighterA}, false},
		{"winner required for KO", models.FightResult{Method: models.MethodKO}, false},
		{"draw must not name a winner", models.FightResult{WinnerID: &fighterA, Method: models.MethodDraw}, false},
		{"draw with no winner", models.FightResult{Method: models.MethodDraw}, true},
		{"no contest with no winner", models.FightResult{Method: models.MethodNoContest}, true},
		{"winner outside the fight", models.FightResult{WinnerID: ptr(uuid.New()), Method: models.MethodKO}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, _, _ := setup(t)
			fight := addFight(t, app)

			_, err := app.SetFightResult(context.Background(), fight.ID, tt.result)

			if tt.wantOK {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, apperrors.ErrValidation)
			}
		})
	}
}

func TestSetFightResult_DropsRoundForDecisions(t *testing.T) {
	app, _, _ := setup(t)
	fight := addFight(t, app)

	updated, err := app.SetFightResult(context.Background(), fight.ID, models.FightResult{
		WinnerID: &fighterA,
		Method:   models.MethodDecision,
		Round:    ptr(3),
	})

	require.NoError(t, err)
	assert.Nil(t, updated.Round, "round only makes sense for stoppages")
}

func TestSetFightResult_IdenticalReapplyIsNoOp(t *testing.T) {
	app, repo, _ := setup(t)
	fight := addFight(t, app)
	result := models.FightResult{WinnerID: &fighterA, Method: models.MethodKO, Round: ptr(2)}

	_, err := app.SetFightResult(context.Background(), fight.ID, result)
	require.NoError(t, err)
	_, err = app.SetFightResult(context.Background(), fight.ID, result)
	require.NoError(t, err)

	assert.Equal(t, 1, repo.resultWrites, "the sync job re-applies results every cycle")
}

func TestSetFightResult_CorrectionOverwrites(t *testing.T) {
	app, repo, _ := setup(t)
	fight := addFight(t, app)

	_, err := app.SetFightResult(context.Background(), fight.ID, models.FightResult{WinnerID: &fighterA, Method: models.MethodKO, Round: ptr(2)})
	require.NoError(t, err)
	updated, err := app.SetFightResult(context.Background(), fight.ID, models.FightResult{WinnerID: &fighterB, Method: models.MethodSubmission, Round: ptr(1)})
	require.NoError(t, err)

	assert.Equal(t, 2, repo.resultWrites)
	assert.Equal(t, &fighterB, updated.WinnerID)
}

func TestClearFightResult_RevertsToScheduled(t *testing.T) {
	app, _, pub := setup(t)
	fight := addFight(t, app)

	_, err := app.SetFightResult(context.Background(), fight.ID, models.FightResult{WinnerID: &fighterA, Method: models.MethodKO, Round: ptr(2)})
	require.NoError(t, err)

	cleared, err := app.ClearFightResult(context.Background(), fight.ID)
	require.NoError(t, err)

	assert.Equal(t, models.FightStatusScheduled, cleared.Status)
	assert.Nil(t, cleared.WinnerID)
	assert.Nil(t, cleared.Method)
	assert.Nil(t, cleared.Round)
	assert.Contains(t, pub.subjects, eventbus.SubjectFightResultCleared)
}

func TestAdvanceEventStatus_ForwardOnly(t *testing.T) {
	app, _, _ := setup(t)
	event, err := app.CreateEvent(context.Background(), CreateEventRequest{
		Name: "Fight Night 240",
		Date: time.Date(2026, 10, 3, 22, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	live, err := app.AdvanceEventStatus(context.Background(), event.ID, models.EventStatusLive)
	require.NoError(t, err)
	assert.Equal(t, models.EventStatusLive, live.Status)

	// Same status again is a harmless no-op.
	_, err = app.AdvanceEventStatus(context.Background(), event.ID, models.EventStatusLive)
	require.NoError(t, err)

	// Going backward is rejected.
	_, err = app.AdvanceEventStatus(context.Background(), event.ID, models.EventStatusScheduled)
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	done, err := app.AdvanceEventStatus(context.Background(), event.ID, models.EventStatusFinished)
	require.NoError(t, err)
	assert.Equal(t, models.EventStatusFinished, done.Status)

	_, err = app.AdvanceEventStatus(context.Background(), event.ID, models.EventStatusLive)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestFinishEventIfComplete(t *testing.T) {
	app, _, _ := setup(t)
	fight := addFight(t, app)

	// Card still has an unfinished fight.
	event, err := app.FinishEventIfComplete(context.Background(), fight.EventID)
	require.NoError(t, err)
	assert.Equal(t, models.EventStatusScheduled, event.Status)

	_, err = app.SetFightResult(context.Background(), fight.ID, models.FightResult{WinnerID: &fighterA, Method: models.MethodKO, Round: ptr(1)})
	require.NoError(t, err)

	event, err = app.FinishEventIfComplete(context.Background(), fight.EventID)
	require.NoError(t, err)
	assert.Equal(t, models.EventStatusFinished, event.Status)
}

func TestCreateFight_Validation(t *testing.T) {
	app, _, _ := setup(t)
	event, err := app.CreateEvent(context.Background(), CreateEventRequest{
		Name: "Fight Night 240",
		Date: time.Date(2026, 10, 3, 22, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	_, err = app.CreateFight(context.Background(), CreateFightRequest{
		EventID:    event.ID,
		FighterAID: fighterA,
		FighterBID: fighterA,
		Rounds:     3,
	})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = app.CreateFight(context.Background(), CreateFightRequest{
		EventID:    event.ID,
		FighterAID: fighterA,
		FighterBID: fighterB,
		Rounds:     4,
	})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = app.CreateFight(context.Background(), CreateFightRequest{
		EventID:    uuid.New(),
		FighterAID: fighterA,
		FighterBID: fighterB,
		Rounds:     3,
	})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
