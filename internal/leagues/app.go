package leagues

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/Matthieu-Gauthier/octagon-sub000/internal/apperrors"
	"github.com/Matthieu-Gauthier/octagon-sub000/internal/models"
)

const (
	codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	codeLength   = 6
	// widenedCodeLength is used once the 6-char space looks saturated.
	widenedCodeLength = 8
	codeMaxAttempts   = 10
)

// LeaguesRepository defines what the app layer needs from the repository
type LeaguesRepository interface {
	CreateLeagueWithAdmin(ctx context.Context, req CreateLeagueRequest) (*models.League, error)
	GetLeague(ctx context.Context, id uuid.UUID) (*models.League, error)
	GetLeagueByCode(ctx context.Context, code string) (*models.League, error)
	ListLeaguesForUser(ctx context.Context, userID uuid.UUID) ([]models.League, error)
	ArchiveLeague(ctx context.Context, id uuid.UUID) (*models.League, error)
	UpdateScoringSettings(ctx context.Context, id uuid.UUID, settings models.ScoringSettings) (*models.League, error)
	AddMember(ctx context.Context, leagueID, userID uuid.UUID, role models.LeagueRole) (*models.LeagueMember, error)
	GetMember(ctx context.Context, leagueID, userID uuid.UUID) (*models.LeagueMember, error)
	ListMembers(ctx context.Context, leagueID uuid.UUID) ([]models.LeagueMember, error)
}

// UsersApp defines what the app layer needs from the users application
type UsersApp interface {
	GetUser(ctx context.Context, id uuid.UUID) (*models.User, error)
}

// App handles league and membership business logic
type App struct {
	repo    LeaguesRepository
	userApp UsersApp
}

// NewApp creates a new leagues App
func NewApp(repo LeaguesRepository, userApp UsersApp) *App {
	return &App{
		repo:    repo,
		userApp: userApp,
	}
}

// CreateLeague creates a league with a collision-free join code and enrolls
// the creator as its ADMIN member.
func (a *App) CreateLeague(ctx context.Context, name string, adminID uuid.UUID, survivorEnabled bool, settings models.ScoringSettings) (*models.League, error) {
	if name == "" {
		return nil, apperrors.Validation("league name is required")
	}
	if _, err := a.userApp.GetUser(ctx, adminID); err != nil {
		return nil, fmt.Errorf("admin user: %w", err)
	}

	league, err := a.createWithFreshCode(ctx, CreateLeagueRequest{
		ID:              uuid.New(),
		Name:            name,
		AdminID:         adminID,
		SurvivorEnabled: survivorEnabled,
		ScoringSettings: settings,
	})
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("league_id", league.ID.String()).
		Str("code", league.Code).
		Msg("created league")
	return league, nil
}

// createWithFreshCode retries code generation on collision, bounded at
// codeMaxAttempts per length. The store's unique constraint on code is the
// collision check; there is no read-then-write race.
func (a *App) createWithFreshCode(ctx context.Context, req CreateLeagueRequest) (*models.League, error) {
	for _, length := range []int{codeLength, widenedCodeLength} {
		for attempt := 0; attempt < codeMaxAttempts; attempt++ {
			code, err := randomCode(length)
			if err != nil {
				return nil, fmt.Errorf("failed to generate join code: %w", err)
			}

			req.Code = code
			league, err := a.repo.CreateLeagueWithAdmin(ctx, req)
			if err == nil {
				return league, nil
			}
			if !errors.Is(err, apperrors.ErrConflict) {
				return nil, err
			}
			log.Warn().
				Str("code", code).
				Int("attempt", attempt+1).
				Msg("join code collision, retrying")
		}
	}
	return nil, apperrors.Conflict("could not find a free join code after %d attempts", 2*codeMaxAttempts)
}

// GetLeague retrieves a league by ID
func (a *App) GetLeague(ctx context.Context, id uuid.UUID) (*models.League, error) {
	return a.repo.GetLeague(ctx, id)
}

// ListLeaguesForUser retrieves the requesting user's non-archived leagues
func (a *App) ListLeaguesForUser(ctx context.Context, userID uuid.UUID) ([]models.League, error) {
	return a.repo.ListLeaguesForUser(ctx, userID)
}

// JoinLeague enrolls a user via join code. Unknown or archived codes fail
// NotFound; joining twice fails Conflict.
func (a *App) JoinLeague(ctx context.Context, code string, userID uuid.UUID) (*models.LeagueMember, error) {
	league, err := a.repo.GetLeagueByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if league.IsArchived {
		return nil, apperrors.NotFound("league with code %s", code)
	}
	if _, err := a.userApp.GetUser(ctx, userID); err != nil {
		return nil, fmt.Errorf("joining user: %w", err)
	}

	member, err := a.repo.AddMember(ctx, league.ID, userID, models.LeagueRoleMember)
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("league_id", league.ID.String()).
		Str("user_id", userID.String()).
		Msg("user joined league")
	return member, nil
}

// ArchiveLeague soft-deletes a league; admin only
func (a *App) ArchiveLeague(ctx context.Context, id, requestingUser uuid.UUID) (*models.League, error) {
	league, err := a.repo.GetLeague(ctx, id)
	if err != nil {
		return nil, err
	}
	if league.AdminID != requestingUser {
		return nil, apperrors.Forbidden("only the league admin can archive it")
	}

	return a.repo.ArchiveLeague(ctx, id)
}

// UpdateScoringSettings replaces a league's scoring overrides; admin only.
// Missing fields fall back to defaults at scoring time.
func (a *App) UpdateScoringSettings(ctx context.Context, id, requestingUser uuid.UUID, settings models.ScoringSettings) (*models.League, error) {
	league, err := a.repo.GetLeague(ctx, id)
	if err != nil {
		return nil, err
	}
	if league.AdminID != requestingUser {
		return nil, apperrors.Forbidden("only the league admin can change scoring settings")
	}
	if err := validateSettings(settings); err != nil {
		return nil, err
	}

	return a.repo.UpdateScoringSettings(ctx, id, settings)
}

// GetScoringSettings returns the league's overrides resolved against the
// defaults, i.e. the values the scoring engine will actually use.
func (a *App) GetScoringSettings(ctx context.Context, id uuid.UUID) (models.ResolvedScoringSettings, error) {
	league, err := a.repo.GetLeague(ctx, id)
	if err != nil {
		return models.ResolvedScoringSettings{}, err
	}
	return league.ScoringSettings.Resolve(), nil
}

// ListMembers retrieves a league's membership
func (a *App) ListMembers(ctx context.Context, leagueID uuid.UUID) ([]models.LeagueMember, error) {
	if _, err := a.repo.GetLeague(ctx, leagueID); err != nil {
		return nil, err
	}
	return a.repo.ListMembers(ctx, leagueID)
}

// IsMember reports whether a user belongs to a league
func (a *App) IsMember(ctx context.Context, leagueID, userID uuid.UUID) (bool, error) {
	_, err := a.repo.GetMember(ctx, leagueID, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func validateSettings(s models.ScoringSettings) error {
	for name, v := range map[string]*int{
		"winner":   s.Winner,
		"method":   s.Method,
		"round":    s.Round,
		"decision": s.Decision,
	} {
		if v != nil && *v < 0 {
			return apperrors.Validation("scoring value %s cannot be negative", name)
		}
	}
	return nil
}

func randomCode(length int) (string, error) {
	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	for i, b := range buf {
		buf[i] = codeAlphabet[int(b)%len(codeAlphabet)]
	}
	return string(buf), nil
}
