package leagues

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/sqlc-dev/pqtype"

	"github.com/Matthieu-Gauthier/octagon-sub000/internal/apperrors"
	"github.com/Matthieu-Gauthier/octagon-sub000/internal/leagues/db"
	"github.com/Matthieu-Gauthier/octagon-sub000/internal/models"
	"github.com/Matthieu-Gauthier/octagon-sub000/internal/sqlutil"
)

// uniqueViolation is the Postgres error code for unique constraint failures.
const uniqueViolation = "23505"

// Querier defines what the repository needs from the database layer
type Querier interface {
	GetLeague(ctx context.Context, id uuid.UUID) (db.League, error)
	GetLeagueByCode(ctx context.Context, code string) (db.League, error)
	ListLeaguesForUser(ctx context.Context, userID uuid.UUID) ([]db.League, error)
	ArchiveLeague(ctx context.Context, id uuid.UUID) (db.League, error)
	UpdateScoringSettings(ctx context.Context, arg db.UpdateScoringSettingsParams) (db.League, error)
	AddMember(ctx context.Context, arg db.AddMemberParams) (db.LeagueMember, error)
	GetMember(ctx context.Context, arg db.GetMemberParams) (db.GetMemberRow, error)
	ListMembers(ctx context.Context, leagueID uuid.UUID) ([]db.ListMembersRow, error)
}

// Repository implements league and membership data access. It holds the raw
// *sql.DB alongside the query layer because league creation spans two rows.
type Repository struct {
	queries  Querier
	database *sql.DB
}

// NewRepository creates a new leagues repository
func NewRepository(querier Querier, database *sql.DB) *Repository {
	return &Repository{
		queries:  querier,
		database: database,
	}
}

type CreateLeagueRequest struct {
	ID              uuid.UUID              `json:"id"`
	Name            string                 `json:"name"`
	Code            string                 `json:"code"`
	AdminID         uuid.UUID              `json:"admin_id"`
	SurvivorEnabled bool                   `json:"survivor_enabled"`
	ScoringSettings models.ScoringSettings `json:"scoring_settings"`
}

// CreateLeagueWithAdmin creates the league row and its admin membership in
// one transaction. A code collision surfaces as Conflict so the app layer
// can retry with a fresh code.
func (r *Repository) CreateLeagueWithAdmin(ctx context.Context, req CreateLeagueRequest) (*models.League, error) {
	settings, err := marshalSettings(req.ScoringSettings)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal scoring settings: %w", err)
	}

	var league db.League
	err = sqlutil.Run(ctx, r.database,
		func(tx *sql.Tx) *db.Queries { return db.New(tx) },
		func(q *db.Queries) error {
			league, err = q.CreateLeague(ctx, db.CreateLeagueParams{
				ID:              req.ID,
				Name:            req.Name,
				Code:            req.Code,
				AdminID:         req.AdminID,
				SurvivorEnabled: req.SurvivorEnabled,
				ScoringSettings: settings,
			})
			if err != nil {
				return err
			}
			_, err = q.AddMember(ctx, db.AddMemberParams{
				LeagueID: req.ID,
				UserID:   req.AdminID,
				Role:     string(models.LeagueRoleAdmin),
			})
			return err
		})
	if err != nil {
		if isUniqueViolation(err) {
			return nil, apperrors.Conflict("league code %s already in use", req.Code)
		}
		return nil, fmt.Errorf("failed to create league: %w", err)
	}

	return r.dbLeagueToModel(league), nil
}

// GetLeague retrieves a league by ID
func (r *Repository) GetLeague(ctx context.Context, id uuid.UUID) (*models.League, error) {
	league, err := r.queries.GetLeague(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("league %s", id)
		}
		return nil, fmt.Errorf("failed to get league: %w", err)
	}

	return r.dbLeagueToModel(league), nil
}

// GetLeagueByCode retrieves a league by its join code
func (r *Repository) GetLeagueByCode(ctx context.Context, code string) (*models.League, error) {
	league, err := r.queries.GetLeagueByCode(ctx, code)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("league with code %s", code)
		}
		return nil, fmt.Errorf("failed to get league by code: %w", err)
	}

	return r.dbLeagueToModel(league), nil
}

// ListLeaguesForUser retrieves a user's non-archived leagues
func (r *Repository) ListLeaguesForUser(ctx context.Context, userID uuid.UUID) ([]models.League, error) {
	leagues, err := r.queries.ListLeaguesForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leagues for user: %w", err)
	}

	out := make([]models.League, len(leagues))
	for i, l := range leagues {
		out[i] = *r.dbLeagueToModel(l)
	}
	return out, nil
}

// ArchiveLeague soft-deletes a league
func (r *Repository) ArchiveLeague(ctx context.Context, id uuid.UUID) (*models.League, error) {
	league, err := r.queries.ArchiveLeague(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("league %s", id)
		}
		return nil, fmt.Errorf("failed to archive league: %w", err)
	}

	return r.dbLeagueToModel(league), nil
}

// UpdateScoringSettings replaces a league's scoring overrides
func (r *Repository) UpdateScoringSettings(ctx context.Context, id uuid.UUID, settings models.ScoringSettings) (*models.League, error) {
	raw, err := marshalSettings(settings)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal scoring settings: %w", err)
	}

	league, err := r.queries.UpdateScoringSettings(ctx, db.UpdateScoringSettingsParams{
		ID:              id,
		ScoringSettings: raw,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("league %s", id)
		}
		return nil, fmt.Errorf("failed to update scoring settings: %w", err)
	}

	return r.dbLeagueToModel(league), nil
}

// AddMember inserts a membership row; a duplicate surfaces as Conflict
func (r *Repository) AddMember(ctx context.Context, leagueID, userID uuid.UUID, role models.LeagueRole) (*models.LeagueMember, error) {
	member, err := r.queries.AddMember(ctx, db.AddMemberParams{
		LeagueID: leagueID,
		UserID:   userID,
		Role:     string(role),
	})
	if err != nil {
		if isUniqueViolation(err) {
			return nil, apperrors.Conflict("user %s is already a member of league %s", userID, leagueID)
		}
		return nil, fmt.Errorf("failed to add member: %w", err)
	}

	return &models.LeagueMember{
		LeagueID: member.LeagueID,
		UserID:   member.UserID,
		Role:     models.LeagueRole(member.Role),
		JoinedAt: member.JoinedAt,
	}, nil
}

// GetMember retrieves one membership row with its username
func (r *Repository) GetMember(ctx context.Context, leagueID, userID uuid.UUID) (*models.LeagueMember, error) {
	member, err := r.queries.GetMember(ctx, db.GetMemberParams{
		LeagueID: leagueID,
		UserID:   userID,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("member %s in league %s", userID, leagueID)
		}
		return nil, fmt.Errorf("failed to get member: %w", err)
	}

	return &models.LeagueMember{
		LeagueID: member.LeagueID,
		UserID:   member.UserID,
		Username: member.Username,
		Role:     models.LeagueRole(member.Role),
		JoinedAt: member.JoinedAt,
	}, nil
}

// ListMembers retrieves a league's membership with usernames
func (r *Repository) ListMembers(ctx context.Context, leagueID uuid.UUID) ([]models.LeagueMember, error) {
	members, err := r.queries.ListMembers(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}

	out := make([]models.LeagueMember, len(members))
	for i, m := range members {
		out[i] = models.LeagueMember{
			LeagueID: m.LeagueID,
			UserID:   m.UserID,
			Username: m.Username,
			Role:     models.LeagueRole(m.Role),
			JoinedAt: m.JoinedAt,
		}
	}
	return out, nil
}

func (r *Repository) dbLeagueToModel(l db.League) *models.League {
	var settings models.ScoringSettings
	if l.ScoringSettings.Valid {
		// Unknown keys in the stored JSON are dropped here.
		_ = json.Unmarshal(l.ScoringSettings.RawMessage, &settings)
	}

	return &models.League{
		ID:              l.ID,
		Name:            l.Name,
		Code:            l.Code,
		AdminID:         l.AdminID,
		IsArchived:      l.IsArchived,
		SurvivorEnabled: l.SurvivorEnabled,
		ScoringSettings: settings,
		CreatedAt:       l.CreatedAt,
		UpdatedAt:       l.UpdatedAt,
	}
}

func marshalSettings(s models.ScoringSettings) (pqtype.NullRawMessage, error) {
	raw, err := json.Marshal(s)
	if err != nil {
		return pqtype.NullRawMessage{}, err
	}
	return pqtype.NullRawMessage{RawMessage: raw, Valid: true}, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}
