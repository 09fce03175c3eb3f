package leagues

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Matthieu-Gauthier/octagon-sub000/internal/httpapi"
	"github.com/Matthieu-Gauthier/octagon-sub000/internal/models"
)

// LeaguesApp defines what the service layer needs from the leagues application
type LeaguesApp interface {
	CreateLeague(ctx context.Context, name string, adminID uuid.UUID, survivorEnabled bool, settings models.ScoringSettings) (*models.League, error)
	GetLeague(ctx context.Context, id uuid.UUID) (*models.League, error)
	ListLeaguesForUser(ctx context.Context, userID uuid.UUID) ([]models.League, error)
	JoinLeague(ctx context.Context, code string, userID uuid.UUID) (*models.LeagueMember, error)
	ArchiveLeague(ctx context.Context, id, requestingUser uuid.UUID) (*models.League, error)
	UpdateScoringSettings(ctx context.Context, id, requestingUser uuid.UUID, settings models.ScoringSettings) (*models.League, error)
	GetScoringSettings(ctx context.Context, id uuid.UUID) (models.ResolvedScoringSettings, error)
	ListMembers(ctx context.Context, leagueID uuid.UUID) ([]models.LeagueMember, error)
}

// Service exposes leagues and membership over HTTP
type Service struct {
	app LeaguesApp
}

// NewService creates a new leagues HTTP service
func NewService(app LeaguesApp) *Service {
	return &Service{app: app}
}

func (s *Service) RegisterRoutes(r chi.Router) {
	r.Route("/leagues", func(r chi.Router) {
		r.Get("/", s.ListMine)
		r.Post("/", s.Create)
		r.Post("/join", s.Join)
		r.Get("/{leagueID}", s.Get)
		r.Delete("/{leagueID}", s.Archive)
		r.Get("/{leagueID}/scoring", s.GetScoring)
		r.Put("/{leagueID}/scoring", s.UpdateScoring)
		r.Get("/{leagueID}/members", s.ListMembers)
	})
}

func (s *Service) Create(w http.ResponseWriter, r *http.Request) {
	userID, err := httpapi.RequestUser(r)
	if err != nil {
		httpapi.Error(w, err)
		return
	}

	var req struct {
		Name            string                 `json:"name"`
		SurvivorEnabled bool                   `json:"survivor_enabled"`
		ScoringSettings models.ScoringSettings `json:"scoring_settings"`
	}
	if err := httpapi.Decode(r, &req); err != nil {
		httpapi.Error(w, err)
		return
	}

	league, err := s.app.CreateLeague(r.Context(), req.Name, userID, req.SurvivorEnabled, req.ScoringSettings)
	if err != nil {
		httpapi.Error(w, err)
		return
	}
	httpapi.Respond(w, http.StatusCreated, league)
}

func (s *Service) ListMine(w http.ResponseWriter, r *http.Request) {
	userID, err := httpapi.RequestUser(r)
	if err != nil {
		httpapi.Error(w, err)
		return
	}

	leagues, err := s.app.ListLeaguesForUser(r.Context(), userID)
	if err != nil {
		httpapi.Error(w, err)
		return
	}
	httpapi.Respond(w, http.StatusOK, leagues)
}

func (s *Service) Get(w http.ResponseWriter, r *http.Request) {
	id, err := httpapi.PathUUID(chi.URLParam(r, "leagueID"))
	if err != nil {
		httpapi.Error(w, err)
		return
	}

	league, err := s.app.GetLeague(r.Context(), id)
	if err != nil {
		httpapi.Error(w, err)
		return
	}
	httpapi.Respond(w, http.StatusOK, league)
}

func (s *Service) Join(w http.ResponseWriter, r *http.Request) {
	userID, err := httpapi.RequestUser(r)
	if err != nil {
		httpapi.Error(w, err)
		return
	}

	var req struct {
		Code string `json:"code"`
	}
	if err := httpapi.Decode(r, &req); err != nil {
		httpapi.Error(w, err)
		return
	}

	member, err := s.app.JoinLeague(r.Context(), req.Code, userID)
	if err != nil {
		httpapi.Error(w, err)
		return
	}
	httpapi.Respond(w, http.StatusCreated, member)
}

func (s *Service) Archive(w http.ResponseWriter, r *http.Request) {
	userID, err := httpapi.RequestUser(r)
	if err != nil {
		httpapi.Error(w, err)
		return
	}
	id, err := httpapi.PathUUID(chi.URLParam(r, "leagueID"))
	if err != nil {
		httpapi.Error(w, err)
		return
	}

	league, err := s.app.ArchiveLeague(r.Context(), id, userID)
	if err != nil {
		httpapi.Error(w, err)
		return
	}
	httpapi.Respond(w, http.StatusOK, league)
}

func (s *Service) GetScoring(w http.ResponseWriter, r *http.Request) {
	id, err := httpapi.PathUUID(chi.URLParam(r, "leagueID"))
	if err != nil {
		httpapi.Error(w, err)
		return
	}

	settings, err := s.app.GetScoringSettings(r.Context(), id)
	if err != nil {
		httpapi.Error(w, err)
		return
	}
	httpapi.Respond(w, http.StatusOK, settings)
}

func (s *Service) UpdateScoring(w http.ResponseWriter, r *http.Request) {
	userID, err := httpapi.RequestUser(r)
	if err != nil {
		httpapi.Error(w, err)
		return
	}
	id, err := httpapi.PathUUID(chi.URLParam(r, "leagueID"))
	if err != nil {
		httpapi.Error(w, err)
		return
	}

	var settings models.ScoringSettings
	if err := httpapi.Decode(r, &settings); err != nil {
		httpapi.Error(w, err)
		return
	}

	league, err := s.app.UpdateScoringSettings(r.Context(), id, userID, settings)
	if err != nil {
		httpapi.Error(w, err)
		return
	}
	httpapi.Respond(w, http.StatusOK, league)
}

func (s *Service) ListMembers(w http.ResponseWriter, r *http.Request) {
	id, err := httpapi.PathUUID(chi.URLParam(r, "leagueID"))
	if err != nil {
		httpapi.Error(w, err)
		return
	}

	members, err := s.app.ListMembers(r.Context(), id)
	if err != nil {
		httpapi.Error(w, err)
		return
	}
	httpapi.Respond(w, http.StatusOK, members)
}
