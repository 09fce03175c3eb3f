package standings

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Matthieu-Gauthier/octagon-sub000/internal/httpapi"
	"github.com/Matthieu-Gauthier/octagon-sub000/internal/models"
)

// StandingsApp defines what the service layer needs from the standings application
type StandingsApp interface {
	GetStandings(ctx context.Context, leagueID uuid.UUID) ([]models.StandingRow, error)
}

// Service exposes league standings over HTTP
type Service struct {
	app StandingsApp
}

// NewService creates a new standings HTTP service
func NewService(app StandingsApp) *Service {
	return &Service{app: app}
}

func (s *Service) RegisterRoutes(r chi.Router) {
	r.Get("/leagues/{leagueID}/standings", s.Get)
}

func (s *Service) Get(w http.ResponseWriter, r *http.Request) {
	leagueID, err := httpapi.PathUUID(chi.URLParam(r, "leagueID"))
	if err != nil {
		httpapi.Error(w, err)
		return
	}

	rows, err := s.app.GetStandings(r.Context(), leagueID)
	if err != nil {
		httpapi.Error(w, err)
		return
	}
	httpapi.Respond(w, http.StatusOK, rows)
}
