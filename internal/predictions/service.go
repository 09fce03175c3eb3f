package predictions

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Matthieu-Gauthier/octagon-sub000/internal/httpapi"
	"github.com/Matthieu-Gauthier/octagon-sub000/internal/models"
)

// PredictionsApp defines what the service layer needs from the predictions application
type PredictionsApp interface {
	Place(ctx context.Context, leagueID, userID, fightID uuid.UUID, pick Pick) (*models.Prediction, error)
	Remove(ctx context.Context, predictionID, requestingUser uuid.UUID) error
	ListForUser(ctx context.Context, leagueID, userID uuid.UUID) ([]models.Prediction, error)
}

// Service exposes prediction placement over HTTP
type Service struct {
	app PredictionsApp
}

// NewService creates a new predictions HTTP service
func NewService(app PredictionsApp) *Service {
	return &Service{app: app}
}

func (s *Service) RegisterRoutes(r chi.Router) {
	r.Route("/leagues/{leagueID}/predictions", func(r chi.Router) {
		r.Get("/", s.ListMine)
		r.Put("/", s.Place)
	})
	r.Delete("/predictions/{predictionID}", s.Remove)
}

func (s *Service) Place(w http.ResponseWriter, r *http.Request) {
	userID, err := httpapi.RequestUser(r)
	if err != nil {
		httpapi.Error(w, err)
		return
	}
	leagueID, err := httpapi.PathUUID(chi.URLParam(r, "leagueID"))
	if err != nil {
		httpapi.Error(w, err)
		return
	}

	var req struct {
		FightID uuid.UUID `json:"fight_id"`
		Pick
	}
	if err := httpapi.Decode(r, &req); err != nil {
		httpapi.Error(w, err)
		return
	}

	prediction, err := s.app.Place(r.Context(), leagueID, userID, req.FightID, req.Pick)
	if err != nil {
		httpapi.Error(w, err)
		return
	}
	httpapi.Respond(w, http.StatusOK, prediction)
}

func (s *Service) Remove(w http.ResponseWriter, r *http.Request) {
	userID, err := httpapi.RequestUser(r)
	if err != nil {
		httpapi.Error(w, err)
		return
	}
	id, err := httpapi.PathUUID(chi.URLParam(r, "predictionID"))
	if err != nil {
		httpapi.Error(w, err)
		return
	}

	if err := s.app.Remove(r.Context(), id, userID); err != nil {
		httpapi.Error(w, err)
		return
	}
	httpapi.Respond(w, http.StatusNoContent, nil)
}

func (s *Service) ListMine(w http.ResponseWriter, r *http.Request) {
	userID, err := httpapi.RequestUser(r)
	if err != nil {
		httpapi.Error(w, err)
		return
	}
	leagueID, err := httpapi.PathUUID(chi.URLParam(r, "leagueID"))
	if err != nil {
		httpapi.Error(w, err)
		return
	}

	predictions, err := s.app.ListForUser(r.Context(), leagueID, userID)
	if err != nil {
		httpapi.Error(w, err)
		return
	}
	httpapi.Respond(w, http.StatusOK, predictions)
}
