package events

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Matthieu-Gauthier/octagon-sub000/internal/httpapi"
	"github.com/Matthieu-Gauthier/octagon-sub000/internal/models"
)

// EventsApp defines what the service layer needs from the events application
type EventsApp interface {
	CreateEvent(ctx context.Context, req CreateEventRequest) (*models.Event, error)
	GetEventWithFights(ctx context.Context, id uuid.UUID) (*models.Event, error)
	ListEvents(ctx context.Context) ([]models.Event, error)
	AdvanceEventStatus(ctx context.Context, id uuid.UUID, next models.EventStatus) (*models.Event, error)
	DeleteEvent(ctx context.Context, id uuid.UUID) error
	CreateFight(ctx context.Context, req CreateFightRequest) (*models.Fight, error)
	GetFight(ctx context.Context, id uuid.UUID) (*models.Fight, error)
	SetFightResult(ctx context.Context, fightID uuid.UUID, result models.FightResult) (*models.Fight, error)
	ClearFightResult(ctx context.Context, fightID uuid.UUID) (*models.Fight, error)
	GetFighter(ctx context.Context, id uuid.UUID) (*models.Fighter, error)
	ListFighters(ctx context.Context) ([]models.Fighter, error)
}

// Service exposes events, fights and fighters over HTTP
type Service struct {
	app EventsApp
}

// NewService creates a new events HTTP service
func NewService(app EventsApp) *Service {
	return &Service{app: app}
}

func (s *Service) RegisterRoutes(r chi.Router) {
	r.Route("/events", func(r chi.Router) {
		r.Get("/", s.ListEvents)
		r.Post("/", s.CreateEvent)
		r.Get("/{eventID}", s.GetEvent)
		r.Post("/{eventID}/status", s.AdvanceStatus)
		r.Delete("/{eventID}", s.DeleteEvent)
	})
	r.Route("/fights", func(r chi.Router) {
		r.Post("/", s.CreateFight)
		r.Get("/{fightID}", s.GetFight)
		r.Put("/{fightID}/result", s.SetResult)
		r.Delete("/{fightID}/result", s.ClearResult)
	})
	r.Route("/fighters", func(r chi.Router) {
		r.Get("/", s.ListFighters)
		r.Get("/{fighterID}", s.GetFighter)
	})
}

func (s *Service) ListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := s.app.ListEvents(r.Context())
	if err != nil {
		httpapi.Error(w, err)
		return
	}
	httpapi.Respond(w, http.StatusOK, events)
}

func (s *Service) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req CreateEventRequest
	if err := httpapi.Decode(r, &req); err != nil {
		httpapi.Error(w, err)
		return
	}
	if req.ID == uuid.Nil {
		req.ID = uuid.New()
	}

	event, err := s.app.CreateEvent(r.Context(), req)
	if err != nil {
		httpapi.Error(w, err)
		return
	}
	httpapi.Respond(w, http.StatusCreated, event)
}

func (s *Service) GetEvent(w http.ResponseWriter, r *http.Request) {
	id, err := httpapi.PathUUID(chi.URLParam(r, "eventID"))
	if err != nil {
		httpapi.Error(w, err)
		return
	}

	event, err := s.app.GetEventWithFights(r.Context(), id)
	if err != nil {
		httpapi.Error(w, err)
		return
	}
	httpapi.Respond(w, http.StatusOK, event)
}

func (s *Service) AdvanceStatus(w http.ResponseWriter, r *http.Request) {
	id, err := httpapi.PathUUID(chi.URLParam(r, "eventID"))
	if err != nil {
		httpapi.Error(w, err)
		return
	}

	var req struct {
		Status models.EventStatus `json:"status"`
	}
	if err := httpapi.Decode(r, &req); err != nil {
		httpapi.Error(w, err)
		return
	}

	event, err := s.app.AdvanceEventStatus(r.Context(), id, req.Status)
	if err != nil {
		httpapi.Error(w, err)
		return
	}
	httpapi.Respond(w, http.StatusOK, event)
}

func (s *Service) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	id, err := httpapi.PathUUID(chi.URLParam(r, "eventID"))
	if err != nil {
		httpapi.Error(w, err)
		return
	}

	if err := s.app.DeleteEvent(r.Context(), id); err != nil {
		httpapi.Error(w, err)
		return
	}
	httpapi.Respond(w, http.StatusNoContent, nil)
}

func (s *Service) CreateFight(w http.ResponseWriter, r *http.Request) {
	var req CreateFightRequest
	if err := httpapi.Decode(r, &req); err != nil {
		httpapi.Error(w, err)
		return
	}
	if req.ID == uuid.Nil {
		req.ID = uuid.New()
	}

	fight, err := s.app.CreateFight(r.Context(), req)
	if err != nil {
		httpapi.Error(w, err)
		return
	}
	httpapi.Respond(w, http.StatusCreated, fight)
}

func (s *Service) GetFight(w http.ResponseWriter, r *http.Request) {
	id, err := httpapi.PathUUID(chi.URLParam(r, "fightID"))
	if err != nil {
		httpapi.Error(w, err)
		return
	}

	fight, err := s.app.GetFight(r.Context(), id)
	if err != nil {
		httpapi.Error(w, err)
		return
	}
	httpapi.Respond(w, http.StatusOK, fight)
}

func (s *Service) SetResult(w http.ResponseWriter, r *http.Request) {
	id, err := httpapi.PathUUID(chi.URLParam(r, "fightID"))
	if err != nil {
		httpapi.Error(w, err)
		return
	}

	var result models.FightResult
	if err := httpapi.Decode(r, &result); err != nil {
		httpapi.Error(w, err)
		return
	}

	fight, err := s.app.SetFightResult(r.Context(), id, result)
	if err != nil {
		httpapi.Error(w, err)
		return
	}
	httpapi.Respond(w, http.StatusOK, fight)
}

func (s *Service) ClearResult(w http.ResponseWriter, r *http.Request) {
	id, err := httpapi.PathUUID(chi.URLParam(r, "fightID"))
	if err != nil {
		httpapi.Error(w, err)
		return
	}

	fight, err := s.app.ClearFightResult(r.Context(), id)
	if err != nil {
		httpapi.Error(w, err)
		return
	}
	httpapi.Respond(w, http.StatusOK, fight)
}

func (s *Service) ListFighters(w http.ResponseWriter, r *http.Request) {
	fighters, err := s.app.ListFighters(r.Context())
	if err != nil {
		httpapi.Error(w, err)
		return
	}
	httpapi.Respond(w, http.StatusOK, fighters)
}

func (s *Service) GetFighter(w http.ResponseWriter, r *http.Request) {
	id, err := httpapi.PathUUID(chi.URLParam(r, "fighterID"))
	if err != nil {
		httpapi.Error(w, err)
		return
	}

	fighter, err := s.app.GetFighter(r.Context(), id)
	if err != nil {
		httpapi.Error(w, err)
		return
	}
	httpapi.Respond(w, http.StatusOK, fighter)
}
