package users

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Matthieu-Gauthier/octagon-sub000/internal/httpapi"
	"github.com/Matthieu-Gauthier/octagon-sub000/internal/models"
)

// UsersApp defines what the service layer needs from the users application
type UsersApp interface {
	GetUser(ctx context.Context, id uuid.UUID) (*models.User, error)
	UpsertUser(ctx context.Context, req UpsertUserRequest) (*models.User, error)
}

// Service mirrors identity-provider profiles over HTTP
type Service struct {
	app UsersApp
}

// NewService creates a new users HTTP service
func NewService(app UsersApp) *Service {
	return &Service{app: app}
}

func (s *Service) RegisterRoutes(r chi.Router) {
	r.Route("/users", func(r chi.Router) {
		r.Put("/", s.Upsert)
		r.Get("/{userID}", s.Get)
	})
}

func (s *Service) Upsert(w http.ResponseWriter, r *http.Request) {
	var req UpsertUserRequest
	if err := httpapi.Decode(r, &req); err != nil {
		httpapi.Error(w, err)
		return
	}
	if req.ID == uuid.Nil {
		req.ID = uuid.New()
	}

	user, err := s.app.UpsertUser(r.Context(), req)
	if err != nil {
		httpapi.Error(w, err)
		return
	}
	httpapi.Respond(w, http.StatusOK, user)
}

func (s *Service) Get(w http.ResponseWriter, r *http.Request) {
	id, err := httpapi.PathUUID(chi.URLParam(r, "userID"))
	if err != nil {
		httpapi.Error(w, err)
		return
	}

	user, err := s.app.GetUser(r.Context(), id)
	if err != nil {
		httpapi.Error(w, err)
		return
	}
	httpapi.Respond(w, http.StatusOK, user)
}
