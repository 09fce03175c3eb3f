package users

import (
	"context"

	"github.com/google/uuid"

	"github.com/Matthieu-Gauthier/octagon-sub000/internal/apperrors"
	"github.com/Matthieu-Gauthier/octagon-sub000/internal/models"
)

// UsersRepository defines what the app layer needs from the repository
type UsersRepository interface {
	GetUser(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	UpsertUser(ctx context.Context, req UpsertUserRequest) (*models.User, error)
}

// App handles users business logic. Authentication itself happens at the
// identity provider; this only mirrors profiles locally.
type App struct {
	repo UsersRepository
}

// NewApp creates a new users App
func NewApp(repo UsersRepository) *App {
	return &App{
		repo: repo,
	}
}

// GetUser retrieves a user by ID
func (a *App) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return a.repo.GetUser(ctx, id)
}

// UpsertUser mirrors an identity provider subject into the local store
func (a *App) UpsertUser(ctx context.Context, req UpsertUserRequest) (*models.User, error) {
	if req.ID == uuid.Nil {
		return nil, apperrors.Validation("user id is required")
	}
	if req.Username == "" {
		return nil, apperrors.Validation("username is required")
	}
	return a.repo.UpsertUser(ctx, req)
}
