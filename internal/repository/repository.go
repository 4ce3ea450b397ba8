package repository

import (
	"context"
	"database/sql"

	"resource_api/internal/models"
)

// Credentials is the read side of the credential store, plus provisioning for the CLI.
type Credentials interface {
	Create(ctx context.Context, username, hash string) (int, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

// ResourceRepo owns all CRUD access to resources. Failures are *StoreError.
type ResourceRepo interface {
	FindOne(ctx context.Context, id int) (models.Resource, error)
	FindMany(ctx context.Context, limit int) ([]models.Resource, error)
	Create(ctx context.Context, in models.NewResource) (models.Resource, error)
	Save(ctx context.Context, id int, in models.UpdateResource) (models.Resource, error)
	Delete(ctx context.Context, id int) error
}

type Repository struct {
	Resources ResourceRepo
	Auth      Credentials
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Resources: NewResourceSQLite(db),
		Auth:      NewUserRepository(db),
	}
}
