package service

import (
	"context"

	"resource_api/internal/models"
	"resource_api/internal/repository"
)

// Authorization validates Basic credentials and provisions users.
type Authorization interface {
	Authenticate(ctx context.Context, creds Credentials) (models.Identity, error)
	Register(ctx context.Context, username, password string) (int, error)
}

// Resources exposes the five CRUD operations. Store failures surface as *repository.StoreError.
type Resources interface {
	List(ctx context.Context, limit int) ([]models.Resource, error)
	Get(ctx context.Context, id int) (models.Resource, error)
	Create(ctx context.Context, in models.NewResource) (models.Resource, error)
	Update(ctx context.Context, id int, in models.UpdateResource) (models.Resource, error)
	Delete(ctx context.Context, id int) error
}

// Service aggregates all sub-services.
type Service struct {
	Resources
	Authorization
}

// Options carries service-level tuning from configuration.
type Options struct {
	MaxListLimit int
}

func NewService(repos *repository.Repository, opts Options) *Service {
	return &Service{
		Resources:     NewResourceService(repos.Resources, opts.MaxListLimit),
		Authorization: NewAuthService(repos.Auth),
	}
}
