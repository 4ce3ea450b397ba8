package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"resource_api/internal/models"
	"resource_api/internal/repository"
)

// ErrInvalidInput marks request payloads rejected before reaching the store.
var ErrInvalidInput = errors.New("invalid input")

const (
	DefaultListLimit = 100
	MaxListLimit     = 1000
)

type ResourceService struct {
	repo     repository.ResourceRepo
	maxLimit int
}

func NewResourceService(repo repository.ResourceRepo, maxLimit int) *ResourceService {
	if maxLimit <= 0 {
		maxLimit = MaxListLimit
	}
	return &ResourceService{repo: repo, maxLimit: maxLimit}
}

// List returns at most limit records, newest first. limit is clamped to the configured maximum.
func (s *ResourceService) List(ctx context.Context, limit int) ([]models.Resource, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("%w: limit must be positive", ErrInvalidInput)
	}
	return s.repo.FindMany(ctx, min(limit, s.maxLimit))
}

func (s *ResourceService) Get(ctx context.Context, id int) (models.Resource, error) {
	return s.repo.FindOne(ctx, id)
}

func (s *ResourceService) Create(ctx context.Context, in models.NewResource) (models.Resource, error) {
	name, email, err := normalizeContact(in.Name, in.Email)
	if err != nil {
		return models.Resource{}, err
	}
	return s.repo.Create(ctx, models.NewResource{Name: name, Email: email})
}

// Update replaces name and email; id comes from the path and is never changed.
func (s *ResourceService) Update(ctx context.Context, id int, in models.UpdateResource) (models.Resource, error) {
	name, email, err := normalizeContact(in.Name, in.Email)
	if err != nil {
		return models.Resource{}, err
	}
	return s.repo.Save(ctx, id, models.UpdateResource{Name: name, Email: email})
}

func (s *ResourceService) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

// normalizeContact trims both fields and rejects blanks.
func normalizeContact(name, email string) (string, string, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" {
		return "", "", fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if email == "" {
		return "", "", fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	return name, email, nil
}
