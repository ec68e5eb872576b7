package categories

import (
	"context"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/marketloop/commerce-backend/internal/apperr"
	"github.com/marketloop/commerce-backend/internal/identity"
	"github.com/marketloop/commerce-backend/internal/slug"
	"github.com/marketloop/commerce-backend/internal/validation"
)

// Catalog is the consumer-facing view of the category store.
type Catalog interface {
	Get(ctx context.Context, categoryID string) (*Category, error)
	GetByName(ctx context.Context, name string) (*Category, error)
	ListActive(ctx context.Context) ([]Category, error)
	Put(ctx context.Context, c *Category) error
}

// Service owns category reads and the admin-only mutations.
type Service struct {
	store Catalog
	newID func() string
}

// NewService creates a category service over the given store.
func NewService(store Catalog) *Service {
	return &Service{store: store, newID: uuid.NewString}
}

// List returns active categories, newest first.
func (s *Service) List(ctx context.Context) ([]Category, error) {
	list, err := s.store.ListActive(ctx)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].CreatedAt.After(list[j].CreatedAt)
	})
	return list, nil
}

// Create adds a category. Admin only; names are trimmed and unique.
func (s *Service) Create(ctx context.Context, p identity.Principal, name string) (*Category, error) {
	if !p.IsAdmin() {
		return nil, apperr.Unauthorized("Only admins can create categories")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperr.Validation("Category name cannot be empty")
	}

	existing, err := s.store.GetByName(ctx, name)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if existing != nil {
		return nil, apperr.Validation("Category already exists")
	}

	category := &Category{
		CategoryID: s.newID(),
		Name:       name,
		Slug:       slug.Make(name),
		IsActive:   true,
	}
	if err := s.store.Put(ctx, category); err != nil {
		return nil, apperr.Internal(err)
	}
	return category, nil
}

// Update renames a category, re-deriving its slug. Admin only.
func (s *Service) Update(ctx context.Context, p identity.Principal, categoryID, name string) (*Category, error) {
	if !p.IsAdmin() {
		return nil, apperr.Unauthorized("Only admins can update categories")
	}
	if !validation.IsValidID(categoryID) {
		return nil, apperr.Validation("Invalid category ID")
	}

	category, err := s.store.Get(ctx, categoryID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if category == nil {
		return nil, apperr.NotFound("Category not found")
	}

	category.Name = strings.TrimSpace(name)
	category.Slug = slug.Make(category.Name)
	if err := s.store.Put(ctx, category); err != nil {
		return nil, apperr.Internal(err)
	}
	return category, nil
}

// Delete soft-removes a category. Admin only.
func (s *Service) Delete(ctx context.Context, p identity.Principal, categoryID string) (bool, error) {
	if !p.IsAdmin() {
		return false, apperr.Unauthorized("Only admins can delete categories")
	}
	if !validation.IsValidID(categoryID) {
		return false, apperr.Validation("Invalid category ID")
	}

	category, err := s.store.Get(ctx, categoryID)
	if err != nil {
		return false, apperr.Internal(err)
	}
	if category == nil {
		return false, apperr.NotFound("Category not found")
	}

	category.IsActive = false
	if err := s.store.Put(ctx, category); err != nil {
		return false, apperr.Internal(err)
	}
	return true, nil
}
