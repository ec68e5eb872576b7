package products

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

// Catalog is the consumer-facing view of the product store.
// Consumers define this interface, not the DynamoDB implementation.
type Catalog interface {
	Get(ctx context.Context, productID string) (*Product, error)
	GetBySlug(ctx context.Context, slug string) (*Product, error)
	GetByName(ctx context.Context, name string) (*Product, error)
	Put(ctx context.Context, p *Product) error
	ListActive(ctx context.Context) ([]Product, error)
}

// Service owns product catalog reads and the admin-only mutations.
type Service struct {
	store Catalog
	newID func() string
}

// NewService creates a product service over the given store.
func NewService(store Catalog) *Service {
	return &Service{store: store, newID: uuid.NewString}
}

// GetBySlug returns an active product by its slug.
func (s *Service) GetBySlug(ctx context.Context, slugStr string) (*Product, error) {
	p, err := s.store.GetBySlug(ctx, slugStr)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if p == nil || !p.IsActive {
		return nil, apperr.NotFound("Product not found")
	}
	return p, nil
}

// List returns active products matching the filter, newest first by default.
func (s *Service) List(ctx context.Context, f Filter) ([]Product, error) {
	all, err := s.store.ListActive(ctx)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	matched := make([]Product, 0, len(all))
	for _, p := range all {
		if f.Search != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(f.Search)) {
			continue
		}
		if f.CategoryID != "" && p.CategoryID != f.CategoryID {
			continue
		}
		if f.MinPrice > 0 && p.Price < f.MinPrice {
			continue
		}
		if f.MaxPrice > 0 && p.Price > f.MaxPrice {
			continue
		}
		matched = append(matched, p)
	}

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	limit := f.Limit
	if limit <= 0 {
		limit = 10
	}
	if f.Offset >= len(matched) {
		return []Product{}, nil
	}
	end := f.Offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[f.Offset:end], nil
}

// Create adds a new product. Admin only; names are unique.
func (s *Service) Create(ctx context.Context, p identity.Principal, req validation.CreateProductRequest) (*Product, error) {
	if !p.IsAdmin() {
		return nil, apperr.Unauthorized("Only admins can create products")
	}

	existing, err := s.store.GetByName(ctx, req.Name)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if existing != nil {
		return nil, apperr.Validation("Product with this name already exists")
	}

	product := &Product{
		ProductID:   s.newID(),
		Name:        req.Name,
		Slug:        slug.Make(req.Name),
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		CategoryID:  req.CategoryID,
		Images:      req.Images,
		IsActive:    true,
	}
	if err := s.store.Put(ctx, product); err != nil {
		return nil, apperr.Internal(err)
	}
	return product, nil
}

// Update edits an existing product. Admin only. A renamed product gets a
// fresh slug, matching the create path.
func (s *Service) Update(ctx context.Context, p identity.Principal, productID string, req validation.UpdateProductRequest) (*Product, error) {
	if !p.IsAdmin() {
		return nil, apperr.Unauthorized("Only admins can update products")
	}
	if !validation.IsValidID(productID) {
		return nil, apperr.Validation("Invalid product ID")
	}

	product, err := s.store.Get(ctx, productID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if product == nil {
		return nil, apperr.NotFound("Product not found")
	}

	if req.Name != nil {
		product.Name = *req.Name
		product.Slug = slug.Make(*req.Name)
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.Stock != nil {
		product.Stock = *req.Stock
	}
	if req.CategoryID != nil {
		product.CategoryID = *req.CategoryID
	}
	if req.Images != nil {
		product.Images = req.Images
	}

	if err := s.store.Put(ctx, product); err != nil {
		return nil, apperr.Internal(err)
	}
	return product, nil
}

// Delete soft-removes a product by flipping is_active. Admin only. Historical
// orders keep referencing the id; carts stop resolving it.
func (s *Service) Delete(ctx context.Context, p identity.Principal, productID string) (bool, error) {
	if !p.IsAdmin() {
		return false, apperr.Unauthorized("Only admins can delete products")
	}
	if !validation.IsValidID(productID) {
		return false, apperr.Validation("Invalid product ID")
	}

	product, err := s.store.Get(ctx, productID)
	if err != nil {
		return false, apperr.Internal(err)
	}
	if product == nil {
		return false, apperr.NotFound("Product not found")
	}

	product.IsActive = false
	if err := s.store.Put(ctx, product); err != nil {
		return false, apperr.Internal(err)
	}
	return true, nil
}
