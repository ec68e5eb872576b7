package reviews

import (
	"context"

	"github.com/google/uuid"

	"github.com/marketloop/commerce-backend/internal/apperr"
	"github.com/marketloop/commerce-backend/internal/identity"
	"github.com/marketloop/commerce-backend/internal/validation"
)

// ReviewStore is the persistence surface the service needs.
type ReviewStore interface {
	Get(ctx context.Context, reviewID string) (*Review, error)
	ListByProduct(ctx context.Context, productID string) ([]Review, error)
	GetByProductAndUser(ctx context.Context, productID, userID string) (*Review, error)
	Put(ctx context.Context, r *Review) error
	Delete(ctx context.Context, reviewID string) error
}

// RatingSink receives the recomputed average after every review mutation.
type RatingSink interface {
	SetAverageRating(ctx context.Context, productID string, avg float64) error
}

// Service owns review CRUD and keeps the product's derived average rating
// in sync.
type Service struct {
	store    ReviewStore
	products RatingSink
	newID    func() string
}

// NewService creates a review service.
func NewService(store ReviewStore, products RatingSink) *Service {
	return &Service{store: store, products: products, newID: uuid.NewString}
}

// ListForProduct returns every review for a product.
func (s *Service) ListForProduct(ctx context.Context, productID string) ([]Review, error) {
	if !validation.IsValidID(productID) {
		return nil, apperr.Validation("Invalid product ID")
	}
	list, err := s.store.ListByProduct(ctx, productID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return list, nil
}

// Add creates a review; one per user and product.
func (s *Service) Add(ctx context.Context, p identity.Principal, req validation.AddReviewRequest) (*Review, error) {
	if !p.Authenticated() {
		return nil, apperr.NotAuthenticated()
	}

	existing, err := s.store.GetByProductAndUser(ctx, req.ProductID, p.ID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if existing != nil {
		return nil, apperr.Validation("You have already reviewed this product")
	}

	review := &Review{
		ReviewID:  s.newID(),
		ProductID: req.ProductID,
		UserID:    p.ID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	}
	if err := s.store.Put(ctx, review); err != nil {
		return nil, apperr.Internal(err)
	}
	if err := s.refreshAverage(ctx, req.ProductID); err != nil {
		return nil, err
	}
	return review, nil
}

// Update edits the caller's own review.
func (s *Service) Update(ctx context.Context, p identity.Principal, reviewID string, req validation.UpdateReviewRequest) (*Review, error) {
	if !p.Authenticated() {
		return nil, apperr.NotAuthenticated()
	}
	if !validation.IsValidID(reviewID) {
		return nil, apperr.Validation("Invalid review ID")
	}

	review, err := s.store.Get(ctx, reviewID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if review == nil {
		return nil, apperr.NotFound("Review not found")
	}
	if !p.Owns(review.UserID) {
		return nil, apperr.Unauthorized("You are not authorized to update this review")
	}

	if req.Rating != nil {
		review.Rating = *req.Rating
	}
	if req.Comment != nil {
		review.Comment = *req.Comment
	}
	if err := s.store.Put(ctx, review); err != nil {
		return nil, apperr.Internal(err)
	}
	if err := s.refreshAverage(ctx, review.ProductID); err != nil {
		return nil, err
	}
	return review, nil
}

// Delete removes the caller's own review.
func (s *Service) Delete(ctx context.Context, p identity.Principal, reviewID string) (bool, error) {
	if !p.Authenticated() {
		return false, apperr.NotAuthenticated()
	}
	if !validation.IsValidID(reviewID) {
		return false, apperr.Validation("Invalid review ID")
	}

	review, err := s.store.Get(ctx, reviewID)
	if err != nil {
		return false, apperr.Internal(err)
	}
	if review == nil {
		return false, apperr.NotFound("Review not found")
	}
	if !p.Owns(review.UserID) {
		return false, apperr.Unauthorized("You are not authorized to delete this review")
	}

	if err := s.store.Delete(ctx, reviewID); err != nil {
		return false, apperr.Internal(err)
	}
	if err := s.refreshAverage(ctx, review.ProductID); err != nil {
		return false, err
	}
	return true, nil
}

// refreshAverage recomputes the mean rating over surviving reviews; zero
// when none remain.
func (s *Service) refreshAverage(ctx context.Context, productID string) error {
	list, err := s.store.ListByProduct(ctx, productID)
	if err != nil {
		return apperr.Internal(err)
	}
	var avg float64
	if len(list) > 0 {
		var sum int
		for _, r := range list {
			sum += r.Rating
		}
		avg = float64(sum) / float64(len(list))
	}
	if err := s.products.SetAverageRating(ctx, productID, avg); err != nil {
		return apperr.Internal(err)
	}
	return nil
}
