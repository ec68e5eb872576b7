package carts

import (
	"context"

	"github.com/marketloop/commerce-backend/internal/apperr"
	"github.com/marketloop/commerce-backend/internal/identity"
	"github.com/marketloop/commerce-backend/internal/products"
	"github.com/marketloop/commerce-backend/internal/validation"
)

// CartStore is the persistence surface the service needs.
// Consumers define this interface, not the DynamoDB implementation.
type CartStore interface {
	Get(ctx context.Context, userID string) (*Cart, error)
	Put(ctx context.Context, c *Cart) error
}

// ProductFinder resolves live product references at mutation time.
type ProductFinder interface {
	Get(ctx context.Context, productID string) (*products.Product, error)
}

// Service owns the cart mutation contract: merge-on-add, overwrite-on-update,
// identity-match removal, and clear-keeps-document.
type Service struct {
	store    CartStore
	products ProductFinder
}

// NewService creates a cart service.
func NewService(store CartStore, products ProductFinder) *Service {
	return &Service{store: store, products: products}
}

// GetOrCreate looks up the caller's cart, lazily creating an empty one on
// first read.
func (s *Service) GetOrCreate(ctx context.Context, p identity.Principal) (*Cart, error) {
	if !p.Authenticated() {
		return nil, apperr.NotAuthenticated()
	}
	cart, err := s.store.Get(ctx, p.ID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if cart == nil {
		cart = &Cart{UserID: p.ID, Items: []CartItem{}}
		if err := s.store.Put(ctx, cart); err != nil {
			return nil, apperr.Internal(err)
		}
	}
	return cart, nil
}

// AddItem appends a line item with quantity 1, or increments the existing
// line by 1 when the product is already in the cart. Add is cumulative;
// a second add must never duplicate the line item.
func (s *Service) AddItem(ctx context.Context, p identity.Principal, productID string) (*Cart, error) {
	if !p.Authenticated() {
		return nil, apperr.NotAuthenticated()
	}
	if !validation.IsValidID(productID) {
		return nil, apperr.Validation("Invalid product ID")
	}

	product, err := s.products.Get(ctx, productID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if product == nil || !product.IsActive {
		return nil, apperr.NotFound("Product not found")
	}

	cart, err := s.store.Get(ctx, p.ID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if cart == nil {
		cart = &Cart{UserID: p.ID, Items: []CartItem{}}
	}

	merged := false
	for i := range cart.Items {
		if cart.Items[i].ProductID == productID {
			cart.Items[i].Quantity++
			merged = true
			break
		}
	}
	if !merged {
		cart.Items = append(cart.Items, CartItem{ProductID: productID, Quantity: 1})
	}

	if err := s.store.Put(ctx, cart); err != nil {
		return nil, apperr.Internal(err)
	}
	return cart, nil
}

// UpdateItem overwrites the quantity of an existing line item. Unlike
// AddItem this is an idempotent correction, not an increment.
func (s *Service) UpdateItem(ctx context.Context, p identity.Principal, productID string, quantity int) (*Cart, error) {
	if !p.Authenticated() {
		return nil, apperr.NotAuthenticated()
	}
	if !validation.IsValidID(productID) {
		return nil, apperr.Validation("Invalid product ID")
	}
	if quantity < 1 {
		return nil, apperr.Validation("Quantity must be a positive number")
	}

	cart, err := s.store.Get(ctx, p.ID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if cart == nil {
		return nil, apperr.NotFound("Cart not found")
	}

	found := false
	for i := range cart.Items {
		if cart.Items[i].ProductID == productID {
			cart.Items[i].Quantity = quantity
			found = true
			break
		}
	}
	if !found {
		return nil, apperr.NotFound("Product not found in cart")
	}

	if err := s.store.Put(ctx, cart); err != nil {
		return nil, apperr.Internal(err)
	}
	return cart, nil
}

// RemoveItem deletes the line item matching productID.
func (s *Service) RemoveItem(ctx context.Context, p identity.Principal, productID string) (*Cart, error) {
	if !p.Authenticated() {
		return nil, apperr.NotAuthenticated()
	}
	if !validation.IsValidID(productID) {
		return nil, apperr.Validation("Invalid product ID")
	}

	cart, err := s.store.Get(ctx, p.ID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if cart == nil {
		return nil, apperr.NotFound("Cart not found")
	}

	idx := -1
	for i := range cart.Items {
		if cart.Items[i].ProductID == productID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, apperr.NotFound("Product not found in cart")
	}
	cart.Items = append(cart.Items[:idx], cart.Items[idx+1:]...)

	if err := s.store.Put(ctx, cart); err != nil {
		return nil, apperr.Internal(err)
	}
	return cart, nil
}

// Clear empties the item list but keeps the cart document. Clearing a
// nonexistent cart is a no-op reported as false, distinct from an error.
func (s *Service) Clear(ctx context.Context, p identity.Principal) (bool, error) {
	if !p.Authenticated() {
		return false, apperr.NotAuthenticated()
	}

	cart, err := s.store.Get(ctx, p.ID)
	if err != nil {
		return false, apperr.Internal(err)
	}
	if cart == nil {
		return false, nil
	}

	cart.Items = []CartItem{}
	if err := s.store.Put(ctx, cart); err != nil {
		return false, apperr.Internal(err)
	}
	return true, nil
}
