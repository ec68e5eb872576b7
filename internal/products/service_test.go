package products

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marketloop/commerce-backend/internal/apperr"
	"github.com/marketloop/commerce-backend/internal/identity"
	"github.com/marketloop/commerce-backend/internal/validation"
)

const (
	productID  = "aaaaaaaa-aaaa-4aaa-8aaa-aaaaaaaaaaaa"
	categoryID = "bbbbbbbb-bbbb-4bbb-8bbb-bbbbbbbbbbbb"
)

type fakeCatalog struct {
	byID map[string]*Product
}

func newFakeCatalog() *fakeCatalog {
	return &fakeCatalog{byID: map[string]*Product{}}
}

func (f *fakeCatalog) Get(ctx context.Context, productID string) (*Product, error) {
	return f.byID[productID], nil
}

func (f *fakeCatalog) GetBySlug(ctx context.Context, slug string) (*Product, error) {
	for _, p := range f.byID {
		if p.Slug == slug {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakeCatalog) GetByName(ctx context.Context, name string) (*Product, error) {
	for _, p := range f.byID {
		if p.Name == name {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakeCatalog) Put(ctx context.Context, p *Product) error {
	cp := *p
	f.byID[p.ProductID] = &cp
	return nil
}

func (f *fakeCatalog) ListActive(ctx context.Context) ([]Product, error) {
	var list []Product
	for _, p := range f.byID {
		if p.IsActive {
			list = append(list, *p)
		}
	}
	return list, nil
}

func admin() identity.Principal {
	return identity.Principal{Role: identity.Admin, ID: "a1"}
}

func plainUser() identity.Principal {
	return identity.Principal{Role: identity.User, ID: "u1"}
}

func createReq(name string) validation.CreateProductRequest {
	return validation.CreateProductRequest{
		Name:        name,
		Description: "A perfectly ordinary product",
		Price:       19.99,
		Stock:       5,
		CategoryID:  categoryID,
	}
}

func TestCreate_AdminOnlyAndUniqueName(t *testing.T) {
	store := newFakeCatalog()
	svc := NewService(store)
	ctx := context.Background()

	_, err := svc.Create(ctx, plainUser(), createReq("Wireless Mouse"))
	require.Error(t, err)
	assert.Equal(t, apperr.KindUnauthorized, apperr.KindOf(err))

	p, err := svc.Create(ctx, admin(), createReq("Wireless Mouse"))
	require.NoError(t, err)
	assert.Equal(t, "wireless-mouse", p.Slug)
	assert.True(t, p.IsActive)

	_, err = svc.Create(ctx, admin(), createReq("Wireless Mouse"))
	require.Error(t, err)
	assert.Equal(t, "Product with this name already exists", apperr.MessageOf(err))
}

func TestGetBySlug_ActiveOnly(t *testing.T) {
	store := newFakeCatalog()
	svc := NewService(store)
	ctx := context.Background()

	p, err := svc.Create(ctx, admin(), createReq("Wireless Mouse"))
	require.NoError(t, err)

	got, err := svc.GetBySlug(ctx, "wireless-mouse")
	require.NoError(t, err)
	assert.Equal(t, p.ProductID, got.ProductID)

	store.byID[p.ProductID].IsActive = false
	_, err = svc.GetBySlug(ctx, "wireless-mouse")
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestUpdate_PatchSemanticsAndReslug(t *testing.T) {
	store := newFakeCatalog()
	svc := NewService(store)
	ctx := context.Background()

	created, err := svc.Create(ctx, admin(), createReq("Wireless Mouse"))
	require.NoError(t, err)

	newName := "Ergo Mouse Pro"
	newPrice := 34.50
	updated, err := svc.Update(ctx, admin(), created.ProductID, validation.UpdateProductRequest{
		Name:  &newName,
		Price: &newPrice,
	})
	require.NoError(t, err)
	assert.Equal(t, "Ergo Mouse Pro", updated.Name)
	assert.Equal(t, "ergo-mouse-pro", updated.Slug, "rename must re-derive the slug")
	assert.Equal(t, 34.50, updated.Price)
	assert.Equal(t, created.Description, updated.Description, "unset fields stay unchanged")

	_, err = svc.Update(ctx, admin(), "abc", validation.UpdateProductRequest{})
	require.Error(t, err)
	assert.Equal(t, "Invalid product ID", apperr.MessageOf(err))

	_, err = svc.Update(ctx, admin(), productID, validation.UpdateProductRequest{})
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestDelete_SoftRemove(t *testing.T) {
	store := newFakeCatalog()
	svc := NewService(store)
	ctx := context.Background()

	created, err := svc.Create(ctx, admin(), createReq("Wireless Mouse"))
	require.NoError(t, err)

	ok, err := svc.Delete(ctx, admin(), created.ProductID)
	require.NoError(t, err)
	assert.True(t, ok)

	// The document survives; only visibility changes.
	kept := store.byID[created.ProductID]
	require.NotNil(t, kept)
	assert.False(t, kept.IsActive)
}

func TestList_FilterSortAndPage(t *testing.T) {
	store := newFakeCatalog()
	svc := NewService(store)
	ctx := context.Background()

	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	seed := []Product{
		{ProductID: "p1", Name: "Wireless Mouse", Price: 25, CategoryID: "c1", IsActive: true, CreatedAt: base},
		{ProductID: "p2", Name: "Wired Mouse", Price: 10, CategoryID: "c1", IsActive: true, CreatedAt: base.Add(time.Hour)},
		{ProductID: "p3", Name: "Keyboard", Price: 80, CategoryID: "c2", IsActive: true, CreatedAt: base.Add(2 * time.Hour)},
		{ProductID: "p4", Name: "Retired Mouse", Price: 5, CategoryID: "c1", IsActive: false, CreatedAt: base.Add(3 * time.Hour)},
	}
	for i := range seed {
		p := seed[i]
		store.byID[p.ProductID] = &p
	}

	list, err := svc.List(ctx, Filter{Search: "mouse"})
	require.NoError(t, err)
	require.Len(t, list, 2, "search is case-insensitive and skips inactive products")
	assert.Equal(t, "p2", list[0].ProductID, "newest first")

	list, err = svc.List(ctx, Filter{CategoryID: "c2"})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Keyboard", list[0].Name)

	list, err = svc.List(ctx, Filter{MinPrice: 20, MaxPrice: 50})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "p1", list[0].ProductID)

	list, err = svc.List(ctx, Filter{Offset: 1, Limit: 1})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "p2", list[0].ProductID)

	list, err = svc.List(ctx, Filter{Offset: 99})
	require.NoError(t, err)
	assert.Empty(t, list)
}
