package categories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marketloop/commerce-backend/internal/apperr"
	"github.com/marketloop/commerce-backend/internal/identity"
)

type fakeCatalog struct {
	byID map[string]*Category
}

func newFakeCatalog() *fakeCatalog {
	return &fakeCatalog{byID: map[string]*Category{}}
}

func (f *fakeCatalog) Get(ctx context.Context, categoryID string) (*Category, error) {
	return f.byID[categoryID], nil
}

func (f *fakeCatalog) GetByName(ctx context.Context, name string) (*Category, error) {
	for _, c := range f.byID {
		if c.Name == name {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeCatalog) ListActive(ctx context.Context) ([]Category, error) {
	var list []Category
	for _, c := range f.byID {
		if c.IsActive {
			list = append(list, *c)
		}
	}
	return list, nil
}

func (f *fakeCatalog) Put(ctx context.Context, c *Category) error {
	cp := *c
	f.byID[c.CategoryID] = &cp
	return nil
}

func admin() identity.Principal {
	return identity.Principal{Role: identity.Admin, ID: "a1"}
}

func TestCreate(t *testing.T) {
	store := newFakeCatalog()
	svc := NewService(store)
	ctx := context.Background()

	_, err := svc.Create(ctx, identity.Principal{Role: identity.User, ID: "u1"}, "Office Gear")
	require.Error(t, err)
	assert.Equal(t, "Only admins can create categories", apperr.MessageOf(err))

	c, err := svc.Create(ctx, admin(), "  Office Gear  ")
	require.NoError(t, err)
	assert.Equal(t, "Office Gear", c.Name, "names are trimmed")
	assert.Equal(t, "office-gear", c.Slug)
	assert.True(t, c.IsActive)

	_, err = svc.Create(ctx, admin(), "   ")
	require.Error(t, err)
	assert.Equal(t, "Category name cannot be empty", apperr.MessageOf(err))

	_, err = svc.Create(ctx, admin(), "Office Gear")
	require.Error(t, err)
	assert.Equal(t, "Category already exists", apperr.MessageOf(err))
}

func TestUpdate_Reslug(t *testing.T) {
	store := newFakeCatalog()
	svc := NewService(store)
	ctx := context.Background()

	created, err := svc.Create(ctx, admin(), "Office Gear")
	require.NoError(t, err)

	updated, err := svc.Update(ctx, admin(), created.CategoryID, "Home Office")
	require.NoError(t, err)
	assert.Equal(t, "Home Office", updated.Name)
	assert.Equal(t, "home-office", updated.Slug)

	_, err = svc.Update(ctx, admin(), "abc", "X")
	require.Error(t, err)
	assert.Equal(t, "Invalid category ID", apperr.MessageOf(err))
}

func TestDelete_SoftRemoveAndList(t *testing.T) {
	store := newFakeCatalog()
	svc := NewService(store)
	ctx := context.Background()

	created, err := svc.Create(ctx, admin(), "Office Gear")
	require.NoError(t, err)

	ok, err := svc.Delete(ctx, admin(), created.CategoryID)
	require.NoError(t, err)
	assert.True(t, ok)

	kept := store.byID[created.CategoryID]
	require.NotNil(t, kept)
	assert.False(t, kept.IsActive)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list, "soft-removed categories drop out of listings")
}
