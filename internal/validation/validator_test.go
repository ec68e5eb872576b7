package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marketloop/commerce-backend/internal/apperr"
)

func validShipping() ShippingInput {
	return ShippingInput{
		Address: "123 Harbour Street",
		City:    "Rotterdam",
		Zip:     "3011",
		Country: "NL",
	}
}

func TestPlaceOrderRequest_Schema(t *testing.T) {
	v := New()

	ok := PlaceOrderRequest{PaymentMethod: "card", Shipping: validShipping()}
	require.NoError(t, Struct(v, ok))

	cod := PlaceOrderRequest{PaymentMethod: "cod", Shipping: validShipping()}
	require.NoError(t, Struct(v, cod))

	badMethod := PlaceOrderRequest{PaymentMethod: "bitcoin", Shipping: validShipping()}
	err := Struct(v, badMethod)
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	shortAddress := PlaceOrderRequest{PaymentMethod: "card", Shipping: ShippingInput{
		Address: "abc", City: "Rotterdam", Zip: "3011", Country: "NL",
	}}
	err = Struct(v, shortAddress)
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	badItemID := PlaceOrderRequest{
		ItemProductIDs: []string{"abc"},
		PaymentMethod:  "card",
		Shipping:       validShipping(),
	}
	err = Struct(v, badItemID)
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestUpdateOrderStatusRequest_Schema(t *testing.T) {
	v := New()

	for _, s := range []string{"placed", "processing", "shipped", "delivered", "cancelled"} {
		assert.NoError(t, Struct(v, UpdateOrderStatusRequest{Status: s}), s)
	}
	assert.Error(t, Struct(v, UpdateOrderStatusRequest{Status: "returned"}))
	assert.Error(t, Struct(v, UpdateOrderStatusRequest{}))
}

func TestUpdateCartItemRequest_Schema(t *testing.T) {
	v := New()

	assert.NoError(t, Struct(v, UpdateCartItemRequest{Quantity: 3}))
	assert.Error(t, Struct(v, UpdateCartItemRequest{Quantity: 0}))
	assert.Error(t, Struct(v, UpdateCartItemRequest{Quantity: -2}))
}

func TestSignupRequest_Schema(t *testing.T) {
	v := New()

	ok := SignupRequest{Name: "Priya", Email: "priya@example.com", Password: "secret1"}
	assert.NoError(t, Struct(v, ok))

	assert.Error(t, Struct(v, SignupRequest{Name: "Priya", Email: "not-an-email", Password: "secret1"}))
	assert.Error(t, Struct(v, SignupRequest{Name: "Priya", Email: "priya@example.com", Password: "short"}))
}

func TestIsValidID(t *testing.T) {
	assert.True(t, IsValidID("d9b2d63d-a233-4123-847a-7d9a0c55a0bc"))
	assert.False(t, IsValidID("abc"))
	assert.False(t, IsValidID(""))
	assert.False(t, IsValidID("not-a-uuid-at-all"))
}
