package service

import (
	"context"
	"errors"
	"testing"

	"github.com/JhonMohamed/Ravvisant/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestValidateAddToCart(t *testing.T) {
	testCases := []struct {
		name            string
		stock           int
		cartQuantity    int
		quantityToAdd   int
		expectedValid   bool
		expectedMessage string
	}{
		{
			name:            "enough stock for an empty cart",
			stock:           10,
			cartQuantity:    0,
			quantityToAdd:   3,
			expectedValid:   true,
			expectedMessage: "Stock válido",
		},
		{
			name:            "existing cart quantity counts against stock",
			stock:           5,
			cartQuantity:    3,
			quantityToAdd:   3,
			expectedValid:   false,
			expectedMessage: "Stock insuficiente. Disponible: 5, Solicitado: 6",
		},
		{
			name:            "exactly the remaining stock",
			stock:           5,
			cartQuantity:    3,
			quantityToAdd:   2,
			expectedValid:   true,
			expectedMessage: "Stock válido",
		},
		{
			name:            "out of stock product",
			stock:           0,
			cartQuantity:    0,
			quantityToAdd:   1,
			expectedValid:   false,
			expectedMessage: "Producto sin stock disponible",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			productRepo := newFakeProductRepo(domain.Product{ID: "p1", Name: "Aretes", Stock: tc.stock})
			cartRepo := newFakeCartRepo()
			if tc.cartQuantity > 0 {
				_ = cartRepo.UpsertCartItem(context.Background(), domain.CartItem{
					UserID:    "u1",
					ProductID: "p1",
					Quantity:  tc.cartQuantity,
				})
			}

			validator := CreateStockValidator(productRepo, cartRepo)
			result := validator.ValidateAddToCart(context.Background(), "u1", "p1", tc.quantityToAdd)

			assert.Equal(t, tc.expectedValid, result.IsValid)
			assert.Equal(t, tc.expectedMessage, result.Message)
			assert.Equal(t, tc.stock, result.AvailableStock)
			assert.Equal(t, tc.quantityToAdd, result.RequestedQuantity)
			assert.Equal(t, tc.cartQuantity, result.CurrentCartQuantity)
		})
	}
}

func TestValidateAddToCartFailsClosedOnLookupError(t *testing.T) {
	productRepo := newFakeProductRepo()
	productRepo.err = errors.New("backend unavailable")
	cartRepo := newFakeCartRepo()

	validator := CreateStockValidator(productRepo, cartRepo)
	result := validator.ValidateAddToCart(context.Background(), "u1", "p1", 2)

	assert.False(t, result.IsValid)
	assert.Equal(t, 0, result.AvailableStock)
	assert.Equal(t, "Error al verificar stock", result.Message)
}

func TestValidateUpdateQuantity(t *testing.T) {
	testCases := []struct {
		name            string
		stock           int
		newQuantity     int
		expectedValid   bool
		expectedMessage string
	}{
		{
			name:            "within stock",
			stock:           5,
			newQuantity:     5,
			expectedValid:   true,
			expectedMessage: "Stock válido",
		},
		{
			name:            "over stock",
			stock:           5,
			newQuantity:     6,
			expectedValid:   false,
			expectedMessage: "Stock insuficiente. Disponible: 5, Solicitado: 6",
		},
		{
			name:            "zero always validates as removal",
			stock:           5,
			newQuantity:     0,
			expectedValid:   true,
			expectedMessage: "Producto removido del carrito",
		},
		{
			name:            "negative also validates as removal",
			stock:           0,
			newQuantity:     -1,
			expectedValid:   true,
			expectedMessage: "Producto removido del carrito",
		},
		{
			name:            "out of stock product",
			stock:           0,
			newQuantity:     1,
			expectedValid:   false,
			expectedMessage: "Producto sin stock disponible",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			productRepo := newFakeProductRepo(domain.Product{ID: "p1", Stock: tc.stock})
			validator := CreateStockValidator(productRepo, newFakeCartRepo())

			result := validator.ValidateUpdateQuantity(context.Background(), "p1", tc.newQuantity)

			assert.Equal(t, tc.expectedValid, result.IsValid)
			assert.Equal(t, tc.expectedMessage, result.Message)
		})
	}
}

func TestGetStockInfo(t *testing.T) {
	productRepo := newFakeProductRepo(domain.Product{ID: "p1", Name: "Collar", Stock: 4})
	validator := CreateStockValidator(productRepo, newFakeCartRepo())

	info := validator.GetStockInfo(context.Background(), "p1")
	assert.Equal(t, "Collar", info.ProductName)
	assert.Equal(t, 4, info.AvailableStock)
	assert.True(t, info.HasStock)

	missing := validator.GetStockInfo(context.Background(), "nope")
	assert.Equal(t, "Error", missing.ProductName)
	assert.False(t, missing.HasStock)
}

func TestHasStock(t *testing.T) {
	productRepo := newFakeProductRepo(domain.Product{ID: "p1", Stock: 2})
	validator := CreateStockValidator(productRepo, newFakeCartRepo())

	assert.True(t, validator.HasStock(context.Background(), "p1", 2))
	assert.False(t, validator.HasStock(context.Background(), "p1", 3))
	assert.False(t, validator.HasStock(context.Background(), "unknown", 1))
}
