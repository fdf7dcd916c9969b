package service

import (
	"context"
	"testing"

	"github.com/JhonMohamed/Ravvisant/internal/domain"
	"github.com/JhonMohamed/Ravvisant/internal/dto"
	"github.com/JhonMohamed/Ravvisant/internal/tracker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddToCartRejectedWritesNothing(t *testing.T) {
	cartRepo := newFakeCartRepo()
	validator := &fakeStockValidator{
		addResult: dto.StockValidationResult{
			IsValid: false,
			Message: "Stock insuficiente. Disponible: 1, Solicitado: 2",
		},
	}
	cartTracker := tracker.CreateCountTracker()

	svc := CreateCartService(cartRepo, validator, cartTracker)
	result, err := svc.AddToCart(context.Background(), "u1", dto.CartItemRequest{ProductID: "p1", Quantity: 2})

	require.NoError(t, err)
	assert.False(t, result.IsValid)
	assert.Empty(t, cartRepo.items)
	assert.Equal(t, 0, cartTracker.Count("u1"))
}

func TestAddToCartAccumulatesQuantity(t *testing.T) {
	cartRepo := newFakeCartRepo()
	require.NoError(t, cartRepo.UpsertCartItem(context.Background(), domain.CartItem{
		UserID: "u1", ProductID: "p1", Quantity: 2,
	}))

	validator := &fakeStockValidator{
		addResult: dto.StockValidationResult{
			IsValid:             true,
			AvailableStock:      10,
			CurrentCartQuantity: 2,
			Message:             "Stock válido",
		},
	}
	cartTracker := tracker.CreateCountTracker()

	svc := CreateCartService(cartRepo, validator, cartTracker)
	result, err := svc.AddToCart(context.Background(), "u1", dto.CartItemRequest{
		ProductID: "p1",
		Name:      "Aretes",
		Price:     49.9,
		Quantity:  3,
	})

	require.NoError(t, err)
	assert.True(t, result.IsValid)

	item, err := cartRepo.GetCartItem(context.Background(), "u1", "p1")
	require.NoError(t, err)
	assert.Equal(t, 5, item.Quantity)
	assert.Equal(t, "Aretes", item.Name)

	// badge count resynced from storage
	assert.Equal(t, 5, cartTracker.Count("u1"))
}

func TestUpdateQuantityZeroRemovesLine(t *testing.T) {
	cartRepo := newFakeCartRepo()
	require.NoError(t, cartRepo.UpsertCartItem(context.Background(), domain.CartItem{
		UserID: "u1", ProductID: "p1", Quantity: 4,
	}))

	validator := &fakeStockValidator{
		updateResult: dto.StockValidationResult{IsValid: true, Message: "Producto removido del carrito"},
	}
	cartTracker := tracker.CreateCountTracker()

	svc := CreateCartService(cartRepo, validator, cartTracker)
	result, err := svc.UpdateQuantity(context.Background(), "u1", "p1", 0)

	require.NoError(t, err)
	assert.True(t, result.IsValid)

	_, err = cartRepo.GetCartItem(context.Background(), "u1", "p1")
	assert.Error(t, err)
	assert.Equal(t, 0, cartTracker.Count("u1"))
}

func TestUpdateQuantitySetsAbsoluteValue(t *testing.T) {
	cartRepo := newFakeCartRepo()
	require.NoError(t, cartRepo.UpsertCartItem(context.Background(), domain.CartItem{
		UserID: "u1", ProductID: "p1", Quantity: 4,
	}))

	validator := &fakeStockValidator{
		updateResult: dto.StockValidationResult{IsValid: true, Message: "Stock válido"},
	}

	svc := CreateCartService(cartRepo, validator, tracker.CreateCountTracker())
	_, err := svc.UpdateQuantity(context.Background(), "u1", "p1", 2)
	require.NoError(t, err)

	item, err := cartRepo.GetCartItem(context.Background(), "u1", "p1")
	require.NoError(t, err)
	assert.Equal(t, 2, item.Quantity)
}

func TestUpdateQuantityRejectedLeavesLineUntouched(t *testing.T) {
	cartRepo := newFakeCartRepo()
	require.NoError(t, cartRepo.UpsertCartItem(context.Background(), domain.CartItem{
		UserID: "u1", ProductID: "p1", Quantity: 4,
	}))

	validator := &fakeStockValidator{
		updateResult: dto.StockValidationResult{IsValid: false, Message: "Stock insuficiente. Disponible: 4, Solicitado: 9"},
	}

	svc := CreateCartService(cartRepo, validator, tracker.CreateCountTracker())
	result, err := svc.UpdateQuantity(context.Background(), "u1", "p1", 9)

	require.NoError(t, err)
	assert.False(t, result.IsValid)

	item, err := cartRepo.GetCartItem(context.Background(), "u1", "p1")
	require.NoError(t, err)
	assert.Equal(t, 4, item.Quantity)
}

func TestClearCartOnlyTouchesOneUser(t *testing.T) {
	cartRepo := newFakeCartRepo()
	require.NoError(t, cartRepo.UpsertCartItem(context.Background(), domain.CartItem{UserID: "u1", ProductID: "p1", Quantity: 1}))
	require.NoError(t, cartRepo.UpsertCartItem(context.Background(), domain.CartItem{UserID: "u2", ProductID: "p1", Quantity: 7}))

	svc := CreateCartService(cartRepo, &fakeStockValidator{}, tracker.CreateCountTracker())
	require.NoError(t, svc.ClearCart(context.Background(), "u1"))

	count, err := svc.CartCount(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	count, err = svc.CartCount(context.Background(), "u2")
	require.NoError(t, err)
	assert.Equal(t, 7, count)
}

func TestCartCountSumsUnitsAcrossLines(t *testing.T) {
	cartRepo := newFakeCartRepo()
	require.NoError(t, cartRepo.UpsertCartItem(context.Background(), domain.CartItem{UserID: "u1", ProductID: "p1", Quantity: 2}))
	require.NoError(t, cartRepo.UpsertCartItem(context.Background(), domain.CartItem{UserID: "u1", ProductID: "p2", Quantity: 3}))

	svc := CreateCartService(cartRepo, &fakeStockValidator{}, tracker.CreateCountTracker())
	count, err := svc.CartCount(context.Background(), "u1")

	require.NoError(t, err)
	assert.Equal(t, 5, count)
}

func TestResyncCountResetsOnError(t *testing.T) {
	cartRepo := newFakeCartRepo()
	cartTracker := tracker.CreateCountTracker()
	cartTracker.Publish("u1", 9)

	cartRepo.err = assert.AnError
	svc := CreateCartService(cartRepo, &fakeStockValidator{}, cartTracker)
	svc.ResyncCount(context.Background(), "u1")

	assert.Equal(t, 0, cartTracker.Count("u1"))
}
