package service

import (
	"context"
	"time"

	"github.com/JhonMohamed/Ravvisant/internal/domain"
	"github.com/JhonMohamed/Ravvisant/internal/dto"
	"github.com/JhonMohamed/Ravvisant/internal/repository"
	"github.com/JhonMohamed/Ravvisant/internal/tracker"
	"github.com/rs/zerolog/log"
)

type CartServiceImpl struct {
	cartRepository repository.CartRepository
	stockValidator StockValidator
	cartTracker    *tracker.CountTracker
}

func CreateCartService(cartRepository repository.CartRepository, stockValidator StockValidator, cartTracker *tracker.CountTracker) CartService {
	return &CartServiceImpl{
		cartRepository: cartRepository,
		stockValidator: stockValidator,
		cartTracker:    cartTracker,
	}
}

func (s *CartServiceImpl) GetCartItems(ctx context.Context, userID string) (items []dto.CartItemResponse, err error) {
	cartItems, err := s.cartRepository.GetCartItems(ctx, userID)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetCartItems").Msg("")
		return
	}

	items = make([]dto.CartItemResponse, 0, len(cartItems))
	for _, item := range cartItems {
		items = append(items, dto.CartItemResponse{
			ProductID: item.ProductID,
			Name:      item.Name,
			ImageURL:  item.ImageURL,
			Price:     item.Price,
			Quantity:  item.Quantity,
		})
	}

	return
}

// AddToCart accumulates quantity onto an existing line for the same product.
// A rejecting validation result is not an error: nothing is written and the
// result is handed back for the caller to display.
func (s *CartServiceImpl) AddToCart(ctx context.Context, userID string, req dto.CartItemRequest) (result dto.StockValidationResult, err error) {
	result = s.stockValidator.ValidateAddToCart(ctx, userID, req.ProductID, req.Quantity)
	if !result.IsValid {
		log.Ctx(ctx).Warn().Str("component", "AddToCart").Str("product_id", req.ProductID).Msg(result.Message)
		return
	}

	item := domain.CartItem{
		UserID:    userID,
		ProductID: req.ProductID,
		Name:      req.Name,
		ImageURL:  req.ImageURL,
		Price:     req.Price,
		Quantity:  result.CurrentCartQuantity + req.Quantity,
		UpdatedAt: time.Now().UnixMilli(),
	}

	if err = s.cartRepository.UpsertCartItem(ctx, item); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AddToCart").Msg("")
		return
	}

	s.ResyncCount(ctx, userID)

	return
}

// UpdateQuantity sets a line to an absolute quantity. Zero or less removes
// the line, mirroring the validator's removal rule.
func (s *CartServiceImpl) UpdateQuantity(ctx context.Context, userID string, productID string, quantity int) (result dto.StockValidationResult, err error) {
	result = s.stockValidator.ValidateUpdateQuantity(ctx, productID, quantity)
	if !result.IsValid {
		log.Ctx(ctx).Warn().Str("component", "UpdateQuantity").Str("product_id", productID).Msg(result.Message)
		return
	}

	if quantity <= 0 {
		err = s.cartRepository.DeleteCartItem(ctx, userID, productID)
	} else {
		err = s.cartRepository.UpdateQuantity(ctx, userID, productID, quantity)
	}
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "UpdateQuantity").Msg("")
		return
	}

	s.ResyncCount(ctx, userID)

	return
}

func (s *CartServiceImpl) RemoveFromCart(ctx context.Context, userID string, productID string) (err error) {
	if err = s.cartRepository.DeleteCartItem(ctx, userID, productID); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "RemoveFromCart").Msg("")
		return
	}

	s.ResyncCount(ctx, userID)

	return
}

func (s *CartServiceImpl) ClearCart(ctx context.Context, userID string) (err error) {
	if err = s.cartRepository.ClearCart(ctx, userID); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "ClearCart").Msg("")
		return
	}

	s.ResyncCount(ctx, userID)

	return
}

// CartCount is the total number of units across all lines, not the number of
// lines.
func (s *CartServiceImpl) CartCount(ctx context.Context, userID string) (count int, err error) {
	count, err = s.cartRepository.SumQuantities(ctx, userID)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "CartCount").Msg("")
	}

	return
}

// ResyncCount recomputes the badge count from storage and publishes it. On
// failure the count resets to zero rather than going stale.
func (s *CartServiceImpl) ResyncCount(ctx context.Context, userID string) {
	total, err := s.cartRepository.SumQuantities(ctx, userID)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "ResyncCount").Msg("")
		s.cartTracker.Reset(userID)
		return
	}

	s.cartTracker.Publish(userID, total)
}
