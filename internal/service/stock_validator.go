package service

import (
	"context"
	"fmt"

	"github.com/JhonMohamed/Ravvisant/internal/dto"
	"github.com/JhonMohamed/Ravvisant/internal/repository"
	"github.com/rs/zerolog/log"
)

const (
	msgStockValid       = "Stock válido"
	msgOutOfStock       = "Producto sin stock disponible"
	msgStockCheckFailed = "Error al verificar stock"
	msgItemRemoved      = "Producto removido del carrito"
)

type StockValidatorImpl struct {
	productRepository repository.ProductRepository
	cartRepository    repository.CartRepository
}

func CreateStockValidator(productRepository repository.ProductRepository, cartRepository repository.CartRepository) StockValidator {
	return &StockValidatorImpl{
		productRepository: productRepository,
		cartRepository:    cartRepository,
	}
}

// ValidateAddToCart checks the ADD semantics: the requested quantity is added
// on top of whatever the cart already holds, and that total is what gets
// compared against stock.
func (v *StockValidatorImpl) ValidateAddToCart(ctx context.Context, userID string, productID string, quantityToAdd int) dto.StockValidationResult {
	currentCartQuantity := 0
	if item, err := v.cartRepository.GetCartItem(ctx, userID, productID); err == nil {
		currentCartQuantity = item.Quantity
	}

	product, err := v.productRepository.GetProductByID(ctx, productID)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "ValidateAddToCart").Msg("")
		return dto.StockValidationResult{
			IsValid:             false,
			AvailableStock:      0,
			RequestedQuantity:   quantityToAdd,
			CurrentCartQuantity: currentCartQuantity,
			Message:             msgStockCheckFailed,
		}
	}

	totalRequested := currentCartQuantity + quantityToAdd

	result := dto.StockValidationResult{
		AvailableStock:      product.Stock,
		RequestedQuantity:   quantityToAdd,
		CurrentCartQuantity: currentCartQuantity,
	}

	switch {
	case product.Stock <= 0:
		result.Message = msgOutOfStock
	case totalRequested > product.Stock:
		result.Message = fmt.Sprintf("Stock insuficiente. Disponible: %d, Solicitado: %d", product.Stock, totalRequested)
	default:
		result.IsValid = true
		result.Message = msgStockValid
	}

	return result
}

// ValidateUpdateQuantity checks the SET semantics: the new quantity replaces
// the current one, so it is compared against stock on its own. A quantity of
// zero or less always validates and means the line should be removed.
func (v *StockValidatorImpl) ValidateUpdateQuantity(ctx context.Context, productID string, newQuantity int) dto.StockValidationResult {
	result := dto.StockValidationResult{
		RequestedQuantity: newQuantity,
	}

	if newQuantity <= 0 {
		result.IsValid = true
		result.Message = msgItemRemoved
		return result
	}

	product, err := v.productRepository.GetProductByID(ctx, productID)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "ValidateUpdateQuantity").Msg("")
		result.Message = msgStockCheckFailed
		return result
	}

	result.AvailableStock = product.Stock

	switch {
	case product.Stock <= 0:
		result.Message = msgOutOfStock
	case newQuantity > product.Stock:
		result.Message = fmt.Sprintf("Stock insuficiente. Disponible: %d, Solicitado: %d", product.Stock, newQuantity)
	default:
		result.IsValid = true
		result.Message = msgStockValid
	}

	return result
}

func (v *StockValidatorImpl) GetProductStock(ctx context.Context, productID string) int {
	product, err := v.productRepository.GetProductByID(ctx, productID)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetProductStock").Msg("")
		return 0
	}

	return product.Stock
}

func (v *StockValidatorImpl) HasStock(ctx context.Context, productID string, quantity int) bool {
	return v.GetProductStock(ctx, productID) >= quantity
}

func (v *StockValidatorImpl) GetStockInfo(ctx context.Context, productID string) dto.StockInfo {
	product, err := v.productRepository.GetProductByID(ctx, productID)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetStockInfo").Msg("")
		return dto.StockInfo{
			ProductID:   productID,
			ProductName: "Error",
		}
	}

	return dto.StockInfo{
		ProductID:      productID,
		ProductName:    product.Name,
		AvailableStock: product.Stock,
		HasStock:       product.Stock > 0,
	}
}
