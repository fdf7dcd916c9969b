package service

import (
	"context"

	"github.com/JhonMohamed/Ravvisant/internal/dto"
	pkgdto "github.com/JhonMohamed/Ravvisant/pkg/dto"
)

// StockValidator decides whether a cart write is allowed to proceed. It
// never returns an error: any lookup failure yields a rejecting result so a
// broken backend can not oversell.
type StockValidator interface {
	ValidateAddToCart(ctx context.Context, userID string, productID string, quantityToAdd int) dto.StockValidationResult
	ValidateUpdateQuantity(ctx context.Context, productID string, newQuantity int) dto.StockValidationResult
	GetProductStock(ctx context.Context, productID string) int
	HasStock(ctx context.Context, productID string, quantity int) bool
	GetStockInfo(ctx context.Context, productID string) dto.StockInfo
}

type CartService interface {
	GetCartItems(ctx context.Context, userID string) (items []dto.CartItemResponse, err error)
	AddToCart(ctx context.Context, userID string, req dto.CartItemRequest) (result dto.StockValidationResult, err error)
	UpdateQuantity(ctx context.Context, userID string, productID string, quantity int) (result dto.StockValidationResult, err error)
	RemoveFromCart(ctx context.Context, userID string, productID string) (err error)
	ClearCart(ctx context.Context, userID string) (err error)
	CartCount(ctx context.Context, userID string) (count int, err error)
	ResyncCount(ctx context.Context, userID string)
}

type FavoriteService interface {
	GetFavorites(ctx context.Context, userID string) (favorites []dto.ProductResponse, err error)
	ToggleFavorite(ctx context.Context, userID string, req dto.FavoriteRequest) (isFavorite bool, err error)
	IsFavorite(ctx context.Context, userID string, productID string) (isFavorite bool, err error)
	FavoriteCount(ctx context.Context, userID string) (count int, err error)
	ResyncCount(ctx context.Context, userID string)
}

type PaymentService interface {
	ProcessPayment(ctx context.Context, req dto.PaymentRequest) (response dto.PaymentResponse, err error)
	CheckPaymentStatus(ctx context.Context, transactionID string) (response dto.PaymentResponse, err error)
	CapturePayPalOrder(ctx context.Context, req dto.CapturePayPalOrderRequest) (response dto.PaymentResponse, err error)
	UpdateTransactionStatus(ctx context.Context, transactionID string, status string) (err error)
	GetTransaction(ctx context.Context, transactionID string) (data dto.TransactionResponse, err error)
	GetTransactions(ctx context.Context, filter pkgdto.Filter) (data []dto.TransactionResponse, err error)
	CancelStaleTransactions(ctx context.Context) (cancelled int, err error)
	ConsumeEvent()
}

type ProductService interface {
	AddProduct(ctx context.Context, req dto.ProductRequest) (id string, err error)
	GetProducts(ctx context.Context, userID string, filter pkgdto.Filter) (responsePayload pkgdto.PaginationResponse, err error)
	GetProductByID(ctx context.Context, userID string, id string) (data dto.ProductResponse, err error)
	GetCategories(ctx context.Context) (data []dto.CategoryResponse, err error)
}

type UserService interface {
	AddUser(ctx context.Context, data dto.UserRequest) (err error)
	Login(ctx context.Context, payload dto.UserRequest) (respPayload dto.LoginResponse, err error)
}

type AddressService interface {
	AddAddress(ctx context.Context, userID string, req dto.AddressRequest) (err error)
	GetAddresses(ctx context.Context, userID string) (data []dto.AddressResponse, err error)
	UpdateAddress(ctx context.Context, userID string, id string, req dto.AddressRequest) (err error)
	DeleteAddress(ctx context.Context, userID string, id string) (err error)
	GetDepartments(ctx context.Context) (data []dto.DepartmentResponse, err error)
}
