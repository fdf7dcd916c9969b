package repository

import (
	"context"

	"github.com/JhonMohamed/Ravvisant/internal/domain"
	"github.com/JhonMohamed/Ravvisant/internal/dto"
	pkgdto "github.com/JhonMohamed/Ravvisant/pkg/dto"
	"go.mongodb.org/mongo-driver/mongo"
)

type ProductRepository interface {
	AddProduct(ctx context.Context, data domain.Product) (id string, err error)
	GetProducts(ctx context.Context, filter pkgdto.Filter) (data []domain.Product, err error)
	CountProducts(ctx context.Context, filter pkgdto.Filter) (count int64, err error)
	GetProductByID(ctx context.Context, id string) (product domain.Product, err error)
	GetCategories(ctx context.Context) (data []domain.Category, err error)
}

type ProductSearchRepository interface {
	AddProduct(ctx context.Context, data dto.ProductResponse) (err error)
	SearchProducts(ctx context.Context, filter pkgdto.Filter) (data []dto.ProductResponse, count int, err error)
}

type CartRepository interface {
	GetCartItem(ctx context.Context, userID string, productID string) (item domain.CartItem, err error)
	GetCartItems(ctx context.Context, userID string) (items []domain.CartItem, err error)
	UpsertCartItem(ctx context.Context, item domain.CartItem) (err error)
	UpdateQuantity(ctx context.Context, userID string, productID string, quantity int) (err error)
	DeleteCartItem(ctx context.Context, userID string, productID string) (err error)
	ClearCart(ctx context.Context, userID string) (err error)
	SumQuantities(ctx context.Context, userID string) (total int, err error)
	Watch(ctx context.Context, userID string) (*mongo.ChangeStream, error)
}

type FavoriteRepository interface {
	GetFavorites(ctx context.Context, userID string) (favorites []domain.Favorite, err error)
	AddFavorite(ctx context.Context, favorite domain.Favorite) (err error)
	DeleteFavorite(ctx context.Context, userID string, productID string) (err error)
	Exists(ctx context.Context, userID string, productID string) (exists bool, err error)
	Count(ctx context.Context, userID string) (count int, err error)
	Watch(ctx context.Context, userID string) (*mongo.ChangeStream, error)
}

type TransactionRepository interface {
	AddTransaction(ctx context.Context, data domain.PaymentTransaction) (id string, err error)
	GetTransactionByID(ctx context.Context, id string) (data domain.PaymentTransaction, err error)
	GetTransactionsByOrderID(ctx context.Context, orderID string) (data []domain.PaymentTransaction, err error)
	GetTransactions(ctx context.Context, filter pkgdto.Filter) (data []domain.PaymentTransaction, err error)
	UpdateStatus(ctx context.Context, id string, status domain.PaymentStatus) (err error)
	UpdatePaymentInfo(ctx context.Context, id string, qrCodeURL string, paymentURL string) (err error)
	GetStalePendingTransactions(ctx context.Context, olderThan int64) (data []domain.PaymentTransaction, err error)
}

type UserRepository interface {
	GetUserByEmail(ctx context.Context, email string) (res domain.User, err error)
	AddUser(ctx context.Context, data domain.User) (id int64, err error)
	GetUserByID(ctx context.Context, id int64) (data domain.User, err error)
}

type AddressRepository interface {
	AddAddress(ctx context.Context, data domain.Address) (err error)
	GetAddresses(ctx context.Context, userID string) (data []domain.Address, err error)
	UpdateAddress(ctx context.Context, data domain.Address) (err error)
	DeleteAddress(ctx context.Context, userID string, id string) (err error)
}
