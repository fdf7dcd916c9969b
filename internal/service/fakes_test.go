package service

import (
	"context"
	"errors"
	"sync"

	"github.com/JhonMohamed/Ravvisant/internal/domain"
	"github.com/JhonMohamed/Ravvisant/internal/dto"
	pkgdto "github.com/JhonMohamed/Ravvisant/pkg/dto"
	"github.com/JhonMohamed/Ravvisant/pkg/errs"
	"github.com/segmentio/kafka-go"
	"go.mongodb.org/mongo-driver/mongo"
)

type fakeProductRepo struct {
	products map[string]domain.Product
	err      error
}

func newFakeProductRepo(products ...domain.Product) *fakeProductRepo {
	repo := &fakeProductRepo{products: make(map[string]domain.Product)}
	for _, p := range products {
		repo.products[p.ID] = p
	}
	return repo
}

func (r *fakeProductRepo) AddProduct(ctx context.Context, data domain.Product) (string, error) {
	if r.err != nil {
		return "", r.err
	}
	if data.ID == "" {
		data.ID = "generated-id"
	}
	r.products[data.ID] = data
	return data.ID, nil
}

func (r *fakeProductRepo) GetProducts(ctx context.Context, filter pkgdto.Filter) ([]domain.Product, error) {
	if r.err != nil {
		return nil, r.err
	}
	var out []domain.Product
	for _, p := range r.products {
		out = append(out, p)
	}
	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

func (r *fakeProductRepo) CountProducts(ctx context.Context, filter pkgdto.Filter) (int64, error) {
	if r.err != nil {
		return 0, r.err
	}
	return int64(len(r.products)), nil
}

func (r *fakeProductRepo) GetProductByID(ctx context.Context, id string) (domain.Product, error) {
	if r.err != nil {
		return domain.Product{}, r.err
	}
	p, ok := r.products[id]
	if !ok {
		return domain.Product{}, errs.ErrNotFound
	}
	return p, nil
}

func (r *fakeProductRepo) GetCategories(ctx context.Context) ([]domain.Category, error) {
	return nil, r.err
}

type fakeSearchRepo struct {
	indexed []dto.ProductResponse
	results []dto.ProductResponse
	total   int
	err     error
}

func (r *fakeSearchRepo) AddProduct(ctx context.Context, data dto.ProductResponse) error {
	if r.err != nil {
		return r.err
	}
	r.indexed = append(r.indexed, data)
	return nil
}

func (r *fakeSearchRepo) SearchProducts(ctx context.Context, filter pkgdto.Filter) ([]dto.ProductResponse, int, error) {
	if r.err != nil {
		return nil, 0, r.err
	}
	return r.results, r.total, nil
}

type fakeCartRepo struct {
	mu    sync.Mutex
	items map[string]domain.CartItem
	err   error
}

func newFakeCartRepo() *fakeCartRepo {
	return &fakeCartRepo{items: make(map[string]domain.CartItem)}
}

func cartKey(userID, productID string) string {
	return userID + "/" + productID
}

func (r *fakeCartRepo) GetCartItem(ctx context.Context, userID string, productID string) (domain.CartItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return domain.CartItem{}, r.err
	}
	item, ok := r.items[cartKey(userID, productID)]
	if !ok {
		return domain.CartItem{}, errs.ErrNotFound
	}
	return item, nil
}

func (r *fakeCartRepo) GetCartItems(ctx context.Context, userID string) ([]domain.CartItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	var out []domain.CartItem
	for _, item := range r.items {
		if item.UserID == userID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (r *fakeCartRepo) UpsertCartItem(ctx context.Context, item domain.CartItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.items[cartKey(item.UserID, item.ProductID)] = item
	return nil
}

func (r *fakeCartRepo) UpdateQuantity(ctx context.Context, userID string, productID string, quantity int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	item, ok := r.items[cartKey(userID, productID)]
	if !ok {
		return errs.ErrNotFound
	}
	item.Quantity = quantity
	r.items[cartKey(userID, productID)] = item
	return nil
}

func (r *fakeCartRepo) DeleteCartItem(ctx context.Context, userID string, productID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	delete(r.items, cartKey(userID, productID))
	return nil
}

func (r *fakeCartRepo) ClearCart(ctx context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	for key, item := range r.items {
		if item.UserID == userID {
			delete(r.items, key)
		}
	}
	return nil
}

func (r *fakeCartRepo) SumQuantities(ctx context.Context, userID string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return 0, r.err
	}
	total := 0
	for _, item := range r.items {
		if item.UserID == userID {
			total += item.Quantity
		}
	}
	return total, nil
}

func (r *fakeCartRepo) Watch(ctx context.Context, userID string) (*mongo.ChangeStream, error) {
	return nil, errors.New("not supported")
}

type fakeFavoriteRepo struct {
	mu        sync.Mutex
	favorites map[string]domain.Favorite
	err       error
}

func newFakeFavoriteRepo() *fakeFavoriteRepo {
	return &fakeFavoriteRepo{favorites: make(map[string]domain.Favorite)}
}

func (r *fakeFavoriteRepo) GetFavorites(ctx context.Context, userID string) ([]domain.Favorite, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	var out []domain.Favorite
	for _, f := range r.favorites {
		if f.UserID == userID {
			out = append(out, f)
		}
	}
	return out, nil
}

func (r *fakeFavoriteRepo) AddFavorite(ctx context.Context, favorite domain.Favorite) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.favorites[cartKey(favorite.UserID, favorite.ProductID)] = favorite
	return nil
}

func (r *fakeFavoriteRepo) DeleteFavorite(ctx context.Context, userID string, productID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	delete(r.favorites, cartKey(userID, productID))
	return nil
}

func (r *fakeFavoriteRepo) Exists(ctx context.Context, userID string, productID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return false, r.err
	}
	_, ok := r.favorites[cartKey(userID, productID)]
	return ok, nil
}

func (r *fakeFavoriteRepo) Count(ctx context.Context, userID string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return 0, r.err
	}
	count := 0
	for _, f := range r.favorites {
		if f.UserID == userID {
			count++
		}
	}
	return count, nil
}

func (r *fakeFavoriteRepo) Watch(ctx context.Context, userID string) (*mongo.ChangeStream, error) {
	return nil, errors.New("not supported")
}

type fakeTransactionRepo struct {
	mu           sync.Mutex
	transactions map[string]domain.PaymentTransaction
	err          error
}

func newFakeTransactionRepo() *fakeTransactionRepo {
	return &fakeTransactionRepo{transactions: make(map[string]domain.PaymentTransaction)}
}

func (r *fakeTransactionRepo) AddTransaction(ctx context.Context, data domain.PaymentTransaction) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return "", r.err
	}
	r.transactions[data.ID] = data
	return data.ID, nil
}

func (r *fakeTransactionRepo) GetTransactionByID(ctx context.Context, id string) (domain.PaymentTransaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return domain.PaymentTransaction{}, r.err
	}
	transaction, ok := r.transactions[id]
	if !ok {
		return domain.PaymentTransaction{}, errs.ErrTransactionNotFound
	}
	return transaction, nil
}

func (r *fakeTransactionRepo) GetTransactionsByOrderID(ctx context.Context, orderID string) ([]domain.PaymentTransaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.PaymentTransaction
	for _, t := range r.transactions {
		if t.OrderID == orderID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *fakeTransactionRepo) GetTransactions(ctx context.Context, filter pkgdto.Filter) ([]domain.PaymentTransaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	var out []domain.PaymentTransaction
	for _, t := range r.transactions {
		if filter.Status != "" && string(t.Status) != filter.Status {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

func (r *fakeTransactionRepo) UpdateStatus(ctx context.Context, id string, status domain.PaymentStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	transaction, ok := r.transactions[id]
	if !ok {
		return errs.ErrTransactionNotFound
	}
	transaction.Status = status
	r.transactions[id] = transaction
	return nil
}

func (r *fakeTransactionRepo) UpdatePaymentInfo(ctx context.Context, id string, qrCodeURL string, paymentURL string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	transaction, ok := r.transactions[id]
	if !ok {
		return errs.ErrTransactionNotFound
	}
	transaction.QRCodeURL = qrCodeURL
	transaction.PaymentURL = paymentURL
	r.transactions[id] = transaction
	return nil
}

func (r *fakeTransactionRepo) GetStalePendingTransactions(ctx context.Context, olderThan int64) ([]domain.PaymentTransaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	var out []domain.PaymentTransaction
	for _, t := range r.transactions {
		if t.Status == domain.PaymentStatusPending && t.CreatedAt < olderThan {
			out = append(out, t)
		}
	}
	return out, nil
}

type fakePayPalGateway struct {
	createResponse  dto.PaymentResponse
	createErr       error
	captureResponse dto.PaymentResponse
	captureErr      error
	capturedOrderID string
}

func (g *fakePayPalGateway) CreateOrder(ctx context.Context, paymentRequest dto.PaymentRequest) (dto.PaymentResponse, error) {
	return g.createResponse, g.createErr
}

func (g *fakePayPalGateway) CaptureOrder(ctx context.Context, orderID string) (dto.PaymentResponse, error) {
	g.capturedOrderID = orderID
	return g.captureResponse, g.captureErr
}

type fakeMessageWriter struct {
	mu       sync.Mutex
	messages []kafka.Message
	err      error
}

func (w *fakeMessageWriter) WriteMessages(msgs ...kafka.Message) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.err != nil {
		return 0, w.err
	}
	w.messages = append(w.messages, msgs...)
	return len(msgs), nil
}

func (w *fakeMessageWriter) count() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.messages)
}

type fakeStockValidator struct {
	addResult    dto.StockValidationResult
	updateResult dto.StockValidationResult
}

func (v *fakeStockValidator) ValidateAddToCart(ctx context.Context, userID string, productID string, quantityToAdd int) dto.StockValidationResult {
	return v.addResult
}

func (v *fakeStockValidator) ValidateUpdateQuantity(ctx context.Context, productID string, newQuantity int) dto.StockValidationResult {
	return v.updateResult
}

func (v *fakeStockValidator) GetProductStock(ctx context.Context, productID string) int {
	return v.addResult.AvailableStock
}

func (v *fakeStockValidator) HasStock(ctx context.Context, productID string, quantity int) bool {
	return v.addResult.AvailableStock >= quantity
}

func (v *fakeStockValidator) GetStockInfo(ctx context.Context, productID string) dto.StockInfo {
	return dto.StockInfo{ProductID: productID}
}
