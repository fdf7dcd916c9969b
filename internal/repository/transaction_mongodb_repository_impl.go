package repository

import (
	"context"
	"time"

	"github.com/JhonMohamed/Ravvisant/internal/domain"
	pkgdto "github.com/JhonMohamed/Ravvisant/pkg/dto"
	"github.com/JhonMohamed/Ravvisant/pkg/errs"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoDBTransactionRepositoryImpl struct {
	db *mongo.Database
}

func CreateNewMongoDBTransactionRepository(db *mongo.Database) TransactionRepository {
	return &MongoDBTransactionRepositoryImpl{db: db}
}

func (r *MongoDBTransactionRepositoryImpl) AddTransaction(ctx context.Context, data domain.PaymentTransaction) (id string, err error) {
	result, err := r.db.Collection("transactions").InsertOne(ctx, data)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AddTransaction").Msg("")
		return
	}

	id, _ = result.InsertedID.(string)
	return id, nil
}

func (r *MongoDBTransactionRepositoryImpl) GetTransactionByID(ctx context.Context, id string) (data domain.PaymentTransaction, err error) {
	filter := bson.D{{Key: "_id", Value: id}}

	err = r.db.Collection("transactions").FindOne(ctx, filter).Decode(&data)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return data, errs.ErrTransactionNotFound
		}

		log.Ctx(ctx).Error().Err(err).Str("component", "GetTransactionByID").Msg("")
		return data, err
	}

	return data, nil
}

func (r *MongoDBTransactionRepositoryImpl) GetTransactionsByOrderID(ctx context.Context, orderID string) (data []domain.PaymentTransaction, err error) {
	cursor, err := r.db.Collection("transactions").Find(ctx, bson.D{{Key: "order_id", Value: orderID}})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetTransactionsByOrderID").Msg("")
		return
	}

	if err = cursor.All(ctx, &data); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetTransactionsByOrderID").Msg("")
		return
	}

	return data, nil
}

func (r *MongoDBTransactionRepositoryImpl) GetTransactions(ctx context.Context, param pkgdto.Filter) (data []domain.PaymentTransaction, err error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	if param.Limit != 0 && param.Page != 0 {
		opts = opts.SetSkip((int64(param.Page) - 1) * int64(param.Limit)).SetLimit(int64(param.Limit))
	}

	filter := bson.D{}
	if param.Status != "" {
		filter = append(filter, bson.E{Key: "status", Value: param.Status})
	}

	cursor, err := r.db.Collection("transactions").Find(ctx, filter, opts)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetTransactions").Msg("")
		return
	}

	if err = cursor.All(ctx, &data); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetTransactions").Msg("")
		return
	}

	return data, nil
}

func (r *MongoDBTransactionRepositoryImpl) UpdateStatus(ctx context.Context, id string, status domain.PaymentStatus) (err error) {
	filter := bson.D{{Key: "_id", Value: id}}
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "status", Value: status},
		{Key: "updated_at", Value: time.Now().UnixMilli()},
	}}}

	result, err := r.db.Collection("transactions").UpdateOne(ctx, filter, update)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "UpdateStatus").Msg("")
		return
	}

	if result.MatchedCount == 0 {
		return errs.ErrTransactionNotFound
	}

	return nil
}

func (r *MongoDBTransactionRepositoryImpl) UpdatePaymentInfo(ctx context.Context, id string, qrCodeURL string, paymentURL string) (err error) {
	fields := bson.D{{Key: "updated_at", Value: time.Now().UnixMilli()}}
	if qrCodeURL != "" {
		fields = append(fields, bson.E{Key: "qr_code_url", Value: qrCodeURL})
	}
	if paymentURL != "" {
		fields = append(fields, bson.E{Key: "payment_url", Value: paymentURL})
	}

	filter := bson.D{{Key: "_id", Value: id}}
	update := bson.D{{Key: "$set", Value: fields}}

	result, err := r.db.Collection("transactions").UpdateOne(ctx, filter, update)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "UpdatePaymentInfo").Msg("")
		return
	}

	if result.MatchedCount == 0 {
		return errs.ErrTransactionNotFound
	}

	return nil
}

func (r *MongoDBTransactionRepositoryImpl) GetStalePendingTransactions(ctx context.Context, olderThan int64) (data []domain.PaymentTransaction, err error) {
	filter := bson.D{
		{Key: "status", Value: domain.PaymentStatusPending},
		{Key: "created_at", Value: bson.D{{Key: "$lt", Value: olderThan}}},
	}

	cursor, err := r.db.Collection("transactions").Find(ctx, filter)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetStalePendingTransactions").Msg("")
		return
	}

	if err = cursor.All(ctx, &data); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetStalePendingTransactions").Msg("")
		return
	}

	return data, nil
}
