package repository

import (
	"context"

	"github.com/JhonMohamed/Ravvisant/internal/domain"
	"github.com/JhonMohamed/Ravvisant/pkg/errs"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// One document per (user, product). The product id is the line key, so an
// upsert on the pair merges instead of duplicating.
type MongoDBCartRepositoryImpl struct {
	db *mongo.Database
}

func CreateNewMongoDBCartRepository(db *mongo.Database) CartRepository {
	return &MongoDBCartRepositoryImpl{db: db}
}

func (r *MongoDBCartRepositoryImpl) lineFilter(userID string, productID string) bson.D {
	return bson.D{{Key: "user_id", Value: userID}, {Key: "product_id", Value: productID}}
}

func (r *MongoDBCartRepositoryImpl) GetCartItem(ctx context.Context, userID string, productID string) (item domain.CartItem, err error) {
	err = r.db.Collection("carts").FindOne(ctx, r.lineFilter(userID, productID)).Decode(&item)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return item, errs.ErrNotFound
		}

		log.Ctx(ctx).Error().Err(err).Str("component", "GetCartItem").Msg("")
		return item, err
	}

	return item, nil
}

func (r *MongoDBCartRepositoryImpl) GetCartItems(ctx context.Context, userID string) (items []domain.CartItem, err error) {
	cursor, err := r.db.Collection("carts").Find(ctx, bson.D{{Key: "user_id", Value: userID}})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetCartItems").Msg("")
		return
	}

	if err = cursor.All(ctx, &items); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetCartItems").Msg("")
		return
	}

	return items, nil
}

func (r *MongoDBCartRepositoryImpl) UpsertCartItem(ctx context.Context, item domain.CartItem) (err error) {
	update := bson.D{{Key: "$set", Value: item}}
	opts := options.Update().SetUpsert(true)

	_, err = r.db.Collection("carts").UpdateOne(ctx, r.lineFilter(item.UserID, item.ProductID), update, opts)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "UpsertCartItem").Msg("")
		return
	}

	return nil
}

func (r *MongoDBCartRepositoryImpl) UpdateQuantity(ctx context.Context, userID string, productID string, quantity int) (err error) {
	update := bson.D{{Key: "$set", Value: bson.D{{Key: "quantity", Value: quantity}}}}

	result, err := r.db.Collection("carts").UpdateOne(ctx, r.lineFilter(userID, productID), update)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "UpdateQuantity").Msg("")
		return
	}

	if result.MatchedCount == 0 {
		return errs.ErrNotFound
	}

	return nil
}

func (r *MongoDBCartRepositoryImpl) DeleteCartItem(ctx context.Context, userID string, productID string) (err error) {
	_, err = r.db.Collection("carts").DeleteOne(ctx, r.lineFilter(userID, productID))
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "DeleteCartItem").Msg("")
		return
	}

	return nil
}

func (r *MongoDBCartRepositoryImpl) ClearCart(ctx context.Context, userID string) (err error) {
	_, err = r.db.Collection("carts").DeleteMany(ctx, bson.D{{Key: "user_id", Value: userID}})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "ClearCart").Msg("")
		return
	}

	return nil
}

func (r *MongoDBCartRepositoryImpl) SumQuantities(ctx context.Context, userID string) (total int, err error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "user_id", Value: userID}}}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "total", Value: bson.D{{Key: "$sum", Value: "$quantity"}}},
		}}},
	}

	cursor, err := r.db.Collection("carts").Aggregate(ctx, pipeline)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "SumQuantities").Msg("")
		return
	}

	var results []struct {
		Total int `bson:"total"`
	}
	if err = cursor.All(ctx, &results); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "SumQuantities").Msg("")
		return
	}

	if len(results) == 0 {
		return 0, nil
	}

	return results[0].Total, nil
}

func (r *MongoDBCartRepositoryImpl) Watch(ctx context.Context, userID string) (*mongo.ChangeStream, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "fullDocument.user_id", Value: userID}}}},
	}
	opts := options.ChangeStream().SetFullDocument(options.UpdateLookup)

	return r.db.Collection("carts").Watch(ctx, pipeline, opts)
}
