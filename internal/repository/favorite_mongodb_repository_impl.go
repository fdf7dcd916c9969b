package repository

import (
	"context"

	"github.com/JhonMohamed/Ravvisant/internal/domain"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoDBFavoriteRepositoryImpl struct {
	db *mongo.Database
}

func CreateNewMongoDBFavoriteRepository(db *mongo.Database) FavoriteRepository {
	return &MongoDBFavoriteRepositoryImpl{db: db}
}

func (r *MongoDBFavoriteRepositoryImpl) relationFilter(userID string, productID string) bson.D {
	return bson.D{{Key: "user_id", Value: userID}, {Key: "product_id", Value: productID}}
}

func (r *MongoDBFavoriteRepositoryImpl) GetFavorites(ctx context.Context, userID string) (favorites []domain.Favorite, err error) {
	cursor, err := r.db.Collection("favorites").Find(ctx, bson.D{{Key: "user_id", Value: userID}})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetFavorites").Msg("")
		return
	}

	if err = cursor.All(ctx, &favorites); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetFavorites").Msg("")
		return
	}

	return favorites, nil
}

func (r *MongoDBFavoriteRepositoryImpl) AddFavorite(ctx context.Context, favorite domain.Favorite) (err error) {
	update := bson.D{{Key: "$set", Value: favorite}}
	opts := options.Update().SetUpsert(true)

	_, err = r.db.Collection("favorites").UpdateOne(ctx, r.relationFilter(favorite.UserID, favorite.ProductID), update, opts)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AddFavorite").Msg("")
		return
	}

	return nil
}

func (r *MongoDBFavoriteRepositoryImpl) DeleteFavorite(ctx context.Context, userID string, productID string) (err error) {
	_, err = r.db.Collection("favorites").DeleteOne(ctx, r.relationFilter(userID, productID))
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "DeleteFavorite").Msg("")
		return
	}

	return nil
}

func (r *MongoDBFavoriteRepositoryImpl) Exists(ctx context.Context, userID string, productID string) (exists bool, err error) {
	count, err := r.db.Collection("favorites").CountDocuments(ctx, r.relationFilter(userID, productID))
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "Exists").Msg("")
		return
	}

	return count > 0, nil
}

func (r *MongoDBFavoriteRepositoryImpl) Count(ctx context.Context, userID string) (count int, err error) {
	total, err := r.db.Collection("favorites").CountDocuments(ctx, bson.D{{Key: "user_id", Value: userID}})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "Count").Msg("")
		return
	}

	return int(total), nil
}

func (r *MongoDBFavoriteRepositoryImpl) Watch(ctx context.Context, userID string) (*mongo.ChangeStream, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "fullDocument.user_id", Value: userID}}}},
	}
	opts := options.ChangeStream().SetFullDocument(options.UpdateLookup)

	return r.db.Collection("favorites").Watch(ctx, pipeline, opts)
}
