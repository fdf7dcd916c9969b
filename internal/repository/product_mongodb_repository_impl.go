package repository

import (
	"context"

	"github.com/JhonMohamed/Ravvisant/internal/domain"
	pkgdto "github.com/JhonMohamed/Ravvisant/pkg/dto"
	"github.com/JhonMohamed/Ravvisant/pkg/errs"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoDBProductRepositoryImpl struct {
	db *mongo.Database
}

func CreateNewMongoDBProductRepository(db *mongo.Database) ProductRepository {
	return &MongoDBProductRepositoryImpl{db: db}
}

func (r *MongoDBProductRepositoryImpl) AddProduct(ctx context.Context, data domain.Product) (id string, err error) {
	result, err := r.db.Collection("products").InsertOne(ctx, data)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AddProduct").Msg("")
		return
	}

	objectID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		log.Ctx(ctx).Error().Str("component", "AddProduct").Msg("unexpected inserted id type")
		return id, errs.ErrInternalServer
	}

	return objectID.Hex(), nil
}

func (r *MongoDBProductRepositoryImpl) GetProducts(ctx context.Context, param pkgdto.Filter) (data []domain.Product, err error) {
	opts := options.Find()

	if param.Limit != 0 && param.Page != 0 {
		opts = opts.SetSkip((int64(param.Page) - 1) * int64(param.Limit)).SetLimit(int64(param.Limit))
	}

	filter := bson.D{}
	if param.CategoryID != "" {
		filter = append(filter, bson.E{Key: "category_id", Value: param.CategoryID})
	}

	cursor, err := r.db.Collection("products").Find(ctx, filter, opts)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetProducts").Msg("")
		return
	}

	if err = cursor.All(ctx, &data); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetProducts").Msg("")
		return
	}

	return data, nil
}

func (r *MongoDBProductRepositoryImpl) CountProducts(ctx context.Context, param pkgdto.Filter) (count int64, err error) {
	filter := bson.D{}
	if param.CategoryID != "" {
		filter = append(filter, bson.E{Key: "category_id", Value: param.CategoryID})
	}

	count, err = r.db.Collection("products").CountDocuments(ctx, filter)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "CountProducts").Msg("")
		return
	}

	return count, nil
}

func (r *MongoDBProductRepositoryImpl) GetProductByID(ctx context.Context, id string) (product domain.Product, err error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return product, errs.ErrNotFound
	}

	filter := bson.D{{Key: "_id", Value: objectID}}

	err = r.db.Collection("products").FindOne(ctx, filter).Decode(&product)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetProductByID").Msg("")
		if err == mongo.ErrNoDocuments {
			return product, errs.ErrNotFound
		}

		return product, err
	}

	return product, nil
}

func (r *MongoDBProductRepositoryImpl) GetCategories(ctx context.Context) (data []domain.Category, err error) {
	cursor, err := r.db.Collection("categories").Find(ctx, bson.D{})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetCategories").Msg("")
		return
	}

	if err = cursor.All(ctx, &data); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetCategories").Msg("")
		return
	}

	return data, nil
}
