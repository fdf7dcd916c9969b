package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/JhonMohamed/Ravvisant/internal/domain"
	"github.com/JhonMohamed/Ravvisant/internal/dto"
	"github.com/JhonMohamed/Ravvisant/internal/repository"
	pkgdto "github.com/JhonMohamed/Ravvisant/pkg/dto"
	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"
)

type ProductServiceImpl struct {
	productRepository repository.ProductRepository
	searchRepository  repository.ProductSearchRepository
	favoriteService   FavoriteService
	kafkaProducer     messageWriter
}

func CreateProductService(productRepository repository.ProductRepository, searchRepository repository.ProductSearchRepository, favoriteService FavoriteService, kafkaProducer *kafka.Conn) ProductService {
	return &ProductServiceImpl{
		productRepository: productRepository,
		searchRepository:  searchRepository,
		favoriteService:   favoriteService,
		kafkaProducer:     kafkaProducer,
	}
}

// AddProduct writes the catalog record and indexes it for search. The index
// write is best effort; a missed document reappears on the next reindex.
func (s *ProductServiceImpl) AddProduct(ctx context.Context, req dto.ProductRequest) (id string, err error) {
	now := time.Now().UnixMilli()
	product := domain.Product{
		Name:        req.Name,
		Brand:       req.Brand,
		Price:       req.Price,
		Stock:       req.Stock,
		ImageURLs:   req.ImageURLs,
		Description: req.Description,
		CategoryID:  req.CategoryID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	id, err = s.productRepository.AddProduct(ctx, product)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AddProduct").Msg("")
		return
	}

	product.ID = id
	searchDoc := convertProductToResponse(product, false)
	if indexErr := s.searchRepository.AddProduct(ctx, searchDoc); indexErr != nil {
		log.Ctx(ctx).Error().Err(indexErr).Str("component", "AddProduct").Msg("")
	}

	s.publishProductEvent(ctx, "product_created", searchDoc)

	return
}

// GetProducts serves keyword queries from the search index and plain catalog
// listings from the document store. Favorite marks are stamped per caller.
func (s *ProductServiceImpl) GetProducts(ctx context.Context, userID string, filter pkgdto.Filter) (responsePayload pkgdto.PaginationResponse, err error) {
	var records []dto.ProductResponse
	var total int

	if filter.Q != "" {
		records, total, err = s.searchRepository.SearchProducts(ctx, filter)
		if err != nil {
			log.Ctx(ctx).Error().Err(err).Str("component", "GetProducts").Msg("")
			return
		}
	} else {
		var products []domain.Product
		products, err = s.productRepository.GetProducts(ctx, filter)
		if err != nil {
			log.Ctx(ctx).Error().Err(err).Str("component", "GetProducts").Msg("")
			return
		}

		records = make([]dto.ProductResponse, 0, len(products))
		for _, product := range products {
			records = append(records, convertProductToResponse(product, false))
		}

		var count int64
		count, err = s.productRepository.CountProducts(ctx, filter)
		if err != nil {
			log.Ctx(ctx).Error().Err(err).Str("component", "GetProducts").Msg("")
			return
		}
		total = int(count)
	}

	if userID != "" {
		for i := range records {
			isFavorite, favErr := s.favoriteService.IsFavorite(ctx, userID, records[i].ID)
			if favErr != nil {
				continue
			}
			records[i].IsFavorite = isFavorite
		}
	}

	responsePayload.Records = records
	responsePayload.Metadata.TotalCount = uint64(total)
	responsePayload.Metadata.Limit = filter.Limit
	responsePayload.Metadata.Page = uint64(filter.Page)
	return
}

func (s *ProductServiceImpl) GetProductByID(ctx context.Context, userID string, id string) (data dto.ProductResponse, err error) {
	product, err := s.productRepository.GetProductByID(ctx, id)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetProductByID").Msg("")
		return
	}

	isFavorite := false
	if userID != "" {
		if fav, favErr := s.favoriteService.IsFavorite(ctx, userID, id); favErr == nil {
			isFavorite = fav
		}
	}

	return convertProductToResponse(product, isFavorite), nil
}

func (s *ProductServiceImpl) GetCategories(ctx context.Context) (data []dto.CategoryResponse, err error) {
	categories, err := s.productRepository.GetCategories(ctx)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetCategories").Msg("")
		return
	}

	data = make([]dto.CategoryResponse, 0, len(categories))
	for _, category := range categories {
		data = append(data, dto.CategoryResponse{
			ID:        category.ID,
			Name:      category.Name,
			ItemCount: category.ItemCount,
			IconURL:   category.IconURL,
		})
	}

	return
}

func (s *ProductServiceImpl) publishProductEvent(ctx context.Context, eventType string, data dto.ProductResponse) {
	kafkaMsg := dto.KafkaMessage{
		EventType: eventType,
		Data:      data,
	}

	jsonMsg, err := json.Marshal(kafkaMsg)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "publishProductEvent").Msg("")
		return
	}

	maxRetries := 3
	for i := 0; i < maxRetries; i++ {
		_, err = s.kafkaProducer.WriteMessages(kafka.Message{
			Key:   []byte(data.ID),
			Value: jsonMsg,
		})
		if err == nil {
			return
		}
		log.Ctx(ctx).Error().Err(err).Str("component", "publishProductEvent").Msg("")
		time.Sleep(time.Second * time.Duration(i+1))
	}
}

func convertProductToResponse(product domain.Product, isFavorite bool) dto.ProductResponse {
	return dto.ProductResponse{
		ID:          product.ID,
		Name:        product.Name,
		Brand:       product.Brand,
		Price:       product.Price,
		Rating:      product.Rating,
		Stock:       product.Stock,
		ImageURLs:   product.ImageURLs,
		Description: product.Description,
		CategoryID:  product.CategoryID,
		IsFavorite:  isFavorite,
	}
}
