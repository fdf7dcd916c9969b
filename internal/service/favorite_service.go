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

type FavoriteServiceImpl struct {
	favoriteRepository repository.FavoriteRepository
	favoriteTracker    *tracker.CountTracker
}

func CreateFavoriteService(favoriteRepository repository.FavoriteRepository, favoriteTracker *tracker.CountTracker) FavoriteService {
	return &FavoriteServiceImpl{
		favoriteRepository: favoriteRepository,
		favoriteTracker:    favoriteTracker,
	}
}

func (s *FavoriteServiceImpl) GetFavorites(ctx context.Context, userID string) (favorites []dto.ProductResponse, err error) {
	records, err := s.favoriteRepository.GetFavorites(ctx, userID)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetFavorites").Msg("")
		return
	}

	favorites = make([]dto.ProductResponse, 0, len(records))
	for _, record := range records {
		favorites = append(favorites, dto.ProductResponse{
			ID:         record.ProductID,
			Name:       record.Name,
			Brand:      record.Brand,
			Price:      record.Price,
			ImageURLs:  []string{record.ImageURL},
			IsFavorite: true,
		})
	}

	return
}

// ToggleFavorite flips the favorite mark based on what storage currently
// holds, not on what the caller believes. It returns the state after the
// flip.
func (s *FavoriteServiceImpl) ToggleFavorite(ctx context.Context, userID string, req dto.FavoriteRequest) (isFavorite bool, err error) {
	exists, err := s.favoriteRepository.Exists(ctx, userID, req.ProductID)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "ToggleFavorite").Msg("")
		return
	}

	if exists {
		err = s.favoriteRepository.DeleteFavorite(ctx, userID, req.ProductID)
	} else {
		err = s.favoriteRepository.AddFavorite(ctx, domain.Favorite{
			UserID:    userID,
			ProductID: req.ProductID,
			Name:      req.Name,
			Brand:     req.Brand,
			Price:     req.Price,
			ImageURL:  req.ImageURL,
			CreatedAt: time.Now().UnixMilli(),
		})
	}
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "ToggleFavorite").Msg("")
		return
	}

	s.ResyncCount(ctx, userID)

	return !exists, nil
}

func (s *FavoriteServiceImpl) IsFavorite(ctx context.Context, userID string, productID string) (isFavorite bool, err error) {
	isFavorite, err = s.favoriteRepository.Exists(ctx, userID, productID)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "IsFavorite").Msg("")
	}

	return
}

// FavoriteCount counts favorite records. Unlike the cart badge there is no
// quantity to sum.
func (s *FavoriteServiceImpl) FavoriteCount(ctx context.Context, userID string) (count int, err error) {
	count, err = s.favoriteRepository.Count(ctx, userID)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "FavoriteCount").Msg("")
	}

	return
}

func (s *FavoriteServiceImpl) ResyncCount(ctx context.Context, userID string) {
	count, err := s.favoriteRepository.Count(ctx, userID)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "ResyncCount").Msg("")
		s.favoriteTracker.Reset(userID)
		return
	}

	s.favoriteTracker.Publish(userID, count)
}
