package controller

import (
	"fmt"
	"net/http"

	"github.com/JhonMohamed/Ravvisant/internal/dto"
	"github.com/JhonMohamed/Ravvisant/internal/service"
	"github.com/JhonMohamed/Ravvisant/internal/tracker"
	"github.com/JhonMohamed/Ravvisant/pkg/response"
	"github.com/JhonMohamed/Ravvisant/pkg/utils"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type FavoriteController struct {
	service         service.FavoriteService
	favoriteTracker *tracker.CountTracker
	favoriteWatcher *tracker.Watcher
}

func CreateFavoriteController(e *echo.Group, service service.FavoriteService, favoriteTracker *tracker.CountTracker, favoriteWatcher *tracker.Watcher, isLoggedIn echo.MiddlewareFunc) {
	c := FavoriteController{
		service:         service,
		favoriteTracker: favoriteTracker,
		favoriteWatcher: favoriteWatcher,
	}
	e.GET("/favorites", c.GetFavorites, isLoggedIn)
	e.POST("/favorites/toggle", c.ToggleFavorite, isLoggedIn)
	e.GET("/favorites/:productId", c.IsFavorite, isLoggedIn)
	e.GET("/favorites/count", c.GetFavoriteCount, isLoggedIn)
	e.GET("/favorites/count/stream", c.StreamFavoriteCount, isLoggedIn)
}

func (c *FavoriteController) GetFavorites(e echo.Context) error {
	_, _, externalID := utils.ExtractTokenUser(e)

	responsePayload, err := c.service.GetFavorites(e.Request().Context(), externalID)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "successfuly retrieved favorites", responsePayload)
}

func (c *FavoriteController) ToggleFavorite(e echo.Context) error {
	_, _, externalID := utils.ExtractTokenUser(e)

	req := dto.FavoriteRequest{}
	if err := e.Bind(&req); err != nil {
		log.Error().Err(err).Str("component", "ToggleFavorite").Msg("")
		return response.WriteErrorResponse(e, err, nil)
	}

	isFavorite, err := c.service.ToggleFavorite(e.Request().Context(), externalID, req)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "successfuly toggled favorite", map[string]bool{"isFavorite": isFavorite})
}

func (c *FavoriteController) IsFavorite(e echo.Context) error {
	_, _, externalID := utils.ExtractTokenUser(e)

	isFavorite, err := c.service.IsFavorite(e.Request().Context(), externalID, e.Param("productId"))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "successfuly retrieved favorite status", map[string]bool{"isFavorite": isFavorite})
}

func (c *FavoriteController) GetFavoriteCount(e echo.Context) error {
	_, _, externalID := utils.ExtractTokenUser(e)

	count, err := c.service.FavoriteCount(e.Request().Context(), externalID)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "successfuly retrieved favorite count", dto.FavoriteCountResponse{Count: count})
}

func (c *FavoriteController) StreamFavoriteCount(e echo.Context) error {
	_, _, externalID := utils.ExtractTokenUser(e)

	c.service.ResyncCount(e.Request().Context(), externalID)

	c.favoriteWatcher.Listen(externalID)
	defer c.favoriteWatcher.Stop(externalID)

	sub := c.favoriteTracker.Subscribe(externalID)
	defer sub.Unsubscribe()

	w := e.Response()
	w.Header().Set(echo.HeaderContentType, "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	w.Flush()

	ctx := e.Request().Context()
	for {
		select {
		case <-ctx.Done():
			return nil
		case count, ok := <-sub.Updates():
			if !ok {
				return nil
			}
			fmt.Fprintf(w, "data: %d\n\n", count)
			w.Flush()
		}
	}
}
