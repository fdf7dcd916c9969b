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

type CartController struct {
	service     service.CartService
	cartTracker *tracker.CountTracker
	cartWatcher *tracker.Watcher
}

func CreateCartController(e *echo.Group, service service.CartService, cartTracker *tracker.CountTracker, cartWatcher *tracker.Watcher, isLoggedIn echo.MiddlewareFunc) {
	c := CartController{
		service:     service,
		cartTracker: cartTracker,
		cartWatcher: cartWatcher,
	}
	e.GET("/cart", c.GetCartItems, isLoggedIn)
	e.POST("/cart", c.AddToCart, isLoggedIn)
	e.PUT("/cart/:productId", c.UpdateQuantity, isLoggedIn)
	e.DELETE("/cart/:productId", c.RemoveFromCart, isLoggedIn)
	e.DELETE("/cart", c.ClearCart, isLoggedIn)
	e.GET("/cart/count", c.GetCartCount, isLoggedIn)
	e.GET("/cart/count/stream", c.StreamCartCount, isLoggedIn)
}

func (c *CartController) GetCartItems(e echo.Context) error {
	_, _, externalID := utils.ExtractTokenUser(e)

	responsePayload, err := c.service.GetCartItems(e.Request().Context(), externalID)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "successfuly retrieved cart items", responsePayload)
}

// AddToCart answers 200 with the validation result either way; IsValid tells
// the client whether anything was written.
func (c *CartController) AddToCart(e echo.Context) error {
	_, _, externalID := utils.ExtractTokenUser(e)

	req := dto.CartItemRequest{}
	if err := e.Bind(&req); err != nil {
		log.Error().Err(err).Str("component", "AddToCart").Msg("")
		return response.WriteErrorResponse(e, err, nil)
	}

	result, err := c.service.AddToCart(e.Request().Context(), externalID, req)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, result.Message, result)
}

func (c *CartController) UpdateQuantity(e echo.Context) error {
	_, _, externalID := utils.ExtractTokenUser(e)

	req := dto.UpdateQuantityRequest{}
	if err := e.Bind(&req); err != nil {
		log.Error().Err(err).Str("component", "UpdateQuantity").Msg("")
		return response.WriteErrorResponse(e, err, nil)
	}

	result, err := c.service.UpdateQuantity(e.Request().Context(), externalID, e.Param("productId"), req.Quantity)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, result.Message, result)
}

func (c *CartController) RemoveFromCart(e echo.Context) error {
	_, _, externalID := utils.ExtractTokenUser(e)

	if err := c.service.RemoveFromCart(e.Request().Context(), externalID, e.Param("productId")); err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "successfuly removed cart item", nil)
}

func (c *CartController) ClearCart(e echo.Context) error {
	_, _, externalID := utils.ExtractTokenUser(e)

	if err := c.service.ClearCart(e.Request().Context(), externalID); err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "successfuly cleared cart", nil)
}

func (c *CartController) GetCartCount(e echo.Context) error {
	_, _, externalID := utils.ExtractTokenUser(e)

	count, err := c.service.CartCount(e.Request().Context(), externalID)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "successfuly retrieved cart count", dto.CartCountResponse{Count: count})
}

// StreamCartCount pushes badge counts over server-sent events. Opening the
// stream starts a change stream for the user; closing it tears both down.
func (c *CartController) StreamCartCount(e echo.Context) error {
	_, _, externalID := utils.ExtractTokenUser(e)

	c.service.ResyncCount(e.Request().Context(), externalID)

	c.cartWatcher.Listen(externalID)
	defer c.cartWatcher.Stop(externalID)

	sub := c.cartTracker.Subscribe(externalID)
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
