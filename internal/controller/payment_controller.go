package controller

import (
	"github.com/JhonMohamed/Ravvisant/internal/dto"
	"github.com/JhonMohamed/Ravvisant/internal/service"
	pkgdto "github.com/JhonMohamed/Ravvisant/pkg/dto"
	"github.com/JhonMohamed/Ravvisant/pkg/response"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type PaymentController struct {
	service service.PaymentService
}

func CreatePaymentController(e *echo.Group, service service.PaymentService, isLoggedIn echo.MiddlewareFunc) {
	c := PaymentController{
		service: service,
	}
	e.POST("/payments", c.ProcessPayment, isLoggedIn)
	e.GET("/payments", c.GetTransactions, isLoggedIn)
	e.GET("/payments/:id", c.GetTransaction, isLoggedIn)
	e.GET("/payments/:id/status", c.CheckPaymentStatus, isLoggedIn)
	e.PATCH("/payments/:id/status", c.UpdateTransactionStatus, isLoggedIn)
	e.POST("/payments/paypal/capture", c.CapturePayPalOrder, isLoggedIn)
}

func (c *PaymentController) ProcessPayment(e echo.Context) error {
	req := dto.PaymentRequest{}
	if err := e.Bind(&req); err != nil {
		log.Error().Err(err).Str("component", "ProcessPayment").Msg("")
		return response.WriteErrorResponse(e, err, nil)
	}

	responsePayload, err := c.service.ProcessPayment(e.Request().Context(), req)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, responsePayload.Message, responsePayload)
}

func (c *PaymentController) GetTransactions(e echo.Context) error {
	filter := pkgdto.Filter{}
	if err := e.Bind(&filter); err != nil {
		log.Error().Err(err).Str("component", "GetTransactions").Msg("")
	}

	responsePayload, err := c.service.GetTransactions(e.Request().Context(), filter)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "successfuly retrieved transactions", responsePayload)
}

func (c *PaymentController) GetTransaction(e echo.Context) error {
	responsePayload, err := c.service.GetTransaction(e.Request().Context(), e.Param("id"))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "successfuly retrieved transaction", responsePayload)
}

func (c *PaymentController) CheckPaymentStatus(e echo.Context) error {
	responsePayload, err := c.service.CheckPaymentStatus(e.Request().Context(), e.Param("id"))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, responsePayload.Message, responsePayload)
}

func (c *PaymentController) UpdateTransactionStatus(e echo.Context) error {
	req := dto.UpdateTransactionStatusRequest{}
	if err := e.Bind(&req); err != nil {
		log.Error().Err(err).Str("component", "UpdateTransactionStatus").Msg("")
		return response.WriteErrorResponse(e, err, nil)
	}

	if err := c.service.UpdateTransactionStatus(e.Request().Context(), e.Param("id"), req.Status); err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "successfuly updated transaction status", nil)
}

func (c *PaymentController) CapturePayPalOrder(e echo.Context) error {
	req := dto.CapturePayPalOrderRequest{}
	if err := e.Bind(&req); err != nil {
		log.Error().Err(err).Str("component", "CapturePayPalOrder").Msg("")
		return response.WriteErrorResponse(e, err, nil)
	}

	responsePayload, err := c.service.CapturePayPalOrder(e.Request().Context(), req)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, responsePayload.Message, responsePayload)
}
