package controller

import (
	"github.com/JhonMohamed/Ravvisant/internal/dto"
	"github.com/JhonMohamed/Ravvisant/internal/service"
	"github.com/JhonMohamed/Ravvisant/pkg/response"
	"github.com/JhonMohamed/Ravvisant/pkg/utils"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type AddressController struct {
	service service.AddressService
}

func CreateAddressController(e *echo.Group, service service.AddressService, isLoggedIn echo.MiddlewareFunc) {
	c := AddressController{
		service: service,
	}
	e.GET("/addresses", c.GetAddresses, isLoggedIn)
	e.POST("/addresses", c.AddAddress, isLoggedIn)
	e.PUT("/addresses/:id", c.UpdateAddress, isLoggedIn)
	e.DELETE("/addresses/:id", c.DeleteAddress, isLoggedIn)
	e.GET("/departments", c.GetDepartments)
}

func (c *AddressController) GetAddresses(e echo.Context) error {
	_, _, externalID := utils.ExtractTokenUser(e)

	responsePayload, err := c.service.GetAddresses(e.Request().Context(), externalID)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "successfuly retrieved addresses", responsePayload)
}

func (c *AddressController) AddAddress(e echo.Context) error {
	_, _, externalID := utils.ExtractTokenUser(e)

	req := dto.AddressRequest{}
	if err := e.Bind(&req); err != nil {
		log.Error().Err(err).Str("component", "AddAddress").Msg("")
		return response.WriteErrorResponse(e, err, nil)
	}

	if err := c.service.AddAddress(e.Request().Context(), externalID, req); err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "successfuly added address", nil)
}

func (c *AddressController) UpdateAddress(e echo.Context) error {
	_, _, externalID := utils.ExtractTokenUser(e)

	req := dto.AddressRequest{}
	if err := e.Bind(&req); err != nil {
		log.Error().Err(err).Str("component", "UpdateAddress").Msg("")
		return response.WriteErrorResponse(e, err, nil)
	}

	if err := c.service.UpdateAddress(e.Request().Context(), externalID, e.Param("id"), req); err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "successfuly updated address", nil)
}

func (c *AddressController) DeleteAddress(e echo.Context) error {
	_, _, externalID := utils.ExtractTokenUser(e)

	if err := c.service.DeleteAddress(e.Request().Context(), externalID, e.Param("id")); err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "successfuly deleted address", nil)
}

func (c *AddressController) GetDepartments(e echo.Context) error {
	responsePayload, err := c.service.GetDepartments(e.Request().Context())
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "successfuly retrieved departments", responsePayload)
}
