package controller

import (
	"github.com/JhonMohamed/Ravvisant/internal/dto"
	"github.com/JhonMohamed/Ravvisant/internal/service"
	"github.com/JhonMohamed/Ravvisant/pkg/response"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type UserController struct {
	service service.UserService
}

func CreateUserController(e *echo.Group, service service.UserService) {
	c := UserController{
		service: service,
	}
	e.POST("/users", c.AddUser)
	e.POST("/users/login", c.Login)
}

func (c *UserController) AddUser(e echo.Context) error {
	req := dto.UserRequest{}
	if err := e.Bind(&req); err != nil {
		log.Error().Err(err).Str("component", "AddUser").Msg("")
		return response.WriteErrorResponse(e, err, nil)
	}

	if err := c.service.AddUser(e.Request().Context(), req); err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "successfuly registered user", nil)
}

func (c *UserController) Login(e echo.Context) error {
	req := dto.UserRequest{}
	if err := e.Bind(&req); err != nil {
		log.Error().Err(err).Str("component", "Login").Msg("")
		return response.WriteErrorResponse(e, err, nil)
	}

	responsePayload, err := c.service.Login(e.Request().Context(), req)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "successfuly logged in", responsePayload)
}
