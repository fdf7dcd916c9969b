package controller

import (
	"github.com/JhonMohamed/Ravvisant/internal/service"
	pkgdto "github.com/JhonMohamed/Ravvisant/pkg/dto"
	"github.com/JhonMohamed/Ravvisant/pkg/response"
	"github.com/JhonMohamed/Ravvisant/pkg/utils"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"github.com/JhonMohamed/Ravvisant/internal/dto"
)

type ProductController struct {
	service service.ProductService
}

func CreateProductController(e *echo.Group, service service.ProductService, isLoggedIn echo.MiddlewareFunc) {
	c := ProductController{
		service: service,
	}
	e.GET("/products", c.GetProducts)
	e.GET("/products/:id", c.GetProductByID)
	e.GET("/categories", c.GetCategories)
	e.POST("/products", c.AddProduct, isLoggedIn)
}

func (c *ProductController) GetProducts(e echo.Context) error {
	filter := pkgdto.Filter{}
	err := e.Bind(&filter)
	if err != nil {
		log.Error().Err(err).Str("component", "GetProducts").Msg("")
	}

	_, _, externalID := utils.ExtractTokenUser(e)

	responsePayload, err := c.service.GetProducts(e.Request().Context(), externalID, filter)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "successfuly retrieved products record", responsePayload)
}

func (c *ProductController) GetProductByID(e echo.Context) error {
	_, _, externalID := utils.ExtractTokenUser(e)

	responsePayload, err := c.service.GetProductByID(e.Request().Context(), externalID, e.Param("id"))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "successfuly retrieved product record", responsePayload)
}

func (c *ProductController) GetCategories(e echo.Context) error {
	responsePayload, err := c.service.GetCategories(e.Request().Context())
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "successfuly retrieved categories record", responsePayload)
}

func (c *ProductController) AddProduct(e echo.Context) error {
	req := dto.ProductRequest{}
	if err := e.Bind(&req); err != nil {
		log.Error().Err(err).Str("component", "AddProduct").Msg("")
		return response.WriteErrorResponse(e, err, nil)
	}

	id, err := c.service.AddProduct(e.Request().Context(), req)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "successfuly added product record", map[string]string{"id": id})
}
