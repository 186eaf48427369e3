package handlers

import (
	"errors"
	"net/http"

	request "gestao_imobiliaria/internal/adapter/http/dto/request"
	response "gestao_imobiliaria/internal/adapter/http/dto/response"
	"gestao_imobiliaria/internal/usecase"
	"gestao_imobiliaria/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidPropertyPayload = pkg.NewDomainErrorSimple("INVALID_PROPERTY_INPUT", "Invalid property payload", http.StatusBadRequest)

// PropertyHandler handles HTTP requests for properties.

type PropertyHandler struct {
	usecase usecase.IPropertyUseCase
}

func NewPropertyHandler(uc usecase.IPropertyUseCase) *PropertyHandler {
	return &PropertyHandler{usecase: uc}
}

func (h *PropertyHandler) CreateProperty(c *gin.Context) {
	var payload request.PropertyRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPropertyPayload.HTTPStatus, errInvalidPropertyPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapPropertyError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromProperty(created))
}

func (h *PropertyHandler) ListProperties(c *gin.Context) {
	properties, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapPropertyError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProperties(properties))
}

func (h *PropertyHandler) GetProperty(c *gin.Context) {
	property, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapPropertyError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProperty(property))
}

func (h *PropertyHandler) UpdateProperty(c *gin.Context) {
	var payload request.PropertyRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPropertyPayload.HTTPStatus, errInvalidPropertyPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToEntity())
	if err != nil {
		appErr := mapPropertyError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProperty(updated))
}

func (h *PropertyHandler) DeleteProperty(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapPropertyError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapPropertyError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPropertyID),
		errors.Is(err, usecase.ErrInvalidFloorPlan),
		errors.Is(err, usecase.ErrInvalidPropertyStatus),
		errors.Is(err, usecase.ErrInvalidGarageType),
		errors.Is(err, usecase.ErrInvalidPropertyPrice),
		errors.Is(err, usecase.ErrInvalidPropertyAddress):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPropertyNotFound):
		return pkg.NewDomainErrorSimple("PROPERTY_NOT_FOUND", "Property not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
