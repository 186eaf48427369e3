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

var errInvalidTenantPayload = pkg.NewDomainErrorSimple("INVALID_TENANT_INPUT", "Invalid tenant payload", http.StatusBadRequest)

// TenantHandler handles HTTP requests for tenants.

type TenantHandler struct {
	usecase usecase.ITenantUseCase
}

func NewTenantHandler(uc usecase.ITenantUseCase) *TenantHandler {
	return &TenantHandler{usecase: uc}
}

func (h *TenantHandler) CreateTenant(c *gin.Context) {
	var payload request.TenantRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTenantPayload.HTTPStatus, errInvalidTenantPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapTenantError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromTenant(created))
}

func (h *TenantHandler) ListTenants(c *gin.Context) {
	tenants, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapTenantError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTenants(tenants))
}

func (h *TenantHandler) GetTenant(c *gin.Context) {
	tenant, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapTenantError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTenant(tenant))
}

func (h *TenantHandler) UpdateTenant(c *gin.Context) {
	var payload request.TenantRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTenantPayload.HTTPStatus, errInvalidTenantPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToEntity())
	if err != nil {
		appErr := mapTenantError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTenant(updated))
}

func (h *TenantHandler) DeleteTenant(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapTenantError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapTenantError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidTenantID),
		errors.Is(err, usecase.ErrInvalidTenantName),
		errors.Is(err, usecase.ErrInvalidTenantDocument):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrTenantNotFound):
		return pkg.NewDomainErrorSimple("TENANT_NOT_FOUND", "Tenant not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
