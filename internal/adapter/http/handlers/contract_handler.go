package handlers

import (
	"errors"
	"log"
	"net/http"

	request "gestao_imobiliaria/internal/adapter/http/dto/request"
	response "gestao_imobiliaria/internal/adapter/http/dto/response"
	"gestao_imobiliaria/internal/usecase"
	"gestao_imobiliaria/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidContractPayload = pkg.NewDomainErrorSimple("INVALID_CONTRACT_INPUT", "Invalid contract payload", http.StatusBadRequest)

// ContractHandler handles HTTP requests for tenancy/sale contracts.
//
// Contract mutations reconcile the linked property's advertised status as a
// best-effort secondary effect; reconciliation failures never turn a
// successful contract write into an error response.

type ContractHandler struct {
	usecase usecase.IContractUseCase
}

func NewContractHandler(uc usecase.IContractUseCase) *ContractHandler {
	return &ContractHandler{usecase: uc}
}

func (h *ContractHandler) CreateContract(c *gin.Context) {
	var payload request.ContractRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidContractPayload.HTTPStatus, errInvalidContractPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapContractError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromContract(created))
}

func (h *ContractHandler) ListContracts(c *gin.Context) {
	contracts, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapContractError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromContracts(contracts))
}

func (h *ContractHandler) GetContract(c *gin.Context) {
	contract, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapContractError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromContract(contract))
}

func (h *ContractHandler) UpdateContract(c *gin.Context) {
	var payload request.ContractRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidContractPayload.HTTPStatus, errInvalidContractPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToEntity())
	if err != nil {
		appErr := mapContractError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromContract(updated))
}

func (h *ContractHandler) UpdateContractStatus(c *gin.Context) {
	var payload request.ContractStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidContractPayload.HTTPStatus, errInvalidContractPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.UpdateStatus(c.Request.Context(), c.Param("id"), payload.ResolveStatus())
	if err != nil {
		appErr := mapContractError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromContract(updated))
}

func (h *ContractHandler) DeleteContract(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapContractError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *ContractHandler) RegisterAdjustment(c *gin.Context) {
	var payload request.AdjustmentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidContractPayload.HTTPStatus, errInvalidContractPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.RegisterAdjustment(c.Request.Context(), c.Param("id"), payload.Kind, payload.NewValue, payload.Reason)
	if err != nil {
		appErr := mapContractError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromContract(updated))
}

// SyncPropertyStatus runs the operator-triggered seed/backfill pass.
func (h *ContractHandler) SyncPropertyStatus(c *gin.Context) {
	log.Printf("[contract][handler] sync-property-status start")

	result, err := h.usecase.SyncPropertyStatus(c.Request.Context())
	if err != nil {
		log.Printf("[contract][handler] sync-property-status failed err=%v", err)
		appErr := mapContractError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[contract][handler] sync-property-status done count=%d seeded=%t created=%d", result.ContractCount, result.Seeded, result.Created)

	c.JSON(http.StatusOK, response.SyncResponse{
		ContractCount: result.ContractCount,
		Seeded:        result.Seeded,
		Created:       result.Created,
	})
}

func mapContractError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidContractID),
		errors.Is(err, usecase.ErrInvalidContractCode),
		errors.Is(err, usecase.ErrInvalidTenantRef),
		errors.Is(err, usecase.ErrInvalidPropertyRef),
		errors.Is(err, usecase.ErrInvalidContractType),
		errors.Is(err, usecase.ErrInvalidContractStatus),
		errors.Is(err, usecase.ErrInvalidDueDay),
		errors.Is(err, usecase.ErrInvalidContractAmount),
		errors.Is(err, usecase.ErrInvalidAdjustmentValue),
		errors.Is(err, usecase.ErrInvalidAdjustmentIndex):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrContractCodeExists):
		return pkg.NewDomainErrorSimple("CONTRACT_CODE_EXISTS", "A contract with this code already exists", http.StatusConflict)
	case errors.Is(err, usecase.ErrContractNotFound):
		return pkg.NewDomainErrorSimple("CONTRACT_NOT_FOUND", "Contract not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
