package handlers

import (
	"errors"
	"net/http"

	request "gestao_imobiliaria/internal/adapter/http/dto/request"
	response "gestao_imobiliaria/internal/adapter/http/dto/response"
	"gestao_imobiliaria/internal/domain/entities"
	"gestao_imobiliaria/internal/usecase"
	"gestao_imobiliaria/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidLegalCasePayload = pkg.NewDomainErrorSimple("INVALID_LEGAL_CASE_INPUT", "Invalid legal case payload", http.StatusBadRequest)

// LegalCaseHandler handles HTTP requests for legal case tracking.

type LegalCaseHandler struct {
	usecase usecase.ILegalCaseUseCase
}

func NewLegalCaseHandler(uc usecase.ILegalCaseUseCase) *LegalCaseHandler {
	return &LegalCaseHandler{usecase: uc}
}

func (h *LegalCaseHandler) CreateLegalCase(c *gin.Context) {
	var payload request.LegalCaseRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidLegalCasePayload.HTTPStatus, errInvalidLegalCasePayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapLegalCaseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromLegalCase(created))
}

// ListLegalCases returns all cases, or only the ones for ?contract_id=.
func (h *LegalCaseHandler) ListLegalCases(c *gin.Context) {
	var (
		cases []entities.LegalCase
		err   error
	)
	if contractID := c.Query("contract_id"); contractID != "" {
		cases, err = h.usecase.ListByContractID(c.Request.Context(), contractID)
	} else {
		cases, err = h.usecase.List(c.Request.Context())
	}
	if err != nil {
		appErr := mapLegalCaseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromLegalCases(cases))
}

func (h *LegalCaseHandler) GetLegalCase(c *gin.Context) {
	lc, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapLegalCaseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromLegalCase(lc))
}

func (h *LegalCaseHandler) UpdateLegalCase(c *gin.Context) {
	var payload request.LegalCaseRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidLegalCasePayload.HTTPStatus, errInvalidLegalCasePayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToEntity())
	if err != nil {
		appErr := mapLegalCaseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromLegalCase(updated))
}

func (h *LegalCaseHandler) UpdateLegalCaseStatus(c *gin.Context) {
	var payload request.LegalCaseStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidLegalCasePayload.HTTPStatus, errInvalidLegalCasePayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.UpdateStatus(c.Request.Context(), c.Param("id"), payload.ResolveStatus())
	if err != nil {
		appErr := mapLegalCaseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromLegalCase(updated))
}

func (h *LegalCaseHandler) DeleteLegalCase(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapLegalCaseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapLegalCaseError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidLegalCaseID),
		errors.Is(err, usecase.ErrInvalidLegalCaseNumber),
		errors.Is(err, usecase.ErrInvalidLegalCaseType),
		errors.Is(err, usecase.ErrInvalidLegalCaseStatus),
		errors.Is(err, usecase.ErrInvalidContractID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrLegalCaseNotFound):
		return pkg.NewDomainErrorSimple("LEGAL_CASE_NOT_FOUND", "Legal case not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
