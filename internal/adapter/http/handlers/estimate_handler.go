package handlers

import (
	"errors"
	"net/http"

	request "catermate/internal/adapter/http/dto/request"
	response "catermate/internal/adapter/http/dto/response"
	"catermate/internal/usecase"
	"catermate/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidEstimatePayload = pkg.NewDomainErrorSimple("INVALID_ESTIMATE_INPUT", "Invalid estimate payload", http.StatusBadRequest)
)

// EstimateHandler handles the saved-estimate store and the promotion of an
// estimate into a proposal.

type EstimateHandler struct {
	usecase usecase.IEstimateUseCase
}

func NewEstimateHandler(uc usecase.IEstimateUseCase) *EstimateHandler {
	return &EstimateHandler{usecase: uc}
}

// SaveEstimate persists a calculator snapshot as a named draft estimate.
func (h *EstimateHandler) SaveEstimate(c *gin.Context) {
	var payload request.EstimateRecordRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	saved, err := h.usecase.Save(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromEstimate(saved))
}

func (h *EstimateHandler) ListEstimates(c *gin.Context) {
	list, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEstimates(list))
}

func (h *EstimateHandler) GetEstimate(c *gin.Context) {
	e, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEstimate(e))
}

// UpdateEstimate fully replaces the stored estimate's editable fields with
// the payload. Recomputing the buckets is the caller's responsibility.
func (h *EstimateHandler) UpdateEstimate(c *gin.Context) {
	var payload request.EstimateRecordRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToEntity())
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEstimate(updated))
}

func (h *EstimateHandler) DeleteEstimate(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

// ConvertToProposal promotes a draft estimate into a draft proposal on its
// linked event. One-way; the estimate is marked consumed atomically with the
// proposal write.
func (h *EstimateHandler) ConvertToProposal(c *gin.Context) {
	var payload request.ConvertToProposalRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	proposal, err := h.usecase.ConvertToProposal(c.Request.Context(), c.Param("id"), payload.ResolveUserID())
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromProposal(proposal))
}

func mapEstimateError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidEstimateID), errors.Is(err, usecase.ErrInvalidUserID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEstimateNotFound):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_FOUND", "Estimate not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrEstimateNotLinked):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_LINKED", "Estimate must be linked to an event", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEstimateAlreadyConverted):
		return pkg.NewDomainErrorSimple("ESTIMATE_ALREADY_CONVERTED", "Estimate was already converted to a proposal", http.StatusConflict)
	default:
		return pkg.NewDomainError("STORAGE_UNAVAILABLE", "Underlying storage is unavailable", err, http.StatusServiceUnavailable)
	}
}
