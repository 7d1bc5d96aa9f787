package handlers

import (
	"errors"
	"net/http"

	request "kd_cleaning/internal/adapter/http/dto/request"
	"kd_cleaning/internal/infrastructure/extraction"
	"kd_cleaning/internal/usecase"
	"kd_cleaning/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidImportPayload = pkg.NewDomainErrorSimple("INVALID_IMPORT_INPUT", "Invalid import payload", http.StatusBadRequest)

type ImportHandler struct {
	usecase usecase.IImportUseCase
}

func NewImportHandler(uc usecase.IImportUseCase) *ImportHandler {
	return &ImportHandler{usecase: uc}
}

// ExtractDrafts turns pasted work-order text into service drafts for review.
func (h *ImportHandler) ExtractDrafts(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}
	var payload request.ImportRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidImportPayload.HTTPStatus, errInvalidImportPayload.ToHTTPError())
		return
	}

	drafts, err := h.usecase.ExtractServiceDrafts(c.Request.Context(), uid, payload.DocumentText)
	if err != nil {
		appErr := mapImportError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, gin.H{"drafts": drafts})
}

func mapImportError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidUserID),
		errors.Is(err, usecase.ErrEmptyDocument):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrExtractionUnavailable),
		errors.Is(err, extraction.ErrExtractionGatewayNotConfigured),
		errors.Is(err, extraction.ErrMissingExtractionAPIKey):
		return pkg.NewDomainErrorSimple("EXTRACTION_UNAVAILABLE", "Document extraction is not configured", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("EXTRACTION_FAILED", "Could not extract fields from the document", err, http.StatusBadGateway)
	}
}
