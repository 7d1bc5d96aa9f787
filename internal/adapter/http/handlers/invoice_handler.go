package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	request "kd_cleaning/internal/adapter/http/dto/request"
	response "kd_cleaning/internal/adapter/http/dto/response"
	"kd_cleaning/internal/domain/entities"
	"kd_cleaning/internal/usecase"
	"kd_cleaning/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidInvoicePayload = pkg.NewDomainErrorSimple("INVALID_INVOICE_INPUT", "Invalid invoice payload", http.StatusBadRequest)

// InvoiceHandler handles HTTP requests for client invoices.

type InvoiceHandler struct {
	usecase usecase.IInvoiceUseCase
}

func NewInvoiceHandler(uc usecase.IInvoiceUseCase) *InvoiceHandler {
	return &InvoiceHandler{usecase: uc}
}

// ListCandidates returns the Touch Up services not yet attached to any
// invoice. Pass editing_invoice_id so an invoice under edit keeps its own
// services selectable.
func (h *InvoiceHandler) ListCandidates(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}
	candidates, err := h.usecase.BuildCandidates(c.Request.Context(), uid, c.Query("editing_invoice_id"))
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromServices(candidates))
}

func (h *InvoiceHandler) NextNumber(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}
	number, err := h.usecase.NextNumber(c.Request.Context(), uid)
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, gin.H{"invoice_number": number})
}

func (h *InvoiceHandler) CreateInvoice(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}
	var payload request.InvoiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidInvoicePayload.HTTPStatus, errInvalidInvoicePayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), uid, payload.ToEntity())
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromInvoice(created, time.Now().UTC()))
}

func (h *InvoiceHandler) UpdateInvoice(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}
	var payload request.InvoiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidInvoicePayload.HTTPStatus, errInvalidInvoicePayload.ToHTTPError())
		return
	}

	inv := payload.ToEntity()
	inv.ID = c.Param("id")

	updated, err := h.usecase.Update(c.Request.Context(), uid, inv)
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromInvoice(updated, time.Now().UTC()))
}

func (h *InvoiceHandler) SendInvoice(c *gin.Context) {
	h.patchInvoiceStatus(c, h.usecase.Send)
}

func (h *InvoiceHandler) MarkInvoicePaid(c *gin.Context) {
	h.patchInvoiceStatus(c, h.usecase.MarkPaid)
}

func (h *InvoiceHandler) patchInvoiceStatus(c *gin.Context, transition func(ctx context.Context, id string) (entities.Invoice, error)) {
	inv, err := transition(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromInvoice(inv, time.Now().UTC()))
}

func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	inv, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromInvoice(inv, time.Now().UTC()))
}

func (h *InvoiceHandler) ListInvoices(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}
	invoices, err := h.usecase.ListByUserID(c.Request.Context(), uid)
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromInvoices(invoices, time.Now().UTC()))
}

func (h *InvoiceHandler) DeleteInvoice(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func mapInvoiceError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidUserID),
		errors.Is(err, usecase.ErrInvalidInvoiceID),
		errors.Is(err, usecase.ErrInvoiceClientRequired),
		errors.Is(err, usecase.ErrInvoiceServicesRequired),
		errors.Is(err, usecase.ErrInvoiceNumberRequired),
		errors.Is(err, entities.ErrInvalidDate):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvoiceNotFound):
		return pkg.NewDomainErrorSimple("INVOICE_NOT_FOUND", err.Error(), http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvoiceNumberTaken):
		return pkg.NewDomainErrorSimple("INVOICE_NUMBER_TAKEN", err.Error(), http.StatusConflict)
	case errors.Is(err, usecase.ErrServiceNotInvoiceable):
		return pkg.NewDomainErrorSimple("SERVICE_NOT_INVOICEABLE", err.Error(), http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidStatusTransition):
		return pkg.NewDomainErrorSimple("INVALID_STATUS_TRANSITION", err.Error(), http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
