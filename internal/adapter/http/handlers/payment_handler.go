package handlers

import (
	"errors"
	"net/http"

	request "kd_cleaning/internal/adapter/http/dto/request"
	response "kd_cleaning/internal/adapter/http/dto/response"
	"kd_cleaning/internal/domain/entities"
	"kd_cleaning/internal/usecase"
	"kd_cleaning/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidPaymentPayload = pkg.NewDomainErrorSimple("INVALID_PAYMENT_INPUT", "Invalid payment payload", http.StatusBadRequest)

// PaymentHandler handles HTTP requests for worker payments.

type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewPaymentHandler(uc usecase.IPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// ListCandidates returns the services a worker can still be paid for in the
// requested date range. Query parameters: worker_id, start_date, end_date and
// optionally editing_payment_id when an existing payment is being edited.
func (h *PaymentHandler) ListCandidates(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	candidates, err := h.usecase.BuildCandidates(
		c.Request.Context(),
		uid,
		c.Query("worker_id"),
		c.Query("start_date"),
		c.Query("end_date"),
		c.Query("editing_payment_id"),
	)
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromServices(candidates))
}

func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}
	var payload request.PaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), uid, payload.ToEntity())
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromPayment(created))
}

func (h *PaymentHandler) UpdatePayment(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}
	var payload request.PaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}

	p := payload.ToEntity()
	p.ID = c.Param("id")

	updated, err := h.usecase.Update(c.Request.Context(), uid, p)
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPayment(updated))
}

func (h *PaymentHandler) GetPayment(c *gin.Context) {
	p, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPayment(p))
}

func (h *PaymentHandler) ListPayments(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}
	payments, err := h.usecase.ListByUserID(c.Request.Context(), uid)
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPayments(payments))
}

func (h *PaymentHandler) DeletePayment(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidUserID),
		errors.Is(err, usecase.ErrInvalidPaymentID),
		errors.Is(err, usecase.ErrPaymentWorkerRequired),
		errors.Is(err, usecase.ErrPaymentServicesRequired),
		errors.Is(err, usecase.ErrDateRangeInverted),
		errors.Is(err, usecase.ErrOperationNumberRequired),
		errors.Is(err, entities.ErrInvalidDate):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", err.Error(), http.StatusNotFound)
	case errors.Is(err, usecase.ErrServiceAlreadyPaid):
		return pkg.NewDomainErrorSimple("SERVICE_ALREADY_PAID", err.Error(), http.StatusConflict)
	case errors.Is(err, usecase.ErrZeroPayServices), errors.Is(err, usecase.ErrZeroPaymentTotal):
		return pkg.NewDomainErrorSimple("ZERO_PAY", err.Error(), http.StatusUnprocessableEntity)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
