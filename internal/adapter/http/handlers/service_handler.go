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

var errInvalidServicePayload = pkg.NewDomainErrorSimple("INVALID_SERVICE_INPUT", "Invalid service payload", http.StatusBadRequest)

// ServiceHandler handles HTTP requests for scheduled cleaning services.

type ServiceHandler struct {
	usecase usecase.IServiceUseCase
}

func NewServiceHandler(uc usecase.IServiceUseCase) *ServiceHandler {
	return &ServiceHandler{usecase: uc}
}

// CreateService derives the work order, the price snapshot and the frozen
// total before persisting.
func (h *ServiceHandler) CreateService(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}
	var payload request.ServiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidServicePayload.HTTPStatus, errInvalidServicePayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), uid, payload.ToEntity())
	if err != nil {
		appErr := mapServiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromService(created))
}

func (h *ServiceHandler) UpdateService(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}
	var payload request.ServiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidServicePayload.HTTPStatus, errInvalidServicePayload.ToHTTPError())
		return
	}

	s := payload.ToEntity()
	s.ID = c.Param("id")

	updated, err := h.usecase.Update(c.Request.Context(), uid, s)
	if err != nil {
		appErr := mapServiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromService(updated))
}

func (h *ServiceHandler) GetService(c *gin.Context) {
	s, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapServiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromService(s))
}

func (h *ServiceHandler) ListServices(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}
	services, err := h.usecase.ListByUserID(c.Request.Context(), uid)
	if err != nil {
		appErr := mapServiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromServices(services))
}

func (h *ServiceHandler) DeleteService(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapServiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func mapServiceError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidUserID),
		errors.Is(err, usecase.ErrInvalidServiceID),
		errors.Is(err, usecase.ErrServiceUnitRequired),
		errors.Is(err, usecase.ErrServiceWorkersRequired),
		errors.Is(err, usecase.ErrInvalidServiceType),
		errors.Is(err, usecase.ErrTimeRangeInverted),
		errors.Is(err, entities.ErrInvalidDate),
		errors.Is(err, entities.ErrInvalidTime):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrServiceNotFound), errors.Is(err, usecase.ErrServiceUnitNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_NOT_FOUND", err.Error(), http.StatusNotFound)
	case errors.Is(err, usecase.ErrWorkOrderTaken):
		return pkg.NewDomainErrorSimple("WORK_ORDER_TAKEN", err.Error(), http.StatusConflict)
	case errors.Is(err, usecase.ErrWorkerRateNotConfigured):
		return pkg.NewDomainErrorSimple("WORKER_RATE_NOT_CONFIGURED", err.Error(), http.StatusUnprocessableEntity)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
