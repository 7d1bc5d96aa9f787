package handlers

import (
	"errors"
	"net/http"

	request "kd_cleaning/internal/adapter/http/dto/request"
	response "kd_cleaning/internal/adapter/http/dto/response"
	"kd_cleaning/internal/usecase"
	"kd_cleaning/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidWorkerPayload = pkg.NewDomainErrorSimple("INVALID_WORKER_INPUT", "Invalid worker payload", http.StatusBadRequest)

type WorkerHandler struct {
	usecase usecase.IWorkerUseCase
}

func NewWorkerHandler(uc usecase.IWorkerUseCase) *WorkerHandler {
	return &WorkerHandler{usecase: uc}
}

func (h *WorkerHandler) CreateWorker(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}
	var payload request.WorkerRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWorkerPayload.HTTPStatus, errInvalidWorkerPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), uid, payload.ToEntity())
	if err != nil {
		appErr := mapWorkerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromWorker(created))
}

func (h *WorkerHandler) UpdateWorker(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}
	var payload request.WorkerRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWorkerPayload.HTTPStatus, errInvalidWorkerPayload.ToHTTPError())
		return
	}

	w := payload.ToEntity()
	w.ID = c.Param("id")

	updated, err := h.usecase.Update(c.Request.Context(), uid, w)
	if err != nil {
		appErr := mapWorkerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromWorker(updated))
}

func (h *WorkerHandler) GetWorker(c *gin.Context) {
	w, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapWorkerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromWorker(w))
}

func (h *WorkerHandler) ListWorkers(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}
	workers, err := h.usecase.ListByUserID(c.Request.Context(), uid)
	if err != nil {
		appErr := mapWorkerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromWorkers(workers))
}

func (h *WorkerHandler) DeleteWorker(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapWorkerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func mapWorkerError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidUserID),
		errors.Is(err, usecase.ErrInvalidWorkerID),
		errors.Is(err, usecase.ErrWorkerNameRequired),
		errors.Is(err, usecase.ErrNegativeRate):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrWorkerNotFound):
		return pkg.NewDomainErrorSimple("WORKER_NOT_FOUND", err.Error(), http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
