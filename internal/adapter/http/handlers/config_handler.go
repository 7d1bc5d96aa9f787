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

var errInvalidConfigPayload = pkg.NewDomainErrorSimple("INVALID_CONFIG_INPUT", "Invalid configuration payload", http.StatusBadRequest)

type UserConfigHandler struct {
	usecase usecase.IUserConfigUseCase
}

func NewUserConfigHandler(uc usecase.IUserConfigUseCase) *UserConfigHandler {
	return &UserConfigHandler{usecase: uc}
}

func (h *UserConfigHandler) GetConfig(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}
	cfg, err := h.usecase.Get(c.Request.Context(), uid)
	if err != nil {
		appErr := mapConfigError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromUserConfig(cfg))
}

func (h *UserConfigHandler) SaveConfig(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}
	var payload request.UserConfigRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidConfigPayload.HTTPStatus, errInvalidConfigPayload.ToHTTPError())
		return
	}

	saved, err := h.usecase.Save(c.Request.Context(), uid, payload.ToEntity())
	if err != nil {
		appErr := mapConfigError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromUserConfig(saved))
}

func mapConfigError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidUserID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCounterDecrement):
		return pkg.NewDomainErrorSimple("COUNTER_DECREMENT", err.Error(), http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
