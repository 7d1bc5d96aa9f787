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

var (
	errInvalidUnitPayload     = pkg.NewDomainErrorSimple("INVALID_UNIT_INPUT", "Invalid unit payload", http.StatusBadRequest)
	errInvalidUnitTypePayload = pkg.NewDomainErrorSimple("INVALID_UNIT_TYPE_INPUT", "Invalid unit type payload", http.StatusBadRequest)
)

// UnitHandler handles HTTP requests for units and their user-defined types.

type UnitHandler struct {
	units     usecase.IUnitUseCase
	unitTypes usecase.IUnitTypeUseCase
}

func NewUnitHandler(units usecase.IUnitUseCase, unitTypes usecase.IUnitTypeUseCase) *UnitHandler {
	return &UnitHandler{units: units, unitTypes: unitTypes}
}

func (h *UnitHandler) CreateUnit(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}
	var payload request.UnitRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidUnitPayload.HTTPStatus, errInvalidUnitPayload.ToHTTPError())
		return
	}

	created, err := h.units.Create(c.Request.Context(), uid, payload.ToEntity())
	if err != nil {
		appErr := mapUnitError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromUnit(created))
}

func (h *UnitHandler) UpdateUnit(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}
	var payload request.UnitRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidUnitPayload.HTTPStatus, errInvalidUnitPayload.ToHTTPError())
		return
	}

	u := payload.ToEntity()
	u.ID = c.Param("id")

	updated, err := h.units.Update(c.Request.Context(), uid, u)
	if err != nil {
		appErr := mapUnitError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromUnit(updated))
}

func (h *UnitHandler) GetUnit(c *gin.Context) {
	u, err := h.units.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapUnitError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromUnit(u))
}

func (h *UnitHandler) ListUnits(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}
	units, err := h.units.ListByUserID(c.Request.Context(), uid)
	if err != nil {
		appErr := mapUnitError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromUnits(units))
}

func (h *UnitHandler) DeleteUnit(c *gin.Context) {
	if err := h.units.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapUnitError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *UnitHandler) CreateUnitType(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}
	var payload request.UnitTypeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidUnitTypePayload.HTTPStatus, errInvalidUnitTypePayload.ToHTTPError())
		return
	}

	created, err := h.unitTypes.Create(c.Request.Context(), uid, payload.ToEntity())
	if err != nil {
		appErr := mapUnitError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromUnitType(created))
}

func (h *UnitHandler) UpdateUnitType(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}
	var payload request.UnitTypeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidUnitTypePayload.HTTPStatus, errInvalidUnitTypePayload.ToHTTPError())
		return
	}

	t := payload.ToEntity()
	t.ID = c.Param("id")

	updated, err := h.unitTypes.Update(c.Request.Context(), uid, t)
	if err != nil {
		appErr := mapUnitError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromUnitType(updated))
}

func (h *UnitHandler) ListUnitTypes(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}
	types, err := h.unitTypes.ListByUserID(c.Request.Context(), uid)
	if err != nil {
		appErr := mapUnitError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromUnitTypes(types))
}

func (h *UnitHandler) DeleteUnitType(c *gin.Context) {
	if err := h.unitTypes.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapUnitError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func mapUnitError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidUserID),
		errors.Is(err, usecase.ErrInvalidUnitID),
		errors.Is(err, usecase.ErrUnitNameRequired),
		errors.Is(err, usecase.ErrUnitClientRequired),
		errors.Is(err, usecase.ErrNegativePrice),
		errors.Is(err, usecase.ErrInvalidUnitTypeID),
		errors.Is(err, usecase.ErrUnitTypeNameRequired):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUnitNotFound), errors.Is(err, usecase.ErrUnitTypeNotFound):
		return pkg.NewDomainErrorSimple("UNIT_NOT_FOUND", err.Error(), http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
