package controllers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"asset-system/internal/dto"
	"asset-system/internal/services"
	apperrors "asset-system/pkg/errors"
	"asset-system/pkg/utils"
)

// Controllers dos dicionários. CRUD direto, sem regra de negócio.

func idParam(c echo.Context) (uint64, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, apperrors.ErrBadRequest
	}
	return id, nil
}

type ManufacturerController struct {
	service services.ManufacturerServiceInterface
	logger  *zap.Logger
}

func NewManufacturerController(service services.ManufacturerServiceInterface, logger *zap.Logger) *ManufacturerController {
	return &ManufacturerController{service: service, logger: logger}
}

func (ctl *ManufacturerController) GetManufacturers(c echo.Context) error {
	list, err := ctl.service.GetManufacturers(c.Request().Context())
	if err != nil {
		return utils.ErrorResponse(c, err, ctl.logger)
	}
	return utils.SuccessResponse(c, list, "Fabricantes listados com sucesso", http.StatusOK)
}

func (ctl *ManufacturerController) CreateManufacturer(c echo.Context) error {
	var payload dto.CreateManufacturerDTO
	if err := c.Bind(&payload); err != nil {
		return utils.ErrorResponse(c, apperrors.ErrBadRequest, ctl.logger)
	}
	if err := c.Validate(&payload); err != nil {
		return utils.ErrorResponse(c, err, ctl.logger)
	}
	if err := ctl.service.CreateManufacturer(c.Request().Context(), payload); err != nil {
		return utils.ErrorResponse(c, err, ctl.logger)
	}
	return utils.SuccessResponse(c, nil, "Fabricante criado com sucesso", http.StatusCreated)
}

func (ctl *ManufacturerController) UpdateManufacturer(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return utils.ErrorResponse(c, err, ctl.logger)
	}
	var payload dto.UpdateManufacturerDTO
	if err := c.Bind(&payload); err != nil {
		return utils.ErrorResponse(c, apperrors.ErrBadRequest, ctl.logger)
	}
	if err := c.Validate(&payload); err != nil {
		return utils.ErrorResponse(c, err, ctl.logger)
	}
	if err := ctl.service.UpdateManufacturer(c.Request().Context(), id, payload); err != nil {
		return utils.ErrorResponse(c, err, ctl.logger)
	}
	return utils.SuccessResponse(c, nil, "Fabricante atualizado com sucesso", http.StatusOK)
}

func (ctl *ManufacturerController) DeleteManufacturer(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return utils.ErrorResponse(c, err, ctl.logger)
	}
	if err := ctl.service.DeleteManufacturer(c.Request().Context(), id); err != nil {
		return utils.ErrorResponse(c, err, ctl.logger)
	}
	return utils.SuccessResponse(c, nil, "Fabricante removido com sucesso", http.StatusOK)
}

type StatusController struct {
	service services.StatusServiceInterface
	logger  *zap.Logger
}

func NewStatusController(service services.StatusServiceInterface, logger *zap.Logger) *StatusController {
	return &StatusController{service: service, logger: logger}
}

func (ctl *StatusController) GetStatuses(c echo.Context) error {
	list, err := ctl.service.GetStatuses(c.Request().Context())
	if err != nil {
		return utils.ErrorResponse(c, err, ctl.logger)
	}
	return utils.SuccessResponse(c, list, "Status listados com sucesso", http.StatusOK)
}

func (ctl *StatusController) CreateStatus(c echo.Context) error {
	var payload dto.CreateStatusDTO
	if err := c.Bind(&payload); err != nil {
		return utils.ErrorResponse(c, apperrors.ErrBadRequest, ctl.logger)
	}
	if err := c.Validate(&payload); err != nil {
		return utils.ErrorResponse(c, err, ctl.logger)
	}
	if err := ctl.service.CreateStatus(c.Request().Context(), payload); err != nil {
		return utils.ErrorResponse(c, err, ctl.logger)
	}
	return utils.SuccessResponse(c, nil, "Status criado com sucesso", http.StatusCreated)
}

func (ctl *StatusController) UpdateStatus(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return utils.ErrorResponse(c, err, ctl.logger)
	}
	var payload dto.UpdateStatusDTO
	if err := c.Bind(&payload); err != nil {
		return utils.ErrorResponse(c, apperrors.ErrBadRequest, ctl.logger)
	}
	if err := c.Validate(&payload); err != nil {
		return utils.ErrorResponse(c, err, ctl.logger)
	}
	if err := ctl.service.UpdateStatus(c.Request().Context(), id, payload); err != nil {
		return utils.ErrorResponse(c, err, ctl.logger)
	}
	return utils.SuccessResponse(c, nil, "Status atualizado com sucesso", http.StatusOK)
}

func (ctl *StatusController) DeleteStatus(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return utils.ErrorResponse(c, err, ctl.logger)
	}
	if err := ctl.service.DeleteStatus(c.Request().Context(), id); err != nil {
		return utils.ErrorResponse(c, err, ctl.logger)
	}
	return utils.SuccessResponse(c, nil, "Status removido com sucesso", http.StatusOK)
}

type PlanController struct {
	service services.PlanServiceInterface
	logger  *zap.Logger
}

func NewPlanController(service services.PlanServiceInterface, logger *zap.Logger) *PlanController {
	return &PlanController{service: service, logger: logger}
}

func (ctl *PlanController) GetPlans(c echo.Context) error {
	list, err := ctl.service.GetPlans(c.Request().Context())
	if err != nil {
		return utils.ErrorResponse(c, err, ctl.logger)
	}
	return utils.SuccessResponse(c, list, "Planos listados com sucesso", http.StatusOK)
}

func (ctl *PlanController) CreatePlan(c echo.Context) error {
	var payload dto.CreatePlanDTO
	if err := c.Bind(&payload); err != nil {
		return utils.ErrorResponse(c, apperrors.ErrBadRequest, ctl.logger)
	}
	if err := c.Validate(&payload); err != nil {
		return utils.ErrorResponse(c, err, ctl.logger)
	}
	if err := ctl.service.CreatePlan(c.Request().Context(), payload); err != nil {
		return utils.ErrorResponse(c, err, ctl.logger)
	}
	return utils.SuccessResponse(c, nil, "Plano criado com sucesso", http.StatusCreated)
}

func (ctl *PlanController) UpdatePlan(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return utils.ErrorResponse(c, err, ctl.logger)
	}
	var payload dto.UpdatePlanDTO
	if err := c.Bind(&payload); err != nil {
		return utils.ErrorResponse(c, apperrors.ErrBadRequest, ctl.logger)
	}
	if err := c.Validate(&payload); err != nil {
		return utils.ErrorResponse(c, err, ctl.logger)
	}
	if err := ctl.service.UpdatePlan(c.Request().Context(), id, payload); err != nil {
		return utils.ErrorResponse(c, err, ctl.logger)
	}
	return utils.SuccessResponse(c, nil, "Plano atualizado com sucesso", http.StatusOK)
}

func (ctl *PlanController) DeletePlan(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return utils.ErrorResponse(c, err, ctl.logger)
	}
	if err := ctl.service.DeletePlan(c.Request().Context(), id); err != nil {
		return utils.ErrorResponse(c, err, ctl.logger)
	}
	return utils.SuccessResponse(c, nil, "Plano removido com sucesso", http.StatusOK)
}

type AssociationTypeController struct {
	service services.AssociationTypeServiceInterface
	logger  *zap.Logger
}

func NewAssociationTypeController(service services.AssociationTypeServiceInterface, logger *zap.Logger) *AssociationTypeController {
	return &AssociationTypeController{service: service, logger: logger}
}

func (ctl *AssociationTypeController) GetAssociationTypes(c echo.Context) error {
	list, err := ctl.service.GetAssociationTypes(c.Request().Context())
	if err != nil {
		return utils.ErrorResponse(c, err, ctl.logger)
	}
	return utils.SuccessResponse(c, list, "Tipos de associação listados com sucesso", http.StatusOK)
}

func (ctl *AssociationTypeController) CreateAssociationType(c echo.Context) error {
	var payload dto.CreateAssociationTypeDTO
	if err := c.Bind(&payload); err != nil {
		return utils.ErrorResponse(c, apperrors.ErrBadRequest, ctl.logger)
	}
	if err := c.Validate(&payload); err != nil {
		return utils.ErrorResponse(c, err, ctl.logger)
	}
	if err := ctl.service.CreateAssociationType(c.Request().Context(), payload); err != nil {
		return utils.ErrorResponse(c, err, ctl.logger)
	}
	return utils.SuccessResponse(c, nil, "Tipo de associação criado com sucesso", http.StatusCreated)
}

func (ctl *AssociationTypeController) UpdateAssociationType(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return utils.ErrorResponse(c, err, ctl.logger)
	}
	var payload dto.UpdateAssociationTypeDTO
	if err := c.Bind(&payload); err != nil {
		return utils.ErrorResponse(c, apperrors.ErrBadRequest, ctl.logger)
	}
	if err := c.Validate(&payload); err != nil {
		return utils.ErrorResponse(c, err, ctl.logger)
	}
	if err := ctl.service.UpdateAssociationType(c.Request().Context(), id, payload); err != nil {
		return utils.ErrorResponse(c, err, ctl.logger)
	}
	return utils.SuccessResponse(c, nil, "Tipo de associação atualizado com sucesso", http.StatusOK)
}
