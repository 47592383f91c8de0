package controllers

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"asset-system/internal/dto"
	"asset-system/internal/services"
	apperrors "asset-system/pkg/errors"
	"asset-system/pkg/utils"
)

type ClientController struct {
	clientService services.ClientServiceInterface
	logger        *zap.Logger
}

func NewClientController(clientService services.ClientServiceInterface, logger *zap.Logger) *ClientController {
	return &ClientController{clientService: clientService, logger: logger}
}

func clientUUIDParam(c echo.Context) (string, error) {
	raw := c.Param("uuid")
	if _, err := uuid.Parse(raw); err != nil {
		return "", apperrors.ErrBadRequest
	}
	return raw, nil
}

func (ctl *ClientController) GetClients(c echo.Context) error {
	filter := utils.ParseFilterFromQuery(c.QueryParams())
	list, total, err := ctl.clientService.GetClients(c.Request().Context(), filter)
	if err != nil {
		return utils.ErrorResponse(c, err, ctl.logger)
	}
	return utils.SuccessResponse(c, list, "Clientes listados com sucesso", http.StatusOK, total)
}

func (ctl *ClientController) FindClient(c echo.Context) error {
	clientUUID, err := clientUUIDParam(c)
	if err != nil {
		return utils.ErrorResponse(c, err, ctl.logger)
	}

	client, err := ctl.clientService.FindClient(c.Request().Context(), clientUUID)
	if err != nil {
		return utils.ErrorResponse(c, err, ctl.logger)
	}
	return utils.SuccessResponse(c, client, "Cliente encontrado", http.StatusOK)
}

func (ctl *ClientController) CreateClient(c echo.Context) error {
	var payload dto.CreateClientDTO
	if err := c.Bind(&payload); err != nil {
		return utils.ErrorResponse(c, apperrors.ErrBadRequest, ctl.logger)
	}
	if err := c.Validate(&payload); err != nil {
		return utils.ErrorResponse(c, err, ctl.logger)
	}

	client, err := ctl.clientService.CreateClient(c.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(c, err, ctl.logger)
	}
	return utils.SuccessResponse(c, client, "Cliente criado com sucesso", http.StatusCreated)
}

func (ctl *ClientController) UpdateClient(c echo.Context) error {
	clientUUID, err := clientUUIDParam(c)
	if err != nil {
		return utils.ErrorResponse(c, err, ctl.logger)
	}

	var payload dto.UpdateClientDTO
	if err := c.Bind(&payload); err != nil {
		return utils.ErrorResponse(c, apperrors.ErrBadRequest, ctl.logger)
	}
	if err := c.Validate(&payload); err != nil {
		return utils.ErrorResponse(c, err, ctl.logger)
	}

	if err := ctl.clientService.UpdateClient(c.Request().Context(), clientUUID, payload); err != nil {
		return utils.ErrorResponse(c, err, ctl.logger)
	}
	return utils.SuccessResponse(c, nil, "Cliente atualizado com sucesso", http.StatusOK)
}

func (ctl *ClientController) DeleteClient(c echo.Context) error {
	clientUUID, err := clientUUIDParam(c)
	if err != nil {
		return utils.ErrorResponse(c, err, ctl.logger)
	}

	if err := ctl.clientService.DeleteClient(c.Request().Context(), clientUUID); err != nil {
		return utils.ErrorResponse(c, err, ctl.logger)
	}
	return utils.SuccessResponse(c, nil, "Cliente removido com sucesso", http.StatusOK)
}
