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

type SelectionController struct {
	selectionService services.SelectionServiceInterface
	logger           *zap.Logger
}

func NewSelectionController(selectionService services.SelectionServiceInterface, logger *zap.Logger) *SelectionController {
	return &SelectionController{selectionService: selectionService, logger: logger}
}

func sessionIDParam(c echo.Context) (string, error) {
	raw := c.Param("session_id")
	if _, err := uuid.Parse(raw); err != nil {
		return "", apperrors.ErrBadRequest
	}
	return raw, nil
}

func (ctl *SelectionController) OpenSession(c echo.Context) error {
	sessionID, err := ctl.selectionService.OpenSession(c.Request().Context())
	if err != nil {
		return utils.ErrorResponse(c, err, ctl.logger)
	}
	return utils.SuccessResponse(c, map[string]string{"session_id": sessionID},
		"Sessão do assistente aberta", http.StatusCreated)
}

func (ctl *SelectionController) SaveState(c echo.Context) error {
	sessionID, err := sessionIDParam(c)
	if err != nil {
		return utils.ErrorResponse(c, err, ctl.logger)
	}

	var payload dto.WizardStateDTO
	if err := c.Bind(&payload); err != nil {
		return utils.ErrorResponse(c, apperrors.ErrBadRequest, ctl.logger)
	}
	if err := c.Validate(&payload); err != nil {
		return utils.ErrorResponse(c, err, ctl.logger)
	}

	if err := ctl.selectionService.SaveState(c.Request().Context(), sessionID, payload); err != nil {
		return utils.ErrorResponse(c, err, ctl.logger)
	}
	return utils.SuccessResponse(c, nil, "Progresso salvo", http.StatusOK)
}

func (ctl *SelectionController) RestoreState(c echo.Context) error {
	sessionID, err := sessionIDParam(c)
	if err != nil {
		return utils.ErrorResponse(c, err, ctl.logger)
	}

	state, err := ctl.selectionService.RestoreState(c.Request().Context(), sessionID)
	if err != nil {
		return utils.ErrorResponse(c, err, ctl.logger)
	}
	return utils.SuccessResponse(c, state, "Progresso restaurado", http.StatusOK)
}

func (ctl *SelectionController) DiscardSession(c echo.Context) error {
	sessionID, err := sessionIDParam(c)
	if err != nil {
		return utils.ErrorResponse(c, err, ctl.logger)
	}

	if err := ctl.selectionService.DiscardSession(c.Request().Context(), sessionID); err != nil {
		return utils.ErrorResponse(c, err, ctl.logger)
	}
	return utils.SuccessResponse(c, nil, "Sessão descartada", http.StatusOK)
}
