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

type AssetController struct {
	assetService services.AssetServiceInterface
	logger       *zap.Logger
}

func NewAssetController(assetService services.AssetServiceInterface, logger *zap.Logger) *AssetController {
	return &AssetController{assetService: assetService, logger: logger}
}

func (ctl *AssetController) GetAssets(c echo.Context) error {
	filter := utils.ParseFilterFromQuery(c.QueryParams())
	list, total, err := ctl.assetService.GetAssets(c.Request().Context(), filter)
	if err != nil {
		return utils.ErrorResponse(c, err, ctl.logger)
	}
	return utils.SuccessResponse(c, list, "Ativos listados com sucesso", http.StatusOK, total)
}

// GetAvailableAssets lista só os ativos sem associação ativa, para o
// assistente de seleção.
func (ctl *AssetController) GetAvailableAssets(c echo.Context) error {
	filter := utils.ParseFilterFromQuery(c.QueryParams())
	list, total, err := ctl.assetService.GetAvailableAssets(c.Request().Context(), filter)
	if err != nil {
		return utils.ErrorResponse(c, err, ctl.logger)
	}
	return utils.SuccessResponse(c, list, "Ativos disponíveis listados com sucesso", http.StatusOK, total)
}

func (ctl *AssetController) FindAsset(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(c, apperrors.ErrBadRequest, ctl.logger)
	}

	asset, err := ctl.assetService.FindAsset(c.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(c, err, ctl.logger)
	}
	return utils.SuccessResponse(c, asset, "Ativo encontrado", http.StatusOK)
}

func (ctl *AssetController) CreateAsset(c echo.Context) error {
	var payload dto.CreateAssetDTO
	if err := c.Bind(&payload); err != nil {
		return utils.ErrorResponse(c, apperrors.ErrBadRequest, ctl.logger)
	}
	if err := c.Validate(&payload); err != nil {
		return utils.ErrorResponse(c, err, ctl.logger)
	}

	id, err := ctl.assetService.CreateAsset(c.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(c, err, ctl.logger)
	}
	return utils.SuccessResponse(c, map[string]interface{}{"id": id}, "Ativo criado com sucesso", http.StatusCreated)
}

func (ctl *AssetController) UpdateAsset(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(c, apperrors.ErrBadRequest, ctl.logger)
	}

	var payload dto.UpdateAssetDTO
	if err := c.Bind(&payload); err != nil {
		return utils.ErrorResponse(c, apperrors.ErrBadRequest, ctl.logger)
	}
	if err := c.Validate(&payload); err != nil {
		return utils.ErrorResponse(c, err, ctl.logger)
	}

	if err := ctl.assetService.UpdateAsset(c.Request().Context(), id, payload); err != nil {
		return utils.ErrorResponse(c, err, ctl.logger)
	}
	return utils.SuccessResponse(c, nil, "Ativo atualizado com sucesso", http.StatusOK)
}

func (ctl *AssetController) DeleteAsset(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(c, apperrors.ErrBadRequest, ctl.logger)
	}

	if err := ctl.assetService.DeleteAsset(c.Request().Context(), id); err != nil {
		return utils.ErrorResponse(c, err, ctl.logger)
	}
	return utils.SuccessResponse(c, nil, "Ativo removido com sucesso", http.StatusOK)
}
