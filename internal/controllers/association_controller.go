package controllers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"asset-system/internal/dto"
	"asset-system/internal/rules"
	"asset-system/internal/services"
	apperrors "asset-system/pkg/errors"
	"asset-system/pkg/utils"
)

type AssociationController struct {
	associationService services.AssociationServiceInterface
	reportService      services.ReportServiceInterface
	logger             *zap.Logger
}

func NewAssociationController(
	associationService services.AssociationServiceInterface,
	reportService services.ReportServiceInterface,
	logger *zap.Logger,
) *AssociationController {
	return &AssociationController{
		associationService: associationService,
		reportService:      reportService,
		logger:             logger,
	}
}

// parseRuleOptions lê as facetas e a busca textual da query string. Valores
// ausentes deixam o campo zero, que as regras tratam como "sem filtro".
func parseRuleOptions(c echo.Context) (rules.FilterOptions, rules.SearchOptions) {
	var f rules.FilterOptions
	f.Status = c.QueryParam("status")
	f.AssetType = c.QueryParam("asset_type")

	if raw := c.QueryParam("association_type_id"); raw != "" {
		if id, err := strconv.ParseUint(raw, 10, 64); err == nil {
			f.AssociationTypeID = &id
		}
	}
	if raw := c.QueryParam("manufacturer_id"); raw != "" {
		if id, err := strconv.ParseUint(raw, 10, 64); err == nil {
			f.ManufacturerID = &id
		}
	}
	if raw := c.QueryParam("date_start"); raw != "" {
		if t, err := time.Parse("2006-01-02", raw); err == nil {
			f.DateStart = &t
		}
	}
	if raw := c.QueryParam("date_end"); raw != "" {
		if t, err := time.Parse("2006-01-02", raw); err == nil {
			f.DateEnd = &t
		}
	}

	s := rules.SearchOptions{
		Query: c.QueryParam("q"),
		Type:  c.QueryParam("search_type"),
	}
	return f, s
}

func (ctl *AssociationController) GetAssociations(c echo.Context) error {
	filter := utils.ParseFilterFromQuery(c.QueryParams())
	list, total, err := ctl.associationService.GetAssociations(c.Request().Context(), filter)
	if err != nil {
		return utils.ErrorResponse(c, err, ctl.logger)
	}
	return utils.SuccessResponse(c, list, "Associações listadas com sucesso", http.StatusOK, total)
}

func (ctl *AssociationController) GetGroupedAssociations(c echo.Context) error {
	f, s := parseRuleOptions(c)
	groups, err := ctl.associationService.GetGroupedAssociations(c.Request().Context(), f, s)
	if err != nil {
		return utils.ErrorResponse(c, err, ctl.logger)
	}
	return utils.SuccessResponse(c, groups, "Associações agrupadas com sucesso", http.StatusOK)
}

func (ctl *AssociationController) GetSummary(c echo.Context) error {
	summary, err := ctl.associationService.GetSummary(c.Request().Context())
	if err != nil {
		return utils.ErrorResponse(c, err, ctl.logger)
	}
	return utils.SuccessResponse(c, summary, "Resumo gerado com sucesso", http.StatusOK)
}

func (ctl *AssociationController) ValidateSelection(c echo.Context) error {
	var payload dto.CreateAssociationDTO
	if err := c.Bind(&payload); err != nil {
		return utils.ErrorResponse(c, apperrors.ErrBadRequest, ctl.logger)
	}
	if err := c.Validate(&payload); err != nil {
		return utils.ErrorResponse(c, err, ctl.logger)
	}

	result, err := ctl.associationService.ValidateSelection(c.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(c, err, ctl.logger)
	}
	return utils.SuccessResponse(c, result, "Seleção validada", http.StatusOK)
}

func (ctl *AssociationController) CreateAssociations(c echo.Context) error {
	var payload dto.CreateAssociationDTO
	if err := c.Bind(&payload); err != nil {
		return utils.ErrorResponse(c, apperrors.ErrBadRequest, ctl.logger)
	}
	if err := c.Validate(&payload); err != nil {
		return utils.ErrorResponse(c, err, ctl.logger)
	}

	ids, err := ctl.associationService.CreateAssociations(c.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(c, err, ctl.logger)
	}
	return utils.SuccessResponse(c, map[string]interface{}{"ids": ids}, "Associações criadas com sucesso", http.StatusCreated)
}

func (ctl *AssociationController) AppendAssets(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(c, apperrors.ErrBadRequest, ctl.logger)
	}

	var payload dto.AppendAssetsDTO
	if err := c.Bind(&payload); err != nil {
		return utils.ErrorResponse(c, apperrors.ErrBadRequest, ctl.logger)
	}
	if err := c.Validate(&payload); err != nil {
		return utils.ErrorResponse(c, err, ctl.logger)
	}

	ids, err := ctl.associationService.AppendAssets(c.Request().Context(), id, payload)
	if err != nil {
		return utils.ErrorResponse(c, err, ctl.logger)
	}
	return utils.SuccessResponse(c, map[string]interface{}{"ids": ids}, "Ativos adicionados com sucesso", http.StatusCreated)
}

func (ctl *AssociationController) EndAssociation(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(c, apperrors.ErrBadRequest, ctl.logger)
	}

	var payload dto.EndAssociationDTO
	if err := c.Bind(&payload); err != nil {
		return utils.ErrorResponse(c, apperrors.ErrBadRequest, ctl.logger)
	}
	if err := c.Validate(&payload); err != nil {
		return utils.ErrorResponse(c, err, ctl.logger)
	}

	if err := ctl.associationService.EndAssociation(c.Request().Context(), id, payload); err != nil {
		return utils.ErrorResponse(c, err, ctl.logger)
	}
	return utils.SuccessResponse(c, nil, "Associação encerrada com sucesso", http.StatusOK)
}

var reportHeaders = []string{
	"ID", "Cliente", "Tipo", "Equipamento", "Chip", "Função do chip",
	"Plano", "GB", "Entrada", "Saída", "Situação", "Observações",
}

func (ctl *AssociationController) ExportAssociations(c echo.Context) error {
	if format := c.QueryParam("format"); format != "" && format != "xlsx" {
		return utils.ErrorResponse(c, apperrors.NewHttpError(http.StatusBadRequest,
			"Formato de exportação não suportado", nil, nil), ctl.logger)
	}

	f, s := parseRuleOptions(c)
	rows, err := ctl.reportService.BuildAssociationReport(c.Request().Context(), f, s)
	if err != nil {
		return utils.ErrorResponse(c, err, ctl.logger)
	}
	return ctl.respondWithXLSX(c, rows)
}

func (ctl *AssociationController) respondWithXLSX(c echo.Context, rows []services.ReportRow) error {
	file := excelize.NewFile()
	defer file.Close()

	const sheet = "Associações"
	file.SetSheetName(file.GetSheetName(0), sheet)

	for i, header := range reportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		file.SetCellValue(sheet, cell, header)
	}

	for i, row := range rows {
		values := []interface{}{
			row.AssociationID, row.ClientName, row.AssociationType,
			row.EquipmentLabel, row.ChipLabel, row.ChipKind,
			row.PlanName, planGBCell(row.PlanGB),
			row.EntryDate, row.ExitDate, row.Status, row.Notes,
		}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
			file.SetCellValue(sheet, cell, v)
		}
	}

	fileName := fmt.Sprintf("associacoes_%s.xlsx", time.Now().Format("2006-01-02"))
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, fileName))
	c.Response().Header().Set(echo.HeaderContentType,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Response().WriteHeader(http.StatusOK)

	if err := file.Write(c.Response().Writer); err != nil {
		ctl.logger.Error("erro ao escrever a planilha de associações", zap.Error(err))
		return err
	}
	return nil
}

func planGBCell(gb *int) interface{} {
	if gb == nil {
		return ""
	}
	return *gb
}
