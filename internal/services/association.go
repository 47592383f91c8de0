package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"asset-system/internal/dto"
	"asset-system/internal/entities"
	"asset-system/internal/repositories"
	"asset-system/internal/rules"
	apperrors "asset-system/pkg/errors"
	"asset-system/pkg/types"
)

const summaryCacheKey = "associations:summary"

type AssociationServiceInterface interface {
	GetAssociations(ctx context.Context, filter types.Filter) ([]entities.Association, uint64, error)
	GetGroupedAssociations(ctx context.Context, f rules.FilterOptions, s rules.SearchOptions) ([]rules.AssociationGroup, error)
	GetSummary(ctx context.Context) (*dto.SummaryDTO, error)
	ValidateSelection(ctx context.Context, payload dto.CreateAssociationDTO) (*dto.ValidationResponseDTO, error)
	CreateAssociations(ctx context.Context, payload dto.CreateAssociationDTO) ([]uint64, error)
	AppendAssets(ctx context.Context, associationID uint64, payload dto.AppendAssetsDTO) ([]uint64, error)
	EndAssociation(ctx context.Context, associationID uint64, payload dto.EndAssociationDTO) error
}

type AssociationService struct {
	runTx           func(ctx context.Context, fn func(tx pgx.Tx) error) error
	associationRepo repositories.AssociationRepositoryInterface
	assetRepo       repositories.AssetRepositoryInterface
	clientRepo      repositories.ClientRepositoryInterface
	cacheRepo       repositories.CacheRepositoryInterface
	summaryTTL      time.Duration
	logger          *zap.Logger
}

func NewAssociationService(
	pool *pgxpool.Pool,
	associationRepo repositories.AssociationRepositoryInterface,
	assetRepo repositories.AssetRepositoryInterface,
	clientRepo repositories.ClientRepositoryInterface,
	cacheRepo repositories.CacheRepositoryInterface,
	summaryTTL time.Duration,
	logger *zap.Logger,
) AssociationServiceInterface {
	return &AssociationService{
		runTx: func(ctx context.Context, fn func(tx pgx.Tx) error) error {
			return repositories.WithTx(ctx, pool, fn)
		},
		associationRepo: associationRepo,
		assetRepo:       assetRepo,
		clientRepo:      clientRepo,
		cacheRepo:       cacheRepo,
		summaryTTL:      summaryTTL,
		logger:          logger,
	}
}

func (s *AssociationService) GetAssociations(ctx context.Context, filter types.Filter) ([]entities.Association, uint64, error) {
	return s.associationRepo.GetAssociations(ctx, filter)
}

func (s *AssociationService) GetGroupedAssociations(ctx context.Context, f rules.FilterOptions, search rules.SearchOptions) ([]rules.AssociationGroup, error) {
	list, err := s.associationRepo.GetAssociationsDetailed(ctx)
	if err != nil {
		s.logger.Error("erro ao buscar associações para agrupamento", zap.Error(err))
		return nil, err
	}
	return rules.GroupAssociations(list, f, search), nil
}

func (s *AssociationService) GetSummary(ctx context.Context) (*dto.SummaryDTO, error) {
	if cached, err := s.cacheRepo.Get(ctx, summaryCacheKey); err == nil && cached != "" {
		var summary dto.SummaryDTO
		if err := json.Unmarshal([]byte(cached), &summary); err == nil {
			return &summary, nil
		}
	}

	list, err := s.associationRepo.GetAssociationsDetailed(ctx)
	if err != nil {
		return nil, err
	}

	summary := &dto.SummaryDTO{
		Summary:     rules.Summarize(list),
		GeneratedAt: time.Now(),
	}

	if payload, err := json.Marshal(summary); err == nil {
		if err := s.cacheRepo.Set(ctx, summaryCacheKey, payload, s.summaryTTL); err != nil {
			s.logger.Warn("não foi possível salvar o resumo no cache", zap.Error(err))
		}
	}

	return summary, nil
}

// hydrateSelection recarrega cada ativo do banco e mescla os campos que só
// existem no assistente (vínculos explícitos, flag de chip principal e a
// configuração livre). O solution_id do banco vence o do payload.
func (s *AssociationService) hydrateSelection(ctx context.Context, items []dto.SelectedAssetDTO) ([]rules.SelectedAsset, error) {
	if len(items) == 0 {
		return nil, nil
	}

	ids := make([]uint64, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ID)
	}

	assets, err := s.assetRepo.FindAssetsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uint64]entities.Asset, len(assets))
	for _, a := range assets {
		byID[a.ID] = a
	}

	selection := make([]rules.SelectedAsset, 0, len(items))
	for _, it := range items {
		asset, ok := byID[it.ID]
		if !ok {
			return nil, apperrors.NewHttpError(http.StatusBadRequest,
				fmt.Sprintf("Ativo %d não encontrado", it.ID), nil, nil)
		}
		selection = append(selection, rules.SelectedAsset{
			ID:                    asset.ID,
			Type:                  asset.Type,
			SolutionID:            asset.SolutionID,
			Label:                 asset.Label(),
			AssociatedEquipmentID: it.AssociatedEquipmentID,
			AssociatedChipID:      it.AssociatedChipID,
			IsPrincipalChip:       it.IsPrincipalChip,
			SSID:                  it.SSID,
			Password:              it.Password,
			GB:                    it.GB,
		})
	}
	return selection, nil
}

func (s *AssociationService) ValidateSelection(ctx context.Context, payload dto.CreateAssociationDTO) (*dto.ValidationResponseDTO, error) {
	selection, err := s.hydrateSelection(ctx, payload.Assets)
	if err != nil {
		return nil, err
	}

	sel := payload.ToSelection()
	sel.Assets = selection

	result := rules.ValidateSelection(sel)
	match := rules.MatchChips(selection)

	return &dto.ValidationResponseDTO{
		Result: result,
		Pairs:  match.Pairs,
	}, nil
}

// buildRows materializa a seleção validada em linhas de associação: uma por
// par equipamento↔chip, uma por equipamento independente e uma por chip
// avulso (backup). O GB informado por ativo vence o padrão do payload.
func buildRows(sel rules.Selection, match rules.MatchResult, planGB *int) []entities.Association {
	base := entities.Association{
		ClientID:          sel.ClientID,
		AssociationTypeID: *sel.AssociationTypeID,
		EntryDate:         *sel.EntryDate,
		PlanID:            sel.PlanID,
		PlanGB:            planGB,
		Notes:             sel.Notes,
		Status:            true,
	}

	consumedChips := make(map[uint64]bool)
	for _, chipID := range match.Pairs {
		consumedChips[chipID] = true
	}

	var rows []entities.Association
	for _, a := range sel.Assets {
		if rules.IsChip(a.SolutionID) {
			continue
		}
		row := base
		id := a.ID
		row.EquipmentID = &id
		if chipID, ok := match.Pairs[a.ID]; ok {
			cid := chipID
			row.ChipID = &cid
		}
		row.SSID = a.SSID
		row.Pass = a.Password
		if a.GB != nil {
			row.PlanGB = a.GB
		}
		rows = append(rows, row)
	}

	for _, a := range sel.Assets {
		if !rules.IsChip(a.SolutionID) || consumedChips[a.ID] {
			continue
		}
		row := base
		id := a.ID
		row.ChipID = &id
		if a.GB != nil {
			row.PlanGB = a.GB
		}
		rows = append(rows, row)
	}

	return rows
}

func (s *AssociationService) CreateAssociations(ctx context.Context, payload dto.CreateAssociationDTO) ([]uint64, error) {
	selection, err := s.hydrateSelection(ctx, payload.Assets)
	if err != nil {
		return nil, err
	}

	sel := payload.ToSelection()
	sel.Assets = selection

	result := rules.ValidateSelection(sel)
	if !result.IsValid {
		return nil, apperrors.NewHttpErrorWithDetails(http.StatusUnprocessableEntity,
			"A seleção não passou na validação", nil, result)
	}

	if _, err := s.clientRepo.FindClient(ctx, sel.ClientID); err != nil {
		return nil, apperrors.NewHttpError(http.StatusBadRequest, "Cliente não encontrado", err, nil)
	}

	match := rules.MatchChips(sel.Assets)
	rows := buildRows(sel, match, payload.PlanGB)

	var ids []uint64
	err = s.runTx(ctx, func(tx pgx.Tx) error {
		for _, row := range rows {
			id, err := s.associationRepo.CreateAssociationTx(ctx, tx, row)
			if err != nil {
				return err
			}
			ids = append(ids, id)
		}
		return nil
	})
	if err != nil {
		s.logger.Error("erro ao criar associações", zap.Error(err), zap.String("client_id", sel.ClientID))
		return nil, err
	}

	s.invalidateSummary(ctx)
	s.logger.Info("associações criadas",
		zap.String("client_id", sel.ClientID),
		zap.Int("rows", len(ids)),
	)
	return ids, nil
}

// AppendAssets adiciona ativos ao agrupamento cliente+tipo+data de uma
// associação existente, reaproveitando o pareador sobre os ativos novos.
func (s *AssociationService) AppendAssets(ctx context.Context, associationID uint64, payload dto.AppendAssetsDTO) ([]uint64, error) {
	existing, err := s.associationRepo.FindAssociation(ctx, associationID)
	if err != nil {
		return nil, err
	}
	if !existing.Status {
		return nil, apperrors.NewHttpError(http.StatusBadRequest,
			"Não é possível adicionar ativos a uma associação encerrada", nil, nil)
	}

	selection, err := s.hydrateSelection(ctx, payload.Assets)
	if err != nil {
		return nil, err
	}

	sel := rules.Selection{
		ClientID:          existing.ClientID,
		Assets:            selection,
		EntryDate:         &existing.EntryDate,
		AssociationTypeID: &existing.AssociationTypeID,
		PlanID:            existing.PlanID,
	}

	result := rules.ValidateSelection(sel)
	if !result.IsValid {
		return nil, apperrors.NewHttpErrorWithDetails(http.StatusUnprocessableEntity,
			"A seleção não passou na validação", nil, result)
	}

	match := rules.MatchChips(sel.Assets)
	rows := buildRows(sel, match, existing.PlanGB)

	var ids []uint64
	err = s.runTx(ctx, func(tx pgx.Tx) error {
		for _, row := range rows {
			id, err := s.associationRepo.CreateAssociationTx(ctx, tx, row)
			if err != nil {
				return err
			}
			ids = append(ids, id)
		}
		return nil
	})
	if err != nil {
		s.logger.Error("erro ao adicionar ativos à associação",
			zap.Uint64("association_id", associationID), zap.Error(err))
		return nil, err
	}

	s.invalidateSummary(ctx)
	return ids, nil
}

func (s *AssociationService) EndAssociation(ctx context.Context, associationID uint64, payload dto.EndAssociationDTO) error {
	exitDate, err := time.Parse("2006-01-02", payload.ExitDate)
	if err != nil {
		return apperrors.NewHttpError(http.StatusBadRequest, "Data de saída inválida", err, nil)
	}

	existing, err := s.associationRepo.FindAssociation(ctx, associationID)
	if err != nil {
		return err
	}
	if exitDate.Before(existing.EntryDate) {
		return apperrors.NewHttpError(http.StatusBadRequest,
			"A data de saída não pode ser anterior à data de entrada", nil, nil)
	}

	if err := s.associationRepo.EndAssociation(ctx, associationID, exitDate, payload.Notes); err != nil {
		s.logger.Error("erro ao encerrar associação", zap.Uint64("association_id", associationID), zap.Error(err))
		return err
	}

	s.invalidateSummary(ctx)
	s.logger.Info("associação encerrada", zap.Uint64("association_id", associationID))
	return nil
}

func (s *AssociationService) invalidateSummary(ctx context.Context) {
	if err := s.cacheRepo.Del(ctx, summaryCacheKey); err != nil {
		s.logger.Warn("não foi possível invalidar o cache do resumo", zap.Error(err))
	}
}
