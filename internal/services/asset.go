package services

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"asset-system/internal/dto"
	"asset-system/internal/entities"
	"asset-system/internal/repositories"
	"asset-system/internal/rules"
	apperrors "asset-system/pkg/errors"
	"asset-system/pkg/types"
)

type AssetServiceInterface interface {
	GetAssets(ctx context.Context, filter types.Filter) ([]entities.Asset, uint64, error)
	GetAvailableAssets(ctx context.Context, filter types.Filter) ([]entities.Asset, uint64, error)
	FindAsset(ctx context.Context, id uint64) (*entities.Asset, error)
	CreateAsset(ctx context.Context, payload dto.CreateAssetDTO) (uint64, error)
	UpdateAsset(ctx context.Context, id uint64, payload dto.UpdateAssetDTO) error
	DeleteAsset(ctx context.Context, id uint64) error
}

type AssetService struct {
	repo   repositories.AssetRepositoryInterface
	logger *zap.Logger
}

func NewAssetService(repo repositories.AssetRepositoryInterface, logger *zap.Logger) AssetServiceInterface {
	return &AssetService{repo: repo, logger: logger}
}

func (s *AssetService) GetAssets(ctx context.Context, filter types.Filter) ([]entities.Asset, uint64, error) {
	return s.repo.GetAssets(ctx, filter)
}

func (s *AssetService) GetAvailableAssets(ctx context.Context, filter types.Filter) ([]entities.Asset, uint64, error) {
	return s.repo.GetAvailableAssets(ctx, filter)
}

func (s *AssetService) FindAsset(ctx context.Context, id uint64) (*entities.Asset, error) {
	return s.repo.FindAsset(ctx, id)
}

// CreateAsset garante a coerência entre o tipo declarado e o solution_id
// antes de delegar ao repositório.
func (s *AssetService) CreateAsset(ctx context.Context, payload dto.CreateAssetDTO) (uint64, error) {
	if payload.Type == entities.AssetTypeChip {
		if payload.SolutionID == nil || !rules.IsChip(payload.SolutionID) {
			return 0, apperrors.NewHttpError(http.StatusBadRequest,
				"Um chip precisa da solução de chip", nil, nil)
		}
	} else if payload.SolutionID != nil && rules.IsChip(payload.SolutionID) {
		return 0, apperrors.NewHttpError(http.StatusBadRequest,
			"Um equipamento não pode usar a solução de chip", nil, nil)
	}

	id, err := s.repo.CreateAsset(ctx, payload)
	if err != nil {
		s.logger.Error("erro ao criar ativo", zap.Error(err))
		return 0, err
	}
	s.logger.Info("ativo criado", zap.Uint64("asset_id", id), zap.String("type", payload.Type))
	return id, nil
}

func (s *AssetService) UpdateAsset(ctx context.Context, id uint64, payload dto.UpdateAssetDTO) error {
	if _, err := s.repo.FindAsset(ctx, id); err != nil {
		return err
	}
	return s.repo.UpdateAsset(ctx, id, payload)
}

func (s *AssetService) DeleteAsset(ctx context.Context, id uint64) error {
	return s.repo.DeleteAsset(ctx, id)
}
