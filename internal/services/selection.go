package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"asset-system/internal/dto"
	"asset-system/internal/repositories"
	apperrors "asset-system/pkg/errors"
)

const selectionKeyPrefix = "selection:"

// SelectionServiceInterface guarda o progresso do assistente de associação em
// checkpoints no Redis, para a seleção sobreviver a recargas da página.
type SelectionServiceInterface interface {
	OpenSession(ctx context.Context) (string, error)
	SaveState(ctx context.Context, sessionID string, state dto.WizardStateDTO) error
	RestoreState(ctx context.Context, sessionID string) (*dto.WizardStateDTO, error)
	DiscardSession(ctx context.Context, sessionID string) error
}

type SelectionService struct {
	cacheRepo repositories.CacheRepositoryInterface
	ttl       time.Duration
	logger    *zap.Logger
}

func NewSelectionService(cacheRepo repositories.CacheRepositoryInterface, ttl time.Duration, logger *zap.Logger) SelectionServiceInterface {
	return &SelectionService{cacheRepo: cacheRepo, ttl: ttl, logger: logger}
}

func (s *SelectionService) OpenSession(ctx context.Context) (string, error) {
	sessionID := uuid.NewString()

	state := dto.WizardStateDTO{Step: 0}
	payload, err := json.Marshal(state)
	if err != nil {
		return "", err
	}
	if err := s.cacheRepo.Set(ctx, selectionKeyPrefix+sessionID, payload, s.ttl); err != nil {
		s.logger.Error("erro ao abrir sessão do assistente", zap.Error(err))
		return "", err
	}
	return sessionID, nil
}

// SaveState sobrescreve o checkpoint inteiro e renova o prazo da sessão.
func (s *SelectionService) SaveState(ctx context.Context, sessionID string, state dto.WizardStateDTO) error {
	payload, err := json.Marshal(state)
	if err != nil {
		return err
	}
	if err := s.cacheRepo.Set(ctx, selectionKeyPrefix+sessionID, payload, s.ttl); err != nil {
		s.logger.Error("erro ao salvar estado do assistente",
			zap.String("session_id", sessionID), zap.Error(err))
		return err
	}
	return nil
}

func (s *SelectionService) RestoreState(ctx context.Context, sessionID string) (*dto.WizardStateDTO, error) {
	raw, err := s.cacheRepo.Get(ctx, selectionKeyPrefix+sessionID)
	if err != nil || raw == "" {
		return nil, apperrors.ErrNotFound
	}

	var state dto.WizardStateDTO
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		s.logger.Warn("checkpoint do assistente corrompido, descartando",
			zap.String("session_id", sessionID), zap.Error(err))
		_ = s.cacheRepo.Del(ctx, selectionKeyPrefix+sessionID)
		return nil, apperrors.ErrNotFound
	}
	return &state, nil
}

func (s *SelectionService) DiscardSession(ctx context.Context, sessionID string) error {
	return s.cacheRepo.Del(ctx, selectionKeyPrefix+sessionID)
}
