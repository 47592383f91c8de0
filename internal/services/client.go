package services

import (
	"context"

	"go.uber.org/zap"

	"asset-system/internal/dto"
	"asset-system/internal/entities"
	"asset-system/internal/repositories"
	"asset-system/pkg/types"
)

type ClientServiceInterface interface {
	GetClients(ctx context.Context, filter types.Filter) ([]entities.Client, uint64, error)
	FindClient(ctx context.Context, clientUUID string) (*entities.Client, error)
	CreateClient(ctx context.Context, payload dto.CreateClientDTO) (*entities.Client, error)
	UpdateClient(ctx context.Context, clientUUID string, payload dto.UpdateClientDTO) error
	DeleteClient(ctx context.Context, clientUUID string) error
}

type ClientService struct {
	repo   repositories.ClientRepositoryInterface
	logger *zap.Logger
}

func NewClientService(repo repositories.ClientRepositoryInterface, logger *zap.Logger) ClientServiceInterface {
	return &ClientService{repo: repo, logger: logger}
}

func (s *ClientService) GetClients(ctx context.Context, filter types.Filter) ([]entities.Client, uint64, error) {
	return s.repo.GetClients(ctx, filter)
}

func (s *ClientService) FindClient(ctx context.Context, clientUUID string) (*entities.Client, error) {
	return s.repo.FindClient(ctx, clientUUID)
}

func (s *ClientService) CreateClient(ctx context.Context, payload dto.CreateClientDTO) (*entities.Client, error) {
	client, err := s.repo.CreateClient(ctx, payload)
	if err != nil {
		s.logger.Error("erro ao criar cliente", zap.Error(err))
		return nil, err
	}
	s.logger.Info("cliente criado", zap.String("client_id", client.UUID))
	return client, nil
}

func (s *ClientService) UpdateClient(ctx context.Context, clientUUID string, payload dto.UpdateClientDTO) error {
	return s.repo.UpdateClient(ctx, clientUUID, payload)
}

func (s *ClientService) DeleteClient(ctx context.Context, clientUUID string) error {
	return s.repo.DeleteClient(ctx, clientUUID)
}
