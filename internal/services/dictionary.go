package services

import (
	"context"

	"go.uber.org/zap"

	"asset-system/internal/dto"
	"asset-system/internal/entities"
	"asset-system/internal/repositories"
)

// Serviços de dicionário: fabricantes, status, planos e tipos de associação.
// São repasses finos, o trabalho real fica nos repositórios.

type ManufacturerServiceInterface interface {
	GetManufacturers(ctx context.Context) ([]entities.Manufacturer, error)
	FindManufacturer(ctx context.Context, id uint64) (*entities.Manufacturer, error)
	CreateManufacturer(ctx context.Context, payload dto.CreateManufacturerDTO) error
	UpdateManufacturer(ctx context.Context, id uint64, payload dto.UpdateManufacturerDTO) error
	DeleteManufacturer(ctx context.Context, id uint64) error
}

type ManufacturerService struct {
	repo   repositories.ManufacturerRepositoryInterface
	logger *zap.Logger
}

func NewManufacturerService(repo repositories.ManufacturerRepositoryInterface, logger *zap.Logger) ManufacturerServiceInterface {
	return &ManufacturerService{repo: repo, logger: logger}
}

func (s *ManufacturerService) GetManufacturers(ctx context.Context) ([]entities.Manufacturer, error) {
	return s.repo.GetManufacturers(ctx)
}

func (s *ManufacturerService) FindManufacturer(ctx context.Context, id uint64) (*entities.Manufacturer, error) {
	return s.repo.FindManufacturer(ctx, id)
}

func (s *ManufacturerService) CreateManufacturer(ctx context.Context, payload dto.CreateManufacturerDTO) error {
	return s.repo.CreateManufacturer(ctx, payload)
}

func (s *ManufacturerService) UpdateManufacturer(ctx context.Context, id uint64, payload dto.UpdateManufacturerDTO) error {
	return s.repo.UpdateManufacturer(ctx, id, payload)
}

func (s *ManufacturerService) DeleteManufacturer(ctx context.Context, id uint64) error {
	return s.repo.DeleteManufacturer(ctx, id)
}

type StatusServiceInterface interface {
	GetStatuses(ctx context.Context) ([]entities.Status, error)
	FindStatus(ctx context.Context, id uint64) (*entities.Status, error)
	CreateStatus(ctx context.Context, payload dto.CreateStatusDTO) error
	UpdateStatus(ctx context.Context, id uint64, payload dto.UpdateStatusDTO) error
	DeleteStatus(ctx context.Context, id uint64) error
}

type StatusService struct {
	repo   repositories.StatusRepositoryInterface
	logger *zap.Logger
}

func NewStatusService(repo repositories.StatusRepositoryInterface, logger *zap.Logger) StatusServiceInterface {
	return &StatusService{repo: repo, logger: logger}
}

func (s *StatusService) GetStatuses(ctx context.Context) ([]entities.Status, error) {
	return s.repo.GetStatuses(ctx)
}

func (s *StatusService) FindStatus(ctx context.Context, id uint64) (*entities.Status, error) {
	return s.repo.FindStatus(ctx, id)
}

func (s *StatusService) CreateStatus(ctx context.Context, payload dto.CreateStatusDTO) error {
	return s.repo.CreateStatus(ctx, payload)
}

func (s *StatusService) UpdateStatus(ctx context.Context, id uint64, payload dto.UpdateStatusDTO) error {
	return s.repo.UpdateStatus(ctx, id, payload)
}

func (s *StatusService) DeleteStatus(ctx context.Context, id uint64) error {
	return s.repo.DeleteStatus(ctx, id)
}

type PlanServiceInterface interface {
	GetPlans(ctx context.Context) ([]entities.Plan, error)
	FindPlan(ctx context.Context, id uint64) (*entities.Plan, error)
	CreatePlan(ctx context.Context, payload dto.CreatePlanDTO) error
	UpdatePlan(ctx context.Context, id uint64, payload dto.UpdatePlanDTO) error
	DeletePlan(ctx context.Context, id uint64) error
}

type PlanService struct {
	repo   repositories.PlanRepositoryInterface
	logger *zap.Logger
}

func NewPlanService(repo repositories.PlanRepositoryInterface, logger *zap.Logger) PlanServiceInterface {
	return &PlanService{repo: repo, logger: logger}
}

func (s *PlanService) GetPlans(ctx context.Context) ([]entities.Plan, error) {
	return s.repo.GetPlans(ctx)
}

func (s *PlanService) FindPlan(ctx context.Context, id uint64) (*entities.Plan, error) {
	return s.repo.FindPlan(ctx, id)
}

func (s *PlanService) CreatePlan(ctx context.Context, payload dto.CreatePlanDTO) error {
	return s.repo.CreatePlan(ctx, payload)
}

func (s *PlanService) UpdatePlan(ctx context.Context, id uint64, payload dto.UpdatePlanDTO) error {
	return s.repo.UpdatePlan(ctx, id, payload)
}

func (s *PlanService) DeletePlan(ctx context.Context, id uint64) error {
	return s.repo.DeletePlan(ctx, id)
}

type AssociationTypeServiceInterface interface {
	GetAssociationTypes(ctx context.Context) ([]entities.AssociationType, error)
	FindAssociationType(ctx context.Context, id uint64) (*entities.AssociationType, error)
	CreateAssociationType(ctx context.Context, payload dto.CreateAssociationTypeDTO) error
	UpdateAssociationType(ctx context.Context, id uint64, payload dto.UpdateAssociationTypeDTO) error
}

type AssociationTypeService struct {
	repo   repositories.AssociationTypeRepositoryInterface
	logger *zap.Logger
}

func NewAssociationTypeService(repo repositories.AssociationTypeRepositoryInterface, logger *zap.Logger) AssociationTypeServiceInterface {
	return &AssociationTypeService{repo: repo, logger: logger}
}

func (s *AssociationTypeService) GetAssociationTypes(ctx context.Context) ([]entities.AssociationType, error) {
	return s.repo.GetAssociationTypes(ctx)
}

func (s *AssociationTypeService) FindAssociationType(ctx context.Context, id uint64) (*entities.AssociationType, error) {
	return s.repo.FindAssociationType(ctx, id)
}

func (s *AssociationTypeService) CreateAssociationType(ctx context.Context, payload dto.CreateAssociationTypeDTO) error {
	return s.repo.CreateAssociationType(ctx, payload)
}

func (s *AssociationTypeService) UpdateAssociationType(ctx context.Context, id uint64, payload dto.UpdateAssociationTypeDTO) error {
	return s.repo.UpdateAssociationType(ctx, id, payload)
}
