package services

import (
	"context"

	"go.uber.org/zap"

	"asset-system/internal/repositories"
	"asset-system/internal/rules"
	"asset-system/pkg/utils"
)

// ReportRow é uma linha pronta da planilha de associações. O controller só
// escreve as células.
type ReportRow struct {
	AssociationID   uint64
	ClientName      string
	AssociationType string
	EquipmentLabel  string
	ChipLabel       string
	ChipKind        string
	PlanName        string
	PlanGB          *int
	EntryDate       string
	ExitDate        string
	Status          string
	Notes           string
}

type ReportServiceInterface interface {
	BuildAssociationReport(ctx context.Context, f rules.FilterOptions, s rules.SearchOptions) ([]ReportRow, error)
}

type ReportService struct {
	associationRepo     repositories.AssociationRepositoryInterface
	associationTypeRepo repositories.AssociationTypeRepositoryInterface
	planRepo            repositories.PlanRepositoryInterface
	logger              *zap.Logger
}

func NewReportService(
	associationRepo repositories.AssociationRepositoryInterface,
	associationTypeRepo repositories.AssociationTypeRepositoryInterface,
	planRepo repositories.PlanRepositoryInterface,
	logger *zap.Logger,
) ReportServiceInterface {
	return &ReportService{
		associationRepo:     associationRepo,
		associationTypeRepo: associationTypeRepo,
		planRepo:            planRepo,
		logger:              logger,
	}
}

func (s *ReportService) BuildAssociationReport(ctx context.Context, f rules.FilterOptions, search rules.SearchOptions) ([]ReportRow, error) {
	list, err := s.associationRepo.GetAssociationsDetailed(ctx)
	if err != nil {
		return nil, err
	}
	list = rules.FilterAssociations(list, f, search)

	typeNames := map[uint64]string{}
	if types, err := s.associationTypeRepo.GetAssociationTypes(ctx); err == nil {
		for _, t := range types {
			typeNames[t.ID] = t.Name
		}
	} else {
		s.logger.Warn("erro ao carregar tipos de associação para o relatório", zap.Error(err))
	}

	planNames := map[uint64]string{}
	if plans, err := s.planRepo.GetPlans(ctx); err == nil {
		for _, p := range plans {
			planNames[p.ID] = p.Name
		}
	} else {
		s.logger.Warn("erro ao carregar planos para o relatório", zap.Error(err))
	}

	rows := make([]ReportRow, 0, len(list))
	for _, a := range list {
		row := ReportRow{
			AssociationID:   a.ID,
			AssociationType: typeNames[a.AssociationTypeID],
			EntryDate:       a.EntryDate.Format("02/01/2006"),
			Status:          statusLabel(a.Status),
			Notes:           utils.SafeDeref(a.Notes),
			PlanGB:          a.PlanGB,
		}
		if a.Client != nil {
			row.ClientName = a.Client.Name
		}
		if a.Equipment != nil {
			row.EquipmentLabel = a.Equipment.Label()
		}
		if a.Chip != nil {
			row.ChipLabel = a.Chip.Label()
			row.ChipKind = chipKindLabel(rules.ClassifyChip(a))
		}
		if a.PlanID != nil {
			row.PlanName = planNames[*a.PlanID]
		}
		if a.ExitDate != nil {
			row.ExitDate = a.ExitDate.Format("02/01/2006")
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func statusLabel(active bool) string {
	if active {
		return "Ativa"
	}
	return "Encerrada"
}

func chipKindLabel(kind rules.ChipKind) string {
	switch kind {
	case rules.ChipKindPrincipal:
		return "Principal"
	case rules.ChipKindBackup:
		return "Backup"
	default:
		return ""
	}
}
