package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"asset-system/internal/dto"
	"asset-system/internal/entities"
	"asset-system/internal/rules"
)

type fakeAssociationTypeRepo struct {
	types []entities.AssociationType
}

func (f *fakeAssociationTypeRepo) GetAssociationTypes(ctx context.Context) ([]entities.AssociationType, error) {
	return f.types, nil
}

func (f *fakeAssociationTypeRepo) FindAssociationType(ctx context.Context, id uint64) (*entities.AssociationType, error) {
	return nil, nil
}

func (f *fakeAssociationTypeRepo) CreateAssociationType(ctx context.Context, payload dto.CreateAssociationTypeDTO) error {
	return nil
}

func (f *fakeAssociationTypeRepo) UpdateAssociationType(ctx context.Context, id uint64, payload dto.UpdateAssociationTypeDTO) error {
	return nil
}

type fakePlanRepo struct {
	plans []entities.Plan
}

func (f *fakePlanRepo) GetPlans(ctx context.Context) ([]entities.Plan, error) {
	return f.plans, nil
}

func (f *fakePlanRepo) FindPlan(ctx context.Context, id uint64) (*entities.Plan, error) {
	return nil, nil
}

func (f *fakePlanRepo) CreatePlan(ctx context.Context, payload dto.CreatePlanDTO) error { return nil }

func (f *fakePlanRepo) UpdatePlan(ctx context.Context, id uint64, payload dto.UpdatePlanDTO) error {
	return nil
}

func (f *fakePlanRepo) DeletePlan(ctx context.Context, id uint64) error { return nil }

func TestBuildAssociationReportResolvesNamesAndChipRole(t *testing.T) {
	eqID := uint64(1)
	chipID := uint64(2)
	backupChipID := uint64(3)
	planID := uint64(4)
	exit := time.Date(2026, 4, 15, 0, 0, 0, 0, time.UTC)

	assocRepo := &fakeAssociationRepo{
		detailed: []entities.Association{
			{
				ID: 10, ClientID: testClientID, EquipmentID: &eqID, ChipID: &chipID,
				AssociationTypeID: 1, PlanID: &planID, Status: true,
				EntryDate: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
				Client:    &entities.Client{UUID: testClientID, Name: "Fazenda Santa Luzia"},
				Equipment: &entities.Asset{ID: eqID, Type: entities.AssetTypeEquipment, Radio: ptrStr("RUT-0001")},
				Chip:      &entities.Asset{ID: chipID, Type: entities.AssetTypeChip, ICCID: ptrStr("895511000000000001")},
			},
			{
				ID: 11, ClientID: testClientID, ChipID: &backupChipID,
				AssociationTypeID: 2, Status: false,
				EntryDate: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
				ExitDate:  &exit,
				Client:    &entities.Client{UUID: testClientID, Name: "Fazenda Santa Luzia"},
				Chip:      &entities.Asset{ID: backupChipID, Type: entities.AssetTypeChip, ICCID: ptrStr("895511000000000002")},
			},
		},
	}

	svc := NewReportService(
		assocRepo,
		&fakeAssociationTypeRepo{types: []entities.AssociationType{{ID: 1, Name: "Aluguel"}, {ID: 2, Name: "Assinatura"}}},
		&fakePlanRepo{plans: []entities.Plan{{ID: planID, Name: "Plano 10GB"}}},
		zap.NewNop(),
	)

	rows, err := svc.BuildAssociationReport(context.Background(), rules.FilterOptions{}, rules.SearchOptions{})
	require.NoError(t, err)
	require.Len(t, rows, 2)

	principal := rows[0]
	assert.Equal(t, "Fazenda Santa Luzia", principal.ClientName)
	assert.Equal(t, "Aluguel", principal.AssociationType)
	assert.Equal(t, "RUT-0001", principal.EquipmentLabel)
	assert.Equal(t, "Principal", principal.ChipKind)
	assert.Equal(t, "Plano 10GB", principal.PlanName)
	assert.Equal(t, "Ativa", principal.Status)
	assert.Empty(t, principal.ExitDate)

	backup := rows[1]
	assert.Equal(t, "Assinatura", backup.AssociationType)
	assert.Empty(t, backup.EquipmentLabel)
	assert.Equal(t, "Backup", backup.ChipKind)
	assert.Equal(t, "Encerrada", backup.Status)
	assert.Equal(t, "15/04/2026", backup.ExitDate)
}

func TestBuildAssociationReportAppliesFilters(t *testing.T) {
	eqID := uint64(1)
	assocRepo := &fakeAssociationRepo{
		detailed: []entities.Association{
			{ID: 10, ClientID: testClientID, EquipmentID: &eqID, AssociationTypeID: 1, Status: true,
				EntryDate: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)},
			{ID: 11, ClientID: testClientID, EquipmentID: &eqID, AssociationTypeID: 1, Status: false,
				EntryDate: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)},
		},
	}

	svc := NewReportService(assocRepo, &fakeAssociationTypeRepo{}, &fakePlanRepo{}, zap.NewNop())

	rows, err := svc.BuildAssociationReport(context.Background(),
		rules.FilterOptions{Status: rules.StatusFilterActive}, rules.SearchOptions{})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, uint64(10), rows[0].AssociationID)
}
