package rules

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"asset-system/internal/entities"
	"asset-system/pkg/utils"
)

func assetEquipment(id uint64, solutionID *uint64, radio string) *entities.Asset {
	return &entities.Asset{
		ID:         id,
		Type:       entities.AssetTypeEquipment,
		SolutionID: solutionID,
		Radio:      utils.ToPtr(radio),
	}
}

func assetChip(id uint64, iccid string, manufacturerID uint64) *entities.Asset {
	return &entities.Asset{
		ID:             id,
		Type:           entities.AssetTypeChip,
		SolutionID:     utils.ToPtr(SolutionChip),
		ManufacturerID: utils.ToPtr(manufacturerID),
		ICCID:          utils.ToPtr(iccid),
	}
}

func assoc(clientID, clientName string, status bool, opts ...func(*entities.Association)) entities.Association {
	created := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	a := entities.Association{
		ClientID:          clientID,
		AssociationTypeID: 1,
		EntryDate:         time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		Status:            status,
		Client:            &entities.Client{UUID: clientID, Name: clientName},
	}
	a.CreatedAt = &created
	for _, opt := range opts {
		opt(&a)
	}
	return a
}

func withEquipment(e *entities.Asset) func(*entities.Association) {
	return func(a *entities.Association) {
		a.Equipment = e
		a.EquipmentID = &e.ID
	}
}

func withChip(c *entities.Asset) func(*entities.Association) {
	return func(a *entities.Association) {
		a.Chip = c
		a.ChipID = &c.ID
	}
}

func withCreatedAt(t time.Time) func(*entities.Association) {
	return func(a *entities.Association) {
		a.CreatedAt = &t
	}
}

func withEntryDate(t time.Time) func(*entities.Association) {
	return func(a *entities.Association) {
		a.EntryDate = t
	}
}

func TestGroupAssociations_BasicGroupingAndCounters(t *testing.T) {
	list := []entities.Association{
		assoc("A", "Alfa Ltda", true),
		assoc("A", "Alfa Ltda", false),
		assoc("B", "Beta SA", true),
	}

	groups := GroupAssociations(list, FilterOptions{}, SearchOptions{})

	require.Len(t, groups, 2)
	assert.Equal(t, "Alfa Ltda", groups[0].Client.Name)
	assert.Equal(t, 2, groups[0].TotalAssociations)
	assert.Equal(t, 1, groups[0].ActiveAssociations)
	assert.Equal(t, 1, groups[0].InactiveAssociations)
	assert.True(t, groups[0].Associations[0].Status, "a associação ativa vem primeiro")
	assert.Equal(t, "Beta SA", groups[1].Client.Name)
}

func TestGroupAssociations_GroupsSortedByClientNameCaseInsensitive(t *testing.T) {
	list := []entities.Association{
		assoc("C", "zeta", true),
		assoc("A", "Beta", true),
		assoc("B", "alfa", true),
	}

	groups := GroupAssociations(list, FilterOptions{}, SearchOptions{})

	require.Len(t, groups, 3)
	assert.Equal(t, "alfa", groups[0].Client.Name)
	assert.Equal(t, "Beta", groups[1].Client.Name)
	assert.Equal(t, "zeta", groups[2].Client.Name)
}

func TestGroupAssociations_EmptyGroupsDropped(t *testing.T) {
	list := []entities.Association{
		assoc("A", "Alfa", true),
		assoc("B", "Beta", false),
	}

	groups := GroupAssociations(list, FilterOptions{Status: StatusFilterActive}, SearchOptions{})

	require.Len(t, groups, 1)
	assert.Equal(t, "Alfa", groups[0].Client.Name)
}

func TestGroupAssociations_SortWithinGroup(t *testing.T) {
	older := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	newer := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)

	chipOnly := assoc("A", "Alfa", true, withChip(assetChip(50, "89550000", 1)))
	priorityEq := assoc("A", "Alfa", true, withEquipment(assetEquipment(1, utils.ToPtr(uint64(1)), "R1")))
	otherEq := assoc("A", "Alfa", true, withEquipment(assetEquipment(2, utils.ToPtr(uint64(7)), "R2")))
	noSolutionEq := assoc("A", "Alfa", true, withEquipment(assetEquipment(3, nil, "R3")))
	inactive := assoc("A", "Alfa", false, withEquipment(assetEquipment(4, utils.ToPtr(uint64(1)), "R4")))
	tieOld := assoc("A", "Alfa", true, withEquipment(assetEquipment(5, utils.ToPtr(uint64(2)), "R5")), withCreatedAt(older))
	tieNew := assoc("A", "Alfa", true, withEquipment(assetEquipment(6, utils.ToPtr(uint64(4)), "R6")), withCreatedAt(newer))

	list := []entities.Association{inactive, chipOnly, otherEq, noSolutionEq, tieOld, priorityEq, tieNew}

	groups := GroupAssociations(list, FilterOptions{}, SearchOptions{})
	require.Len(t, groups, 1)
	got := groups[0].Associations
	require.Len(t, got, 7)

	// Ativas primeiro; dentro delas, prioridade 0 < 2 < 3 < 4; empate em
	// prioridade resolvido por created_at decrescente.
	assert.Equal(t, uint64(6), got[0].Equipment.ID, "prioridade 0, mais recente")
	assert.Equal(t, uint64(1), got[1].Equipment.ID)
	assert.Equal(t, uint64(5), got[2].Equipment.ID, "prioridade 0, mais antiga")
	assert.Equal(t, uint64(2), got[3].Equipment.ID, "prioridade 2")
	assert.Equal(t, uint64(3), got[4].Equipment.ID, "prioridade 3")
	assert.Nil(t, got[5].Equipment, "só chip, prioridade 4")
	assert.False(t, got[6].Status, "inativa por último")
}

func TestFilterAssociations_StatusFacetsArePartition(t *testing.T) {
	list := []entities.Association{
		assoc("A", "Alfa", true),
		assoc("A", "Alfa", false),
		assoc("B", "Beta", true),
		assoc("C", "Gama", false),
	}

	active := FilterAssociations(list, FilterOptions{Status: StatusFilterActive}, SearchOptions{})
	inactive := FilterAssociations(list, FilterOptions{Status: StatusFilterInactive}, SearchOptions{})

	assert.Len(t, active, 2)
	assert.Len(t, inactive, 2)
	assert.Equal(t, len(list), len(active)+len(inactive), "as facetas active/inactive particionam a lista")
}

func TestFilterAssociations_AssetTypeFacet(t *testing.T) {
	priority := assoc("A", "Alfa", true, withEquipment(assetEquipment(1, utils.ToPtr(uint64(2)), "R1")))
	other := assoc("A", "Alfa", true, withEquipment(assetEquipment(2, utils.ToPtr(uint64(9)), "R2")))
	chipOnly := assoc("A", "Alfa", true, withChip(assetChip(3, "89550001", 1)))

	list := []entities.Association{priority, other, chipOnly}

	got := FilterAssociations(list, FilterOptions{AssetType: AssetTypeFilterPriority}, SearchOptions{})
	require.Len(t, got, 1)
	assert.Equal(t, uint64(1), got[0].Equipment.ID)

	got = FilterAssociations(list, FilterOptions{AssetType: AssetTypeFilterOthers}, SearchOptions{})
	require.Len(t, got, 2, "o complemento inclui associações só de chip")
}

func TestFilterAssociations_ManufacturerFacetLooksAtChipOnly(t *testing.T) {
	withVivo := assoc("A", "Alfa", true, withChip(assetChip(1, "89550001", 10)))
	withClaro := assoc("A", "Alfa", true, withChip(assetChip(2, "89550002", 20)))
	equipmentOnly := assoc("A", "Alfa", true, withEquipment(assetEquipment(3, utils.ToPtr(uint64(1)), "R1")))

	list := []entities.Association{withVivo, withClaro, equipmentOnly}

	got := FilterAssociations(list, FilterOptions{ManufacturerID: utils.ToPtr(uint64(10))}, SearchOptions{})
	require.Len(t, got, 1)
	assert.Equal(t, uint64(1), *got[0].ChipID)
}

func TestFilterAssociations_DateRangeInclusive(t *testing.T) {
	d1 := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC)
	d3 := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	list := []entities.Association{
		assoc("A", "Alfa", true, withEntryDate(d1)),
		assoc("A", "Alfa", true, withEntryDate(d2)),
		assoc("A", "Alfa", true, withEntryDate(d3)),
	}

	got := FilterAssociations(list, FilterOptions{DateStart: &d2}, SearchOptions{})
	assert.Len(t, got, 2, "o limite inferior é inclusivo")

	got = FilterAssociations(list, FilterOptions{DateStart: &d1, DateEnd: &d2}, SearchOptions{})
	assert.Len(t, got, 2)
}

func TestFilterAssociations_Search(t *testing.T) {
	byName := assoc("A", "Transportadora Andrade", true)
	byICCID := assoc("B", "Beta", true, withChip(assetChip(1, "8955123456789012345", 1)))
	byRadio := assoc("C", "Gama", true, withEquipment(assetEquipment(2, utils.ToPtr(uint64(1)), "RDX-7701")))

	list := []entities.Association{byName, byICCID, byRadio}

	got := FilterAssociations(list, FilterOptions{}, SearchOptions{Query: "andrade", Type: SearchTypeAll})
	require.Len(t, got, 1)
	assert.Equal(t, "A", got[0].ClientID)

	// Sufixo de 5 dígitos do ICCID.
	got = FilterAssociations(list, FilterOptions{}, SearchOptions{Query: "12345", Type: SearchTypeAll})
	require.Len(t, got, 1)
	assert.Equal(t, "B", got[0].ClientID)

	got = FilterAssociations(list, FilterOptions{}, SearchOptions{Query: "rdx", Type: SearchTypeRadio})
	require.Len(t, got, 1)
	assert.Equal(t, "C", got[0].ClientID)

	// Busca restrita a cliente não encontra pelo radio.
	got = FilterAssociations(list, FilterOptions{}, SearchOptions{Query: "rdx", Type: SearchTypeClient})
	assert.Empty(t, got)
}

func TestGroupAssociations_Idempotent(t *testing.T) {
	list := []entities.Association{
		assoc("A", "Alfa", true, withEquipment(assetEquipment(1, utils.ToPtr(uint64(1)), "R1"))),
		assoc("B", "Beta", false, withChip(assetChip(2, "89550002", 1))),
		assoc("A", "Alfa", false),
	}
	f := FilterOptions{Status: StatusFilterAll}
	s := SearchOptions{}

	first := GroupAssociations(list, f, s)
	second := GroupAssociations(list, f, s)

	assert.Equal(t, first, second)
}
