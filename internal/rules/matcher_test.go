package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"asset-system/pkg/utils"
)

func equipment(id uint64, solutionID uint64) SelectedAsset {
	return SelectedAsset{
		ID:         id,
		Type:       "EQUIPMENT",
		SolutionID: utils.ToPtr(solutionID),
		Label:      "RADIO-" + string(rune('A'+id%26)),
	}
}

func chip(id uint64) SelectedAsset {
	return SelectedAsset{
		ID:         id,
		Type:       "CHIP",
		SolutionID: utils.ToPtr(SolutionChip),
		Label:      "8955000000000" + string(rune('0'+id%10)),
	}
}

func TestMatchChips_AutoMatchByStableOrder(t *testing.T) {
	selection := []SelectedAsset{
		equipment(1, 1),
		equipment(2, 2),
		chip(10),
		chip(11),
	}

	result := MatchChips(selection)

	require.Len(t, result.Pairs, 2)
	assert.Equal(t, uint64(10), result.Pairs[1], "primeiro equipamento livre leva o primeiro chip livre")
	assert.Equal(t, uint64(11), result.Pairs[2])
	assert.Len(t, result.AutoPairs, 2)
	assert.Empty(t, result.UnpairedEquipment)
	assert.Empty(t, result.UnpairedChips)
}

func TestMatchChips_ForwardLinkWins(t *testing.T) {
	eq := equipment(1, 1)
	eq.AssociatedChipID = utils.ToPtr(uint64(11))

	selection := []SelectedAsset{eq, chip(10), chip(11)}

	result := MatchChips(selection)

	// O pareamento automático escolheria o chip 10; o vínculo explícito
	// com o 11 tem que vencer.
	assert.Equal(t, uint64(11), result.Pairs[1])
	assert.Empty(t, result.AutoPairs)
	require.Len(t, result.UnpairedChips, 1)
	assert.Equal(t, uint64(10), result.UnpairedChips[0].ID)
}

func TestMatchChips_ReverseLinkWins(t *testing.T) {
	c := chip(11)
	c.AssociatedEquipmentID = utils.ToPtr(uint64(2))

	selection := []SelectedAsset{
		equipment(1, 1),
		equipment(2, 4),
		chip(10),
		c,
	}

	result := MatchChips(selection)

	assert.Equal(t, uint64(11), result.Pairs[2], "vínculo reverso chip→equipamento é honrado")
	assert.Equal(t, uint64(10), result.Pairs[1], "o restante cai no fallback automático")
	assert.Len(t, result.AutoPairs, 1)
}

func TestMatchChips_ChipPointingElsewhereIsSkipped(t *testing.T) {
	// O chip aponta para um equipamento fora da seleção: não pode ser
	// consumido pelo fallback automático.
	c := chip(10)
	c.AssociatedEquipmentID = utils.ToPtr(uint64(999))

	selection := []SelectedAsset{equipment(1, 1), c}

	result := MatchChips(selection)

	assert.Empty(t, result.Pairs)
	require.Len(t, result.UnpairedEquipment, 1)
	assert.Equal(t, uint64(1), result.UnpairedEquipment[0].ID)
	require.Len(t, result.UnpairedChips, 1)
}

func TestMatchChips_EquipmentWithoutChipRequirementIgnored(t *testing.T) {
	selection := []SelectedAsset{
		equipment(1, 3), // independente
		chip(10),
	}

	result := MatchChips(selection)

	assert.Empty(t, result.Pairs)
	assert.Empty(t, result.UnpairedEquipment)
	require.Len(t, result.UnpairedChips, 1)
}

func TestMatchChips_ChipsRunOut(t *testing.T) {
	selection := []SelectedAsset{
		equipment(1, 1),
		equipment(2, 2),
		equipment(3, 4),
		chip(10),
	}

	result := MatchChips(selection)

	require.Len(t, result.Pairs, 1)
	assert.Equal(t, uint64(10), result.Pairs[1])
	require.Len(t, result.UnpairedEquipment, 2)
	assert.Equal(t, uint64(2), result.UnpairedEquipment[0].ID)
	assert.Equal(t, uint64(3), result.UnpairedEquipment[1].ID)
}

func TestMatchChips_EqualCountsAllPaired(t *testing.T) {
	// Propriedade: com contagens iguais de equipamentos e chips livres, todo
	// equipamento sai pareado, na ordem estável da seleção.
	var selection []SelectedAsset
	for i := uint64(1); i <= 5; i++ {
		selection = append(selection, equipment(i, 1))
	}
	for i := uint64(10); i < 15; i++ {
		selection = append(selection, chip(i))
	}

	result := MatchChips(selection)

	require.Len(t, result.Pairs, 5)
	assert.Empty(t, result.UnpairedEquipment)
	for i := uint64(1); i <= 5; i++ {
		assert.Equal(t, uint64(9+i), result.Pairs[i])
	}
}
