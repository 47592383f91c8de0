package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"asset-system/internal/entities"
	"asset-system/pkg/utils"
)

func TestClassifyChip(t *testing.T) {
	eqID := utils.ToPtr(uint64(1))
	chipID := utils.ToPtr(uint64(2))

	tests := []struct {
		name string
		a    entities.Association
		want ChipKind
	}{
		{"equipamento e chip é principal", entities.Association{EquipmentID: eqID, ChipID: chipID}, ChipKindPrincipal},
		{"só chip é backup", entities.Association{ChipID: chipID}, ChipKindBackup},
		{"só equipamento é none", entities.Association{EquipmentID: eqID}, ChipKindNone},
		{"vazio é none", entities.Association{}, ChipKindNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyChip(tt.a))
		})
	}
}

func TestSummarize(t *testing.T) {
	eqID := utils.ToPtr(uint64(1))
	chipID := utils.ToPtr(uint64(2))

	list := []entities.Association{
		{ClientID: "A", Status: true, EquipmentID: eqID, ChipID: chipID},
		{ClientID: "A", Status: false, ChipID: chipID},
		{ClientID: "B", Status: true, EquipmentID: eqID},
		{ClientID: "C", Status: true, ChipID: chipID},
	}

	s := Summarize(list)

	assert.Equal(t, 3, s.TotalClients)
	assert.Equal(t, 3, s.ActiveAssociations)
	assert.Equal(t, 1, s.InactiveAssociations)
	assert.Equal(t, 1, s.PrincipalChips)
	assert.Equal(t, 2, s.BackupChips)
	assert.Equal(t, 1, s.EquipmentOnly)
}

func TestSummarize_Empty(t *testing.T) {
	assert.Equal(t, Summary{}, Summarize(nil))
}
