package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"asset-system/pkg/utils"
)

func TestClassification(t *testing.T) {
	tests := []struct {
		name       string
		solutionID *uint64
		isChip     bool
		needsChip  bool
	}{
		{"M2M Plus exige chip", utils.ToPtr(uint64(1)), false, true},
		{"Link Plus exige chip", utils.ToPtr(uint64(2)), false, true},
		{"solução 3 é independente", utils.ToPtr(uint64(3)), false, false},
		{"WiFi Plus exige chip", utils.ToPtr(uint64(4)), false, true},
		{"solução 11 é chip", utils.ToPtr(uint64(11)), true, false},
		{"solução desconhecida é independente", utils.ToPtr(uint64(99)), false, false},
		{"sem solution_id é independente", nil, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.isChip, IsChip(tt.solutionID))
			assert.Equal(t, tt.needsChip, NeedsChip(tt.solutionID))
			assert.Equal(t, !tt.needsChip, CanBeAssociatedAlone(tt.solutionID))
		})
	}
}

func TestClassificationMutuallyExclusive(t *testing.T) {
	for id := uint64(0); id <= 20; id++ {
		sid := utils.ToPtr(id)
		assert.False(t, IsChip(sid) && NeedsChip(sid),
			"solution_id %d não pode ser chip e exigir chip ao mesmo tempo", id)
	}
}
