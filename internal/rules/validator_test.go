package rules

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"asset-system/pkg/utils"
)

func validSelection(assets ...SelectedAsset) Selection {
	return Selection{
		ClientID:          "c0a80121-0001-4000-8000-000000000001",
		Assets:            assets,
		EntryDate:         utils.ToPtr(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)),
		AssociationTypeID: utils.ToPtr(uint64(1)),
	}
}

func TestValidateSelection_EmptySelection(t *testing.T) {
	result := ValidateSelection(Selection{})

	assert.False(t, result.IsValid)
	// Todas as regras rodam de forma independente, nenhuma corta as demais.
	assert.Len(t, result.Errors, 4)
	assert.Contains(t, result.Errors, "Selecione um cliente para a associação")
	assert.Contains(t, result.Errors, "Selecione pelo menos um ativo")
	assert.Contains(t, result.Errors, "Informe a data de entrada")
	assert.Contains(t, result.Errors, "Selecione o tipo de associação")
}

func TestValidateSelection_PairedEquipmentAndChip(t *testing.T) {
	result := ValidateSelection(validSelection(equipment(1, 1), chip(10)))

	assert.True(t, result.IsValid)
	assert.Empty(t, result.Errors)
	assert.Empty(t, result.Warnings)
	// O pareamento foi automático, então fica registrada a sugestão
	// informativa.
	require.Len(t, result.Suggestions, 1)
}

func TestValidateSelection_MissingChipsProduceOneErrorEach(t *testing.T) {
	e1 := equipment(1, 1)
	e2 := equipment(2, 2)
	result := ValidateSelection(validSelection(e1, e2))

	assert.False(t, result.IsValid)
	require.Len(t, result.Errors, 2)
	assert.Contains(t, result.Errors[0], e1.Label)
	assert.Contains(t, result.Errors[1], e2.Label)
	require.Len(t, result.Suggestions, 2)
	assert.Contains(t, result.Suggestions[0], e1.Label)
}

func TestValidateSelection_SufficientChipsSuppressErrors(t *testing.T) {
	// Leniência do pareamento: havendo chips livres suficientes, nenhum erro
	// é emitido mesmo sem vínculo explícito.
	result := ValidateSelection(validSelection(
		equipment(1, 1), equipment(2, 4), chip(10), chip(11),
	))

	assert.True(t, result.IsValid)
	assert.Empty(t, result.Errors)
	require.Len(t, result.Suggestions, 1)
	assert.Contains(t, result.Suggestions[0], "automaticamente")
}

func TestValidateSelection_ExcessEquipmentErrors(t *testing.T) {
	// Um chip para três equipamentos: exatamente um erro por equipamento
	// excedente.
	result := ValidateSelection(validSelection(
		equipment(1, 1), equipment(2, 2), equipment(3, 4), chip(10),
	))

	assert.False(t, result.IsValid)
	assert.Len(t, result.Errors, 2)
}

func TestValidateSelection_LooseChipBecomesBackupWarning(t *testing.T) {
	c := chip(10)
	result := ValidateSelection(validSelection(c))

	assert.True(t, result.IsValid, "aviso de backup nunca bloqueia o envio")
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], c.Label)
	assert.Contains(t, result.Warnings[0], "backup")
}

func TestValidateSelection_PrincipalChipWithoutPairNoWarning(t *testing.T) {
	c := chip(10)
	c.IsPrincipalChip = true
	result := ValidateSelection(validSelection(c))

	assert.True(t, result.IsValid)
	assert.Empty(t, result.Warnings)
}

func TestValidateSelection_StandaloneEquipment(t *testing.T) {
	// Solução fora de {1,2,4} pode ser associada sozinha.
	result := ValidateSelection(validSelection(equipment(1, 3)))

	assert.True(t, result.IsValid)
	assert.Empty(t, result.Errors)
	assert.Empty(t, result.Warnings)
	assert.Empty(t, result.Suggestions)
}
