package rules

import (
	"fmt"
	"time"
)

// Selection é o estado corrente do assistente de criação de associação.
type Selection struct {
	ClientID          string         `json:"client_id"`
	Assets            []SelectedAsset `json:"assets"`
	EntryDate         *time.Time     `json:"entry_date"`
	AssociationTypeID *uint64        `json:"association_type_id"`
	PlanID            *uint64        `json:"plan_id,omitempty"`
	Notes             *string        `json:"notes,omitempty"`
}

// ValidationResult é devolvido ao chamador; erros bloqueiam o envio,
// avisos e sugestões nunca bloqueiam.
type ValidationResult struct {
	IsValid     bool     `json:"is_valid"`
	Errors      []string `json:"errors"`
	Warnings    []string `json:"warnings"`
	Suggestions []string `json:"suggestions"`
}

// ValidateSelection roda todas as regras de negócio sobre a seleção corrente.
// As regras são independentes: todas são avaliadas, nenhuma interrompe as
// demais. A função é pura e síncrona; é recalculada a cada mudança de estado.
func ValidateSelection(sel Selection) ValidationResult {
	result := ValidationResult{
		Errors:      []string{},
		Warnings:    []string{},
		Suggestions: []string{},
	}

	if sel.ClientID == "" {
		result.Errors = append(result.Errors, "Selecione um cliente para a associação")
	}

	if len(sel.Assets) == 0 {
		result.Errors = append(result.Errors, "Selecione pelo menos um ativo")
	}

	if sel.EntryDate == nil {
		result.Errors = append(result.Errors, "Informe a data de entrada")
	}

	if sel.AssociationTypeID == nil {
		result.Errors = append(result.Errors, "Selecione o tipo de associação")
	}

	match := MatchChips(sel.Assets)

	// Equipamentos que exigem chip e ficaram sem par depois do fallback
	// automático: um erro e uma sugestão por item. Se houver chips livres em
	// quantidade suficiente o fallback resolve tudo e nada disso dispara.
	for _, eq := range match.UnpairedEquipment {
		result.Errors = append(result.Errors,
			fmt.Sprintf("O equipamento %s precisa de um chip associado", eq.Label))
		result.Suggestions = append(result.Suggestions,
			fmt.Sprintf("Selecione um chip para %s", eq.Label))
	}

	if len(match.UnpairedEquipment) == 0 && len(match.AutoPairs) > 0 {
		result.Suggestions = append(result.Suggestions,
			fmt.Sprintf("%d pareamento(s) chip-equipamento serão resolvidos automaticamente na ordem da seleção", len(match.AutoPairs)))
	}

	// Chips sem par e não marcados como principais viram chips backup.
	for _, chip := range match.UnpairedChips {
		if chip.IsPrincipalChip {
			continue
		}
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("O chip %s será tratado como chip backup", chip.Label))
	}

	result.IsValid = len(result.Errors) == 0
	return result
}
