// Package rules concentra as regras de negócio puras do fluxo de associação:
// classificação de ativos por solution_id, pareamento chip↔equipamento,
// validação da seleção do assistente, agrupamento/filtragem da listagem e o
// resumo agregado. Nenhuma função aqui faz I/O; tudo é recalculado a cada
// chamada sobre os dados em memória.
package rules

// Códigos de solução que dirigem as regras. Mantidos em um único lugar para
// que matcher, validador e filtros nunca divirjam.
const (
	SolutionM2MPlus   uint64 = 1
	SolutionLinkPlus  uint64 = 2
	SolutionWiFiPlus  uint64 = 4
	SolutionChip      uint64 = 11
)

// chipRequiredSolutions são as classes de equipamento que só funcionam
// pareadas com um chip.
var chipRequiredSolutions = map[uint64]bool{
	SolutionM2MPlus:  true,
	SolutionLinkPlus: true,
	SolutionWiFiPlus: true,
}

// IsChip informa se o solution_id identifica um chip.
func IsChip(solutionID *uint64) bool {
	return solutionID != nil && *solutionID == SolutionChip
}

// NeedsChip informa se o solution_id identifica um equipamento que exige chip.
// Qualquer outro valor (inclusive ausente) é equipamento independente.
func NeedsChip(solutionID *uint64) bool {
	return solutionID != nil && chipRequiredSolutions[*solutionID]
}

// CanBeAssociatedAlone é a negação de NeedsChip.
func CanBeAssociatedAlone(solutionID *uint64) bool {
	return !NeedsChip(solutionID)
}
