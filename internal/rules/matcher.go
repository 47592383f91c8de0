package rules

// SelectedAsset é a representação transitória de um ativo escolhido no
// assistente de criação. Só existe durante a sessão do assistente; é
// descartada no envio ou no cancelamento.
type SelectedAsset struct {
	ID         uint64  `json:"id"`
	Type       string  `json:"type"`
	SolutionID *uint64 `json:"solution_id"`
	Label      string  `json:"label"`

	// Intenção explícita do usuário ao escolher um chip específico.
	AssociatedEquipmentID *uint64 `json:"associated_equipment_id,omitempty"`
	AssociatedChipID      *uint64 `json:"associated_chip_id,omitempty"`
	IsPrincipalChip       bool    `json:"is_principal_chip,omitempty"`

	// Configuração livre capturada no assistente.
	SSID     *string `json:"ssid,omitempty"`
	Password *string `json:"password,omitempty"`
	GB       *int    `json:"gb,omitempty"`
}

// MatchResult é o resultado de um passe completo do pareador.
type MatchResult struct {
	// Pairs mapeia cada equipamento pareado ao seu chip (explícito ou
	// automático).
	Pairs map[uint64]uint64 `json:"pairs"`
	// AutoPairs é o subconjunto de Pairs resolvido pelo pareamento
	// automático por ordem estável.
	AutoPairs map[uint64]uint64 `json:"auto_pairs"`
	// UnpairedEquipment lista, na ordem da seleção, os equipamentos que
	// exigem chip e ficaram sem par porque os chips acabaram.
	UnpairedEquipment []SelectedAsset `json:"unpaired_equipment"`
	// UnpairedChips lista os chips que não entraram em nenhum par.
	UnpairedChips []SelectedAsset `json:"unpaired_chips"`
}

// MatchChips pareia equipamentos que exigem chip com os chips da seleção.
// Vínculos explícitos (associated_chip_id no equipamento, ou
// associated_equipment_id no chip) sempre vencem; o pareamento automático é
// apenas um fallback determinístico na ordem da seleção: o primeiro
// equipamento livre fica com o primeiro chip livre.
func MatchChips(selection []SelectedAsset) MatchResult {
	result := MatchResult{
		Pairs:     make(map[uint64]uint64),
		AutoPairs: make(map[uint64]uint64),
	}

	var equipments []SelectedAsset
	chipByID := make(map[uint64]SelectedAsset)
	var chips []SelectedAsset
	for _, a := range selection {
		if IsChip(a.SolutionID) {
			chips = append(chips, a)
			chipByID[a.ID] = a
		} else {
			equipments = append(equipments, a)
		}
	}

	consumed := make(map[uint64]bool)

	// Passo 1: vínculo direto equipamento → chip.
	// Passo 2: vínculo reverso chip → equipamento.
	var pending []SelectedAsset
	for _, eq := range equipments {
		if !NeedsChip(eq.SolutionID) {
			continue
		}

		if eq.AssociatedChipID != nil {
			if _, ok := chipByID[*eq.AssociatedChipID]; ok && !consumed[*eq.AssociatedChipID] {
				result.Pairs[eq.ID] = *eq.AssociatedChipID
				consumed[*eq.AssociatedChipID] = true
				continue
			}
		}

		reversed := false
		for _, chip := range chips {
			if consumed[chip.ID] {
				continue
			}
			if chip.AssociatedEquipmentID != nil && *chip.AssociatedEquipmentID == eq.ID {
				result.Pairs[eq.ID] = chip.ID
				consumed[chip.ID] = true
				reversed = true
				break
			}
		}
		if !reversed {
			pending = append(pending, eq)
		}
	}

	// Passo 3: fallback automático por ordem estável. Chips que apontam para
	// outro equipamento não entram no fallback.
	for _, eq := range pending {
		paired := false
		for _, chip := range chips {
			if consumed[chip.ID] || chip.AssociatedEquipmentID != nil {
				continue
			}
			result.Pairs[eq.ID] = chip.ID
			result.AutoPairs[eq.ID] = chip.ID
			consumed[chip.ID] = true
			paired = true
			break
		}
		if !paired {
			result.UnpairedEquipment = append(result.UnpairedEquipment, eq)
		}
	}

	for _, chip := range chips {
		if !consumed[chip.ID] {
			result.UnpairedChips = append(result.UnpairedChips, chip)
		}
	}

	return result
}
