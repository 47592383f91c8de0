package rules

import "asset-system/internal/entities"

// ChipKind é a classificação derivada do chip em uma associação. Nunca é
// persistida; é função pura das duas chaves estrangeiras do registro.
type ChipKind string

const (
	ChipKindPrincipal ChipKind = "principal"
	ChipKindBackup    ChipKind = "backup"
	ChipKindNone      ChipKind = "none"
)

// ClassifyChip devolve principal quando a associação carrega equipamento e
// chip, backup quando só carrega chip, e none nos demais casos.
func ClassifyChip(a entities.Association) ChipKind {
	switch {
	case a.EquipmentID != nil && a.ChipID != nil:
		return ChipKindPrincipal
	case a.ChipID != nil:
		return ChipKindBackup
	default:
		return ChipKindNone
	}
}

// Summary são os contadores agregados exibidos no painel.
type Summary struct {
	TotalClients         int `json:"total_clients"`
	ActiveAssociations   int `json:"active_associations"`
	InactiveAssociations int `json:"inactive_associations"`
	PrincipalChips       int `json:"principal_chips"`
	BackupChips          int `json:"backup_chips"`
	EquipmentOnly        int `json:"equipment_only"`
}

// Summarize percorre a lista uma única vez e computa os contadores.
func Summarize(list []entities.Association) Summary {
	var s Summary
	clients := make(map[string]bool)

	for _, a := range list {
		if !clients[a.ClientID] {
			clients[a.ClientID] = true
			s.TotalClients++
		}

		if a.Status {
			s.ActiveAssociations++
		} else {
			s.InactiveAssociations++
		}

		switch ClassifyChip(a) {
		case ChipKindPrincipal:
			s.PrincipalChips++
		case ChipKindBackup:
			s.BackupChips++
		default:
			if a.EquipmentID != nil {
				s.EquipmentOnly++
			}
		}
	}

	return s
}
