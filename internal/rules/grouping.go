package rules

import (
	"sort"
	"strings"
	"time"

	"asset-system/internal/entities"
)

const (
	StatusFilterAll      = "all"
	StatusFilterActive   = "active"
	StatusFilterInactive = "inactive"

	AssetTypeFilterAll      = "all"
	AssetTypeFilterPriority = "priority"
	AssetTypeFilterOthers   = "others"

	SearchTypeAll    = "all"
	SearchTypeClient = "client"
	SearchTypeICCID  = "iccid"
	SearchTypeRadio  = "radio"
)

// FilterOptions são os filtros facetados da listagem de associações.
// Valor zero em cada campo significa "sem filtro".
type FilterOptions struct {
	Status            string     `json:"status"`
	AssociationTypeID *uint64    `json:"association_type_id"`
	AssetType         string     `json:"asset_type"`
	ManufacturerID    *uint64    `json:"manufacturer_id"`
	DateStart         *time.Time `json:"date_start"`
	DateEnd           *time.Time `json:"date_end"`
}

// SearchOptions é a busca textual livre da listagem.
type SearchOptions struct {
	Query string `json:"query"`
	Type  string `json:"type"`
}

// AssociationGroup é o agregado derivado de um cliente e suas associações.
// Nunca é persistido; é recalculado em toda leitura.
type AssociationGroup struct {
	Client               entities.Client        `json:"client"`
	Associations         []entities.Association `json:"associations"`
	TotalAssociations    int                    `json:"total_associations"`
	ActiveAssociations   int                    `json:"active_associations"`
	InactiveAssociations int                    `json:"inactive_associations"`
}

// FilterAssociations aplica todas as facetas e a busca textual sobre a lista.
func FilterAssociations(list []entities.Association, f FilterOptions, s SearchOptions) []entities.Association {
	out := make([]entities.Association, 0, len(list))
	for _, a := range list {
		if !matchesFilters(a, f) {
			continue
		}
		if !matchesSearch(a, s) {
			continue
		}
		out = append(out, a)
	}
	return out
}

func matchesFilters(a entities.Association, f FilterOptions) bool {
	switch f.Status {
	case StatusFilterActive:
		if !a.Status {
			return false
		}
	case StatusFilterInactive:
		if a.Status {
			return false
		}
	}

	if f.AssociationTypeID != nil && a.AssociationTypeID != *f.AssociationTypeID {
		return false
	}

	switch f.AssetType {
	case AssetTypeFilterPriority:
		if a.Equipment == nil || !NeedsChip(a.Equipment.SolutionID) {
			return false
		}
	case AssetTypeFilterOthers:
		// Complemento: equipamentos independentes e associações só de chip.
		if a.Equipment != nil && NeedsChip(a.Equipment.SolutionID) {
			return false
		}
	}

	// A faceta de fabricante olha só o fabricante do chip na listagem.
	if f.ManufacturerID != nil {
		if a.Chip == nil || a.Chip.ManufacturerID == nil || *a.Chip.ManufacturerID != *f.ManufacturerID {
			return false
		}
	}

	if f.DateStart != nil && a.EntryDate.Before(*f.DateStart) {
		return false
	}
	if f.DateEnd != nil && a.EntryDate.After(*f.DateEnd) {
		return false
	}

	return true
}

func matchesSearch(a entities.Association, s SearchOptions) bool {
	term := strings.ToLower(strings.TrimSpace(s.Query))
	if term == "" {
		return true
	}

	switch s.Type {
	case SearchTypeClient:
		return clientNameContains(a, term)
	case SearchTypeICCID:
		return chipICCIDMatches(a, term)
	case SearchTypeRadio:
		return radioContains(a, term)
	default:
		return clientNameContains(a, term) || chipICCIDMatches(a, term) || radioContains(a, term)
	}
}

func clientNameContains(a entities.Association, term string) bool {
	return a.Client != nil && strings.Contains(strings.ToLower(a.Client.Name), term)
}

// chipICCIDMatches aceita substring do ICCID ou o sufixo de 5–6 dígitos, que
// é como os chips são ditados por telefone.
func chipICCIDMatches(a entities.Association, term string) bool {
	if a.Chip == nil || a.Chip.ICCID == nil {
		return false
	}
	iccid := strings.ToLower(*a.Chip.ICCID)
	if strings.Contains(iccid, term) {
		return true
	}
	if len(term) == 5 || len(term) == 6 {
		return strings.HasSuffix(iccid, term)
	}
	return false
}

func radioContains(a entities.Association, term string) bool {
	return a.Equipment != nil && a.Equipment.Radio != nil &&
		strings.Contains(strings.ToLower(*a.Equipment.Radio), term)
}

// sortPriority define a ordem dos ativos dentro de um grupo: equipamentos
// prioritários primeiro, depois os demais equipamentos, equipamentos sem
// solution_id e por fim associações só de chip.
func sortPriority(a entities.Association) int {
	if a.Equipment == nil {
		return 4
	}
	if a.Equipment.SolutionID == nil {
		return 3
	}
	if NeedsChip(a.Equipment.SolutionID) {
		return 0
	}
	return 2
}

// GroupAssociations filtra, agrupa por cliente com contadores e ordena.
// Grupos que ficarem vazios após os filtros não aparecem no resultado.
func GroupAssociations(list []entities.Association, f FilterOptions, s SearchOptions) []AssociationGroup {
	filtered := FilterAssociations(list, f, s)

	index := make(map[string]int)
	groups := make([]AssociationGroup, 0)

	for _, a := range filtered {
		i, ok := index[a.ClientID]
		if !ok {
			g := AssociationGroup{}
			if a.Client != nil {
				g.Client = *a.Client
			} else {
				g.Client = entities.Client{UUID: a.ClientID}
			}
			groups = append(groups, g)
			i = len(groups) - 1
			index[a.ClientID] = i
		}

		groups[i].Associations = append(groups[i].Associations, a)
		groups[i].TotalAssociations++
		if a.Status {
			groups[i].ActiveAssociations++
		} else {
			groups[i].InactiveAssociations++
		}
	}

	for i := range groups {
		sortWithinGroup(groups[i].Associations)
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return strings.ToLower(groups[i].Client.Name) < strings.ToLower(groups[j].Client.Name)
	})

	return groups
}

// sortWithinGroup ordena por: ativas antes de inativas, prioridade do ativo
// crescente e, em empate, criação mais recente primeiro.
func sortWithinGroup(list []entities.Association) {
	sort.SliceStable(list, func(i, j int) bool {
		if list[i].Status != list[j].Status {
			return list[i].Status
		}

		pi, pj := sortPriority(list[i]), sortPriority(list[j])
		if pi != pj {
			return pi < pj
		}

		ci, cj := list[i].CreatedAt, list[j].CreatedAt
		if ci == nil || cj == nil {
			return cj == nil && ci != nil
		}
		return ci.After(*cj)
	})
}
