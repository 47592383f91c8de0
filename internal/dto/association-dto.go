package dto

import (
	"time"

	"asset-system/internal/rules"
)

// SelectedAssetDTO espelha rules.SelectedAsset na borda HTTP.
type SelectedAssetDTO struct {
	ID                    uint64  `json:"id" validate:"required,gt=0"`
	Type                  string  `json:"type" validate:"required,oneof=CHIP EQUIPMENT"`
	SolutionID            *uint64 `json:"solution_id,omitempty"`
	Label                 string  `json:"label,omitempty"`
	AssociatedEquipmentID *uint64 `json:"associated_equipment_id,omitempty"`
	AssociatedChipID      *uint64 `json:"associated_chip_id,omitempty"`
	IsPrincipalChip       bool    `json:"is_principal_chip,omitempty"`
	SSID                  *string `json:"ssid,omitempty"`
	Password              *string `json:"password,omitempty"`
	GB                    *int    `json:"gb,omitempty"`
}

// CreateAssociationDTO é o payload do envio final do assistente. O mesmo
// corpo serve para o endpoint de validação ao vivo; lá os campos obrigatórios
// podem faltar, por isso a validação estrutural é mínima.
type CreateAssociationDTO struct {
	ClientID          string             `json:"client_id" validate:"omitempty,uuid4"`
	Assets            []SelectedAssetDTO `json:"assets" validate:"dive"`
	EntryDate         *string            `json:"entry_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	AssociationTypeID *uint64            `json:"association_type_id,omitempty" validate:"omitempty,gt=0"`
	PlanID            *uint64            `json:"plan_id,omitempty" validate:"omitempty,gt=0"`
	PlanGB            *int               `json:"plan_gb,omitempty" validate:"omitempty,gt=0"`
	Notes             *string            `json:"notes,omitempty" validate:"omitempty,max=2000"`
}

// ToSelection converte o payload para o estado que as regras entendem.
func (d CreateAssociationDTO) ToSelection() rules.Selection {
	sel := rules.Selection{
		ClientID:          d.ClientID,
		AssociationTypeID: d.AssociationTypeID,
		PlanID:            d.PlanID,
		Notes:             d.Notes,
	}
	for _, a := range d.Assets {
		sel.Assets = append(sel.Assets, rules.SelectedAsset{
			ID:                    a.ID,
			Type:                  a.Type,
			SolutionID:            a.SolutionID,
			Label:                 a.Label,
			AssociatedEquipmentID: a.AssociatedEquipmentID,
			AssociatedChipID:      a.AssociatedChipID,
			IsPrincipalChip:       a.IsPrincipalChip,
			SSID:                  a.SSID,
			Password:              a.Password,
			GB:                    a.GB,
		})
	}
	if d.EntryDate != nil {
		if t, err := time.Parse("2006-01-02", *d.EntryDate); err == nil {
			sel.EntryDate = &t
		}
	}
	return sel
}

// ValidationResponseDTO devolve o resultado do validador junto com o mapa de
// pareamento corrente, para a UI destacar os pares resolvidos.
type ValidationResponseDTO struct {
	Result rules.ValidationResult `json:"result"`
	Pairs  map[uint64]uint64      `json:"pairs"`
}

type EndAssociationDTO struct {
	ExitDate string  `json:"exit_date" validate:"required,datetime=2006-01-02"`
	Notes    *string `json:"notes,omitempty" validate:"omitempty,max=2000"`
}

// AppendAssetsDTO adiciona ativos a um agrupamento cliente+tipo+data já
// existente.
type AppendAssetsDTO struct {
	Assets []SelectedAssetDTO `json:"assets" validate:"required,min=1,dive"`
}

type SummaryDTO struct {
	rules.Summary
	GeneratedAt time.Time `json:"generated_at"`
}
