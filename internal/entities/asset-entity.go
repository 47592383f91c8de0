package entities

import "asset-system/pkg/types"

const (
	AssetTypeChip      = "CHIP"
	AssetTypeEquipment = "EQUIPMENT"
)

// Asset é uma unidade física: chip (iccid, line_number) ou equipamento
// (radio, serial_number, model). O campo type discrimina a variante; os campos
// que não pertencem à variante ficam nulos no banco.
type Asset struct {
	ID             uint64  `json:"id"`
	Type           string  `json:"type"`
	SolutionID     *uint64 `json:"solution_id"`
	ManufacturerID *uint64 `json:"manufacturer_id"`
	StatusID       uint64  `json:"status_id"`

	// Campos de chip
	ICCID      *string `json:"iccid,omitempty"`
	LineNumber *string `json:"line_number,omitempty"`

	// Campos de equipamento
	Radio        *string `json:"radio,omitempty"`
	SerialNumber *string `json:"serial_number,omitempty"`
	Model        *string `json:"model,omitempty"`

	types.BaseEntity
	types.SoftDelete

	// Dados relacionados (não são colunas da tabela)
	Manufacturer *Manufacturer `json:"manufacturer,omitempty" db:"-"`
	Status       *Status       `json:"status,omitempty" db:"-"`
}

// Label devolve o identificador que o usuário reconhece: radio/serial para
// equipamento, iccid para chip.
func (a *Asset) Label() string {
	if a.Type == AssetTypeEquipment {
		if a.Radio != nil && *a.Radio != "" {
			return *a.Radio
		}
		if a.SerialNumber != nil {
			return *a.SerialNumber
		}
	}
	if a.ICCID != nil {
		return *a.ICCID
	}
	return ""
}
