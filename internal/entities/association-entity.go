package entities

import (
	"time"

	"asset-system/pkg/types"
)

// Association liga um cliente a um equipamento e/ou um chip por um período.
// Pelo menos um dos dois assets está presente; status=true enquanto não
// houver exit_date.
type Association struct {
	ID                uint64     `json:"id"`
	ClientID          string     `json:"client_id"`
	EquipmentID       *uint64    `json:"equipment_id"`
	ChipID            *uint64    `json:"chip_id"`
	AssociationTypeID uint64     `json:"association_type_id"`
	EntryDate         time.Time  `json:"entry_date"`
	ExitDate          *time.Time `json:"exit_date"`
	PlanID            *uint64    `json:"plan_id"`
	PlanGB            *int       `json:"plan_gb"`
	SSID              *string    `json:"ssid"`
	Pass              *string    `json:"pass"`
	Notes             *string    `json:"notes"`
	Status            bool       `json:"status"`

	types.BaseEntity
	types.SoftDelete

	// Dados relacionados (não são colunas da tabela)
	Client    *Client `json:"client,omitempty" db:"-"`
	Equipment *Asset  `json:"equipment,omitempty" db:"-"`
	Chip      *Asset  `json:"chip,omitempty" db:"-"`
}
