package entities

import "asset-system/pkg/types"

// Tipos semeados: 1 = Aluguel, 2 = Assinatura.
type AssociationType struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`

	types.BaseEntity
}
