package entities

import "asset-system/pkg/types"

type Status struct {
	ID   uint64  `json:"id"`
	Name string  `json:"name"`
	Code *string `json:"code"`

	types.BaseEntity
}
