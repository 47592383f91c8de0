package entities

import "asset-system/pkg/types"

type Manufacturer struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`

	types.BaseEntity
}
