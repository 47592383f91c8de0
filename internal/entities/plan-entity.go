package entities

import "asset-system/pkg/types"

type Plan struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
	GB   *int   `json:"gb"`

	types.BaseEntity
}
