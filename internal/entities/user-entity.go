package entities

import "asset-system/pkg/types"

type User struct {
	ID       uint64 `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"-"`

	types.BaseEntity
	types.SoftDelete
}
