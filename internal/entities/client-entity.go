package entities

import "asset-system/pkg/types"

type Client struct {
	UUID        string  `json:"uuid"`
	Name        string  `json:"name"`
	Company     *string `json:"company"`
	Contact     *string `json:"contact"`
	Responsible *string `json:"responsible"`

	types.BaseEntity
	types.SoftDelete
}
