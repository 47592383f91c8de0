package dto

type CreateManufacturerDTO struct {
	Name string `json:"name" validate:"required,min=2,max=100"`
}

type UpdateManufacturerDTO struct {
	Name *string `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
}

type CreateStatusDTO struct {
	Name string  `json:"name" validate:"required,min=2,max=100"`
	Code *string `json:"code,omitempty" validate:"omitempty,max=30"`
}

type UpdateStatusDTO struct {
	Name *string `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	Code *string `json:"code,omitempty" validate:"omitempty,max=30"`
}

type CreatePlanDTO struct {
	Name string `json:"name" validate:"required,min=2,max=100"`
	GB   *int   `json:"gb,omitempty" validate:"omitempty,gt=0"`
}

type UpdatePlanDTO struct {
	Name *string `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	GB   *int    `json:"gb,omitempty" validate:"omitempty,gt=0"`
}

type CreateAssociationTypeDTO struct {
	Name string `json:"name" validate:"required,min=2,max=100"`
}

type UpdateAssociationTypeDTO struct {
	Name *string `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
}
