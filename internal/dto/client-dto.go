package dto

type CreateClientDTO struct {
	Name        string  `json:"name" validate:"required,min=2,max=150"`
	Company     *string `json:"company,omitempty" validate:"omitempty,max=150"`
	Contact     *string `json:"contact,omitempty" validate:"omitempty,max=100"`
	Responsible *string `json:"responsible,omitempty" validate:"omitempty,max=150"`
}

type UpdateClientDTO struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=2,max=150"`
	Company     *string `json:"company,omitempty" validate:"omitempty,max=150"`
	Contact     *string `json:"contact,omitempty" validate:"omitempty,max=100"`
	Responsible *string `json:"responsible,omitempty" validate:"omitempty,max=150"`
}

type ShortClientDTO struct {
	UUID string `json:"uuid"`
	Name string `json:"name"`
}
