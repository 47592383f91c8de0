package dto

type CreateAssetDTO struct {
	Type           string  `json:"type" validate:"required,oneof=CHIP EQUIPMENT"`
	SolutionID     *uint64 `json:"solution_id,omitempty" validate:"omitempty,gt=0"`
	ManufacturerID *uint64 `json:"manufacturer_id,omitempty" validate:"omitempty,gt=0"`
	StatusID       uint64  `json:"status_id" validate:"required,gt=0"`

	ICCID      *string `json:"iccid,omitempty" validate:"omitempty,min=18,max=22,numeric"`
	LineNumber *string `json:"line_number,omitempty" validate:"omitempty,max=20"`

	Radio        *string `json:"radio,omitempty" validate:"omitempty,max=50"`
	SerialNumber *string `json:"serial_number,omitempty" validate:"omitempty,max=50"`
	Model        *string `json:"model,omitempty" validate:"omitempty,max=100"`
}

type UpdateAssetDTO struct {
	SolutionID     *uint64 `json:"solution_id,omitempty" validate:"omitempty,gt=0"`
	ManufacturerID *uint64 `json:"manufacturer_id,omitempty" validate:"omitempty,gt=0"`
	StatusID       *uint64 `json:"status_id,omitempty" validate:"omitempty,gt=0"`

	ICCID      *string `json:"iccid,omitempty" validate:"omitempty,min=18,max=22,numeric"`
	LineNumber *string `json:"line_number,omitempty" validate:"omitempty,max=20"`

	Radio        *string `json:"radio,omitempty" validate:"omitempty,max=50"`
	SerialNumber *string `json:"serial_number,omitempty" validate:"omitempty,max=50"`
	Model        *string `json:"model,omitempty" validate:"omitempty,max=100"`
}

type ShortAssetDTO struct {
	ID    uint64 `json:"id"`
	Type  string `json:"type"`
	Label string `json:"label"`
}
