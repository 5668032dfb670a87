package request

type TransitionRequest struct {
	Status string  `json:"status" validate:"required,oneof=approved rejected sold inactive"`
	Reason *string `json:"reason,omitempty" validate:"omitempty,min=3,max=500"`
}
