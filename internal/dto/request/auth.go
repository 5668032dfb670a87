package request

type RegisterRequest struct {
	Phone    string  `json:"phone" validate:"required,min=6,max=16"`
	Name     *string `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	Password *string `json:"password,omitempty" validate:"omitempty,min=6"`
}

type RequestOTPRequest struct {
	Phone string `json:"phone" validate:"required,min=6,max=16"`
}

type VerifyOTPRequest struct {
	Code string `json:"code" validate:"required,min=4,max=8"`
}

type LoginRequest struct {
	Phone    string `json:"phone" validate:"required,min=6,max=16"`
	Password string `json:"password" validate:"required,min=6"`
}
