package request

type ShopRequest struct {
	Name        string  `json:"name" validate:"required,min=2,max=200"`
	Phone       string  `json:"phone" validate:"required,min=6,max=16"`
	Region      string  `json:"region" validate:"required,max=100"`
	Locality    string  `json:"locality" validate:"required,max=100"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=2000"`
}

type ShopUpdateRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=2,max=200"`
	Phone       *string `json:"phone,omitempty" validate:"omitempty,min=6,max=16"`
	Region      *string `json:"region,omitempty" validate:"omitempty,max=100"`
	Locality    *string `json:"locality,omitempty" validate:"omitempty,max=100"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=2000"`
}

type EngineerRequest struct {
	Name            string  `json:"name" validate:"required,min=2,max=200"`
	Specialty       string  `json:"specialty" validate:"required,max=100"`
	Phone           string  `json:"phone" validate:"required,min=6,max=16"`
	Region          string  `json:"region" validate:"required,max=100"`
	Locality        string  `json:"locality" validate:"required,max=100"`
	YearsExperience int     `json:"years_experience" validate:"gte=0,lte=60"`
	Bio             *string `json:"bio,omitempty" validate:"omitempty,max=2000"`
}

type EngineerUpdateRequest struct {
	Name            *string `json:"name,omitempty" validate:"omitempty,min=2,max=200"`
	Specialty       *string `json:"specialty,omitempty" validate:"omitempty,max=100"`
	Phone           *string `json:"phone,omitempty" validate:"omitempty,min=6,max=16"`
	Region          *string `json:"region,omitempty" validate:"omitempty,max=100"`
	Locality        *string `json:"locality,omitempty" validate:"omitempty,max=100"`
	YearsExperience *int    `json:"years_experience,omitempty" validate:"omitempty,gte=0,lte=60"`
	Bio             *string `json:"bio,omitempty" validate:"omitempty,max=2000"`
}
