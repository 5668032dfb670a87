package response

import (
	"time"

	"solar-marketplace/internal/data/entity"
)

type ShopResponse struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"owner_id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	Phone       string    `json:"phone"`
	Region      string    `json:"region"`
	Locality    string    `json:"locality"`
	Verified    bool      `json:"verified"`
	CreatedAt   time.Time `json:"created_at"`
}

func ShopToResponse(shop *entity.Shop) ShopResponse {
	return ShopResponse{
		ID:          shop.ID.String(),
		OwnerID:     shop.OwnerID.String(),
		Name:        shop.Name,
		Description: shop.Description,
		Phone:       shop.Phone,
		Region:      shop.Region,
		Locality:    shop.Locality,
		Verified:    shop.Verified,
		CreatedAt:   shop.CreatedAt,
	}
}

func ShopsToResponse(shops []*entity.Shop) []ShopResponse {
	responses := make([]ShopResponse, len(shops))
	for i, shop := range shops {
		responses[i] = ShopToResponse(shop)
	}
	return responses
}

type EngineerResponse struct {
	ID              string    `json:"id"`
	OwnerID         string    `json:"owner_id"`
	Name            string    `json:"name"`
	Specialty       string    `json:"specialty"`
	Bio             *string   `json:"bio,omitempty"`
	Phone           string    `json:"phone"`
	Region          string    `json:"region"`
	Locality        string    `json:"locality"`
	YearsExperience int       `json:"years_experience"`
	CreatedAt       time.Time `json:"created_at"`
}

func EngineerToResponse(engineer *entity.Engineer) EngineerResponse {
	return EngineerResponse{
		ID:              engineer.ID.String(),
		OwnerID:         engineer.OwnerID.String(),
		Name:            engineer.Name,
		Specialty:       engineer.Specialty,
		Bio:             engineer.Bio,
		Phone:           engineer.Phone,
		Region:          engineer.Region,
		Locality:        engineer.Locality,
		YearsExperience: engineer.YearsExperience,
		CreatedAt:       engineer.CreatedAt,
	}
}

func EngineersToResponse(engineers []*entity.Engineer) []EngineerResponse {
	responses := make([]EngineerResponse, len(engineers))
	for i, engineer := range engineers {
		responses[i] = EngineerToResponse(engineer)
	}
	return responses
}
