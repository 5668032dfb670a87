package usecase

import (
	"solar-marketplace/internal/data/repository"
	"solar-marketplace/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth       AuthService
	Listing    ListingService
	Moderation ModerationService
	Directory  DirectoryService
}

func NewService(repo *repository.Repository, config *utils.Config, jwt *utils.JWTUtil, log *zap.Logger) *Service {
	return &Service{
		Auth:       NewAuthService(repo, config, jwt, log),
		Listing:    NewListingService(repo, config, log),
		Moderation: NewModerationService(repo, config, log),
		Directory:  NewDirectoryService(repo, config, log),
	}
}
