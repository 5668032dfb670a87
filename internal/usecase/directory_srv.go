package usecase

import (
	"context"
	"time"

	"solar-marketplace/internal/data/entity"
	"solar-marketplace/internal/data/repository"
	"solar-marketplace/internal/dto/request"
	"solar-marketplace/internal/dto/response"
	"solar-marketplace/pkg/apperr"
	"solar-marketplace/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DirectoryFilter narrows the public shop and engineer lists.
type DirectoryFilter struct {
	Region    *string
	Locality  *string
	Specialty *string
	Page      int
	PerPage   int
}

type DirectoryService interface {
	CreateShop(ctx context.Context, ownerID uuid.UUID, req *request.ShopRequest) (*response.ShopResponse, error)
	UpdateShop(ctx context.Context, ownerID uuid.UUID, shopID string, req *request.ShopUpdateRequest) (*response.ShopResponse, error)
	DeleteShop(ctx context.Context, actorID uuid.UUID, actorRole entity.AccountRole, shopID string) error
	GetShop(ctx context.Context, shopID string) (*response.ShopResponse, error)
	BrowseShops(ctx context.Context, filter DirectoryFilter) (*response.PaginatedResponse[response.ShopResponse], error)

	CreateEngineer(ctx context.Context, ownerID uuid.UUID, req *request.EngineerRequest) (*response.EngineerResponse, error)
	UpdateEngineer(ctx context.Context, ownerID uuid.UUID, engineerID string, req *request.EngineerUpdateRequest) (*response.EngineerResponse, error)
	DeleteEngineer(ctx context.Context, actorID uuid.UUID, actorRole entity.AccountRole, engineerID string) error
	GetEngineer(ctx context.Context, engineerID string) (*response.EngineerResponse, error)
	BrowseEngineers(ctx context.Context, filter DirectoryFilter) (*response.PaginatedResponse[response.EngineerResponse], error)
}

type directoryService struct {
	repo   *repository.Repository
	config *utils.Config
	log    *zap.Logger
}

func NewDirectoryService(
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) DirectoryService {
	return &directoryService{
		repo:   repo,
		config: config,
		log:    log.With(zap.String("service", "directory")),
	}
}

// ==================== SHOPS ====================

// CreateShop registers a directory entry; one shop per account.
func (s *directoryService) CreateShop(ctx context.Context, ownerID uuid.UUID, req *request.ShopRequest) (*response.ShopResponse, error) {
	existing, err := s.repo.Shop.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if existing != nil {
		return nil, apperr.Conflictf("account already has a shop")
	}

	now := time.Now()
	shop := &entity.Shop{
		BaseNoDelete: entity.BaseNoDelete{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		OwnerID:     ownerID,
		Name:        req.Name,
		Description: req.Description,
		Phone:       req.Phone,
		Region:      req.Region,
		Locality:    req.Locality,
		Verified:    false,
	}

	if err := s.repo.Shop.Create(ctx, shop); err != nil {
		s.log.Error("Failed to create shop", zap.Error(err), zap.String("owner_id", ownerID.String()))
		return nil, apperr.Internal(err)
	}

	s.log.Info("Shop created",
		zap.String("shop_id", shop.ID.String()),
		zap.String("owner_id", ownerID.String()),
	)

	resp := response.ShopToResponse(shop)
	return &resp, nil
}

func (s *directoryService) UpdateShop(ctx context.Context, ownerID uuid.UUID, shopID string, req *request.ShopUpdateRequest) (*response.ShopResponse, error) {
	id, err := uuid.Parse(shopID)
	if err != nil {
		return nil, apperr.NotFoundf("shop not found")
	}

	shop, err := s.repo.Shop.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if shop == nil {
		return nil, apperr.NotFoundf("shop not found")
	}
	if shop.OwnerID != ownerID {
		return nil, apperr.Forbidden("you do not own this shop")
	}

	updated := false
	if req.Name != nil {
		shop.Name = *req.Name
		updated = true
	}
	if req.Phone != nil {
		shop.Phone = *req.Phone
		updated = true
	}
	if req.Region != nil {
		shop.Region = *req.Region
		updated = true
	}
	if req.Locality != nil {
		shop.Locality = *req.Locality
		updated = true
	}
	if req.Description != nil {
		shop.Description = req.Description
		updated = true
	}

	if updated {
		shop.UpdatedAt = time.Now()
		if err := s.repo.Shop.Update(ctx, shop); err != nil {
			s.log.Error("Failed to update shop", zap.Error(err), zap.String("shop_id", shopID))
			return nil, apperr.Internal(err)
		}
	}

	resp := response.ShopToResponse(shop)
	return &resp, nil
}

func (s *directoryService) DeleteShop(ctx context.Context, actorID uuid.UUID, actorRole entity.AccountRole, shopID string) error {
	id, err := uuid.Parse(shopID)
	if err != nil {
		return apperr.NotFoundf("shop not found")
	}

	shop, err := s.repo.Shop.FindByID(ctx, id)
	if err != nil {
		return apperr.Internal(err)
	}
	if shop == nil {
		return apperr.NotFoundf("shop not found")
	}
	if actorRole != entity.RoleAdmin && shop.OwnerID != actorID {
		return apperr.Forbidden("you do not own this shop")
	}

	if err := s.repo.Shop.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete shop", zap.Error(err), zap.String("shop_id", shopID))
		return apperr.Internal(err)
	}

	s.log.Info("Shop deleted", zap.String("shop_id", shopID))
	return nil
}

func (s *directoryService) GetShop(ctx context.Context, shopID string) (*response.ShopResponse, error) {
	id, err := uuid.Parse(shopID)
	if err != nil {
		return nil, apperr.NotFoundf("shop not found")
	}

	shop, err := s.repo.Shop.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if shop == nil {
		return nil, apperr.NotFoundf("shop not found")
	}

	resp := response.ShopToResponse(shop)
	return &resp, nil
}

func (s *directoryService) BrowseShops(ctx context.Context, filter DirectoryFilter) (*response.PaginatedResponse[response.ShopResponse], error) {
	perPage := utils.ClampPageSize(filter.PerPage, s.config.Listing.MaxPageSize)
	page := filter.Page
	if page < 1 {
		page = 1
	}

	repoFilter := repository.DirectoryFilter{
		Region:   filter.Region,
		Locality: filter.Locality,
		Limit:    perPage,
		Offset:   utils.CalculateOffset(page, perPage),
	}

	shops, err := s.repo.Shop.FindAll(ctx, repoFilter)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	total, err := s.repo.Shop.CountAll(ctx, repoFilter)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	return response.NewPaginatedResponse(response.ShopsToResponse(shops), page, perPage, total), nil
}

// ==================== ENGINEERS ====================

func (s *directoryService) CreateEngineer(ctx context.Context, ownerID uuid.UUID, req *request.EngineerRequest) (*response.EngineerResponse, error) {
	existing, err := s.repo.Engineer.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if existing != nil {
		return nil, apperr.Conflictf("account already has an engineer profile")
	}

	now := time.Now()
	engineer := &entity.Engineer{
		BaseNoDelete: entity.BaseNoDelete{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		OwnerID:         ownerID,
		Name:            req.Name,
		Specialty:       req.Specialty,
		Bio:             req.Bio,
		Phone:           req.Phone,
		Region:          req.Region,
		Locality:        req.Locality,
		YearsExperience: req.YearsExperience,
	}

	if err := s.repo.Engineer.Create(ctx, engineer); err != nil {
		s.log.Error("Failed to create engineer", zap.Error(err), zap.String("owner_id", ownerID.String()))
		return nil, apperr.Internal(err)
	}

	s.log.Info("Engineer profile created",
		zap.String("engineer_id", engineer.ID.String()),
		zap.String("owner_id", ownerID.String()),
	)

	resp := response.EngineerToResponse(engineer)
	return &resp, nil
}

func (s *directoryService) UpdateEngineer(ctx context.Context, ownerID uuid.UUID, engineerID string, req *request.EngineerUpdateRequest) (*response.EngineerResponse, error) {
	id, err := uuid.Parse(engineerID)
	if err != nil {
		return nil, apperr.NotFoundf("engineer not found")
	}

	engineer, err := s.repo.Engineer.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if engineer == nil {
		return nil, apperr.NotFoundf("engineer not found")
	}
	if engineer.OwnerID != ownerID {
		return nil, apperr.Forbidden("you do not own this profile")
	}

	updated := false
	if req.Name != nil {
		engineer.Name = *req.Name
		updated = true
	}
	if req.Specialty != nil {
		engineer.Specialty = *req.Specialty
		updated = true
	}
	if req.Phone != nil {
		engineer.Phone = *req.Phone
		updated = true
	}
	if req.Region != nil {
		engineer.Region = *req.Region
		updated = true
	}
	if req.Locality != nil {
		engineer.Locality = *req.Locality
		updated = true
	}
	if req.YearsExperience != nil {
		engineer.YearsExperience = *req.YearsExperience
		updated = true
	}
	if req.Bio != nil {
		engineer.Bio = req.Bio
		updated = true
	}

	if updated {
		engineer.UpdatedAt = time.Now()
		if err := s.repo.Engineer.Update(ctx, engineer); err != nil {
			s.log.Error("Failed to update engineer", zap.Error(err), zap.String("engineer_id", engineerID))
			return nil, apperr.Internal(err)
		}
	}

	resp := response.EngineerToResponse(engineer)
	return &resp, nil
}

func (s *directoryService) DeleteEngineer(ctx context.Context, actorID uuid.UUID, actorRole entity.AccountRole, engineerID string) error {
	id, err := uuid.Parse(engineerID)
	if err != nil {
		return apperr.NotFoundf("engineer not found")
	}

	engineer, err := s.repo.Engineer.FindByID(ctx, id)
	if err != nil {
		return apperr.Internal(err)
	}
	if engineer == nil {
		return apperr.NotFoundf("engineer not found")
	}
	if actorRole != entity.RoleAdmin && engineer.OwnerID != actorID {
		return apperr.Forbidden("you do not own this profile")
	}

	if err := s.repo.Engineer.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete engineer", zap.Error(err), zap.String("engineer_id", engineerID))
		return apperr.Internal(err)
	}

	s.log.Info("Engineer profile deleted", zap.String("engineer_id", engineerID))
	return nil
}

func (s *directoryService) GetEngineer(ctx context.Context, engineerID string) (*response.EngineerResponse, error) {
	id, err := uuid.Parse(engineerID)
	if err != nil {
		return nil, apperr.NotFoundf("engineer not found")
	}

	engineer, err := s.repo.Engineer.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if engineer == nil {
		return nil, apperr.NotFoundf("engineer not found")
	}

	resp := response.EngineerToResponse(engineer)
	return &resp, nil
}

func (s *directoryService) BrowseEngineers(ctx context.Context, filter DirectoryFilter) (*response.PaginatedResponse[response.EngineerResponse], error) {
	perPage := utils.ClampPageSize(filter.PerPage, s.config.Listing.MaxPageSize)
	page := filter.Page
	if page < 1 {
		page = 1
	}

	repoFilter := repository.DirectoryFilter{
		Region:    filter.Region,
		Locality:  filter.Locality,
		Specialty: filter.Specialty,
		Limit:     perPage,
		Offset:    utils.CalculateOffset(page, perPage),
	}

	engineers, err := s.repo.Engineer.FindAll(ctx, repoFilter)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	total, err := s.repo.Engineer.CountAll(ctx, repoFilter)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	return response.NewPaginatedResponse(response.EngineersToResponse(engineers), page, perPage, total), nil
}
