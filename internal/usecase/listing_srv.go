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

const defaultCurrency = "USD"

type ListingService interface {
	Submit(ctx context.Context, ownerID uuid.UUID, req *request.SubmitListingRequest) (*response.ListingResponse, error)
	Edit(ctx context.Context, ownerID uuid.UUID, listingID string, req *request.UpdateListingRequest) (*response.ListingResponse, error)
	Resubmit(ctx context.Context, ownerID uuid.UUID, listingID string, req *request.UpdateListingRequest) (*response.ListingResponse, error)
	Delete(ctx context.Context, actorID uuid.UUID, actorRole entity.AccountRole, listingID string) error
	GetOwn(ctx context.Context, ownerID uuid.UUID, page, perPage int) (*response.PaginatedResponse[response.ListingResponse], error)
	Browse(ctx context.Context, req *request.BrowseListingsRequest) (*response.PaginatedResponse[response.ListingResponse], error)
	GetPublic(ctx context.Context, listingID string) (*response.ListingResponse, error)
}

type listingService struct {
	repo   *repository.Repository
	config *utils.Config
	log    *zap.Logger
}

func NewListingService(
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) ListingService {
	return &listingService{
		repo:   repo,
		config: config,
		log:    log.With(zap.String("service", "listing")),
	}
}

// Submit persists a new listing in pending status with the configured
// expiry horizon. Validation happens at the handler boundary.
func (s *listingService) Submit(ctx context.Context, ownerID uuid.UUID, req *request.SubmitListingRequest) (*response.ListingResponse, error) {
	now := time.Now()

	currency := defaultCurrency
	if req.Currency != nil {
		currency = *req.Currency
	}

	listing := &entity.Listing{
		BaseNoDelete: entity.BaseNoDelete{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		OwnerID:     ownerID,
		Name:        req.Name,
		Description: req.Description,
		Brand:       req.Brand,
		Category:    req.Category,
		Condition:   req.Condition,
		Price:       *req.Price,
		Currency:    currency,
		Phone:       req.Phone,
		WhatsApp:    req.WhatsApp,
		Region:      req.Region,
		Locality:    req.Locality,
		Status:      entity.StatusPending,
		ExpiresAt:   now.Add(time.Duration(s.config.Listing.ExpiryDays) * 24 * time.Hour),
	}

	if err := s.repo.Listing.Create(ctx, listing); err != nil {
		s.log.Error("Failed to create listing",
			zap.Error(err),
			zap.String("owner_id", ownerID.String()),
		)
		return nil, apperr.Internal(err)
	}

	s.log.Info("Listing submitted",
		zap.String("listing_id", listing.ID.String()),
		zap.String("owner_id", ownerID.String()),
		zap.String("name", listing.Name),
	)

	resp := response.ListingToResponse(listing)
	return &resp, nil
}

// Edit applies a partial update. Status is never touched: editing does not
// re-approve or un-approve a listing.
func (s *listingService) Edit(ctx context.Context, ownerID uuid.UUID, listingID string, req *request.UpdateListingRequest) (*response.ListingResponse, error) {
	listing, err := s.findOwned(ctx, ownerID, listingID)
	if err != nil {
		return nil, err
	}

	if applyListingPatch(listing, req) {
		listing.UpdatedAt = time.Now()
		if err := s.repo.Listing.Update(ctx, listing); err != nil {
			s.log.Error("Failed to update listing",
				zap.Error(err),
				zap.String("listing_id", listing.ID.String()),
			)
			return nil, apperr.Internal(err)
		}
	}

	s.log.Info("Listing edited",
		zap.String("listing_id", listing.ID.String()),
		zap.String("owner_id", ownerID.String()),
	)

	resp := response.ListingToResponse(listing)
	return &resp, nil
}

// Resubmit returns a rejected listing to the review queue. This is the only
// path out of rejected; admins cannot flip the status directly.
func (s *listingService) Resubmit(ctx context.Context, ownerID uuid.UUID, listingID string, req *request.UpdateListingRequest) (*response.ListingResponse, error) {
	listing, err := s.findOwned(ctx, ownerID, listingID)
	if err != nil {
		return nil, err
	}

	if listing.Status != entity.StatusRejected {
		return nil, apperr.Validationf("only rejected listings can be resubmitted")
	}

	now := time.Now()
	applyListingPatch(listing, req)
	listing.Status = entity.StatusPending
	listing.RejectionReason = nil
	listing.ExpiresAt = now.Add(time.Duration(s.config.Listing.ExpiryDays) * 24 * time.Hour)
	listing.UpdatedAt = now

	if err := s.repo.Listing.Update(ctx, listing); err != nil {
		s.log.Error("Failed to resubmit listing",
			zap.Error(err),
			zap.String("listing_id", listing.ID.String()),
		)
		return nil, apperr.Internal(err)
	}

	s.log.Info("Listing resubmitted",
		zap.String("listing_id", listing.ID.String()),
		zap.String("owner_id", ownerID.String()),
	)

	resp := response.ListingToResponse(listing)
	return &resp, nil
}

// Delete removes a listing. Owners may delete their own in any status;
// admins may delete any.
func (s *listingService) Delete(ctx context.Context, actorID uuid.UUID, actorRole entity.AccountRole, listingID string) error {
	id, err := uuid.Parse(listingID)
	if err != nil {
		return apperr.NotFoundf("listing not found")
	}

	listing, err := s.repo.Listing.FindByID(ctx, id)
	if err != nil {
		return apperr.Internal(err)
	}
	if listing == nil {
		return apperr.NotFoundf("listing not found")
	}

	if actorRole != entity.RoleAdmin && listing.OwnerID != actorID {
		return apperr.Forbidden("you do not own this listing")
	}

	if err := s.repo.Listing.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete listing",
			zap.Error(err),
			zap.String("listing_id", listingID),
		)
		return apperr.Internal(err)
	}

	s.log.Info("Listing deleted",
		zap.String("listing_id", listingID),
		zap.String("actor_id", actorID.String()),
		zap.String("actor_role", string(actorRole)),
	)

	return nil
}

func (s *listingService) GetOwn(ctx context.Context, ownerID uuid.UUID, page, perPage int) (*response.PaginatedResponse[response.ListingResponse], error) {
	perPage = utils.ClampPageSize(perPage, s.config.Listing.MaxPageSize)
	offset := utils.CalculateOffset(page, perPage)

	listings, err := s.repo.Listing.FindByOwner(ctx, ownerID, perPage, offset)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	total, err := s.repo.Listing.CountByOwner(ctx, ownerID)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	return response.NewPaginatedResponse(response.ListingsToResponse(listings), page, perPage, total), nil
}

// Browse serves the public marketplace: approved and unexpired listings only.
func (s *listingService) Browse(ctx context.Context, req *request.BrowseListingsRequest) (*response.PaginatedResponse[response.ListingResponse], error) {
	perPage := utils.ClampPageSize(req.PerPage, s.config.Listing.MaxPageSize)
	page := req.Page
	if page < 1 {
		page = 1
	}

	filter := repository.ListingFilter{
		Category:  req.Category,
		Condition: req.Condition,
		Region:    req.Region,
		Locality:  req.Locality,
		Query:     req.Query,
		MinPrice:  req.MinPrice,
		MaxPrice:  req.MaxPrice,
		SortBy:    req.SortBy,
		SortDesc:  req.SortDesc,
		Limit:     perPage,
		Offset:    utils.CalculateOffset(page, perPage),
	}

	listings, err := s.repo.Listing.Search(ctx, filter)
	if err != nil {
		s.log.Error("Failed to browse listings", zap.Error(err))
		return nil, apperr.Internal(err)
	}

	total, err := s.repo.Listing.CountSearch(ctx, filter)
	if err != nil {
		s.log.Error("Failed to count browse results", zap.Error(err))
		return nil, apperr.Internal(err)
	}

	s.log.Debug("Listings browsed",
		zap.Int("count", len(listings)),
		zap.Int64("total", total),
		zap.Int("page", page),
	)

	return response.NewPaginatedResponse(response.ListingsToResponse(listings), page, perPage, total), nil
}

// GetPublic returns a single listing only while it is publicly visible.
func (s *listingService) GetPublic(ctx context.Context, listingID string) (*response.ListingResponse, error) {
	id, err := uuid.Parse(listingID)
	if err != nil {
		return nil, apperr.NotFoundf("listing not found")
	}

	listing, err := s.repo.Listing.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if listing == nil || !listing.Visible(time.Now()) {
		return nil, apperr.NotFoundf("listing not found")
	}

	resp := response.ListingToResponse(listing)
	return &resp, nil
}

// ==================== HELPERS ====================

func (s *listingService) findOwned(ctx context.Context, ownerID uuid.UUID, listingID string) (*entity.Listing, error) {
	id, err := uuid.Parse(listingID)
	if err != nil {
		return nil, apperr.NotFoundf("listing not found")
	}

	listing, err := s.repo.Listing.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if listing == nil {
		return nil, apperr.NotFoundf("listing not found")
	}
	if listing.OwnerID != ownerID {
		return nil, apperr.Forbidden("you do not own this listing")
	}

	return listing, nil
}

// applyListingPatch copies provided fields onto the entity, reporting whether
// anything changed. Status is deliberately not part of the patch.
func applyListingPatch(listing *entity.Listing, req *request.UpdateListingRequest) bool {
	if req == nil {
		return false
	}

	updated := false

	if req.Name != nil {
		listing.Name = *req.Name
		updated = true
	}
	if req.Category != nil {
		listing.Category = *req.Category
		updated = true
	}
	if req.Condition != nil {
		listing.Condition = *req.Condition
		updated = true
	}
	if req.Price != nil {
		listing.Price = *req.Price
		updated = true
	}
	if req.Phone != nil {
		listing.Phone = *req.Phone
		updated = true
	}
	if req.Region != nil {
		listing.Region = *req.Region
		updated = true
	}
	if req.Locality != nil {
		listing.Locality = *req.Locality
		updated = true
	}
	if req.Description != nil {
		listing.Description = req.Description
		updated = true
	}
	if req.Brand != nil {
		listing.Brand = req.Brand
		updated = true
	}
	if req.Currency != nil {
		listing.Currency = *req.Currency
		updated = true
	}
	if req.WhatsApp != nil {
		listing.WhatsApp = req.WhatsApp
		updated = true
	}

	return updated
}
