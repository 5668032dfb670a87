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

type ModerationService interface {
	ListForReview(ctx context.Context, status entity.ListingStatus, page, perPage int) (*response.PaginatedResponse[response.ModerationListingResponse], error)
	Transition(ctx context.Context, adminID uuid.UUID, listingID string, req *request.TransitionRequest) (*response.ListingResponse, error)
	DeactivateAccount(ctx context.Context, accountID string) error
	ReactivateAccount(ctx context.Context, accountID string) error
	VerifyShop(ctx context.Context, shopID string, verified bool) error
}

type moderationService struct {
	repo   *repository.Repository
	config *utils.Config
	log    *zap.Logger
}

func NewModerationService(
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) ModerationService {
	return &moderationService{
		repo:   repo,
		config: config,
		log:    log.With(zap.String("service", "moderation")),
	}
}

// ListForReview pages through listings in a given status, oldest first.
func (s *moderationService) ListForReview(ctx context.Context, status entity.ListingStatus, page, perPage int) (*response.PaginatedResponse[response.ModerationListingResponse], error) {
	if !status.Valid() {
		return nil, apperr.Validationf("unknown status: %s", status)
	}

	perPage = utils.ClampPageSize(perPage, s.config.Listing.MaxPageSize)
	if page < 1 {
		page = 1
	}
	offset := utils.CalculateOffset(page, perPage)

	listings, err := s.repo.Listing.FindByStatus(ctx, status, perPage, offset)
	if err != nil {
		s.log.Error("Failed to list for review", zap.Error(err), zap.String("status", string(status)))
		return nil, apperr.Internal(err)
	}

	total, err := s.repo.Listing.CountByStatus(ctx, status)
	if err != nil {
		s.log.Error("Failed to count review queue", zap.Error(err), zap.String("status", string(status)))
		return nil, apperr.Internal(err)
	}

	responses := make([]response.ModerationListingResponse, len(listings))
	for i, listing := range listings {
		responses[i] = response.ListingToModerationResponse(listing)
	}

	return response.NewPaginatedResponse(responses, page, perPage, total), nil
}

// Transition applies an admin disposition, enforcing the moderation graph.
// The store write compares-and-swaps on the current status, so a racing
// transition on the same listing fails with a conflict instead of clobbering.
func (s *moderationService) Transition(ctx context.Context, adminID uuid.UUID, listingID string, req *request.TransitionRequest) (*response.ListingResponse, error) {
	id, err := uuid.Parse(listingID)
	if err != nil {
		return nil, apperr.NotFoundf("listing not found")
	}

	newStatus := entity.ListingStatus(req.Status)
	if !newStatus.Valid() {
		return nil, apperr.Validationf("unknown status: %s", req.Status)
	}

	listing, err := s.repo.Listing.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if listing == nil {
		return nil, apperr.NotFoundf("listing not found")
	}

	if !entity.CanTransition(listing.Status, newStatus) {
		return nil, apperr.Validationf("cannot transition from %s to %s", listing.Status, newStatus)
	}

	var reason *string
	if newStatus == entity.StatusRejected {
		if req.Reason == nil || *req.Reason == "" {
			return nil, apperr.ValidationFields("reason: A rejection requires a reason",
				map[string]string{"reason": "A rejection requires a reason"})
		}
		reason = req.Reason
	}
	// Any other disposition clears a prior rejection reason

	now := time.Now()
	swapped, err := s.repo.Listing.UpdateStatus(ctx, id, listing.Status, newStatus, reason, adminID, now)
	if err != nil {
		s.log.Error("Failed to apply disposition",
			zap.Error(err),
			zap.String("listing_id", listingID),
			zap.String("to", string(newStatus)),
		)
		return nil, apperr.Internal(err)
	}
	if !swapped {
		return nil, apperr.Conflictf("listing status changed concurrently, re-check and retry")
	}

	listing.Status = newStatus
	listing.RejectionReason = reason
	listing.ReviewedBy = &adminID
	listing.ReviewedAt = &now
	listing.UpdatedAt = now

	s.log.Info("Listing disposition applied",
		zap.String("listing_id", listingID),
		zap.String("admin_id", adminID.String()),
		zap.String("status", string(newStatus)),
	)

	resp := response.ListingToResponse(listing)
	return &resp, nil
}

// DeactivateAccount soft-disables an account. Outstanding credentials keep
// verifying cryptographically but fail the per-request account check.
func (s *moderationService) DeactivateAccount(ctx context.Context, accountID string) error {
	return s.setAccountActive(ctx, accountID, false)
}

func (s *moderationService) ReactivateAccount(ctx context.Context, accountID string) error {
	return s.setAccountActive(ctx, accountID, true)
}

func (s *moderationService) setAccountActive(ctx context.Context, accountID string, active bool) error {
	id, err := uuid.Parse(accountID)
	if err != nil {
		return apperr.NotFoundf("account not found")
	}

	account, err := s.repo.Account.FindByID(ctx, id)
	if err != nil {
		return apperr.Internal(err)
	}
	if account == nil {
		return apperr.NotFoundf("account not found")
	}

	if err := s.repo.Account.SetActive(ctx, id, active); err != nil {
		s.log.Error("Failed to set account active flag",
			zap.Error(err),
			zap.String("account_id", accountID),
			zap.Bool("active", active),
		)
		return apperr.Internal(err)
	}

	s.log.Info("Account active flag changed",
		zap.String("account_id", accountID),
		zap.Bool("active", active),
	)

	return nil
}

// VerifyShop flips the directory verification badge.
func (s *moderationService) VerifyShop(ctx context.Context, shopID string, verified bool) error {
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

	if err := s.repo.Shop.SetVerified(ctx, id, verified); err != nil {
		s.log.Error("Failed to set shop verified flag",
			zap.Error(err),
			zap.String("shop_id", shopID),
		)
		return apperr.Internal(err)
	}

	s.log.Info("Shop verification changed",
		zap.String("shop_id", shopID),
		zap.Bool("verified", verified),
	)

	return nil
}
