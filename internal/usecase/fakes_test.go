package usecase

import (
	"context"
	"strings"
	"sync"
	"time"

	"solar-marketplace/internal/data/entity"
	"solar-marketplace/internal/data/repository"
	"solar-marketplace/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// In-memory repository fakes. Each fake mirrors the nil-on-miss convention of
// the pgx implementations.

type fakeAccountRepo struct {
	mu       sync.Mutex
	accounts map[uuid.UUID]*entity.Account
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{accounts: make(map[uuid.UUID]*entity.Account)}
}

func (f *fakeAccountRepo) Create(ctx context.Context, account *entity.Account) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copied := *account
	f.accounts[account.ID] = &copied
	return nil
}

func (f *fakeAccountRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	account, ok := f.accounts[id]
	if !ok {
		return nil, nil
	}
	copied := *account
	return &copied, nil
}

func (f *fakeAccountRepo) FindByPhone(ctx context.Context, phone string) (*entity.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, account := range f.accounts {
		if account.Phone == phone {
			copied := *account
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeAccountRepo) Update(ctx context.Context, account *entity.Account) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copied := *account
	f.accounts[account.ID] = &copied
	return nil
}

func (f *fakeAccountRepo) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if account, ok := f.accounts[id]; ok {
		account.IsActive = active
	}
	return nil
}

func (f *fakeAccountRepo) Delete(ctx context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.accounts, id)
	return nil
}

type fakeListingRepo struct {
	mu       sync.Mutex
	listings map[uuid.UUID]*entity.Listing
}

func newFakeListingRepo() *fakeListingRepo {
	return &fakeListingRepo{listings: make(map[uuid.UUID]*entity.Listing)}
}

func (f *fakeListingRepo) Create(ctx context.Context, listing *entity.Listing) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copied := *listing
	f.listings[listing.ID] = &copied
	return nil
}

func (f *fakeListingRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Listing, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	listing, ok := f.listings[id]
	if !ok {
		return nil, nil
	}
	copied := *listing
	return &copied, nil
}

func (f *fakeListingRepo) FindByOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]*entity.Listing, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var result []*entity.Listing
	for _, listing := range f.listings {
		if listing.OwnerID == ownerID {
			copied := *listing
			result = append(result, &copied)
		}
	}
	return paginate(result, limit, offset), nil
}

func (f *fakeListingRepo) CountByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var count int64
	for _, listing := range f.listings {
		if listing.OwnerID == ownerID {
			count++
		}
	}
	return count, nil
}

func (f *fakeListingRepo) FindByStatus(ctx context.Context, status entity.ListingStatus, limit, offset int) ([]*entity.Listing, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var result []*entity.Listing
	for _, listing := range f.listings {
		if listing.Status == status {
			copied := *listing
			result = append(result, &copied)
		}
	}
	return paginate(result, limit, offset), nil
}

func (f *fakeListingRepo) CountByStatus(ctx context.Context, status entity.ListingStatus) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var count int64
	for _, listing := range f.listings {
		if listing.Status == status {
			count++
		}
	}
	return count, nil
}

func (f *fakeListingRepo) Update(ctx context.Context, listing *entity.Listing) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copied := *listing
	f.listings[listing.ID] = &copied
	return nil
}

func (f *fakeListingRepo) UpdateStatus(ctx context.Context, id uuid.UUID, from, to entity.ListingStatus, reason *string, reviewerID uuid.UUID, reviewedAt time.Time) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	listing, ok := f.listings[id]
	if !ok || listing.Status != from {
		return false, nil
	}
	listing.Status = to
	listing.RejectionReason = reason
	listing.ReviewedBy = &reviewerID
	listing.ReviewedAt = &reviewedAt
	listing.UpdatedAt = reviewedAt
	return true, nil
}

func (f *fakeListingRepo) Delete(ctx context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.listings, id)
	return nil
}

func (f *fakeListingRepo) Search(ctx context.Context, filter repository.ListingFilter) ([]*entity.Listing, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	now := time.Now()
	var result []*entity.Listing
	for _, listing := range f.listings {
		if matchesListingFilter(listing, filter, now) {
			copied := *listing
			result = append(result, &copied)
		}
	}
	return paginate(result, filter.Limit, filter.Offset), nil
}

func (f *fakeListingRepo) CountSearch(ctx context.Context, filter repository.ListingFilter) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	now := time.Now()
	var count int64
	for _, listing := range f.listings {
		if matchesListingFilter(listing, filter, now) {
			count++
		}
	}
	return count, nil
}

// matchesListingFilter mirrors the SQL search semantics: visibility first,
// equality on category and condition, case-insensitive substring on region,
// locality and the free-text fields, inclusive price bounds.
func matchesListingFilter(listing *entity.Listing, filter repository.ListingFilter, now time.Time) bool {
	if !listing.Visible(now) {
		return false
	}
	if filter.Category != nil && listing.Category != *filter.Category {
		return false
	}
	if filter.Condition != nil && listing.Condition != *filter.Condition {
		return false
	}
	if filter.Region != nil && !containsFold(listing.Region, *filter.Region) {
		return false
	}
	if filter.Locality != nil && !containsFold(listing.Locality, *filter.Locality) {
		return false
	}
	if filter.Query != nil {
		q := *filter.Query
		inDescription := listing.Description != nil && containsFold(*listing.Description, q)
		inBrand := listing.Brand != nil && containsFold(*listing.Brand, q)
		if !containsFold(listing.Name, q) && !inDescription && !inBrand {
			return false
		}
	}
	if filter.MinPrice != nil && listing.Price < *filter.MinPrice {
		return false
	}
	if filter.MaxPrice != nil && listing.Price > *filter.MaxPrice {
		return false
	}
	return true
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func (f *fakeListingRepo) ExpireOverdue(ctx context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	now := time.Now()
	var flipped int64
	for _, listing := range f.listings {
		if listing.Status == entity.StatusApproved && !now.Before(listing.ExpiresAt) {
			listing.Status = entity.StatusInactive
			flipped++
		}
	}
	return flipped, nil
}

type fakeShopRepo struct {
	mu    sync.Mutex
	shops map[uuid.UUID]*entity.Shop
}

func newFakeShopRepo() *fakeShopRepo {
	return &fakeShopRepo{shops: make(map[uuid.UUID]*entity.Shop)}
}

func (f *fakeShopRepo) Create(ctx context.Context, shop *entity.Shop) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copied := *shop
	f.shops[shop.ID] = &copied
	return nil
}

func (f *fakeShopRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Shop, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	shop, ok := f.shops[id]
	if !ok {
		return nil, nil
	}
	copied := *shop
	return &copied, nil
}

func (f *fakeShopRepo) FindByOwner(ctx context.Context, ownerID uuid.UUID) (*entity.Shop, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, shop := range f.shops {
		if shop.OwnerID == ownerID {
			copied := *shop
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeShopRepo) FindAll(ctx context.Context, filter repository.DirectoryFilter) ([]*entity.Shop, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var result []*entity.Shop
	for _, shop := range f.shops {
		copied := *shop
		result = append(result, &copied)
	}
	return paginate(result, filter.Limit, filter.Offset), nil
}

func (f *fakeShopRepo) CountAll(ctx context.Context, filter repository.DirectoryFilter) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.shops)), nil
}

func (f *fakeShopRepo) Update(ctx context.Context, shop *entity.Shop) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copied := *shop
	f.shops[shop.ID] = &copied
	return nil
}

func (f *fakeShopRepo) SetVerified(ctx context.Context, id uuid.UUID, verified bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if shop, ok := f.shops[id]; ok {
		shop.Verified = verified
	}
	return nil
}

func (f *fakeShopRepo) Delete(ctx context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.shops, id)
	return nil
}

type fakeEngineerRepo struct {
	mu        sync.Mutex
	engineers map[uuid.UUID]*entity.Engineer
}

func newFakeEngineerRepo() *fakeEngineerRepo {
	return &fakeEngineerRepo{engineers: make(map[uuid.UUID]*entity.Engineer)}
}

func (f *fakeEngineerRepo) Create(ctx context.Context, engineer *entity.Engineer) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copied := *engineer
	f.engineers[engineer.ID] = &copied
	return nil
}

func (f *fakeEngineerRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Engineer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	engineer, ok := f.engineers[id]
	if !ok {
		return nil, nil
	}
	copied := *engineer
	return &copied, nil
}

func (f *fakeEngineerRepo) FindByOwner(ctx context.Context, ownerID uuid.UUID) (*entity.Engineer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, engineer := range f.engineers {
		if engineer.OwnerID == ownerID {
			copied := *engineer
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeEngineerRepo) FindAll(ctx context.Context, filter repository.DirectoryFilter) ([]*entity.Engineer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var result []*entity.Engineer
	for _, engineer := range f.engineers {
		copied := *engineer
		result = append(result, &copied)
	}
	return paginate(result, filter.Limit, filter.Offset), nil
}

func (f *fakeEngineerRepo) CountAll(ctx context.Context, filter repository.DirectoryFilter) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.engineers)), nil
}

func (f *fakeEngineerRepo) Update(ctx context.Context, engineer *entity.Engineer) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copied := *engineer
	f.engineers[engineer.ID] = &copied
	return nil
}

func (f *fakeEngineerRepo) Delete(ctx context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.engineers, id)
	return nil
}

func paginate[T any](items []*T, limit, offset int) []*T {
	if offset >= len(items) {
		return nil
	}
	items = items[offset:]
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return items
}

// ==================== TEST WIRING ====================

func newTestRepo() *repository.Repository {
	return &repository.Repository{
		Account:  newFakeAccountRepo(),
		Listing:  newFakeListingRepo(),
		Shop:     newFakeShopRepo(),
		Engineer: newFakeEngineerRepo(),
	}
}

func testConfig() *utils.Config {
	return &utils.Config{
		OTP: utils.OTPConfig{
			ExpiryMinutes: 5,
			Length:        6,
		},
		Listing: utils.ListingConfig{
			ExpiryDays:  90,
			MaxPageSize: 50,
		},
	}
}

func testJWT() *utils.JWTUtil {
	return utils.NewJWTUtil("test-secret", 1)
}

func testLogger() *zap.Logger {
	return zap.NewNop()
}
