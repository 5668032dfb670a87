package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"solar-marketplace/internal/data/entity"
	"solar-marketplace/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// ListingFilter narrows public browse queries. Region and Locality match as
// case-insensitive substrings; Query searches name, description and brand.
type ListingFilter struct {
	Category  *string
	Condition *string
	Region    *string
	Locality  *string
	Query     *string
	MinPrice  *float64
	MaxPrice  *float64
	SortBy    string // created_at | price | name
	SortDesc  bool
	Limit     int
	Offset    int
}

type ListingRepository interface {
	Create(ctx context.Context, listing *entity.Listing) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Listing, error)
	FindByOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]*entity.Listing, error)
	CountByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error)
	FindByStatus(ctx context.Context, status entity.ListingStatus, limit, offset int) ([]*entity.Listing, error)
	CountByStatus(ctx context.Context, status entity.ListingStatus) (int64, error)
	Update(ctx context.Context, listing *entity.Listing) error
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to entity.ListingStatus, reason *string, reviewerID uuid.UUID, reviewedAt time.Time) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Search(ctx context.Context, filter ListingFilter) ([]*entity.Listing, error)
	CountSearch(ctx context.Context, filter ListingFilter) (int64, error)
	ExpireOverdue(ctx context.Context) (int64, error)
}

type listingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewListingRepository(db database.PgxIface, log *zap.Logger) ListingRepository {
	return &listingRepository{
		db:  db,
		log: log,
	}
}

const listingColumns = `id, owner_id, name, description, brand, category, condition,
		       price, currency, phone, whatsapp, region, locality,
		       status, rejection_reason, reviewed_by, reviewed_at,
		       expires_at, created_at, updated_at`

// sortColumns whitelists caller-chosen sort fields.
var sortColumns = map[string]string{
	"created_at": "created_at",
	"price":      "price",
	"name":       "name",
}

func (lr *listingRepository) Create(ctx context.Context, listing *entity.Listing) error {
	query := `
		INSERT INTO listings (id, owner_id, name, description, brand, category, condition,
		                      price, currency, phone, whatsapp, region, locality,
		                      status, rejection_reason, reviewed_by, reviewed_at,
		                      expires_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
		        $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
	`

	_, err := lr.db.Exec(ctx, query,
		listing.ID,
		listing.OwnerID,
		listing.Name,
		listing.Description,
		listing.Brand,
		listing.Category,
		listing.Condition,
		listing.Price,
		listing.Currency,
		listing.Phone,
		listing.WhatsApp,
		listing.Region,
		listing.Locality,
		listing.Status,
		listing.RejectionReason,
		listing.ReviewedBy,
		listing.ReviewedAt,
		listing.ExpiresAt,
		listing.CreatedAt,
		listing.UpdatedAt,
	)

	if err != nil {
		lr.log.Error("Failed to create listing",
			zap.Error(err),
			zap.String("name", listing.Name),
			zap.String("owner_id", listing.OwnerID.String()),
		)
		return fmt.Errorf("create listing %s: %w", listing.Name, err)
	}

	return nil
}

func (lr *listingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Listing, error) {
	query := `
		SELECT ` + listingColumns + `
		FROM listings
		WHERE id = $1
	`

	var listing entity.Listing
	err := lr.scan(lr.db.QueryRow(ctx, query, id), &listing)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		lr.log.Error("Failed to find listing by ID",
			zap.Error(err),
			zap.String("listing_id", id.String()),
		)
		return nil, fmt.Errorf("find listing by ID %s: %w", id.String(), err)
	}

	return &listing, nil
}

func (lr *listingRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]*entity.Listing, error) {
	query := `
		SELECT ` + listingColumns + `
		FROM listings
		WHERE owner_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	return lr.queryMany(ctx, query, ownerID, limit, offset)
}

func (lr *listingRepository) CountByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM listings WHERE owner_id = $1`

	var count int64
	if err := lr.db.QueryRow(ctx, query, ownerID).Scan(&count); err != nil {
		lr.log.Error("Failed to count listings by owner",
			zap.Error(err),
			zap.String("owner_id", ownerID.String()),
		)
		return 0, fmt.Errorf("count listings by owner %s: %w", ownerID.String(), err)
	}

	return count, nil
}

func (lr *listingRepository) FindByStatus(ctx context.Context, status entity.ListingStatus, limit, offset int) ([]*entity.Listing, error) {
	query := `
		SELECT ` + listingColumns + `
		FROM listings
		WHERE status = $1
		ORDER BY created_at ASC
		LIMIT $2 OFFSET $3
	`

	return lr.queryMany(ctx, query, status, limit, offset)
}

func (lr *listingRepository) CountByStatus(ctx context.Context, status entity.ListingStatus) (int64, error) {
	query := `SELECT COUNT(*) FROM listings WHERE status = $1`

	var count int64
	if err := lr.db.QueryRow(ctx, query, status).Scan(&count); err != nil {
		lr.log.Error("Failed to count listings by status",
			zap.Error(err),
			zap.String("status", string(status)),
		)
		return 0, fmt.Errorf("count listings by status %s: %w", status, err)
	}

	return count, nil
}

func (lr *listingRepository) Update(ctx context.Context, listing *entity.Listing) error {
	query := `
		UPDATE listings
		SET name = $2, description = $3, brand = $4, category = $5, condition = $6,
		    price = $7, currency = $8, phone = $9, whatsapp = $10,
		    region = $11, locality = $12, status = $13, rejection_reason = $14,
		    reviewed_by = $15, reviewed_at = $16, expires_at = $17, updated_at = $18
		WHERE id = $1
	`

	result, err := lr.db.Exec(ctx, query,
		listing.ID,
		listing.Name,
		listing.Description,
		listing.Brand,
		listing.Category,
		listing.Condition,
		listing.Price,
		listing.Currency,
		listing.Phone,
		listing.WhatsApp,
		listing.Region,
		listing.Locality,
		listing.Status,
		listing.RejectionReason,
		listing.ReviewedBy,
		listing.ReviewedAt,
		listing.ExpiresAt,
		listing.UpdatedAt,
	)

	if err != nil {
		lr.log.Error("Failed to update listing",
			zap.Error(err),
			zap.String("listing_id", listing.ID.String()),
		)
		return fmt.Errorf("update listing %s: %w", listing.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("listing %s not found", listing.ID.String())
	}

	return nil
}

// UpdateStatus applies a moderation disposition with a compare-and-swap on the
// current status. Returns false when the stored status no longer matches, so a
// racing transition fails cleanly instead of clobbering.
func (lr *listingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to entity.ListingStatus, reason *string, reviewerID uuid.UUID, reviewedAt time.Time) (bool, error) {
	query := `
		UPDATE listings
		SET status = $3, rejection_reason = $4, reviewed_by = $5,
		    reviewed_at = $6, updated_at = $6
		WHERE id = $1 AND status = $2
	`

	result, err := lr.db.Exec(ctx, query, id, from, to, reason, reviewerID, reviewedAt)
	if err != nil {
		lr.log.Error("Failed to update listing status",
			zap.Error(err),
			zap.String("listing_id", id.String()),
			zap.String("from", string(from)),
			zap.String("to", string(to)),
		)
		return false, fmt.Errorf("update listing %s status: %w", id.String(), err)
	}

	return result.RowsAffected() > 0, nil
}

func (lr *listingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM listings WHERE id = $1`

	result, err := lr.db.Exec(ctx, query, id)
	if err != nil {
		lr.log.Error("Failed to delete listing",
			zap.Error(err),
			zap.String("id", id.String()),
		)
		return fmt.Errorf("delete listing %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("listing %s not found", id.String())
	}

	lr.log.Info("Listing deleted", zap.String("id", id.String()))
	return nil
}

// Search returns publicly visible listings only: approved and not yet expired.
func (lr *listingRepository) Search(ctx context.Context, filter ListingFilter) ([]*entity.Listing, error) {
	where, args := buildSearchWhere(filter)

	sortCol, ok := sortColumns[filter.SortBy]
	if !ok {
		sortCol = "created_at"
	}
	direction := "ASC"
	if filter.SortDesc {
		direction = "DESC"
	}

	query := fmt.Sprintf(`
		SELECT `+listingColumns+`
		FROM listings
		%s
		ORDER BY %s %s, created_at DESC
		LIMIT $%d OFFSET $%d
	`, where, sortCol, direction, len(args)+1, len(args)+2)

	args = append(args, filter.Limit, filter.Offset)

	return lr.queryMany(ctx, query, args...)
}

func (lr *listingRepository) CountSearch(ctx context.Context, filter ListingFilter) (int64, error) {
	where, args := buildSearchWhere(filter)

	query := `SELECT COUNT(*) FROM listings ` + where

	var count int64
	if err := lr.db.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		lr.log.Error("Failed to count search results", zap.Error(err))
		return 0, fmt.Errorf("count listings search: %w", err)
	}

	return count, nil
}

// ExpireOverdue flips approved listings past their horizon to inactive.
// Housekeeping only; browse visibility never depends on it.
func (lr *listingRepository) ExpireOverdue(ctx context.Context) (int64, error) {
	query := `
		UPDATE listings
		SET status = 'inactive', updated_at = NOW()
		WHERE status = 'approved' AND expires_at <= NOW()
	`

	result, err := lr.db.Exec(ctx, query)
	if err != nil {
		lr.log.Error("Failed to expire overdue listings", zap.Error(err))
		return 0, fmt.Errorf("expire overdue listings: %w", err)
	}

	return result.RowsAffected(), nil
}

func buildSearchWhere(filter ListingFilter) (string, []any) {
	conditions := []string{"status = 'approved'", "expires_at > NOW()"}
	var args []any

	if filter.Category != nil {
		args = append(args, *filter.Category)
		conditions = append(conditions, fmt.Sprintf("category = $%d", len(args)))
	}
	if filter.Condition != nil {
		args = append(args, *filter.Condition)
		conditions = append(conditions, fmt.Sprintf("condition = $%d", len(args)))
	}
	if filter.Region != nil {
		args = append(args, "%"+*filter.Region+"%")
		conditions = append(conditions, fmt.Sprintf("region ILIKE $%d", len(args)))
	}
	if filter.Locality != nil {
		args = append(args, "%"+*filter.Locality+"%")
		conditions = append(conditions, fmt.Sprintf("locality ILIKE $%d", len(args)))
	}
	if filter.Query != nil {
		args = append(args, "%"+*filter.Query+"%")
		idx := len(args)
		conditions = append(conditions, fmt.Sprintf(
			"(name ILIKE $%d OR description ILIKE $%d OR brand ILIKE $%d)", idx, idx, idx))
	}
	if filter.MinPrice != nil {
		args = append(args, *filter.MinPrice)
		conditions = append(conditions, fmt.Sprintf("price >= $%d", len(args)))
	}
	if filter.MaxPrice != nil {
		args = append(args, *filter.MaxPrice)
		conditions = append(conditions, fmt.Sprintf("price <= $%d", len(args)))
	}

	return "WHERE " + strings.Join(conditions, " AND "), args
}

func (lr *listingRepository) queryMany(ctx context.Context, query string, args ...any) ([]*entity.Listing, error) {
	rows, err := lr.db.Query(ctx, query, args...)
	if err != nil {
		lr.log.Error("Failed to query listings", zap.Error(err))
		return nil, fmt.Errorf("query listings: %w", err)
	}
	defer rows.Close()

	var listings []*entity.Listing
	for rows.Next() {
		var listing entity.Listing
		if err := lr.scan(rows, &listing); err != nil {
			lr.log.Error("Failed to scan listing row", zap.Error(err))
			return nil, fmt.Errorf("scan listing row: %w", err)
		}
		listings = append(listings, &listing)
	}

	if err := rows.Err(); err != nil {
		lr.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate listing rows: %w", err)
	}

	return listings, nil
}

func (lr *listingRepository) scan(row pgx.Row, listing *entity.Listing) error {
	return row.Scan(
		&listing.ID,
		&listing.OwnerID,
		&listing.Name,
		&listing.Description,
		&listing.Brand,
		&listing.Category,
		&listing.Condition,
		&listing.Price,
		&listing.Currency,
		&listing.Phone,
		&listing.WhatsApp,
		&listing.Region,
		&listing.Locality,
		&listing.Status,
		&listing.RejectionReason,
		&listing.ReviewedBy,
		&listing.ReviewedAt,
		&listing.ExpiresAt,
		&listing.CreatedAt,
		&listing.UpdatedAt,
	)
}
