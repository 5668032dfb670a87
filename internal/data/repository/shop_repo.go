package repository

import (
	"context"
	"fmt"
	"strings"

	"solar-marketplace/internal/data/entity"
	"solar-marketplace/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// DirectoryFilter narrows public directory listings for shops and engineers.
type DirectoryFilter struct {
	Region    *string
	Locality  *string
	Specialty *string
	Limit     int
	Offset    int
}

type ShopRepository interface {
	Create(ctx context.Context, shop *entity.Shop) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Shop, error)
	FindByOwner(ctx context.Context, ownerID uuid.UUID) (*entity.Shop, error)
	FindAll(ctx context.Context, filter DirectoryFilter) ([]*entity.Shop, error)
	CountAll(ctx context.Context, filter DirectoryFilter) (int64, error)
	Update(ctx context.Context, shop *entity.Shop) error
	SetVerified(ctx context.Context, id uuid.UUID, verified bool) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type shopRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewShopRepository(db database.PgxIface, log *zap.Logger) ShopRepository {
	return &shopRepository{
		db:  db,
		log: log,
	}
}

const shopColumns = `id, owner_id, name, description, phone, region, locality,
		       verified, created_at, updated_at`

func (sr *shopRepository) Create(ctx context.Context, shop *entity.Shop) error {
	query := `
		INSERT INTO shops (id, owner_id, name, description, phone, region, locality,
		                   verified, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := sr.db.Exec(ctx, query,
		shop.ID,
		shop.OwnerID,
		shop.Name,
		shop.Description,
		shop.Phone,
		shop.Region,
		shop.Locality,
		shop.Verified,
		shop.CreatedAt,
		shop.UpdatedAt,
	)

	if err != nil {
		sr.log.Error("Failed to create shop",
			zap.Error(err),
			zap.String("name", shop.Name),
		)
		return fmt.Errorf("create shop %s: %w", shop.Name, err)
	}

	return nil
}

func (sr *shopRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Shop, error) {
	query := `SELECT ` + shopColumns + ` FROM shops WHERE id = $1`

	var shop entity.Shop
	err := sr.scan(sr.db.QueryRow(ctx, query, id), &shop)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		sr.log.Error("Failed to find shop by ID",
			zap.Error(err),
			zap.String("shop_id", id.String()),
		)
		return nil, fmt.Errorf("find shop by ID %s: %w", id.String(), err)
	}

	return &shop, nil
}

func (sr *shopRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) (*entity.Shop, error) {
	query := `SELECT ` + shopColumns + ` FROM shops WHERE owner_id = $1`

	var shop entity.Shop
	err := sr.scan(sr.db.QueryRow(ctx, query, ownerID), &shop)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		sr.log.Error("Failed to find shop by owner",
			zap.Error(err),
			zap.String("owner_id", ownerID.String()),
		)
		return nil, fmt.Errorf("find shop by owner %s: %w", ownerID.String(), err)
	}

	return &shop, nil
}

func (sr *shopRepository) FindAll(ctx context.Context, filter DirectoryFilter) ([]*entity.Shop, error) {
	where, args := buildShopWhere(filter)

	query := fmt.Sprintf(`
		SELECT `+shopColumns+`
		FROM shops
		%s
		ORDER BY verified DESC, created_at DESC
		LIMIT $%d OFFSET $%d
	`, where, len(args)+1, len(args)+2)

	args = append(args, filter.Limit, filter.Offset)

	rows, err := sr.db.Query(ctx, query, args...)
	if err != nil {
		sr.log.Error("Failed to query shops", zap.Error(err))
		return nil, fmt.Errorf("query shops: %w", err)
	}
	defer rows.Close()

	var shops []*entity.Shop
	for rows.Next() {
		var shop entity.Shop
		if err := sr.scan(rows, &shop); err != nil {
			sr.log.Error("Failed to scan shop row", zap.Error(err))
			return nil, fmt.Errorf("scan shop row: %w", err)
		}
		shops = append(shops, &shop)
	}

	if err := rows.Err(); err != nil {
		sr.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate shop rows: %w", err)
	}

	return shops, nil
}

func (sr *shopRepository) CountAll(ctx context.Context, filter DirectoryFilter) (int64, error) {
	where, args := buildShopWhere(filter)

	query := `SELECT COUNT(*) FROM shops ` + where

	var count int64
	if err := sr.db.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		sr.log.Error("Failed to count shops", zap.Error(err))
		return 0, fmt.Errorf("count shops: %w", err)
	}

	return count, nil
}

func (sr *shopRepository) Update(ctx context.Context, shop *entity.Shop) error {
	query := `
		UPDATE shops
		SET name = $2, description = $3, phone = $4, region = $5,
		    locality = $6, verified = $7, updated_at = $8
		WHERE id = $1
	`

	result, err := sr.db.Exec(ctx, query,
		shop.ID,
		shop.Name,
		shop.Description,
		shop.Phone,
		shop.Region,
		shop.Locality,
		shop.Verified,
		shop.UpdatedAt,
	)

	if err != nil {
		sr.log.Error("Failed to update shop",
			zap.Error(err),
			zap.String("shop_id", shop.ID.String()),
		)
		return fmt.Errorf("update shop %s: %w", shop.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("shop %s not found", shop.ID.String())
	}

	return nil
}

func (sr *shopRepository) SetVerified(ctx context.Context, id uuid.UUID, verified bool) error {
	query := `UPDATE shops SET verified = $2, updated_at = NOW() WHERE id = $1`

	result, err := sr.db.Exec(ctx, query, id, verified)
	if err != nil {
		sr.log.Error("Failed to set shop verified flag",
			zap.Error(err),
			zap.String("shop_id", id.String()),
		)
		return fmt.Errorf("set shop %s verified: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("shop %s not found", id.String())
	}

	return nil
}

func (sr *shopRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM shops WHERE id = $1`

	result, err := sr.db.Exec(ctx, query, id)
	if err != nil {
		sr.log.Error("Failed to delete shop",
			zap.Error(err),
			zap.String("id", id.String()),
		)
		return fmt.Errorf("delete shop %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("shop %s not found", id.String())
	}

	return nil
}

func buildShopWhere(filter DirectoryFilter) (string, []any) {
	var conditions []string
	var args []any

	if filter.Region != nil {
		args = append(args, "%"+*filter.Region+"%")
		conditions = append(conditions, fmt.Sprintf("region ILIKE $%d", len(args)))
	}
	if filter.Locality != nil {
		args = append(args, "%"+*filter.Locality+"%")
		conditions = append(conditions, fmt.Sprintf("locality ILIKE $%d", len(args)))
	}

	if len(conditions) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(conditions, " AND "), args
}

func (sr *shopRepository) scan(row pgx.Row, shop *entity.Shop) error {
	return row.Scan(
		&shop.ID,
		&shop.OwnerID,
		&shop.Name,
		&shop.Description,
		&shop.Phone,
		&shop.Region,
		&shop.Locality,
		&shop.Verified,
		&shop.CreatedAt,
		&shop.UpdatedAt,
	)
}
