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

type EngineerRepository interface {
	Create(ctx context.Context, engineer *entity.Engineer) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Engineer, error)
	FindByOwner(ctx context.Context, ownerID uuid.UUID) (*entity.Engineer, error)
	FindAll(ctx context.Context, filter DirectoryFilter) ([]*entity.Engineer, error)
	CountAll(ctx context.Context, filter DirectoryFilter) (int64, error)
	Update(ctx context.Context, engineer *entity.Engineer) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type engineerRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewEngineerRepository(db database.PgxIface, log *zap.Logger) EngineerRepository {
	return &engineerRepository{
		db:  db,
		log: log,
	}
}

const engineerColumns = `id, owner_id, name, specialty, bio, phone, region, locality,
		       years_experience, created_at, updated_at`

func (er *engineerRepository) Create(ctx context.Context, engineer *entity.Engineer) error {
	query := `
		INSERT INTO engineers (id, owner_id, name, specialty, bio, phone, region, locality,
		                       years_experience, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := er.db.Exec(ctx, query,
		engineer.ID,
		engineer.OwnerID,
		engineer.Name,
		engineer.Specialty,
		engineer.Bio,
		engineer.Phone,
		engineer.Region,
		engineer.Locality,
		engineer.YearsExperience,
		engineer.CreatedAt,
		engineer.UpdatedAt,
	)

	if err != nil {
		er.log.Error("Failed to create engineer",
			zap.Error(err),
			zap.String("name", engineer.Name),
		)
		return fmt.Errorf("create engineer %s: %w", engineer.Name, err)
	}

	return nil
}

func (er *engineerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Engineer, error) {
	query := `SELECT ` + engineerColumns + ` FROM engineers WHERE id = $1`

	var engineer entity.Engineer
	err := er.scan(er.db.QueryRow(ctx, query, id), &engineer)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		er.log.Error("Failed to find engineer by ID",
			zap.Error(err),
			zap.String("engineer_id", id.String()),
		)
		return nil, fmt.Errorf("find engineer by ID %s: %w", id.String(), err)
	}

	return &engineer, nil
}

func (er *engineerRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) (*entity.Engineer, error) {
	query := `SELECT ` + engineerColumns + ` FROM engineers WHERE owner_id = $1`

	var engineer entity.Engineer
	err := er.scan(er.db.QueryRow(ctx, query, ownerID), &engineer)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		er.log.Error("Failed to find engineer by owner",
			zap.Error(err),
			zap.String("owner_id", ownerID.String()),
		)
		return nil, fmt.Errorf("find engineer by owner %s: %w", ownerID.String(), err)
	}

	return &engineer, nil
}

func (er *engineerRepository) FindAll(ctx context.Context, filter DirectoryFilter) ([]*entity.Engineer, error) {
	where, args := buildEngineerWhere(filter)

	query := fmt.Sprintf(`
		SELECT `+engineerColumns+`
		FROM engineers
		%s
		ORDER BY years_experience DESC, created_at DESC
		LIMIT $%d OFFSET $%d
	`, where, len(args)+1, len(args)+2)

	args = append(args, filter.Limit, filter.Offset)

	rows, err := er.db.Query(ctx, query, args...)
	if err != nil {
		er.log.Error("Failed to query engineers", zap.Error(err))
		return nil, fmt.Errorf("query engineers: %w", err)
	}
	defer rows.Close()

	var engineers []*entity.Engineer
	for rows.Next() {
		var engineer entity.Engineer
		if err := er.scan(rows, &engineer); err != nil {
			er.log.Error("Failed to scan engineer row", zap.Error(err))
			return nil, fmt.Errorf("scan engineer row: %w", err)
		}
		engineers = append(engineers, &engineer)
	}

	if err := rows.Err(); err != nil {
		er.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate engineer rows: %w", err)
	}

	return engineers, nil
}

func (er *engineerRepository) CountAll(ctx context.Context, filter DirectoryFilter) (int64, error) {
	where, args := buildEngineerWhere(filter)

	query := `SELECT COUNT(*) FROM engineers ` + where

	var count int64
	if err := er.db.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		er.log.Error("Failed to count engineers", zap.Error(err))
		return 0, fmt.Errorf("count engineers: %w", err)
	}

	return count, nil
}

func (er *engineerRepository) Update(ctx context.Context, engineer *entity.Engineer) error {
	query := `
		UPDATE engineers
		SET name = $2, specialty = $3, bio = $4, phone = $5,
		    region = $6, locality = $7, years_experience = $8, updated_at = $9
		WHERE id = $1
	`

	result, err := er.db.Exec(ctx, query,
		engineer.ID,
		engineer.Name,
		engineer.Specialty,
		engineer.Bio,
		engineer.Phone,
		engineer.Region,
		engineer.Locality,
		engineer.YearsExperience,
		engineer.UpdatedAt,
	)

	if err != nil {
		er.log.Error("Failed to update engineer",
			zap.Error(err),
			zap.String("engineer_id", engineer.ID.String()),
		)
		return fmt.Errorf("update engineer %s: %w", engineer.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("engineer %s not found", engineer.ID.String())
	}

	return nil
}

func (er *engineerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM engineers WHERE id = $1`

	result, err := er.db.Exec(ctx, query, id)
	if err != nil {
		er.log.Error("Failed to delete engineer",
			zap.Error(err),
			zap.String("id", id.String()),
		)
		return fmt.Errorf("delete engineer %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("engineer %s not found", id.String())
	}

	return nil
}

func buildEngineerWhere(filter DirectoryFilter) (string, []any) {
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
	if filter.Specialty != nil {
		args = append(args, "%"+*filter.Specialty+"%")
		conditions = append(conditions, fmt.Sprintf("specialty ILIKE $%d", len(args)))
	}

	if len(conditions) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(conditions, " AND "), args
}

func (er *engineerRepository) scan(row pgx.Row, engineer *entity.Engineer) error {
	return row.Scan(
		&engineer.ID,
		&engineer.OwnerID,
		&engineer.Name,
		&engineer.Specialty,
		&engineer.Bio,
		&engineer.Phone,
		&engineer.Region,
		&engineer.Locality,
		&engineer.YearsExperience,
		&engineer.CreatedAt,
		&engineer.UpdatedAt,
	)
}
