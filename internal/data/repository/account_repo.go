package repository

import (
	"context"
	"fmt"

	"solar-marketplace/internal/data/entity"
	"solar-marketplace/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type AccountRepository interface {
	Create(ctx context.Context, account *entity.Account) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)
	FindByPhone(ctx context.Context, phone string) (*entity.Account, error)
	Update(ctx context.Context, account *entity.Account) error
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type accountRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewAccountRepository(db database.PgxIface, log *zap.Logger) AccountRepository {
	return &accountRepository{
		db:  db,
		log: log,
	}
}

const accountColumns = `id, phone, name, password, role, verified,
		       otp_code, otp_expires_at, last_login_at, is_active,
		       created_at, updated_at, deleted_at`

func (ar *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	query := `
		INSERT INTO accounts (id, phone, name, password, role, verified,
		                      otp_code, otp_expires_at, last_login_at, is_active,
		                      created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := ar.db.Exec(ctx, query,
		account.ID,
		account.Phone,
		account.Name,
		account.PasswordHash,
		account.Role,
		account.Verified,
		account.OTPCode,
		account.OTPExpiresAt,
		account.LastLoginAt,
		account.IsActive,
		account.CreatedAt,
		account.UpdatedAt,
	)

	if err != nil {
		ar.log.Error("Failed to create account",
			zap.Error(err),
			zap.String("phone", account.Phone),
		)
		return fmt.Errorf("create account %s: %w", account.Phone, err)
	}

	return nil
}

func (ar *accountRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	query := `
		SELECT ` + accountColumns + `
		FROM accounts
		WHERE id = $1 AND deleted_at IS NULL
	`

	account, err := ar.scanOne(ar.db.QueryRow(ctx, query, id))
	if err != nil {
		ar.log.Error("Failed to find account by ID",
			zap.Error(err),
			zap.String("account_id", id.String()),
		)
		return nil, fmt.Errorf("find account by ID %s: %w", id.String(), err)
	}

	return account, nil
}

func (ar *accountRepository) FindByPhone(ctx context.Context, phone string) (*entity.Account, error) {
	query := `
		SELECT ` + accountColumns + `
		FROM accounts
		WHERE phone = $1 AND deleted_at IS NULL
	`

	account, err := ar.scanOne(ar.db.QueryRow(ctx, query, phone))
	if err != nil {
		ar.log.Error("Failed to find account by phone",
			zap.Error(err),
			zap.String("phone", phone),
		)
		return nil, fmt.Errorf("find account by phone %s: %w", phone, err)
	}

	return account, nil
}

func (ar *accountRepository) Update(ctx context.Context, account *entity.Account) error {
	query := `
		UPDATE accounts
		SET phone = $2, name = $3, password = $4, role = $5, verified = $6,
		    otp_code = $7, otp_expires_at = $8, last_login_at = $9,
		    is_active = $10, updated_at = $11
		WHERE id = $1 AND deleted_at IS NULL
	`

	result, err := ar.db.Exec(ctx, query,
		account.ID,
		account.Phone,
		account.Name,
		account.PasswordHash,
		account.Role,
		account.Verified,
		account.OTPCode,
		account.OTPExpiresAt,
		account.LastLoginAt,
		account.IsActive,
		account.UpdatedAt,
	)

	if err != nil {
		ar.log.Error("Failed to update account",
			zap.Error(err),
			zap.String("account_id", account.ID.String()),
		)
		return fmt.Errorf("update account %s: %w", account.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("account %s not found or already deleted", account.ID.String())
	}

	return nil
}

func (ar *accountRepository) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	query := `UPDATE accounts SET is_active = $2, updated_at = NOW() WHERE id = $1 AND deleted_at IS NULL`

	result, err := ar.db.Exec(ctx, query, id, active)
	if err != nil {
		ar.log.Error("Failed to set account active flag",
			zap.Error(err),
			zap.String("account_id", id.String()),
			zap.Bool("active", active),
		)
		return fmt.Errorf("set account %s active: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("account %s not found", id.String())
	}

	return nil
}

func (ar *accountRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE accounts SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`

	result, err := ar.db.Exec(ctx, query, id)
	if err != nil {
		ar.log.Error("Failed to delete account",
			zap.Error(err),
			zap.String("id", id.String()),
		)
		return fmt.Errorf("delete account %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("account %s not found", id.String())
	}

	ar.log.Info("Account deleted", zap.String("id", id.String()))
	return nil
}

func (ar *accountRepository) scanOne(row pgx.Row) (*entity.Account, error) {
	var account entity.Account
	err := row.Scan(
		&account.ID,
		&account.Phone,
		&account.Name,
		&account.PasswordHash,
		&account.Role,
		&account.Verified,
		&account.OTPCode,
		&account.OTPExpiresAt,
		&account.LastLoginAt,
		&account.IsActive,
		&account.CreatedAt,
		&account.UpdatedAt,
		&account.DeletedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &account, nil
}
