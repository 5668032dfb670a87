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

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.OTPResponse, error)
	RequestOTP(ctx context.Context, phone string) (*response.OTPResponse, error)
	VerifyOTP(ctx context.Context, phone, code string) (*response.AuthResponse, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error)
}

type authService struct {
	repo   *repository.Repository
	config *utils.Config
	jwt    *utils.JWTUtil
	log    *zap.Logger
}

func NewAuthService(
	repo *repository.Repository,
	config *utils.Config,
	jwt *utils.JWTUtil,
	log *zap.Logger,
) AuthService {
	return &authService{
		repo:   repo,
		config: config,
		jwt:    jwt,
		log:    log.With(zap.String("service", "auth")),
	}
}

// Register creates an account for a new phone number, or reuses an existing
// unverified one. Either way a fresh one-time code is issued, so replaying
// the call is harmless.
func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*response.OTPResponse, error) {
	account, err := s.repo.Account.FindByPhone(ctx, req.Phone)
	if err != nil {
		s.log.Error("Failed to check phone", zap.Error(err), zap.String("phone", req.Phone))
		return nil, apperr.Internal(err)
	}

	if account != nil && account.Verified {
		return nil, apperr.Conflictf("phone already registered, log in instead")
	}

	now := time.Now()
	code, expiresAt := s.issueCode(now)

	if account == nil {
		account = &entity.Account{
			Base: entity.Base{
				ID:        uuid.New(),
				CreatedAt: now,
				UpdatedAt: now,
			},
			Phone:    req.Phone,
			Role:     entity.RoleUser,
			Verified: false,
			IsActive: true,
		}

		if err := s.applyProfile(account, req); err != nil {
			return nil, err
		}
		account.OTPCode = &code
		account.OTPExpiresAt = &expiresAt

		if err := s.repo.Account.Create(ctx, account); err != nil {
			s.log.Error("Failed to create account", zap.Error(err), zap.String("phone", req.Phone))
			return nil, apperr.Internal(err)
		}

		s.log.Info("Account registered",
			zap.String("account_id", account.ID.String()),
			zap.String("phone", account.Phone))
	} else {
		// Unverified account: keep the record, rotate the code
		if err := s.applyProfile(account, req); err != nil {
			return nil, err
		}
		account.OTPCode = &code
		account.OTPExpiresAt = &expiresAt
		account.UpdatedAt = now

		if err := s.repo.Account.Update(ctx, account); err != nil {
			s.log.Error("Failed to refresh unverified account", zap.Error(err),
				zap.String("account_id", account.ID.String()))
			return nil, apperr.Internal(err)
		}

		s.log.Info("Unverified account re-registered, code rotated",
			zap.String("account_id", account.ID.String()),
			zap.String("phone", account.Phone))
	}

	s.logCodeForDelivery(account.Phone, code, expiresAt)

	return &response.OTPResponse{Phone: account.Phone, OTPExpiresAt: expiresAt}, nil
}

// RequestOTP rotates the code for an existing account. Rotation after
// verification is harmless; the verified flag never flips back.
func (s *authService) RequestOTP(ctx context.Context, phone string) (*response.OTPResponse, error) {
	account, err := s.repo.Account.FindByPhone(ctx, phone)
	if err != nil {
		s.log.Error("Failed to find account for OTP", zap.Error(err), zap.String("phone", phone))
		return nil, apperr.Internal(err)
	}
	if account == nil {
		return nil, apperr.NotFoundf("no account for this phone number")
	}

	now := time.Now()
	code, expiresAt := s.issueCode(now)

	account.OTPCode = &code
	account.OTPExpiresAt = &expiresAt
	account.UpdatedAt = now

	if err := s.repo.Account.Update(ctx, account); err != nil {
		s.log.Error("Failed to store rotated code", zap.Error(err),
			zap.String("account_id", account.ID.String()))
		return nil, apperr.Internal(err)
	}

	s.logCodeForDelivery(account.Phone, code, expiresAt)

	return &response.OTPResponse{Phone: account.Phone, OTPExpiresAt: expiresAt}, nil
}

// VerifyOTP proves control of the phone number and issues a session
// credential. The code fields clear on success, so the same code can never
// satisfy a second check. Verification is monotonic.
func (s *authService) VerifyOTP(ctx context.Context, phone, code string) (*response.AuthResponse, error) {
	account, err := s.repo.Account.FindByPhone(ctx, phone)
	if err != nil {
		s.log.Error("Failed to find account for verification", zap.Error(err), zap.String("phone", phone))
		return nil, apperr.Internal(err)
	}
	if account == nil {
		return nil, apperr.NotFoundf("no account for this phone number")
	}

	now := time.Now()
	if !account.HasValidOTP(code, now) {
		s.log.Warn("Invalid or expired code",
			zap.String("account_id", account.ID.String()),
			zap.String("phone", phone))
		return nil, apperr.Validationf("invalid or expired code")
	}

	account.OTPCode = nil
	account.OTPExpiresAt = nil
	account.Verified = true
	account.LastLoginAt = &now
	account.UpdatedAt = now

	if err := s.repo.Account.Update(ctx, account); err != nil {
		s.log.Error("Failed to mark account verified", zap.Error(err),
			zap.String("account_id", account.ID.String()))
		return nil, apperr.Internal(err)
	}

	token, expiresAt, err := s.jwt.GenerateToken(account.ID, string(account.Role))
	if err != nil {
		s.log.Error("Failed to issue credential", zap.Error(err),
			zap.String("account_id", account.ID.String()))
		return nil, apperr.Internal(err)
	}

	s.log.Info("Phone verified",
		zap.String("account_id", account.ID.String()),
		zap.String("phone", phone))

	return response.AuthToResponse(account, token, expiresAt), nil
}

// Login authenticates with a password instead of a one-time code.
func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	account, err := s.repo.Account.FindByPhone(ctx, req.Phone)
	if err != nil {
		s.log.Error("Failed to find account for login", zap.Error(err), zap.String("phone", req.Phone))
		return nil, apperr.Internal(err)
	}
	if account == nil {
		return nil, apperr.NotFoundf("no account for this phone number")
	}

	if account.PasswordHash == nil || !utils.CheckPasswordHash(req.Password, *account.PasswordHash) {
		s.log.Warn("Invalid password", zap.String("account_id", account.ID.String()))
		return nil, apperr.Unauthenticated("invalid credentials")
	}

	if !account.IsActive {
		s.log.Warn("Inactive account tried to log in", zap.String("account_id", account.ID.String()))
		return nil, apperr.Unauthenticated("account is deactivated")
	}

	now := time.Now()
	account.LastLoginAt = &now
	account.UpdatedAt = now

	if err := s.repo.Account.Update(ctx, account); err != nil {
		// Login still succeeds; the timestamp is informational
		s.log.Warn("Failed to record login time", zap.Error(err),
			zap.String("account_id", account.ID.String()))
	}

	token, expiresAt, err := s.jwt.GenerateToken(account.ID, string(account.Role))
	if err != nil {
		s.log.Error("Failed to issue credential", zap.Error(err),
			zap.String("account_id", account.ID.String()))
		return nil, apperr.Internal(err)
	}

	s.log.Info("Account logged in",
		zap.String("account_id", account.ID.String()),
		zap.String("phone", account.Phone))

	return response.AuthToResponse(account, token, expiresAt), nil
}

// ==================== HELPERS ====================

func (s *authService) issueCode(now time.Time) (string, time.Time) {
	code := s.config.OTP.FixedCode
	if code == "" {
		code = utils.GenerateOTP(s.config.OTP.Length)
	}
	expiresAt := now.Add(time.Duration(s.config.OTP.ExpiryMinutes) * time.Minute)
	return code, expiresAt
}

func (s *authService) applyProfile(account *entity.Account, req *request.RegisterRequest) error {
	if req.Name != nil {
		account.Name = req.Name
	}
	if req.Password != nil {
		hashed, err := utils.HashPassword(*req.Password)
		if err != nil {
			s.log.Error("Failed to hash password", zap.Error(err))
			return apperr.Internal(err)
		}
		account.PasswordHash = &hashed
	}
	return nil
}

// logCodeForDelivery stands in for an SMS gateway: codes are written to the
// application log, never into API responses.
func (s *authService) logCodeForDelivery(phone, code string, expiresAt time.Time) {
	s.log.Info("OTP issued",
		zap.String("phone", phone),
		zap.String("otp_code", code),
		zap.Time("expires_at", expiresAt),
	)
}
