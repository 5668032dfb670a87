package middleware

import (
	"net/http"
	"strings"

	"solar-marketplace/internal/data/entity"
	"solar-marketplace/internal/data/repository"
	"solar-marketplace/pkg/utils"

	"go.uber.org/zap"
)

// CredentialCookie is the cookie name checked when no Authorization header is present.
const CredentialCookie = "access_token"

// Auth validates the bearer credential and attaches the account to the request
// context. The token itself is stateless; account existence and the active
// flag are re-checked against current state on every request, so deactivation
// takes effect lazily without a revocation list.
func Auth(jwtUtil *utils.JWTUtil, accountRepo repository.AccountRepository, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractCredential(r)
			if token == "" {
				utils.ResponseUnauthorized(w, "Missing authorization token")
				return
			}

			claims, err := jwtUtil.ValidateToken(token)
			if err != nil {
				logger.Warn("Invalid credential", zap.Error(err))
				utils.ResponseUnauthorized(w, "Invalid or expired token")
				return
			}

			accountID, err := utils.ParseUUID(claims.AccountID)
			if err != nil {
				logger.Warn("Malformed account id in credential",
					zap.String("account_id", claims.AccountID))
				utils.ResponseUnauthorized(w, "Invalid or expired token")
				return
			}

			account, err := accountRepo.FindByID(r.Context(), accountID)
			if err != nil {
				logger.Error("Failed to load account for credential",
					zap.Error(err),
					zap.String("account_id", accountID.String()))
				utils.ResponseInternalError(w, "Internal server error")
				return
			}

			if account == nil || !account.IsActive {
				logger.Warn("Credential references missing or inactive account",
					zap.String("account_id", accountID.String()))
				utils.ResponseUnauthorized(w, "Account no longer active")
				return
			}

			ctx := utils.SetAccountContext(r.Context(), account.ID, string(account.Role), account.Verified)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Admin requires the admin role. Must run after Auth.
func Admin(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := utils.GetRoleFromContext(r.Context())
			if !ok {
				utils.ResponseUnauthorized(w, "Authentication required")
				return
			}

			if role != string(entity.RoleAdmin) {
				accountID, _ := utils.GetAccountIDFromContext(r.Context())
				logger.Warn("Admin check: non-admin access attempt",
					zap.String("account_id", accountID.String()),
					zap.String("path", r.URL.Path))
				utils.ResponseForbidden(w, "Admin access required")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// Verified requires a phone-verified account. Must run after Auth.
func Verified(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := utils.GetAccountIDFromContext(r.Context()); !ok {
				utils.ResponseUnauthorized(w, "Authentication required")
				return
			}

			if !utils.IsVerifiedFromContext(r.Context()) {
				accountID, _ := utils.GetAccountIDFromContext(r.Context())
				logger.Warn("Unverified account attempted restricted action",
					zap.String("account_id", accountID.String()),
					zap.String("path", r.URL.Path))
				utils.ResponseForbidden(w, "Phone verification required")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// extractCredential accepts the bearer header and the cookie interchangeably.
func extractCredential(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return strings.TrimSpace(parts[1])
		}
		return ""
	}

	cookie, err := r.Cookie(CredentialCookie)
	if err != nil {
		return ""
	}
	return cookie.Value
}
