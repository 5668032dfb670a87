package utils

import (
	"context"

	"github.com/google/uuid"
)

type contextKey string

const (
	AccountIDKey contextKey = "account_id"
	RoleKey      contextKey = "role"
	VerifiedKey  contextKey = "verified"
)

func GetAccountIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	idVal := ctx.Value(AccountIDKey)
	if idVal == nil {
		return uuid.Nil, false
	}

	idStr, ok := idVal.(string)
	if !ok {
		return uuid.Nil, false
	}

	accountID, err := uuid.Parse(idStr)
	if err != nil {
		return uuid.Nil, false
	}

	return accountID, true
}

func GetRoleFromContext(ctx context.Context) (string, bool) {
	roleVal := ctx.Value(RoleKey)
	if roleVal == nil {
		return "", false
	}

	role, ok := roleVal.(string)
	return role, ok
}

func IsVerifiedFromContext(ctx context.Context) bool {
	verifiedVal := ctx.Value(VerifiedKey)
	if verifiedVal == nil {
		return false
	}

	verified, ok := verifiedVal.(bool)
	return ok && verified
}

func SetAccountContext(ctx context.Context, accountID uuid.UUID, role string, verified bool) context.Context {
	ctx = context.WithValue(ctx, AccountIDKey, accountID.String())
	ctx = context.WithValue(ctx, RoleKey, role)
	ctx = context.WithValue(ctx, VerifiedKey, verified)
	return ctx
}
