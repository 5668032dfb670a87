package entity

import "time"

type AccountRole string

const (
	RoleUser  AccountRole = "user"
	RoleAdmin AccountRole = "admin"
)

// Account is a phone-number-identified principal. The one-time code and its
// expiry live inline on the record; both are cleared the moment verification
// succeeds, so a consumed code can never satisfy a later check.
type Account struct {
	Base
	Phone        string      `db:"phone"`
	Name         *string     `db:"name"`
	PasswordHash *string     `db:"password"`
	Role         AccountRole `db:"role"`
	Verified     bool        `db:"verified"`
	OTPCode      *string     `db:"otp_code"`
	OTPExpiresAt *time.Time  `db:"otp_expires_at"`
	LastLoginAt  *time.Time  `db:"last_login_at"`
	IsActive     bool        `db:"is_active"`
}

// HasValidOTP reports whether the stored code matches and has not expired.
func (a *Account) HasValidOTP(code string, now time.Time) bool {
	if a.OTPCode == nil || a.OTPExpiresAt == nil {
		return false
	}
	if *a.OTPCode != code {
		return false
	}
	return now.Before(*a.OTPExpiresAt)
}
