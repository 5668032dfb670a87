package entity

import "github.com/google/uuid"

// Shop is a directory entry for a solar equipment store. Verification is an
// admin-set badge, not a moderation lifecycle.
type Shop struct {
	BaseNoDelete
	OwnerID     uuid.UUID `db:"owner_id"`
	Name        string    `db:"name"`
	Description *string   `db:"description"`
	Phone       string    `db:"phone"`
	Region      string    `db:"region"`
	Locality    string    `db:"locality"`
	Verified    bool      `db:"verified"`
}
