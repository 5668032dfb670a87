package entity

import (
	"time"

	"github.com/google/uuid"
)

type ListingStatus string

const (
	StatusPending  ListingStatus = "pending"
	StatusApproved ListingStatus = "approved"
	StatusRejected ListingStatus = "rejected"
	StatusSold     ListingStatus = "sold"
	StatusInactive ListingStatus = "inactive"
)

// AllowedTransitions is the moderation graph for admin dispositions. A rejected
// listing only returns to pending through an owner resubmission, never through
// a direct admin flip, so rejected and sold have no outgoing edges here.
var AllowedTransitions = map[ListingStatus][]ListingStatus{
	StatusPending:  {StatusApproved, StatusRejected},
	StatusApproved: {StatusSold, StatusInactive},
	StatusInactive: {StatusApproved},
	StatusRejected: {},
	StatusSold:     {},
}

func (s ListingStatus) Valid() bool {
	_, ok := AllowedTransitions[s]
	return ok
}

// CanTransition reports whether from -> to is an edge of the moderation graph.
func CanTransition(from, to ListingStatus) bool {
	for _, next := range AllowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Listing is a submitted product offering subject to moderation.
type Listing struct {
	BaseNoDelete
	OwnerID         uuid.UUID     `db:"owner_id"`
	Name            string        `db:"name"`
	Description     *string       `db:"description"`
	Brand           *string       `db:"brand"`
	Category        string        `db:"category"`
	Condition       string        `db:"condition"`
	Price           float64       `db:"price"`
	Currency        string        `db:"currency"`
	Phone           string        `db:"phone"`
	WhatsApp        *string       `db:"whatsapp"`
	Region          string        `db:"region"`
	Locality        string        `db:"locality"`
	Status          ListingStatus `db:"status"`
	RejectionReason *string       `db:"rejection_reason"`
	ReviewedBy      *uuid.UUID    `db:"reviewed_by"`
	ReviewedAt      *time.Time    `db:"reviewed_at"`
	ExpiresAt       time.Time     `db:"expires_at"`
}

// Visible reports whether the listing shows up in public browse results.
// Expiry is a derived visibility rule evaluated at query time; the stored
// status may still read approved after the horizon has passed.
func (l *Listing) Visible(now time.Time) bool {
	return l.Status == StatusApproved && now.Before(l.ExpiresAt)
}
