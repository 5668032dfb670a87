package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition_AllowedEdges(t *testing.T) {
	assert.True(t, CanTransition(StatusPending, StatusApproved))
	assert.True(t, CanTransition(StatusPending, StatusRejected))
	assert.True(t, CanTransition(StatusApproved, StatusSold))
	assert.True(t, CanTransition(StatusApproved, StatusInactive))
	assert.True(t, CanTransition(StatusInactive, StatusApproved))
}

func TestCanTransition_ClosedOverAllStatusPairs(t *testing.T) {
	statuses := []ListingStatus{
		StatusPending, StatusApproved, StatusRejected, StatusSold, StatusInactive,
	}

	allowed := map[[2]ListingStatus]bool{
		{StatusPending, StatusApproved}:  true,
		{StatusPending, StatusRejected}:  true,
		{StatusApproved, StatusSold}:     true,
		{StatusApproved, StatusInactive}: true,
		{StatusInactive, StatusApproved}: true,
	}

	for _, from := range statuses {
		for _, to := range statuses {
			want := allowed[[2]ListingStatus{from, to}]
			assert.Equal(t, want, CanTransition(from, to), "%s -> %s", from, to)
		}
	}
}

func TestCanTransition_RejectedAndSoldAreTerminal(t *testing.T) {
	assert.Empty(t, AllowedTransitions[StatusRejected])
	assert.Empty(t, AllowedTransitions[StatusSold])
}

func TestListingStatus_Valid(t *testing.T) {
	assert.True(t, StatusPending.Valid())
	assert.True(t, StatusSold.Valid())
	assert.False(t, ListingStatus("archived").Valid())
	assert.False(t, ListingStatus("").Valid())
}

func TestListing_Visible(t *testing.T) {
	now := time.Now()
	listing := Listing{
		Status:    StatusApproved,
		ExpiresAt: now.Add(24 * time.Hour),
	}

	assert.True(t, listing.Visible(now))

	listing.ExpiresAt = now.Add(-time.Minute)
	assert.False(t, listing.Visible(now), "expired listings stay hidden even while status reads approved")

	listing.ExpiresAt = now.Add(24 * time.Hour)
	listing.Status = StatusPending
	assert.False(t, listing.Visible(now))

	listing.Status = StatusSold
	assert.False(t, listing.Visible(now))
}
