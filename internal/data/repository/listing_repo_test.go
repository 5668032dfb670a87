package repository

import (
	"context"
	"testing"
	"time"

	"solar-marketplace/internal/data/entity"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newMockListingRepo(t *testing.T) (ListingRepository, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return NewListingRepository(mock, zap.NewNop()), mock
}

func TestListingRepository_UpdateStatus_Swaps(t *testing.T) {
	repo, mock := newMockListingRepo(t)

	id := uuid.New()
	reviewerID := uuid.New()
	now := time.Now()

	mock.ExpectExec("UPDATE listings").
		WithArgs(id, entity.StatusPending, entity.StatusApproved, (*string)(nil), reviewerID, now).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	swapped, err := repo.UpdateStatus(context.Background(), id, entity.StatusPending,
		entity.StatusApproved, nil, reviewerID, now)

	require.NoError(t, err)
	assert.True(t, swapped)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListingRepository_UpdateStatus_StaleStatusDoesNotSwap(t *testing.T) {
	repo, mock := newMockListingRepo(t)

	id := uuid.New()
	reviewerID := uuid.New()
	now := time.Now()

	// The row exists but its status no longer matches the expected one.
	mock.ExpectExec("UPDATE listings").
		WithArgs(id, entity.StatusPending, entity.StatusApproved, (*string)(nil), reviewerID, now).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	swapped, err := repo.UpdateStatus(context.Background(), id, entity.StatusPending,
		entity.StatusApproved, nil, reviewerID, now)

	require.NoError(t, err)
	assert.False(t, swapped)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListingRepository_FindByID_NoRows(t *testing.T) {
	repo, mock := newMockListingRepo(t)

	id := uuid.New()

	mock.ExpectQuery("SELECT (.+) FROM listings").
		WithArgs(id).
		WillReturnError(pgx.ErrNoRows)

	listing, err := repo.FindByID(context.Background(), id)

	require.NoError(t, err)
	assert.Nil(t, listing)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListingRepository_CountByStatus(t *testing.T) {
	repo, mock := newMockListingRepo(t)

	mock.ExpectQuery("SELECT COUNT").
		WithArgs(entity.StatusPending).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(4)))

	count, err := repo.CountByStatus(context.Background(), entity.StatusPending)

	require.NoError(t, err)
	assert.Equal(t, int64(4), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListingRepository_ExpireOverdue(t *testing.T) {
	repo, mock := newMockListingRepo(t)

	mock.ExpectExec("UPDATE listings").
		WillReturnResult(pgxmock.NewResult("UPDATE", 3))

	flipped, err := repo.ExpireOverdue(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(3), flipped)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBuildSearchWhere(t *testing.T) {
	category := "panels"
	condition := "new"
	region := "North"
	locality := "Riverside"
	query := "mono"
	minPrice := 100.0
	maxPrice := 900.0

	tests := []struct {
		name     string
		filter   ListingFilter
		expected string
		args     []any
	}{
		{
			name:     "no filters keeps the visibility guard",
			filter:   ListingFilter{},
			expected: "WHERE status = 'approved' AND expires_at > NOW()",
		},
		{
			name:   "region free text and min price",
			filter: ListingFilter{Region: &region, Query: &query, MinPrice: &minPrice},
			expected: "WHERE status = 'approved' AND expires_at > NOW()" +
				" AND region ILIKE $1" +
				" AND (name ILIKE $2 OR description ILIKE $2 OR brand ILIKE $2)" +
				" AND price >= $3",
			args: []any{"%North%", "%mono%", 100.0},
		},
		{
			name: "all filters numbered in order",
			filter: ListingFilter{
				Category:  &category,
				Condition: &condition,
				Region:    &region,
				Locality:  &locality,
				Query:     &query,
				MinPrice:  &minPrice,
				MaxPrice:  &maxPrice,
			},
			expected: "WHERE status = 'approved' AND expires_at > NOW()" +
				" AND category = $1" +
				" AND condition = $2" +
				" AND region ILIKE $3" +
				" AND locality ILIKE $4" +
				" AND (name ILIKE $5 OR description ILIKE $5 OR brand ILIKE $5)" +
				" AND price >= $6" +
				" AND price <= $7",
			args: []any{"panels", "new", "%North%", "%Riverside%", "%mono%", 100.0, 900.0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := buildSearchWhere(tt.filter)
			assert.Equal(t, tt.expected, where)
			assert.Equal(t, tt.args, args)
		})
	}
}

func emptyListingRows() *pgxmock.Rows {
	return pgxmock.NewRows([]string{
		"id", "owner_id", "name", "description", "brand", "category", "condition",
		"price", "currency", "phone", "whatsapp", "region", "locality", "status",
		"rejection_reason", "reviewed_by", "reviewed_at", "expires_at", "created_at", "updated_at",
	})
}

func TestListingRepository_Search_FilterArgsAndSort(t *testing.T) {
	repo, mock := newMockListingRepo(t)

	region := "North"
	minPrice := 100.0
	filter := ListingFilter{
		Region:   &region,
		MinPrice: &minPrice,
		SortBy:   "price",
		SortDesc: true,
		Limit:    20,
		Offset:   40,
	}

	now := time.Now()
	rows := emptyListingRows().AddRow(
		uuid.New(), uuid.New(), "Mono panel 450W", (*string)(nil), (*string)(nil),
		"panels", "new", 450.0, "USD", "5551234", (*string)(nil), "North", "Riverside",
		entity.StatusApproved, (*string)(nil), (*uuid.UUID)(nil), (*time.Time)(nil),
		now.Add(time.Hour), now, now,
	)

	mock.ExpectQuery(`SELECT (.+) FROM listings`+
		` WHERE status = 'approved' AND expires_at > NOW\(\)`+
		` AND region ILIKE \$1 AND price >= \$2`+
		` ORDER BY price DESC, created_at DESC LIMIT \$3 OFFSET \$4`).
		WithArgs("%North%", minPrice, 20, 40).
		WillReturnRows(rows)

	listings, err := repo.Search(context.Background(), filter)

	require.NoError(t, err)
	require.Len(t, listings, 1)
	assert.Equal(t, "Mono panel 450W", listings[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListingRepository_Search_RejectsUnknownSortColumn(t *testing.T) {
	repo, mock := newMockListingRepo(t)

	// A sort field outside the whitelist falls back to created_at.
	filter := ListingFilter{SortBy: "owner_id; DROP TABLE listings", Limit: 20}

	mock.ExpectQuery(`ORDER BY created_at ASC, created_at DESC LIMIT \$1 OFFSET \$2`).
		WithArgs(20, 0).
		WillReturnRows(emptyListingRows())

	listings, err := repo.Search(context.Background(), filter)

	require.NoError(t, err)
	assert.Empty(t, listings)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListingRepository_CountSearch_SharesFilter(t *testing.T) {
	repo, mock := newMockListingRepo(t)

	category := "panels"
	filter := ListingFilter{Category: &category}

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM listings`+
		` WHERE status = 'approved' AND expires_at > NOW\(\) AND category = \$1`).
		WithArgs("panels").
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(7)))

	count, err := repo.CountSearch(context.Background(), filter)

	require.NoError(t, err)
	assert.Equal(t, int64(7), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListingRepository_Delete_MissingRow(t *testing.T) {
	repo, mock := newMockListingRepo(t)

	id := uuid.New()

	mock.ExpectExec("DELETE FROM listings").
		WithArgs(id).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	err := repo.Delete(context.Background(), id)

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
