package usecase

import (
	"context"
	"testing"

	"solar-marketplace/internal/data/entity"
	"solar-marketplace/internal/data/repository"
	"solar-marketplace/internal/dto/request"
	"solar-marketplace/pkg/apperr"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDirectoryFixture() (DirectoryService, *repository.Repository) {
	repo := newTestRepo()
	service := NewDirectoryService(repo, testConfig(), testLogger())
	return service, repo
}

func shopRequest() *request.ShopRequest {
	return &request.ShopRequest{
		Name:     "SunPro Store",
		Phone:    "5551234",
		Region:   "North",
		Locality: "Riverside",
	}
}

func engineerRequest() *request.EngineerRequest {
	return &request.EngineerRequest{
		Name:            "Sam Installer",
		Specialty:       "off-grid systems",
		Phone:           "5555678",
		Region:          "North",
		Locality:        "Riverside",
		YearsExperience: 7,
	}
}

func TestDirectoryService_CreateShop_OnePerAccount(t *testing.T) {
	service, _ := newDirectoryFixture()
	ownerID := uuid.New()
	ctx := context.Background()

	resp, err := service.CreateShop(ctx, ownerID, shopRequest())
	require.NoError(t, err)
	assert.Equal(t, "SunPro Store", resp.Name)
	assert.False(t, resp.Verified)

	_, err = service.CreateShop(ctx, ownerID, shopRequest())
	assert.Error(t, err)
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
}

func TestDirectoryService_UpdateShop_OwnerOnly(t *testing.T) {
	service, _ := newDirectoryFixture()
	ownerID := uuid.New()
	ctx := context.Background()

	created, err := service.CreateShop(ctx, ownerID, shopRequest())
	require.NoError(t, err)

	newName := "SunPro Superstore"
	patch := &request.ShopUpdateRequest{Name: &newName}

	_, err = service.UpdateShop(ctx, uuid.New(), created.ID, patch)
	assert.Equal(t, apperr.KindAuthorization, apperr.KindOf(err))

	updated, err := service.UpdateShop(ctx, ownerID, created.ID, patch)
	require.NoError(t, err)
	assert.Equal(t, "SunPro Superstore", updated.Name)
}

func TestDirectoryService_DeleteShop_AdminOverride(t *testing.T) {
	service, repo := newDirectoryFixture()
	ownerID := uuid.New()
	ctx := context.Background()

	created, err := service.CreateShop(ctx, ownerID, shopRequest())
	require.NoError(t, err)

	err = service.DeleteShop(ctx, uuid.New(), entity.RoleUser, created.ID)
	assert.Equal(t, apperr.KindAuthorization, apperr.KindOf(err))

	err = service.DeleteShop(ctx, uuid.New(), entity.RoleAdmin, created.ID)
	require.NoError(t, err)

	id, _ := uuid.Parse(created.ID)
	stored, _ := repo.Shop.FindByID(ctx, id)
	assert.Nil(t, stored)
}

func TestDirectoryService_GetShop_UnknownID(t *testing.T) {
	service, _ := newDirectoryFixture()

	_, err := service.GetShop(context.Background(), uuid.New().String())
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))

	_, err = service.GetShop(context.Background(), "not-a-uuid")
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestDirectoryService_BrowseShops(t *testing.T) {
	service, _ := newDirectoryFixture()
	ctx := context.Background()

	_, err := service.CreateShop(ctx, uuid.New(), shopRequest())
	require.NoError(t, err)
	_, err = service.CreateShop(ctx, uuid.New(), shopRequest())
	require.NoError(t, err)

	page, err := service.BrowseShops(ctx, DirectoryFilter{Page: 1, PerPage: 10})

	require.NoError(t, err)
	assert.Equal(t, int64(2), page.Pagination.Total)
	assert.Len(t, page.Data, 2)
}

func TestDirectoryService_Engineers(t *testing.T) {
	service, repo := newDirectoryFixture()
	ownerID := uuid.New()
	ctx := context.Background()

	created, err := service.CreateEngineer(ctx, ownerID, engineerRequest())
	require.NoError(t, err)
	assert.Equal(t, 7, created.YearsExperience)

	_, err = service.CreateEngineer(ctx, ownerID, engineerRequest())
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))

	years := 9
	updated, err := service.UpdateEngineer(ctx, ownerID, created.ID, &request.EngineerUpdateRequest{YearsExperience: &years})
	require.NoError(t, err)
	assert.Equal(t, 9, updated.YearsExperience)

	_, err = service.UpdateEngineer(ctx, uuid.New(), created.ID, &request.EngineerUpdateRequest{YearsExperience: &years})
	assert.Equal(t, apperr.KindAuthorization, apperr.KindOf(err))

	require.NoError(t, service.DeleteEngineer(ctx, ownerID, entity.RoleUser, created.ID))

	id, _ := uuid.Parse(created.ID)
	stored, _ := repo.Engineer.FindByID(ctx, id)
	assert.Nil(t, stored)
}
