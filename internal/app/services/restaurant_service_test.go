package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petmily/petmily-api/internal/app/models/dto"
	"github.com/petmily/petmily-api/internal/pkg/apperrors"
)

func newTestRestaurantService() (RestaurantService, *fakeRestaurantStore) {
	store := newFakeRestaurantStore()
	return NewRestaurantService(store, zerolog.Nop()), store
}

func TestCreateRestaurantValidatesRegion(t *testing.T) {
	svc, _ := newTestRestaurantService()

	_, err := svc.CreateRestaurant(context.Background(), 1, &dto.CreateRestaurantRequest{
		Name:    "Paw Cafe",
		Region:  "Atlantis",
		Address: "Somewhere 1",
		Content: "Dogs welcome",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidRegion)

	created, err := svc.CreateRestaurant(context.Background(), 1, &dto.CreateRestaurantRequest{
		Name:    "Paw Cafe",
		Region:  "서울",
		Address: "Somewhere 1",
		Content: "Dogs welcome",
	})
	require.NoError(t, err)
	assert.Equal(t, "서울", created.Region)
	assert.Equal(t, 0, created.LikesCount)
}

func TestListRestaurantsFiltersByRegion(t *testing.T) {
	svc, _ := newTestRestaurantService()

	for _, region := range []string{"서울", "서울", "부산"} {
		_, err := svc.CreateRestaurant(context.Background(), 1, &dto.CreateRestaurantRequest{
			Name:    "Cafe " + region,
			Region:  region,
			Address: "Somewhere",
			Content: "Pets ok",
		})
		require.NoError(t, err)
	}

	region := "서울"
	listed, err := svc.ListRestaurants(context.Background(), &region)
	require.NoError(t, err)
	assert.Len(t, listed, 2)

	all, err := svc.ListRestaurants(context.Background(), nil)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	// "전체" selects every region
	everywhere := "전체"
	all, err = svc.ListRestaurants(context.Background(), &everywhere)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	unknown := "Atlantis"
	_, err = svc.ListRestaurants(context.Background(), &unknown)
	assert.ErrorIs(t, err, apperrors.ErrInvalidRegion)
}

func TestDeleteRestaurantAuthorOnly(t *testing.T) {
	svc, store := newTestRestaurantService()

	created, err := svc.CreateRestaurant(context.Background(), 1, &dto.CreateRestaurantRequest{
		Name:    "Paw Cafe",
		Region:  "서울",
		Address: "Somewhere 1",
		Content: "Dogs welcome",
	})
	require.NoError(t, err)

	err = svc.DeleteRestaurant(context.Background(), created.ID, 2)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	require.NoError(t, svc.DeleteRestaurant(context.Background(), created.ID, 1))

	_, err = store.GetByID(context.Background(), created.ID)
	assert.ErrorIs(t, err, apperrors.ErrRestaurantNotFound)
}

func TestLikeRestaurant(t *testing.T) {
	svc, _ := newTestRestaurantService()

	created, err := svc.CreateRestaurant(context.Background(), 1, &dto.CreateRestaurantRequest{
		Name:    "Paw Cafe",
		Region:  "서울",
		Address: "Somewhere 1",
		Content: "Dogs welcome",
	})
	require.NoError(t, err)

	likes, err := svc.LikeRestaurant(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, likes)
}

func TestRegionsList(t *testing.T) {
	svc, _ := newTestRestaurantService()

	regions := svc.Regions()
	assert.Len(t, regions, 10)
	assert.Contains(t, regions, "서울")
	assert.Contains(t, regions, "제주")
}
