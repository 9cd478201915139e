package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petmily/petmily-api/internal/app/models"
	"github.com/petmily/petmily-api/internal/app/models/dto"
	"github.com/petmily/petmily-api/internal/pkg/apperrors"
)

func newTestPostService() (PostService, *fakePostStore) {
	store := newFakePostStore()
	return NewPostService(store, zerolog.Nop()), store
}

func TestCreatePostFillsDefaults(t *testing.T) {
	svc, _ := newTestPostService()

	created, err := svc.CreatePost(context.Background(), 1, &dto.CreatePostRequest{
		Content: "My dog did a trick today",
	})
	require.NoError(t, err)
	assert.Equal(t, models.CategoryCommunity, created.Category)
	assert.NotNil(t, created.Hashtags)
	assert.Empty(t, created.Hashtags)
	assert.Nil(t, created.Title)
}

func TestCreatePostKeepsHashtags(t *testing.T) {
	svc, _ := newTestPostService()

	title := "Trick day"
	created, err := svc.CreatePost(context.Background(), 1, &dto.CreatePostRequest{
		Title:    &title,
		Content:  "My dog did a trick today",
		Hashtags: []string{"dog", "trick"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"dog", "trick"}, created.Hashtags)
	require.NotNil(t, created.Title)
	assert.Equal(t, "Trick day", *created.Title)
}

func TestListPostsFiltersByCategory(t *testing.T) {
	svc, store := newTestPostService()

	_, err := svc.CreatePost(context.Background(), 1, &dto.CreatePostRequest{Content: "first"})
	require.NoError(t, err)

	// A row from another board should not show up under community
	store.posts[99] = &models.Post{ID: 99, Content: "other", Category: "notice", AuthorID: 2}

	category := models.CategoryCommunity
	listed, err := svc.ListPosts(context.Background(), &category)
	require.NoError(t, err)
	assert.Len(t, listed, 1)

	all, err := svc.ListPosts(context.Background(), nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestDeleteCommunityPostAuthorOnly(t *testing.T) {
	svc, store := newTestPostService()

	created, err := svc.CreatePost(context.Background(), 1, &dto.CreatePostRequest{Content: "bye"})
	require.NoError(t, err)

	err = svc.DeletePost(context.Background(), created.ID, 2)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	require.NoError(t, svc.DeletePost(context.Background(), created.ID, 1))

	_, err = store.GetByID(context.Background(), created.ID)
	assert.ErrorIs(t, err, apperrors.ErrPostNotFound)
}

func TestLikeCommunityPost(t *testing.T) {
	svc, _ := newTestPostService()

	created, err := svc.CreatePost(context.Background(), 1, &dto.CreatePostRequest{Content: "like me"})
	require.NoError(t, err)

	likes, err := svc.LikePost(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, likes)

	_, err = svc.LikePost(context.Background(), 999)
	assert.ErrorIs(t, err, apperrors.ErrPostNotFound)
}
