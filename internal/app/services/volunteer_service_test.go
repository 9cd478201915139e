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

func newTestVolunteerService() (VolunteerService, *fakeVolunteerStore, *fakeParticipantStore) {
	posts := newFakeVolunteerStore()
	participants := newFakeParticipantStore(posts)
	svc := NewVolunteerService(posts, participants, zerolog.Nop())
	return svc, posts, participants
}

func createVolunteerPost(t *testing.T, svc VolunteerService, authorID int64, maxParticipants int) *dto.VolunteerPostResponse {
	t.Helper()
	post, err := svc.CreatePost(context.Background(), authorID, &dto.CreateVolunteerPostRequest{
		Title:           "Weekend walk",
		Content:         "Dog walking at the shelter",
		ShelterName:     "Happy Paws",
		ShelterLocation: "서울",
		VolunteerDate:   "2026-09-05",
		VolunteerTime:   "10:00",
		MaxParticipants: maxParticipants,
	})
	require.NoError(t, err)
	return post
}

func TestCreatePostDefaults(t *testing.T) {
	svc, _, _ := newTestVolunteerService()

	post := createVolunteerPost(t, svc, 1, 0)
	assert.Equal(t, defaultMaxParticipants, post.MaxParticipants)
	assert.Equal(t, 0, post.CurrentParticipants)
	assert.Equal(t, 0, post.LikesCount)
	assert.Equal(t, "2026-09-05", post.VolunteerDate)
}

func TestCreatePostBadDate(t *testing.T) {
	svc, _, _ := newTestVolunteerService()

	_, err := svc.CreatePost(context.Background(), 1, &dto.CreateVolunteerPostRequest{
		Title:           "Weekend walk",
		Content:         "Dog walking",
		ShelterName:     "Happy Paws",
		ShelterLocation: "서울",
		VolunteerDate:   "05-09-2026",
		VolunteerTime:   "10:00",
	})
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
}

func TestJoinCapacity(t *testing.T) {
	svc, _, _ := newTestVolunteerService()

	post := createVolunteerPost(t, svc, 1, 2)

	first, err := svc.Join(context.Background(), post.ID, 10)
	require.NoError(t, err)
	assert.Equal(t, 1, first.CurrentParticipants)
	assert.True(t, first.IsParticipating)

	second, err := svc.Join(context.Background(), post.ID, 11)
	require.NoError(t, err)
	assert.Equal(t, 2, second.CurrentParticipants)

	// A third user is turned away once the post is full
	_, err = svc.Join(context.Background(), post.ID, 12)
	assert.ErrorIs(t, err, apperrors.ErrPostFull)
}

func TestJoinTwice(t *testing.T) {
	svc, _, _ := newTestVolunteerService()

	post := createVolunteerPost(t, svc, 1, 5)

	_, err := svc.Join(context.Background(), post.ID, 10)
	require.NoError(t, err)

	_, err = svc.Join(context.Background(), post.ID, 10)
	assert.ErrorIs(t, err, apperrors.ErrAlreadyJoined)
}

func TestLeaveFreesSlot(t *testing.T) {
	svc, _, _ := newTestVolunteerService()

	post := createVolunteerPost(t, svc, 1, 1)

	_, err := svc.Join(context.Background(), post.ID, 10)
	require.NoError(t, err)

	_, err = svc.Join(context.Background(), post.ID, 11)
	require.ErrorIs(t, err, apperrors.ErrPostFull)

	left, err := svc.Leave(context.Background(), post.ID, 10)
	require.NoError(t, err)
	assert.Equal(t, 0, left.CurrentParticipants)
	assert.False(t, left.IsParticipating)

	// The freed slot can be taken again
	joined, err := svc.Join(context.Background(), post.ID, 11)
	require.NoError(t, err)
	assert.Equal(t, 1, joined.CurrentParticipants)
}

func TestLeaveWithoutJoining(t *testing.T) {
	svc, _, _ := newTestVolunteerService()

	post := createVolunteerPost(t, svc, 1, 5)

	_, err := svc.Leave(context.Background(), post.ID, 10)
	assert.ErrorIs(t, err, apperrors.ErrNotParticipating)
}

func TestUpdatePostAuthorOnly(t *testing.T) {
	svc, _, _ := newTestVolunteerService()

	post := createVolunteerPost(t, svc, 1, 5)

	req := &dto.UpdateVolunteerPostRequest{
		Title:           "Changed",
		Content:         "Changed content",
		ShelterName:     "Happy Paws",
		ShelterLocation: "서울",
		VolunteerDate:   "2026-09-06",
		VolunteerTime:   "11:00",
		MaxParticipants: 5,
	}

	_, err := svc.UpdatePost(context.Background(), post.ID, 2, req)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	updated, err := svc.UpdatePost(context.Background(), post.ID, 1, req)
	require.NoError(t, err)
	assert.Equal(t, "Changed", updated.Title)
	assert.Equal(t, "2026-09-06", updated.VolunteerDate)
}

func TestDeletePostAuthorOnly(t *testing.T) {
	svc, posts, _ := newTestVolunteerService()

	post := createVolunteerPost(t, svc, 1, 5)

	err := svc.DeletePost(context.Background(), post.ID, 2)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	require.NoError(t, svc.DeletePost(context.Background(), post.ID, 1))

	_, err = posts.GetByID(context.Background(), post.ID)
	assert.ErrorIs(t, err, apperrors.ErrVolunteerPostNotFound)
}

func TestLikePost(t *testing.T) {
	svc, _, _ := newTestVolunteerService()

	post := createVolunteerPost(t, svc, 1, 5)

	likes, err := svc.LikePost(context.Background(), post.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, likes)

	likes, err = svc.LikePost(context.Background(), post.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, likes)

	_, err = svc.LikePost(context.Background(), 999)
	assert.ErrorIs(t, err, apperrors.ErrVolunteerPostNotFound)
}

func TestGetPostMarksViewerParticipation(t *testing.T) {
	svc, _, _ := newTestVolunteerService()

	post := createVolunteerPost(t, svc, 1, 5)

	_, err := svc.Join(context.Background(), post.ID, 10)
	require.NoError(t, err)

	detail, err := svc.GetPost(context.Background(), post.ID, 10)
	require.NoError(t, err)
	assert.True(t, detail.IsParticipating)
	assert.Len(t, detail.Participants, 1)

	anonymous, err := svc.GetPost(context.Background(), post.ID, 0)
	require.NoError(t, err)
	assert.False(t, anonymous.IsParticipating)
}
