package services

import (
	"context"
	"time"

	"github.com/petmily/petmily-api/internal/app/models"
	"github.com/petmily/petmily-api/internal/pkg/apperrors"
)

// In-memory stores backing the service tests.

type fakeUserStore struct {
	users  map[int64]*models.User
	nextID int64
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[int64]*models.User{}, nextID: 1}
}

func (f *fakeUserStore) Create(_ context.Context, user *models.User) error {
	for _, u := range f.users {
		if u.Username == user.Username {
			return apperrors.ErrUsernameExists
		}
	}
	user.ID = f.nextID
	user.CreatedAt = time.Now()
	f.nextID++
	copied := *user
	f.users[user.ID] = &copied
	return nil
}

func (f *fakeUserStore) GetByID(_ context.Context, id int64) (*models.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserStore) GetByUsername(_ context.Context, username string) (*models.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			copied := *u
			return &copied, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (f *fakeUserStore) UsernameExists(_ context.Context, username string) (bool, error) {
	for _, u := range f.users {
		if u.Username == username {
			return true, nil
		}
	}
	return false, nil
}

type fakeTokenStore struct {
	tokens map[string]*models.RefreshToken
	nextID int64
}

func newFakeTokenStore() *fakeTokenStore {
	return &fakeTokenStore{tokens: map[string]*models.RefreshToken{}, nextID: 1}
}

func (f *fakeTokenStore) Save(_ context.Context, userID int64, token string, expiresAt time.Time) error {
	f.tokens[token] = &models.RefreshToken{
		ID:        f.nextID,
		UserID:    userID,
		Token:     token,
		ExpiresAt: expiresAt,
		CreatedAt: time.Now(),
	}
	f.nextID++
	return nil
}

func (f *fakeTokenStore) GetByValue(_ context.Context, token string) (*models.RefreshToken, error) {
	rt, ok := f.tokens[token]
	if !ok {
		return nil, apperrors.ErrTokenNotFound
	}
	copied := *rt
	return &copied, nil
}

func (f *fakeTokenStore) Revoke(_ context.Context, token string) error {
	rt, ok := f.tokens[token]
	if !ok {
		return apperrors.ErrTokenNotFound
	}
	rt.Revoked = true
	return nil
}

type fakeVolunteerStore struct {
	posts  map[int64]*models.VolunteerPost
	nextID int64
}

func newFakeVolunteerStore() *fakeVolunteerStore {
	return &fakeVolunteerStore{posts: map[int64]*models.VolunteerPost{}, nextID: 1}
}

func (f *fakeVolunteerStore) GetAll(_ context.Context) ([]*models.VolunteerPost, error) {
	posts := make([]*models.VolunteerPost, 0, len(f.posts))
	for _, p := range f.posts {
		copied := *p
		posts = append(posts, &copied)
	}
	return posts, nil
}

func (f *fakeVolunteerStore) GetByID(_ context.Context, id int64) (*models.VolunteerPost, error) {
	post, ok := f.posts[id]
	if !ok {
		return nil, apperrors.ErrVolunteerPostNotFound
	}
	copied := *post
	return &copied, nil
}

func (f *fakeVolunteerStore) Create(_ context.Context, post *models.VolunteerPost) error {
	post.ID = f.nextID
	post.CreatedAt = time.Now()
	post.UpdatedAt = post.CreatedAt
	f.nextID++
	copied := *post
	f.posts[post.ID] = &copied
	return nil
}

func (f *fakeVolunteerStore) Update(_ context.Context, post *models.VolunteerPost) error {
	stored, ok := f.posts[post.ID]
	if !ok {
		return apperrors.ErrVolunteerPostNotFound
	}
	copied := *post
	copied.CurrentParticipants = stored.CurrentParticipants
	copied.LikesCount = stored.LikesCount
	copied.UpdatedAt = time.Now()
	f.posts[post.ID] = &copied
	return nil
}

func (f *fakeVolunteerStore) Delete(_ context.Context, id int64) error {
	if _, ok := f.posts[id]; !ok {
		return apperrors.ErrVolunteerPostNotFound
	}
	delete(f.posts, id)
	return nil
}

func (f *fakeVolunteerStore) IncrementLikes(_ context.Context, id int64) (int, error) {
	post, ok := f.posts[id]
	if !ok {
		return 0, apperrors.ErrVolunteerPostNotFound
	}
	post.LikesCount++
	return post.LikesCount, nil
}

type fakeParticipantStore struct {
	posts        *fakeVolunteerStore
	participants map[int64][]*models.VolunteerParticipant
	nextID       int64
}

func newFakeParticipantStore(posts *fakeVolunteerStore) *fakeParticipantStore {
	return &fakeParticipantStore{
		posts:        posts,
		participants: map[int64][]*models.VolunteerParticipant{},
		nextID:       1,
	}
}

func (f *fakeParticipantStore) ListByPost(_ context.Context, postID int64) ([]*models.VolunteerParticipant, error) {
	return f.participants[postID], nil
}

func (f *fakeParticipantStore) IsParticipant(_ context.Context, postID, userID int64) (bool, error) {
	for _, p := range f.participants[postID] {
		if p.UserID == userID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeParticipantStore) Join(_ context.Context, postID, userID int64) (int, error) {
	post, ok := f.posts.posts[postID]
	if !ok {
		return 0, apperrors.ErrVolunteerPostNotFound
	}
	if post.CurrentParticipants >= post.MaxParticipants {
		return 0, apperrors.ErrPostFull
	}
	for _, p := range f.participants[postID] {
		if p.UserID == userID {
			return 0, apperrors.ErrAlreadyJoined
		}
	}
	f.participants[postID] = append(f.participants[postID], &models.VolunteerParticipant{
		ID:              f.nextID,
		VolunteerPostID: postID,
		UserID:          userID,
		CreatedAt:       time.Now(),
	})
	f.nextID++
	post.CurrentParticipants++
	return post.CurrentParticipants, nil
}

func (f *fakeParticipantStore) Leave(_ context.Context, postID, userID int64) (int, error) {
	post, ok := f.posts.posts[postID]
	if !ok {
		return 0, apperrors.ErrVolunteerPostNotFound
	}
	rows := f.participants[postID]
	for i, p := range rows {
		if p.UserID == userID {
			f.participants[postID] = append(rows[:i], rows[i+1:]...)
			if post.CurrentParticipants > 0 {
				post.CurrentParticipants--
			}
			return post.CurrentParticipants, nil
		}
	}
	return 0, apperrors.ErrNotParticipating
}

func (f *fakeParticipantStore) CountByUser(_ context.Context, userID int64) (int64, error) {
	var count int64
	for _, rows := range f.participants {
		for _, p := range rows {
			if p.UserID == userID {
				count++
			}
		}
	}
	return count, nil
}

type fakeRestaurantStore struct {
	restaurants map[int64]*models.Restaurant
	nextID      int64
}

func newFakeRestaurantStore() *fakeRestaurantStore {
	return &fakeRestaurantStore{restaurants: map[int64]*models.Restaurant{}, nextID: 1}
}

func (f *fakeRestaurantStore) GetAll(_ context.Context, region *string) ([]*models.Restaurant, error) {
	result := []*models.Restaurant{}
	for _, r := range f.restaurants {
		if region != nil && *region != "" && r.Region != *region {
			continue
		}
		copied := *r
		result = append(result, &copied)
	}
	return result, nil
}

func (f *fakeRestaurantStore) GetByID(_ context.Context, id int64) (*models.Restaurant, error) {
	r, ok := f.restaurants[id]
	if !ok {
		return nil, apperrors.ErrRestaurantNotFound
	}
	copied := *r
	return &copied, nil
}

func (f *fakeRestaurantStore) Create(_ context.Context, rest *models.Restaurant) error {
	rest.ID = f.nextID
	rest.CreatedAt = time.Now()
	f.nextID++
	copied := *rest
	f.restaurants[rest.ID] = &copied
	return nil
}

func (f *fakeRestaurantStore) Delete(_ context.Context, id int64) error {
	if _, ok := f.restaurants[id]; !ok {
		return apperrors.ErrRestaurantNotFound
	}
	delete(f.restaurants, id)
	return nil
}

func (f *fakeRestaurantStore) IncrementLikes(_ context.Context, id int64) (int, error) {
	r, ok := f.restaurants[id]
	if !ok {
		return 0, apperrors.ErrRestaurantNotFound
	}
	r.LikesCount++
	return r.LikesCount, nil
}

type fakePostStore struct {
	posts  map[int64]*models.Post
	nextID int64
}

func newFakePostStore() *fakePostStore {
	return &fakePostStore{posts: map[int64]*models.Post{}, nextID: 1}
}

func (f *fakePostStore) GetAll(_ context.Context, category *string) ([]*models.Post, error) {
	result := []*models.Post{}
	for _, p := range f.posts {
		if category != nil && *category != "" && p.Category != *category {
			continue
		}
		copied := *p
		result = append(result, &copied)
	}
	return result, nil
}

func (f *fakePostStore) GetByID(_ context.Context, id int64) (*models.Post, error) {
	p, ok := f.posts[id]
	if !ok {
		return nil, apperrors.ErrPostNotFound
	}
	copied := *p
	return &copied, nil
}

func (f *fakePostStore) Create(_ context.Context, post *models.Post) error {
	post.ID = f.nextID
	post.CreatedAt = time.Now()
	f.nextID++
	copied := *post
	f.posts[post.ID] = &copied
	return nil
}

func (f *fakePostStore) Delete(_ context.Context, id int64) error {
	if _, ok := f.posts[id]; !ok {
		return apperrors.ErrPostNotFound
	}
	delete(f.posts, id)
	return nil
}

func (f *fakePostStore) IncrementLikes(_ context.Context, id int64) (int, error) {
	p, ok := f.posts[id]
	if !ok {
		return 0, apperrors.ErrPostNotFound
	}
	p.LikesCount++
	return p.LikesCount, nil
}

func (f *fakePostStore) CountByAuthor(_ context.Context, authorID int64) (int64, error) {
	var count int64
	for _, p := range f.posts {
		if p.AuthorID == authorID {
			count++
		}
	}
	return count, nil
}

type fakeAttendanceStore struct {
	records map[int64][]*models.Attendance
	nextID  int64
}

func newFakeAttendanceStore() *fakeAttendanceStore {
	return &fakeAttendanceStore{records: map[int64][]*models.Attendance{}, nextID: 1}
}

func (f *fakeAttendanceStore) ListByDate(_ context.Context, date time.Time) ([]*models.Attendance, error) {
	result := []*models.Attendance{}
	for _, rows := range f.records {
		for _, a := range rows {
			if a.AttendanceDate.Equal(date) {
				copied := *a
				result = append(result, &copied)
			}
		}
	}
	return result, nil
}

func (f *fakeAttendanceStore) CheckIn(_ context.Context, userID int64, date time.Time) (*models.Attendance, error) {
	for _, a := range f.records[userID] {
		if a.AttendanceDate.Equal(date) {
			return nil, apperrors.ErrConflict
		}
	}
	record := &models.Attendance{
		ID:             f.nextID,
		UserID:         userID,
		AttendanceDate: date,
		CreatedAt:      time.Now(),
	}
	f.nextID++
	f.records[userID] = append(f.records[userID], record)
	return record, nil
}

func (f *fakeAttendanceStore) HasCheckedIn(_ context.Context, userID int64, date time.Time) (bool, error) {
	for _, a := range f.records[userID] {
		if a.AttendanceDate.Equal(date) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeAttendanceStore) CountSince(_ context.Context, userID int64, since time.Time) (int64, error) {
	var count int64
	for _, a := range f.records[userID] {
		if !a.AttendanceDate.Before(since) {
			count++
		}
	}
	return count, nil
}
