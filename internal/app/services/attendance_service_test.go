package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckInTwiceSameDay(t *testing.T) {
	store := newFakeAttendanceStore()
	svc := NewAttendanceService(store, zerolog.Nop())

	first, err := svc.CheckIn(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, first.CheckedIn)

	// The second attempt succeeds but no second row appears
	second, err := svc.CheckIn(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, second.CheckedIn)
	assert.Equal(t, first.AttendanceDate, second.AttendanceDate)

	assert.Len(t, store.records[1], 1)
}

func TestListTodayShowsCheckIns(t *testing.T) {
	store := newFakeAttendanceStore()
	svc := NewAttendanceService(store, zerolog.Nop())

	board, err := svc.ListToday(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, board.Records)

	_, err = svc.CheckIn(context.Background(), 1)
	require.NoError(t, err)
	_, err = svc.CheckIn(context.Background(), 2)
	require.NoError(t, err)

	board, err = svc.ListToday(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, board.Records, 2)
}

func TestListTodayViewerState(t *testing.T) {
	store := newFakeAttendanceStore()
	svc := NewAttendanceService(store, zerolog.Nop())

	_, err := svc.CheckIn(context.Background(), 1)
	require.NoError(t, err)

	board, err := svc.ListToday(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, board.CheckedIn)
	assert.Equal(t, int64(1), board.MonthlyCount)

	// A viewer who never checked in sees the board without own state
	board, err = svc.ListToday(context.Background(), 2)
	require.NoError(t, err)
	assert.False(t, board.CheckedIn)
	assert.Zero(t, board.MonthlyCount)
	assert.Len(t, board.Records, 1)
}
