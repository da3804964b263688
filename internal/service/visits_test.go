package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/askhatir/lms-service/internal/errs"
	"github.com/askhatir/lms-service/internal/model"
	"github.com/askhatir/lms-service/pkg/kafka"
)

func TestService_LogEntry(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	now := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)
	svc, repo, queue := newTestService(t, now)

	repo.EXPECT().CreateEntryLog(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, e model.EntryLog) (model.EntryLog, error) {
			require.NotEmpty(t, e.ID)
			require.Equal(t, "u1", e.UserID)
			require.Equal(t, "Alice", e.Name)
			require.Equal(t, model.PurposeStudy, e.Purpose)
			require.Equal(t, now, e.TimeIn)
			require.Nil(t, e.TimeOut)
			require.Equal(t, model.EntryInside, e.Status)
			require.False(t, e.ForcedCheckout)
			return e, nil
		})

	got, err := svc.LogEntry(ctx, "u1", model.LogEntryRequest{Name: "Alice", Purpose: model.PurposeStudy})
	require.NoError(t, err)
	require.Equal(t, model.EntryInside, got.Status)

	require.Len(t, queue.events, 1)
	require.Equal(t, kafka.EventEntry, queue.events[0].EventType)
}

func TestService_LogExit(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("45 minute visit", func(t *testing.T) {
		t.Parallel()
		timeIn := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
		now := timeIn.Add(45 * time.Minute)
		svc, repo, queue := newTestService(t, now)

		repo.EXPECT().OpenEntryLogs(ctx, "u1").Return([]model.EntryLog{
			{ID: "e1", UserID: "u1", TimeIn: timeIn, Status: model.EntryInside},
		}, nil)
		repo.EXPECT().CloseEntryLog(ctx, "e1", now, 45, false).Return(nil)

		closed, err := svc.LogExit(ctx, "u1")
		require.NoError(t, err)
		require.Len(t, closed, 1)
		require.Equal(t, model.EntryLeft, closed[0].Status)
		require.Equal(t, 45, *closed[0].DurationMinutes)
		require.False(t, closed[0].ForcedCheckout)

		require.Len(t, queue.events, 1)
		require.Equal(t, kafka.EventExit, queue.events[0].EventType)
	})

	t.Run("duplicate check-in closes both", func(t *testing.T) {
		t.Parallel()
		timeIn := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
		now := timeIn.Add(30 * time.Minute)
		svc, repo, _ := newTestService(t, now)

		repo.EXPECT().OpenEntryLogs(ctx, "u1").Return([]model.EntryLog{
			{ID: "e1", UserID: "u1", TimeIn: timeIn, Status: model.EntryInside},
			{ID: "e2", UserID: "u1", TimeIn: timeIn.Add(10 * time.Minute), Status: model.EntryInside},
		}, nil)
		repo.EXPECT().CloseEntryLog(ctx, "e1", now, 30, false).Return(nil)
		repo.EXPECT().CloseEntryLog(ctx, "e2", now, 20, false).Return(nil)

		closed, err := svc.LogExit(ctx, "u1")
		require.NoError(t, err)
		require.Len(t, closed, 2)
		for _, e := range closed {
			require.Equal(t, model.EntryLeft, e.Status)
		}
	})

	t.Run("no open logs is a no-op", func(t *testing.T) {
		t.Parallel()
		svc, repo, queue := newTestService(t, time.Now())

		repo.EXPECT().OpenEntryLogs(ctx, "u1").Return(nil, nil)

		closed, err := svc.LogExit(ctx, "u1")
		require.NoError(t, err)
		require.Empty(t, closed)
		require.Empty(t, queue.events)
	})

	t.Run("clock skew clamps duration to zero", func(t *testing.T) {
		t.Parallel()
		timeIn := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
		now := timeIn.Add(-5 * time.Minute)
		svc, repo, _ := newTestService(t, now)

		repo.EXPECT().OpenEntryLogs(ctx, "u1").Return([]model.EntryLog{
			{ID: "e1", UserID: "u1", TimeIn: timeIn, Status: model.EntryInside},
		}, nil)
		repo.EXPECT().CloseEntryLog(ctx, "e1", now, 0, false).Return(nil)

		closed, err := svc.LogExit(ctx, "u1")
		require.NoError(t, err)
		require.Equal(t, 0, *closed[0].DurationMinutes)
	})
}

func TestService_ForceCheckout(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	timeIn := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	t.Run("ok", func(t *testing.T) {
		t.Parallel()
		now := timeIn.Add(2 * time.Hour)
		svc, repo, queue := newTestService(t, now)

		repo.EXPECT().GetEntryLog(ctx, "e1").Return(model.EntryLog{
			ID: "e1", UserID: "u1", TimeIn: timeIn, Status: model.EntryInside,
		}, nil)
		repo.EXPECT().CloseEntryLog(ctx, "e1", now, 120, true).Return(nil)

		got, err := svc.ForceCheckout(ctx, "e1")
		require.NoError(t, err)
		require.Equal(t, model.EntryLeft, got.Status)
		require.True(t, got.ForcedCheckout)
		require.Equal(t, 120, *got.DurationMinutes)

		require.Len(t, queue.events, 1)
		require.Equal(t, kafka.EventExit, queue.events[0].EventType)
	})

	t.Run("already left", func(t *testing.T) {
		t.Parallel()
		svc, repo, _ := newTestService(t, timeIn)

		repo.EXPECT().GetEntryLog(ctx, "e1").Return(model.EntryLog{
			ID: "e1", UserID: "u1", TimeIn: timeIn, Status: model.EntryLeft,
		}, nil)

		_, err := svc.ForceCheckout(ctx, "e1")
		require.ErrorIs(t, err, errs.ErrAlreadyLeft)
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()
		svc, repo, _ := newTestService(t, timeIn)

		repo.EXPECT().GetEntryLog(ctx, "missing").Return(model.EntryLog{}, errs.ErrNotFound)

		_, err := svc.ForceCheckout(ctx, "missing")
		require.ErrorIs(t, err, errs.ErrNotFound)
	})
}
