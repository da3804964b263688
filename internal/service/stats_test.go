package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/askhatir/lms-service/internal/model"
)

func TestService_Dashboard(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	now := time.Date(2024, 3, 1, 15, 0, 0, 0, time.UTC)
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := start.Add(24*time.Hour - time.Nanosecond)

	svc, repo, _ := newTestService(t, now)

	logs := []model.EntryLog{
		{ID: "e1", Purpose: model.PurposeStudy, TimeIn: start.Add(9 * time.Hour)},
		{ID: "e2", Purpose: model.PurposeStudy, TimeIn: start.Add(10 * time.Hour)},
		{ID: "e3", Purpose: model.PurposeResearch, TimeIn: start.Add(10*time.Hour + 30*time.Minute)},
	}
	repo.EXPECT().EntryLogsInRange(ctx, start, end).Return(logs, nil)
	repo.EXPECT().ListInside(ctx).Return(logs[1:], nil)

	d, err := svc.Dashboard(ctx)
	require.NoError(t, err)

	require.Equal(t, 3, d.TodayVisits)
	require.Equal(t, 2, d.CurrentlyInside)
	require.Equal(t, map[string]int{"Study": 2, "Research": 1}, d.PurposeCounts)
	require.Equal(t, 1, d.HourlyTraffic[9])
	require.Equal(t, 2, d.HourlyTraffic[10])
	require.NotNil(t, d.LastEntryAt)
	require.Equal(t, start.Add(10*time.Hour+30*time.Minute), *d.LastEntryAt)
}
