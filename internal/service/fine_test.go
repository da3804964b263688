package service_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/askhatir/lms-service/internal/service"
)

func TestCalculateFine(t *testing.T) {
	t.Parallel()

	due := time.Date(2024, 3, 10, 17, 0, 0, 0, time.UTC)
	const rate = 5

	tests := []struct {
		name       string
		returnedAt time.Time
		want       int
	}{
		{
			name:       "early return",
			returnedAt: due.Add(-72 * time.Hour),
			want:       0,
		},
		{
			name:       "exactly on the due instant",
			returnedAt: due,
			want:       0,
		},
		{
			name:       "one nanosecond late bills a full day",
			returnedAt: due.Add(time.Nanosecond),
			want:       rate,
		},
		{
			name:       "23h59m late still one day",
			returnedAt: due.Add(24*time.Hour - time.Minute),
			want:       rate,
		},
		{
			name:       "exactly 24h late is one day",
			returnedAt: due.Add(24 * time.Hour),
			want:       rate,
		},
		{
			name:       "24h and one second late is two days",
			returnedAt: due.Add(24*time.Hour + time.Second),
			want:       2 * rate,
		},
		{
			name:       "three days less a second late is three days",
			returnedAt: due.Add(72*time.Hour - time.Second),
			want:       3 * rate,
		},
		{
			name:       "ten days late",
			returnedAt: due.Add(10 * 24 * time.Hour),
			want:       10 * rate,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, service.CalculateFine(due, tt.returnedAt, rate))
		})
	}
}

func TestCalculateFine_ZeroRate(t *testing.T) {
	t.Parallel()

	due := time.Date(2024, 3, 10, 17, 0, 0, 0, time.UTC)
	require.Equal(t, 0, service.CalculateFine(due, due.Add(100*24*time.Hour), 0))
}
