package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/askhatir/lms-service/internal/errs"
	"github.com/askhatir/lms-service/internal/model"
	"github.com/askhatir/lms-service/internal/service"
	"github.com/askhatir/lms-service/pkg/kafka"

	repo_mocks "github.com/askhatir/lms-service/internal/repository/mocks"
)

var testCfg = service.Config{
	BorrowLimit:    3,
	FinePerDay:     5,
	LoanPeriodDays: 14,
}

// fakeQueue records published activity events.
type fakeQueue struct {
	events []kafka.ActivityEvent
}

func (q *fakeQueue) Enqueue(_ string, v any) error {
	if ev, ok := v.(kafka.ActivityEvent); ok {
		q.events = append(q.events, ev)
	}
	return nil
}

func newTestService(t *testing.T, now time.Time) (*service.Service, *repo_mocks.MockRepository, *fakeQueue) {
	t.Helper()
	c := gomock.NewController(t)
	t.Cleanup(c.Finish)
	repo := repo_mocks.NewMockRepository(c)
	queue := &fakeQueue{}
	svc := service.NewService(repo, queue, testCfg, zap.NewExample().Named("test")).
		WithClock(func() time.Time { return now })
	return svc, repo, queue
}

func TestService_BorrowBook(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	dueAt := now.Add(7 * 24 * time.Hour)
	book := model.Book{
		ID:                "book-1",
		Title:             "The Go Programming Language",
		QuantityTotal:     2,
		QuantityAvailable: 2,
		Status:            model.BookAvailable,
	}
	ctx := context.Background()

	t.Run("ok", func(t *testing.T) {
		t.Parallel()
		svc, repo, queue := newTestService(t, now)

		repo.EXPECT().GetBook(ctx, "book-1").Return(book, nil).Times(2)
		repo.EXPECT().CountActiveBorrows(ctx, "u1").Return(0, nil)
		repo.EXPECT().HasOverdue(ctx, "u1").Return(false, nil)
		repo.EXPECT().CreateBorrow(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, b model.Borrow) (model.Borrow, error) {
				require.NotEmpty(t, b.ID)
				require.Equal(t, "u1", b.UserID)
				require.Equal(t, "book-1", b.BookID)
				require.Equal(t, "The Go Programming Language", b.BookTitle)
				require.Equal(t, now, b.BorrowedAt)
				require.Equal(t, dueAt, b.DueAt)
				require.Equal(t, model.BorrowBorrowed, b.Status)
				require.Zero(t, b.FineAmount)
				require.Nil(t, b.ReturnedAt)
				return b, nil
			})
		repo.EXPECT().SetAvailability(ctx, "book-1", 1, model.BookAvailable).Return(nil)

		got, err := svc.BorrowBook(ctx, "u1", model.BorrowBookRequest{BookID: "book-1", DueAt: &dueAt})
		require.NoError(t, err)
		require.Equal(t, model.BorrowBorrowed, got.Status)

		require.Len(t, queue.events, 1)
		require.Equal(t, kafka.EventBorrow, queue.events[0].EventType)
	})

	t.Run("no availability", func(t *testing.T) {
		t.Parallel()
		svc, repo, queue := newTestService(t, now)

		empty := book
		empty.QuantityAvailable = 0
		empty.Status = model.BookUnavailable
		repo.EXPECT().GetBook(ctx, "book-1").Return(empty, nil)

		_, err := svc.BorrowBook(ctx, "u1", model.BorrowBookRequest{BookID: "book-1"})
		require.ErrorIs(t, err, errs.ErrNoAvailability)
		require.Empty(t, queue.events)
	})

	t.Run("borrow limit reached", func(t *testing.T) {
		t.Parallel()
		svc, repo, _ := newTestService(t, now)

		repo.EXPECT().GetBook(ctx, "book-1").Return(book, nil)
		repo.EXPECT().CountActiveBorrows(ctx, "u1").Return(3, nil)

		_, err := svc.BorrowBook(ctx, "u1", model.BorrowBookRequest{BookID: "book-1"})
		require.ErrorIs(t, err, errs.ErrBorrowLimit)
	})

	t.Run("outstanding overdue borrow", func(t *testing.T) {
		t.Parallel()
		svc, repo, _ := newTestService(t, now)

		repo.EXPECT().GetBook(ctx, "book-1").Return(book, nil)
		repo.EXPECT().CountActiveBorrows(ctx, "u1").Return(1, nil)
		repo.EXPECT().HasOverdue(ctx, "u1").Return(true, nil)

		_, err := svc.BorrowBook(ctx, "u1", model.BorrowBookRequest{BookID: "book-1"})
		require.ErrorIs(t, err, errs.ErrHasOverdue)
	})

	t.Run("book not found", func(t *testing.T) {
		t.Parallel()
		svc, repo, _ := newTestService(t, now)

		repo.EXPECT().GetBook(ctx, "missing").Return(model.Book{}, errs.ErrNotFound)

		_, err := svc.BorrowBook(ctx, "u1", model.BorrowBookRequest{BookID: "missing"})
		require.ErrorIs(t, err, errs.ErrNotFound)
	})

	t.Run("default due date from loan period", func(t *testing.T) {
		t.Parallel()
		svc, repo, _ := newTestService(t, now)

		repo.EXPECT().GetBook(ctx, "book-1").Return(book, nil).Times(2)
		repo.EXPECT().CountActiveBorrows(ctx, "u1").Return(0, nil)
		repo.EXPECT().HasOverdue(ctx, "u1").Return(false, nil)
		repo.EXPECT().CreateBorrow(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, b model.Borrow) (model.Borrow, error) {
				require.Equal(t, now.Add(14*24*time.Hour), b.DueAt)
				return b, nil
			})
		repo.EXPECT().SetAvailability(ctx, "book-1", 1, model.BookAvailable).Return(nil)

		_, err := svc.BorrowBook(ctx, "u1", model.BorrowBookRequest{BookID: "book-1"})
		require.NoError(t, err)
	})
}

func TestService_ReturnBook(t *testing.T) {
	t.Parallel()

	borrowedAt := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	dueAt := borrowedAt.Add(7 * 24 * time.Hour)
	ctx := context.Background()

	borrow := model.Borrow{
		ID:         "borrow-1",
		UserID:     "u1",
		BookID:     "book-1",
		BookTitle:  "The Go Programming Language",
		BorrowedAt: borrowedAt,
		DueAt:      dueAt,
		Status:     model.BorrowBorrowed,
	}
	book := model.Book{
		ID:                "book-1",
		QuantityTotal:     2,
		QuantityAvailable: 1,
		Status:            model.BookAvailable,
	}

	closedBorrow := func(ret time.Time, status model.BorrowStatus, fine int) model.Borrow {
		b := borrow
		b.ReturnedAt = &ret
		b.Status = status
		b.FineAmount = fine
		return b
	}

	t.Run("on time", func(t *testing.T) {
		t.Parallel()
		now := dueAt.Add(-time.Hour)
		svc, repo, queue := newTestService(t, now)

		repo.EXPECT().GetBorrow(ctx, "borrow-1").Return(borrow, nil)
		repo.EXPECT().CloseBorrow(ctx, "borrow-1", now, model.BorrowReturned, 0).
			Return(closedBorrow(now, model.BorrowReturned, 0), nil)
		repo.EXPECT().GetBook(ctx, "book-1").Return(book, nil)
		repo.EXPECT().SetAvailability(ctx, "book-1", 2, model.BookAvailable).Return(nil)

		got, err := svc.ReturnBook(ctx, "borrow-1", nil)
		require.NoError(t, err)
		require.Equal(t, model.BorrowReturned, got.Status)
		require.Zero(t, got.FineAmount)

		require.Len(t, queue.events, 1)
		require.Equal(t, kafka.EventReturn, queue.events[0].EventType)
	})

	t.Run("three days late goes overdue with fine", func(t *testing.T) {
		t.Parallel()
		now := borrowedAt.Add(10 * 24 * time.Hour)
		svc, repo, queue := newTestService(t, now)

		repo.EXPECT().GetBorrow(ctx, "borrow-1").Return(borrow, nil)
		repo.EXPECT().CloseBorrow(ctx, "borrow-1", now, model.BorrowOverdue, 3*testCfg.FinePerDay).
			Return(closedBorrow(now, model.BorrowOverdue, 3*testCfg.FinePerDay), nil)
		repo.EXPECT().GetBook(ctx, "book-1").Return(book, nil)
		repo.EXPECT().SetAvailability(ctx, "book-1", 2, model.BookAvailable).Return(nil)

		got, err := svc.ReturnBook(ctx, "borrow-1", nil)
		require.NoError(t, err)
		require.Equal(t, model.BorrowOverdue, got.Status)
		require.Equal(t, 3*testCfg.FinePerDay, got.FineAmount)
		require.Equal(t, 3*testCfg.FinePerDay, queue.events[0].Fine)
	})

	t.Run("double return rejected", func(t *testing.T) {
		t.Parallel()
		now := dueAt
		svc, repo, _ := newTestService(t, now)

		already := closedBorrow(dueAt, model.BorrowReturned, 0)
		repo.EXPECT().GetBorrow(ctx, "borrow-1").Return(already, nil)

		_, err := svc.ReturnBook(ctx, "borrow-1", nil)
		require.ErrorIs(t, err, errs.ErrAlreadyReturned)
	})

	t.Run("lost race against concurrent return", func(t *testing.T) {
		t.Parallel()
		now := dueAt
		svc, repo, _ := newTestService(t, now)

		repo.EXPECT().GetBorrow(ctx, "borrow-1").Return(borrow, nil)
		repo.EXPECT().CloseBorrow(ctx, "borrow-1", now, model.BorrowReturned, 0).
			Return(model.Borrow{}, errs.ErrNotFound)

		_, err := svc.ReturnBook(ctx, "borrow-1", nil)
		require.ErrorIs(t, err, errs.ErrAlreadyReturned)
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()
		svc, repo, _ := newTestService(t, dueAt)

		repo.EXPECT().GetBorrow(ctx, "missing").Return(model.Borrow{}, errs.ErrNotFound)

		_, err := svc.ReturnBook(ctx, "missing", nil)
		require.ErrorIs(t, err, errs.ErrNotFound)
	})

	t.Run("explicit return date", func(t *testing.T) {
		t.Parallel()
		svc, repo, _ := newTestService(t, dueAt.Add(100*24*time.Hour))

		ret := dueAt.Add(time.Minute)
		repo.EXPECT().GetBorrow(ctx, "borrow-1").Return(borrow, nil)
		repo.EXPECT().CloseBorrow(ctx, "borrow-1", ret, model.BorrowOverdue, testCfg.FinePerDay).
			Return(closedBorrow(ret, model.BorrowOverdue, testCfg.FinePerDay), nil)
		repo.EXPECT().GetBook(ctx, "book-1").Return(book, nil)
		repo.EXPECT().SetAvailability(ctx, "book-1", 2, model.BookAvailable).Return(nil)

		got, err := svc.ReturnBook(ctx, "borrow-1", &ret)
		require.NoError(t, err)
		require.Equal(t, testCfg.FinePerDay, got.FineAmount)
	})
}
