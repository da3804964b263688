package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/askhatir/lms-service/internal/errs"
	"github.com/askhatir/lms-service/internal/model"
	"github.com/askhatir/lms-service/pkg/kafka"
)

// BorrowBook creates a borrow record and decrements the book's availability.
// All eligibility checks run under the book's keylock, before any mutation:
// a rejected borrow leaves every entity untouched.
func (s *Service) BorrowBook(ctx context.Context, userID string, req model.BorrowBookRequest) (model.Borrow, error) {
	var created model.Borrow

	err := s.locks.Do(req.BookID, func() error {
		book, err := s.repo.GetBook(ctx, req.BookID)
		if err != nil {
			return err
		}
		if book.QuantityAvailable <= 0 {
			return errs.ErrNoAvailability
		}

		active, err := s.repo.CountActiveBorrows(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "count active borrows")
		}
		if active >= s.cfg.BorrowLimit {
			return errs.ErrBorrowLimit
		}

		hasOverdue, err := s.repo.HasOverdue(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "has overdue")
		}
		if hasOverdue {
			return errs.ErrHasOverdue
		}

		now := s.now().UTC()
		dueAt := now.Add(time.Duration(s.cfg.LoanPeriodDays) * day)
		if req.DueAt != nil {
			dueAt = req.DueAt.UTC()
		}

		created, err = s.repo.CreateBorrow(ctx, model.Borrow{
			ID:         uuid.NewString(),
			UserID:     userID,
			StudentID:  req.StudentID,
			BookID:     book.ID,
			BookTitle:  book.Title,
			BorrowedAt: now,
			DueAt:      dueAt,
			Status:     model.BorrowBorrowed,
			FineAmount: 0,
		})
		if err != nil {
			return err
		}

		// the borrow row is durable before the inventory moves
		return s.adjustAvailability(ctx, book.ID, -1)
	})
	if err != nil {
		return model.Borrow{}, err
	}

	s.publish(kafka.ActivityEvent{
		Timestamp: created.BorrowedAt,
		UserName:  userID,
		EventType: kafka.EventBorrow,
		BookID:    created.BookID,
		BorrowID:  created.ID,
	})

	return created, nil
}

// ReturnBook closes a borrow, computing the fine and the terminal status,
// then increments the book's availability. A borrow that is already in a
// terminal state is rejected; without that guard a repeated return would
// double-increment inventory.
func (s *Service) ReturnBook(ctx context.Context, borrowID string, returnedAt *time.Time) (model.Borrow, error) {
	borrow, err := s.repo.GetBorrow(ctx, borrowID)
	if err != nil {
		return model.Borrow{}, err
	}
	if borrow.Status.Terminal() {
		return model.Borrow{}, errs.ErrAlreadyReturned
	}

	var closed model.Borrow
	err = s.locks.Do(borrow.BookID, func() error {
		ret := s.now().UTC()
		if returnedAt != nil {
			ret = returnedAt.UTC()
		}

		fine := CalculateFine(borrow.DueAt, ret, s.cfg.FinePerDay)
		status := model.BorrowReturned
		if fine > 0 {
			status = model.BorrowOverdue
		}

		closed, err = s.repo.CloseBorrow(ctx, borrowID, ret, status, fine)
		if err != nil {
			if errors.Is(err, errs.ErrNotFound) {
				// lost the race against a concurrent return
				return errs.ErrAlreadyReturned
			}
			return err
		}

		return s.adjustAvailability(ctx, borrow.BookID, +1)
	})
	if err != nil {
		return model.Borrow{}, err
	}

	s.publish(kafka.ActivityEvent{
		Timestamp: *closed.ReturnedAt,
		UserName:  closed.UserID,
		EventType: kafka.EventReturn,
		BookID:    closed.BookID,
		BorrowID:  closed.ID,
		Fine:      closed.FineAmount,
	})

	return closed, nil
}

func (s *Service) GetBorrows(ctx context.Context, userID string) ([]model.Borrow, error) {
	return s.repo.GetBorrows(ctx, userID)
}
