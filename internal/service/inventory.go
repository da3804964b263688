package service

import (
	"context"

	"github.com/askhatir/lms-service/internal/model"
)

// AdjustAvailability applies delta to a book's available count, clamped to
// [0, quantityTotal]. Clamping, not erroring, is the defined policy for
// out-of-bounds deltas. The derived status is recomputed on every write.
func (s *Service) AdjustAvailability(ctx context.Context, bookID string, delta int) error {
	return s.locks.Do(bookID, func() error {
		return s.adjustAvailability(ctx, bookID, delta)
	})
}

// adjustAvailability must be called with the book's keylock held.
func (s *Service) adjustAvailability(ctx context.Context, bookID string, delta int) error {
	book, err := s.repo.GetBook(ctx, bookID)
	if err != nil {
		return err
	}

	next := book.QuantityAvailable + delta
	if next < 0 {
		next = 0
	}
	if next > book.QuantityTotal {
		next = book.QuantityTotal
	}

	return s.repo.SetAvailability(ctx, bookID, next, model.StatusFor(next))
}
