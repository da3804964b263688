package repository

import (
	"context"
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/askhatir/lms-service/internal/errs"
	"github.com/askhatir/lms-service/internal/model"
)

var borrowColumns = []string{
	"id", "user_id", "student_id", "book_id", "book_title",
	"borrowed_at", "due_at", "returned_at", "status", "fine_amount",
}

func (r *repository) CreateBorrow(ctx context.Context, b model.Borrow) (model.Borrow, error) {
	q, args, err := qb.Insert(borrowsTableName).
		Columns(borrowColumns...).
		Values(b.ID, b.UserID, b.StudentID, b.BookID, b.BookTitle,
			b.BorrowedAt, b.DueAt, nil, b.Status, b.FineAmount).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.Borrow{}, err
	}
	var res model.Borrow
	if err := r.db.GetContext(ctx, &res, q, args...); err != nil {
		r.log.Error("CreateBorrow", zap.String("q", q), zap.Any("args", args))
		return model.Borrow{}, err
	}
	return res, nil
}

func (r *repository) GetBorrow(ctx context.Context, id string) (model.Borrow, error) {
	q, args, err := qb.Select(borrowColumns...).
		From(borrowsTableName).
		Where(sq.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Borrow{}, err
	}
	var b model.Borrow
	if err := r.db.GetContext(ctx, &b, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Borrow{}, errs.ErrNotFound
		}
		return model.Borrow{}, err
	}
	return b, nil
}

func (r *repository) GetBorrows(ctx context.Context, userID string) ([]model.Borrow, error) {
	q, args, err := qb.Select(borrowColumns...).
		From(borrowsTableName).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("borrowed_at desc").
		ToSql()
	if err != nil {
		return nil, err
	}
	var items []model.Borrow
	if err := r.db.SelectContext(ctx, &items, q, args...); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repository) BorrowsInRange(ctx context.Context, from, to time.Time) ([]model.Borrow, error) {
	q, args, err := qb.Select(borrowColumns...).
		From(borrowsTableName).
		Where(sq.GtOrEq{"borrowed_at": from}).
		Where(sq.LtOrEq{"borrowed_at": to}).
		OrderBy("borrowed_at").
		ToSql()
	if err != nil {
		return nil, err
	}
	var items []model.Borrow
	if err := r.db.SelectContext(ctx, &items, q, args...); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repository) CountActiveBorrows(ctx context.Context, userID string) (int, error) {
	q := `
	select count(*) from borrows
	where user_id = $1 and status in ('borrowed', 'overdue')
`
	var count int
	if err := r.db.QueryRowContext(ctx, q, userID).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *repository) HasOverdue(ctx context.Context, userID string) (bool, error) {
	q := `
	select exists(
		select 1 from borrows
		where user_id = $1 and status = 'overdue'
	)
`
	var has bool
	if err := r.db.QueryRowContext(ctx, q, userID).Scan(&has); err != nil {
		return false, err
	}
	return has, nil
}

// CloseBorrow moves a borrow into its terminal state. The status guard makes
// a second close of the same borrow report not-found instead of
// double-incrementing inventory upstream.
func (r *repository) CloseBorrow(ctx context.Context, id string, returnedAt time.Time, status model.BorrowStatus, fine int) (model.Borrow, error) {
	q := `
	update borrows
	set returned_at = $2, status = $3, fine_amount = $4
	where id = $1 and status = 'borrowed'
	returning *`

	var b model.Borrow
	if err := r.db.GetContext(ctx, &b, q, id, returnedAt, status, fine); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Borrow{}, errs.ErrNotFound
		}
		return model.Borrow{}, err
	}
	return b, nil
}
