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

var entryLogColumns = []string{
	"id", "user_id", "student_id", "name", "purpose",
	"time_in", "time_out", "duration_minutes", "status", "forced_checkout",
}

func (r *repository) CreateEntryLog(ctx context.Context, e model.EntryLog) (model.EntryLog, error) {
	q, args, err := qb.Insert(entryLogsTableName).
		Columns(entryLogColumns...).
		Values(e.ID, e.UserID, e.StudentID, e.Name, e.Purpose,
			e.TimeIn, nil, nil, e.Status, e.ForcedCheckout).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.EntryLog{}, err
	}
	var res model.EntryLog
	if err := r.db.GetContext(ctx, &res, q, args...); err != nil {
		r.log.Error("CreateEntryLog", zap.String("q", q), zap.Any("args", args))
		return model.EntryLog{}, err
	}
	return res, nil
}

func (r *repository) GetEntryLog(ctx context.Context, id string) (model.EntryLog, error) {
	q, args, err := qb.Select(entryLogColumns...).
		From(entryLogsTableName).
		Where(sq.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.EntryLog{}, err
	}
	var e model.EntryLog
	if err := r.db.GetContext(ctx, &e, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.EntryLog{}, errs.ErrNotFound
		}
		return model.EntryLog{}, err
	}
	return e, nil
}

// OpenEntryLogs returns every Inside log for the user. There should be at
// most one, but duplicate check-ins are tolerated and all of them are
// returned so the caller can close each.
func (r *repository) OpenEntryLogs(ctx context.Context, userID string) ([]model.EntryLog, error) {
	q, args, err := qb.Select(entryLogColumns...).
		From(entryLogsTableName).
		Where(sq.Eq{"user_id": userID}).
		Where(sq.Eq{"status": model.EntryInside}).
		OrderBy("time_in").
		ToSql()
	if err != nil {
		return nil, err
	}
	var items []model.EntryLog
	if err := r.db.SelectContext(ctx, &items, q, args...); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repository) CloseEntryLog(ctx context.Context, id string, timeOut time.Time, minutes int, forced bool) error {
	q := `
	update entry_logs
	set time_out = $2, duration_minutes = $3, status = 'Left', forced_checkout = $4
	where id = $1 and status = 'Inside'`

	res, err := r.db.ExecContext(ctx, q, id, timeOut, minutes, forced)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errs.ErrAlreadyLeft
	}
	return nil
}

func (r *repository) ListInside(ctx context.Context) ([]model.EntryLog, error) {
	q, args, err := qb.Select(entryLogColumns...).
		From(entryLogsTableName).
		Where(sq.Eq{"status": model.EntryInside}).
		OrderBy("time_in").
		ToSql()
	if err != nil {
		return nil, err
	}
	var items []model.EntryLog
	if err := r.db.SelectContext(ctx, &items, q, args...); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repository) RecentEntryLogs(ctx context.Context, limit int) ([]model.EntryLog, error) {
	q, args, err := qb.Select(entryLogColumns...).
		From(entryLogsTableName).
		OrderBy("time_in desc").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, err
	}
	var items []model.EntryLog
	if err := r.db.SelectContext(ctx, &items, q, args...); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repository) EntryLogsInRange(ctx context.Context, from, to time.Time) ([]model.EntryLog, error) {
	q, args, err := qb.Select(entryLogColumns...).
		From(entryLogsTableName).
		Where(sq.GtOrEq{"time_in": from}).
		Where(sq.LtOrEq{"time_in": to}).
		OrderBy("time_in").
		ToSql()
	if err != nil {
		return nil, err
	}
	var items []model.EntryLog
	if err := r.db.SelectContext(ctx, &items, q, args...); err != nil {
		return nil, err
	}
	return items, nil
}
