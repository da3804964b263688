package repository

import (
	"context"

	"github.com/askhatir/lms-service/internal/model"
	"github.com/askhatir/lms-service/pkg/kafka"
)

func (r *repository) SaveEvent(ctx context.Context, ev kafka.ActivityEvent) error {
	q, args, err := qb.Insert(eventsTableName).
		Columns("timestamp", "username", "event_type", "book_id", "borrow_id", "entry_log_id", "fine").
		Values(ev.Timestamp, ev.UserName, ev.EventType, ev.BookID, ev.BorrowID, ev.EntryLogID, ev.Fine).
		ToSql()
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, q, args...)
	return err
}

func (r *repository) UserStats(ctx context.Context) ([]model.UserStats, error) {
	const q = `
	select username, max(timestamp) as last_updated,
	       coalesce(count(*) filter (where event_type = 'BORROW'), 0) as borrows,
	       coalesce(count(*) filter (where event_type = 'RETURN'), 0) as returns,
	       coalesce(count(*) filter (where event_type = 'ENTRY'), 0) as visits,
	       coalesce(sum(fine), 0) as fines_total
	from events
	group by username
	order by username
`
	var stats []model.UserStats
	if err := r.db.SelectContext(ctx, &stats, q); err != nil {
		return nil, err
	}
	return stats, nil
}
