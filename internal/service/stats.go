package service

import (
	"context"
	"time"

	"github.com/askhatir/lms-service/internal/model"
	"github.com/askhatir/lms-service/pkg/kafka"
)

// Dashboard summarizes today's entry-log activity.
func (s *Service) Dashboard(ctx context.Context) (model.Dashboard, error) {
	now := s.now()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	end := start.Add(day - time.Nanosecond)

	logs, err := s.repo.EntryLogsInRange(ctx, start, end)
	if err != nil {
		return model.Dashboard{}, err
	}
	inside, err := s.repo.ListInside(ctx)
	if err != nil {
		return model.Dashboard{}, err
	}

	d := model.Dashboard{
		TodayVisits:     len(logs),
		CurrentlyInside: len(inside),
		PurposeCounts:   make(map[string]int),
	}
	for _, e := range logs {
		d.PurposeCounts[string(e.Purpose)]++
		d.HourlyTraffic[e.TimeIn.In(now.Location()).Hour()]++
		if d.LastEntryAt == nil || e.TimeIn.After(*d.LastEntryAt) {
			t := e.TimeIn
			d.LastEntryAt = &t
		}
	}

	return d, nil
}

func (s *Service) BorrowsReport(ctx context.Context, from, to time.Time) ([]model.Borrow, error) {
	return s.repo.BorrowsInRange(ctx, from, to)
}

func (s *Service) EntriesReport(ctx context.Context, from, to time.Time) ([]model.EntryLog, error) {
	return s.repo.EntryLogsInRange(ctx, from, to)
}

func (s *Service) UserStats(ctx context.Context) ([]model.UserStats, error) {
	return s.repo.UserStats(ctx)
}

// RecordEvent is the kafka consumer sink for the activity stream.
func (s *Service) RecordEvent(ctx context.Context, ev kafka.ActivityEvent) error {
	return s.repo.SaveEvent(ctx, ev)
}
