package service

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/askhatir/lms-service/internal/errs"
	"github.com/askhatir/lms-service/internal/model"
	"github.com/askhatir/lms-service/pkg/kafka"
)

// LogEntry opens a visit record for the user.
func (s *Service) LogEntry(ctx context.Context, userID string, req model.LogEntryRequest) (model.EntryLog, error) {
	created, err := s.repo.CreateEntryLog(ctx, model.EntryLog{
		ID:             uuid.NewString(),
		UserID:         userID,
		StudentID:      req.StudentID,
		Name:           req.Name,
		Purpose:        req.Purpose,
		TimeIn:         s.now().UTC(),
		Status:         model.EntryInside,
		ForcedCheckout: false,
	})
	if err != nil {
		return model.EntryLog{}, err
	}

	s.publish(kafka.ActivityEvent{
		Timestamp:  created.TimeIn,
		UserName:   userID,
		EventType:  kafka.EventEntry,
		EntryLogID: created.ID,
	})

	return created, nil
}

// LogExit closes every open visit for the user. There should be at most one,
// but duplicate check-ins are tolerated and all of them are closed.
func (s *Service) LogExit(ctx context.Context, userID string) ([]model.EntryLog, error) {
	open, err := s.repo.OpenEntryLogs(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	closed := make([]model.EntryLog, 0, len(open))
	for _, e := range open {
		minutes := durationMinutes(e.TimeIn, now)
		if err := s.repo.CloseEntryLog(ctx, e.ID, now, minutes, false); err != nil {
			return closed, err
		}
		e.TimeOut = &now
		e.DurationMinutes = &minutes
		e.Status = model.EntryLeft
		closed = append(closed, e)

		s.publish(kafka.ActivityEvent{
			Timestamp:  now,
			UserName:   userID,
			EventType:  kafka.EventExit,
			EntryLogID: e.ID,
		})
	}

	return closed, nil
}

// ForceCheckout is the administrative close of a single stuck visit record.
func (s *Service) ForceCheckout(ctx context.Context, logID string) (model.EntryLog, error) {
	e, err := s.repo.GetEntryLog(ctx, logID)
	if err != nil {
		return model.EntryLog{}, err
	}
	if e.Status == model.EntryLeft {
		return model.EntryLog{}, errs.ErrAlreadyLeft
	}

	now := s.now().UTC()
	minutes := durationMinutes(e.TimeIn, now)
	if err := s.repo.CloseEntryLog(ctx, e.ID, now, minutes, true); err != nil {
		return model.EntryLog{}, err
	}

	e.TimeOut = &now
	e.DurationMinutes = &minutes
	e.Status = model.EntryLeft
	e.ForcedCheckout = true

	s.publish(kafka.ActivityEvent{
		Timestamp:  now,
		UserName:   e.UserID,
		EventType:  kafka.EventExit,
		EntryLogID: e.ID,
	})

	return e, nil
}

func (s *Service) CurrentInside(ctx context.Context) ([]model.EntryLog, error) {
	return s.repo.ListInside(ctx)
}

func (s *Service) RecentLogs(ctx context.Context, limit int) ([]model.EntryLog, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.repo.RecentEntryLogs(ctx, limit)
}

func durationMinutes(timeIn, timeOut time.Time) int {
	minutes := int(math.Round(timeOut.Sub(timeIn).Minutes()))
	if minutes < 0 {
		minutes = 0
	}
	return minutes
}
