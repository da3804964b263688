package handler

import (
	"context"
	"time"

	"github.com/askhatir/lms-service/internal/model"
	"github.com/askhatir/lms-service/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type LmsService interface {
	// catalog
	CreateBook(ctx context.Context, req model.CreateBookRequest) (model.Book, error)
	UpdateBook(ctx context.Context, id string, req model.UpdateBookRequest) (model.Book, error)
	DeleteBook(ctx context.Context, id string) error
	GetBook(ctx context.Context, id string) (model.Book, error)
	ListBooks(ctx context.Context, page, size int) (model.ListBooks, error)

	// circulation
	BorrowBook(ctx context.Context, userID string, req model.BorrowBookRequest) (model.Borrow, error)
	ReturnBook(ctx context.Context, borrowID string, returnedAt *time.Time) (model.Borrow, error)
	GetBorrows(ctx context.Context, userID string) ([]model.Borrow, error)

	// visits
	LogEntry(ctx context.Context, userID string, req model.LogEntryRequest) (model.EntryLog, error)
	LogExit(ctx context.Context, userID string) ([]model.EntryLog, error)
	ForceCheckout(ctx context.Context, logID string) (model.EntryLog, error)
	CurrentInside(ctx context.Context) ([]model.EntryLog, error)
	RecentLogs(ctx context.Context, limit int) ([]model.EntryLog, error)

	// dashboards and reports
	Dashboard(ctx context.Context) (model.Dashboard, error)
	BorrowsReport(ctx context.Context, from, to time.Time) ([]model.Borrow, error)
	EntriesReport(ctx context.Context, from, to time.Time) ([]model.EntryLog, error)
	UserStats(ctx context.Context) ([]model.UserStats, error)
}

var _ LmsService = (*service.Service)(nil)
