package repository

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/askhatir/lms-service/internal/model"
	"github.com/askhatir/lms-service/pkg/kafka"
)

//go:generate go run github.com/golang/mock/mockgen -source=repository.go -destination=mocks/mock.go

type Repository interface {
	// catalog
	CreateBook(ctx context.Context, req model.CreateBookRequest) (model.Book, error)
	UpdateBook(ctx context.Context, id string, req model.UpdateBookRequest) (model.Book, error)
	DeleteBook(ctx context.Context, id string) error
	GetBook(ctx context.Context, id string) (model.Book, error)
	ListBooks(ctx context.Context, page, size int) (model.ListBooks, error)
	SetAvailability(ctx context.Context, id string, available int, status model.BookStatus) error

	// circulation
	CreateBorrow(ctx context.Context, b model.Borrow) (model.Borrow, error)
	GetBorrow(ctx context.Context, id string) (model.Borrow, error)
	GetBorrows(ctx context.Context, userID string) ([]model.Borrow, error)
	BorrowsInRange(ctx context.Context, from, to time.Time) ([]model.Borrow, error)
	CountActiveBorrows(ctx context.Context, userID string) (int, error)
	HasOverdue(ctx context.Context, userID string) (bool, error)
	CloseBorrow(ctx context.Context, id string, returnedAt time.Time, status model.BorrowStatus, fine int) (model.Borrow, error)

	// entry logs
	CreateEntryLog(ctx context.Context, e model.EntryLog) (model.EntryLog, error)
	GetEntryLog(ctx context.Context, id string) (model.EntryLog, error)
	OpenEntryLogs(ctx context.Context, userID string) ([]model.EntryLog, error)
	CloseEntryLog(ctx context.Context, id string, timeOut time.Time, minutes int, forced bool) error
	ListInside(ctx context.Context) ([]model.EntryLog, error)
	RecentEntryLogs(ctx context.Context, limit int) ([]model.EntryLog, error)
	EntryLogsInRange(ctx context.Context, from, to time.Time) ([]model.EntryLog, error)

	// activity events
	SaveEvent(ctx context.Context, ev kafka.ActivityEvent) error
	UserStats(ctx context.Context) ([]model.UserStats, error)
}

type repository struct {
	db  *sqlx.DB
	log *zap.Logger
}

func NewRepository(db *sqlx.DB, log *zap.Logger) (*repository, error) {
	return &repository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

const (
	booksTableName     = `books`
	borrowsTableName   = `borrows`
	entryLogsTableName = `entry_logs`
	eventsTableName    = `events`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
