package repository

import (
	"context"
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/askhatir/lms-service/internal/errs"
	"github.com/askhatir/lms-service/internal/model"
)

var bookColumns = []string{
	"id", "title", "author", "category", "isbn",
	"quantity_total", "quantity_available", "status",
	"description", "created_at", "updated_at",
}

func (r *repository) CreateBook(ctx context.Context, req model.CreateBookRequest) (model.Book, error) {
	now := time.Now().UTC()
	q, args, err := qb.Insert(booksTableName).
		Columns(bookColumns...).
		Values(uuid.NewString(), req.Title, req.Author, req.Category, req.ISBN,
			req.QuantityTotal, req.QuantityTotal, model.StatusFor(req.QuantityTotal),
			req.Description, now, now).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.Book{}, err
	}
	var book model.Book
	if err := r.db.GetContext(ctx, &book, q, args...); err != nil {
		r.log.Error("CreateBook", zap.String("q", q), zap.Any("args", args))
		return model.Book{}, err
	}
	return book, nil
}

func (r *repository) UpdateBook(ctx context.Context, id string, req model.UpdateBookRequest) (model.Book, error) {
	upd := qb.Update(booksTableName).
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"id": id})

	if req.Title != nil {
		upd = upd.Set("title", *req.Title)
	}
	if req.Author != nil {
		upd = upd.Set("author", *req.Author)
	}
	if req.Category != nil {
		upd = upd.Set("category", *req.Category)
	}
	if req.ISBN != nil {
		upd = upd.Set("isbn", *req.ISBN)
	}
	if req.Description != nil {
		upd = upd.Set("description", *req.Description)
	}
	if req.QuantityTotal != nil {
		// shrinking the total may not leave more copies available than exist
		upd = upd.
			Set("quantity_total", *req.QuantityTotal).
			Set("quantity_available", sq.Expr("least(quantity_available, ?)", *req.QuantityTotal))
	}

	q, args, err := upd.Suffix("returning *").ToSql()
	if err != nil {
		return model.Book{}, err
	}
	var book model.Book
	if err := r.db.GetContext(ctx, &book, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Book{}, errs.ErrNotFound
		}
		return model.Book{}, err
	}
	return book, nil
}

func (r *repository) DeleteBook(ctx context.Context, id string) error {
	q, args, err := qb.Delete(booksTableName).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx, q, args...)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errs.ErrNotFound
	}
	return nil
}

func (r *repository) GetBook(ctx context.Context, id string) (model.Book, error) {
	q, args, err := qb.Select(bookColumns...).
		From(booksTableName).
		Where(sq.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Book{}, err
	}
	var book model.Book
	if err := r.db.GetContext(ctx, &book, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Book{}, errs.ErrNotFound
		}
		return model.Book{}, err
	}
	return book, nil
}

func (r *repository) ListBooks(ctx context.Context, page, size int) (model.ListBooks, error) {
	q := qb.Select(bookColumns...).
		From(booksTableName).
		OrderBy("title")

	if page != 0 && size != 0 {
		q = q.Limit(uint64(size)).Offset(uint64((page - 1) * size))
	}

	query, args, err := q.ToSql()
	if err != nil {
		return model.ListBooks{}, err
	}
	var books []model.Book
	if err := r.db.SelectContext(ctx, &books, query, args...); err != nil {
		return model.ListBooks{}, err
	}

	return model.ListBooks{
		Paging: model.Paging{
			Page:          page,
			PageSize:      size,
			TotalElements: len(books),
		},
		Items: books,
	}, nil
}

// SetAvailability writes the availability computed by the inventory ledger.
// The ledger is the sole caller.
func (r *repository) SetAvailability(ctx context.Context, id string, available int, status model.BookStatus) error {
	q, args, err := qb.Update(booksTableName).
		Set("quantity_available", available).
		Set("status", status).
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx, q, args...)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errs.ErrNotFound
	}
	return nil
}
