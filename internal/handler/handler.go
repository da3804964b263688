package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/askhatir/lms-service/internal/errs"
	"github.com/askhatir/lms-service/internal/model"
	"github.com/askhatir/lms-service/pkg/auth"
	"github.com/askhatir/lms-service/pkg/validate"
)

type Handler struct {
	lmsSvc LmsService
	log    *zap.Logger
}

func New(lmsSvc LmsService, log *zap.Logger) *Handler {
	return &Handler{
		lmsSvc: lmsSvc,
		log:    log,
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))

	base := e.Group("", newRateLimiterMW(baseRPS))
	base.GET("/manage/health", h.Health)

	e.Validator = validate.NewCustomValidator()
	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(requestLoggerConfig()),
		middleware.RequestID(),
		newRateLimiterMW(apiRPS),
		AuthContext,
	)

	api.GET("/books", h.ListBooks)
	api.GET("/books/:bookId", h.GetBook)
	api.POST("/books", h.CreateBook, StaffOnly)
	api.PATCH("/books/:bookId", h.UpdateBook, StaffOnly)
	api.DELETE("/books/:bookId", h.DeleteBook, StaffOnly)

	api.GET("/borrows", h.GetBorrows)
	api.POST("/borrows", h.BorrowBook)
	api.POST("/borrows/:borrowId/return", h.ReturnBook)

	api.POST("/entries", h.LogEntry)
	api.POST("/entries/exit", h.LogExit)
	api.POST("/entries/:entryId/force-checkout", h.ForceCheckout, StaffOnly)
	api.GET("/entries/inside", h.CurrentInside)
	api.GET("/entries/recent", h.RecentLogs)

	api.GET("/dashboard", h.Dashboard)
	api.GET("/reports/borrows", h.BorrowsReport, StaffOnly)
	api.GET("/reports/entries", h.EntriesReport, StaffOnly)
	api.GET("/stats", h.UserStats, StaffOnly)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func (h *Handler) ListBooks(c echo.Context) error {
	var (
		err  error
		page int
		size int
	)
	if pageParam := c.QueryParam("page"); pageParam != "" {
		if page, err = strconv.Atoi(pageParam); err != nil || page < 0 {
			return echo.NewHTTPError(http.StatusBadRequest, errors.New("page is invalid"))
		}
	}
	if sizeParam := c.QueryParam("size"); sizeParam != "" {
		if size, err = strconv.Atoi(sizeParam); err != nil || size < 0 {
			return echo.NewHTTPError(http.StatusBadRequest, errors.New("size is invalid"))
		}
	}

	books, err := h.lmsSvc.ListBooks(c.Request().Context(), page, size)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, books)
}

func (h *Handler) GetBook(c echo.Context) error {
	book, err := h.lmsSvc.GetBook(c.Request().Context(), c.Param("bookId"))
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, book)
}

func (h *Handler) CreateBook(c echo.Context) error {
	var req model.CreateBookRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	book, err := h.lmsSvc.CreateBook(c.Request().Context(), req)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, book)
}

func (h *Handler) UpdateBook(c echo.Context) error {
	var req model.UpdateBookRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	book, err := h.lmsSvc.UpdateBook(c.Request().Context(), c.Param("bookId"), req)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, book)
}

func (h *Handler) DeleteBook(c echo.Context) error {
	if err := h.lmsSvc.DeleteBook(c.Request().Context(), c.Param("bookId")); err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) GetBorrows(c echo.Context) error {
	ctx := c.Request().Context()
	userName, err := auth.UserName(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	borrows, err := h.lmsSvc.GetBorrows(ctx, userName)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, borrows)
}

func (h *Handler) BorrowBook(c echo.Context) error {
	ctx := c.Request().Context()
	userName, err := auth.UserName(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	var req model.BorrowBookRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	borrow, err := h.lmsSvc.BorrowBook(ctx, userName, req)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		case errors.Is(err, errs.ErrNoAvailability),
			errors.Is(err, errs.ErrBorrowLimit),
			errors.Is(err, errs.ErrHasOverdue):
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, borrow)
}

func (h *Handler) ReturnBook(c echo.Context) error {
	borrowID := c.Param("borrowId")
	if borrowID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "borrowId is empty")
	}
	var req model.ReturnBookRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	borrow, err := h.lmsSvc.ReturnBook(c.Request().Context(), borrowID, req.ReturnedAt)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		case errors.Is(err, errs.ErrAlreadyReturned):
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, borrow)
}

func (h *Handler) LogEntry(c echo.Context) error {
	ctx := c.Request().Context()
	userName, err := auth.UserName(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	var req model.LogEntryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	log, err := h.lmsSvc.LogEntry(ctx, userName, req)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, log)
}

func (h *Handler) LogExit(c echo.Context) error {
	ctx := c.Request().Context()
	userName, err := auth.UserName(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	closed, err := h.lmsSvc.LogExit(ctx, userName)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, closed)
}

func (h *Handler) ForceCheckout(c echo.Context) error {
	entryID := c.Param("entryId")
	if entryID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "entryId is empty")
	}
	log, err := h.lmsSvc.ForceCheckout(c.Request().Context(), entryID)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		case errors.Is(err, errs.ErrAlreadyLeft):
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, log)
}

func (h *Handler) CurrentInside(c echo.Context) error {
	logs, err := h.lmsSvc.CurrentInside(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, logs)
}

func (h *Handler) RecentLogs(c echo.Context) error {
	var (
		err   error
		limit int
	)
	if limitParam := c.QueryParam("limit"); limitParam != "" {
		if limit, err = strconv.Atoi(limitParam); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, errors.New("limit is invalid"))
		}
	}
	logs, err := h.lmsSvc.RecentLogs(c.Request().Context(), limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, logs)
}

func (h *Handler) Dashboard(c echo.Context) error {
	d, err := h.lmsSvc.Dashboard(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, d)
}

func (h *Handler) BorrowsReport(c echo.Context) error {
	from, to, err := rangeParams(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	borrows, err := h.lmsSvc.BorrowsReport(c.Request().Context(), from, to)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, borrows)
}

func (h *Handler) EntriesReport(c echo.Context) error {
	from, to, err := rangeParams(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	logs, err := h.lmsSvc.EntriesReport(c.Request().Context(), from, to)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, logs)
}

func (h *Handler) UserStats(c echo.Context) error {
	stats, err := h.lmsSvc.UserStats(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, stats)
}

func rangeParams(c echo.Context) (time.Time, time.Time, error) {
	from, err := parseTimeParam(c.QueryParam("from"))
	if err != nil {
		return time.Time{}, time.Time{}, errors.New("from is invalid")
	}
	to, err := parseTimeParam(c.QueryParam("to"))
	if err != nil {
		return time.Time{}, time.Time{}, errors.New("to is invalid")
	}
	if !from.Before(to) {
		return time.Time{}, time.Time{}, errors.New("from must be before to")
	}
	return from, to, nil
}

func parseTimeParam(v string) (time.Time, error) {
	if v == "" {
		return time.Time{}, errors.New("empty")
	}
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t, nil
	}
	return time.Parse(time.DateOnly, v)
}
