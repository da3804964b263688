package errs

import (
	"errors"
)

var (
	ErrNotFound = errors.New("not found")

	// borrow preconditions
	ErrNoAvailability = errors.New("no copies available")
	ErrBorrowLimit    = errors.New("borrow limit reached")
	ErrHasOverdue     = errors.New("borrower has an overdue book")

	// terminal-state guards
	ErrAlreadyReturned = errors.New("borrow already closed")
	ErrAlreadyLeft     = errors.New("entry log already closed")

	ErrForbidden = errors.New("operation requires staff role")
)
