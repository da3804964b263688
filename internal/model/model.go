package model

import (
	"time"
)

type BookStatus string

const (
	BookAvailable   BookStatus = "available"
	BookUnavailable BookStatus = "unavailable"
)

// StatusFor derives a book's status from its available count.
func StatusFor(available int) BookStatus {
	if available > 0 {
		return BookAvailable
	}
	return BookUnavailable
}

type Book struct {
	ID                string     `json:"id" db:"id"`
	Title             string     `json:"title" db:"title"`
	Author            string     `json:"author" db:"author"`
	Category          string     `json:"category" db:"category"`
	ISBN              string     `json:"isbn" db:"isbn"`
	QuantityTotal     int        `json:"quantityTotal" db:"quantity_total"`
	QuantityAvailable int        `json:"quantityAvailable" db:"quantity_available"`
	Status            BookStatus `json:"status" db:"status"`
	Description       string     `json:"description" db:"description"`
	CreatedAt         time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt         time.Time  `json:"updatedAt" db:"updated_at"`
}

type ListBooks struct {
	Paging `json:",inline"`
	Items  []Book `json:"items"`
}

type Paging struct {
	Page          int `json:"page"`
	PageSize      int `json:"pageSize"`
	TotalElements int `json:"totalElements"`
}

type CreateBookRequest struct {
	Title         string `json:"title" validate:"required"`
	Author        string `json:"author" validate:"required"`
	Category      string `json:"category"`
	ISBN          string `json:"isbn" validate:"required"`
	QuantityTotal int    `json:"quantityTotal" validate:"gte=0"`
	Description   string `json:"description"`
}

type UpdateBookRequest struct {
	Title         *string `json:"title"`
	Author        *string `json:"author"`
	Category      *string `json:"category"`
	ISBN          *string `json:"isbn"`
	QuantityTotal *int    `json:"quantityTotal" validate:"omitempty,gte=0"`
	Description   *string `json:"description"`
}

type BorrowStatus string

const (
	BorrowBorrowed BorrowStatus = "borrowed"
	BorrowReturned BorrowStatus = "returned"
	BorrowOverdue  BorrowStatus = "overdue"
)

// Terminal reports whether no further transition is defined for the status.
func (s BorrowStatus) Terminal() bool {
	return s == BorrowReturned || s == BorrowOverdue
}

type Borrow struct {
	ID         string       `json:"id" db:"id"`
	UserID     string       `json:"userId" db:"user_id"`
	StudentID  *string      `json:"studentId,omitempty" db:"student_id"`
	BookID     string       `json:"bookId" db:"book_id"`
	BookTitle  string       `json:"bookTitle" db:"book_title"`
	BorrowedAt time.Time    `json:"borrowedAt" db:"borrowed_at"`
	DueAt      time.Time    `json:"dueAt" db:"due_at"`
	ReturnedAt *time.Time   `json:"returnedAt,omitempty" db:"returned_at"`
	Status     BorrowStatus `json:"status" db:"status"`
	FineAmount int          `json:"fineAmount" db:"fine_amount"`
}

type BorrowBookRequest struct {
	BookID    string     `json:"bookId" validate:"required"`
	DueAt     *time.Time `json:"dueAt"`
	StudentID *string    `json:"studentId"`
}

type ReturnBookRequest struct {
	ReturnedAt *time.Time `json:"returnedAt"`
}

type EntryStatus string

const (
	EntryInside EntryStatus = "Inside"
	EntryLeft   EntryStatus = "Left"
)

type VisitPurpose string

const (
	PurposeStudy        VisitPurpose = "Study"
	PurposeBorrowReturn VisitPurpose = "Borrow/Return"
	PurposeResearch     VisitPurpose = "Research"
	PurposeOthers       VisitPurpose = "Others"
)

type EntryLog struct {
	ID              string       `json:"id" db:"id"`
	UserID          string       `json:"userId" db:"user_id"`
	StudentID       *string      `json:"studentId,omitempty" db:"student_id"`
	Name            string       `json:"name" db:"name"`
	Purpose         VisitPurpose `json:"purpose" db:"purpose"`
	TimeIn          time.Time    `json:"timeIn" db:"time_in"`
	TimeOut         *time.Time   `json:"timeOut,omitempty" db:"time_out"`
	DurationMinutes *int         `json:"durationMinutes,omitempty" db:"duration_minutes"`
	Status          EntryStatus  `json:"status" db:"status"`
	ForcedCheckout  bool         `json:"forcedCheckout" db:"forced_checkout"`
}

type LogEntryRequest struct {
	Name      string       `json:"name" validate:"required"`
	Purpose   VisitPurpose `json:"purpose" validate:"required,oneof=Study 'Borrow/Return' Research Others"`
	StudentID *string      `json:"studentId"`
}

// Dashboard summarizes today's entry-log activity.
type Dashboard struct {
	TodayVisits     int            `json:"todayVisits"`
	CurrentlyInside int            `json:"currentlyInside"`
	LastEntryAt     *time.Time     `json:"lastEntryAt,omitempty"`
	PurposeCounts   map[string]int `json:"purposeCounts"`
	HourlyTraffic   [24]int        `json:"hourlyTraffic"`
}

// UserStats aggregates the kafka-fed events table per user.
type UserStats struct {
	UserName    string    `json:"username" db:"username"`
	LastUpdated time.Time `json:"lastUpdated" db:"last_updated"`
	Borrows     int       `json:"borrows" db:"borrows"`
	Returns     int       `json:"returns" db:"returns"`
	Visits      int       `json:"visits" db:"visits"`
	FinesTotal  int       `json:"finesTotal" db:"fines_total"`
}
