package model

import (
	"time"
)

type Category string

const (
	CategoryRegular   Category = "REGULAR"
	CategoryReference Category = "REFERENCE"
)

type Title struct {
	ISBN            string   `json:"isbn"`
	Name            string   `json:"name"`
	Author          string   `json:"author"`
	PublicationYear int      `json:"publicationYear"`
	Category        Category `json:"category"`
}

// Checkoutable reports whether copies of the title may leave the library.
func (t Title) Checkoutable() bool {
	return t.Category != CategoryReference
}

type Status string

const (
	StatusAvailable   Status = "AVAILABLE"
	StatusBorrowed    Status = "BORROWED"
	StatusReserved    Status = "RESERVED"
	StatusMaintenance Status = "MAINTENANCE"
	StatusLost        Status = "LOST"
)

type Copy struct {
	Barcode  string `json:"barcode"`
	ISBN     string `json:"isbn"`
	Status   Status `json:"status"`
	Location string `json:"location,omitempty"`
}

type Loan struct {
	ID         string     `json:"id"`
	Barcode    string     `json:"barcode"`
	PatronID   string     `json:"patronId"`
	CheckoutAt time.Time  `json:"checkoutAt"`
	DueAt      time.Time  `json:"dueAt"`
	ReturnedAt *time.Time `json:"returnedAt,omitempty"`
}

func (l Loan) Open() bool {
	return l.ReturnedAt == nil
}

func (l Loan) Overdue(now time.Time) bool {
	return l.Open() && l.DueAt.Before(now)
}

type Patron struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Email   string   `json:"email"`
	History []Loan   `json:"history"`
	Alerts  []string `json:"alerts"`
}

type ReservationStatus string

const (
	ReservationPending        ReservationStatus = "PENDING"
	ReservationReadyForPickup ReservationStatus = "READY_FOR_PICKUP"
	ReservationFulfilled      ReservationStatus = "FULFILLED"
	ReservationCanceled       ReservationStatus = "CANCELED"
)

type Reservation struct {
	ID        string            `json:"id"`
	PatronID  string            `json:"patronId"`
	ISBN      string            `json:"isbn"`
	Status    ReservationStatus `json:"status"`
	CreatedAt time.Time         `json:"createdAt"`

	// Barcode of the copy held for pickup, set once READY_FOR_PICKUP.
	Barcode string `json:"barcode,omitempty"`
}

// Closed reports whether the reservation reached a terminal status.
func (r Reservation) Closed() bool {
	return r.Status == ReservationFulfilled || r.Status == ReservationCanceled
}

type AddTitleRequest struct {
	ISBN            string   `json:"isbn" validate:"required"`
	Name            string   `json:"name" validate:"required"`
	Author          string   `json:"author" validate:"required"`
	PublicationYear int      `json:"publicationYear" validate:"gte=0"`
	Category        Category `json:"category" validate:"omitempty,oneof=REGULAR REFERENCE"`
}

type AddCopyRequest struct {
	Barcode  string `json:"barcode"`
	Location string `json:"location"`
}

type AddPatronRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

type CheckoutRequest struct {
	PatronID string `json:"patronId" validate:"required"`
}

type ReserveRequest struct {
	PatronID string `json:"patronId" validate:"required"`
	ISBN     string `json:"isbn" validate:"required"`
}

type WithdrawRequest struct {
	Status Status `json:"status" validate:"required,oneof=MAINTENANCE LOST"`
}

type ReturnResponse struct {
	Barcode string `json:"barcode"`
	Status  Status `json:"status"`
}

type SearchBy string

const (
	SearchByISBN   SearchBy = "isbn"
	SearchByName   SearchBy = "name"
	SearchByAuthor SearchBy = "author"
)
