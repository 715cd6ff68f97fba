package handler

import (
	"context"
	"time"

	"github.com/Astemirdum/library-circulation/circulation/internal/model"
	"github.com/Astemirdum/library-circulation/circulation/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type CirculationService interface {
	AddTitle(ctx context.Context, req model.AddTitleRequest) (model.Title, error)
	UpdateTitle(ctx context.Context, isbn string, req model.AddTitleRequest) (model.Title, error)
	SearchTitles(ctx context.Context, by model.SearchBy, query string) ([]model.Title, error)
	ReservationQueue(ctx context.Context, isbn string) ([]model.Reservation, error)

	AddCopy(ctx context.Context, isbn string, req model.AddCopyRequest) (model.Copy, error)
	TitleCopies(ctx context.Context, isbn string) ([]model.Copy, error)
	GetCopy(ctx context.Context, barcode string) (model.Copy, error)
	RemoveCopy(ctx context.Context, barcode string) error
	Withdraw(ctx context.Context, barcode string, status model.Status) (model.Copy, error)

	AddPatron(ctx context.Context, req model.AddPatronRequest) (model.Patron, error)
	GetPatron(ctx context.Context, id string) (model.Patron, error)
	ListPatrons(ctx context.Context) []model.Patron
	PatronReservations(ctx context.Context, id string) ([]model.Reservation, error)

	Checkout(ctx context.Context, patronID, barcode string) (model.Loan, error)
	ReturnCopy(ctx context.Context, barcode string) (model.Status, error)
	Reserve(ctx context.Context, patronID, isbn string) (model.Reservation, error)
	CancelReservation(ctx context.Context, id string) (model.Reservation, error)

	ActiveLoans(ctx context.Context) []model.Loan
	OverdueLoans(ctx context.Context, now time.Time) []model.Loan
	Now() time.Time
}

var _ CirculationService = (*service.Service)(nil)
