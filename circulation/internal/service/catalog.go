package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/Astemirdum/library-circulation/circulation/internal/errs"
	"github.com/Astemirdum/library-circulation/circulation/internal/model"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

func (s *Service) AddTitle(ctx context.Context, req model.AddTitleRequest) (model.Title, error) {
	title := model.Title{
		ISBN:            strings.TrimSpace(req.ISBN),
		Name:            req.Name,
		Author:          req.Author,
		PublicationYear: req.PublicationYear,
		Category:        req.Category,
	}
	if title.ISBN == "" {
		return model.Title{}, errors.Wrap(errs.ErrInvalidOperation, "isbn is required")
	}
	if title.Category == "" {
		title.Category = model.CategoryRegular
	}
	if err := s.inventory.AddTitle(ctx, title); err != nil {
		return model.Title{}, err
	}
	s.log.Info("title cataloged", zap.String("isbn", title.ISBN), zap.String("name", title.Name))
	return title, nil
}

// UpdateTitle replaces the metadata of an existing title. The ISBN is the key and
// cannot change. A title cannot become reference-only while a copy is out or held.
func (s *Service) UpdateTitle(ctx context.Context, isbn string, req model.AddTitleRequest) (model.Title, error) {
	title := model.Title{
		ISBN:            isbn,
		Name:            req.Name,
		Author:          req.Author,
		PublicationYear: req.PublicationYear,
		Category:        req.Category,
	}
	if title.Category == "" {
		title.Category = model.CategoryRegular
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if prev, ok := s.inventory.GetTitle(ctx, isbn); ok && prev.Checkoutable() && !title.Checkoutable() {
		for _, c := range s.inventory.CopiesOf(ctx, isbn) {
			if c.Status == model.StatusBorrowed || c.Status == model.StatusReserved {
				return model.Title{}, errors.Wrapf(errs.ErrConflict, "title %s has copy %s %s", isbn, c.Barcode, c.Status)
			}
		}
	}
	if err := s.inventory.UpdateTitle(ctx, title); err != nil {
		return model.Title{}, err
	}
	return title, nil
}

func (s *Service) GetTitle(ctx context.Context, isbn string) (model.Title, error) {
	title, ok := s.inventory.GetTitle(ctx, isbn)
	if !ok {
		return model.Title{}, errors.Wrapf(errs.ErrNotFound, "title %s", isbn)
	}
	return title, nil
}

func (s *Service) SearchTitles(ctx context.Context, by model.SearchBy, query string) ([]model.Title, error) {
	switch by {
	case model.SearchByISBN, model.SearchByName, model.SearchByAuthor:
	default:
		return nil, errors.Wrapf(errs.ErrInvalidOperation, "unknown search field %q", by)
	}
	return s.inventory.SearchTitles(ctx, by, query), nil
}

func (s *Service) AddCopy(ctx context.Context, isbn string, req model.AddCopyRequest) (model.Copy, error) {
	c, err := s.inventory.AddCopy(ctx, model.Copy{
		Barcode:  strings.TrimSpace(req.Barcode),
		ISBN:     isbn,
		Location: req.Location,
	})
	if err != nil {
		return model.Copy{}, err
	}
	s.log.Info("copy added", zap.String("barcode", c.Barcode), zap.String("isbn", isbn))
	return c, nil
}

// TitleCopies lists the copies of a title with their current status.
func (s *Service) TitleCopies(ctx context.Context, isbn string) ([]model.Copy, error) {
	if _, ok := s.inventory.GetTitle(ctx, isbn); !ok {
		return nil, errors.Wrapf(errs.ErrNotFound, "title %s", isbn)
	}
	return s.inventory.CopiesOf(ctx, isbn), nil
}

func (s *Service) GetCopy(ctx context.Context, barcode string) (model.Copy, error) {
	c, ok := s.inventory.GetCopy(ctx, barcode)
	if !ok {
		return model.Copy{}, errors.Wrapf(errs.ErrNotFound, "copy %s", barcode)
	}
	return c, nil
}

// RemoveCopy deletes a copy from the inventory unless it is on loan or held.
func (s *Service) RemoveCopy(ctx context.Context, barcode string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.inventory.GetCopy(ctx, barcode)
	if !ok {
		return errors.Wrapf(errs.ErrNotFound, "copy %s", barcode)
	}
	if c.Status == model.StatusBorrowed || c.Status == model.StatusReserved {
		return errors.Wrapf(errs.ErrConflict, "copy %s is %s", barcode, c.Status)
	}
	s.inventory.RemoveCopy(ctx, barcode)
	s.log.Info("copy removed", zap.String("barcode", barcode))
	return nil
}

func (s *Service) AddPatron(ctx context.Context, req model.AddPatronRequest) (model.Patron, error) {
	name, email := strings.TrimSpace(req.Name), strings.TrimSpace(req.Email)
	if name == "" || email == "" {
		return model.Patron{}, errors.Wrap(errs.ErrInvalidOperation, "patron name and email are required")
	}
	p, err := s.patrons.AddPatron(ctx, model.Patron{Name: name, Email: email})
	if err != nil {
		return model.Patron{}, err
	}
	s.log.Info("patron registered", zap.String("id", p.ID), zap.String("name", p.Name))
	return p, nil
}

func (s *Service) GetPatron(ctx context.Context, id string) (model.Patron, error) {
	p, ok := s.patrons.GetPatron(ctx, id)
	if !ok {
		return model.Patron{}, errors.Wrapf(errs.ErrNotFound, "patron %s", id)
	}
	return p, nil
}

func (s *Service) ListPatrons(ctx context.Context) []model.Patron {
	return s.patrons.ListPatrons(ctx)
}

func (s *Service) PatronReservations(ctx context.Context, id string) ([]model.Reservation, error) {
	if _, ok := s.patrons.GetPatron(ctx, id); !ok {
		return nil, errors.Wrapf(errs.ErrNotFound, "patron %s", id)
	}
	return s.ledger.ByPatron(id), nil
}

func (s *Service) ReservationQueue(ctx context.Context, isbn string) ([]model.Reservation, error) {
	if _, ok := s.inventory.GetTitle(ctx, isbn); !ok {
		return nil, errors.Wrapf(errs.ErrNotFound, "title %s", isbn)
	}
	return s.ledger.Queue(isbn), nil
}

// ActiveLoans lists open loans, oldest checkout first.
func (s *Service) ActiveLoans(_ context.Context) []model.Loan {
	s.mu.Lock()
	loans := make([]model.Loan, 0, len(s.openLoans))
	for _, l := range s.openLoans {
		loans = append(loans, l)
	}
	s.mu.Unlock()

	sort.Slice(loans, func(i, j int) bool {
		if loans[i].CheckoutAt.Equal(loans[j].CheckoutAt) {
			return loans[i].Barcode < loans[j].Barcode
		}
		return loans[i].CheckoutAt.Before(loans[j].CheckoutAt)
	})
	return loans
}

// OverdueLoans lists open loans whose due date is before now.
func (s *Service) OverdueLoans(ctx context.Context, now time.Time) []model.Loan {
	res := make([]model.Loan, 0)
	for _, l := range s.ActiveLoans(ctx) {
		if l.Overdue(now) {
			res = append(res, l)
		}
	}
	return res
}

func (s *Service) OpenLoan(_ context.Context, barcode string) (model.Loan, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.openLoans[barcode]
	return l, ok
}

// Now is the coordinator clock.
func (s *Service) Now() time.Time {
	return s.now()
}
