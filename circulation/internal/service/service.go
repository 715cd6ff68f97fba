package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Astemirdum/library-circulation/circulation/internal/errs"
	"github.com/Astemirdum/library-circulation/circulation/internal/ledger"
	"github.com/Astemirdum/library-circulation/circulation/internal/metrics"
	"github.com/Astemirdum/library-circulation/circulation/internal/model"
	"github.com/Astemirdum/library-circulation/circulation/internal/notify"
	"github.com/Astemirdum/library-circulation/circulation/internal/repository"
	"github.com/Astemirdum/library-circulation/pkg/kafka"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const DefaultLoanPeriod = 30 * 24 * time.Hour

type EventSink interface {
	Emit(ctx context.Context, event kafka.Event)
}

// Service is the circulation coordinator. It is the only writer of copy status and
// the only place where reservations are handed a returned copy.
type Service struct {
	// mu serializes every checkout, return, reservation and copy status change.
	mu sync.Mutex

	log       *zap.Logger
	inventory repository.Inventory
	patrons   repository.Patrons
	ledger    *ledger.Ledger
	notifier  notify.Notifier
	events    EventSink
	metrics   *metrics.Metrics

	now        func() time.Time
	loanPeriod time.Duration

	openLoans map[string]model.Loan // barcode -> open loan
	holds     map[string]string     // barcode -> READY_FOR_PICKUP reservation id
}

type Option func(s *Service)

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func WithLoanPeriod(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.loanPeriod = d
		}
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func WithEvents(sink EventSink) Option {
	return func(s *Service) {
		s.events = sink
	}
}

func NewService(
	inventory repository.Inventory,
	patrons repository.Patrons,
	ledger *ledger.Ledger,
	notifier notify.Notifier,
	log *zap.Logger,
	opts ...Option,
) *Service {
	s := &Service{
		log:        log.Named("coordinator"),
		inventory:  inventory,
		patrons:    patrons,
		ledger:     ledger,
		notifier:   notifier,
		events:     nopEvents{},
		now:        time.Now,
		loanPeriod: DefaultLoanPeriod,
		openLoans:  make(map[string]model.Loan),
		holds:      make(map[string]string),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type alert struct {
	patronID string
	message  string
}

func readyForPickup(title model.Title) string {
	return fmt.Sprintf("Your reserved book '%s' is ready for pickup!", title.Name)
}

// Checkout lends the copy to the patron. A RESERVED copy can only be checked out by
// the patron whose reservation holds it. Borrowing any copy of a title fulfills the
// patron's ready reservation for it, and a copy held elsewhere goes to the next in line.
func (s *Service) Checkout(ctx context.Context, patronID, barcode string) (model.Loan, error) {
	s.mu.Lock()
	loan, a, events, err := s.checkout(ctx, patronID, barcode)
	s.mu.Unlock()

	s.metrics.Checkout(outcome(err))
	if err != nil {
		return model.Loan{}, err
	}
	s.dispatch(ctx, a)
	s.emit(ctx, events)
	s.log.Info("checkout", zap.String("barcode", barcode), zap.String("patron", patronID), zap.Time("due", loan.DueAt))
	return loan, nil
}

func (s *Service) checkout(ctx context.Context, patronID, barcode string) (model.Loan, *alert, []kafka.Event, error) {
	c, ok := s.inventory.GetCopy(ctx, barcode)
	if !ok {
		s.log.Warn("checkout: unknown copy", zap.String("barcode", barcode))
		return model.Loan{}, nil, nil, errors.Wrapf(errs.ErrNotFound, "copy %s", barcode)
	}
	if _, ok := s.patrons.GetPatron(ctx, patronID); !ok {
		s.log.Warn("checkout: unknown patron", zap.String("patron", patronID))
		return model.Loan{}, nil, nil, errors.Wrapf(errs.ErrNotFound, "patron %s", patronID)
	}
	title, err := s.titleOf(ctx, c)
	if err != nil {
		return model.Loan{}, nil, nil, err
	}
	if !title.Checkoutable() {
		s.log.Warn("checkout: reference title", zap.String("barcode", barcode))
		return model.Loan{}, nil, nil, errors.Wrapf(errs.ErrInvalidOperation, "reference title %s cannot be checked out", title.ISBN)
	}

	// heldBarcode is the copy held for holdID, when it is not the one being borrowed.
	var holdID, heldBarcode string
	switch c.Status {
	case model.StatusAvailable:
		heldBarcode, holdID = s.holdOf(patronID, c.ISBN)
	case model.StatusReserved:
		id, held := s.holds[barcode]
		r, _ := s.ledger.Get(id)
		if !held || r.PatronID != patronID {
			s.log.Warn("checkout: copy held for another patron", zap.String("barcode", barcode), zap.String("patron", patronID))
			return model.Loan{}, nil, nil, errors.Wrapf(errs.ErrConflict, "copy %s is held for another patron", barcode)
		}
		holdID = id
	default:
		s.log.Warn("checkout: copy not available", zap.String("barcode", barcode), zap.String("status", string(c.Status)))
		return model.Loan{}, nil, nil, errors.Wrapf(errs.ErrConflict, "copy %s is not available: %s", barcode, c.Status)
	}
	if open, ok := s.openLoans[barcode]; ok {
		return model.Loan{}, nil, nil, s.fault("open loan on a copy that is not borrowed",
			zap.String("barcode", barcode), zap.String("loan", open.ID))
	}

	now := s.now()
	loan := model.Loan{
		ID:         uuid.NewString(),
		Barcode:    barcode,
		PatronID:   patronID,
		CheckoutAt: now,
		DueAt:      now.Add(s.loanPeriod),
	}
	s.patrons.UpdatePatron(ctx, patronID, func(p *model.Patron) {
		p.History = append(p.History, loan)
	})
	s.inventory.UpdateCopy(ctx, barcode, func(c *model.Copy) {
		c.Status = model.StatusBorrowed
	})
	s.openLoans[barcode] = loan

	events := []kafka.Event{{
		Timestamp: now, EventType: kafka.EventCheckout,
		PatronID: patronID, Barcode: barcode, ISBN: c.ISBN, Status: string(model.StatusBorrowed),
	}}
	var a *alert
	if holdID != "" {
		if heldBarcode == "" {
			delete(s.holds, barcode)
		} else {
			delete(s.holds, heldBarcode)
		}
		if _, err := s.ledger.SetStatus(holdID, model.ReservationFulfilled, ""); err != nil {
			s.log.Error("fulfill reservation", zap.String("reservation", holdID), zap.Error(err))
		}
		s.metrics.Reservation(string(model.ReservationFulfilled))
		if heldBarcode != "" {
			s.log.Info("held copy released",
				zap.String("barcode", heldBarcode), zap.String("reservation", holdID), zap.String("patron", patronID))
			var ev []kafka.Event
			_, a, ev = s.allocate(ctx, heldBarcode, title)
			events = append(events, ev...)
		}
	}
	return loan, a, events, nil
}

// holdOf finds a copy of the title held for the patron. Caller holds s.mu.
func (s *Service) holdOf(patronID, isbn string) (barcode, reservationID string) {
	for bc, id := range s.holds {
		if r, ok := s.ledger.Get(id); ok && r.PatronID == patronID && r.ISBN == isbn {
			return bc, id
		}
	}
	return "", ""
}

// ReturnCopy closes the open loan and hands the copy to the head of the title's
// reservation queue, or makes it available when nobody is waiting.
func (s *Service) ReturnCopy(ctx context.Context, barcode string) (model.Status, error) {
	s.mu.Lock()
	status, a, events, err := s.returnCopy(ctx, barcode)
	s.mu.Unlock()

	if err != nil {
		s.metrics.Return(outcome(err))
		return "", err
	}
	s.metrics.Return(string(status))
	s.log.Info("return", zap.String("barcode", barcode), zap.String("status", string(status)))
	s.dispatch(ctx, a)
	s.emit(ctx, events)
	return status, nil
}

func (s *Service) returnCopy(ctx context.Context, barcode string) (model.Status, *alert, []kafka.Event, error) {
	c, ok := s.inventory.GetCopy(ctx, barcode)
	if !ok {
		s.log.Warn("return: unknown copy", zap.String("barcode", barcode))
		return "", nil, nil, errors.Wrapf(errs.ErrNotFound, "copy %s", barcode)
	}
	if c.Status != model.StatusBorrowed {
		s.log.Warn("return: copy not on loan", zap.String("barcode", barcode), zap.String("status", string(c.Status)))
		return "", nil, nil, errors.Wrapf(errs.ErrConflict, "copy %s is not on loan: %s", barcode, c.Status)
	}
	loan, ok := s.openLoans[barcode]
	if !ok {
		return "", nil, nil, s.fault("no open loan for borrowed copy", zap.String("barcode", barcode))
	}
	title, err := s.titleOf(ctx, c)
	if err != nil {
		return "", nil, nil, err
	}

	now := s.now()
	closed := s.patrons.UpdatePatron(ctx, loan.PatronID, func(p *model.Patron) {
		for i := range p.History {
			if p.History[i].ID == loan.ID {
				p.History[i].ReturnedAt = &now
			}
		}
	})
	if !closed {
		return "", nil, nil, s.fault("loan belongs to unknown patron",
			zap.String("barcode", barcode), zap.String("patron", loan.PatronID))
	}
	delete(s.openLoans, barcode)

	events := []kafka.Event{{
		Timestamp: now, EventType: kafka.EventReturn,
		PatronID: loan.PatronID, Barcode: barcode, ISBN: c.ISBN,
	}}
	status, a, ev := s.allocate(ctx, barcode, title)
	events[0].Status = string(status)
	return status, a, append(events, ev...), nil
}

// allocate decides the next status of a copy that just came back to the desk.
// Caller holds s.mu.
func (s *Service) allocate(ctx context.Context, barcode string, title model.Title) (model.Status, *alert, []kafka.Event) {
	next, ok := s.ledger.DequeueNext(title.ISBN)
	if !ok {
		s.inventory.UpdateCopy(ctx, barcode, func(c *model.Copy) {
			c.Status = model.StatusAvailable
		})
		return model.StatusAvailable, nil, nil
	}

	if _, err := s.ledger.SetStatus(next.ID, model.ReservationReadyForPickup, barcode); err != nil {
		s.log.Error("ready for pickup", zap.String("reservation", next.ID), zap.Error(err))
	}
	s.inventory.UpdateCopy(ctx, barcode, func(c *model.Copy) {
		c.Status = model.StatusReserved
	})
	s.holds[barcode] = next.ID
	s.metrics.Reservation(string(model.ReservationReadyForPickup))
	s.log.Info("copy held for reservation",
		zap.String("barcode", barcode), zap.String("reservation", next.ID), zap.String("patron", next.PatronID))

	return model.StatusReserved,
		&alert{patronID: next.PatronID, message: readyForPickup(title)},
		[]kafka.Event{{
			Timestamp: s.now(), EventType: kafka.EventReadyForPickup,
			PatronID: next.PatronID, Barcode: barcode, ISBN: title.ISBN, ReservationID: next.ID,
		}}
}

// Reserve places the patron at the tail of the title's waiting line.
func (s *Service) Reserve(ctx context.Context, patronID, isbn string) (model.Reservation, error) {
	s.mu.Lock()
	if _, ok := s.patrons.GetPatron(ctx, patronID); !ok {
		s.mu.Unlock()
		return model.Reservation{}, errors.Wrapf(errs.ErrNotFound, "patron %s", patronID)
	}
	if _, ok := s.inventory.GetTitle(ctx, isbn); !ok {
		s.mu.Unlock()
		return model.Reservation{}, errors.Wrapf(errs.ErrNotFound, "title %s", isbn)
	}
	r := s.ledger.Enqueue(patronID, isbn)
	s.mu.Unlock()

	s.metrics.Reservation(string(model.ReservationPending))
	s.emit(ctx, []kafka.Event{{
		Timestamp: r.CreatedAt, EventType: kafka.EventReserve,
		PatronID: patronID, ISBN: isbn, ReservationID: r.ID,
	}})
	s.log.Info("reserve", zap.String("reservation", r.ID), zap.String("isbn", isbn), zap.String("patron", patronID))
	return r, nil
}

// CancelReservation withdraws a pending or ready reservation. A copy held for a
// canceled reservation is passed on to the next patron in line.
func (s *Service) CancelReservation(ctx context.Context, id string) (model.Reservation, error) {
	s.mu.Lock()
	prev, err := s.ledger.Cancel(id)
	if err != nil {
		s.mu.Unlock()
		return model.Reservation{}, err
	}
	events := []kafka.Event{{
		Timestamp: s.now(), EventType: kafka.EventCancel,
		PatronID: prev.PatronID, ISBN: prev.ISBN, ReservationID: id, Barcode: prev.Barcode,
	}}
	var a *alert
	if prev.Status == model.ReservationReadyForPickup && s.holds[prev.Barcode] == id {
		delete(s.holds, prev.Barcode)
		title, _ := s.inventory.GetTitle(ctx, prev.ISBN)
		var ev []kafka.Event
		_, a, ev = s.allocate(ctx, prev.Barcode, title)
		events = append(events, ev...)
	}
	r, _ := s.ledger.Get(id)
	s.mu.Unlock()

	s.metrics.Reservation(string(model.ReservationCanceled))
	s.log.Info("reservation canceled", zap.String("reservation", id))
	s.dispatch(ctx, a)
	s.emit(ctx, events)
	return r, nil
}

// Withdraw takes an available copy out of circulation for maintenance or as lost.
func (s *Service) Withdraw(ctx context.Context, barcode string, status model.Status) (model.Copy, error) {
	if status != model.StatusMaintenance && status != model.StatusLost {
		return model.Copy{}, errors.Wrapf(errs.ErrInvalidOperation, "cannot withdraw copy as %s", status)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.inventory.GetCopy(ctx, barcode)
	if !ok {
		return model.Copy{}, errors.Wrapf(errs.ErrNotFound, "copy %s", barcode)
	}
	if c.Status != model.StatusAvailable {
		return model.Copy{}, errors.Wrapf(errs.ErrConflict, "copy %s is %s", barcode, c.Status)
	}
	s.inventory.UpdateCopy(ctx, barcode, func(c *model.Copy) {
		c.Status = status
	})
	c.Status = status
	s.log.Info("copy withdrawn", zap.String("barcode", barcode), zap.String("status", string(status)))
	return c, nil
}

func (s *Service) titleOf(ctx context.Context, c model.Copy) (model.Title, error) {
	title, ok := s.inventory.GetTitle(ctx, c.ISBN)
	if !ok {
		return model.Title{}, s.fault("copy references unknown title",
			zap.String("barcode", c.Barcode), zap.String("isbn", c.ISBN))
	}
	return title, nil
}

// fault reports a broken invariant. Nothing is repaired.
func (s *Service) fault(msg string, fields ...zap.Field) error {
	s.metrics.Fault()
	s.log.DPanic(msg, fields...)
	return errors.Wrap(errs.ErrConsistency, msg)
}

func (s *Service) dispatch(ctx context.Context, a *alert) {
	if a == nil {
		return
	}
	if err := s.notifier.Notify(ctx, a.patronID, a.message); err != nil {
		s.metrics.Notification("failed")
		s.log.Warn("notification failed", zap.String("patron", a.patronID), zap.Error(err))
		return
	}
	s.metrics.Notification("sent")
}

func (s *Service) emit(ctx context.Context, events []kafka.Event) {
	for _, e := range events {
		s.events.Emit(ctx, e)
	}
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, errs.ErrNotFound):
		return "not_found"
	case errors.Is(err, errs.ErrInvalidOperation):
		return "invalid_operation"
	case errors.Is(err, errs.ErrConflict):
		return "conflict"
	case errors.Is(err, errs.ErrConsistency):
		return "consistency"
	default:
		return "error"
	}
}

type nopEvents struct{}

func (nopEvents) Emit(context.Context, kafka.Event) {}
