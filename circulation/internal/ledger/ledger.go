// Package ledger keeps the per-title waiting lines of reservations.
//
// Queues are strictly first-requested-first-served. A reservation leaves its queue
// the moment it is dequeued or canceled; the reservation record itself is kept in
// the ledger so its later status changes remain visible.
package ledger

import (
	"strings"
	"sync"
	"time"

	"github.com/Astemirdum/library-circulation/circulation/internal/errs"
	"github.com/Astemirdum/library-circulation/circulation/internal/model"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type Ledger struct {
	mu  sync.RWMutex
	log *zap.Logger
	now func() time.Time

	queues       map[string][]string
	reservations map[string]*model.Reservation

	// creation order of every reservation id
	order []string
}

type Option func(l *Ledger)

func WithClock(now func() time.Time) Option {
	return func(l *Ledger) {
		l.now = now
	}
}

func New(log *zap.Logger, opts ...Option) *Ledger {
	l := &Ledger{
		log:          log.Named("ledger"),
		now:          time.Now,
		queues:       make(map[string][]string),
		reservations: make(map[string]*model.Reservation),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Enqueue appends a PENDING reservation to the tail of the title's queue.
// Availability of copies is not consulted.
func (l *Ledger) Enqueue(patronID, isbn string) model.Reservation {
	l.mu.Lock()
	defer l.mu.Unlock()

	r := &model.Reservation{
		ID:        "r-" + strings.ReplaceAll(uuid.NewString(), "-", "")[:8],
		PatronID:  patronID,
		ISBN:      isbn,
		Status:    model.ReservationPending,
		CreatedAt: l.now(),
	}
	l.reservations[r.ID] = r
	l.order = append(l.order, r.ID)
	l.queues[isbn] = append(l.queues[isbn], r.ID)

	l.log.Debug("Enqueue",
		zap.String("reservation", r.ID),
		zap.String("isbn", isbn),
		zap.Int("position", len(l.queues[isbn])))
	return *r
}

// DequeueNext pops the head of the title's queue. An absent or empty queue is
// reported with false. The returned reservation is still PENDING.
func (l *Ledger) DequeueNext(isbn string) (model.Reservation, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	q := l.queues[isbn]
	if len(q) == 0 {
		return model.Reservation{}, false
	}
	head := q[0]
	if len(q) == 1 {
		delete(l.queues, isbn)
	} else {
		l.queues[isbn] = q[1:]
	}
	return *l.reservations[head], true
}

// Cancel withdraws a reservation regardless of its queue position.
// The returned reservation carries the status it had before cancellation.
func (l *Ledger) Cancel(id string) (model.Reservation, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	r, ok := l.reservations[id]
	if !ok {
		return model.Reservation{}, errors.Wrapf(errs.ErrNotFound, "reservation %s", id)
	}
	if r.Closed() {
		return model.Reservation{}, errors.Wrapf(errs.ErrConflict, "reservation %s is %s", id, r.Status)
	}
	prev := *r
	if r.Status == model.ReservationPending {
		l.removeFromQueue(r.ISBN, id)
	}
	r.Status = model.ReservationCanceled
	return prev, nil
}

// SetStatus records a status transition decided by the coordinator.
// barcode is stored when non-empty.
func (l *Ledger) SetStatus(id string, status model.ReservationStatus, barcode string) (model.Reservation, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	r, ok := l.reservations[id]
	if !ok {
		return model.Reservation{}, errors.Wrapf(errs.ErrNotFound, "reservation %s", id)
	}
	r.Status = status
	if barcode != "" {
		r.Barcode = barcode
	}
	return *r, nil
}

func (l *Ledger) Get(id string) (model.Reservation, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	r, ok := l.reservations[id]
	if !ok {
		return model.Reservation{}, false
	}
	return *r, true
}

func (l *Ledger) QueueLength(isbn string) int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.queues[isbn])
}

// Queue returns the pending reservations of a title, head first.
func (l *Ledger) Queue(isbn string) []model.Reservation {
	l.mu.RLock()
	defer l.mu.RUnlock()
	q := l.queues[isbn]
	res := make([]model.Reservation, 0, len(q))
	for _, id := range q {
		res = append(res, *l.reservations[id])
	}
	return res
}

func (l *Ledger) ByPatron(patronID string) []model.Reservation {
	l.mu.RLock()
	defer l.mu.RUnlock()
	res := make([]model.Reservation, 0)
	for _, id := range l.order {
		if r := l.reservations[id]; r.PatronID == patronID {
			res = append(res, *r)
		}
	}
	return res
}

func (l *Ledger) removeFromQueue(isbn, id string) {
	q := l.queues[isbn]
	for i, rid := range q {
		if rid != id {
			continue
		}
		q = append(q[:i:i], q[i+1:]...)
		break
	}
	if len(q) == 0 {
		delete(l.queues, isbn)
		return
	}
	l.queues[isbn] = q
}
