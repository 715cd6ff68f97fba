package repository

import (
	"context"
	"strings"
	"sync"

	"github.com/Astemirdum/library-circulation/circulation/internal/errs"
	"github.com/Astemirdum/library-circulation/circulation/internal/model"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Patrons stores patrons together with their loan history and pending alerts.
type Patrons interface {
	AddPatron(ctx context.Context, p model.Patron) (model.Patron, error)
	GetPatron(ctx context.Context, id string) (model.Patron, bool)
	UpdatePatron(ctx context.Context, id string, fn func(p *model.Patron)) bool
	ListPatrons(ctx context.Context) []model.Patron
}

type patrons struct {
	mu  sync.RWMutex
	log *zap.Logger

	items []model.Patron
	idx   map[string]int
}

func NewPatrons(log *zap.Logger) *patrons {
	return &patrons{
		log: log.Named("patrons"),
		idx: make(map[string]int),
	}
}

func (r *patrons) AddPatron(_ context.Context, p model.Patron) (model.Patron, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.items {
		if strings.EqualFold(existing.Email, p.Email) {
			return model.Patron{}, errors.Wrapf(errs.ErrConflict, "email %s already in use", p.Email)
		}
	}
	if p.ID == "" {
		p.ID = "p-" + shortID()
	}
	if _, ok := r.idx[p.ID]; ok {
		return model.Patron{}, errors.Wrapf(errs.ErrConflict, "patron %s already exists", p.ID)
	}
	p.History = make([]model.Loan, 0)
	p.Alerts = make([]string, 0)
	r.idx[p.ID] = len(r.items)
	r.items = append(r.items, p)
	r.log.Debug("AddPatron", zap.String("id", p.ID), zap.String("name", p.Name))
	return clonePatron(p), nil
}

func (r *patrons) GetPatron(_ context.Context, id string) (model.Patron, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i, ok := r.idx[id]
	if !ok {
		return model.Patron{}, false
	}
	return clonePatron(r.items[i]), true
}

// UpdatePatron applies fn to the stored patron in place. The id is kept as it was.
func (r *patrons) UpdatePatron(_ context.Context, id string, fn func(p *model.Patron)) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	i, ok := r.idx[id]
	if !ok {
		return false
	}
	fn(&r.items[i])
	r.items[i].ID = id
	return true
}

func (r *patrons) ListPatrons(_ context.Context) []model.Patron {
	r.mu.RLock()
	defer r.mu.RUnlock()
	res := make([]model.Patron, 0, len(r.items))
	for _, p := range r.items {
		res = append(res, clonePatron(p))
	}
	return res
}

func clonePatron(p model.Patron) model.Patron {
	history := make([]model.Loan, len(p.History))
	for i, l := range p.History {
		if l.ReturnedAt != nil {
			at := *l.ReturnedAt
			l.ReturnedAt = &at
		}
		history[i] = l
	}
	p.History = history
	p.Alerts = append(make([]string, 0, len(p.Alerts)), p.Alerts...)
	return p
}
