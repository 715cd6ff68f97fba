package repository

import (
	"context"
	"strings"
	"sync"

	"github.com/Astemirdum/library-circulation/circulation/internal/errs"
	"github.com/Astemirdum/library-circulation/circulation/internal/model"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Inventory is the catalog of titles and the physical copies of each title.
type Inventory interface {
	AddTitle(ctx context.Context, title model.Title) error
	UpdateTitle(ctx context.Context, title model.Title) error
	GetTitle(ctx context.Context, isbn string) (model.Title, bool)
	SearchTitles(ctx context.Context, by model.SearchBy, query string) []model.Title

	AddCopy(ctx context.Context, c model.Copy) (model.Copy, error)
	RemoveCopy(ctx context.Context, barcode string) bool
	GetCopy(ctx context.Context, barcode string) (model.Copy, bool)
	UpdateCopy(ctx context.Context, barcode string, fn func(c *model.Copy)) bool
	CopiesOf(ctx context.Context, isbn string) []model.Copy
}

type inventory struct {
	mu  sync.RWMutex
	log *zap.Logger

	titles   []model.Title
	titleIdx map[string]int
	copies   []model.Copy
	copyIdx  map[string]int
}

func NewInventory(log *zap.Logger) *inventory {
	return &inventory{
		log:      log.Named("inventory"),
		titleIdx: make(map[string]int),
		copyIdx:  make(map[string]int),
	}
}

func (r *inventory) AddTitle(_ context.Context, title model.Title) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.titleIdx[title.ISBN]; ok {
		return errors.Wrapf(errs.ErrConflict, "title %s already exists", title.ISBN)
	}
	r.titleIdx[title.ISBN] = len(r.titles)
	r.titles = append(r.titles, title)
	r.log.Debug("AddTitle", zap.String("isbn", title.ISBN), zap.String("name", title.Name))
	return nil
}

func (r *inventory) UpdateTitle(_ context.Context, title model.Title) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	i, ok := r.titleIdx[title.ISBN]
	if !ok {
		return errors.Wrapf(errs.ErrNotFound, "title %s", title.ISBN)
	}
	r.titles[i] = title
	return nil
}

func (r *inventory) GetTitle(_ context.Context, isbn string) (model.Title, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i, ok := r.titleIdx[isbn]
	if !ok {
		return model.Title{}, false
	}
	return r.titles[i], true
}

func (r *inventory) SearchTitles(_ context.Context, by model.SearchBy, query string) []model.Title {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if by == model.SearchByISBN {
		if i, ok := r.titleIdx[query]; ok {
			return []model.Title{r.titles[i]}
		}
		return []model.Title{}
	}

	q := strings.ToLower(query)
	found := make([]model.Title, 0)
	for _, t := range r.titles {
		field := t.Name
		if by == model.SearchByAuthor {
			field = t.Author
		}
		if strings.Contains(strings.ToLower(field), q) {
			found = append(found, t)
		}
	}
	return found
}

func (r *inventory) AddCopy(_ context.Context, c model.Copy) (model.Copy, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.titleIdx[c.ISBN]; !ok {
		return model.Copy{}, errors.Wrapf(errs.ErrNotFound, "title %s", c.ISBN)
	}
	if c.Barcode == "" {
		c.Barcode = NewBarcode()
	}
	if _, ok := r.copyIdx[c.Barcode]; ok {
		return model.Copy{}, errors.Wrapf(errs.ErrConflict, "copy %s already exists", c.Barcode)
	}
	c.Status = model.StatusAvailable
	r.copyIdx[c.Barcode] = len(r.copies)
	r.copies = append(r.copies, c)
	r.log.Debug("AddCopy", zap.String("barcode", c.Barcode), zap.String("isbn", c.ISBN))
	return c, nil
}

func (r *inventory) RemoveCopy(_ context.Context, barcode string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	i, ok := r.copyIdx[barcode]
	if !ok {
		return false
	}
	last := len(r.copies) - 1
	if i != last {
		r.copies[i] = r.copies[last]
		r.copyIdx[r.copies[i].Barcode] = i
	}
	r.copies = r.copies[:last]
	delete(r.copyIdx, barcode)
	return true
}

func (r *inventory) GetCopy(_ context.Context, barcode string) (model.Copy, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i, ok := r.copyIdx[barcode]
	if !ok {
		return model.Copy{}, false
	}
	return r.copies[i], true
}

// UpdateCopy applies fn to the stored copy. Barcode and ISBN are kept as they were.
func (r *inventory) UpdateCopy(_ context.Context, barcode string, fn func(c *model.Copy)) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	i, ok := r.copyIdx[barcode]
	if !ok {
		return false
	}
	c := r.copies[i]
	fn(&c)
	c.Barcode, c.ISBN = r.copies[i].Barcode, r.copies[i].ISBN
	r.copies[i] = c
	return true
}

func (r *inventory) CopiesOf(_ context.Context, isbn string) []model.Copy {
	r.mu.RLock()
	defer r.mu.RUnlock()
	res := make([]model.Copy, 0)
	for _, c := range r.copies {
		if c.ISBN == isbn {
			res = append(res, c)
		}
	}
	return res
}

func NewBarcode() string {
	return "bc-" + shortID()
}

func shortID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}
