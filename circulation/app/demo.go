package app

import (
	"context"
	"fmt"
	"io"

	"github.com/Astemirdum/library-circulation/circulation/internal/errs"
	"github.com/Astemirdum/library-circulation/circulation/internal/model"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Demo walks one title through checkout, a refused checkout, a reservation and a
// return that hands the copy to the waiting patron. Progress is written to w.
func (a *App) Demo(ctx context.Context, w io.Writer) error {
	svc := a.svc
	step := func(format string, args ...any) {
		fmt.Fprintf(w, format+"\n", args...)
	}

	title, err := svc.AddTitle(ctx, model.AddTitleRequest{
		ISBN: "978-0-13-468599-1", Name: "The Go Programming Language", Author: "Alan Donovan", PublicationYear: 2015,
	})
	if err != nil {
		return err
	}
	c1, err := svc.AddCopy(ctx, title.ISBN, model.AddCopyRequest{Barcode: "C1", Location: "stack A"})
	if err != nil {
		return err
	}
	c2, err := svc.AddCopy(ctx, title.ISBN, model.AddCopyRequest{Barcode: "C2", Location: "stack A"})
	if err != nil {
		return err
	}
	alice, err := svc.AddPatron(ctx, model.AddPatronRequest{Name: "Alice", Email: "alice@example.com"})
	if err != nil {
		return err
	}
	bob, err := svc.AddPatron(ctx, model.AddPatronRequest{Name: "Bob", Email: "bob@example.com"})
	if err != nil {
		return err
	}
	step("catalog: %q with copies %s, %s", title.Name, c1.Barcode, c2.Barcode)

	for _, c := range []model.Copy{c1, c2} {
		loan, err := svc.Checkout(ctx, alice.ID, c.Barcode)
		if err != nil {
			return err
		}
		step("checkout: %s -> %s, due %s", c.Barcode, alice.Name, loan.DueAt.Format("2006-01-02"))
	}

	_, err = svc.Checkout(ctx, bob.ID, c1.Barcode)
	if !errors.Is(err, errs.ErrConflict) {
		return errors.Errorf("checkout of a borrowed copy: want conflict, got %v", err)
	}
	step("checkout: %s -> %s refused: %v", c1.Barcode, bob.Name, err)

	r, err := svc.Reserve(ctx, bob.ID, title.ISBN)
	if err != nil {
		return err
	}
	step("reserve: %s waits for %q (%s)", bob.Name, title.Name, r.ID)

	status, err := svc.ReturnCopy(ctx, c1.Barcode)
	if err != nil {
		return err
	}
	step("return: %s is now %s", c1.Barcode, status)

	p, err := svc.GetPatron(ctx, bob.ID)
	if err != nil {
		return err
	}
	for _, alert := range p.Alerts {
		step("alert for %s: %s", bob.Name, alert)
	}
	queue, err := svc.ReservationQueue(ctx, title.ISBN)
	if err != nil {
		return err
	}
	step("queue: %d waiting", len(queue))

	loan, err := svc.Checkout(ctx, bob.ID, c1.Barcode)
	if err != nil {
		return err
	}
	step("pickup: %s -> %s, due %s", c1.Barcode, bob.Name, loan.DueAt.Format("2006-01-02"))

	a.log.Info("demo finished", zap.Int("activeLoans", len(svc.ActiveLoans(ctx))))
	return nil
}
