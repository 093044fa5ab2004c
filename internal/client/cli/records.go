package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/bookdesk/internal/client/models"
	"github.com/dmitrijs2005/bookdesk/internal/client/notify"
)

func recordQuery(args []string) (models.RecordQuery, error) {
	status, page, err := statusAndPage(args)
	if err != nil {
		return models.RecordQuery{}, err
	}
	return models.RecordQuery{PageNum: page, PageSize: pageSize, Status: status}, nil
}

func (a *App) MyBorrows(ctx context.Context, args []string) error {
	q, err := recordQuery(args)
	if err != nil {
		return err
	}
	res, err := a.borrows.ListMine(ctx, q)
	if err != nil {
		return err
	}
	renderBorrows(a.out, res.Records, false)
	renderPageFooter(a.out, res.Current, res.Pages, res.Total)
	return nil
}

func (a *App) ReturnBook(ctx context.Context, args []string) error {
	id, err := argID(args, 0)
	if err != nil {
		return err
	}
	if err := a.borrows.Return(ctx, id); err != nil {
		return err
	}
	a.notifier.Notify(notify.Success, "Book returned")
	return nil
}

func (a *App) RenewBook(ctx context.Context, args []string) error {
	id, err := argID(args, 0)
	if err != nil {
		return err
	}
	if err := a.borrows.Renew(ctx, id); err != nil {
		return err
	}
	a.notifier.Notify(notify.Success, "Loan renewed")
	return nil
}

func (a *App) MyReservations(ctx context.Context, args []string) error {
	q, err := recordQuery(args)
	if err != nil {
		return err
	}
	res, err := a.reservations.ListMine(ctx, q)
	if err != nil {
		return err
	}
	renderReservations(a.out, res.Records, false)
	renderPageFooter(a.out, res.Current, res.Pages, res.Total)
	return nil
}

func (a *App) CancelReservation(ctx context.Context, args []string) error {
	id, err := argID(args, 0)
	if err != nil {
		return err
	}
	if err := a.reservations.Cancel(ctx, id); err != nil {
		return err
	}
	a.notifier.Notify(notify.Success, "Reservation cancelled")
	return nil
}

func (a *App) AllBorrows(ctx context.Context, args []string) error {
	q, err := recordQuery(args)
	if err != nil {
		return err
	}
	res, err := a.borrows.ListAll(ctx, q)
	if err != nil {
		return err
	}
	renderBorrows(a.out, res.Records, true)
	renderPageFooter(a.out, res.Current, res.Pages, res.Total)
	return nil
}

func (a *App) AllReservations(ctx context.Context, args []string) error {
	q, err := recordQuery(args)
	if err != nil {
		return err
	}
	res, err := a.reservations.ListAll(ctx, q)
	if err != nil {
		return err
	}
	renderReservations(a.out, res.Records, true)
	renderPageFooter(a.out, res.Current, res.Pages, res.Total)
	return nil
}

func (a *App) ApproveReservation(ctx context.Context, args []string) error {
	id, err := argID(args, 0)
	if err != nil {
		return err
	}
	if err := a.reservations.Approve(ctx, id); err != nil {
		return err
	}
	a.notifier.Notify(notify.Success, "Reservation approved")
	return nil
}

func (a *App) RejectReservation(ctx context.Context, args []string) error {
	id, err := argID(args, 0)
	if err != nil {
		return err
	}
	if err := a.reservations.Reject(ctx, id, argRest(args, 1)); err != nil {
		return err
	}
	a.notifier.Notify(notify.Success, "Reservation rejected")
	return nil
}

func (a *App) Overdue(ctx context.Context, args []string) error {
	page, err := argInt(args, 0, 1)
	if err != nil {
		return err
	}
	res, err := a.borrows.Overdue(ctx, models.RecordQuery{PageNum: page, PageSize: pageSize})
	if err != nil {
		return err
	}
	renderBorrows(a.out, res.Records, true)
	renderPageFooter(a.out, res.Current, res.Pages, res.Total)
	return nil
}

func (a *App) Statistics(ctx context.Context, _ []string) error {
	s, err := a.borrows.Statistics(ctx)
	if err != nil {
		return err
	}
	tw := newTable(a.out)
	fmt.Fprintf(tw, "Total borrows\t%d\n", s.TotalBorrows)
	fmt.Fprintf(tw, "Currently borrowed\t%d\n", s.CurrentBorrowing)
	fmt.Fprintf(tw, "Overdue\t%d\n", s.OverdueCount)
	fmt.Fprintf(tw, "Returned\t%d\n", s.ReturnedCount)
	fmt.Fprintf(tw, "Users\t%d\n", s.TotalUsers)
	fmt.Fprintf(tw, "Active users\t%d\n", s.ActiveUsers)
	return tw.Flush()
}
