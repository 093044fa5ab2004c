package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/dmitrijs2005/bookdesk/internal/client/models"
	"github.com/dmitrijs2005/bookdesk/internal/client/notify"
)

const pageSize = 10

func (a *App) ListBooks(ctx context.Context, args []string) error {
	page, err := argInt(args, 0, 1)
	if err != nil {
		return err
	}
	q := models.BookQuery{PageNum: page, PageSize: pageSize, BookName: argRest(args, 1)}

	res, err := a.books.List(ctx, q)
	if err != nil {
		return err
	}
	renderBooks(a.out, res.Records)
	renderPageFooter(a.out, res.Current, res.Pages, res.Total)
	return nil
}

func (a *App) ShowBook(ctx context.Context, args []string) error {
	id, err := argID(args, 0)
	if err != nil {
		return err
	}
	b, err := a.books.Get(ctx, id)
	if err != nil {
		return err
	}
	renderBook(a.out, b)
	return nil
}

func (a *App) BorrowBook(ctx context.Context, args []string) error {
	id, err := argID(args, 0)
	if err != nil {
		return err
	}
	if err := a.borrows.Borrow(ctx, id); err != nil {
		return err
	}
	a.notifier.Notify(notify.Success, "Book borrowed")
	return nil
}

func (a *App) ReserveBook(ctx context.Context, args []string) error {
	id, err := argID(args, 0)
	if err != nil {
		return err
	}
	if err := a.reservations.Reserve(ctx, models.ReservationRequest{BookID: id, Remark: argRest(args, 1)}); err != nil {
		return err
	}
	a.notifier.Notify(notify.Success, "Reservation submitted")
	return nil
}

// bookForm prompts for every BookInput field. Defaults come from current,
// which may be nil for a new book.
func (a *App) bookForm(ctx context.Context, current *models.Book) (models.BookInput, error) {
	var in models.BookInput
	if current != nil {
		in = models.BookInput{
			BookName:       current.BookName,
			Author:         current.Author,
			Publisher:      current.Publisher,
			ISBN:           current.ISBN,
			CategoryID:     current.CategoryID,
			TotalCount:     current.TotalCount,
			AvailableCount: current.AvailableCount,
			Price:          current.Price,
			PublishDate:    current.PublishDate,
			CoverImage:     current.CoverImage,
			Description:    current.Description,
		}
	}

	if cats, err := a.categories.All(ctx); err == nil && len(cats) > 0 {
		renderCategories(a.out, cats)
	}

	v, err := a.prompts(
		fmt.Sprintf("Title [%s]", in.BookName),
		fmt.Sprintf("Author [%s]", in.Author),
		fmt.Sprintf("Publisher [%s]", in.Publisher),
		fmt.Sprintf("ISBN [%s]", in.ISBN),
		fmt.Sprintf("Category id [%d]", in.CategoryID),
		fmt.Sprintf("Total copies [%d]", in.TotalCount),
		fmt.Sprintf("Available copies [%d]", in.AvailableCount),
		fmt.Sprintf("Price [%.2f]", in.Price),
		fmt.Sprintf("Publish date yyyy-MM-dd [%s]", in.PublishDate),
		fmt.Sprintf("Cover image URL [%s]", in.CoverImage),
	)
	if err != nil {
		return in, err
	}

	in.BookName = orDefault(v[0], in.BookName)
	in.Author = orDefault(v[1], in.Author)
	in.Publisher = orDefault(v[2], in.Publisher)
	in.ISBN = orDefault(v[3], in.ISBN)
	if in.CategoryID, err = parseOr(v[4], in.CategoryID); err != nil {
		return in, err
	}
	if in.TotalCount, err = parseOr(v[5], in.TotalCount); err != nil {
		return in, err
	}
	if in.AvailableCount, err = parseOr(v[6], in.AvailableCount); err != nil {
		return in, err
	}
	if v[7] != "" {
		if in.Price, err = strconv.ParseFloat(v[7], 64); err != nil {
			return in, fmt.Errorf("invalid price %q", v[7])
		}
	}
	in.PublishDate = orDefault(v[8], in.PublishDate)
	in.CoverImage = orDefault(v[9], in.CoverImage)

	desc, err := getMultiline(a.reader, "Description (empty keeps the current one)", a.out)
	if err != nil {
		return in, err
	}
	in.Description = orDefault(desc, in.Description)

	if in.BookName == "" || in.Author == "" {
		return in, errors.New("title and author are required")
	}
	return in, nil
}

func (a *App) AddBook(ctx context.Context, _ []string) error {
	in, err := a.bookForm(ctx, nil)
	if err != nil {
		return err
	}
	if err := a.books.Create(ctx, in); err != nil {
		return err
	}
	a.notifier.Notify(notify.Success, "Book added")
	return nil
}

func (a *App) EditBook(ctx context.Context, args []string) error {
	id, err := argID(args, 0)
	if err != nil {
		return err
	}
	current, err := a.books.Get(ctx, id)
	if err != nil {
		return err
	}
	in, err := a.bookForm(ctx, current)
	if err != nil {
		return err
	}
	if err := a.books.Update(ctx, id, in); err != nil {
		return err
	}
	a.notifier.Notify(notify.Success, "Book updated")
	return nil
}

// DeleteBooks uses the batch endpoint when more than one id is given.
func (a *App) DeleteBooks(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errUsage
	}
	ids := make([]int64, 0, len(args))
	for i := range args {
		id, err := argID(args, i)
		if err != nil {
			return err
		}
		ids = append(ids, id)
	}

	var err error
	if len(ids) == 1 {
		err = a.books.Delete(ctx, ids[0])
	} else {
		err = a.books.DeleteBatch(ctx, ids)
	}
	if err != nil {
		return err
	}
	a.notifier.Notify(notify.Success, fmt.Sprintf("%d book(s) deleted", len(ids)))
	return nil
}

func (a *App) SetBookStatus(ctx context.Context, args []string) error {
	id, err := argID(args, 0)
	if err != nil {
		return err
	}
	if len(args) != 2 || (args[1] != "0" && args[1] != "1") {
		return errUsage
	}
	status, _ := strconv.Atoi(args[1])
	if err := a.books.SetStatus(ctx, id, status); err != nil {
		return err
	}
	a.notifier.Notify(notify.Success, "Book status updated")
	return nil
}

func (a *App) UploadCover(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errUsage
	}
	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("open cover: %w", err)
	}
	defer f.Close()

	url, err := a.books.UploadCover(ctx, filepath.Base(args[0]), f)
	if err != nil {
		return err
	}
	printlnFn(a.out, "Cover uploaded:", url)
	return nil
}

func parseOr[T int | int64](s string, def T) (T, error) {
	if s == "" {
		return def, nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return def, fmt.Errorf("invalid number %q", s)
	}
	return T(n), nil
}
