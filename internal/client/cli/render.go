package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dmitrijs2005/bookdesk/internal/client/models"
)

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func shelfStatus(s int) string {
	if s == models.BookOnShelf {
		return "on shelf"
	}
	return "off shelf"
}

func userStatus(s int) string {
	if s == models.UserEnabled {
		return "enabled"
	}
	return "disabled"
}

func renderPageFooter(w io.Writer, current, pages, total int64) {
	printlnFn(w, fmt.Sprintf("Page %d of %d, %d total", current, pages, total))
}

func renderBooks(w io.Writer, books []models.Book) {
	if len(books) == 0 {
		printlnFn(w, "No books found")
		return
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tTITLE\tAUTHOR\tCATEGORY\tAVAILABLE\tSTATUS")
	for _, b := range books {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%d/%d\t%s\n",
			b.ID, b.BookName, b.Author, b.CategoryName, b.AvailableCount, b.TotalCount, shelfStatus(b.Status))
	}
	tw.Flush()
}

func renderBook(w io.Writer, b *models.Book) {
	tw := newTable(w)
	fmt.Fprintf(tw, "ID\t%d\n", b.ID)
	fmt.Fprintf(tw, "Title\t%s\n", b.BookName)
	fmt.Fprintf(tw, "Author\t%s\n", b.Author)
	fmt.Fprintf(tw, "Publisher\t%s\n", b.Publisher)
	fmt.Fprintf(tw, "ISBN\t%s\n", b.ISBN)
	fmt.Fprintf(tw, "Category\t%s\n", b.CategoryName)
	fmt.Fprintf(tw, "Available\t%d of %d\n", b.AvailableCount, b.TotalCount)
	fmt.Fprintf(tw, "Price\t%.2f\n", b.Price)
	fmt.Fprintf(tw, "Published\t%s\n", b.PublishDate)
	fmt.Fprintf(tw, "Status\t%s\n", shelfStatus(b.Status))
	tw.Flush()
	if b.Description != "" {
		printlnFn(w)
		printlnFn(w, b.Description)
	}
}

// renderBorrows shows the borrower column only in the administrative views.
func renderBorrows(w io.Writer, records []models.BorrowRecord, withUser bool) {
	if len(records) == 0 {
		printlnFn(w, "No records found")
		return
	}
	tw := newTable(w)
	if withUser {
		fmt.Fprint(tw, "ID\tUSER\t")
	} else {
		fmt.Fprint(tw, "ID\t")
	}
	fmt.Fprintln(tw, "BOOK\tBORROWED\tDUE\tRETURNED\tRENEWALS\tSTATUS")
	for _, r := range records {
		if withUser {
			fmt.Fprintf(tw, "%d\t%s\t", r.ID, r.Username)
		} else {
			fmt.Fprintf(tw, "%d\t", r.ID)
		}
		status := r.Status
		if r.OverdueDays > 0 {
			status = fmt.Sprintf("%s (%d days)", status, r.OverdueDays)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\t%s\n",
			r.BookName, r.BorrowDate, r.DueDate, r.ReturnDate, r.RenewCount, status)
	}
	tw.Flush()
}

func renderReservations(w io.Writer, records []models.Reservation, withUser bool) {
	if len(records) == 0 {
		printlnFn(w, "No reservations found")
		return
	}
	tw := newTable(w)
	if withUser {
		fmt.Fprint(tw, "ID\tUSER\t")
	} else {
		fmt.Fprint(tw, "ID\t")
	}
	fmt.Fprintln(tw, "BOOK\tDATE\tSTATUS\tREMARK")
	for _, r := range records {
		if withUser {
			fmt.Fprintf(tw, "%d\t%s\t", r.ID, r.Username)
		} else {
			fmt.Fprintf(tw, "%d\t", r.ID)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", r.BookName, r.ReservationDate, r.Status, r.Remark)
	}
	tw.Flush()
}

func renderUsers(w io.Writer, users []models.Profile) {
	if len(users) == 0 {
		printlnFn(w, "No users found")
		return
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tUSERNAME\tNAME\tROLE\tSTATUS\tEMAIL")
	for _, u := range users {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n", u.ID, u.Username, u.RealName, u.Role, userStatus(u.Status), u.Email)
	}
	tw.Flush()
}

func renderCategories(w io.Writer, cats []models.Category) {
	if len(cats) == 0 {
		printlnFn(w, "No categories found")
		return
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tNAME\tSORT\tDESCRIPTION")
	for _, c := range cats {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%s\n", c.ID, c.CategoryName, c.SortOrder, c.Description)
	}
	tw.Flush()
}

func renderProfile(w io.Writer, p *models.Profile) {
	tw := newTable(w)
	fmt.Fprintf(tw, "Username\t%s\n", p.Username)
	fmt.Fprintf(tw, "Name\t%s\n", p.RealName)
	fmt.Fprintf(tw, "Role\t%s\n", p.Role)
	fmt.Fprintf(tw, "Phone\t%s\n", p.Phone)
	fmt.Fprintf(tw, "Email\t%s\n", p.Email)
	tw.Flush()
}
