package models

import "net/url"

// Borrow record status values.
const (
	BorrowBorrowing = "borrowing"
	BorrowReturned  = "returned"
	BorrowOverdue   = "overdue"
)

type BorrowRecord struct {
	ID           int64  `json:"id"`
	UserID       int64  `json:"userId"`
	Username     string `json:"username,omitempty"`
	RealName     string `json:"realName,omitempty"`
	BookID       int64  `json:"bookId"`
	BookName     string `json:"bookName,omitempty"`
	Author       string `json:"author,omitempty"`
	CategoryName string `json:"categoryName,omitempty"`
	BorrowDate   string `json:"borrowDate,omitempty"`
	DueDate      string `json:"dueDate,omitempty"`
	ReturnDate   string `json:"returnDate,omitempty"`
	RenewCount   int    `json:"renewCount"`
	OverdueDays  int    `json:"overdueDays"`
	Status       string `json:"status"`
	CreateTime   string `json:"createTime,omitempty"`
	UpdateTime   string `json:"updateTime,omitempty"`
}

type BorrowRequest struct {
	BookID int64 `json:"bookId"`
}

type BorrowStatistics struct {
	TotalBorrows     int64 `json:"totalBorrows"`
	CurrentBorrowing int64 `json:"currentBorrowing"`
	OverdueCount     int64 `json:"overdueCount"`
	ReturnedCount    int64 `json:"returnedCount"`
	TotalUsers       int64 `json:"totalUsers"`
	ActiveUsers      int64 `json:"activeUsers"`
}

// RecordQuery filters borrow and reservation listings. UserID and BookID
// are honoured only by the administrative endpoints.
type RecordQuery struct {
	PageNum  int
	PageSize int
	UserID   int64
	BookID   int64
	Status   string
}

func (q RecordQuery) Values() url.Values {
	v := url.Values{}
	setInt(v, "pageNum", q.PageNum)
	setInt(v, "pageSize", q.PageSize)
	setInt64(v, "userId", q.UserID)
	setInt64(v, "bookId", q.BookID)
	setString(v, "status", q.Status)
	return v
}
