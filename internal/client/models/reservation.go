package models

// Reservation status values.
const (
	ReservationPending   = "pending"
	ReservationApproved  = "approved"
	ReservationCancelled = "cancelled"
	ReservationCompleted = "completed"
)

type Reservation struct {
	ID              int64  `json:"id"`
	UserID          int64  `json:"userId"`
	Username        string `json:"username,omitempty"`
	RealName        string `json:"realName,omitempty"`
	BookID          int64  `json:"bookId"`
	BookName        string `json:"bookName,omitempty"`
	Author          string `json:"author,omitempty"`
	CoverImage      string `json:"coverImage,omitempty"`
	ReservationDate string `json:"reservationDate,omitempty"`
	Status          string `json:"status"`
	Remark          string `json:"remark,omitempty"`
	CreateTime      string `json:"createTime,omitempty"`
	UpdateTime      string `json:"updateTime,omitempty"`
}

type ReservationRequest struct {
	BookID int64  `json:"bookId"`
	Remark string `json:"remark,omitempty"`
}
