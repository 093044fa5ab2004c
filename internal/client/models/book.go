package models

import (
	"net/url"
	"strconv"
)

// Book status values.
const (
	BookOffShelf = 0
	BookOnShelf  = 1
)

type Book struct {
	ID             int64   `json:"id"`
	BookName       string  `json:"bookName"`
	Author         string  `json:"author"`
	Publisher      string  `json:"publisher,omitempty"`
	ISBN           string  `json:"isbn,omitempty"`
	CategoryID     int64   `json:"categoryId"`
	CategoryName   string  `json:"categoryName,omitempty"`
	TotalCount     int     `json:"totalCount"`
	AvailableCount int     `json:"availableCount"`
	Price          float64 `json:"price,omitempty"`
	PublishDate    string  `json:"publishDate,omitempty"`
	CoverImage     string  `json:"coverImage,omitempty"`
	Description    string  `json:"description,omitempty"`
	Status         int     `json:"status"`
	CreateTime     string  `json:"createTime,omitempty"`
	UpdateTime     string  `json:"updateTime,omitempty"`
}

// BookInput is the create/update body.
type BookInput struct {
	BookName       string  `json:"bookName"`
	Author         string  `json:"author"`
	Publisher      string  `json:"publisher,omitempty"`
	ISBN           string  `json:"isbn,omitempty"`
	CategoryID     int64   `json:"categoryId"`
	TotalCount     int     `json:"totalCount"`
	AvailableCount int     `json:"availableCount"`
	Price          float64 `json:"price,omitempty"`
	PublishDate    string  `json:"publishDate,omitempty"`
	CoverImage     string  `json:"coverImage,omitempty"`
	Description    string  `json:"description,omitempty"`
	Status         *int    `json:"status,omitempty"`
}

type BookQuery struct {
	PageNum    int
	PageSize   int
	BookName   string
	Author     string
	Publisher  string
	CategoryID int64
	Status     *int
}

func (q BookQuery) Values() url.Values {
	v := url.Values{}
	setInt(v, "pageNum", q.PageNum)
	setInt(v, "pageSize", q.PageSize)
	setString(v, "bookName", q.BookName)
	setString(v, "author", q.Author)
	setString(v, "publisher", q.Publisher)
	setInt64(v, "categoryId", q.CategoryID)
	if q.Status != nil {
		v.Set("status", strconv.Itoa(*q.Status))
	}
	return v
}
