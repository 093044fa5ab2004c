package services

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/dmitrijs2005/bookdesk/internal/client/api"
	"github.com/dmitrijs2005/bookdesk/internal/client/models"
	"github.com/dmitrijs2005/bookdesk/internal/logging"
)

// BookService covers the catalogue: browsing for everyone, editing for
// administrators.
type BookService interface {
	List(ctx context.Context, q models.BookQuery) (*models.Page[models.Book], error)
	Get(ctx context.Context, id int64) (*models.Book, error)
	Create(ctx context.Context, in models.BookInput) error
	Update(ctx context.Context, id int64, in models.BookInput) error
	Delete(ctx context.Context, id int64) error
	DeleteBatch(ctx context.Context, ids []int64) error
	SetStatus(ctx context.Context, id int64, status int) error
	UploadCover(ctx context.Context, filename string, content io.Reader) (string, error)

	Books() []models.Book
	Current() *models.Book
}

type bookService struct {
	api api.Doer
	log logging.Logger

	books   container[[]models.Book]
	current container[*models.Book]
}

// NewBookService returns a BookService backed by d.
func NewBookService(d api.Doer, log logging.Logger) BookService {
	return &bookService{api: d, log: log}
}

func (s *bookService) List(ctx context.Context, q models.BookQuery) (*models.Page[models.Book], error) {
	page, err := fetch[models.Page[models.Book]](ctx, s.api, s.log, "fetch book list", api.Request{
		URL:    "/api/books",
		Params: q.Values(),
	})
	if err != nil {
		return nil, err
	}
	s.books.set(page.Records)
	return &page, nil
}

func (s *bookService) Get(ctx context.Context, id int64) (*models.Book, error) {
	b, err := fetch[*models.Book](ctx, s.api, s.log, "fetch book detail", api.Request{URL: idPath("/api/books/%d", id)})
	if err != nil {
		return nil, err
	}
	s.current.set(b)
	return b, nil
}

func (s *bookService) Create(ctx context.Context, in models.BookInput) error {
	return send(ctx, s.api, s.log, "add book", api.Request{Method: http.MethodPost, URL: "/api/books", Data: in})
}

func (s *bookService) Update(ctx context.Context, id int64, in models.BookInput) error {
	return send(ctx, s.api, s.log, "update book", api.Request{Method: http.MethodPut, URL: idPath("/api/books/%d", id), Data: in})
}

func (s *bookService) Delete(ctx context.Context, id int64) error {
	return send(ctx, s.api, s.log, "delete book", api.Request{Method: http.MethodDelete, URL: idPath("/api/books/%d", id)})
}

func (s *bookService) DeleteBatch(ctx context.Context, ids []int64) error {
	return send(ctx, s.api, s.log, "batch delete books", api.Request{Method: http.MethodDelete, URL: "/api/books/batch", Data: ids})
}

func (s *bookService) SetStatus(ctx context.Context, id int64, status int) error {
	return send(ctx, s.api, s.log, "update book status", api.Request{
		Method: http.MethodPatch,
		URL:    idPath("/api/books/%d/status", id),
		Params: url.Values{"status": {strconv.Itoa(status)}},
	})
}

// UploadCover sends an image and returns the URL the server stored it under.
func (s *bookService) UploadCover(ctx context.Context, filename string, content io.Reader) (string, error) {
	return fetch[string](ctx, s.api, s.log, "upload book cover", api.Request{
		Method: http.MethodPost,
		URL:    "/api/books/upload-cover",
		File:   &api.FilePart{Field: "file", Filename: filename, Content: content},
	})
}

func (s *bookService) Books() []models.Book  { return s.books.get() }
func (s *bookService) Current() *models.Book { return s.current.get() }
