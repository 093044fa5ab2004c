package services

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/bookdesk/internal/client/api"
	"github.com/dmitrijs2005/bookdesk/internal/client/models"
	"github.com/dmitrijs2005/bookdesk/internal/logging"
)

// BorrowService manages loans and their statistics.
type BorrowService interface {
	Borrow(ctx context.Context, bookID int64) error
	Return(ctx context.Context, id int64) error
	Renew(ctx context.Context, id int64) error
	ListMine(ctx context.Context, q models.RecordQuery) (*models.Page[models.BorrowRecord], error)
	ListAll(ctx context.Context, q models.RecordQuery) (*models.Page[models.BorrowRecord], error)
	Get(ctx context.Context, id int64) (*models.BorrowRecord, error)
	Overdue(ctx context.Context, q models.RecordQuery) (*models.Page[models.BorrowRecord], error)
	Statistics(ctx context.Context) (*models.BorrowStatistics, error)

	Records() []models.BorrowRecord
	Current() *models.BorrowRecord
	LastStatistics() *models.BorrowStatistics
}

type borrowService struct {
	api api.Doer
	log logging.Logger

	records    container[[]models.BorrowRecord]
	current    container[*models.BorrowRecord]
	statistics container[*models.BorrowStatistics]
}

// NewBorrowService returns a BorrowService backed by d.
func NewBorrowService(d api.Doer, log logging.Logger) BorrowService {
	return &borrowService{api: d, log: log}
}

func (s *borrowService) Borrow(ctx context.Context, bookID int64) error {
	return send(ctx, s.api, s.log, "borrow book", api.Request{
		Method: http.MethodPost,
		URL:    "/api/borrows",
		Data:   models.BorrowRequest{BookID: bookID},
	})
}

func (s *borrowService) Return(ctx context.Context, id int64) error {
	return send(ctx, s.api, s.log, "return book", api.Request{Method: http.MethodPut, URL: idPath("/api/borrows/%d/return", id)})
}

func (s *borrowService) Renew(ctx context.Context, id int64) error {
	return send(ctx, s.api, s.log, "renew book", api.Request{Method: http.MethodPut, URL: idPath("/api/borrows/%d/renew", id)})
}

func (s *borrowService) ListMine(ctx context.Context, q models.RecordQuery) (*models.Page[models.BorrowRecord], error) {
	return s.list(ctx, "fetch my borrow records", "/api/borrows/my", q)
}

func (s *borrowService) ListAll(ctx context.Context, q models.RecordQuery) (*models.Page[models.BorrowRecord], error) {
	return s.list(ctx, "fetch borrow records", "/api/borrows", q)
}

func (s *borrowService) list(ctx context.Context, op, path string, q models.RecordQuery) (*models.Page[models.BorrowRecord], error) {
	page, err := fetch[models.Page[models.BorrowRecord]](ctx, s.api, s.log, op, api.Request{URL: path, Params: q.Values()})
	if err != nil {
		return nil, err
	}
	s.records.set(page.Records)
	return &page, nil
}

func (s *borrowService) Get(ctx context.Context, id int64) (*models.BorrowRecord, error) {
	r, err := fetch[*models.BorrowRecord](ctx, s.api, s.log, "fetch borrow detail", api.Request{URL: idPath("/api/borrows/%d", id)})
	if err != nil {
		return nil, err
	}
	s.current.set(r)
	return r, nil
}

// Overdue does not touch the records container; the overdue screen keeps its
// own copy.
func (s *borrowService) Overdue(ctx context.Context, q models.RecordQuery) (*models.Page[models.BorrowRecord], error) {
	page, err := fetch[models.Page[models.BorrowRecord]](ctx, s.api, s.log, "fetch overdue records", api.Request{
		URL:    "/api/borrows/overdue",
		Params: q.Values(),
	})
	if err != nil {
		return nil, err
	}
	return &page, nil
}

func (s *borrowService) Statistics(ctx context.Context) (*models.BorrowStatistics, error) {
	st, err := fetch[*models.BorrowStatistics](ctx, s.api, s.log, "fetch borrow statistics", api.Request{URL: "/api/borrows/statistics"})
	if err != nil {
		return nil, err
	}
	s.statistics.set(st)
	return st, nil
}

func (s *borrowService) Records() []models.BorrowRecord           { return s.records.get() }
func (s *borrowService) Current() *models.BorrowRecord            { return s.current.get() }
func (s *borrowService) LastStatistics() *models.BorrowStatistics { return s.statistics.get() }
