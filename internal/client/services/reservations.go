package services

import (
	"context"
	"net/http"
	"net/url"

	"github.com/dmitrijs2005/bookdesk/internal/client/api"
	"github.com/dmitrijs2005/bookdesk/internal/client/models"
	"github.com/dmitrijs2005/bookdesk/internal/logging"
)

// ReservationService manages reservations of books that are out.
type ReservationService interface {
	Reserve(ctx context.Context, req models.ReservationRequest) error
	Cancel(ctx context.Context, id int64) error
	ListMine(ctx context.Context, q models.RecordQuery) (*models.Page[models.Reservation], error)
	ListAll(ctx context.Context, q models.RecordQuery) (*models.Page[models.Reservation], error)
	Get(ctx context.Context, id int64) (*models.Reservation, error)
	Approve(ctx context.Context, id int64) error
	Reject(ctx context.Context, id int64, remark string) error

	Reservations() []models.Reservation
	Current() *models.Reservation
}

type reservationService struct {
	api api.Doer
	log logging.Logger

	reservations container[[]models.Reservation]
	current      container[*models.Reservation]
}

// NewReservationService returns a ReservationService backed by d.
func NewReservationService(d api.Doer, log logging.Logger) ReservationService {
	return &reservationService{api: d, log: log}
}

func (s *reservationService) Reserve(ctx context.Context, req models.ReservationRequest) error {
	return send(ctx, s.api, s.log, "reserve book", api.Request{Method: http.MethodPost, URL: "/api/reservations", Data: req})
}

func (s *reservationService) Cancel(ctx context.Context, id int64) error {
	return send(ctx, s.api, s.log, "cancel reservation", api.Request{Method: http.MethodPut, URL: idPath("/api/reservations/%d/cancel", id)})
}

func (s *reservationService) ListMine(ctx context.Context, q models.RecordQuery) (*models.Page[models.Reservation], error) {
	return s.list(ctx, "fetch my reservations", "/api/reservations/my", q)
}

func (s *reservationService) ListAll(ctx context.Context, q models.RecordQuery) (*models.Page[models.Reservation], error) {
	return s.list(ctx, "fetch reservations", "/api/reservations", q)
}

func (s *reservationService) list(ctx context.Context, op, path string, q models.RecordQuery) (*models.Page[models.Reservation], error) {
	page, err := fetch[models.Page[models.Reservation]](ctx, s.api, s.log, op, api.Request{URL: path, Params: q.Values()})
	if err != nil {
		return nil, err
	}
	s.reservations.set(page.Records)
	return &page, nil
}

func (s *reservationService) Get(ctx context.Context, id int64) (*models.Reservation, error) {
	r, err := fetch[*models.Reservation](ctx, s.api, s.log, "fetch reservation", api.Request{URL: idPath("/api/reservations/%d", id)})
	if err != nil {
		return nil, err
	}
	s.current.set(r)
	return r, nil
}

func (s *reservationService) Approve(ctx context.Context, id int64) error {
	return send(ctx, s.api, s.log, "approve reservation", api.Request{Method: http.MethodPut, URL: idPath("/api/reservations/%d/approve", id)})
}

func (s *reservationService) Reject(ctx context.Context, id int64, remark string) error {
	var params url.Values
	if remark != "" {
		params = url.Values{"remark": {remark}}
	}
	return send(ctx, s.api, s.log, "reject reservation", api.Request{
		Method: http.MethodPut,
		URL:    idPath("/api/reservations/%d/reject", id),
		Params: params,
	})
}

func (s *reservationService) Reservations() []models.Reservation { return s.reservations.get() }
func (s *reservationService) Current() *models.Reservation       { return s.current.get() }
