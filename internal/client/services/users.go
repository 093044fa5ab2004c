package services

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/dmitrijs2005/bookdesk/internal/client/api"
	"github.com/dmitrijs2005/bookdesk/internal/client/models"
	"github.com/dmitrijs2005/bookdesk/internal/logging"
)

// UserService is the administrative view of accounts.
type UserService interface {
	List(ctx context.Context, q models.UserQuery) (*models.Page[models.Profile], error)
	Get(ctx context.Context, id int64) (*models.Profile, error)
	Update(ctx context.Context, id int64, upd models.UserUpdate) error
	SetStatus(ctx context.Context, id int64, status int) error

	Users() []models.Profile
}

type userService struct {
	api api.Doer
	log logging.Logger

	users container[[]models.Profile]
}

// NewUserService returns a UserService backed by d.
func NewUserService(d api.Doer, log logging.Logger) UserService {
	return &userService{api: d, log: log}
}

func (s *userService) List(ctx context.Context, q models.UserQuery) (*models.Page[models.Profile], error) {
	page, err := fetch[models.Page[models.Profile]](ctx, s.api, s.log, "fetch user list", api.Request{
		URL:    "/api/users/list",
		Params: q.Values(),
	})
	if err != nil {
		return nil, err
	}
	s.users.set(page.Records)
	return &page, nil
}

func (s *userService) Get(ctx context.Context, id int64) (*models.Profile, error) {
	return fetch[*models.Profile](ctx, s.api, s.log, "fetch user", api.Request{URL: idPath("/api/users/%d", id)})
}

// Update sends the role as a query parameter, which is where the server
// reads it from.
func (s *userService) Update(ctx context.Context, id int64, upd models.UserUpdate) error {
	var params url.Values
	if upd.Role != "" {
		params = url.Values{"role": {upd.Role}}
	}
	return send(ctx, s.api, s.log, "update user", api.Request{
		Method: http.MethodPut,
		URL:    idPath("/api/users/%d", id),
		Params: params,
		Data:   upd,
	})
}

func (s *userService) SetStatus(ctx context.Context, id int64, status int) error {
	return send(ctx, s.api, s.log, "update user status", api.Request{
		Method: http.MethodPut,
		URL:    idPath("/api/users/%d/status", id),
		Params: url.Values{"status": {strconv.Itoa(status)}},
	})
}

func (s *userService) Users() []models.Profile { return s.users.get() }
