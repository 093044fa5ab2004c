package services

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/bookdesk/internal/client/api"
	"github.com/dmitrijs2005/bookdesk/internal/client/models"
	"github.com/dmitrijs2005/bookdesk/internal/logging"
)

// CategoryService manages book categories.
type CategoryService interface {
	All(ctx context.Context) ([]models.Category, error)
	List(ctx context.Context, q models.CategoryQuery) (*models.Page[models.Category], error)
	Get(ctx context.Context, id int64) (*models.Category, error)
	Create(ctx context.Context, in models.CategoryInput) error
	Update(ctx context.Context, id int64, in models.CategoryInput) error
	Delete(ctx context.Context, id int64) error

	Categories() []models.Category
	AllCategories() []models.Category
}

type categoryService struct {
	api api.Doer
	log logging.Logger

	categories container[[]models.Category]
	all        container[[]models.Category]
}

// NewCategoryService returns a CategoryService backed by d.
func NewCategoryService(d api.Doer, log logging.Logger) CategoryService {
	return &categoryService{api: d, log: log}
}

func (s *categoryService) All(ctx context.Context) ([]models.Category, error) {
	list, err := fetch[[]models.Category](ctx, s.api, s.log, "fetch all categories", api.Request{URL: "/api/categories/all"})
	if err != nil {
		return nil, err
	}
	s.all.set(list)
	return list, nil
}

func (s *categoryService) List(ctx context.Context, q models.CategoryQuery) (*models.Page[models.Category], error) {
	page, err := fetch[models.Page[models.Category]](ctx, s.api, s.log, "fetch category list", api.Request{
		URL:    "/api/categories",
		Params: q.Values(),
	})
	if err != nil {
		return nil, err
	}
	s.categories.set(page.Records)
	return &page, nil
}

func (s *categoryService) Get(ctx context.Context, id int64) (*models.Category, error) {
	return fetch[*models.Category](ctx, s.api, s.log, "fetch category", api.Request{URL: idPath("/api/categories/%d", id)})
}

func (s *categoryService) Create(ctx context.Context, in models.CategoryInput) error {
	return send(ctx, s.api, s.log, "add category", api.Request{Method: http.MethodPost, URL: "/api/categories", Data: in})
}

func (s *categoryService) Update(ctx context.Context, id int64, in models.CategoryInput) error {
	return send(ctx, s.api, s.log, "update category", api.Request{Method: http.MethodPut, URL: idPath("/api/categories/%d", id), Data: in})
}

func (s *categoryService) Delete(ctx context.Context, id int64) error {
	return send(ctx, s.api, s.log, "delete category", api.Request{Method: http.MethodDelete, URL: idPath("/api/categories/%d", id)})
}

func (s *categoryService) Categories() []models.Category    { return s.categories.get() }
func (s *categoryService) AllCategories() []models.Category { return s.all.get() }
