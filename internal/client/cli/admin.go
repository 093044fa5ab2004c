package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/bookdesk/internal/client/models"
	"github.com/dmitrijs2005/bookdesk/internal/client/notify"
)

func (a *App) ListUsers(ctx context.Context, args []string) error {
	page, err := argInt(args, 0, 1)
	if err != nil {
		return err
	}
	res, err := a.users.List(ctx, models.UserQuery{Page: page, Size: pageSize, Username: argRest(args, 1)})
	if err != nil {
		return err
	}
	renderUsers(a.out, res.Records)
	renderPageFooter(a.out, res.Current, res.Pages, res.Total)
	return nil
}

func (a *App) SetUserStatus(ctx context.Context, args []string) error {
	id, err := argID(args, 0)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return errUsage
	}
	var status int
	switch args[1] {
	case "0":
		status = models.UserDisabled
	case "1":
		status = models.UserEnabled
	default:
		return errUsage
	}
	if err := a.users.SetStatus(ctx, id, status); err != nil {
		return err
	}
	a.notifier.Notify(notify.Success, "User status updated")
	return nil
}

func (a *App) SetUserRole(ctx context.Context, args []string) error {
	id, err := argID(args, 0)
	if err != nil {
		return err
	}
	if len(args) != 2 || (args[1] != models.RoleAdmin && args[1] != models.RoleUser) {
		return errUsage
	}
	if err := a.users.Update(ctx, id, models.UserUpdate{Role: args[1]}); err != nil {
		return err
	}
	a.notifier.Notify(notify.Success, "User role updated")
	return nil
}

func (a *App) ListCategories(ctx context.Context, args []string) error {
	page, err := argInt(args, 0, 1)
	if err != nil {
		return err
	}
	res, err := a.categories.List(ctx, models.CategoryQuery{PageNum: page, PageSize: pageSize})
	if err != nil {
		return err
	}
	renderCategories(a.out, res.Records)
	renderPageFooter(a.out, res.Current, res.Pages, res.Total)
	return nil
}

func (a *App) categoryForm(current *models.Category) (models.CategoryInput, error) {
	var in models.CategoryInput
	if current != nil {
		in = models.CategoryInput{CategoryName: current.CategoryName, Description: current.Description, SortOrder: current.SortOrder}
	}
	v, err := a.prompts(
		fmt.Sprintf("Name [%s]", in.CategoryName),
		fmt.Sprintf("Description [%s]", in.Description),
		fmt.Sprintf("Sort order [%d]", in.SortOrder),
	)
	if err != nil {
		return in, err
	}
	in.CategoryName = orDefault(v[0], in.CategoryName)
	in.Description = orDefault(v[1], in.Description)
	if v[2] != "" {
		n, err := strconv.Atoi(v[2])
		if err != nil {
			return in, fmt.Errorf("invalid sort order %q", v[2])
		}
		in.SortOrder = n
	}
	if in.CategoryName == "" {
		return in, errors.New("category name is required")
	}
	return in, nil
}

func (a *App) AddCategory(ctx context.Context, _ []string) error {
	in, err := a.categoryForm(nil)
	if err != nil {
		return err
	}
	if err := a.categories.Create(ctx, in); err != nil {
		return err
	}
	a.notifier.Notify(notify.Success, "Category added")
	return nil
}

func (a *App) EditCategory(ctx context.Context, args []string) error {
	id, err := argID(args, 0)
	if err != nil {
		return err
	}
	current, err := a.categories.Get(ctx, id)
	if err != nil {
		return err
	}
	in, err := a.categoryForm(current)
	if err != nil {
		return err
	}
	if err := a.categories.Update(ctx, id, in); err != nil {
		return err
	}
	a.notifier.Notify(notify.Success, "Category updated")
	return nil
}

func (a *App) DeleteCategory(ctx context.Context, args []string) error {
	id, err := argID(args, 0)
	if err != nil {
		return err
	}
	if err := a.categories.Delete(ctx, id); err != nil {
		return err
	}
	a.notifier.Notify(notify.Success, "Category deleted")
	return nil
}
