package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/bookdesk/internal/client/models"
	"github.com/dmitrijs2005/bookdesk/internal/client/router"
)

// Login prompts for credentials. On success the user lands on the home
// screen.
func (a *App) Login(ctx context.Context, _ []string) error {
	username, err := getSimpleText(a.reader, "Username", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, a.in, "Password", a.out)
	if err != nil {
		return err
	}
	if username == "" || password == "" {
		return errors.New("username and password are required")
	}

	if _, err := a.auth.Login(ctx, username, password); err != nil {
		return err
	}
	a.open(ctx, "/")
	return nil
}

// Register prompts for the account fields and returns to the login screen.
func (a *App) Register(ctx context.Context, _ []string) error {
	username, err := getSimpleText(a.reader, "Username", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, a.in, "Password", a.out)
	if err != nil {
		return err
	}
	confirm, err := getPassword(a.reader, a.in, "Repeat password", a.out)
	if err != nil {
		return err
	}
	if password != confirm {
		return errors.New("passwords do not match")
	}
	rest, err := a.prompts("Real name", "Phone (optional)", "Email (optional)")
	if err != nil {
		return err
	}

	req := models.RegisterRequest{
		Username: username,
		Password: password,
		RealName: rest[0],
		Phone:    rest[1],
		Email:    rest[2],
	}
	if err := a.auth.Register(ctx, req); err != nil {
		return err
	}
	a.open(ctx, router.LoginPath)
	return nil
}

func (a *App) Logout(ctx context.Context, _ []string) error {
	if !a.isLoggedIn() {
		printlnFn(a.out, "Not logged in")
		return nil
	}
	if err := a.auth.Logout(ctx); err != nil {
		return err
	}
	a.open(ctx, router.LoginPath)
	return nil
}

func (a *App) Home(ctx context.Context, _ []string) error {
	snap := a.session.Snapshot()
	if snap.Profile == nil {
		return nil
	}
	name := snap.Profile.RealName
	if name == "" {
		name = snap.Profile.Username
	}
	printlnFn(a.out, fmt.Sprintf("Welcome, %s (%s)", name, snap.Profile.Role))
	if exp, ok := a.session.CredentialExpiry(); ok {
		printlnFn(a.out, "Session valid until", exp.Local().Format(time.DateTime))
	}
	return nil
}

func (a *App) Profile(ctx context.Context, _ []string) error {
	p, err := a.auth.RefreshProfile(ctx)
	if err != nil {
		return err
	}
	renderProfile(a.out, p)
	return nil
}

// EditProfile prompts for each editable field; an empty answer keeps the
// current value.
func (a *App) EditProfile(ctx context.Context, _ []string) error {
	current := a.session.Snapshot().Profile
	if current == nil {
		return nil
	}
	v, err := a.prompts(
		fmt.Sprintf("Real name [%s]", current.RealName),
		fmt.Sprintf("Phone [%s]", current.Phone),
		fmt.Sprintf("Email [%s]", current.Email),
	)
	if err != nil {
		return err
	}

	upd := models.ProfileUpdate{
		RealName: orDefault(v[0], current.RealName),
		Phone:    orDefault(v[1], current.Phone),
		Email:    orDefault(v[2], current.Email),
	}
	p, err := a.auth.UpdateProfile(ctx, upd)
	if err != nil {
		return err
	}
	renderProfile(a.out, p)
	return nil
}

// ChangePassword ends the session on success; the user logs in again.
func (a *App) ChangePassword(ctx context.Context, _ []string) error {
	oldPw, err := getPassword(a.reader, a.in, "Current password", a.out)
	if err != nil {
		return err
	}
	newPw, err := getPassword(a.reader, a.in, "New password", a.out)
	if err != nil {
		return err
	}
	confirm, err := getPassword(a.reader, a.in, "Repeat new password", a.out)
	if err != nil {
		return err
	}
	if newPw != confirm {
		return errors.New("passwords do not match")
	}

	if err := a.auth.UpdatePassword(ctx, models.PasswordChange{OldPassword: oldPw, NewPassword: newPw}); err != nil {
		return err
	}
	a.open(ctx, router.LoginPath)
	return nil
}

func (a *App) Where(_ context.Context, _ []string) error {
	loc := a.nav.Current()
	printlnFn(a.out, fmt.Sprintf("%s (%s)", a.nav.Title(), loc.Path))
	return nil
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
