package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/bookdesk/internal/client/api"
	"github.com/dmitrijs2005/bookdesk/internal/client/models"
	"github.com/dmitrijs2005/bookdesk/internal/client/notify"
	"github.com/dmitrijs2005/bookdesk/internal/logging"
)

// SessionWriter is the part of the session store the auth service mutates.
type SessionWriter interface {
	Set(ctx context.Context, credential string, profile *models.Profile) error
	Clear(ctx context.Context) error
	UpdateProfile(ctx context.Context, profile *models.Profile) error
}

// AuthService covers the signed-in user's own account.
//
// Contract:
//   - Login: authenticate and store the returned credential and profile.
//   - Register: create an account; the user logs in afterwards.
//   - Logout: tell the server, then drop the local session regardless.
//   - RefreshProfile: re-read the profile and persist it.
//   - UpdateProfile: save profile fields, then refresh.
//   - UpdatePassword: change the password, then log out.
type AuthService interface {
	Login(ctx context.Context, username, password string) (*models.Profile, error)
	Register(ctx context.Context, req models.RegisterRequest) error
	Logout(ctx context.Context) error
	RefreshProfile(ctx context.Context) (*models.Profile, error)
	UpdateProfile(ctx context.Context, upd models.ProfileUpdate) (*models.Profile, error)
	UpdatePassword(ctx context.Context, change models.PasswordChange) error
}

// authService implements AuthService over an api.Doer and the session store.
type authService struct {
	api      api.Doer
	session  SessionWriter
	notifier notify.Notifier
	log      logging.Logger
}

// NewAuthService returns an AuthService that records logins in session.
func NewAuthService(d api.Doer, session SessionWriter, notifier notify.Notifier, log logging.Logger) AuthService {
	return &authService{api: d, session: session, notifier: notifier, log: log}
}

func (a *authService) Login(ctx context.Context, username, password string) (*models.Profile, error) {
	res, err := fetch[models.LoginResult](ctx, a.api, a.log, "login", api.Request{
		Method: http.MethodPost,
		URL:    "/api/users/login",
		Data:   models.LoginRequest{Username: username, Password: password},
	})
	if err != nil {
		return nil, err
	}

	profile := res.Profile
	if err := a.session.Set(ctx, res.Token, &profile); err != nil {
		a.log.Error(ctx, "login failed", "err", err)
		return nil, fmt.Errorf("save session: %w", err)
	}

	a.notifier.Notify(notify.Success, "Logged in")
	return &profile, nil
}

func (a *authService) Register(ctx context.Context, req models.RegisterRequest) error {
	err := send(ctx, a.api, a.log, "register", api.Request{
		Method: http.MethodPost,
		URL:    "/api/users/register",
		Data:   req,
	})
	if err != nil {
		return err
	}
	a.notifier.Notify(notify.Success, "Registration successful, please log in")
	return nil
}

// Logout never leaves a local session behind, even when the server call
// fails.
func (a *authService) Logout(ctx context.Context) error {
	if err := send(ctx, a.api, a.log, "logout", api.Request{Method: http.MethodPost, URL: "/api/users/logout"}); err != nil {
		a.log.Debug(ctx, "server logout failed, clearing local session anyway", "err", err)
	}

	if err := a.session.Clear(ctx); err != nil {
		a.log.Error(ctx, "clear session failed", "err", err)
		return err
	}
	a.notifier.Notify(notify.Success, "Logged out")
	return nil
}

func (a *authService) RefreshProfile(ctx context.Context) (*models.Profile, error) {
	p, err := fetch[*models.Profile](ctx, a.api, a.log, "fetch profile", api.Request{URL: "/api/users/profile"})
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, errors.New("fetch profile: empty response")
	}
	if err := a.session.UpdateProfile(ctx, p); err != nil {
		a.log.Error(ctx, "persist profile failed", "err", err)
		return nil, err
	}
	return p, nil
}

func (a *authService) UpdateProfile(ctx context.Context, upd models.ProfileUpdate) (*models.Profile, error) {
	err := send(ctx, a.api, a.log, "update profile", api.Request{
		Method: http.MethodPut,
		URL:    "/api/users/profile",
		Data:   upd,
	})
	if err != nil {
		return nil, err
	}

	p, err := a.RefreshProfile(ctx)
	if err != nil {
		return nil, err
	}
	a.notifier.Notify(notify.Success, "Profile updated")
	return p, nil
}

func (a *authService) UpdatePassword(ctx context.Context, change models.PasswordChange) error {
	err := send(ctx, a.api, a.log, "update password", api.Request{
		Method: http.MethodPut,
		URL:    "/api/users/password",
		Data:   change,
	})
	if err != nil {
		return err
	}
	a.notifier.Notify(notify.Success, "Password changed, please log in again")
	return a.Logout(ctx)
}
