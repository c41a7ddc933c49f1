// Package services contains application services for the pickup CLI.
// This file defines the authentication service: the one-time-code login
// flow and logout, orchestrating the gateway and the session store.
package services

import (
	"context"

	"github.com/wastewise/pickup/internal/client/api"
	"github.com/wastewise/pickup/internal/client/models"
	"github.com/wastewise/pickup/internal/client/session"
	"github.com/wastewise/pickup/internal/validation"
)

// AuthService drives the login lifecycle for the CLI.
//
// Contract:
//   - RequestCode: validate the email locally, then ask the server to
//     send a one-time code.
//   - VerifyAndLogin: exchange the code for a session and commit it to
//     the session store; the returned result's NewUser flag tells the
//     caller to route to first-time profile setup instead of the main
//     menu.
//   - Logout: end the session, locally always, remotely best-effort.
//
// All methods honor context cancellation.
type AuthService interface {
	RequestCode(ctx context.Context, email string) (string, error)
	VerifyAndLogin(ctx context.Context, email, code string) (*models.VerifyResult, error)
	Logout(ctx context.Context) error
}

type authService struct {
	client  api.Client
	session *session.Session
}

// NewAuthService constructs an AuthService bound to the given API
// client and session store.
func NewAuthService(client api.Client, sess *session.Session) AuthService {
	return &authService{client: client, session: sess}
}

func (a *authService) RequestCode(ctx context.Context, email string) (string, error) {
	if err := validation.Email(email); err != nil {
		return "", err
	}
	return a.client.RequestCode(ctx, email)
}

func (a *authService) VerifyAndLogin(ctx context.Context, email, code string) (*models.VerifyResult, error) {
	if err := validation.Email(email); err != nil {
		return nil, err
	}
	if err := validation.Code(code); err != nil {
		return nil, err
	}

	res, err := a.client.VerifyCode(ctx, email, code)
	if err != nil {
		return nil, err
	}

	// commits optimistically and reconfirms server-side; a failed
	// confirmation rolls back and surfaces here
	if err := a.session.Login(ctx, *res); err != nil {
		return nil, err
	}
	return res, nil
}

func (a *authService) Logout(ctx context.Context) error {
	return a.session.Logout(ctx)
}
