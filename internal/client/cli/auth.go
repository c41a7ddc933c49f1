package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/wastewise/pickup/internal/client/api"
)

// getSimpleText and getCode are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getCode = GetCode

// Login runs the email one-time-code flow: it prompts for an email,
// asks the server to send a code, prompts for the code, and verifies it.
//
// On success the session store is committed and a greeting is printed.
// A brand-new account is routed straight into the mandatory profile
// setup. Verification failures are reported to the user with the
// server's own message; the unauthenticated state is left untouched.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	if _, err := a.authService.RequestCode(ctx, email); err != nil {
		if errors.Is(err, api.ErrUnavailable) {
			a.log.Error(ctx, "server unavailable", "error", err)
		} else {
			a.log.Warn(ctx, "could not send code", "error", err)
		}
		return err
	}
	fmt.Println("Code sent, check your inbox.")

	code, err := getCode(os.Stdout)
	if err != nil {
		return err
	}

	res, err := a.authService.VerifyAndLogin(ctx, email, code)
	if err != nil {
		a.log.Warn(ctx, "login unsuccessful", "error", err)
		return err
	}

	fmt.Printf("Welcome, %s!\n", res.Identity.Email)

	if res.NewUser {
		return a.CompleteSetup(ctx)
	}
	return nil
}

// Logout ends the session. The local state is always cleared even when
// the server cannot be told.
func (a *App) Logout(ctx context.Context) error {
	if err := a.authService.Logout(ctx); err != nil {
		return err
	}
	fmt.Println("Signed out.")
	return nil
}
