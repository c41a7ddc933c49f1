package cli

import (
	"bufio"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wastewise/pickup/internal/client/models"
	"github.com/wastewise/pickup/internal/client/services"
	"github.com/wastewise/pickup/internal/logging"
)

type nopLogger struct{}

func (nopLogger) Debug(context.Context, string, ...any) {}
func (nopLogger) Info(context.Context, string, ...any)  {}
func (nopLogger) Warn(context.Context, string, ...any)  {}
func (nopLogger) Error(context.Context, string, ...any) {}
func (l nopLogger) With(...any) logging.Logger          { return l }

// stubInputs replaces the interactive input seams with canned answers.
// getSimpleText pops from the queue in order; getCode returns code.
func stubInputs(t *testing.T, answers []string, code string) func() {
	t.Helper()
	origST, origGC := getSimpleText, getCode
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if len(answers) == 0 {
			return "", errors.New("no more stubbed input")
		}
		next := answers[0]
		answers = answers[1:]
		return next, nil
	}
	getCode = func(_ io.Writer) (string, error) { return code, nil }
	return func() {
		getSimpleText = origST
		getCode = origGC
	}
}

type fakeAuthSvc struct {
	requestEmail string
	requestErr   error

	verifyEmail string
	verifyCode  string
	verifyRes   *models.VerifyResult
	verifyErr   error

	logoutCalled bool
	logoutErr    error
}

func (f *fakeAuthSvc) RequestCode(_ context.Context, email string) (string, error) {
	f.requestEmail = email
	return "sess-1", f.requestErr
}
func (f *fakeAuthSvc) VerifyAndLogin(_ context.Context, email, code string) (*models.VerifyResult, error) {
	f.verifyEmail, f.verifyCode = email, code
	return f.verifyRes, f.verifyErr
}
func (f *fakeAuthSvc) Logout(context.Context) error {
	f.logoutCalled = true
	return f.logoutErr
}

type fakeProfileSvc struct {
	setup    *services.ProfileSetup
	setupErr error

	added  *models.AddressInput
	addErr error
}

func (f *fakeProfileSvc) CompleteSetup(_ context.Context, in services.ProfileSetup) error {
	f.setup = &in
	return f.setupErr
}
func (f *fakeProfileSvc) UpdateProfile(context.Context, *string, *string) (models.Identity, error) {
	return models.Identity{}, errors.New("not stubbed")
}
func (f *fakeProfileSvc) AddAddress(_ context.Context, in models.AddressInput) (*models.Address, error) {
	f.added = &in
	if f.addErr != nil {
		return nil, f.addErr
	}
	return &models.Address{ID: 7, Address: in.Address, Pincode: in.Pincode}, nil
}
func (f *fakeProfileSvc) ListAddresses(context.Context) ([]models.Address, error) {
	return nil, errors.New("not stubbed")
}
func (f *fakeProfileSvc) SetCurrentAddress(context.Context, int64) (*models.Address, error) {
	return nil, errors.New("not stubbed")
}

func TestLogin_ExistingUser(t *testing.T) {
	auth := &fakeAuthSvc{
		verifyRes: &models.VerifyResult{
			Identity: models.Identity{ID: 1, Email: "resident@example.org"},
		},
	}
	profile := &fakeProfileSvc{}
	a := &App{authService: auth, profileService: profile, log: nopLogger{}}

	restore := stubInputs(t, []string{"resident@example.org"}, "123456")
	defer restore()

	require.NoError(t, a.Login(context.Background()))
	require.Equal(t, "resident@example.org", auth.requestEmail)
	require.Equal(t, "resident@example.org", auth.verifyEmail)
	require.Equal(t, "123456", auth.verifyCode)
	require.Nil(t, profile.setup, "existing user must not be routed to setup")
}

func TestLogin_NewUserRoutedToSetup(t *testing.T) {
	auth := &fakeAuthSvc{
		verifyRes: &models.VerifyResult{
			Identity: models.Identity{ID: 2, Email: "fresh@example.org"},
			NewUser:  true,
		},
	}
	profile := &fakeProfileSvc{}
	a := &App{authService: auth, profileService: profile, log: nopLogger{}}

	restore := stubInputs(t, []string{
		"fresh@example.org",
		"Asha",
		"9876543210",
		"12 MG Road",
		"560001",
		"",
	}, "654321")
	defer restore()

	require.NoError(t, a.Login(context.Background()))
	require.NotNil(t, profile.setup, "new user must be routed to setup")
	require.Equal(t, "Asha", profile.setup.Name)
	require.Equal(t, "9876543210", profile.setup.Phone)
	require.Equal(t, "560001", profile.setup.Pincode)
}

func TestLogin_RequestCodeErrorStopsFlow(t *testing.T) {
	auth := &fakeAuthSvc{requestErr: errors.New("mailer down")}
	a := &App{authService: auth, log: nopLogger{}}

	restore := stubInputs(t, []string{"resident@example.org"}, "123456")
	defer restore()

	err := a.Login(context.Background())
	require.Error(t, err)
	require.Empty(t, auth.verifyEmail, "verification must not run")
}

func TestLogin_WrongCodeSurfacesError(t *testing.T) {
	auth := &fakeAuthSvc{verifyErr: errors.New("Invalid or expired OTP")}
	a := &App{authService: auth, log: nopLogger{}}

	restore := stubInputs(t, []string{"resident@example.org"}, "000000")
	defer restore()

	err := a.Login(context.Background())
	require.EqualError(t, err, "Invalid or expired OTP")
}

func TestLogout(t *testing.T) {
	auth := &fakeAuthSvc{}
	a := &App{authService: auth, log: nopLogger{}}

	require.NoError(t, a.Logout(context.Background()))
	require.True(t, auth.logoutCalled)
}

func TestLogout_ErrorPropagates(t *testing.T) {
	auth := &fakeAuthSvc{logoutErr: errors.New("clear-fail")}
	a := &App{authService: auth, log: nopLogger{}}

	require.Error(t, a.Logout(context.Background()))
}
