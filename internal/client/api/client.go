package api

import (
	"context"

	"github.com/wastewise/pickup/internal/client/models"
)

// Client is the transport-agnostic contract against the pickup backend.
// Implementations must never panic on transport or decode faults; every
// failure is reduced to an error value whose message is suitable for
// display, with ErrUnauthorized/ErrUnavailable matchable via errors.Is.
type Client interface {
	// RequestCode asks the server to email a one-time code. The returned
	// session id is an opaque reference to the pending verification.
	RequestCode(ctx context.Context, email string) (string, error)

	// VerifyCode exchanges the emailed code for an authenticated session.
	// The ambient credential is issued as a side effect; NewUser marks an
	// account still awaiting first-time profile setup.
	VerifyCode(ctx context.Context, email, code string) (*models.VerifyResult, error)

	// CurrentIdentity returns the identity bound to the ambient
	// credential. Callers must treat any error as "not authenticated".
	CurrentIdentity(ctx context.Context) (*models.Identity, error)

	// EndSession invalidates the ambient server-side session.
	EndSession(ctx context.Context) error

	UpdateProfile(ctx context.Context, patch models.IdentityPatch) (*models.Identity, error)

	AddAddress(ctx context.Context, in models.AddressInput) (*models.Address, error)
	ListAddresses(ctx context.Context) ([]models.Address, error)
	SetCurrentAddress(ctx context.Context, addressID int64) (*models.Address, error)

	CreateBooking(ctx context.Context, in models.BookingInput) (*models.Booking, error)
	ListBookings(ctx context.Context, filter models.BookingFilter) ([]models.Booking, int, error)
	CancelBooking(ctx context.Context, bookingID int64) (*models.Booking, error)
	BookingStats(ctx context.Context) (*models.BookingStats, error)
}
