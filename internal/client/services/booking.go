package services

import (
	"context"
	"time"

	"github.com/wastewise/pickup/internal/client/api"
	"github.com/wastewise/pickup/internal/client/models"
	"github.com/wastewise/pickup/internal/client/session"
	"github.com/wastewise/pickup/internal/filex"
	"github.com/wastewise/pickup/internal/validation"
)

// BookingService submits and queries waste pickup requests.
type BookingService interface {
	// Create validates the payload, encodes any image attachments, and
	// submits the booking.
	Create(ctx context.Context, in models.BookingInput, imagePaths []string) (*models.Booking, error)
	List(ctx context.Context, filter models.BookingFilter) ([]models.Booking, int, error)
	Cancel(ctx context.Context, bookingID int64) (*models.Booking, error)
	Stats(ctx context.Context) (*models.BookingStats, error)
}

type bookingService struct {
	client  api.Client
	session *session.Session

	// now is an indirection for tests
	now func() time.Time
}

func NewBookingService(client api.Client, sess *session.Session) BookingService {
	return &bookingService{client: client, session: sess, now: time.Now}
}

func (b *bookingService) Create(ctx context.Context, in models.BookingInput, imagePaths []string) (*models.Booking, error) {
	if !b.session.IsAuthenticated() {
		return nil, session.ErrNotAuthenticated
	}

	for _, path := range imagePaths {
		img, err := filex.ImageDataURL(path)
		if err != nil {
			return nil, err
		}
		in.Images = append(in.Images, img)
	}

	if err := validation.Booking(in, b.now()); err != nil {
		return nil, err
	}

	return b.client.CreateBooking(ctx, in)
}

func (b *bookingService) List(ctx context.Context, filter models.BookingFilter) ([]models.Booking, int, error) {
	if !b.session.IsAuthenticated() {
		return nil, 0, session.ErrNotAuthenticated
	}
	return b.client.ListBookings(ctx, filter)
}

func (b *bookingService) Cancel(ctx context.Context, bookingID int64) (*models.Booking, error) {
	if !b.session.IsAuthenticated() {
		return nil, session.ErrNotAuthenticated
	}
	return b.client.CancelBooking(ctx, bookingID)
}

func (b *bookingService) Stats(ctx context.Context) (*models.BookingStats, error) {
	if !b.session.IsAuthenticated() {
		return nil, session.ErrNotAuthenticated
	}
	return b.client.BookingStats(ctx)
}
