package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/wastewise/pickup/internal/client/models"
)

// Book walks through creating a pickup request: category, waste types,
// quantity, date, optional notes and image attachments.
func (a *App) Book(ctx context.Context) error {
	category, err := getSimpleText(a.reader, "Category (ewaste/biomedical)", os.Stdout)
	if err != nil {
		return err
	}
	types, err := GetList(a.reader, "Waste types, one per line", os.Stdout)
	if err != nil {
		return err
	}
	quantity, err := getSimpleText(a.reader, "Approximate quantity (e.g. 5 kg)", os.Stdout)
	if err != nil {
		return err
	}
	date, err := getSimpleText(a.reader, "Pickup date (YYYY-MM-DD)", os.Stdout)
	if err != nil {
		return err
	}
	notes, err := GetMultiline(a.reader, "Additional notes (optional):", os.Stdout)
	if err != nil {
		return err
	}
	images, err := GetList(a.reader, "Image file paths, one per line", os.Stdout)
	if err != nil {
		return err
	}

	booking, err := a.bookingService.Create(ctx, models.BookingInput{
		WasteCategory:   models.WasteCategory(strings.ToLower(category)),
		WasteTypes:      types,
		Quantity:        quantity,
		PickupDate:      date,
		AdditionalNotes: notes,
	}, images)
	if err != nil {
		a.log.Warn(ctx, "booking failed", "error", err)
		return err
	}

	fmt.Printf("Booking #%d scheduled for %s (%s).\n", booking.ID, booking.PickupDate, booking.Status)
	return nil
}

// Pickups lists the user's bookings, optionally filtered by status.
func (a *App) Pickups(ctx context.Context) error {
	status, err := getSimpleText(a.reader, "Filter by status (empty for all)", os.Stdout)
	if err != nil {
		return err
	}

	bookings, total, err := a.bookingService.List(ctx, models.BookingFilter{
		Status: models.BookingStatus(strings.ToLower(status)),
	})
	if err != nil {
		return err
	}
	if total == 0 {
		fmt.Println("No pickups yet.")
		return nil
	}
	for _, b := range bookings {
		fmt.Printf("#%d  %-10s %-10s %s  %s\n",
			b.ID, b.WasteCategory, b.Status, b.PickupDate, strings.Join(b.WasteTypes, ", "))
	}
	fmt.Printf("%d total\n", total)
	return nil
}

// CancelPickup cancels a pending booking by id.
func (a *App) CancelPickup(ctx context.Context) error {
	raw, err := getSimpleText(a.reader, "Booking id to cancel", os.Stdout)
	if err != nil {
		return err
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		fmt.Println("Expected a numeric booking id.")
		return err
	}

	booking, err := a.bookingService.Cancel(ctx, id)
	if err != nil {
		a.log.Warn(ctx, "cancellation failed", "error", err)
		return err
	}
	fmt.Printf("Booking #%d is now %s.\n", booking.ID, booking.Status)
	return nil
}

// Stats prints the booking history summary.
func (a *App) Stats(ctx context.Context) error {
	stats, err := a.bookingService.Stats(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("Total:      %d\n", stats.TotalBookings)
	fmt.Printf("Pending:    %d\n", stats.PendingBookings)
	fmt.Printf("Completed:  %d\n", stats.CompletedBookings)
	fmt.Printf("Cancelled:  %d\n", stats.CancelledBookings)
	fmt.Printf("E-waste:    %d\n", stats.EWasteBookings)
	fmt.Printf("Biomedical: %d\n", stats.BiomedicalBookings)
	return nil
}
