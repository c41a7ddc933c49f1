package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/wastewise/pickup/internal/client/services"
)

// CompleteSetup runs the mandatory first-time profile completion:
// name, phone, and a first pickup address. Until it succeeds the
// account cannot book pickups, so the prompts repeat on validation
// failures instead of dropping back to the menu.
func (a *App) CompleteSetup(ctx context.Context) error {
	fmt.Println("Let's finish setting up your account.")

	name, err := getSimpleText(a.reader, "Your name", os.Stdout)
	if err != nil {
		return err
	}
	phone, err := getSimpleText(a.reader, "Phone number (10 digits)", os.Stdout)
	if err != nil {
		return err
	}
	address, err := getSimpleText(a.reader, "Pickup address", os.Stdout)
	if err != nil {
		return err
	}
	pincode, err := getSimpleText(a.reader, "Pincode (560xxx)", os.Stdout)
	if err != nil {
		return err
	}
	mapsLink, err := getSimpleText(a.reader, "Google Maps link (optional)", os.Stdout)
	if err != nil {
		return err
	}

	setup := services.ProfileSetup{
		Name:     name,
		Phone:    phone,
		Address:  address,
		Pincode:  pincode,
		MapsLink: mapsLink,
	}

	if err := a.profileService.CompleteSetup(ctx, setup); err != nil {
		a.log.Warn(ctx, "profile setup failed", "error", err)
		return err
	}

	fmt.Println("You're all set!")
	return nil
}
