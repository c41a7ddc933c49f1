package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/wastewise/pickup/internal/client/models"
)

// Whoami prints the signed-in profile as the client currently knows it.
func (a *App) Whoami(ctx context.Context) error {
	id, ok := a.session.Identity()
	if !ok {
		fmt.Println("Not signed in.")
		return nil
	}
	fmt.Printf("Email:   %s\n", id.Email)
	fmt.Printf("Name:    %s\n", id.Name)
	fmt.Printf("Phone:   %s\n", id.Phone)
	if id.Address != "" {
		fmt.Printf("Address: %s, %s %s\n", id.Address, id.City, id.Pincode)
	}
	return nil
}

// UpdateProfile prompts for the fields to change; empty input leaves a
// field untouched.
func (a *App) UpdateProfile(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "New name (leave empty to keep)", os.Stdout)
	if err != nil {
		return err
	}
	phone, err := getSimpleText(a.reader, "New phone (leave empty to keep)", os.Stdout)
	if err != nil {
		return err
	}

	var namePtr, phonePtr *string
	if name != "" {
		namePtr = &name
	}
	if phone != "" {
		phonePtr = &phone
	}
	if namePtr == nil && phonePtr == nil {
		fmt.Println("Nothing to change.")
		return nil
	}

	updated, err := a.profileService.UpdateProfile(ctx, namePtr, phonePtr)
	if err != nil {
		a.log.Warn(ctx, "profile update failed", "error", err)
		return err
	}
	fmt.Printf("Saved. Name: %s, phone: %s\n", updated.Name, updated.Phone)
	return nil
}

// AddAddress registers a new pickup location.
func (a *App) AddAddress(ctx context.Context) error {
	address, err := getSimpleText(a.reader, "Address", os.Stdout)
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

	saved, err := a.profileService.AddAddress(ctx, models.AddressInput{
		Address:  address,
		Pincode:  pincode,
		MapsLink: mapsLink,
	})
	if err != nil {
		a.log.Warn(ctx, "could not save address", "error", err)
		return err
	}
	fmt.Printf("Address #%d saved.\n", saved.ID)
	return nil
}

// Addresses lists the saved pickup locations; the current one is marked
// with an asterisk.
func (a *App) Addresses(ctx context.Context) error {
	addrs, err := a.profileService.ListAddresses(ctx)
	if err != nil {
		return err
	}
	if len(addrs) == 0 {
		fmt.Println("No saved addresses.")
		return nil
	}
	for _, addr := range addrs {
		marker := " "
		if addr.IsCurrent {
			marker = "*"
		}
		fmt.Printf("%s #%d  %s, %s %s\n", marker, addr.ID, addr.Address, addr.City, addr.Pincode)
	}
	return nil
}

// SetAddress makes an existing address the current pickup location.
func (a *App) SetAddress(ctx context.Context) error {
	raw, err := getSimpleText(a.reader, "Address id", os.Stdout)
	if err != nil {
		return err
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		fmt.Println("Expected a numeric address id.")
		return err
	}

	addr, err := a.profileService.SetCurrentAddress(ctx, id)
	if err != nil {
		a.log.Warn(ctx, "could not switch address", "error", err)
		return err
	}
	fmt.Printf("Current address is now #%d (%s).\n", addr.ID, addr.Address)
	return nil
}
