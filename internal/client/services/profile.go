package services

import (
	"context"
	"errors"

	"github.com/wastewise/pickup/internal/client/api"
	"github.com/wastewise/pickup/internal/client/models"
	"github.com/wastewise/pickup/internal/client/session"
	"github.com/wastewise/pickup/internal/validation"
)

var errNameRequired = errors.New("name is required")

// ProfileSetup carries the fields of the mandatory first-time setup.
type ProfileSetup struct {
	Name     string
	Phone    string
	Address  string
	Pincode  string
	MapsLink string
}

// ProfileService manages the user's profile and saved addresses.
type ProfileService interface {
	// CompleteSetup runs the mandatory first-time profile completion:
	// it stores name and phone, registers the first address, and marks
	// the profile complete in the session.
	CompleteSetup(ctx context.Context, in ProfileSetup) error

	UpdateProfile(ctx context.Context, name, phone *string) (models.Identity, error)

	AddAddress(ctx context.Context, in models.AddressInput) (*models.Address, error)
	ListAddresses(ctx context.Context) ([]models.Address, error)
	SetCurrentAddress(ctx context.Context, addressID int64) (*models.Address, error)
}

type profileService struct {
	client  api.Client
	session *session.Session
}

func NewProfileService(client api.Client, sess *session.Session) ProfileService {
	return &profileService{client: client, session: sess}
}

func (p *profileService) CompleteSetup(ctx context.Context, in ProfileSetup) error {
	if in.Name == "" {
		return errNameRequired
	}
	if err := validation.Phone(in.Phone); err != nil {
		return err
	}
	if err := validation.Pincode(in.Pincode); err != nil {
		return err
	}

	updated, err := p.client.UpdateProfile(ctx, models.IdentityPatch{
		Name:  &in.Name,
		Phone: &in.Phone,
	})
	if err != nil {
		return err
	}

	addr, err := p.client.AddAddress(ctx, models.AddressInput{
		Address:  in.Address,
		Pincode:  in.Pincode,
		MapsLink: in.MapsLink,
	})
	if err != nil {
		return err
	}

	if _, err := p.session.UpdateIdentity(ctx, models.IdentityPatch{
		Name:    &updated.Name,
		Phone:   &updated.Phone,
		Address: &addr.Address,
		Pincode: &addr.Pincode,
		City:    &addr.City,
		State:   &addr.State,
	}); err != nil {
		return err
	}

	return p.session.MarkProfileComplete(ctx)
}

func (p *profileService) UpdateProfile(ctx context.Context, name, phone *string) (models.Identity, error) {
	if phone != nil {
		if err := validation.Phone(*phone); err != nil {
			return models.Identity{}, err
		}
	}
	if name != nil && *name == "" {
		return models.Identity{}, errNameRequired
	}

	updated, err := p.client.UpdateProfile(ctx, models.IdentityPatch{Name: name, Phone: phone})
	if err != nil {
		return models.Identity{}, err
	}

	return p.session.UpdateIdentity(ctx, models.IdentityPatch{
		Name:  &updated.Name,
		Phone: &updated.Phone,
	})
}

func (p *profileService) AddAddress(ctx context.Context, in models.AddressInput) (*models.Address, error) {
	if err := validation.Pincode(in.Pincode); err != nil {
		return nil, err
	}
	if in.Address == "" {
		return nil, errors.New("address is required")
	}
	return p.client.AddAddress(ctx, in)
}

func (p *profileService) ListAddresses(ctx context.Context) ([]models.Address, error) {
	return p.client.ListAddresses(ctx)
}

func (p *profileService) SetCurrentAddress(ctx context.Context, addressID int64) (*models.Address, error) {
	addr, err := p.client.SetCurrentAddress(ctx, addressID)
	if err != nil {
		return nil, err
	}

	// keep the session's identity in step with the new current address
	if p.session.IsAuthenticated() {
		if _, err := p.session.UpdateIdentity(ctx, models.IdentityPatch{
			Address: &addr.Address,
			Pincode: &addr.Pincode,
			City:    &addr.City,
			State:   &addr.State,
		}); err != nil {
			return nil, err
		}
	}
	return addr, nil
}
