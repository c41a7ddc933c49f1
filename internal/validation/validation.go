// Package validation checks user input on the client before any network
// call is made, so malformed values never reach the gateway.
package validation

import (
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/wastewise/pickup/internal/client/models"
)

var (
	ErrInvalidEmail   = errors.New("enter a valid email address")
	ErrInvalidCode    = errors.New("the one-time code is 6 digits")
	ErrInvalidPincode = errors.New("enter a valid Bangalore pincode (560xxx)")
	ErrInvalidPhone   = errors.New("enter a 10-digit phone number")
)

// Service area is currently Bangalore only, matching the backend's
// pincode check.
var (
	pincodeRe = regexp.MustCompile(`^560\d{3}$`)
	phoneRe   = regexp.MustCompile(`^\d{10}$`)
	codeRe    = regexp.MustCompile(`^\d{6}$`)
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// panics here mean a programming error in the tag registration, not
	// bad user input; they fire at init time
	mustRegister(v, "pincode", func(fl validator.FieldLevel) bool {
		return pincodeRe.MatchString(fl.Field().String())
	})
	mustRegister(v, "otpcode", func(fl validator.FieldLevel) bool {
		return codeRe.MatchString(fl.Field().String())
	})
	mustRegister(v, "inphone", func(fl validator.FieldLevel) bool {
		return phoneRe.MatchString(fl.Field().String())
	})
	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}

func Email(email string) error {
	if validate.Var(email, "required,email") != nil {
		return ErrInvalidEmail
	}
	return nil
}

func Code(code string) error {
	if validate.Var(code, "required,otpcode") != nil {
		return ErrInvalidCode
	}
	return nil
}

func Pincode(pincode string) error {
	if validate.Var(pincode, "required,pincode") != nil {
		return ErrInvalidPincode
	}
	return nil
}

func Phone(phone string) error {
	if validate.Var(phone, "required,inphone") != nil {
		return ErrInvalidPhone
	}
	return nil
}

// bookingRules shadows models.BookingInput with validation tags; the
// date is checked separately because "not in the past" needs a clock.
type bookingRules struct {
	WasteCategory string   `validate:"required,oneof=ewaste biomedical"`
	WasteTypes    []string `validate:"required,min=1,dive,required"`
	Quantity      string   `validate:"required"`
	PickupDate    string   `validate:"required"`
}

// Booking validates a booking payload. now is injectable for tests.
func Booking(in models.BookingInput, now time.Time) error {
	rules := bookingRules{
		WasteCategory: string(in.WasteCategory),
		WasteTypes:    in.WasteTypes,
		Quantity:      in.Quantity,
		PickupDate:    in.PickupDate,
	}
	if err := validate.Struct(rules); err != nil {
		var invalid validator.ValidationErrors
		if errors.As(err, &invalid) && len(invalid) > 0 {
			return fmt.Errorf("invalid booking: %s is missing or malformed", invalid[0].Field())
		}
		return fmt.Errorf("invalid booking: %w", err)
	}

	// parsed in now's location so "today" means the caller's today, not
	// UTC's
	date, err := time.ParseInLocation("2006-01-02", in.PickupDate, now.Location())
	if err != nil {
		return errors.New("pickup date must be YYYY-MM-DD")
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if date.Before(today) {
		return errors.New("pickup date cannot be in the past")
	}

	for _, img := range in.Images {
		if !dataURLRe.MatchString(img) {
			return errors.New("images must be data URLs")
		}
	}
	return nil
}

var dataURLRe = regexp.MustCompile(`^data:image/`)
