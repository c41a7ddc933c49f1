package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wastewise/pickup/internal/client/models"
	"github.com/wastewise/pickup/internal/client/session"
	"github.com/wastewise/pickup/internal/validation"
)

// loginAs puts the session into the authenticated state with id.
func loginAs(t *testing.T, fc *fakeAPI, sess *session.Session, id models.Identity, newUser bool) {
	t.Helper()
	fc.currentIdentityFn = func(ctx context.Context) (*models.Identity, error) {
		copied := id
		return &copied, nil
	}
	require.NoError(t, sess.Login(context.Background(), models.VerifyResult{Identity: id, NewUser: newUser}))
}

func TestCompleteSetup_HappyPath(t *testing.T) {
	ctx := context.Background()
	id := models.Identity{ID: 1, Email: "new@b.com"}

	fc := &fakeAPI{
		updateProfileFn: func(ctx context.Context, patch models.IdentityPatch) (*models.Identity, error) {
			require.NotNil(t, patch.Name)
			require.NotNil(t, patch.Phone)
			return &models.Identity{ID: 1, Email: "new@b.com", Name: *patch.Name, Phone: *patch.Phone}, nil
		},
		addAddressFn: func(ctx context.Context, in models.AddressInput) (*models.Address, error) {
			require.Equal(t, "560038", in.Pincode)
			return &models.Address{
				ID: 10, Address: in.Address, Pincode: in.Pincode,
				City: "Bangalore", State: "Karnataka", IsCurrent: true,
			}, nil
		},
	}
	sess := newSettledSession(t, fc)
	loginAs(t, fc, sess, id, true)
	require.False(t, sess.ProfileComplete())

	svc := NewProfileService(fc, sess)
	err := svc.CompleteSetup(ctx, ProfileSetup{
		Name:    "Asha",
		Phone:   "9876543210",
		Address: "12 Indiranagar 100ft Rd",
		Pincode: "560038",
	})
	require.NoError(t, err)

	assert.True(t, sess.ProfileComplete())
	got, ok := sess.Identity()
	require.True(t, ok)
	assert.Equal(t, "Asha", got.Name)
	assert.Equal(t, "12 Indiranagar 100ft Rd", got.Address)
	assert.Equal(t, "Bangalore", got.City)
}

func TestCompleteSetup_ValidationStopsBeforeNetwork(t *testing.T) {
	fc := &fakeAPI{}
	sess := newSettledSession(t, fc)
	loginAs(t, fc, sess, models.Identity{ID: 1, Email: "new@b.com"}, true)
	svc := NewProfileService(fc, sess)

	tests := []struct {
		name string
		in   ProfileSetup
		want error
	}{
		{
			name: "bad phone",
			in:   ProfileSetup{Name: "A", Phone: "12", Address: "x", Pincode: "560001"},
			want: validation.ErrInvalidPhone,
		},
		{
			name: "bad pincode",
			in:   ProfileSetup{Name: "A", Phone: "9876543210", Address: "x", Pincode: "110001"},
			want: validation.ErrInvalidPincode,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.CompleteSetup(context.Background(), tt.in)
			require.ErrorIs(t, err, tt.want)
			assert.False(t, sess.ProfileComplete())
		})
	}

	t.Run("missing name", func(t *testing.T) {
		err := svc.CompleteSetup(context.Background(), ProfileSetup{
			Phone: "9876543210", Address: "x", Pincode: "560001",
		})
		require.Error(t, err)
	})
}

func TestUpdateProfile_RefusesBadPhone(t *testing.T) {
	fc := &fakeAPI{}
	sess := newSettledSession(t, fc)
	loginAs(t, fc, sess, models.Identity{ID: 1, Email: "a@b.com", Name: "Asha"}, false)
	svc := NewProfileService(fc, sess)

	phone := "nope"
	_, err := svc.UpdateProfile(context.Background(), nil, &phone)
	require.ErrorIs(t, err, validation.ErrInvalidPhone)
}

func TestSetCurrentAddress_SyncsSessionIdentity(t *testing.T) {
	fc := &fakeAPI{
		setCurrentAddrFn: func(ctx context.Context, id int64) (*models.Address, error) {
			require.Equal(t, int64(7), id)
			return &models.Address{
				ID: 7, Address: "44 Residency Rd", Pincode: "560025",
				City: "Bangalore", State: "Karnataka", IsCurrent: true,
			}, nil
		},
	}
	sess := newSettledSession(t, fc)
	loginAs(t, fc, sess, models.Identity{ID: 1, Email: "a@b.com", Address: "old", Pincode: "560001"}, false)
	svc := NewProfileService(fc, sess)

	addr, err := svc.SetCurrentAddress(context.Background(), 7)
	require.NoError(t, err)
	assert.True(t, addr.IsCurrent)

	got, ok := sess.Identity()
	require.True(t, ok)
	assert.Equal(t, "44 Residency Rd", got.Address)
	assert.Equal(t, "560025", got.Pincode)
}

func TestAddAddress_PincodeChecked(t *testing.T) {
	fc := &fakeAPI{}
	sess := newSettledSession(t, fc)
	svc := NewProfileService(fc, sess)

	_, err := svc.AddAddress(context.Background(), models.AddressInput{Address: "x", Pincode: "999999"})
	require.ErrorIs(t, err, validation.ErrInvalidPincode)
}
