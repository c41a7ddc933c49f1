// Package models defines client-side data models for the pickup service.
package models

// Identity is the authenticated user's profile record as known to the
// client. Email is the stable key correlating a local Identity to a
// server-side account; every other field is mutable.
type Identity struct {
	ID      int64  `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Pincode string `json:"pincode"`
	City    string `json:"city"`
	State   string `json:"state"`
}

// IdentityPatch carries a partial profile update. Nil fields are left
// untouched by a merge.
type IdentityPatch struct {
	Name    *string `json:"name,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	Address *string `json:"address,omitempty"`
	Pincode *string `json:"pincode,omitempty"`
	City    *string `json:"city,omitempty"`
	State   *string `json:"state,omitempty"`
}

// Merge returns a copy of id with the non-nil patch fields applied.
// Email is never patched.
func (id Identity) Merge(p IdentityPatch) Identity {
	out := id
	if p.Name != nil {
		out.Name = *p.Name
	}
	if p.Phone != nil {
		out.Phone = *p.Phone
	}
	if p.Address != nil {
		out.Address = *p.Address
	}
	if p.Pincode != nil {
		out.Pincode = *p.Pincode
	}
	if p.City != nil {
		out.City = *p.City
	}
	if p.State != nil {
		out.State = *p.State
	}
	return out
}

// VerifyResult is the outcome of a successful code verification.
// NewUser signals that the account was just created and the mandatory
// first-time profile setup still has to run.
type VerifyResult struct {
	Identity Identity
	NewUser  bool
}
