package models

// Address is a saved pickup location. At most one address per user is
// marked current; the server uses it when a booking has no explicit one.
type Address struct {
	ID        int64  `json:"id"`
	UserID    int64  `json:"user_id"`
	Address   string `json:"address"`
	Pincode   string `json:"pincode"`
	City      string `json:"city"`
	State     string `json:"state"`
	MapsLink  string `json:"maps_link,omitempty"`
	IsCurrent bool   `json:"is_current"`
	CreatedAt string `json:"created_at,omitempty"`
}

// AddressInput is the payload for registering a new pickup location.
type AddressInput struct {
	Address  string `json:"address"`
	Pincode  string `json:"pincode"`
	MapsLink string `json:"maps_link,omitempty"`
	City     string `json:"city,omitempty"`
	State    string `json:"state,omitempty"`
}
