package models

// WasteCategory classifies a pickup request.
type WasteCategory string

const (
	WasteCategoryEWaste     WasteCategory = "ewaste"
	WasteCategoryBiomedical WasteCategory = "biomedical"
)

// BookingStatus tracks a booking through its server-side lifecycle.
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// Booking is a scheduled waste collection as returned by the server.
type Booking struct {
	ID              int64         `json:"id"`
	UserID          int64         `json:"user_id"`
	AddressID       int64         `json:"address_id,omitempty"`
	WasteCategory   WasteCategory `json:"waste_category"`
	WasteTypes      []string      `json:"waste_types"`
	Quantity        string        `json:"quantity"`
	PickupDate      string        `json:"pickup_date"`
	AdditionalNotes string        `json:"additional_notes,omitempty"`
	Status          BookingStatus `json:"status"`
	CreatedAt       string        `json:"created_at,omitempty"`
	UpdatedAt       string        `json:"updated_at,omitempty"`
	ImagesCount     int           `json:"images_count,omitempty"`
}

// BookingInput is the payload for creating a booking. PickupDate uses
// the YYYY-MM-DD wire format. Images, when present, are data URLs.
type BookingInput struct {
	WasteCategory   WasteCategory `json:"waste_category"`
	WasteTypes      []string      `json:"waste_types"`
	Quantity        string        `json:"quantity"`
	PickupDate      string        `json:"pickup_date"`
	AdditionalNotes string        `json:"additional_notes,omitempty"`
	Images          []string      `json:"images,omitempty"`
}

// BookingFilter narrows a booking listing. Empty fields are not sent.
type BookingFilter struct {
	Status        BookingStatus
	WasteCategory WasteCategory
}

// BookingStats summarizes the user's booking history.
type BookingStats struct {
	TotalBookings      int `json:"total_bookings"`
	PendingBookings    int `json:"pending_bookings"`
	CompletedBookings  int `json:"completed_bookings"`
	CancelledBookings  int `json:"cancelled_bookings"`
	EWasteBookings     int `json:"ewaste_bookings"`
	BiomedicalBookings int `json:"biomedical_bookings"`
}
