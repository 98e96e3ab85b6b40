package models

import "time"

// Appointment is a confirmed reservation of one unit of slot capacity.
// The confirmation code is minted by the scheduler on reservation and is
// the handle for every later lookup, transfer, or cancellation.
type Appointment struct {
	Code      string    `json:"confirmationCode"`
	UserID    string    `json:"userId"`
	Date      string    `json:"date"` // YYYY-MM-DD
	Time      string    `json:"time"` // HH:MM, one of the fixed slot times
	VisaType  string    `json:"visaType"`
	CreatedAt time.Time `json:"createdAt"`
}

// BookingInput is the payload for the direct (non-chat) booking endpoint.
type BookingInput struct {
	UserID   string `json:"userId" form:"passport" binding:"required"`
	Date     string `json:"date" form:"date" binding:"required"`
	Time     string `json:"time" form:"time" binding:"required"`
	VisaType string `json:"visaType" form:"visa_type"`
}

// BookingResult is returned to the booking form and the JSON API.
type BookingResult struct {
	Status           string `json:"status"` // "success" or "error"
	Message          string `json:"message"`
	ConfirmationCode string `json:"confirmationCode,omitempty"`
	Date             string `json:"date"`
	Time             string `json:"time"`
}
