package models

// BookingDraft accumulates the fields of an appointment across chat turns.
type BookingDraft struct {
	UserID   string `json:"userId,omitempty"`
	VisaType string `json:"visaType,omitempty"`
	Date     string `json:"date,omitempty"`
}

// ChatSession is the per-caller conversational context. It lives only for
// the duration of the conversation (TTL-evicted) and is never persisted.
type ChatSession struct {
	State string       `json:"state"`
	Draft BookingDraft `json:"draft"`

	// ManagedCode references an existing appointment while the caller is
	// modifying or cancelling it.
	ManagedCode string `json:"managedCode,omitempty"`

	// Availability is the snapshot cached when the caller picked a date;
	// the time-selection turn matches against this snapshot, not the live
	// grid, so the set of offered times cannot shift mid-turn.
	Availability map[string]SlotAvailability `json:"availability,omitempty"`
}
