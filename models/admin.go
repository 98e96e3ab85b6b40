package models

// AdminStats is the aggregate rendered on the admin dashboard.
type AdminStats struct {
	TotalAppointments int            `json:"totalAppointments"`
	AvailableSlots    int            `json:"availableSlots"`
	TotalSlots        int            `json:"totalSlots"`
	ByVisaType        map[string]int `json:"byVisaType"`
	Appointments      []Appointment  `json:"appointments"`
}
