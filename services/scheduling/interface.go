package scheduling

import (
	"sync"

	"visado/models"
)

// SchedulingService defines the contract for the slot-inventory allocator.
// Mutating operations are atomic: they either fully apply or leave the grid
// and the appointment ledger untouched.
type SchedulingService interface {
	Availability(date string) map[string]models.SlotAvailability
	Reserve(userID, date, timeOfDay, visaType string) (string, error)
	Cancel(code string) error
	Transfer(code, newDate, newTimeOfDay string) error
	GetAppointment(code string) (models.Appointment, error)
	AdminStats() models.AdminStats
}

// DefaultSchedulingService implements SchedulingService over an in-memory
// slot grid. A single mutex covers both the grid and the appointment ledger
// so that reserve, cancel, and transfer are single critical sections.
type DefaultSchedulingService struct {
	mu           sync.Mutex
	slots        map[string]map[string]*models.SlotCounter // date -> time -> counter
	appointments map[string]*models.Appointment            // confirmation code -> appointment
	timesOfDay   []string
}
