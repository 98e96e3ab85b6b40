package scheduling

import (
	"time"

	"visado/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DateLayout is the wire format for all slot dates.
const DateLayout = "2006-01-02"

// DefaultTimesOfDay are the bookable times: two morning blocks and two
// afternoon blocks, hourly.
var DefaultTimesOfDay = []string{"09:00", "10:00", "11:00", "14:00", "15:00", "16:00"}

// NewDefaultSchedulingService builds the slot grid for horizonDays
// consecutive dates starting today, every slot empty at the given capacity.
// The grid shape is fixed for the life of the service; calling this again
// would discard live counters, so it is only ever invoked at startup.
func NewDefaultSchedulingService(horizonDays int, timesOfDay []string, capacity int) *DefaultSchedulingService {
	if len(timesOfDay) == 0 {
		timesOfDay = DefaultTimesOfDay
	}
	svc := &DefaultSchedulingService{
		slots:        make(map[string]map[string]*models.SlotCounter, horizonDays),
		appointments: make(map[string]*models.Appointment),
		timesOfDay:   timesOfDay,
	}
	start := time.Now()
	for i := 0; i < horizonDays; i++ {
		date := start.AddDate(0, 0, i).Format(DateLayout)
		day := make(map[string]*models.SlotCounter, len(timesOfDay))
		for _, t := range timesOfDay {
			day[t] = &models.SlotCounter{Capacity: capacity, Reserved: 0, Available: capacity}
		}
		svc.slots[date] = day
	}
	zap.L().Info("slot grid initialized",
		zap.Int("days", horizonDays),
		zap.Int("timesPerDay", len(timesOfDay)),
		zap.Int("capacityPerSlot", capacity),
	)
	return svc
}

// Availability returns the per-time counters for a date. Dates outside the
// grid yield an empty map, never an error.
func (s *DefaultSchedulingService) Availability(date string) map[string]models.SlotAvailability {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[string]models.SlotAvailability)
	for t, counter := range s.slots[date] {
		out[t] = models.SlotAvailability{
			Reserved:  counter.Reserved,
			Capacity:  counter.Capacity,
			Available: counter.Available,
		}
	}
	return out
}

// Reserve consumes one unit of capacity at (date, timeOfDay) and records the
// appointment under a fresh confirmation code. On any failure nothing is
// mutated.
func (s *DefaultSchedulingService) Reserve(userID, date, timeOfDay, visaType string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	counter, err := s.lookupSlot(date, timeOfDay)
	if err != nil {
		return "", err
	}
	if counter.Available <= 0 {
		return "", NewSlotExhaustedError(date, timeOfDay)
	}

	counter.Reserved++
	counter.Available = counter.Capacity - counter.Reserved

	code := uuid.New().String()
	s.appointments[code] = &models.Appointment{
		Code:      code,
		UserID:    userID,
		Date:      date,
		Time:      timeOfDay,
		VisaType:  visaType,
		CreatedAt: time.Now(),
	}
	return code, nil
}

// GetAppointment returns a copy of the appointment for a confirmation code.
func (s *DefaultSchedulingService) GetAppointment(code string) (models.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	appt, ok := s.appointments[code]
	if !ok {
		return models.Appointment{}, NewAppointmentNotFoundError(code)
	}
	return *appt, nil
}

// lookupSlot must be called with the mutex held.
func (s *DefaultSchedulingService) lookupSlot(date, timeOfDay string) (*models.SlotCounter, error) {
	day, ok := s.slots[date]
	if !ok {
		return nil, NewSlotUnknownError(date, timeOfDay)
	}
	counter, ok := day[timeOfDay]
	if !ok {
		return nil, NewSlotUnknownError(date, timeOfDay)
	}
	return counter, nil
}
