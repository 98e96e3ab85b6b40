package scheduling

import "visado/models"

// AdminStats aggregates the whole grid and ledger for the admin dashboard.
func (s *DefaultSchedulingService) AdminStats() models.AdminStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := models.AdminStats{
		ByVisaType:   make(map[string]int),
		Appointments: make([]models.Appointment, 0, len(s.appointments)),
	}

	for _, day := range s.slots {
		for _, counter := range day {
			stats.AvailableSlots += counter.Available
			stats.TotalSlots += counter.Capacity
		}
	}

	for _, appt := range s.appointments {
		visa := appt.VisaType
		if visa == "" {
			visa = "N/A"
		}
		stats.ByVisaType[visa]++
		stats.Appointments = append(stats.Appointments, *appt)
	}
	stats.TotalAppointments = len(s.appointments)
	return stats
}
