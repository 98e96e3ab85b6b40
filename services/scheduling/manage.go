package scheduling

// Cancel removes an appointment and releases its unit of capacity in the
// same critical section. An unknown code is a no-op.
func (s *DefaultSchedulingService) Cancel(code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	appt, ok := s.appointments[code]
	if !ok {
		return NewAppointmentNotFoundError(code)
	}

	delete(s.appointments, code)
	if counter, err := s.lookupSlot(appt.Date, appt.Time); err == nil {
		counter.Reserved--
		counter.Available = counter.Capacity - counter.Reserved
	}
	return nil
}

// Transfer moves an appointment to a new slot. The destination is validated
// before the source counter is touched; any failure leaves the grid and the
// appointment exactly as they were. Source release, destination reserve, and
// the slot rewrite happen under one lock hold.
func (s *DefaultSchedulingService) Transfer(code, newDate, newTimeOfDay string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	appt, ok := s.appointments[code]
	if !ok {
		return NewAppointmentNotFoundError(code)
	}

	dest, err := s.lookupSlot(newDate, newTimeOfDay)
	if err != nil {
		return err
	}
	if dest.Available <= 0 {
		return NewSlotExhaustedError(newDate, newTimeOfDay)
	}

	if src, err := s.lookupSlot(appt.Date, appt.Time); err == nil {
		src.Reserved--
		src.Available = src.Capacity - src.Reserved
	}

	dest.Reserved++
	dest.Available = dest.Capacity - dest.Reserved

	appt.Date = newDate
	appt.Time = newTimeOfDay
	return nil
}
