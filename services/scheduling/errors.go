package scheduling

import "fmt"

// SchedulingError is a typed failure returned by scheduler operations.
// Every failing call is a complete no-op on the slot grid and the
// appointment ledger.
type SchedulingError struct {
	Code    string
	Message string
}

func (e *SchedulingError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

const (
	CodeSlotUnknown         = "slotUnknown"
	CodeSlotExhausted       = "slotExhausted"
	CodeAppointmentNotFound = "appointmentNotFound"
)

func NewSlotUnknownError(date, timeOfDay string) error {
	return &SchedulingError{
		Code:    CodeSlotUnknown,
		Message: fmt.Sprintf("no slot at %s %s", date, timeOfDay),
	}
}

func NewSlotExhaustedError(date, timeOfDay string) error {
	return &SchedulingError{
		Code:    CodeSlotExhausted,
		Message: fmt.Sprintf("slot %s %s has no remaining capacity", date, timeOfDay),
	}
}

func NewAppointmentNotFoundError(code string) error {
	return &SchedulingError{
		Code:    CodeAppointmentNotFound,
		Message: fmt.Sprintf("no appointment with code %s", code),
	}
}

// ErrorCode extracts the scheduling error code, or "" for nil/foreign errors.
func ErrorCode(err error) string {
	if se, ok := err.(*SchedulingError); ok {
		return se.Code
	}
	return ""
}
