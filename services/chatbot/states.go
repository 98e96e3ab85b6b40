package chatbot

// Conversation states. MainMenu is the initial state and the target of the
// global MENU escape hatch.
const (
	StateMainMenu                = "main_menu"
	StateBookingAskID            = "booking_ask_id"
	StateBookingAskVisa          = "booking_ask_visa"
	StateBookingAskDate          = "booking_ask_date"
	StateBookingAskTime          = "booking_ask_time"
	StateConsultAskDate          = "consult_ask_date"
	StateConsultPostAvailability = "consult_post_availability"
	StateManageAskCode           = "manage_ask_code"
	StateManageSubMenu           = "manage_sub_menu"
)
