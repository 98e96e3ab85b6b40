package chatbot

import "fmt"

// MainMenuText is the greeting and option list re-emitted whenever the
// caller lands on the main menu.
func MainMenuText() string {
	return "Hello! I am your virtual assistant for visa appointment scheduling. " +
		"Please select an option:\n\n" +
		"**1**. Book a new appointment.\n" +
		"**2**. Check slot availability.\n" +
		"**3**. Modify or cancel an existing appointment.\n" +
		"**4**. End the conversation."
}

const (
	msgAskID          = "To book an appointment, please enter your **identification number** (or passport)."
	msgAskVisa        = "Thank you. Which **visa type** are you applying for? (e.g. **A**. Tourist, **B**. Student, **C**. Work)"
	msgAskDate        = "Please enter the **date** you would like to book (YYYY-MM-DD)."
	msgAskConsultDate = "To check availability, enter the desired **date** (YYYY-MM-DD)."
	msgAskManageCode  = "To modify or cancel, enter the **confirmation code** of your appointment."
	msgAskNewDate     = "Enter the **new date** for your appointment (YYYY-MM-DD)."
	msgBadDateFormat  = "Invalid date format. Enter the date as **YYYY-MM-DD**."
	msgFarewell       = "Thank you for using our service! The conversation has ended."
	msgCodeNotFound   = "Confirmation code not found. Please check the code or type **MENU** to go back."
	msgSlotJustFilled = "That slot was just taken. Please try booking again (type **MENU**)."
	msgTransferFailed = "There was a problem modifying the appointment. The slot was already taken or the new date is invalid. Type **MENU**."
	msgCancelled      = "Your appointment has been **cancelled** and the slot has been released. Type **MENU**."
	msgCancelFailed   = "There was a problem cancelling. Type **MENU** to go back to the start."
	msgManageOptions  = "What would you like to do?\n**3.1**. Change the date or time.\n**3.2**. Cancel the appointment."
	msgBadManageInput = "Invalid option. Choose **3.1** to modify or **3.2** to cancel."
	msgUnrecognized   = "Unrecognized option for the current step. Type **MENU** to return to the main menu."
)

func msgNoAvailability(date string) string {
	return fmt.Sprintf("No availability for %s. Enter **another date** (YYYY-MM-DD) or type **MENU**.", date)
}

func msgPickTime(date, times string) string {
	return fmt.Sprintf("For %s we have availability at: **%s**. Please pick the **time** you prefer (HH:MM).", date, times)
}

func msgBadTime(times string) string {
	return fmt.Sprintf("Invalid or fully booked time. Pick one of the available times: **%s**.", times)
}

func msgBooked(code string) string {
	return fmt.Sprintf("✅ Appointment booked! Your **confirmation code** is **%s**. Type **MENU** to go back to the start.", code)
}

func msgTransferred(code, date, timeOfDay string) string {
	return fmt.Sprintf("✅ Appointment **moved** to **%s** at **%s**. Your code is still **%s**. Type **MENU** to go back to the start.", timeOfDay, date, code)
}

func msgAppointmentSummary(date, timeOfDay, visaType string) string {
	return fmt.Sprintf("Appointment found for **%s** at **%s** (visa %s). %s", date, timeOfDay, visaType, msgManageOptions)
}

func msgConsultAvailability(date, listing string) string {
	return fmt.Sprintf("Availability for **%s**:\n%s\n\nWould you like to book now? (Yes/No) or type **MENU** to go back.", date, listing)
}

func msgConsultNone(date string) string {
	return fmt.Sprintf("Sorry, there are no slots left for %s. Type **MENU** to go back.", date)
}
