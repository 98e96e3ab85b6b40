package chatbot

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"visado/models"
	"visado/services/scheduling"

	"go.uber.org/zap"
)

// HandleTurn advances the caller's conversation by one message and returns
// the assistant's reply. The literal command MENU (any case) is handled
// before any state logic and unconditionally resets to the main menu.
func (s *DefaultChatService) HandleTurn(ctx context.Context, sessionID, message string) (string, error) {
	input := strings.TrimSpace(message)

	if strings.EqualFold(input, "MENU") {
		if err := s.Sessions.Set(ctx, sessionID, NewSession()); err != nil {
			return "", err
		}
		return MainMenuText(), nil
	}

	sess, err := s.Sessions.Get(ctx, sessionID)
	if err != nil {
		return "", err
	}

	var reply string
	switch sess.State {
	case StateMainMenu:
		reply = s.handleMainMenu(sess, input)
	case StateBookingAskID:
		reply = s.handleBookingAskID(sess, input)
	case StateBookingAskVisa:
		reply = s.handleBookingAskVisa(sess, input)
	case StateBookingAskDate:
		reply = s.handleBookingAskDate(sess, input)
	case StateBookingAskTime:
		reply = s.handleBookingAskTime(sess, input)
	case StateConsultAskDate:
		reply = s.handleConsultAskDate(sess, input)
	case StateConsultPostAvailability:
		reply = s.handleConsultPostAvailability(sess, input)
	case StateManageAskCode:
		reply = s.handleManageAskCode(sess, input)
	case StateManageSubMenu:
		reply = s.handleManageSubMenu(sess, input)
	default:
		zap.L().Warn("chat session in unknown state, resetting",
			zap.String("sessionID", sessionID),
			zap.String("state", sess.State),
		)
		resetSession(sess)
		reply = msgUnrecognized
	}

	if err := s.Sessions.Set(ctx, sessionID, sess); err != nil {
		return "", err
	}
	return reply, nil
}

func (s *DefaultChatService) handleMainMenu(sess *models.ChatSession, input string) string {
	switch input {
	case "1":
		sess.State = StateBookingAskID
		sess.Draft = models.BookingDraft{}
		sess.ManagedCode = ""
		return msgAskID
	case "2":
		sess.State = StateConsultAskDate
		return msgAskConsultDate
	case "3":
		sess.State = StateManageAskCode
		return msgAskManageCode
	case "4":
		resetSession(sess)
		return msgFarewell
	default:
		return MainMenuText()
	}
}

func (s *DefaultChatService) handleBookingAskID(sess *models.ChatSession, input string) string {
	sess.Draft.UserID = input
	sess.State = StateBookingAskVisa
	return msgAskVisa
}

func (s *DefaultChatService) handleBookingAskVisa(sess *models.ChatSession, input string) string {
	sess.Draft.VisaType = input
	sess.State = StateBookingAskDate
	return msgAskDate
}

func (s *DefaultChatService) handleBookingAskDate(sess *models.ChatSession, input string) string {
	if !validDate(input) {
		return msgBadDateFormat
	}

	availability := s.Scheduler.Availability(input)
	times := availableTimes(availability)
	if len(times) == 0 {
		return msgNoAvailability(input)
	}

	// Cache the snapshot: the time-selection turn matches against it rather
	// than the live grid, so the offered set cannot shift under the caller.
	sess.Draft.Date = input
	sess.Availability = availability
	sess.State = StateBookingAskTime
	return msgPickTime(input, strings.Join(times, ", "))
}

func (s *DefaultChatService) handleBookingAskTime(sess *models.ChatSession, input string) string {
	snapshot, ok := sess.Availability[input]
	if !ok || snapshot.Available <= 0 {
		return msgBadTime(strings.Join(availableTimes(sess.Availability), ", "))
	}

	date := sess.Draft.Date
	if sess.ManagedCode != "" {
		code := sess.ManagedCode
		if err := s.Scheduler.Transfer(code, date, input); err != nil {
			sess.State = StateMainMenu
			return msgTransferFailed
		}
		resetSession(sess)
		return msgTransferred(code, date, input)
	}

	code, err := s.Scheduler.Reserve(sess.Draft.UserID, date, input, sess.Draft.VisaType)
	if err != nil {
		// The snapshot let a stale slot through; the scheduler re-checked
		// and said no. Back to the menu rather than looping on stale times.
		sess.State = StateMainMenu
		return msgSlotJustFilled
	}
	resetSession(sess)
	return msgBooked(code)
}

func (s *DefaultChatService) handleConsultAskDate(sess *models.ChatSession, input string) string {
	if !validDate(input) {
		return msgBadDateFormat
	}

	availability := s.Scheduler.Availability(input)
	times := availableTimes(availability)
	if len(times) == 0 {
		sess.State = StateMainMenu
		return msgConsultNone(input)
	}

	lines := make([]string, 0, len(times))
	for _, t := range times {
		lines = append(lines, fmt.Sprintf("**%s**: %d slots", t, availability[t].Available))
	}
	sess.State = StateConsultPostAvailability
	return msgConsultAvailability(input, strings.Join(lines, "\n"))
}

func (s *DefaultChatService) handleConsultPostAvailability(sess *models.ChatSession, input string) string {
	switch strings.ToLower(input) {
	case "si", "sí", "yes", "y":
		sess.State = StateBookingAskID
		sess.Draft = models.BookingDraft{}
		sess.ManagedCode = ""
		return msgAskID
	default:
		sess.State = StateMainMenu
		return MainMenuText()
	}
}

func (s *DefaultChatService) handleManageAskCode(sess *models.ChatSession, input string) string {
	appt, err := s.Scheduler.GetAppointment(input)
	if err != nil {
		return msgCodeNotFound
	}

	sess.ManagedCode = input
	sess.State = StateManageSubMenu
	visa := appt.VisaType
	if visa == "" {
		visa = "N/A"
	}
	return msgAppointmentSummary(appt.Date, appt.Time, visa)
}

func (s *DefaultChatService) handleManageSubMenu(sess *models.ChatSession, input string) string {
	switch input {
	case "3.2":
		err := s.Scheduler.Cancel(sess.ManagedCode)
		resetSession(sess)
		if err != nil {
			return msgCancelFailed
		}
		return msgCancelled
	case "3.1":
		// Reuse the booking sub-flow to pick the replacement slot; only the
		// managed code survives the draft reset.
		sess.Draft = models.BookingDraft{}
		sess.Availability = nil
		sess.State = StateBookingAskDate
		return msgAskNewDate
	default:
		return msgBadManageInput
	}
}

func resetSession(sess *models.ChatSession) {
	*sess = *NewSession()
}

func validDate(input string) bool {
	_, err := time.Parse(scheduling.DateLayout, input)
	return err == nil
}

// availableTimes returns the times with remaining capacity, sorted so the
// listing order is stable across turns.
func availableTimes(availability map[string]models.SlotAvailability) []string {
	times := make([]string, 0, len(availability))
	for t, slot := range availability {
		if slot.Available > 0 {
			times = append(times, t)
		}
	}
	sort.Strings(times)
	return times
}
