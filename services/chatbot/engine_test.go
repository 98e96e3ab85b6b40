package chatbot

import (
	"context"
	"regexp"
	"testing"
	"time"

	"visado/models"
	"visado/services/scheduling"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var codePattern = regexp.MustCompile(`[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}`)

func today() string {
	return time.Now().Format(scheduling.DateLayout)
}

func tomorrow() string {
	return time.Now().AddDate(0, 0, 1).Format(scheduling.DateLayout)
}

func newTestChat(capacity int) (*DefaultChatService, *MemorySessionStore, *scheduling.DefaultSchedulingService) {
	scheduler := scheduling.NewDefaultSchedulingService(3, scheduling.DefaultTimesOfDay, capacity)
	store := NewMemorySessionStore(time.Hour)
	return &DefaultChatService{Scheduler: scheduler, Sessions: store}, store, scheduler
}

func turn(t *testing.T, svc *DefaultChatService, sessionID, message string) string {
	t.Helper()
	reply, err := svc.HandleTurn(context.Background(), sessionID, message)
	require.NoError(t, err)
	return reply
}

func sessionState(t *testing.T, store *MemorySessionStore, sessionID string) *models.ChatSession {
	t.Helper()
	sess, err := store.Get(context.Background(), sessionID)
	require.NoError(t, err)
	return sess
}

func exhaustDay(t *testing.T, scheduler *scheduling.DefaultSchedulingService, date string) {
	t.Helper()
	for {
		done := true
		for timeOfDay, slot := range scheduler.Availability(date) {
			if slot.Available > 0 {
				_, err := scheduler.Reserve("FILLER", date, timeOfDay, "Tourist")
				require.NoError(t, err)
				done = false
			}
		}
		if done {
			return
		}
	}
}

func TestMainMenu(t *testing.T) {
	t.Run("unknown input re-emits the menu", func(t *testing.T) {
		svc, store, _ := newTestChat(10)

		reply := turn(t, svc, "s1", "banana")

		assert.Equal(t, MainMenuText(), reply)
		assert.Equal(t, StateMainMenu, sessionState(t, store, "s1").State)
	})

	t.Run("option 1 starts the booking flow", func(t *testing.T) {
		svc, store, _ := newTestChat(10)

		reply := turn(t, svc, "s1", "1")

		assert.Equal(t, msgAskID, reply)
		assert.Equal(t, StateBookingAskID, sessionState(t, store, "s1").State)
	})

	t.Run("option 4 ends the conversation and clears the session", func(t *testing.T) {
		svc, store, _ := newTestChat(10)
		turn(t, svc, "s1", "1")
		turn(t, svc, "s1", "P100")

		reply := turn(t, svc, "s1", "4")

		// "4" mid-flow is consumed as the visa answer; only the menu exits.
		assert.Equal(t, msgAskDate, reply)
		turn(t, svc, "s1", "MENU")
		reply = turn(t, svc, "s1", "4")
		assert.Equal(t, msgFarewell, reply)
		sess := sessionState(t, store, "s1")
		assert.Equal(t, StateMainMenu, sess.State)
		assert.Empty(t, sess.Draft.UserID)
	})
}

func TestMenuEscapeHatch(t *testing.T) {
	t.Run("MENU resets from any state and clears drafts", func(t *testing.T) {
		svc, store, _ := newTestChat(10)
		turn(t, svc, "s1", "1")
		turn(t, svc, "s1", "P100")
		turn(t, svc, "s1", "A")

		reply := turn(t, svc, "s1", "MENU")

		assert.Equal(t, MainMenuText(), reply)
		sess := sessionState(t, store, "s1")
		assert.Equal(t, StateMainMenu, sess.State)
		assert.Empty(t, sess.Draft.UserID)
		assert.Empty(t, sess.ManagedCode)
	})

	t.Run("is case-insensitive and whitespace-tolerant", func(t *testing.T) {
		svc, store, _ := newTestChat(10)
		turn(t, svc, "s1", "3")

		reply := turn(t, svc, "s1", "  menu ")

		assert.Equal(t, MainMenuText(), reply)
		assert.Equal(t, StateMainMenu, sessionState(t, store, "s1").State)
	})
}

func TestBookingFlow(t *testing.T) {
	t.Run("walks id, visa, date, time and books", func(t *testing.T) {
		svc, store, scheduler := newTestChat(10)

		assert.Equal(t, msgAskID, turn(t, svc, "s1", "1"))
		assert.Equal(t, msgAskVisa, turn(t, svc, "s1", "P100"))
		assert.Equal(t, msgAskDate, turn(t, svc, "s1", "A"))

		reply := turn(t, svc, "s1", today())
		assert.Contains(t, reply, "09:00")
		assert.Equal(t, StateBookingAskTime, sessionState(t, store, "s1").State)

		reply = turn(t, svc, "s1", "09:00")
		code := codePattern.FindString(reply)
		require.NotEmpty(t, code, "reply should carry a confirmation code: %s", reply)

		appt, err := scheduler.GetAppointment(code)
		require.NoError(t, err)
		assert.Equal(t, "P100", appt.UserID)
		assert.Equal(t, "A", appt.VisaType)
		assert.Equal(t, today(), appt.Date)
		assert.Equal(t, "09:00", appt.Time)

		// Terminal outcome clears the session back to the menu.
		assert.Equal(t, StateMainMenu, sessionState(t, store, "s1").State)
	})

	t.Run("invalid then exhausted then valid date", func(t *testing.T) {
		svc, store, scheduler := newTestChat(1)
		exhaustDay(t, scheduler, tomorrow())
		turn(t, svc, "s1", "1")
		turn(t, svc, "s1", "ID123")
		turn(t, svc, "s1", "A")

		reply := turn(t, svc, "s1", "13/13/2024")
		assert.Equal(t, msgBadDateFormat, reply)
		assert.Equal(t, StateBookingAskDate, sessionState(t, store, "s1").State)

		reply = turn(t, svc, "s1", tomorrow())
		assert.Equal(t, msgNoAvailability(tomorrow()), reply)
		assert.Equal(t, StateBookingAskDate, sessionState(t, store, "s1").State)

		reply = turn(t, svc, "s1", today())
		assert.Contains(t, reply, "09:00")
		assert.Equal(t, StateBookingAskTime, sessionState(t, store, "s1").State)
	})

	t.Run("rejects times not in the snapshot", func(t *testing.T) {
		svc, store, _ := newTestChat(10)
		turn(t, svc, "s1", "1")
		turn(t, svc, "s1", "P100")
		turn(t, svc, "s1", "A")
		turn(t, svc, "s1", today())

		reply := turn(t, svc, "s1", "13:00")

		assert.Contains(t, reply, "Invalid or fully booked time")
		assert.Equal(t, StateBookingAskTime, sessionState(t, store, "s1").State)
	})

	t.Run("slot filled between date and time turns falls back to the menu", func(t *testing.T) {
		svc, store, scheduler := newTestChat(1)
		turn(t, svc, "s1", "1")
		turn(t, svc, "s1", "P100")
		turn(t, svc, "s1", "A")
		turn(t, svc, "s1", today())

		// Another caller takes the last unit while this caller is deciding.
		_, err := scheduler.Reserve("P999", today(), "09:00", "Work")
		require.NoError(t, err)

		reply := turn(t, svc, "s1", "09:00")

		assert.Equal(t, msgSlotJustFilled, reply)
		assert.Equal(t, StateMainMenu, sessionState(t, store, "s1").State)
	})
}

func TestConsultFlow(t *testing.T) {
	t.Run("lists availability and offers to book", func(t *testing.T) {
		svc, store, _ := newTestChat(10)

		assert.Equal(t, msgAskConsultDate, turn(t, svc, "s1", "2"))
		reply := turn(t, svc, "s1", today())

		assert.Contains(t, reply, "10 slots")
		assert.Equal(t, StateConsultPostAvailability, sessionState(t, store, "s1").State)
	})

	t.Run("bad date format re-prompts in place", func(t *testing.T) {
		svc, store, _ := newTestChat(10)
		turn(t, svc, "s1", "2")

		reply := turn(t, svc, "s1", "not-a-date")

		assert.Equal(t, msgBadDateFormat, reply)
		assert.Equal(t, StateConsultAskDate, sessionState(t, store, "s1").State)
	})

	t.Run("no availability returns to the menu", func(t *testing.T) {
		svc, store, scheduler := newTestChat(1)
		exhaustDay(t, scheduler, today())
		turn(t, svc, "s1", "2")

		reply := turn(t, svc, "s1", today())

		assert.Equal(t, msgConsultNone(today()), reply)
		assert.Equal(t, StateMainMenu, sessionState(t, store, "s1").State)
	})

	t.Run("affirmative answer jumps into the booking flow", func(t *testing.T) {
		svc, store, _ := newTestChat(10)
		turn(t, svc, "s1", "2")
		turn(t, svc, "s1", today())

		reply := turn(t, svc, "s1", "Yes")

		assert.Equal(t, msgAskID, reply)
		assert.Equal(t, StateBookingAskID, sessionState(t, store, "s1").State)
	})

	t.Run("anything else returns to the menu", func(t *testing.T) {
		svc, store, _ := newTestChat(10)
		turn(t, svc, "s1", "2")
		turn(t, svc, "s1", today())

		reply := turn(t, svc, "s1", "no")

		assert.Equal(t, MainMenuText(), reply)
		assert.Equal(t, StateMainMenu, sessionState(t, store, "s1").State)
	})
}

func TestManageFlow(t *testing.T) {
	t.Run("unknown code re-prompts in place", func(t *testing.T) {
		svc, store, _ := newTestChat(10)
		turn(t, svc, "s1", "3")

		reply := turn(t, svc, "s1", "bogus-code")

		assert.Equal(t, msgCodeNotFound, reply)
		assert.Equal(t, StateManageAskCode, sessionState(t, store, "s1").State)
	})

	t.Run("known code shows the summary and sub-menu", func(t *testing.T) {
		svc, store, scheduler := newTestChat(10)
		code, err := scheduler.Reserve("P100", today(), "09:00", "Tourist")
		require.NoError(t, err)
		turn(t, svc, "s1", "3")

		reply := turn(t, svc, "s1", code)

		assert.Contains(t, reply, today())
		assert.Contains(t, reply, "09:00")
		assert.Contains(t, reply, "Tourist")
		sess := sessionState(t, store, "s1")
		assert.Equal(t, StateManageSubMenu, sess.State)
		assert.Equal(t, code, sess.ManagedCode)
	})

	t.Run("3.2 cancels and releases the slot", func(t *testing.T) {
		svc, store, scheduler := newTestChat(10)
		code, err := scheduler.Reserve("P100", today(), "09:00", "Tourist")
		require.NoError(t, err)
		turn(t, svc, "s1", "3")
		turn(t, svc, "s1", code)

		reply := turn(t, svc, "s1", "3.2")

		assert.Equal(t, msgCancelled, reply)
		assert.Equal(t, 10, scheduler.Availability(today())["09:00"].Available)
		assert.Equal(t, StateMainMenu, sessionState(t, store, "s1").State)
	})

	t.Run("3.1 reuses the booking flow and transfers", func(t *testing.T) {
		svc, store, scheduler := newTestChat(10)
		code, err := scheduler.Reserve("P100", today(), "09:00", "Tourist")
		require.NoError(t, err)
		turn(t, svc, "s1", "3")
		turn(t, svc, "s1", code)

		reply := turn(t, svc, "s1", "3.1")
		assert.Equal(t, msgAskNewDate, reply)
		sess := sessionState(t, store, "s1")
		assert.Equal(t, StateBookingAskDate, sess.State)
		assert.Equal(t, code, sess.ManagedCode)

		turn(t, svc, "s1", tomorrow())
		reply = turn(t, svc, "s1", "14:00")

		assert.Contains(t, reply, code, "transfer keeps the original code")
		appt, err := scheduler.GetAppointment(code)
		require.NoError(t, err)
		assert.Equal(t, tomorrow(), appt.Date)
		assert.Equal(t, "14:00", appt.Time)
		assert.Equal(t, 10, scheduler.Availability(today())["09:00"].Available)
		assert.Equal(t, StateMainMenu, sessionState(t, store, "s1").State)
	})

	t.Run("transfer into a just-filled slot reports failure", func(t *testing.T) {
		svc, store, scheduler := newTestChat(1)
		code, err := scheduler.Reserve("P100", today(), "09:00", "Tourist")
		require.NoError(t, err)
		turn(t, svc, "s1", "3")
		turn(t, svc, "s1", code)
		turn(t, svc, "s1", "3.1")
		turn(t, svc, "s1", tomorrow())

		_, err = scheduler.Reserve("P999", tomorrow(), "09:00", "Work")
		require.NoError(t, err)

		reply := turn(t, svc, "s1", "09:00")

		assert.Equal(t, msgTransferFailed, reply)
		// Original booking is untouched by the failed transfer.
		appt, err := scheduler.GetAppointment(code)
		require.NoError(t, err)
		assert.Equal(t, today(), appt.Date)
		assert.Equal(t, StateMainMenu, sessionState(t, store, "s1").State)
	})

	t.Run("invalid sub-menu option re-prompts", func(t *testing.T) {
		svc, store, scheduler := newTestChat(10)
		code, err := scheduler.Reserve("P100", today(), "09:00", "Tourist")
		require.NoError(t, err)
		turn(t, svc, "s1", "3")
		turn(t, svc, "s1", code)

		reply := turn(t, svc, "s1", "7")

		assert.Equal(t, msgBadManageInput, reply)
		assert.Equal(t, StateManageSubMenu, sessionState(t, store, "s1").State)
	})
}

func TestSessionIsolation(t *testing.T) {
	t.Run("sessions do not bleed into each other", func(t *testing.T) {
		svc, store, _ := newTestChat(10)

		turn(t, svc, "s1", "1")
		turn(t, svc, "s2", "2")

		assert.Equal(t, StateBookingAskID, sessionState(t, store, "s1").State)
		assert.Equal(t, StateConsultAskDate, sessionState(t, store, "s2").State)
	})
}
