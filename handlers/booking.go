package handlers

import (
	"net/http"
	"time"

	"visado/models"
	"visado/services/scheduling"
	"visado/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the scheduler over the JSON API.
type BookingHandler struct {
	Scheduler scheduling.SchedulingService
	Logger    *zap.Logger
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(scheduler scheduling.SchedulingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Scheduler: scheduler, Logger: logger}
}

// GetAvailabilityHandler returns the per-time counters for a date. Dates
// outside the grid come back as an empty object.
func (bh *BookingHandler) GetAvailabilityHandler(c *gin.Context) {
	date := c.Param("date")
	if _, err := time.Parse(scheduling.DateLayout, date); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid date", "expected format YYYY-MM-DD")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"date":  date,
		"slots": bh.Scheduler.Availability(date),
	})
}

// CreateAppointmentHandler books a slot directly (the non-conversational
// path used by the booking form's API consumers).
func (bh *BookingHandler) CreateAppointmentHandler(c *gin.Context) {
	var input models.BookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}
	if _, err := time.Parse(scheduling.DateLayout, input.Date); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid date", "expected format YYYY-MM-DD")
		return
	}

	code, err := bh.Scheduler.Reserve(input.UserID, input.Date, input.Time, input.VisaType)
	if err != nil {
		status := http.StatusConflict
		if scheduling.ErrorCode(err) == scheduling.CodeSlotUnknown {
			status = http.StatusNotFound
		}
		bh.Logger.Warn("booking rejected",
			zap.String("date", input.Date),
			zap.String("time", input.Time),
			zap.Error(err),
		)
		c.JSON(status, models.BookingResult{
			Status:  "error",
			Message: "The slot is no longer available.",
			Date:    input.Date,
			Time:    input.Time,
		})
		return
	}

	c.JSON(http.StatusCreated, models.BookingResult{
		Status:           "success",
		Message:          "Appointment booked successfully.",
		ConfirmationCode: code,
		Date:             input.Date,
		Time:             input.Time,
	})
}

// CancelAppointmentHandler releases a booked slot by confirmation code.
func (bh *BookingHandler) CancelAppointmentHandler(c *gin.Context) {
	code := c.Param("code")
	if err := bh.Scheduler.Cancel(code); err != nil {
		utils.JSONError(c, http.StatusNotFound, "Appointment not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cancelled", "confirmationCode": code})
}

// GetAppointmentHandler looks up a booking by confirmation code.
func (bh *BookingHandler) GetAppointmentHandler(c *gin.Context) {
	code := c.Param("code")
	appt, err := bh.Scheduler.GetAppointment(code)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "Appointment not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, appt)
}
