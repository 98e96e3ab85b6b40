package handlers

import (
	"net/http"
	"time"

	"visado/models"
	"visado/services/scheduling"

	"github.com/gin-gonic/gin"
)

// PageHandler serves the HTML shell: landing page, booking form, booking
// result, and the admin dashboard.
type PageHandler struct {
	Scheduler scheduling.SchedulingService
}

// NewPageHandler creates a new PageHandler.
func NewPageHandler(scheduler scheduling.SchedulingService) *PageHandler {
	return &PageHandler{Scheduler: scheduler}
}

// IndexPage renders the landing page with the embedded chat widget.
func (ph *PageHandler) IndexPage(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", nil)
}

// BookingFormPage renders the booking form seeded with today's date.
func (ph *PageHandler) BookingFormPage(c *gin.Context) {
	c.HTML(http.StatusOK, "agendar.html", gin.H{
		"today": time.Now().Format(scheduling.DateLayout),
	})
}

// BookingResultPage handles the booking form submit and renders the outcome.
func (ph *PageHandler) BookingResultPage(c *gin.Context) {
	var input models.BookingInput
	if err := c.ShouldBind(&input); err != nil {
		c.HTML(http.StatusBadRequest, "resultado.html", gin.H{
			"result": models.BookingResult{
				Status:  "error",
				Message: "The form is missing required fields.",
			},
		})
		return
	}
	if input.VisaType == "" {
		input.VisaType = "N/A"
	}

	code, err := ph.Scheduler.Reserve(input.UserID, input.Date, input.Time, input.VisaType)
	result := models.BookingResult{Date: input.Date, Time: input.Time}
	if err != nil {
		result.Status = "error"
		result.Message = "The appointment could not be booked. The slot is no longer available."
	} else {
		result.Status = "success"
		result.Message = "Appointment booked successfully."
		result.ConfirmationCode = code
	}

	c.HTML(http.StatusOK, "resultado.html", gin.H{"result": result})
}

// AdminPage renders the admin dashboard with the stats aggregate.
func (ph *PageHandler) AdminPage(c *gin.Context) {
	stats := ph.Scheduler.AdminStats()
	c.HTML(http.StatusOK, "admin.html", gin.H{
		"stats":        stats,
		"appointments": stats.Appointments,
	})
}
