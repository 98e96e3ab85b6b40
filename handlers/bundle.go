package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle aggregates every route handler so route registration takes
// a single wired value.
type HandlerBundle struct {
	// HTML pages.
	IndexPage         gin.HandlerFunc
	BookingFormPage   gin.HandlerFunc
	BookingResultPage gin.HandlerFunc
	AdminPage         gin.HandlerFunc

	// Booking API.
	GetAvailabilityHandler   gin.HandlerFunc
	CreateAppointmentHandler gin.HandlerFunc
	GetAppointmentHandler    gin.HandlerFunc
	CancelAppointmentHandler gin.HandlerFunc

	// Chat API.
	ChatTurnHandler gin.HandlerFunc

	// Admin API.
	GetStatsHandler gin.HandlerFunc
}
