// File: visado/handlers/admin.go
package handlers

import (
	"net/http"

	"visado/services/scheduling"

	"github.com/gin-gonic/gin"
)

// AdminHandler encapsulates elevated admin-level operations.
type AdminHandler struct {
	Scheduler scheduling.SchedulingService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(scheduler scheduling.SchedulingService) *AdminHandler {
	return &AdminHandler{Scheduler: scheduler}
}

// GetStatsHandler returns the grid-wide aggregate and the appointment list.
func (ah *AdminHandler) GetStatsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, ah.Scheduler.AdminStats())
}
