// File: vetcare/handlers/bundle.go
package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	JWTSecret  string
	CronSecret string

	// Cron endpoints
	GenerateSlotsHandler gin.HandlerFunc

	// Availability endpoints
	CheckAvailabilityHandler gin.HandlerFunc
	SlotStatsHandler         gin.HandlerFunc
	ListSlotsHandler         gin.HandlerFunc
	BookableSlotsHandler     gin.HandlerFunc

	// Slot mutation endpoints
	DeletePeriodHandler     gin.HandlerFunc
	DeletePeriodsHandler    gin.HandlerFunc
	DeleteSlotsHandler      gin.HandlerFunc
	UpdateSlotStatusHandler gin.HandlerFunc

	// Booking endpoints
	BookSlotHandler gin.HandlerFunc

	// Schedule endpoints
	GetScheduleHandler    gin.HandlerFunc
	UpdateScheduleHandler gin.HandlerFunc
}
