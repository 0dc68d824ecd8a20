package routes

import (
	"net/http"
	"time"

	"vetcare/handlers"
	"vetcare/middleware"
	"vetcare/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterCronRoutes registers the externally triggered generation endpoint.
func RegisterCronRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/cron")
	{
		api.Use(middleware.CronAuthMiddleware(hb.CronSecret))
		api.GET("/generate-slots", hb.GenerateSlotsHandler)
	}
}

// RegisterVetRoutes registers per-veterinarian read endpoints and schedule management.
func RegisterVetRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/vets/:vetId")
	{
		api.GET("/availability", hb.CheckAvailabilityHandler)
		api.GET("/slots", hb.ListSlotsHandler)
		api.GET("/slots/stats", hb.SlotStatsHandler)
		api.GET("/slots/bookable", hb.BookableSlotsHandler)
		api.GET("/schedule", hb.GetScheduleHandler)

		// Schedule changes are restricted to the veterinarian themselves.
		api.PUT("/schedule", middleware.VetAuthMiddleware(hb.JWTSecret), hb.UpdateScheduleHandler)
	}
}

// RegisterSlotRoutes registers slot mutation endpoints; all require a vet session.
func RegisterSlotRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/slots")
	{
		api.Use(middleware.VetAuthMiddleware(hb.JWTSecret))
		api.DELETE("/period", hb.DeletePeriodHandler)
		api.DELETE("/periods", hb.DeletePeriodsHandler)
		api.DELETE("", hb.DeleteSlotsHandler)
		api.PATCH("/status", hb.UpdateSlotStatusHandler)
	}
}

// RegisterBookingRoutes sets up the appointment booking endpoint.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/api/appointments", hb.BookSlotHandler)
}

// RegisterHealthRoute registers the health-check and metrics endpoints.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		status := utils.GetHealthStatus()
		code := http.StatusOK
		if !status.Healthy() {
			code = http.StatusServiceUnavailable
		}
		c.JSON(code, gin.H{"status": status})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterCronRoutes(r, hb)
	RegisterVetRoutes(r, hb)
	RegisterSlotRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterHealthRoute(r)
}
