package routes

import (
	"time"

	"occlusa/handlers"
	"occlusa/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires all endpoints onto the router. The patient app calls
// the simple shape without staff credentials; the structured shape used by
// the practice's staff tools requires a Bearer token.
func RegisterRoutes(r *gin.Engine, appt *handlers.AppointmentHandler, prov *handlers.ProviderHandler) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthHandler)

		// Patient-app (form) shape: no staff token required.
		api.POST("/appointments/simple", appt.CreateSimpleAppointmentHandler)
		api.GET("/appointments", appt.GetDayScheduleHandler)
		api.GET("/availability", appt.GetAvailableSlotsHandler)
		api.GET("/providers", prov.ListProvidersHandler)
		api.GET("/providers/name/:name", prov.GetProviderByNameHandler)

		// Cancellation is shared by both shapes; the token is optional and
		// only feeds the audit trail.
		api.DELETE("/appointments/:id", middleware.UserContextMiddleware(true), appt.CancelAppointmentHandler)

		// Structured staff shape: strict authentication.
		staff := api.Group("")
		staff.Use(middleware.UserContextMiddleware(false))
		staff.POST("/appointments", appt.CreateAppointmentHandler)
		staff.PATCH("/appointments/:id", appt.UpdateAppointmentHandler)
		staff.GET("/appointments/day", appt.GetAppointmentsForDayHandler)
	}
}
