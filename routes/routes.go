package routes

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"hajz/handlers"
)

// HandlerBundle gathers the handlers the route table needs.
type HandlerBundle struct {
	Directory    *handlers.DirectoryHandler
	Appointments *handlers.AppointmentHandler
	Booking      *handlers.BookingHandler
}

// RegisterDirectoryRoutes registers the hospital/clinic/doctor catalogue
// endpoints.
func RegisterDirectoryRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api")
	{
		api.GET("/hospitals", hb.Directory.GetHospitalsHandler)
		api.POST("/hospitals", hb.Directory.CreateHospitalHandler)
		api.GET("/clinics", hb.Directory.GetClinicsHandler)
		api.GET("/doctors", hb.Directory.GetDoctorsHandler)
	}
}

// RegisterAppointmentRoutes registers the reservation wire surface.
func RegisterAppointmentRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api")
	{
		api.GET("/appointments", hb.Appointments.ListAppointmentsHandler)
		api.POST("/appointments", hb.Appointments.CreateAppointmentHandler)
		api.GET("/availability", hb.Appointments.GetAvailabilityHandler)
	}
}

// RegisterBookingRoutes sets up the endpoints for the booking session flow.
func RegisterBookingRoutes(r *gin.Engine, hb *HandlerBundle) {
	bookingGroup := r.Group("/api/booking")
	{
		bookingGroup.POST("/session", hb.Booking.InitiateSession)
		bookingGroup.PUT("/session/:sessionID", hb.Booking.UpdateSession)
		bookingGroup.POST("/confirm", hb.Booking.ConfirmBooking)
		bookingGroup.DELETE("/session/:sessionID", hb.Booking.CancelSession)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", handlers.HealthHandler)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterDirectoryRoutes(r, hb)
	RegisterAppointmentRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterHealthRoute(r)
}
