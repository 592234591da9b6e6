package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateExperience(c *ginext.Context)
	ListExperiences(c *ginext.Context)
	GetExperience(c *ginext.Context)
	UpdateExperience(c *ginext.Context)
	QueueStatus(c *ginext.Context)
	Reserve(c *ginext.Context)
	ListExperienceReservations(c *ginext.Context)
	GetReservation(c *ginext.Context)
	CancelReservation(c *ginext.Context)
	IssueCredential(c *ginext.Context)
	CheckEvents(c *ginext.Context)
	ValidateCode(c *ginext.Context)
	CheckIn(c *ginext.Context)
	CheckOut(c *ginext.Context)
	ForceCheckIn(c *ginext.Context)
	ForceCheckOut(c *ginext.Context)
	Subscribe(c *ginext.Context)
	CreateAttendee(c *ginext.Context)
	ListAttendees(c *ginext.Context)
	GetAttendeeReservations(c *ginext.Context)
}

// Auth holds the identity middleware: Required rejects anonymous callers,
// Optional only identifies them.
type Auth struct {
	Required ginext.HandlerFunc
	Optional ginext.HandlerFunc
}

func InitRouter(mode string, h Handler, auth Auth, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	public := router.Group("/api")
	{
		public.GET("/experiences", h.ListExperiences)
		public.GET("/experiences/:id", h.GetExperience)
		public.GET("/experiences/:id/queue", h.QueueStatus)
	}

	registration := router.Group("/api", auth.Optional)
	{
		registration.POST("/attendees", h.CreateAttendee)
	}

	api := router.Group("/api", auth.Required)
	{
		// Experiences
		api.POST("/experiences", h.CreateExperience)
		api.PATCH("/experiences/:id", h.UpdateExperience)
		api.POST("/experiences/:id/reservations", h.Reserve)
		api.GET("/experiences/:id/reservations", h.ListExperienceReservations)

		// Reservations
		api.GET("/reservations/:id", h.GetReservation)
		api.POST("/reservations/:id/cancel", h.CancelReservation)
		api.POST("/reservations/:id/credential", h.IssueCredential)
		api.GET("/reservations/:id/check-events", h.CheckEvents)

		// Checkpoint
		api.POST("/checkpoint/validate", h.ValidateCode)
		api.POST("/checkpoint/check-in", h.CheckIn)
		api.POST("/checkpoint/check-out", h.CheckOut)
		api.POST("/checkpoint/reservations/:id/force-check-in", h.ForceCheckIn)
		api.POST("/checkpoint/reservations/:id/force-check-out", h.ForceCheckOut)

		// Live updates
		api.GET("/subscribe", h.Subscribe)

		// Attendees
		api.GET("/attendees", h.ListAttendees)
		api.GET("/attendees/:id/reservations", h.GetAttendeeReservations)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
