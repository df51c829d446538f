package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	calendarController "somangchurch_backend/internals/features/calendar/entries/controller"
	birthdayController "somangchurch_backend/internals/features/calendar/recurrence/controller"
)

func CalendarPublicRoutes(r fiber.Router, db *gorm.DB) {
	entries := calendarController.NewCalendarEntryController(db)

	// The congregation-facing sheet list needs no login.
	r.Get("/calendar/upcoming", entries.ListUpcoming)
}

func CalendarUserRoutes(r fiber.Router, db *gorm.DB) {
	entries := calendarController.NewCalendarEntryController(db)
	birthdays := birthdayController.NewBirthdayController(db)

	r.Get("/calendar/entries", entries.ListByMonth)
	r.Get("/calendar/entries/:id", entries.GetEntry)
	r.Get("/calendar/birthdays", birthdays.ListUpcoming)
}

func CalendarAdminRoutes(r fiber.Router, db *gorm.DB) {
	entries := calendarController.NewCalendarEntryController(db)

	r.Post("/calendar/entries", entries.CreateEntry)
	r.Put("/calendar/entries/:id", entries.UpdateEntry)
	r.Delete("/calendar/entries/:id", entries.DeleteEntry)
}
