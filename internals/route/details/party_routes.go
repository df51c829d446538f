package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	partyController "somangchurch_backend/internals/features/parties/controller"
)

func PartyUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := partyController.NewPartyController(db)

	r.Get("/parties", ctrl.ListParties)
	r.Post("/parties/:id/attendances", ctrl.SubmitAttendance)
	r.Get("/parties/:id/attendances", ctrl.ListAttendance)
}

func PartyAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := partyController.NewPartyController(db)

	r.Post("/parties", ctrl.CreateParty)
	r.Put("/parties/:id", ctrl.UpdateParty)
	r.Delete("/parties/:id", ctrl.DeleteParty)
}
