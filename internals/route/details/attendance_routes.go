package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attendanceController "somangchurch_backend/internals/features/attendance/records/controller"
)

func AttendanceUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := attendanceController.NewAttendanceRecordController(db)

	r.Get("/attendance/sheets", ctrl.ListGrouped)
}

func AttendanceAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := attendanceController.NewAttendanceRecordController(db)

	r.Post("/attendance/sheets", ctrl.CreateSheet)
	r.Patch("/attendance/records/:id", ctrl.UpdateRecord)
	r.Delete("/attendance/sheets", ctrl.DeleteSheet)
}
