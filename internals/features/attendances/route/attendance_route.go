package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attendanceCtrl "gerejaku_backend/internals/features/attendances/controller"
)

func AttendanceRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := attendanceCtrl.NewAttendanceController(db)

	group := r.Group("/attendances")
	group.Get("/get", ctrl.GetAll)
	group.Get("/get-sunday", ctrl.GetSunday)
	group.Get("/history/:congregationId", ctrl.History)
	group.Post("/create", ctrl.Create)
	group.Delete("/delete/:id", ctrl.Delete)
}
