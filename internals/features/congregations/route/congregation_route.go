package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	congregationCtrl "gerejaku_backend/internals/features/congregations/controller"
)

func CongregationRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := congregationCtrl.NewCongregationController(db)

	group := r.Group("/congregations")
	group.Get("/get", ctrl.GetAll)
	group.Get("/get-congregations", ctrl.GetPicker) // picker absensi
	group.Get("/get/:id", ctrl.GetByID)
	group.Post("/create", ctrl.Create)
	group.Put("/edit/:id", ctrl.Update)
	group.Delete("/delete/:id", ctrl.Delete)
}
