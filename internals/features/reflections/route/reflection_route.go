package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	reflectionCtrl "gerejaku_backend/internals/features/reflections/controller"
)

func ReflectionRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := reflectionCtrl.NewReflectionController(db)

	group := r.Group("/reflections")
	group.Get("/get", ctrl.GetAll)
	group.Get("/get/:id", ctrl.GetByID)
	group.Post("/create", ctrl.Create)
	group.Put("/update/:id", ctrl.Update)
	group.Delete("/delete/:id", ctrl.Delete)
}
