package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	albumCtrl "gerejaku_backend/internals/features/albums/controller"
)

func AlbumRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := albumCtrl.NewAlbumController(db)

	group := r.Group("/albums")
	group.Get("/get", ctrl.GetAll)
	group.Post("/create", ctrl.Create)
	group.Delete("/delete/:id", ctrl.Delete)
	group.Get("/:id", ctrl.GetByID)
	group.Put("/:id", ctrl.Update)
	group.Delete("/:id/images/:imageId", ctrl.DeleteImage)
}
