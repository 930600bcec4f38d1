package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	albumRoute "gerejaku_backend/internals/features/albums/route"
	attendanceRoute "gerejaku_backend/internals/features/attendances/route"
	congregationRoute "gerejaku_backend/internals/features/congregations/route"
	reflectionRoute "gerejaku_backend/internals/features/reflections/route"
	authRoute "gerejaku_backend/internals/features/users/auth/route"
	authMiddleware "gerejaku_backend/internals/middlewares/auth"
)

// SetupRoutes memasang semua route aplikasi.
// /api/auth publik (login/register), sisanya di belakang AuthMiddleware.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	authRoute.AuthRoutes(app, db)

	api := app.Group("/api", authMiddleware.AuthMiddleware(db))
	congregationRoute.CongregationRoutes(api, db)
	attendanceRoute.AttendanceRoutes(api, db)
	reflectionRoute.ReflectionRoutes(api, db)
	albumRoute.AlbumRoutes(api, db)
}
