package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authCtrl "gerejaku_backend/internals/features/users/auth/controller"
	"gerejaku_backend/internals/middlewares"
	authMiddleware "gerejaku_backend/internals/middlewares/auth"
)

// AuthRoutes dipasang di luar guard API supaya login/register bisa
// diakses tanpa sesi; get-session tetap lewat AuthMiddleware.
func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := authCtrl.NewAuthController(db)

	group := app.Group("/api/auth")
	group.Post("/register", middlewares.RegisterRateLimiter(), ctrl.Register)
	group.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	group.Post("/logout", ctrl.Logout)
	group.Get("/get-session", authMiddleware.AuthMiddleware(db), ctrl.GetSession)
}
