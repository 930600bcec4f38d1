// middlewares/cors.go

package middlewares

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"gerejaku_backend/internals/configs"
)

// CorsMiddleware membuat middleware CORS.
// Kredensial wajib aktif karena sesi login dibawa lewat cookie.
func CorsMiddleware() fiber.Handler {
	origins := []string{
		"http://localhost:3000",
		"http://localhost:3001",
		"https://backoffice-gereja.vercel.app",
	}
	if configs.FrontendURL != "" {
		origins = append(origins, configs.FrontendURL)
	}

	return cors.New(cors.Config{
		AllowOrigins:     strings.Join(origins, ", "),
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
	})
}
