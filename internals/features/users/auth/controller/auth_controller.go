package controller

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gerejaku_backend/internals/features/users/auth/dto"
	"gerejaku_backend/internals/features/users/auth/service"
	helper "gerejaku_backend/internals/helpers"
)

var validate = validator.New()

type AuthController struct {
	Service *service.AuthService
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{Service: service.NewAuthService(db)}
}

/* ===================== REGISTER ===================== */
// POST /api/auth/register
func (ctrl *AuthController) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	user, err := ctrl.Service.Register(&req)
	if err != nil {
		if err == service.ErrEmailTerdaftar {
			return helper.Error(c, fiber.StatusConflict, err.Error())
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mendaftarkan pengguna")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, dto.ToUserResponse(user))
}

/* ===================== LOGIN ===================== */
// POST /api/auth/login
// Token dikirim lewat cookie HTTP-only, bukan body.
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	user, token, err := ctrl.Service.Login(&req)
	if err != nil {
		if err == service.ErrLoginGagal {
			return helper.Error(c, fiber.StatusUnauthorized, err.Error())
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memproses login")
	}

	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    token,
		Expires:  time.Now().Add(service.TokenLifetime),
		HTTPOnly: true,
		Secure:   true,
		SameSite: "Lax",
		Path:     "/",
	})

	return helper.Success(c, dto.ToUserResponse(user))
}

/* ===================== SESSION ===================== */
// GET /api/auth/get-session
func (ctrl *AuthController) GetSession(c *fiber.Ctx) error {
	userID, ok := c.Locals("user_id").(string)
	if !ok || userID == "" {
		return helper.Error(c, fiber.StatusUnauthorized, "Sesi tidak ditemukan")
	}

	user, err := ctrl.Service.GetUser(userID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.Error(c, fiber.StatusUnauthorized, "Pengguna tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil sesi")
	}

	return helper.Success(c, dto.ToUserResponse(user))
}

/* ===================== LOGOUT ===================== */
// POST /api/auth/logout
func (ctrl *AuthController) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   true,
		SameSite: "Lax",
		Path:     "/",
	})
	return helper.SuccessMessage(c, "Logout berhasil")
}
