package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"gerejaku_backend/internals/features/reflections/dto"
	"gerejaku_backend/internals/features/reflections/model"
	helper "gerejaku_backend/internals/helpers"
)

type ReflectionController struct {
	DB *gorm.DB
}

func NewReflectionController(db *gorm.DB) *ReflectionController {
	return &ReflectionController{DB: db}
}

// GET /api/reflections/get
func (ctrl *ReflectionController) GetAll(c *fiber.Ctx) error {
	var reflections []model.ReflectionModel
	if err := ctrl.DB.Order("reflection_publish_date DESC").Find(&reflections).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data renungan")
	}
	return helper.Success(c, dto.ToReflectionResponseList(reflections))
}

// GET /api/reflections/get/:id
func (ctrl *ReflectionController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID renungan tidak valid")
	}

	var reflection model.ReflectionModel
	if err := ctrl.DB.First(&reflection, "reflection_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.Error(c, fiber.StatusNotFound, "Renungan tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data renungan")
	}
	return helper.Success(c, dto.ToReflectionResponse(&reflection))
}

// POST /api/reflections/create
func (ctrl *ReflectionController) Create(c *fiber.Ctx) error {
	var body dto.ReflectionRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Input tidak valid")
	}

	v := validator.New()
	if err := v.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	reflection := body.ToModel()
	if err := ctrl.DB.Create(reflection).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan renungan")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, dto.ToReflectionResponse(reflection))
}

// PUT /api/reflections/update/:id
func (ctrl *ReflectionController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID renungan tidak valid")
	}

	var body dto.ReflectionRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Input tidak valid")
	}

	v := validator.New()
	if err := v.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	var reflection model.ReflectionModel
	if err := ctrl.DB.First(&reflection, "reflection_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.Error(c, fiber.StatusNotFound, "Renungan tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data renungan")
	}

	reflection.ReflectionTitle = body.Title
	reflection.ReflectionContent = body.Content
	reflection.ReflectionStatus = body.Status
	reflection.ReflectionPublishDate = body.PublishDate

	if err := ctrl.DB.Save(&reflection).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memperbarui renungan")
	}

	return helper.Success(c, dto.ToReflectionResponse(&reflection))
}

// DELETE /api/reflections/delete/:id
func (ctrl *ReflectionController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID renungan tidak valid")
	}

	res := ctrl.DB.Where("reflection_id = ?", id).Delete(&model.ReflectionModel{})
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus renungan")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Renungan tidak ditemukan")
	}

	return helper.SuccessMessage(c, "Renungan berhasil dihapus")
}
