package controller

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"gerejaku_backend/internals/constants"
	attendanceModel "gerejaku_backend/internals/features/attendances/model"
	attendanceService "gerejaku_backend/internals/features/attendances/service"
	"gerejaku_backend/internals/features/congregations/dto"
	"gerejaku_backend/internals/features/congregations/model"
	helper "gerejaku_backend/internals/helpers"
)

type CongregationController struct {
	DB *gorm.DB
}

func NewCongregationController(db *gorm.DB) *CongregationController {
	return &CongregationController{DB: db}
}

/* ===================== LIST ===================== */
// GET /api/congregations/get
func (ctrl *CongregationController) GetAll(c *fiber.Ctx) error {
	var congregations []model.CongregationModel
	if err := ctrl.DB.Order("congregation_name ASC").Find(&congregations).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data jemaat")
	}
	return helper.Success(c, dto.ToCongregationResponseList(congregations))
}

/* ===================== DETAIL + RIWAYAT ===================== */
// GET /api/congregations/get/:id
func (ctrl *CongregationController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID jemaat tidak valid")
	}

	var congregation model.CongregationModel
	if err := ctrl.DB.First(&congregation, "congregation_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.Error(c, fiber.StatusNotFound, "Jemaat tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data jemaat")
	}

	var attendances []attendanceModel.AttendanceModel
	if err := ctrl.DB.
		Preload("SermonSession").
		Where("attendance_congregation_id = ?", id).
		Order("attendance_date ASC").
		Find(&attendances).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil riwayat kehadiran")
	}

	detail := dto.CongregationDetailResponse{
		ID:             congregation.CongregationID,
		Name:           congregation.CongregationName,
		WhatsappNumber: congregation.CongregationWhatsappNumber,
		Address:        congregation.CongregationAddress,
		Attendances:    make([]dto.CongregationAttendanceResponse, 0, len(attendances)),
	}
	for _, a := range attendances {
		item := dto.CongregationAttendanceResponse{
			ID:   a.AttendanceID,
			Date: a.AttendanceDate,
		}
		if a.SermonSession != nil {
			item.SermonSession = dto.SermonSessionResponse{
				ID:   a.SermonSession.SermonSessionID,
				Name: a.SermonSession.SermonSessionName,
			}
		}
		detail.Attendances = append(detail.Attendances, item)
	}

	return helper.Success(c, detail)
}

/* ===================== PICKER ABSENSI ===================== */
// GET /api/congregations/get-congregations?search=
// hasAttendanceToday dihitung terhadap hari kalender Jakarta saat ini.
// Dengan query search, hasil dibatasi 5 teratas + hitungan sisanya.
func (ctrl *CongregationController) GetPicker(c *fiber.Ctx) error {
	now := time.Now().In(constants.Jakarta)
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, constants.Jakarta)
	endOfDay := startOfDay.AddDate(0, 0, 1)

	var rows []struct {
		CongregationID     uuid.UUID `gorm:"column:congregation_id"`
		CongregationName   string    `gorm:"column:congregation_name"`
		HasAttendanceToday bool      `gorm:"column:has_attendance_today"`
	}
	if err := ctrl.DB.Model(&model.CongregationModel{}).
		Select(`congregation_id, congregation_name,
			EXISTS(
				SELECT 1 FROM attendances a
				WHERE a.attendance_congregation_id = congregations.congregation_id
				  AND a.attendance_date >= ? AND a.attendance_date < ?
				  AND a.attendance_deleted_at IS NULL
			) AS has_attendance_today`, startOfDay, endOfDay).
		Order("congregation_name ASC").
		Scan(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data jemaat")
	}

	if search := c.Query("search"); search != "" {
		pool := make([]attendanceService.Candidate, 0, len(rows))
		for _, r := range rows {
			pool = append(pool, attendanceService.Candidate{
				ID:                 r.CongregationID,
				Name:               r.CongregationName,
				HasAttendanceToday: r.HasAttendanceToday,
			})
		}
		found := attendanceService.NewRoster(pool).Search(search)
		matches := make([]dto.CongregationPickerResponse, 0, len(found.Matches))
		for _, m := range found.Matches {
			matches = append(matches, dto.CongregationPickerResponse{
				ID:                 m.ID,
				Name:               m.Name,
				HasAttendanceToday: m.HasAttendanceToday,
			})
		}
		return helper.Success(c, fiber.Map{"matches": matches, "more": found.More})
	}

	result := make([]dto.CongregationPickerResponse, 0, len(rows))
	for _, r := range rows {
		result = append(result, dto.CongregationPickerResponse{
			ID:                 r.CongregationID,
			Name:               r.CongregationName,
			HasAttendanceToday: r.HasAttendanceToday,
		})
	}
	return helper.Success(c, result)
}

/* ===================== CREATE ===================== */
// POST /api/congregations/create
func (ctrl *CongregationController) Create(c *fiber.Ctx) error {
	var body dto.CongregationRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Input tidak valid")
	}

	v := validator.New()
	if err := v.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	congregation := body.ToModel()
	if err := ctrl.DB.Create(congregation).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan data jemaat")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, dto.ToCongregationResponse(congregation))
}

/* ===================== UPDATE ===================== */
// PUT /api/congregations/edit/:id
func (ctrl *CongregationController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID jemaat tidak valid")
	}

	var body dto.CongregationRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Input tidak valid")
	}

	v := validator.New()
	if err := v.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	var congregation model.CongregationModel
	if err := ctrl.DB.First(&congregation, "congregation_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.Error(c, fiber.StatusNotFound, "Jemaat tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data jemaat")
	}

	congregation.CongregationName = body.Name
	congregation.CongregationWhatsappNumber = body.WhatsappNumber
	congregation.CongregationAddress = body.Address

	if err := ctrl.DB.Save(&congregation).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memperbarui data jemaat")
	}

	return helper.Success(c, dto.ToCongregationResponse(&congregation))
}

/* ===================== DELETE ===================== */
// DELETE /api/congregations/delete/:id
func (ctrl *CongregationController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID jemaat tidak valid")
	}

	res := ctrl.DB.Where("congregation_id = ?", id).Delete(&model.CongregationModel{})
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus data jemaat")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Jemaat tidak ditemukan")
	}

	return helper.SuccessMessage(c, "Jemaat berhasil dihapus")
}
