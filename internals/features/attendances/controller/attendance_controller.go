package controller

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"gerejaku_backend/internals/constants"
	"gerejaku_backend/internals/features/attendances/dto"
	"gerejaku_backend/internals/features/attendances/model"
	"gerejaku_backend/internals/features/attendances/service"
	congregationModel "gerejaku_backend/internals/features/congregations/model"
	helper "gerejaku_backend/internals/helpers"
)

type AttendanceController struct {
	DB *gorm.DB
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	return &AttendanceController{DB: db}
}

/* ===================== LIST ===================== */
// GET /api/attendances/get
func (ctrl *AttendanceController) GetAll(c *fiber.Ctx) error {
	var attendances []model.AttendanceModel
	if err := ctrl.DB.
		Preload("Congregation").
		Preload("SermonSession").
		Order("attendance_date DESC").
		Find(&attendances).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data absensi")
	}
	return helper.Success(c, dto.FromAttendanceModelList(attendances))
}

/* ===================== MINGGU TERAKHIR ===================== */
// GET /api/attendances/get-sunday
// Semua absensi pada hari Minggu terakhir (hari ini bila sekarang Minggu).
func (ctrl *AttendanceController) GetSunday(c *fiber.Ctx) error {
	now := time.Now().In(constants.Jakarta)
	lastSunday := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, constants.Jakarta).
		AddDate(0, 0, -int(now.Weekday()))
	nextDay := lastSunday.AddDate(0, 0, 1)

	var attendances []model.AttendanceModel
	if err := ctrl.DB.
		Preload("Congregation").
		Preload("SermonSession").
		Where("attendance_date >= ? AND attendance_date < ?", lastSunday, nextDay).
		Order("attendance_date ASC").
		Find(&attendances).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil absensi hari Minggu")
	}
	return helper.Success(c, dto.FromAttendanceModelList(attendances))
}

/* ===================== CREATE (batch, atomik) ===================== */
// POST /api/attendances/create
// Satu transaksi untuk seluruh batch: jemaat baru dibuat lebih dulu,
// lalu satu baris absensi per orang. Gagal satu → batal semua.
func (ctrl *AttendanceController) Create(c *fiber.Ctx) error {
	var req dto.CreateAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Input tidak valid")
	}
	if len(req.Attendees) == 0 {
		return helper.Error(c, fiber.StatusBadRequest, service.ErrBelumAdaJemaat.Error())
	}

	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	// Guard jam perekaman: ditolak sebelum menyentuh DB.
	now := time.Now().In(constants.Jakarta)
	if err := service.CheckRecordingWindow(now); err != nil {
		return helper.Error(c, fiber.StatusUnprocessableEntity, err.Error())
	}
	sessionName, _ := service.ResolveSermonSession(now)

	var session model.SermonSessionModel
	if err := ctrl.DB.Where("sermon_session_name = ?", sessionName).First(&session).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Sesi kebaktian tidak ditemukan")
	}

	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, constants.Jakarta)
	endOfDay := startOfDay.AddDate(0, 0, 1)

	tx := ctrl.DB.Begin()
	if tx.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memulai transaksi")
	}
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	created := 0
	for _, attendee := range req.Attendees {
		var congregationID uuid.UUID

		if attendee.IsNewCongregation {
			name := strings.TrimSpace(attendee.Name)
			if name == "" {
				tx.Rollback()
				return helper.Error(c, fiber.StatusBadRequest, service.ErrNamaKosong.Error())
			}
			congregation := congregationModel.CongregationModel{CongregationName: name}
			if err := tx.Create(&congregation).Error; err != nil {
				tx.Rollback()
				return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat jemaat baru")
			}
			congregationID = congregation.CongregationID
		} else {
			if attendee.CongregationID == nil {
				tx.Rollback()
				return helper.Error(c, fiber.StatusBadRequest, "congregationId wajib untuk jemaat terdaftar")
			}
			id, err := uuid.Parse(*attendee.CongregationID)
			if err != nil {
				tx.Rollback()
				return helper.Error(c, fiber.StatusBadRequest, "congregationId tidak valid")
			}
			var count int64
			if err := tx.Model(&congregationModel.CongregationModel{}).
				Where("congregation_id = ?", id).Count(&count).Error; err != nil {
				tx.Rollback()
				return helper.Error(c, fiber.StatusInternalServerError, "Gagal memeriksa data jemaat")
			}
			if count == 0 {
				tx.Rollback()
				return helper.Error(c, fiber.StatusBadRequest, "Jemaat tidak ditemukan")
			}
			congregationID = id
		}

		// Tolak perekaman ganda di hari yang sama. Cek berjalan di
		// dalam transaksi, jadi duplikat di dalam batch juga tertangkap.
		var dup int64
		if err := tx.Model(&model.AttendanceModel{}).
			Where("attendance_congregation_id = ? AND attendance_date >= ? AND attendance_date < ?",
				congregationID, startOfDay, endOfDay).
			Count(&dup).Error; err != nil {
			tx.Rollback()
			return helper.Error(c, fiber.StatusInternalServerError, "Gagal memeriksa absensi hari ini")
		}
		if dup > 0 {
			tx.Rollback()
			return helper.Error(c, fiber.StatusConflict,
				fmt.Sprintf("%s sudah tercatat hadir hari ini", attendee.Name))
		}

		attendance := model.AttendanceModel{
			AttendanceDate:            now,
			AttendanceCongregationID:  congregationID,
			AttendanceSermonSessionID: session.SermonSessionID,
		}
		if err := tx.Create(&attendance).Error; err != nil {
			tx.Rollback()
			return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan absensi")
		}
		created++
	}

	if err := tx.Commit().Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan absensi")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, fiber.Map{
		"created":       created,
		"sermonSession": sessionName,
	})
}

/* ===================== DELETE ===================== */
// DELETE /api/attendances/delete/:id
func (ctrl *AttendanceController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID absensi tidak valid")
	}

	res := ctrl.DB.Where("attendance_id = ?", id).Delete(&model.AttendanceModel{})
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus absensi")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Absensi tidak ditemukan")
	}

	return helper.SuccessMessage(c, "Absensi berhasil dihapus")
}

/* ===================== RIWAYAT 6 BULAN ===================== */
// GET /api/attendances/history/:congregationId
// Kalender Minggu 6 bulan terakhir per jemaat: bucket per bulan,
// slot tercakup/tidak, plus persentase kehadiran.
func (ctrl *AttendanceController) History(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("congregationId"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID jemaat tidak valid")
	}

	var congregation congregationModel.CongregationModel
	if err := ctrl.DB.First(&congregation, "congregation_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.Error(c, fiber.StatusNotFound, "Jemaat tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data jemaat")
	}

	var attendances []model.AttendanceModel
	if err := ctrl.DB.
		Preload("SermonSession").
		Where("attendance_congregation_id = ?", id).
		Order("attendance_date ASC").
		Find(&attendances).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil riwayat kehadiran")
	}

	slots, err := service.BuildWindow(time.Now(), constants.AttendanceWindowMonths)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Rentang tanggal tidak valid")
	}
	buckets := service.BucketByMonth(slots)

	events := make([]service.Event, 0, len(attendances))
	for _, a := range attendances {
		ev := service.Event{ID: a.AttendanceID, Date: a.AttendanceDate}
		if a.SermonSession != nil {
			ev.SessionName = a.SermonSession.SermonSessionName
		}
		events = append(events, ev)
	}
	cov := service.MatchCoverage(slots, events)

	resp := dto.BuildHistoryResponse(dto.CongregationRefResponse{
		ID:   congregation.CongregationID,
		Name: congregation.CongregationName,
	}, buckets, cov)

	return helper.Success(c, resp)
}
