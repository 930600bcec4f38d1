package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	congregationModel "gerejaku_backend/internals/features/congregations/model"
)

// AttendanceModel adalah satu catatan kehadiran jemaat pada satu
// kebaktian. Setelah dibuat tidak pernah diubah, hanya bisa dihapus.
type AttendanceModel struct {
	AttendanceID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:attendance_id" json:"attendance_id"`

	AttendanceDate            time.Time `gorm:"not null;index;column:attendance_date" json:"attendance_date"`
	AttendanceCongregationID  uuid.UUID `gorm:"type:uuid;not null;index;column:attendance_congregation_id" json:"attendance_congregation_id"`
	AttendanceSermonSessionID uuid.UUID `gorm:"type:uuid;not null;column:attendance_sermon_session_id" json:"attendance_sermon_session_id"`

	Congregation  *congregationModel.CongregationModel `gorm:"foreignKey:AttendanceCongregationID;references:CongregationID" json:"congregation,omitempty"`
	SermonSession *SermonSessionModel                  `gorm:"foreignKey:AttendanceSermonSessionID;references:SermonSessionID" json:"sermon_session,omitempty"`

	AttendanceCreatedAt time.Time      `gorm:"column:attendance_created_at;autoCreateTime" json:"attendance_created_at"`
	AttendanceDeletedAt gorm.DeletedAt `gorm:"column:attendance_deleted_at;index" json:"attendance_deleted_at,omitempty"`
}

func (AttendanceModel) TableName() string { return "attendances" }
