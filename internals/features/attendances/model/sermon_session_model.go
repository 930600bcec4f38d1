package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"gerejaku_backend/internals/constants"
)

// SermonSessionModel adalah sesi kebaktian bernama pada hari Minggu
// (KU-1 / KU-2). Barisnya di-seed saat aplikasi start.
type SermonSessionModel struct {
	SermonSessionID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:sermon_session_id" json:"sermon_session_id"`

	SermonSessionName  string `gorm:"uniqueIndex;not null;column:sermon_session_name" json:"sermon_session_name"`
	SermonSessionLabel string `gorm:"not null;column:sermon_session_label" json:"sermon_session_label"`

	SermonSessionCreatedAt time.Time `gorm:"column:sermon_session_created_at;autoCreateTime" json:"sermon_session_created_at"`
}

func (SermonSessionModel) TableName() string { return "sermon_sessions" }

// SeedSermonSessions memastikan KU-1 & KU-2 ada (idempotent).
func SeedSermonSessions(db *gorm.DB) error {
	sessions := []SermonSessionModel{
		{SermonSessionName: constants.SermonSession1Name, SermonSessionLabel: constants.SermonSession1Label},
		{SermonSessionName: constants.SermonSession2Name, SermonSessionLabel: constants.SermonSession2Label},
	}
	for _, s := range sessions {
		var existing SermonSessionModel
		err := db.Where("sermon_session_name = ?", s.SermonSessionName).First(&existing).Error
		if err == nil {
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return err
		}
		if err := db.Create(&s).Error; err != nil {
			return err
		}
	}
	return nil
}
