package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CongregationModel struct {
	CongregationID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:congregation_id" json:"congregation_id"`

	CongregationName           string  `gorm:"not null;column:congregation_name" json:"congregation_name"`
	CongregationWhatsappNumber *string `gorm:"column:congregation_whatsapp_number" json:"congregation_whatsapp_number,omitempty"`
	CongregationAddress        *string `gorm:"column:congregation_address" json:"congregation_address,omitempty"`

	CongregationCreatedAt time.Time      `gorm:"column:congregation_created_at;autoCreateTime" json:"congregation_created_at"`
	CongregationUpdatedAt *time.Time     `gorm:"column:congregation_updated_at;autoUpdateTime" json:"congregation_updated_at,omitempty"`
	CongregationDeletedAt gorm.DeletedAt `gorm:"column:congregation_deleted_at;index" json:"congregation_deleted_at,omitempty"`
}

func (CongregationModel) TableName() string { return "congregations" }
