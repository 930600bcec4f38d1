package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ReflectionStatusDraft     = "DRAFT"
	ReflectionStatusPublished = "PUBLISHED"
)

// ReflectionModel adalah renungan harian. Konten berupa HTML hasil
// editor rich-text di backoffice.
type ReflectionModel struct {
	ReflectionID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:reflection_id" json:"reflection_id"`

	ReflectionTitle       string    `gorm:"not null;column:reflection_title" json:"reflection_title"`
	ReflectionContent     string    `gorm:"type:text;not null;column:reflection_content" json:"reflection_content"`
	ReflectionStatus      string    `gorm:"not null;default:DRAFT;column:reflection_status" json:"reflection_status"`
	ReflectionPublishDate time.Time `gorm:"not null;index;column:reflection_publish_date" json:"reflection_publish_date"`

	ReflectionCreatedAt time.Time      `gorm:"column:reflection_created_at;autoCreateTime" json:"reflection_created_at"`
	ReflectionUpdatedAt *time.Time     `gorm:"column:reflection_updated_at;autoUpdateTime" json:"reflection_updated_at,omitempty"`
	ReflectionDeletedAt gorm.DeletedAt `gorm:"column:reflection_deleted_at;index" json:"reflection_deleted_at,omitempty"`
}

func (ReflectionModel) TableName() string { return "reflections" }
