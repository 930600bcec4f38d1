package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// AlbumModel adalah satu album dokumentasi kegiatan.
type AlbumModel struct {
	AlbumID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:album_id" json:"album_id"`

	AlbumTitle       string  `gorm:"not null;column:album_title" json:"album_title"`
	AlbumDescription *string `gorm:"column:album_description" json:"album_description,omitempty"`

	Images []AlbumImageModel `gorm:"foreignKey:AlbumImageAlbumID;references:AlbumID" json:"images,omitempty"`

	AlbumCreatedAt time.Time      `gorm:"column:album_created_at;autoCreateTime" json:"album_created_at"`
	AlbumUpdatedAt *time.Time     `gorm:"column:album_updated_at;autoUpdateTime" json:"album_updated_at,omitempty"`
	AlbumDeletedAt gorm.DeletedAt `gorm:"column:album_deleted_at;index" json:"album_deleted_at,omitempty"`
}

func (AlbumModel) TableName() string { return "albums" }

// AlbumImageModel menyimpan URL publik hasil upload + metadata
// (dimensi, ukuran, nama asli) sebagai JSON.
type AlbumImageModel struct {
	AlbumImageID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:album_image_id" json:"album_image_id"`

	AlbumImageAlbumID uuid.UUID      `gorm:"type:uuid;not null;index;column:album_image_album_id" json:"album_image_album_id"`
	AlbumImageURL     string         `gorm:"not null;column:album_image_url" json:"album_image_url"`
	AlbumImageMeta    datatypes.JSON `gorm:"column:album_image_meta" json:"album_image_meta,omitempty"`

	AlbumImageCreatedAt time.Time      `gorm:"column:album_image_created_at;autoCreateTime" json:"album_image_created_at"`
	AlbumImageDeletedAt gorm.DeletedAt `gorm:"column:album_image_deleted_at;index" json:"album_image_deleted_at,omitempty"`
}

func (AlbumImageModel) TableName() string { return "album_images" }
