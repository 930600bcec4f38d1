package dto

import (
	"time"

	"github.com/google/uuid"

	"gerejaku_backend/internals/features/albums/model"
)

type AlbumImageResponse struct {
	ID        uuid.UUID `json:"id"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"createdAt"`
}

type AlbumResponse struct {
	ID          uuid.UUID            `json:"id"`
	Title       string               `json:"title"`
	Description *string              `json:"description"`
	Images      []AlbumImageResponse `json:"images"`
	CreatedAt   time.Time            `json:"createdAt"`
}

func ToAlbumResponse(m *model.AlbumModel) *AlbumResponse {
	images := make([]AlbumImageResponse, 0, len(m.Images))
	for _, img := range m.Images {
		images = append(images, AlbumImageResponse{
			ID:        img.AlbumImageID,
			URL:       img.AlbumImageURL,
			CreatedAt: img.AlbumImageCreatedAt,
		})
	}
	return &AlbumResponse{
		ID:          m.AlbumID,
		Title:       m.AlbumTitle,
		Description: m.AlbumDescription,
		Images:      images,
		CreatedAt:   m.AlbumCreatedAt,
	}
}

func ToAlbumResponseList(models []model.AlbumModel) []AlbumResponse {
	result := make([]AlbumResponse, 0, len(models))
	for i := range models {
		result = append(result, *ToAlbumResponse(&models[i]))
	}
	return result
}
