package dto

import (
	"time"

	"github.com/google/uuid"

	"gerejaku_backend/internals/features/reflections/model"
)

type ReflectionRequest struct {
	Title       string    `json:"title" validate:"required"`
	Content     string    `json:"content" validate:"required"`
	Status      string    `json:"status" validate:"required,oneof=DRAFT PUBLISHED"`
	PublishDate time.Time `json:"publishDate" validate:"required"`
}

type ReflectionResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	Status      string    `json:"status"`
	PublishDate time.Time `json:"publishDate"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (r *ReflectionRequest) ToModel() *model.ReflectionModel {
	return &model.ReflectionModel{
		ReflectionTitle:       r.Title,
		ReflectionContent:     r.Content,
		ReflectionStatus:      r.Status,
		ReflectionPublishDate: r.PublishDate,
	}
}

func ToReflectionResponse(m *model.ReflectionModel) *ReflectionResponse {
	return &ReflectionResponse{
		ID:          m.ReflectionID,
		Title:       m.ReflectionTitle,
		Content:     m.ReflectionContent,
		Status:      m.ReflectionStatus,
		PublishDate: m.ReflectionPublishDate,
		CreatedAt:   m.ReflectionCreatedAt,
	}
}

func ToReflectionResponseList(models []model.ReflectionModel) []ReflectionResponse {
	result := make([]ReflectionResponse, 0, len(models))
	for i := range models {
		result = append(result, *ToReflectionResponse(&models[i]))
	}
	return result
}
