package dto

import (
	"time"

	"github.com/google/uuid"

	"gerejaku_backend/internals/features/congregations/model"
)

// Field JSON camelCase mengikuti kontrak frontend backoffice.

type CongregationRequest struct {
	Name           string  `json:"name" validate:"required"`
	WhatsappNumber *string `json:"whatsappNumber" validate:"omitempty,max=20"`
	Address        *string `json:"address" validate:"omitempty,max=255"`
}

type CongregationResponse struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	WhatsappNumber *string   `json:"whatsappNumber"`
	Address        *string   `json:"address"`
	CreatedAt      time.Time `json:"createdAt"`
}

// Untuk picker absensi (get-congregations)
type CongregationPickerResponse struct {
	ID                 uuid.UUID `json:"id"`
	Name               string    `json:"name"`
	HasAttendanceToday bool      `json:"hasAttendanceToday"`
}

// Riwayat kehadiran yang menempel di detail jemaat
type CongregationAttendanceResponse struct {
	ID            uuid.UUID             `json:"id"`
	Date          time.Time             `json:"date"`
	SermonSession SermonSessionResponse `json:"sermonSession"`
}

type SermonSessionResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type CongregationDetailResponse struct {
	ID             uuid.UUID                        `json:"id"`
	Name           string                           `json:"name"`
	WhatsappNumber *string                          `json:"whatsappNumber"`
	Address        *string                          `json:"address"`
	Attendances    []CongregationAttendanceResponse `json:"attendances"`
}

// Convert request → model
func (r *CongregationRequest) ToModel() *model.CongregationModel {
	return &model.CongregationModel{
		CongregationName:           r.Name,
		CongregationWhatsappNumber: r.WhatsappNumber,
		CongregationAddress:        r.Address,
	}
}

// Convert model → response
func ToCongregationResponse(m *model.CongregationModel) *CongregationResponse {
	return &CongregationResponse{
		ID:             m.CongregationID,
		Name:           m.CongregationName,
		WhatsappNumber: m.CongregationWhatsappNumber,
		Address:        m.CongregationAddress,
		CreatedAt:      m.CongregationCreatedAt,
	}
}

// Convert slice model → slice response
func ToCongregationResponseList(models []model.CongregationModel) []CongregationResponse {
	result := make([]CongregationResponse, 0, len(models))
	for i := range models {
		result = append(result, *ToCongregationResponse(&models[i]))
	}
	return result
}
