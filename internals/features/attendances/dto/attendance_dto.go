package dto

import (
	"time"

	"github.com/google/uuid"

	"gerejaku_backend/internals/features/attendances/model"
	"gerejaku_backend/internals/features/attendances/service"
)

// Field JSON camelCase mengikuti kontrak frontend backoffice.

/* ===================== CREATE (batch) ===================== */

type AttendeeRequest struct {
	CongregationID    *string `json:"congregationId" validate:"omitempty,uuid"`
	Name              string  `json:"name" validate:"required"`
	IsNewCongregation bool    `json:"isNewCongregation"`
}

type CreateAttendanceRequest struct {
	Attendees []AttendeeRequest `json:"attendees" validate:"required,min=1,dive"`
}

/* ===================== RESPONSES ===================== */

type SermonSessionResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type CongregationRefResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type AttendanceResponse struct {
	ID            uuid.UUID               `json:"id"`
	Date          time.Time               `json:"date"`
	Congregation  CongregationRefResponse `json:"congregation"`
	SermonSession SermonSessionResponse   `json:"sermonSession"`
}

func FromAttendanceModel(m *model.AttendanceModel) AttendanceResponse {
	resp := AttendanceResponse{
		ID:   m.AttendanceID,
		Date: m.AttendanceDate,
	}
	if m.Congregation != nil {
		resp.Congregation = CongregationRefResponse{
			ID:   m.Congregation.CongregationID,
			Name: m.Congregation.CongregationName,
		}
	}
	if m.SermonSession != nil {
		resp.SermonSession = SermonSessionResponse{
			ID:   m.SermonSession.SermonSessionID,
			Name: m.SermonSession.SermonSessionName,
		}
	}
	return resp
}

func FromAttendanceModelList(models []model.AttendanceModel) []AttendanceResponse {
	result := make([]AttendanceResponse, 0, len(models))
	for i := range models {
		result = append(result, FromAttendanceModel(&models[i]))
	}
	return result
}

/* ===================== RIWAYAT (kalender 6 bulan) ===================== */

type HistorySlotResponse struct {
	Date          time.Time `json:"date"`
	Day           int       `json:"day"`
	Label         string    `json:"label"` // mis. "4 Feb"
	Covered       bool      `json:"covered"`
	SermonSession *string   `json:"sermonSession,omitempty"`
}

type HistoryMonthResponse struct {
	Month string                `json:"month"` // mis. "Maret 2024"
	Slots []HistorySlotResponse `json:"slots"`
}

type AttendanceHistoryResponse struct {
	Congregation    CongregationRefResponse `json:"congregation"`
	TotalSlots      int                     `json:"totalSlots"`
	MatchedSlots    int                     `json:"matchedSlots"`
	CoveragePercent int                     `json:"coveragePercent"`
	Months          []HistoryMonthResponse  `json:"months"`
}

// BuildHistoryResponse merangkai bucket bulan + hasil matcher jadi
// payload riwayat. Urutan slot di dalam bucket mengikuti urutan
// kalender yang sama dengan cov.Slots.
func BuildHistoryResponse(congregation CongregationRefResponse, buckets []service.MonthBucket, cov service.Coverage) AttendanceHistoryResponse {
	matchByDay := make(map[time.Time]service.SlotMatch, len(cov.Slots))
	for _, m := range cov.Slots {
		matchByDay[m.Date] = m
	}

	months := make([]HistoryMonthResponse, 0, len(buckets))
	for _, b := range buckets {
		month := HistoryMonthResponse{Month: b.Label, Slots: make([]HistorySlotResponse, 0, len(b.Slots))}
		for _, s := range b.Slots {
			slot := HistorySlotResponse{
				Date:  s,
				Day:   s.Day(),
				Label: service.DayMonthLabel(s),
			}
			if m, ok := matchByDay[s]; ok && m.Covered {
				slot.Covered = true
				name := m.Event.SessionName
				slot.SermonSession = &name
			}
			month.Slots = append(month.Slots, slot)
		}
		months = append(months, month)
	}

	return AttendanceHistoryResponse{
		Congregation:    congregation,
		TotalSlots:      cov.Total,
		MatchedSlots:    cov.Matched,
		CoveragePercent: cov.Percent,
		Months:          months,
	}
}
