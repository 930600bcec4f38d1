// internals/features/attendances/service/gate.go
package service

import (
	"errors"
	"time"

	"gerejaku_backend/internals/constants"
)

var (
	ErrBukanHariMinggu    = errors.New("Absensi hanya dapat direkam pada hari Minggu")
	ErrBelumJamBuka       = errors.New("Absensi hanya dapat direkam setelah jam 6 pagi")
	ErrDiLuarJamKebaktian = errors.New("Absensi hanya dapat direkam selama jam kebaktian")
)

// CheckRecordingWindow adalah guard sebelum menyentuh DB:
// hanya hari Minggu jam 06:00–11:59 WIB.
func CheckRecordingWindow(now time.Time) error {
	now = now.In(constants.Jakarta)
	if now.Weekday() != time.Sunday {
		return ErrBukanHariMinggu
	}
	if now.Hour() < constants.RecordingOpenHour {
		return ErrBelumJamBuka
	}
	if now.Hour() >= constants.RecordingCloseHour {
		return ErrDiLuarJamKebaktian
	}
	return nil
}

// ResolveSermonSession memetakan jam ke sesi kebaktian aktif:
// 06–08 → KU-1 ("Session 1"), 09–11 → KU-2 ("Session 2").
func ResolveSermonSession(now time.Time) (string, bool) {
	h := now.In(constants.Jakarta).Hour()
	switch {
	case h >= constants.RecordingOpenHour && h < constants.SessionSwitchHour:
		return constants.SermonSession1Name, true
	case h >= constants.SessionSwitchHour && h < constants.RecordingCloseHour:
		return constants.SermonSession2Name, true
	}
	return "", false
}
