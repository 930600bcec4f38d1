// internals/features/attendances/service/window.go
package service

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"gerejaku_backend/internals/constants"
)

// Event adalah potongan data kehadiran yang dibutuhkan matcher,
// supaya paket ini tetap murni (tanpa gorm / model).
type Event struct {
	ID          uuid.UUID
	Date        time.Time
	SessionName string
}

var ErrInvalidAnchor = errors.New("rentang tanggal tidak valid")

// BuildWindow menghasilkan semua hari Minggu dalam rentang
// [anchor - months bulan, anchor], urut naik, dinormalisasi ke
// tengah malam zona Jakarta. Anchor nol atau months <= 0 → error.
func BuildWindow(anchor time.Time, months int) ([]time.Time, error) {
	if anchor.IsZero() || months <= 0 {
		return nil, ErrInvalidAnchor
	}
	end := dayOf(anchor.In(constants.Jakarta))
	start := dayOf(anchor.In(constants.Jakarta).AddDate(0, -months, 0))
	if start.After(end) {
		return nil, ErrInvalidAnchor
	}

	var sundays []time.Time
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if d.Weekday() == time.Sunday {
			sundays = append(sundays, d)
		}
	}
	return sundays, nil
}

type MonthBucket struct {
	Label string
	Slots []time.Time
}

// BucketByMonth mengelompokkan slot berdasarkan label "MMMM yyyy"
// bahasa Indonesia. Urutan bucket mengikuti kemunculan pertama,
// jadi gabungan seluruh bucket = urutan slot aslinya.
func BucketByMonth(slots []time.Time) []MonthBucket {
	var buckets []MonthBucket
	for _, s := range slots {
		label := MonthYearLabel(s)
		if n := len(buckets); n > 0 && buckets[n-1].Label == label {
			buckets[n-1].Slots = append(buckets[n-1].Slots, s)
			continue
		}
		buckets = append(buckets, MonthBucket{Label: label, Slots: []time.Time{s}})
	}
	return buckets
}

type SlotMatch struct {
	Date    time.Time
	Covered bool
	Event   *Event
}

type Coverage struct {
	Slots   []SlotMatch
	Matched int
	Total   int
	Percent int
}

// MatchCoverage menandai tiap slot tercakup bila ada event pada hari
// kalender yang sama (zona Jakarta), jam berapa pun. Kalau ada lebih
// dari satu event di hari yang sama, event pertama menurut urutan
// input yang dipakai. Total nol → Percent 0, bukan NaN.
func MatchCoverage(slots []time.Time, events []Event) Coverage {
	cov := Coverage{Total: len(slots)}
	for _, slot := range slots {
		m := SlotMatch{Date: slot}
		for i := range events {
			if SameCalendarDay(events[i].Date, slot) {
				ev := events[i]
				m.Covered = true
				m.Event = &ev
				cov.Matched++
				break
			}
		}
		cov.Slots = append(cov.Slots, m)
	}
	if cov.Total > 0 {
		cov.Percent = int(math.Round(float64(cov.Matched) / float64(cov.Total) * 100))
	}
	return cov
}

// SameCalendarDay membandingkan tanggal kalender (bukan timestamp)
// setelah keduanya dibawa ke zona Jakarta.
func SameCalendarDay(a, b time.Time) bool {
	a, b = a.In(constants.Jakarta), b.In(constants.Jakarta)
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func dayOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

var indonesianMonths = [...]string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

var indonesianShortMonths = [...]string{
	"Jan", "Feb", "Mar", "Apr", "Mei", "Jun",
	"Jul", "Agu", "Sep", "Okt", "Nov", "Des",
}

// MonthYearLabel → "Maret 2024"
func MonthYearLabel(t time.Time) string {
	t = t.In(constants.Jakarta)
	return fmt.Sprintf("%s %d", indonesianMonths[int(t.Month())-1], t.Year())
}

// DayMonthLabel → "31 Mar"
func DayMonthLabel(t time.Time) string {
	t = t.In(constants.Jakarta)
	return fmt.Sprintf("%d %s", t.Day(), indonesianShortMonths[int(t.Month())-1])
}
