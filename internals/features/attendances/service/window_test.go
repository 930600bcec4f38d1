package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gerejaku_backend/internals/constants"
)

func jakartaDate(y int, m time.Month, d, hh, mm int) time.Time {
	return time.Date(y, m, d, hh, mm, 0, 0, constants.Jakarta)
}

func TestBuildWindowOnlySundaysInRange(t *testing.T) {
	cases := []struct {
		name   string
		anchor time.Time
		months int
	}{
		{"akhir maret 2024", jakartaDate(2024, time.March, 31, 10, 0), 6},
		{"tengah minggu", jakartaDate(2025, time.July, 16, 23, 59), 6},
		{"satu bulan", jakartaDate(2024, time.February, 29, 0, 0), 1},
		{"dua belas bulan", jakartaDate(2023, time.January, 2, 6, 30), 12},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			slots, err := BuildWindow(tc.anchor, tc.months)
			require.NoError(t, err)
			require.NotEmpty(t, slots)

			start := tc.anchor.In(constants.Jakarta).AddDate(0, -tc.months, 0)
			for i, s := range slots {
				assert.Equal(t, time.Sunday, s.Weekday())
				assert.False(t, s.Before(dayOf(start)), "slot %v sebelum awal rentang", s)
				assert.False(t, s.After(tc.anchor.In(constants.Jakarta)), "slot %v setelah anchor", s)
				if i > 0 {
					assert.True(t, slots[i-1].Before(s), "slot tidak urut naik")
				}
			}
		})
	}
}

func TestBuildWindowMarch2024Example(t *testing.T) {
	// 31 Maret 2024 adalah hari Minggu; rentang 6 bulan mundur sampai
	// 30 September 2023 (Sabtu), jadi September tidak menyumbang slot.
	slots, err := BuildWindow(jakartaDate(2024, time.March, 31, 8, 0), 6)
	require.NoError(t, err)

	assert.Len(t, slots, 27)
	assert.Equal(t, jakartaDate(2023, time.October, 1, 0, 0), slots[0])
	assert.Equal(t, jakartaDate(2024, time.March, 31, 0, 0), slots[len(slots)-1])

	buckets := BucketByMonth(slots)
	require.Len(t, buckets, 6)
	assert.Equal(t, "Oktober 2023", buckets[0].Label)
	assert.Equal(t, "Maret 2024", buckets[5].Label)
	assert.Len(t, buckets[0].Slots, 5)
	assert.Len(t, buckets[5].Slots, 5)
}

func TestBuildWindowInvalidInput(t *testing.T) {
	_, err := BuildWindow(time.Time{}, 6)
	assert.ErrorIs(t, err, ErrInvalidAnchor)

	_, err = BuildWindow(jakartaDate(2024, time.March, 31, 8, 0), 0)
	assert.ErrorIs(t, err, ErrInvalidAnchor)

	_, err = BuildWindow(jakartaDate(2024, time.March, 31, 8, 0), -3)
	assert.ErrorIs(t, err, ErrInvalidAnchor)
}

func TestBucketByMonthIsStable(t *testing.T) {
	slots, err := BuildWindow(jakartaDate(2025, time.January, 19, 12, 0), 6)
	require.NoError(t, err)

	buckets := BucketByMonth(slots)
	var flat []time.Time
	for _, b := range buckets {
		flat = append(flat, b.Slots...)
	}
	assert.Equal(t, slots, flat, "gabungan bucket harus = urutan slot asli")

	seen := map[string]bool{}
	for _, b := range buckets {
		assert.False(t, seen[b.Label], "label bucket %q muncul dua kali", b.Label)
		seen[b.Label] = true
	}
}

func TestMatchCoverageSameCalendarDay(t *testing.T) {
	slot := jakartaDate(2024, time.February, 4, 0, 0)
	ev := Event{ID: uuid.New(), Date: jakartaDate(2024, time.February, 4, 8, 15), SessionName: "Session 1"}

	cov := MatchCoverage([]time.Time{slot}, []Event{ev})
	require.Len(t, cov.Slots, 1)
	assert.True(t, cov.Slots[0].Covered, "jam 08:15 di hari yang sama tetap match")
	require.NotNil(t, cov.Slots[0].Event)
	assert.Equal(t, ev.ID, cov.Slots[0].Event.ID)
	assert.Equal(t, 100, cov.Percent)
}

func TestMatchCoverageDifferentDayNeverMatches(t *testing.T) {
	slot := jakartaDate(2024, time.February, 4, 0, 0)
	// kurang dari 24 jam dari slot, tapi Sabtu malam
	ev := Event{ID: uuid.New(), Date: jakartaDate(2024, time.February, 3, 23, 30)}

	cov := MatchCoverage([]time.Time{slot}, []Event{ev})
	assert.False(t, cov.Slots[0].Covered)
	assert.Equal(t, 0, cov.Percent)
}

func TestMatchCoverageDuplicateEventsFirstWins(t *testing.T) {
	slot := jakartaDate(2024, time.February, 4, 0, 0)
	first := Event{ID: uuid.New(), Date: jakartaDate(2024, time.February, 4, 7, 0), SessionName: "Session 1"}
	second := Event{ID: uuid.New(), Date: jakartaDate(2024, time.February, 4, 10, 0), SessionName: "Session 2"}

	cov := MatchCoverage([]time.Time{slot}, []Event{first, second})
	require.True(t, cov.Slots[0].Covered)
	assert.Equal(t, first.ID, cov.Slots[0].Event.ID)
	assert.Equal(t, 1, cov.Matched, "satu slot hanya dihitung sekali")
}

func TestMatchCoverageZeroSlots(t *testing.T) {
	cov := MatchCoverage(nil, []Event{{ID: uuid.New(), Date: jakartaDate(2024, time.February, 4, 7, 0)}})
	assert.Equal(t, 0, cov.Total)
	assert.Equal(t, 0, cov.Percent, "total nol tidak boleh menghasilkan NaN/panic")
}

func TestMatchCoverageIdempotent(t *testing.T) {
	slots, err := BuildWindow(jakartaDate(2024, time.March, 31, 8, 0), 6)
	require.NoError(t, err)
	events := []Event{
		{ID: uuid.New(), Date: jakartaDate(2024, time.March, 3, 6, 45)},
		{ID: uuid.New(), Date: jakartaDate(2024, time.March, 10, 9, 30)},
	}

	a := MatchCoverage(slots, events)
	b := MatchCoverage(slots, events)
	assert.Equal(t, a, b)
	assert.GreaterOrEqual(t, a.Percent, 0)
	assert.LessOrEqual(t, a.Percent, 100)
}

func TestMonthLabels(t *testing.T) {
	assert.Equal(t, "Maret 2024", MonthYearLabel(jakartaDate(2024, time.March, 31, 0, 0)))
	assert.Equal(t, "Agustus 2023", MonthYearLabel(jakartaDate(2023, time.August, 6, 0, 0)))
	assert.Equal(t, "4 Feb", DayMonthLabel(jakartaDate(2024, time.February, 4, 0, 0)))
}
