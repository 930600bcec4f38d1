package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"gerejaku_backend/internals/constants"
)

func TestCheckRecordingWindow(t *testing.T) {
	cases := []struct {
		name    string
		now     time.Time
		wantErr error
	}{
		{"minggu jam 6 pagi", jakartaDate(2024, time.March, 31, 6, 0), nil},
		{"minggu jam 8:59", jakartaDate(2024, time.March, 31, 8, 59), nil},
		{"minggu jam 11:59", jakartaDate(2024, time.March, 31, 11, 59), nil},
		{"minggu jam 5:59", jakartaDate(2024, time.March, 31, 5, 59), ErrBelumJamBuka},
		{"minggu jam 12 siang", jakartaDate(2024, time.March, 31, 12, 0), ErrDiLuarJamKebaktian},
		{"sabtu jam 7 pagi", jakartaDate(2024, time.March, 30, 7, 0), ErrBukanHariMinggu},
		{"senin jam 9 pagi", jakartaDate(2024, time.April, 1, 9, 0), ErrBukanHariMinggu},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := CheckRecordingWindow(tc.now)
			if tc.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.wantErr)
			}
		})
	}
}

func TestResolveSermonSession(t *testing.T) {
	cases := []struct {
		name     string
		now      time.Time
		wantName string
		wantOK   bool
	}{
		{"jam 6 → KU-1", jakartaDate(2024, time.March, 31, 6, 0), constants.SermonSession1Name, true},
		{"jam 8:59 → KU-1", jakartaDate(2024, time.March, 31, 8, 59), constants.SermonSession1Name, true},
		{"jam 9 → KU-2", jakartaDate(2024, time.March, 31, 9, 0), constants.SermonSession2Name, true},
		{"jam 11:59 → KU-2", jakartaDate(2024, time.March, 31, 11, 59), constants.SermonSession2Name, true},
		{"jam 5 → tidak ada sesi", jakartaDate(2024, time.March, 31, 5, 0), "", false},
		{"jam 13 → tidak ada sesi", jakartaDate(2024, time.March, 31, 13, 0), "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			name, ok := ResolveSermonSession(tc.now)
			assert.Equal(t, tc.wantOK, ok)
			assert.Equal(t, tc.wantName, name)
		})
	}
}

func TestResolveSermonSessionRespectsTimezone(t *testing.T) {
	// 31 Maret 2024 01:30 UTC = 08:30 WIB → masih KU-1
	utc := time.Date(2024, time.March, 31, 1, 30, 0, 0, time.UTC)
	name, ok := ResolveSermonSession(utc)
	assert.True(t, ok)
	assert.Equal(t, constants.SermonSession1Name, name)

	assert.NoError(t, CheckRecordingWindow(utc))
}
