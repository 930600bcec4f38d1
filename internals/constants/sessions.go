package constants

import "time"

// Dua kebaktian umum setiap hari Minggu.
// KU-1 jam 06:00–08:59, KU-2 jam 09:00–11:59 WIB.
const (
	SermonSession1Name = "Session 1"
	SermonSession2Name = "Session 2"

	SermonSession1Label = "Kebaktian Umum 1"
	SermonSession2Label = "Kebaktian Umum 2"

	RecordingOpenHour  = 6  // absensi dibuka jam 6 pagi
	SessionSwitchHour  = 9  // ganti ke KU-2
	RecordingCloseHour = 12 // tutup setelah KU-2 selesai

	AttendanceWindowMonths = 6 // rentang riwayat kehadiran
)

// Jakarta adalah zona waktu acuan seluruh perhitungan hari/jam.
// WIB tidak punya DST, jadi fallback FixedZone tetap benar.
var Jakarta = func() *time.Location {
	loc, err := time.LoadLocation("Asia/Jakarta")
	if err != nil {
		return time.FixedZone("WIB", 7*60*60)
	}
	return loc
}()
