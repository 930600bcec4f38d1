// internals/features/attendances/service/roster.go
package service

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

// Candidate adalah jemaat yang bisa dipilih dari daftar
// (endpoint get-congregations).
type Candidate struct {
	ID                 uuid.UUID
	Name               string
	HasAttendanceToday bool
}

// Attendee adalah satu entri di working set yang akan dikirim
// sebagai batch create.
type Attendee struct {
	CongregationID    *uuid.UUID
	Name              string
	IsNewCongregation bool
}

type SearchResult struct {
	Matches []Candidate
	More    int // jumlah hasil lain yang tidak ikut ditampilkan
}

const maxSearchResults = 5

var (
	ErrSudahHadirHariIni = errors.New("Jemaat sudah tercatat hadir hari ini")
	ErrNamaKosong        = errors.New("Nama jemaat tidak boleh kosong")
	ErrBelumAdaJemaat    = errors.New("Pilih minimal satu jemaat")
)

// Roster memegang working set satu batch absensi: mencegah duplikat
// pilihan dan membedakan jemaat lama vs jemaat baru.
type Roster struct {
	pool     []Candidate
	selected []Attendee
}

func NewRoster(pool []Candidate) *Roster {
	return &Roster{pool: pool}
}

// Search: substring case-insensitive atas nama, maksimal 5 hasil
// plus hitungan sisanya supaya render tetap murah.
func (r *Roster) Search(query string) SearchResult {
	q := strings.ToLower(strings.TrimSpace(query))
	var res SearchResult
	for _, c := range r.pool {
		if !strings.Contains(strings.ToLower(c.Name), q) {
			continue
		}
		if len(res.Matches) < maxSearchResults {
			res.Matches = append(res.Matches, c)
		} else {
			res.More++
		}
	}
	return res
}

// SelectExisting menolak jemaat yang sudah hadir hari ini; pilihan
// ganda (id sama) jadi no-op tanpa error, set tidak berubah.
func (r *Roster) SelectExisting(c Candidate) error {
	if c.HasAttendanceToday {
		return ErrSudahHadirHariIni
	}
	for _, a := range r.selected {
		if a.CongregationID != nil && *a.CongregationID == c.ID {
			return nil
		}
	}
	id := c.ID
	r.selected = append(r.selected, Attendee{CongregationID: &id, Name: c.Name})
	return nil
}

// AddNew menambah jemaat baru hanya dengan nama. Tidak ada cek nama
// kembar terhadap jemaat yang sudah terdaftar: dua orang boleh
// bernama sama.
func (r *Roster) AddNew(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNamaKosong
	}
	r.selected = append(r.selected, Attendee{Name: name, IsNewCongregation: true})
	return nil
}

// Remove membuang satu entri berdasarkan posisi; indeks di luar
// rentang diabaikan.
func (r *Roster) Remove(i int) {
	if i < 0 || i >= len(r.selected) {
		return
	}
	r.selected = append(r.selected[:i], r.selected[i+1:]...)
}

func (r *Roster) Len() int { return len(r.selected) }

// Attendees mengembalikan salinan working set untuk dikirim sebagai
// satu batch. Set kosong → ErrBelumAdaJemaat.
func (r *Roster) Attendees() ([]Attendee, error) {
	if len(r.selected) == 0 {
		return nil, ErrBelumAdaJemaat
	}
	out := make([]Attendee, len(r.selected))
	copy(out, r.selected)
	return out, nil
}
