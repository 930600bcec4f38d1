package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func samplePool() []Candidate {
	return []Candidate{
		{ID: uuid.New(), Name: "Budi Santoso"},
		{ID: uuid.New(), Name: "Siti Rahayu"},
		{ID: uuid.New(), Name: "Andreas Wijaya"},
		{ID: uuid.New(), Name: "Maria Magdalena"},
		{ID: uuid.New(), Name: "Yohanes Budiman"},
		{ID: uuid.New(), Name: "Martha Budiarti"},
		{ID: uuid.New(), Name: "Petrus Simanjuntak"},
	}
}

func TestRosterSearchCaseInsensitiveSubstring(t *testing.T) {
	r := NewRoster(samplePool())

	res := r.Search("bUdI")
	require.Len(t, res.Matches, 3)
	assert.Equal(t, 0, res.More)
	assert.Equal(t, "Budi Santoso", res.Matches[0].Name)
}

func TestRosterSearchCapsAtFive(t *testing.T) {
	r := NewRoster(samplePool())

	res := r.Search("") // query kosong cocok dengan semua
	assert.Len(t, res.Matches, 5)
	assert.Equal(t, 2, res.More)
}

func TestRosterSelectExistingNoDuplicates(t *testing.T) {
	pool := samplePool()
	r := NewRoster(pool)

	require.NoError(t, r.SelectExisting(pool[0]))
	require.Equal(t, 1, r.Len())

	// pilih lagi orang yang sama → no-op tanpa error
	require.NoError(t, r.SelectExisting(pool[0]))
	assert.Equal(t, 1, r.Len())
}

func TestRosterSelectExistingRejectsPresentToday(t *testing.T) {
	r := NewRoster(nil)
	c := Candidate{ID: uuid.New(), Name: "Budi Santoso", HasAttendanceToday: true}

	err := r.SelectExisting(c)
	assert.ErrorIs(t, err, ErrSudahHadirHariIni)
	assert.Equal(t, 0, r.Len(), "working set tidak boleh berubah saat ditolak")
}

func TestRosterAddNew(t *testing.T) {
	r := NewRoster(nil)

	require.NoError(t, r.AddNew("  Tamu Baru  "))
	attendees, err := r.Attendees()
	require.NoError(t, err)
	require.Len(t, attendees, 1)
	assert.Equal(t, "Tamu Baru", attendees[0].Name)
	assert.True(t, attendees[0].IsNewCongregation)
	assert.Nil(t, attendees[0].CongregationID)

	assert.ErrorIs(t, r.AddNew("   "), ErrNamaKosong)

	// nama kembar dengan jemaat lama sengaja tidak ditolak
	require.NoError(t, r.AddNew("Tamu Baru"))
	assert.Equal(t, 2, r.Len())
}

func TestRosterRemoveByIndex(t *testing.T) {
	pool := samplePool()
	r := NewRoster(pool)
	require.NoError(t, r.SelectExisting(pool[0]))
	require.NoError(t, r.SelectExisting(pool[1]))
	require.NoError(t, r.AddNew("Tamu"))

	r.Remove(1)
	attendees, err := r.Attendees()
	require.NoError(t, err)
	require.Len(t, attendees, 2)
	assert.Equal(t, pool[0].Name, attendees[0].Name)
	assert.Equal(t, "Tamu", attendees[1].Name)

	// indeks di luar rentang diabaikan
	r.Remove(-1)
	r.Remove(99)
	assert.Equal(t, 2, r.Len())
}

func TestRosterAttendeesEmptySet(t *testing.T) {
	r := NewRoster(nil)
	_, err := r.Attendees()
	assert.ErrorIs(t, err, ErrBelumAdaJemaat)
}

func TestRosterAttendeesReturnsCopy(t *testing.T) {
	pool := samplePool()
	r := NewRoster(pool)
	require.NoError(t, r.SelectExisting(pool[0]))

	attendees, err := r.Attendees()
	require.NoError(t, err)
	attendees[0].Name = "diubah"

	again, err := r.Attendees()
	require.NoError(t, err)
	assert.Equal(t, pool[0].Name, again[0].Name)
}
