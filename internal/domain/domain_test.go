package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSlotLabel(t *testing.T) {
	assert.Equal(t, "CCS - 50 kW", SlotLabel("CCS", 50))
	assert.Equal(t, "Type 2 - 7.4 kW", SlotLabel("Type 2", 7.4))
	assert.Equal(t, "CHAdeMO - 62.5 kW", SlotLabel("CHAdeMO", 62.5))
}

func TestSlotIsEligible(t *testing.T) {
	tests := []struct {
		name     string
		slot     Slot
		expected bool
	}{
		{"available and enabled", Slot{Status: SlotStatusAvailable, IsAvailable: true}, true},
		{"available but disabled", Slot{Status: SlotStatusAvailable, IsAvailable: false}, false},
		{"occupied", Slot{Status: SlotStatusOccupied, IsAvailable: true}, false},
		{"under maintenance", Slot{Status: SlotStatusUnderMaintenance, IsAvailable: true}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.slot.IsEligible())
		})
	}
}

func TestReservationOverlaps(t *testing.T) {
	day := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	r := Reservation{StartTime: day.Add(10 * time.Hour), EndTime: day.Add(12 * time.Hour)}

	window := func(startHour int, hours float64) CandidateWindow {
		return NewCandidateWindow(1, day.Add(time.Duration(startHour)*time.Hour), hours)
	}

	assert.True(t, r.Overlaps(window(11, 2)))
	assert.True(t, r.Overlaps(window(9, 4)))
	assert.True(t, r.Overlaps(window(10, 1)))
	assert.False(t, r.Overlaps(window(12, 2)), "граничит с концом")
	assert.False(t, r.Overlaps(window(8, 2)), "граничит с началом")
}

func TestReservationIsLive(t *testing.T) {
	for _, status := range ReservationStatuses {
		r := Reservation{Status: status}
		expected := status != ReservationRejected && status != ReservationCancelled
		assert.Equal(t, expected, r.IsLive(), string(status))
	}
}

func TestReservationIsWellFormed(t *testing.T) {
	start := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

	assert.True(t, (&Reservation{StartTime: start, EndTime: start.Add(time.Hour)}).IsWellFormed())
	assert.False(t, (&Reservation{StartTime: start, EndTime: start}).IsWellFormed())
	assert.False(t, (&Reservation{EndTime: start}).IsWellFormed())
	assert.False(t, (&Reservation{StartTime: start}).IsWellFormed())
}

func TestCandidateWindow(t *testing.T) {
	start := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

	w := NewCandidateWindow(3, start, 1.5)
	assert.Equal(t, start.Add(90*time.Minute), w.End())
	assert.True(t, w.IsValid())

	assert.False(t, NewCandidateWindow(3, start, 0).IsValid())
	assert.False(t, NewCandidateWindow(3, start, -1).IsValid())
	assert.False(t, NewCandidateWindow(3, time.Time{}, 1).IsValid())
}
