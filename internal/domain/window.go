package domain

import "time"

// CandidateWindow represents the requested reservation interval at a station
type CandidateWindow struct {
	StationID int64
	Start     time.Time
	Duration  time.Duration
}

// NewCandidateWindow builds a window from a start time and a duration in hours
func NewCandidateWindow(stationID int64, start time.Time, durationHours float64) CandidateWindow {
	return CandidateWindow{
		StationID: stationID,
		Start:     start,
		Duration:  time.Duration(durationHours * float64(time.Hour)),
	}
}

// End returns the end of the window (start + duration)
func (w CandidateWindow) End() time.Time {
	return w.Start.Add(w.Duration)
}

// IsValid returns true if the window has a start and ends strictly after it
func (w CandidateWindow) IsValid() bool {
	return !w.Start.IsZero() && w.End().After(w.Start)
}
