package domain

import "time"

// ReservationStatus represents the status of a reservation
type ReservationStatus string

const (
	ReservationPending   ReservationStatus = "pending"
	ReservationAccepted  ReservationStatus = "accepted"
	ReservationActive    ReservationStatus = "active"
	ReservationCompleted ReservationStatus = "completed"
	ReservationRejected  ReservationStatus = "rejected"
	ReservationCancelled ReservationStatus = "cancelled"
)

// Reservation represents a claim on one charging slot for one time interval
type Reservation struct {
	ID        int64
	StationID int64
	SlotID    *int64 // nil = слот ещё не назначен
	StartTime time.Time
	EndTime   time.Time
	Status    ReservationStatus
}

// IsLive returns true if the reservation can block a slot.
// Rejected and cancelled reservations never cause a conflict.
func (r *Reservation) IsLive() bool {
	return r.Status != ReservationRejected && r.Status != ReservationCancelled
}

// HasSlot returns true if the reservation references a slot
func (r *Reservation) HasSlot() bool {
	return r.SlotID != nil
}

// IsWellFormed returns true if both timestamps are set and end is strictly after start
func (r *Reservation) IsWellFormed() bool {
	return !r.StartTime.IsZero() && !r.EndTime.IsZero() && r.EndTime.After(r.StartTime)
}

// Overlaps reports whether the reservation overlaps the window.
// Intervals are half-open: touching endpoints do not overlap.
func (r *Reservation) Overlaps(w CandidateWindow) bool {
	return w.Start.Before(r.EndTime) && r.StartTime.Before(w.End())
}

// IsKnownReservationStatus returns true for statuses from the lifecycle
func IsKnownReservationStatus(s ReservationStatus) bool {
	for _, known := range ReservationStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// ReservationFilter фильтр для получения бронирований станции
type ReservationFilter struct {
	StationID       int64      // Обязательный параметр
	From            *time.Time // Бронирования, заканчивающиеся после From (опционально)
	To              *time.Time // Бронирования, начинающиеся до To (опционально)
	IncludeInactive bool       // Включать ли отменённые и отклонённые бронирования
}
