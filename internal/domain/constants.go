package domain

// Default configuration values
const (
	DefaultDurationHours = 1
	MaxDurationHours     = 24
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveReservationStatuses список статусов, которые не блокируют слот
var InactiveReservationStatuses = []ReservationStatus{
	ReservationRejected,
	ReservationCancelled,
}

// ReservationStatuses все статусы жизненного цикла бронирования
var ReservationStatuses = []ReservationStatus{
	ReservationPending,
	ReservationAccepted,
	ReservationActive,
	ReservationCompleted,
	ReservationRejected,
	ReservationCancelled,
}

// SlotStatuses все административные статусы слота
var SlotStatuses = []SlotStatus{
	SlotStatusAvailable,
	SlotStatusOccupied,
	SlotStatusUnderMaintenance,
}
