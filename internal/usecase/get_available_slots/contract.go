package get_available_slots

import (
	"context"

	"github.com/m04kA/SMC-ChargingService/internal/domain"
)

// SlotRepository интерфейс источника слотов станции
type SlotRepository interface {
	// GetByStation получает все слоты станции; для неизвестной станции возвращает domain.ErrStationNotFound
	GetByStation(ctx context.Context, stationID int64) ([]domain.Slot, error)
}

// ReservationRepository интерфейс источника бронирований станции
type ReservationRepository interface {
	// GetByStationWithFilter получает бронирования станции; допускается надмножество по времени
	GetByStationWithFilter(ctx context.Context, filter domain.ReservationFilter) ([]domain.Reservation, error)
}

// Resolver интерфейс вычисления свободных слотов
type Resolver interface {
	Resolve(slots []domain.Slot, reservations []domain.Reservation, window *domain.CandidateWindow) ([]domain.AvailableSlot, error)
}

// Metrics интерфейс метрик usecase
type Metrics interface {
	SlotsResolved(count int)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
