package reservations

import (
	"context"

	"github.com/m04kA/SMC-ChargingService/internal/domain"
)

// ReservationRepository интерфейс источника бронирований
type ReservationRepository interface {
	GetByStationWithFilter(ctx context.Context, filter domain.ReservationFilter) ([]domain.Reservation, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
