package snapshot

import (
	"context"

	"github.com/m04kA/SMC-ChargingService/internal/domain"
)

// Store интерфейс хранилища снапшотов
type Store interface {
	// Get читает значение по ключу в dest; found=false, если ключа нет
	Get(ctx context.Context, key string, dest interface{}) (found bool, err error)
	// Set сохраняет значение с TTL хранилища
	Set(ctx context.Context, key string, value interface{}) error
}

// SlotRepository источник слотов, который оборачивает кэш
type SlotRepository interface {
	GetByStation(ctx context.Context, stationID int64) ([]domain.Slot, error)
}

// ReservationRepository источник бронирований, который оборачивает кэш
type ReservationRepository interface {
	GetByStationWithFilter(ctx context.Context, filter domain.ReservationFilter) ([]domain.Reservation, error)
}

// Metrics интерфейс метрик кэша
type Metrics interface {
	CacheResult(kind, result string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Результаты обращения к кэшу для метрик
const (
	ResultHit   = "hit"
	ResultMiss  = "miss"
	ResultError = "error"
)

// Виды снапшотов
const (
	KindSlots        = "slots"
	KindReservations = "reservations"
)
