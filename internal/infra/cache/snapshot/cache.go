package snapshot

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-ChargingService/internal/domain"
)

// SlotsKey ключ снапшота слотов станции
func SlotsKey(stationID int64) string {
	return fmt.Sprintf("slots:station:%d", stationID)
}

// ReservationsKey ключ снапшота бронирований станции для фильтра
func ReservationsKey(filter domain.ReservationFilter) string {
	key := fmt.Sprintf("reservations:station:%d", filter.StationID)
	if filter.From != nil {
		key += fmt.Sprintf(":from=%d", filter.From.UnixNano())
	}
	if filter.To != nil {
		key += fmt.Sprintf(":to=%d", filter.To.UnixNano())
	}
	if filter.IncludeInactive {
		key += ":all"
	}
	return key
}

// SlotCache read-through кэш слотов станции
// Ошибки кэша не возвращаются вызывающему: запрос уходит в источник
type SlotCache struct {
	next    SlotRepository
	store   Store
	metrics Metrics
	logger  Logger
}

// NewSlotCache оборачивает источник слотов кэшем
func NewSlotCache(next SlotRepository, store Store, metrics Metrics, logger Logger) *SlotCache {
	return &SlotCache{next: next, store: store, metrics: metrics, logger: logger}
}

// GetByStation возвращает слоты станции из кэша или из источника
func (c *SlotCache) GetByStation(ctx context.Context, stationID int64) ([]domain.Slot, error) {
	key := SlotsKey(stationID)

	var cached []domain.Slot
	found, err := c.store.Get(ctx, key, &cached)
	switch {
	case err != nil:
		c.logger.Warn("SlotCache: failed to read %s: %v", key, err)
		c.observe(ResultError)
	case found:
		c.observe(ResultHit)
		return cached, nil
	default:
		c.observe(ResultMiss)
	}

	slots, err := c.next.GetByStation(ctx, stationID)
	if err != nil {
		return nil, err
	}

	if err := c.store.Set(ctx, key, slots); err != nil {
		c.logger.Warn("SlotCache: failed to write %s: %v", key, err)
	}

	return slots, nil
}

func (c *SlotCache) observe(result string) {
	if c.metrics != nil {
		c.metrics.CacheResult(KindSlots, result)
	}
}

// ReservationCache read-through кэш бронирований станции
type ReservationCache struct {
	next    ReservationRepository
	store   Store
	metrics Metrics
	logger  Logger
}

// NewReservationCache оборачивает источник бронирований кэшем
func NewReservationCache(next ReservationRepository, store Store, metrics Metrics, logger Logger) *ReservationCache {
	return &ReservationCache{next: next, store: store, metrics: metrics, logger: logger}
}

// GetByStationWithFilter возвращает бронирования из кэша или из источника
func (c *ReservationCache) GetByStationWithFilter(ctx context.Context, filter domain.ReservationFilter) ([]domain.Reservation, error) {
	key := ReservationsKey(filter)

	var cached []domain.Reservation
	found, err := c.store.Get(ctx, key, &cached)
	switch {
	case err != nil:
		c.logger.Warn("ReservationCache: failed to read %s: %v", key, err)
		c.observe(ResultError)
	case found:
		c.observe(ResultHit)
		return cached, nil
	default:
		c.observe(ResultMiss)
	}

	reservations, err := c.next.GetByStationWithFilter(ctx, filter)
	if err != nil {
		return nil, err
	}

	if err := c.store.Set(ctx, key, reservations); err != nil {
		c.logger.Warn("ReservationCache: failed to write %s: %v", key, err)
	}

	return reservations, nil
}

func (c *ReservationCache) observe(result string) {
	if c.metrics != nil {
		c.metrics.CacheResult(KindReservations, result)
	}
}
