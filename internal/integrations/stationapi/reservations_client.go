package stationapi

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-ChargingService/internal/domain"
)

// ReservationsClient получает бронирования станции из REST бэкенда
type ReservationsClient struct {
	base *BaseClient
}

// NewReservationsClient создает клиент бронирований
func NewReservationsClient(base *BaseClient) *ReservationsClient {
	return &ReservationsClient{base: base}
}

// GetByStationWithFilter получает бронирования станции: GET {base}/stations/{id}/bookings
//
// Бэкенд не умеет фильтровать по времени, поэтому From/To не применяются:
// возвращается надмножество, точная проверка пересечений выполняется при вычислении доступности.
// Неактивные бронирования отбрасываются, если IncludeInactive = false.
func (c *ReservationsClient) GetByStationWithFilter(ctx context.Context, filter domain.ReservationFilter) ([]domain.Reservation, error) {
	if filter.StationID <= 0 {
		return nil, fmt.Errorf("%w: station id is required", ErrInvalidFilter)
	}

	var records []BookingRecord
	path := fmt.Sprintf("/stations/%d/bookings", filter.StationID)
	if err := c.base.getList(ctx, path, filter.StationID, &records); err != nil {
		return nil, err
	}

	reservations := make([]domain.Reservation, 0, len(records))
	for _, record := range records {
		reservation, ok := ToDomainReservation(record, filter.StationID, c.base.loc)
		if !ok {
			c.base.log.Warn("stationapi: booking id=%d has unparseable timestamps (start=%q, end=%q)",
				reservation.ID, record.StartTime, record.EndTime)
		}

		if !filter.IncludeInactive && !reservation.IsLive() {
			continue
		}

		reservations = append(reservations, reservation)
	}

	c.base.log.Info("stationapi: fetched %d bookings for station=%d", len(reservations), filter.StationID)
	return reservations, nil
}
