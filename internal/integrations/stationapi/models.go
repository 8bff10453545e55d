package stationapi

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/m04kA/SMC-ChargingService/internal/domain"
)

// Адаптер записей бэкенда к доменным моделям.
// Все расхождения в именах полей и типах (id/slot_id/slotId, station_id строкой или числом,
// decimal строкой) нормализуются здесь один раз.

// FlexInt64 целое число, которое бэкенд может прислать числом, строкой или null
type FlexInt64 struct {
	Value int64
	Valid bool
}

// UnmarshalJSON декодирует число, строку с числом или null
func (f *FlexInt64) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = FlexInt64{}
		return nil
	}

	raw := strings.Trim(string(data), `"`)
	if raw == "" {
		*f = FlexInt64{}
		return nil
	}

	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid integer id %s: %w", string(data), err)
	}
	*f = FlexInt64{Value: v, Valid: true}
	return nil
}

// FlexFloat дробное число, которое бэкенд может прислать числом или строкой ("50.00")
type FlexFloat float64

// UnmarshalJSON декодирует число или строку с числом
func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(string(bytes.TrimSpace(data)), `"`)
	if raw == "" || raw == "null" {
		*f = 0
		return nil
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Errorf("invalid number %s: %w", string(data), err)
	}
	*f = FlexFloat(v)
	return nil
}

// SlotRecord запись слота из REST бэкенда
type SlotRecord struct {
	ID            FlexInt64 `json:"id"`
	SlotID        FlexInt64 `json:"slot_id"`
	StationID     FlexInt64 `json:"station_id"`
	Station       FlexInt64 `json:"station"`
	ConnectorType string    `json:"connector_type"`
	MaxPowerKW    FlexFloat `json:"max_power_kw"`
	Status        string    `json:"status"`
	IsAvailable   *bool     `json:"is_available"`
}

// BookingRecord запись бронирования из REST бэкенда
type BookingRecord struct {
	ID        FlexInt64 `json:"id"`
	StationID FlexInt64 `json:"station_id"`
	Station   FlexInt64 `json:"station"`
	SlotID    FlexInt64 `json:"slot_id"`
	SlotIDAlt FlexInt64 `json:"slotId"`
	Slot      FlexInt64 `json:"slot"`
	StartTime string    `json:"start_time"`
	EndTime   string    `json:"end_time"`
	Status    string    `json:"status"`
}

// ToDomainSlot конвертирует запись бэкенда в доменный слот
// Отсутствующий идентификатор остаётся нулевым и отклоняется при вычислении доступности
func ToDomainSlot(r SlotRecord, stationID int64) domain.Slot {
	slot := domain.Slot{
		ID:            firstValid(r.ID, r.SlotID),
		StationID:     firstValid(r.StationID, r.Station),
		ConnectorType: strings.TrimSpace(r.ConnectorType),
		MaxPowerKW:    float64(r.MaxPowerKW),
		Status:        domain.SlotStatus(strings.ToLower(strings.TrimSpace(r.Status))),
		IsAvailable:   r.IsAvailable != nil && *r.IsAvailable,
	}
	if slot.StationID == 0 {
		slot.StationID = stationID
	}
	return slot
}

// ToDomainReservation конвертирует запись бэкенда в доменное бронирование
// Возвращает ok=false, если временные метки не удалось разобрать:
// такие бронирования сохраняются с нулевым временем и не блокируют слоты
func ToDomainReservation(r BookingRecord, stationID int64, loc *time.Location) (domain.Reservation, bool) {
	reservation := domain.Reservation{
		ID:        firstValid(r.ID),
		StationID: firstValid(r.StationID, r.Station),
		Status:    domain.ReservationStatus(strings.ToLower(strings.TrimSpace(r.Status))),
	}
	if reservation.StationID == 0 {
		reservation.StationID = stationID
	}

	if id := firstValid(r.SlotID, r.SlotIDAlt, r.Slot); id != 0 {
		reservation.SlotID = &id
	}

	start, startErr := ParseTimestamp(r.StartTime, loc)
	end, endErr := ParseTimestamp(r.EndTime, loc)
	if startErr != nil || endErr != nil {
		return reservation, false
	}

	reservation.StartTime = start
	reservation.EndTime = end
	return reservation, true
}

// timestampLayouts форматы временных меток бэкенда
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
}

// ParseTimestamp разбирает временную метку бэкенда
// Метки без смещения интерпретируются в часовом поясе loc
func ParseTimestamp(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("%w: empty timestamp", ErrInvalidResponse)
	}

	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("%w: unparseable timestamp %q", ErrInvalidResponse, s)
}

func firstValid(values ...FlexInt64) int64 {
	for _, v := range values {
		if v.Valid {
			return v.Value
		}
	}
	return 0
}
