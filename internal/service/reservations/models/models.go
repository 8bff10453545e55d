package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-ChargingService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid reservation status")

	// ErrInvalidPeriod возвращается, когда начало периода не раньше его конца
	ErrInvalidPeriod = errors.New("invalid period: from must be before to")
)

// Request модели

// GetStationReservationsRequest запрос на получение бронирований станции
type GetStationReservationsRequest struct {
	StationID       int64      `json:"stationId"`
	From            *time.Time `json:"from,omitempty"`            // Начало периода (опционально)
	To              *time.Time `json:"to,omitempty"`              // Конец периода (опционально)
	Status          *string    `json:"status,omitempty"`          // Фильтр по статусу (опционально)
	IncludeInactive bool       `json:"includeInactive,omitempty"` // Включить отклонённые и отменённые
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetStationReservationsRequest) ToDomainFilter() (domain.ReservationFilter, error) {
	filter := domain.ReservationFilter{
		StationID:       r.StationID,
		From:            r.From,
		To:              r.To,
		IncludeInactive: r.IncludeInactive,
	}

	if r.From != nil && r.To != nil && !r.From.Before(*r.To) {
		return filter, ErrInvalidPeriod
	}

	// Фильтр по неактивному статусу имеет смысл только вместе с неактивными
	if r.Status != nil {
		status, err := ToDomainReservationStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		for _, inactive := range domain.InactiveReservationStatuses {
			if status == inactive {
				filter.IncludeInactive = true
			}
		}
	}

	return filter, nil
}

// Response модели

// ReservationResponse ответ с данными бронирования
type ReservationResponse struct {
	ID         int64     `json:"id"`
	StationID  int64     `json:"stationId"`
	SlotID     *int64    `json:"slotId"`
	StartTime  time.Time `json:"startTime"`
	EndTime    time.Time `json:"endTime"`
	Status     string    `json:"status"`
	BlocksSlot bool      `json:"blocksSlot"` // Живое бронирование с назначенным слотом
}

// ReservationListResponse ответ со списком бронирований
type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
}

// Методы конвертации

// FromDomainReservation конвертирует domain модель в DTO
func FromDomainReservation(r domain.Reservation) ReservationResponse {
	return ReservationResponse{
		ID:         r.ID,
		StationID:  r.StationID,
		SlotID:     r.SlotID,
		StartTime:  r.StartTime,
		EndTime:    r.EndTime,
		Status:     string(r.Status),
		BlocksSlot: r.IsLive() && r.HasSlot() && r.IsWellFormed(),
	}
}

// FromDomainReservationList конвертирует список domain моделей в DTO
func FromDomainReservationList(reservations []domain.Reservation) *ReservationListResponse {
	resp := &ReservationListResponse{
		Reservations: make([]ReservationResponse, len(reservations)),
	}

	for i, reservation := range reservations {
		resp.Reservations[i] = FromDomainReservation(reservation)
	}

	return resp
}

// ToDomainReservationStatus конвертирует строку в domain.ReservationStatus с валидацией
func ToDomainReservationStatus(status string) (domain.ReservationStatus, error) {
	s := domain.ReservationStatus(status)
	if !domain.IsKnownReservationStatus(s) {
		return "", ErrInvalidStatus
	}
	return s, nil
}
