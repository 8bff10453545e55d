package reservations

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ChargingService/internal/domain"
	"github.com/m04kA/SMC-ChargingService/internal/service/reservations/models"
)

// Service сервис для чтения бронирований станции
type Service struct {
	reservationRepo ReservationRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(reservationRepo ReservationRepository, logger Logger) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		logger:          logger,
	}
}

// GetStationReservations получает бронирования станции с фильтрацией
// Поддерживает фильтрацию по периоду, статусу и включению неактивных бронирований
//
// Примеры использования:
// - Все живые бронирования: GetStationReservations(ctx, &GetStationReservationsRequest{StationID: 7})
// - Бронирования, пересекающие период: указать From и/или To
// - Только ожидающие подтверждения: Status = "pending"
// - Включая отменённые и отклонённые: IncludeInactive = true
func (s *Service) GetStationReservations(ctx context.Context, req *models.GetStationReservationsRequest) (*models.ReservationListResponse, error) {
	// Логируем запрос с деталями фильтрации
	logMsg := fmt.Sprintf("GetStationReservations: fetching reservations for station=%d", req.StationID)
	if req.From != nil {
		logMsg += fmt.Sprintf(", from=%s", req.From.Format(time.RFC3339))
	}
	if req.To != nil {
		logMsg += fmt.Sprintf(", to=%s", req.To.Format(time.RFC3339))
	}
	if req.Status != nil {
		logMsg += fmt.Sprintf(", status=%q", *req.Status)
	}
	if req.IncludeInactive {
		logMsg += ", includeInactive=true"
	}
	s.logger.Info("%s", logMsg)

	if req.StationID <= 0 {
		return nil, fmt.Errorf("%w: stationID must be positive", ErrInvalidInput)
	}

	// Конвертируем request в domain фильтр
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetStationReservations: invalid filter for station=%d: %v", req.StationID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	reservations, err := s.reservationRepo.GetByStationWithFilter(ctx, filter)
	if err != nil {
		if errors.Is(err, domain.ErrStationNotFound) {
			s.logger.Warn("GetStationReservations: station id=%d not found", req.StationID)
			return nil, ErrStationNotFound
		}
		s.logger.Error("GetStationReservations: repository error for station=%d: %v", req.StationID, err)
		return nil, fmt.Errorf("%w: GetStationReservations - repository error: %v", ErrInternal, err)
	}

	// REST источник возвращает надмножество по времени
	if filter.From != nil || filter.To != nil {
		reservations = filterByPeriod(reservations, filter.From, filter.To)
	}

	// Источник не фильтрует по конкретному статусу
	if req.Status != nil {
		reservations = filterByStatus(reservations, domain.ReservationStatus(*req.Status))
	}

	s.logger.Info("GetStationReservations: successfully fetched %d reservations for station=%d", len(reservations), req.StationID)
	return models.FromDomainReservationList(reservations), nil
}

func filterByStatus(reservations []domain.Reservation, status domain.ReservationStatus) []domain.Reservation {
	result := make([]domain.Reservation, 0, len(reservations))
	for _, reservation := range reservations {
		if reservation.Status == status {
			result = append(result, reservation)
		}
	}
	return result
}

// filterByPeriod оставляет бронирования, пересекающие период [from, to)
// Каждая граница применяется отдельно: end > from, start < to
// Бронирования с некорректным временем сохраняются, чтобы их было видно в списке
func filterByPeriod(reservations []domain.Reservation, from, to *time.Time) []domain.Reservation {
	result := make([]domain.Reservation, 0, len(reservations))
	for _, reservation := range reservations {
		if !reservation.IsWellFormed() {
			result = append(result, reservation)
			continue
		}
		if from != nil && !reservation.EndTime.After(*from) {
			continue
		}
		if to != nil && !reservation.StartTime.Before(*to) {
			continue
		}
		result = append(result, reservation)
	}
	return result
}
