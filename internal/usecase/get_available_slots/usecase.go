package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ChargingService/internal/domain"
	"github.com/m04kA/SMC-ChargingService/internal/service/availability"
)

// UseCase use case для получения свободных слотов станции
type UseCase struct {
	slotRepo        SlotRepository
	reservationRepo ReservationRepository
	resolver        Resolver
	metrics         Metrics
	location        *time.Location
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
// loc - часовой пояс станций, в котором интерпретируются дата и время окна
func NewUseCase(
	slotRepo SlotRepository,
	reservationRepo ReservationRepository,
	resolver Resolver,
	metrics Metrics,
	loc *time.Location,
	logger Logger,
) *UseCase {
	if loc == nil {
		loc = time.UTC
	}
	return &UseCase{
		slotRepo:        slotRepo,
		reservationRepo: reservationRepo,
		resolver:        resolver,
		metrics:         metrics,
		location:        loc,
		logger:          logger,
	}
}

// Execute выполняет use case получения свободных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: station=%d, date=%s, time=%s",
		req.StationID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Строим окно (nil - без окна)
	window, err := buildWindow(req, uc.location)
	if err != nil {
		uc.logger.Warn("GetAvailableSlots: invalid window: %v", err)
		return nil, err
	}

	// 3. Получаем слоты станции
	slots, err := uc.slotRepo.GetByStation(ctx, req.StationID)
	if err != nil {
		if errors.Is(err, domain.ErrStationNotFound) {
			uc.logger.Warn("GetAvailableSlots: station id=%d not found", req.StationID)
			return nil, ErrStationNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get slots for station id=%d: %v", req.StationID, err)
		return nil, fmt.Errorf("%w: failed to get slots: %v", ErrInternal, err)
	}

	// 4. Получаем бронирования, пересекающие окно (без окна бронирования не нужны)
	var reservations []domain.Reservation
	if window != nil {
		from, to := window.Start, window.End()
		filter := domain.ReservationFilter{
			StationID:       req.StationID,
			From:            &from,
			To:              &to,
			IncludeInactive: false, // Только живые бронирования
		}

		reservations, err = uc.reservationRepo.GetByStationWithFilter(ctx, filter)
		if err != nil {
			if errors.Is(err, domain.ErrStationNotFound) {
				uc.logger.Warn("GetAvailableSlots: station id=%d not found", req.StationID)
				return nil, ErrStationNotFound
			}
			uc.logger.Error("GetAvailableSlots: failed to get reservations: %v", err)
			return nil, fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
		}
	}

	// 5. Вычисляем свободные слоты
	available, err := uc.resolver.Resolve(slots, reservations, window)
	if err != nil {
		if errors.Is(err, availability.ErrInvalidWindow) {
			uc.logger.Warn("GetAvailableSlots: resolver rejected window: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidWindow, err)
		}
		uc.logger.Error("GetAvailableSlots: failed to resolve slots for station id=%d: %v", req.StationID, err)
		return nil, fmt.Errorf("%w: failed to resolve slots: %v", ErrInternal, err)
	}

	if uc.metrics != nil {
		uc.metrics.SlotsResolved(len(available))
	}

	// 6. Сверяем ранее выбранный слот
	selected, cleared := reconcileSelection(req.SelectedSlotID, available)
	if cleared {
		uc.logger.Info("GetAvailableSlots: selected slot id=%d is no longer available, selection cleared",
			*req.SelectedSlotID)
	}

	uc.logger.Info("GetAvailableSlots: %d of %d slots available for station=%d",
		len(available), len(slots), req.StationID)

	return &Response{
		StationID:        req.StationID,
		Window:           window,
		Slots:            available,
		SelectedSlotID:   selected,
		SelectionCleared: cleared,
	}, nil
}
