package availability

import (
	"fmt"

	"github.com/m04kA/SMC-ChargingService/internal/domain"
)

// Resolver вычисляет свободные слоты станции для запрошенного окна.
// Не хранит состояние между вызовами и безопасен для конкурентного использования.
type Resolver struct {
	logger   Logger
	observer SkipObserver
}

// NewResolver создает новый экземпляр резолвера.
// observer может быть nil.
func NewResolver(logger Logger, observer SkipObserver) *Resolver {
	return &Resolver{
		logger:   logger,
		observer: observer,
	}
}

// Resolve возвращает слоты, доступные для бронирования в окне window.
//
// Алгоритм:
//  1. Оставляем только слоты со статусом available и флагом IsAvailable
//  2. Если окно не указано - возвращаем их без проверки пересечений
//  3. Иначе исключаем слоты, у которых есть активное бронирование, пересекающееся с окном
//
// Порядок слотов на выходе совпадает с порядком на входе.
// Бронирования без слота, с чужой станцией или с некорректным временем не блокируют слоты.
func (r *Resolver) Resolve(
	slots []domain.Slot,
	reservations []domain.Reservation,
	window *domain.CandidateWindow,
) ([]domain.AvailableSlot, error) {
	// Шаг 1: Валидация и фильтрация слотов по административному статусу
	eligible := make([]domain.Slot, 0, len(slots))
	for _, slot := range slots {
		if slot.ID <= 0 {
			return nil, fmt.Errorf("%w: slot id is required", ErrInvalidSlot)
		}
		if slot.IsEligible() {
			eligible = append(eligible, slot)
		}
	}

	// Шаг 2: Окно не выбрано - возвращаем все подходящие слоты
	if window == nil {
		return toAvailableSlots(eligible), nil
	}

	if !window.IsValid() {
		return nil, fmt.Errorf("%w: end must be after start (start=%s, duration=%s)",
			ErrInvalidWindow, window.Start, window.Duration)
	}
	if window.StationID <= 0 {
		return nil, fmt.Errorf("%w: station id is required", ErrInvalidWindow)
	}

	// Шаг 3: Собираем занятые слоты по активным бронированиям
	blocked := r.blockedSlots(reservations, *window)

	result := make([]domain.Slot, 0, len(eligible))
	for _, slot := range eligible {
		if blocked[slot.ID] {
			continue
		}
		result = append(result, slot)
	}

	return toAvailableSlots(result), nil
}

// blockedSlots возвращает множество слотов, занятых в окне
func (r *Resolver) blockedSlots(reservations []domain.Reservation, window domain.CandidateWindow) map[int64]bool {
	blocked := make(map[int64]bool)

	for i := range reservations {
		reservation := &reservations[i]

		// Отменённые и отклонённые бронирования не блокируют слот
		if !reservation.IsLive() {
			continue
		}

		// Бронирование без слота ничего не блокирует
		if !reservation.HasSlot() {
			continue
		}

		if reservation.StationID != window.StationID {
			r.logger.Warn("Resolve: reservation id=%d belongs to station=%d, expected station=%d, skipped",
				reservation.ID, reservation.StationID, window.StationID)
			r.skipped(SkipReasonForeignStation)
			continue
		}

		// Некорректное время - считаем, что пересечения нет
		if !reservation.IsWellFormed() {
			r.logger.Warn("Resolve: malformed reservation id=%d skipped (start=%s, end=%s)",
				reservation.ID, reservation.StartTime, reservation.EndTime)
			r.skipped(SkipReasonMalformed)
			continue
		}

		if reservation.Overlaps(window) {
			blocked[*reservation.SlotID] = true
		}
	}

	return blocked
}

func (r *Resolver) skipped(reason string) {
	if r.observer != nil {
		r.observer.ReservationSkipped(reason)
	}
}

// toAvailableSlots конвертирует слоты в выходные дескрипторы
func toAvailableSlots(slots []domain.Slot) []domain.AvailableSlot {
	result := make([]domain.AvailableSlot, len(slots))
	for i, slot := range slots {
		result[i] = domain.NewAvailableSlot(slot)
	}
	return result
}
