package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-ChargingService/internal/domain"
	"github.com/m04kA/SMC-ChargingService/pkg/types"
)

// Request модель запроса на получение свободных слотов
type Request struct {
	StationID      int64            // ID станции
	Date           time.Time        // Дата окна (без времени), нулевая если окно не задано
	StartTime      types.TimeString // Время начала окна (например, "10:00"), пустое если окно не задано
	DurationHours  *float64         // Длительность окна в часах, по умолчанию domain.DefaultDurationHours
	SelectedSlotID *int64           // Ранее выбранный слот (для сверки выбора)
}

// HasWindow возвращает true, если в запросе задана хотя бы часть окна
func (r *Request) HasWindow() bool {
	return !r.Date.IsZero() || !r.StartTime.IsZero() || r.DurationHours != nil
}

// Response модель ответа со списком свободных слотов
type Response struct {
	StationID        int64                   // ID станции
	Window           *domain.CandidateWindow // Окно, по которому проверялись пересечения (nil - без окна)
	Slots            []domain.AvailableSlot  // Свободные слоты в исходном порядке
	SelectedSlotID   *int64                  // Выбранный слот, если он всё ещё свободен
	SelectionCleared bool                    // true, если ранее выбранный слот больше не свободен
}
