package get_available_slots

import "github.com/m04kA/SMC-ChargingService/internal/domain"

// reconcileSelection сверяет ранее выбранный слот со свежим списком свободных слотов
// Если выбранный слот больше не свободен, выбор сбрасывается
func reconcileSelection(selected *int64, slots []domain.AvailableSlot) (*int64, bool) {
	if selected == nil {
		return nil, false
	}

	for _, slot := range slots {
		if slot.ID == *selected {
			id := slot.ID
			return &id, false
		}
	}

	return nil, true
}
