package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ChargingService/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/SMC-ChargingService/internal/usecase/get_available_slots"
)

const (
	msgInvalidStationID    = "некорректный ID станции"
	msgInvalidDate         = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidDuration     = "некорректная длительность, ожидается число часов"
	msgInvalidSelectedSlot = "некорректный ID выбранного слота"
	msgInvalidInput        = "укажите дату и время начала вместе, время в формате HH:MM"
	msgInvalidWindow       = "некорректное временное окно: длительность должна быть больше нуля и не больше 24 часов"
	msgStationNotFound     = "станция не найдена"
	msgNoFreeSlots         = "нет свободных слотов на это время"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/stations/{stationId}/available-slots
// Query params: date (YYYY-MM-DD), time (HH:MM), duration (часы, по умолчанию 1), selectedSlotId
// Без date и time возвращаются все слоты, доступные по статусу
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	// Извлекаем stationId из URL
	stationIDStr := vars["stationId"]
	stationID, err := strconv.ParseInt(stationIDStr, 10, 64)
	if err != nil || stationID <= 0 {
		h.logger.Warn("GET /stations/{id}/available-slots - Invalid station ID: %q", stationIDStr)
		handlers.RespondBadRequest(w, msgInvalidStationID)
		return
	}

	// Формируем запрос к use case из query параметров
	query := r.URL.Query()
	useCaseReq, err := ToUseCaseRequest(
		stationID,
		strings.TrimSpace(query.Get("date")),
		strings.TrimSpace(query.Get("time")),
		strings.TrimSpace(query.Get("duration")),
		strings.TrimSpace(query.Get("selectedSlotId")),
	)
	if err != nil {
		h.logger.Warn("GET /stations/{id}/available-slots - Invalid query: %v", err)
		handlers.RespondBadRequest(w, queryErrorMessage(err))
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		// Обработка ошибок use case
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /stations/{id}/available-slots - Invalid input: station_id=%d, error=%v", stationID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, getAvailableSlots.ErrInvalidWindow):
			h.logger.Warn("GET /stations/{id}/available-slots - Invalid window: station_id=%d, error=%v", stationID, err)
			handlers.RespondBadRequest(w, msgInvalidWindow)

		case errors.Is(err, getAvailableSlots.ErrStationNotFound):
			h.logger.Warn("GET /stations/{id}/available-slots - Station not found: station_id=%d", stationID)
			handlers.RespondNotFound(w, msgStationNotFound)

		default:
			h.logger.Error("GET /stations/{id}/available-slots - Failed to get slots: station_id=%d, error=%v", stationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("GET /stations/{id}/available-slots - Slots retrieved successfully: station_id=%d, slots_count=%d, selection_cleared=%t",
		stationID, len(result.Slots), result.SelectionCleared)
	handlers.RespondJSON(w, http.StatusOK, response)
}

// queryErrorMessage возвращает сообщение для ошибки разбора query параметров
func queryErrorMessage(err error) string {
	switch {
	case errors.Is(err, errInvalidDate):
		return msgInvalidDate
	case errors.Is(err, errInvalidDuration):
		return msgInvalidDuration
	case errors.Is(err, errInvalidSelectedSlot):
		return msgInvalidSelectedSlot
	default:
		return msgInvalidInput
	}
}
