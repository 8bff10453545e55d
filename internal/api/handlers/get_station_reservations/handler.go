package get_station_reservations

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ChargingService/internal/api/handlers"
	"github.com/m04kA/SMC-ChargingService/internal/service/reservations"
	"github.com/m04kA/SMC-ChargingService/internal/service/reservations/models"
)

const (
	msgInvalidStationID       = "некорректный ID станции"
	msgInvalidFrom            = "некорректный формат from, ожидается RFC3339"
	msgInvalidTo              = "некорректный формат to, ожидается RFC3339"
	msgInvalidIncludeInactive = "некорректное значение includeInactive"
	msgInvalidFilter          = "некорректный фильтр: проверьте статус и период"
	msgStationNotFound        = "станция не найдена"
)

type Handler struct {
	service ReservationsService
	logger  Logger
}

func NewHandler(service ReservationsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/stations/{stationId}/reservations
// Query params: from, to (RFC3339), status, includeInactive (bool)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	// Извлекаем stationId из URL
	stationID, err := strconv.ParseInt(vars["stationId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /stations/{id}/reservations - Invalid station ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStationID)
		return
	}

	req := &models.GetStationReservationsRequest{StationID: stationID}
	query := r.URL.Query()

	if fromStr := query.Get("from"); fromStr != "" {
		from, err := time.Parse(time.RFC3339, fromStr)
		if err != nil {
			h.logger.Warn("GET /stations/{id}/reservations - Invalid from: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFrom)
			return
		}
		req.From = &from
	}

	if toStr := query.Get("to"); toStr != "" {
		to, err := time.Parse(time.RFC3339, toStr)
		if err != nil {
			h.logger.Warn("GET /stations/{id}/reservations - Invalid to: %v", err)
			handlers.RespondBadRequest(w, msgInvalidTo)
			return
		}
		req.To = &to
	}

	if status := query.Get("status"); status != "" {
		req.Status = &status
	}

	if includeStr := query.Get("includeInactive"); includeStr != "" {
		include, err := strconv.ParseBool(includeStr)
		if err != nil {
			h.logger.Warn("GET /stations/{id}/reservations - Invalid includeInactive: %v", err)
			handlers.RespondBadRequest(w, msgInvalidIncludeInactive)
			return
		}
		req.IncludeInactive = include
	}

	// Вызываем сервис
	result, err := h.service.GetStationReservations(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrInvalidInput):
			h.logger.Warn("GET /stations/{id}/reservations - Invalid filter: station_id=%d, error=%v", stationID, err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		case errors.Is(err, reservations.ErrStationNotFound):
			h.logger.Warn("GET /stations/{id}/reservations - Station not found: station_id=%d", stationID)
			handlers.RespondNotFound(w, msgStationNotFound)

		default:
			h.logger.Error("GET /stations/{id}/reservations - Failed to get reservations: station_id=%d, error=%v", stationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /stations/{id}/reservations - Reservations retrieved successfully: station_id=%d, count=%d",
		stationID, len(result.Reservations))
	handlers.RespondJSON(w, http.StatusOK, result)
}
