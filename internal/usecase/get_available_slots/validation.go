package get_available_slots

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-ChargingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.StationID <= 0 {
		return fmt.Errorf("%w: stationID must be positive", ErrInvalidInput)
	}

	if req.SelectedSlotID != nil && *req.SelectedSlotID <= 0 {
		return fmt.Errorf("%w: selectedSlotID must be positive", ErrInvalidInput)
	}

	if !req.HasWindow() {
		return nil
	}

	// Окно задаётся только целиком: дата и время обязательны
	if req.Date.IsZero() || req.StartTime.IsZero() {
		return fmt.Errorf("%w: date and time must be provided together", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if req.DurationHours != nil {
		if *req.DurationHours <= 0 {
			return fmt.Errorf("%w: duration must be positive", ErrInvalidWindow)
		}
		if *req.DurationHours > domain.MaxDurationHours {
			return fmt.Errorf("%w: duration must not exceed %d hours", ErrInvalidWindow, domain.MaxDurationHours)
		}
	}

	return nil
}

// buildWindow строит окно из даты, времени и длительности в часовом поясе станции
// Возвращает nil, если окно не задано
func buildWindow(req *Request, loc *time.Location) (*domain.CandidateWindow, error) {
	if !req.HasWindow() {
		return nil, nil
	}

	start, err := req.StartTime.OnDate(req.Date, loc)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	duration := float64(domain.DefaultDurationHours)
	if req.DurationHours != nil {
		duration = *req.DurationHours
	}

	window := domain.NewCandidateWindow(req.StationID, start, duration)
	if !window.IsValid() {
		return nil, fmt.Errorf("%w: window end must be after start", ErrInvalidWindow)
	}

	return &window, nil
}
