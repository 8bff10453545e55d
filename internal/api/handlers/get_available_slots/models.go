package get_available_slots

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/m04kA/SMC-ChargingService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-ChargingService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-ChargingService/pkg/types"
)

var (
	errInvalidDate         = errors.New(msgInvalidDate)
	errInvalidDuration     = errors.New(msgInvalidDuration)
	errInvalidSelectedSlot = errors.New(msgInvalidSelectedSlot)
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	StationID        int64           `json:"stationId"`
	Window           *Window         `json:"window,omitempty"`
	Slots            []AvailableSlot `json:"slots"`
	SelectedSlotID   *int64          `json:"selectedSlotId"`
	SelectionCleared bool            `json:"selectionCleared"`
	Message          string          `json:"message,omitempty"`
}

// Window модель запрошенного окна
type Window struct {
	Start         string  `json:"start"`
	End           string  `json:"end"`
	DurationHours float64 `json:"durationHours"`
}

// AvailableSlot модель свободного слота
type AvailableSlot struct {
	ID            int64   `json:"id"`
	ConnectorType string  `json:"connectorType"`
	MaxPowerKW    float64 `json:"maxPowerKw"`
	Label         string  `json:"label"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailableSlot{
			ID:            slot.ID,
			ConnectorType: slot.ConnectorType,
			MaxPowerKW:    slot.MaxPowerKW,
			Label:         slot.Label,
		}
	}

	result := &AvailableSlotsResponse{
		StationID:        resp.StationID,
		Slots:            slots,
		SelectedSlotID:   resp.SelectedSlotID,
		SelectionCleared: resp.SelectionCleared,
	}

	if resp.Window != nil {
		result.Window = &Window{
			Start:         resp.Window.Start.Format(time.RFC3339),
			End:           resp.Window.End().Format(time.RFC3339),
			DurationHours: resp.Window.Duration.Hours(),
		}
	}

	if len(slots) == 0 {
		result.Message = msgNoFreeSlots
	}

	return result
}

// ToUseCaseRequest создает запрос use case из query параметров
// Пустые параметры означают, что окно не задано
func ToUseCaseRequest(stationID int64, dateStr, timeStr, durationStr, selectedStr string) (*getAvailableSlots.Request, error) {
	req := &getAvailableSlots.Request{
		StationID: stationID,
		StartTime: types.TimeString(timeStr),
	}

	if dateStr != "" {
		date, err := time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", errInvalidDate, err)
		}
		req.Date = date
	}

	if durationStr != "" {
		duration, err := strconv.ParseFloat(durationStr, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", errInvalidDuration, err)
		}
		req.DurationHours = &duration
	}

	if selectedStr != "" {
		selected, err := strconv.ParseInt(selectedStr, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", errInvalidSelectedSlot, err)
		}
		req.SelectedSlotID = &selected
	}

	return req, nil
}
