package stationapi

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-ChargingService/internal/domain"
)

// SlotsClient получает слоты станции из REST бэкенда
type SlotsClient struct {
	base *BaseClient
}

// NewSlotsClient создает клиент слотов
func NewSlotsClient(base *BaseClient) *SlotsClient {
	return &SlotsClient{base: base}
}

// GetByStation получает слоты станции: GET {base}/stations/{id}/slots
func (c *SlotsClient) GetByStation(ctx context.Context, stationID int64) ([]domain.Slot, error) {
	var records []SlotRecord
	if err := c.base.getList(ctx, fmt.Sprintf("/stations/%d/slots", stationID), stationID, &records); err != nil {
		return nil, err
	}

	slots := make([]domain.Slot, len(records))
	for i, record := range records {
		slots[i] = ToDomainSlot(record, stationID)
	}

	c.base.log.Info("stationapi: fetched %d slots for station=%d", len(slots), stationID)
	return slots, nil
}
