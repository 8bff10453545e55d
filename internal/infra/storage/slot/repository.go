package slot

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ChargingService/internal/domain"
	"github.com/m04kA/SMC-ChargingService/internal/infra/storage/station"
	"github.com/m04kA/SMC-ChargingService/pkg/psqlbuilder"
)

// Repository репозиторий для работы со слотами зарядных станций
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория слотов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByStation получает все слоты станции в порядке их идентификаторов
// Если станция не существует, возвращает domain.ErrStationNotFound
func (r *Repository) GetByStation(ctx context.Context, stationID int64) ([]domain.Slot, error) {
	if err := station.CheckExists(ctx, r.db, stationID); err != nil {
		return nil, err
	}

	query, args, err := psqlbuilder.Select(
		"id",
		"station_id",
		"connector_type",
		"max_power_kw",
		"status",
		"is_available",
	).
		From("charging_slots").
		Where(squirrel.Eq{"station_id": stationID}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByStation - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByStation - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	slots := make([]domain.Slot, 0)
	for rows.Next() {
		var slot domain.Slot
		if err := rows.Scan(
			&slot.ID,
			&slot.StationID,
			&slot.ConnectorType,
			&slot.MaxPowerKW,
			&slot.Status,
			&slot.IsAvailable,
		); err != nil {
			return nil, fmt.Errorf("%w: GetByStation - scan row: %v", ErrScanRow, err)
		}
		slots = append(slots, slot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByStation - rows error: %v", ErrScanRow, err)
	}

	return slots, nil
}
