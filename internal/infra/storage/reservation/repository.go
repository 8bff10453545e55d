package reservation

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ChargingService/internal/domain"
	"github.com/m04kA/SMC-ChargingService/internal/infra/storage/station"
	"github.com/m04kA/SMC-ChargingService/pkg/psqlbuilder"
)

// Repository репозиторий для чтения бронирований станций
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByStationWithFilter получает бронирования станции с фильтрацией
// Если станция не существует, возвращает domain.ErrStationNotFound
// Поддерживает фильтрацию по:
// - Интервалу (From, To) - возвращаются бронирования, пересекающиеся с [From, To)
// - Включению неактивных бронирований (IncludeInactive)
//
// Примеры использования:
//
// 1. Все активные бронирования станции:
//
//	filter := domain.ReservationFilter{StationID: 7}
//
// 2. Бронирования, пересекающиеся с окном:
//
//	filter := domain.ReservationFilter{StationID: 7, From: &start, To: &end}
//
// 3. Все бронирования включая отменённые:
//
//	filter := domain.ReservationFilter{StationID: 7, IncludeInactive: true}
func (r *Repository) GetByStationWithFilter(ctx context.Context, filter domain.ReservationFilter) ([]domain.Reservation, error) {
	if filter.StationID <= 0 {
		return nil, fmt.Errorf("%w: station id is required", ErrInvalidFilter)
	}

	if err := station.CheckExists(ctx, r.db, filter.StationID); err != nil {
		return nil, err
	}

	selectBuilder := psqlbuilder.Select(
		"id",
		"station_id",
		"slot_id",
		"start_time",
		"end_time",
		"status",
	).
		From("reservations").
		Where(squirrel.Eq{"station_id": filter.StationID})

	// Пересечение полуоткрытых интервалов: start < To AND end > From
	if filter.To != nil {
		selectBuilder = selectBuilder.Where(squirrel.Lt{"start_time": *filter.To})
	}
	if filter.From != nil {
		selectBuilder = selectBuilder.Where(squirrel.Gt{"end_time": *filter.From})
	}

	if !filter.IncludeInactive {
		inactive := make([]string, len(domain.InactiveReservationStatuses))
		for i, s := range domain.InactiveReservationStatuses {
			inactive[i] = string(s)
		}
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"status": inactive})
	}

	query, args, err := selectBuilder.OrderBy("start_time ASC", "id ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByStationWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByStationWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanReservations(rows)
}

// scanReservations сканирует результаты запроса в слайс бронирований
func (r *Repository) scanReservations(rows *sql.Rows) ([]domain.Reservation, error) {
	reservations := make([]domain.Reservation, 0)

	for rows.Next() {
		var reservation domain.Reservation
		var slotID sql.NullInt64

		if err := rows.Scan(
			&reservation.ID,
			&reservation.StationID,
			&slotID,
			&reservation.StartTime,
			&reservation.EndTime,
			&reservation.Status,
		); err != nil {
			return nil, fmt.Errorf("%w: scanReservations - scan row: %v", ErrScanRow, err)
		}

		if slotID.Valid {
			id := slotID.Int64
			reservation.SlotID = &id
		}

		reservations = append(reservations, reservation)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanReservations - rows error: %v", ErrScanRow, err)
	}

	return reservations, nil
}
