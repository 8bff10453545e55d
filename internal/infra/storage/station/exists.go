package station

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ChargingService/internal/domain"
	"github.com/m04kA/SMC-ChargingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ChargingService/pkg/psqlbuilder"
)

// CheckExists проверяет наличие станции в таблице stations
// Если станции нет, возвращает domain.ErrStationNotFound
func CheckExists(ctx context.Context, db dbmetrics.DBExecutor, stationID int64) error {
	query, args, err := psqlbuilder.Select("id").
		From("stations").
		Where(squirrel.Eq{"id": stationID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: CheckExists - build select query: %v", ErrBuildQuery, err)
	}

	var id int64
	err = db.QueryRowContext(ctx, query, args...).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: id=%d", domain.ErrStationNotFound, stationID)
	}
	if err != nil {
		return fmt.Errorf("%w: CheckExists - scan station: %v", ErrScanRow, err)
	}

	return nil
}
