package slot

import (
	"context"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ChargingService/internal/domain"
)

const (
	stationQuery = "SELECT id FROM stations WHERE id = $1"
	slotsQuery   = "SELECT id, station_id, connector_type, max_power_kw, status, is_available FROM charging_slots WHERE station_id = $1 ORDER BY id ASC"
)

func newSlotMock(t *testing.T) (*Repository, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return NewRepository(db), mock, func() { db.Close() }
}

func TestRepository_GetByStation(t *testing.T) {
	repo, mock, cleanup := newSlotMock(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta(stationQuery)).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

	rows := sqlmock.NewRows([]string{"id", "station_id", "connector_type", "max_power_kw", "status", "is_available"}).
		AddRow(1, 7, "CCS", 50.0, "available", true).
		AddRow(2, 7, "Type 2", 22.0, "under_maintenance", false)
	mock.ExpectQuery(regexp.QuoteMeta(slotsQuery)).
		WithArgs(int64(7)).
		WillReturnRows(rows)

	slots, err := repo.GetByStation(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, slots, 2)

	assert.Equal(t, domain.Slot{
		ID:            1,
		StationID:     7,
		ConnectorType: "CCS",
		MaxPowerKW:    50,
		Status:        domain.SlotStatusAvailable,
		IsAvailable:   true,
	}, slots[0])
	assert.Equal(t, domain.SlotStatusUnderMaintenance, slots[1].Status)
	assert.False(t, slots[1].IsAvailable)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByStation_StationNotFound(t *testing.T) {
	repo, mock, cleanup := newSlotMock(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta(stationQuery)).
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetByStation(context.Background(), 99)
	assert.ErrorIs(t, err, domain.ErrStationNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByStation_QueryError(t *testing.T) {
	repo, mock, cleanup := newSlotMock(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta(stationQuery)).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
	mock.ExpectQuery(regexp.QuoteMeta(slotsQuery)).
		WithArgs(int64(7)).
		WillReturnError(assert.AnError)

	_, err := repo.GetByStation(context.Background(), 7)
	assert.ErrorIs(t, err, ErrExecQuery)
	assert.NoError(t, mock.ExpectationsWereMet())
}
