package reservations

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ChargingService/internal/domain"
	"github.com/m04kA/SMC-ChargingService/internal/service/reservations/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type recordingLogger struct {
	lines []string
}

func (l *recordingLogger) Info(format string, v ...interface{})  { l.add(format, v...) }
func (l *recordingLogger) Warn(format string, v ...interface{})  { l.add(format, v...) }
func (l *recordingLogger) Error(format string, v ...interface{}) { l.add(format, v...) }

func (l *recordingLogger) add(format string, v ...interface{}) {
	l.lines = append(l.lines, fmt.Sprintf(format, v...))
}

type fakeRepo struct {
	reservations []domain.Reservation
	err          error
	lastFilter   *domain.ReservationFilter
}

func (f *fakeRepo) GetByStationWithFilter(_ context.Context, filter domain.ReservationFilter) ([]domain.Reservation, error) {
	f.lastFilter = &filter
	return f.reservations, f.err
}

func strPtr(s string) *string { return &s }

func TestGetStationReservations(t *testing.T) {
	start := time.Date(2024, 5, 10, 10, 0, 0, 0, time.UTC)
	slotID := int64(1)
	repo := &fakeRepo{reservations: []domain.Reservation{
		{ID: 1, StationID: 7, SlotID: &slotID, StartTime: start, EndTime: start.Add(time.Hour), Status: domain.ReservationAccepted},
		{ID: 2, StationID: 7, StartTime: start, EndTime: start.Add(time.Hour), Status: domain.ReservationPending},
		{ID: 3, StationID: 7, SlotID: &slotID, Status: domain.ReservationActive},
	}}
	svc := NewService(repo, nopLogger{})

	from, to := start, start.Add(2*time.Hour)
	resp, err := svc.GetStationReservations(context.Background(), &models.GetStationReservationsRequest{
		StationID: 7, From: &from, To: &to,
	})
	require.NoError(t, err)
	require.Len(t, resp.Reservations, 3)

	assert.True(t, resp.Reservations[0].BlocksSlot)
	assert.False(t, resp.Reservations[1].BlocksSlot, "без слота")
	assert.False(t, resp.Reservations[2].BlocksSlot, "без времени")

	require.NotNil(t, repo.lastFilter)
	assert.Equal(t, int64(7), repo.lastFilter.StationID)
	assert.Equal(t, &from, repo.lastFilter.From)
	assert.False(t, repo.lastFilter.IncludeInactive)
}

func TestGetStationReservations_StatusFilter(t *testing.T) {
	repo := &fakeRepo{reservations: []domain.Reservation{
		{ID: 1, StationID: 7, Status: domain.ReservationPending},
		{ID: 2, StationID: 7, Status: domain.ReservationCancelled},
	}}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.GetStationReservations(context.Background(), &models.GetStationReservationsRequest{
		StationID: 7, Status: strPtr("cancelled"),
	})
	require.NoError(t, err)
	require.Len(t, resp.Reservations, 1)
	assert.Equal(t, int64(2), resp.Reservations[0].ID)
	assert.True(t, repo.lastFilter.IncludeInactive, "неактивный статус требует неактивных бронирований")
}

func TestGetStationReservations_InvalidInput(t *testing.T) {
	start := time.Date(2024, 5, 10, 10, 0, 0, 0, time.UTC)
	earlier := start.Add(-time.Hour)

	tests := []struct {
		name string
		req  *models.GetStationReservationsRequest
	}{
		{name: "missing station", req: &models.GetStationReservationsRequest{}},
		{name: "unknown status", req: &models.GetStationReservationsRequest{StationID: 7, Status: strPtr("confirmed")}},
		{name: "inverted period", req: &models.GetStationReservationsRequest{StationID: 7, From: &start, To: &earlier}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRepo{}
			_, err := NewService(repo, nopLogger{}).GetStationReservations(context.Background(), tt.req)
			assert.True(t, errors.Is(err, ErrInvalidInput), "got %v", err)
			assert.Nil(t, repo.lastFilter)
		})
	}
}

func TestGetStationReservations_RepositoryErrors(t *testing.T) {
	svc := NewService(&fakeRepo{err: domain.ErrStationNotFound}, nopLogger{})
	_, err := svc.GetStationReservations(context.Background(), &models.GetStationReservationsRequest{StationID: 404})
	assert.True(t, errors.Is(err, ErrStationNotFound))

	svc = NewService(&fakeRepo{err: errors.New("connection refused")}, nopLogger{})
	_, err = svc.GetStationReservations(context.Background(), &models.GetStationReservationsRequest{StationID: 7})
	assert.True(t, errors.Is(err, ErrInternal))
}

func TestGetStationReservations_EmptyList(t *testing.T) {
	svc := NewService(&fakeRepo{}, nopLogger{})
	resp, err := svc.GetStationReservations(context.Background(), &models.GetStationReservationsRequest{StationID: 7})
	require.NoError(t, err)
	assert.NotNil(t, resp.Reservations)
	assert.Empty(t, resp.Reservations)
}

func TestGetStationReservations_PeriodFilter(t *testing.T) {
	start := time.Date(2024, 5, 10, 10, 0, 0, 0, time.UTC)
	repo := &fakeRepo{reservations: []domain.Reservation{
		{ID: 1, StationID: 7, StartTime: start.Add(-2 * time.Hour), EndTime: start, Status: domain.ReservationAccepted},
		{ID: 2, StationID: 7, StartTime: start.Add(30 * time.Minute), EndTime: start.Add(time.Hour), Status: domain.ReservationAccepted},
		{ID: 3, StationID: 7, StartTime: start.Add(2 * time.Hour), EndTime: start.Add(3 * time.Hour), Status: domain.ReservationAccepted},
		{ID: 4, StationID: 7, Status: domain.ReservationPending},
	}}
	svc := NewService(repo, nopLogger{})

	from, to := start, start.Add(2*time.Hour)
	resp, err := svc.GetStationReservations(context.Background(), &models.GetStationReservationsRequest{
		StationID: 7, From: &from, To: &to,
	})
	require.NoError(t, err)

	ids := make([]int64, 0, len(resp.Reservations))
	for _, r := range resp.Reservations {
		ids = append(ids, r.ID)
	}
	assert.Equal(t, []int64{2, 4}, ids)
}

func TestGetStationReservations_SingleBound(t *testing.T) {
	day := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
	morning := domain.Reservation{ID: 1, StationID: 7, StartTime: day.Add(8 * time.Hour), EndTime: day.Add(9 * time.Hour), Status: domain.ReservationAccepted}
	afternoon := domain.Reservation{ID: 2, StationID: 7, StartTime: day.Add(14 * time.Hour), EndTime: day.Add(15 * time.Hour), Status: domain.ReservationAccepted}
	malformed := domain.Reservation{ID: 3, StationID: 7, Status: domain.ReservationPending}
	noon := day.Add(12 * time.Hour)
	nineAM := day.Add(9 * time.Hour)

	tests := []struct {
		name string
		from *time.Time
		to   *time.Time
		want []int64
	}{
		{name: "only from", from: &noon, want: []int64{2, 3}},
		{name: "only to", to: &noon, want: []int64{1, 3}},
		{name: "from touching end", from: &nineAM, want: []int64{2, 3}},
		{name: "to touching start", to: &nineAM, want: []int64{1, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRepo{reservations: []domain.Reservation{morning, afternoon, malformed}}
			resp, err := NewService(repo, nopLogger{}).GetStationReservations(context.Background(), &models.GetStationReservationsRequest{
				StationID: 7, From: tt.from, To: tt.to,
			})
			require.NoError(t, err)

			ids := make([]int64, 0, len(resp.Reservations))
			for _, r := range resp.Reservations {
				ids = append(ids, r.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestGetStationReservations_StatusWithPercentIsLoggedVerbatim(t *testing.T) {
	log := &recordingLogger{}
	svc := NewService(&fakeRepo{}, log)

	_, err := svc.GetStationReservations(context.Background(), &models.GetStationReservationsRequest{
		StationID: 7, Status: strPtr("pend%ding"),
	})
	assert.True(t, errors.Is(err, ErrInvalidInput))

	require.NotEmpty(t, log.lines)
	assert.Contains(t, log.lines[0], `status="pend%ding"`)
	assert.NotContains(t, log.lines[0], "%!")
}
