package get_available_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ChargingService/internal/domain"
	"github.com/m04kA/SMC-ChargingService/internal/service/availability"
	"github.com/m04kA/SMC-ChargingService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeSlotRepo struct {
	slots []domain.Slot
	err   error
	calls int
}

func (f *fakeSlotRepo) GetByStation(_ context.Context, _ int64) ([]domain.Slot, error) {
	f.calls++
	return f.slots, f.err
}

type fakeReservationRepo struct {
	reservations []domain.Reservation
	err          error
	calls        int
	lastFilter   domain.ReservationFilter
}

func (f *fakeReservationRepo) GetByStationWithFilter(_ context.Context, filter domain.ReservationFilter) ([]domain.Reservation, error) {
	f.calls++
	f.lastFilter = filter
	return f.reservations, f.err
}

type fakeMetrics struct {
	resolved []int
}

func (m *fakeMetrics) SlotsResolved(count int) {
	m.resolved = append(m.resolved, count)
}

var msk = time.FixedZone("MSK", 3*3600)

func ptrInt64(v int64) *int64                  { return &v }
func ptrFloat(v float64) *float64              { return &v }
func day(y int, m time.Month, d int) time.Time { return time.Date(y, m, d, 0, 0, 0, 0, time.UTC) }

func stationSlots() []domain.Slot {
	return []domain.Slot{
		{ID: 1, StationID: 7, ConnectorType: "CCS", MaxPowerKW: 50, Status: domain.SlotStatusAvailable, IsAvailable: true},
		{ID: 2, StationID: 7, ConnectorType: "Type2", MaxPowerKW: 22, Status: domain.SlotStatusAvailable, IsAvailable: true},
		{ID: 3, StationID: 7, ConnectorType: "CHAdeMO", MaxPowerKW: 50, Status: domain.SlotStatusUnderMaintenance, IsAvailable: true},
	}
}

func booking(slotID int64, start, end time.Time, status domain.ReservationStatus) domain.Reservation {
	return domain.Reservation{ID: slotID * 100, StationID: 7, SlotID: ptrInt64(slotID), StartTime: start, EndTime: end, Status: status}
}

func newTestUseCase(slots *fakeSlotRepo, reservations *fakeReservationRepo, m Metrics) *UseCase {
	return NewUseCase(slots, reservations, availability.NewResolver(nopLogger{}, nil), m, msk, nopLogger{})
}

func TestExecute_WithoutWindow(t *testing.T) {
	slots := &fakeSlotRepo{slots: stationSlots()}
	reservations := &fakeReservationRepo{}
	m := &fakeMetrics{}
	uc := newTestUseCase(slots, reservations, m)

	resp, err := uc.Execute(context.Background(), &Request{StationID: 7})
	require.NoError(t, err)

	assert.Nil(t, resp.Window)
	require.Len(t, resp.Slots, 2)
	assert.Equal(t, "CCS - 50 kW", resp.Slots[0].Label)
	assert.Equal(t, "Type2 - 22 kW", resp.Slots[1].Label)
	assert.Equal(t, 0, reservations.calls, "reservations are not needed without a window")
	assert.Equal(t, []int{2}, m.resolved)
}

func TestExecute_WithWindow(t *testing.T) {
	start := time.Date(2024, 5, 10, 10, 0, 0, 0, msk)
	slots := &fakeSlotRepo{slots: stationSlots()}
	reservations := &fakeReservationRepo{reservations: []domain.Reservation{
		booking(1, start.Add(30*time.Minute), start.Add(90*time.Minute), domain.ReservationAccepted),
		booking(2, start.Add(-time.Hour), start, domain.ReservationActive),
	}}
	uc := newTestUseCase(slots, reservations, nil)

	resp, err := uc.Execute(context.Background(), &Request{
		StationID:     7,
		Date:          day(2024, 5, 10),
		StartTime:     types.TimeString("10:00"),
		DurationHours: ptrFloat(1.5),
	})
	require.NoError(t, err)

	require.NotNil(t, resp.Window)
	assert.True(t, start.Equal(resp.Window.Start))
	assert.Equal(t, 90*time.Minute, resp.Window.Duration)

	require.Len(t, resp.Slots, 1)
	assert.Equal(t, int64(2), resp.Slots[0].ID)

	require.Equal(t, 1, reservations.calls)
	assert.Equal(t, int64(7), reservations.lastFilter.StationID)
	assert.False(t, reservations.lastFilter.IncludeInactive)
	require.NotNil(t, reservations.lastFilter.From)
	require.NotNil(t, reservations.lastFilter.To)
	assert.True(t, start.Equal(*reservations.lastFilter.From))
	assert.True(t, start.Add(90*time.Minute).Equal(*reservations.lastFilter.To))
}

func TestExecute_DefaultDuration(t *testing.T) {
	uc := newTestUseCase(&fakeSlotRepo{slots: stationSlots()}, &fakeReservationRepo{}, nil)

	resp, err := uc.Execute(context.Background(), &Request{
		StationID: 7,
		Date:      day(2024, 5, 10),
		StartTime: types.TimeString("23:30"),
	})
	require.NoError(t, err)
	require.NotNil(t, resp.Window)
	assert.Equal(t, time.Hour, resp.Window.Duration)
	assert.True(t, time.Date(2024, 5, 11, 0, 30, 0, 0, msk).Equal(resp.Window.End()))
}

func TestExecute_SelectionReconciliation(t *testing.T) {
	start := time.Date(2024, 5, 10, 10, 0, 0, 0, msk)
	reservations := []domain.Reservation{
		booking(1, start, start.Add(time.Hour), domain.ReservationPending),
	}

	tests := []struct {
		name         string
		selected     *int64
		wantSelected *int64
		wantCleared  bool
	}{
		{name: "no selection", selected: nil, wantSelected: nil, wantCleared: false},
		{name: "selection still free", selected: ptrInt64(2), wantSelected: ptrInt64(2), wantCleared: false},
		{name: "selection taken", selected: ptrInt64(1), wantSelected: nil, wantCleared: true},
		{name: "selection under maintenance", selected: ptrInt64(3), wantSelected: nil, wantCleared: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newTestUseCase(&fakeSlotRepo{slots: stationSlots()}, &fakeReservationRepo{reservations: reservations}, nil)

			resp, err := uc.Execute(context.Background(), &Request{
				StationID:      7,
				Date:           day(2024, 5, 10),
				StartTime:      types.TimeString("10:00"),
				SelectedSlotID: tt.selected,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.wantSelected, resp.SelectedSlotID)
			assert.Equal(t, tt.wantCleared, resp.SelectionCleared)
		})
	}
}

func TestExecute_EmptyResultIsNotAnError(t *testing.T) {
	start := time.Date(2024, 5, 10, 10, 0, 0, 0, msk)
	reservations := &fakeReservationRepo{reservations: []domain.Reservation{
		booking(1, start, start.Add(time.Hour), domain.ReservationAccepted),
		booking(2, start, start.Add(time.Hour), domain.ReservationAccepted),
	}}
	uc := newTestUseCase(&fakeSlotRepo{slots: stationSlots()}, reservations, nil)

	resp, err := uc.Execute(context.Background(), &Request{
		StationID: 7,
		Date:      day(2024, 5, 10),
		StartTime: types.TimeString("10:00"),
	})
	require.NoError(t, err)
	assert.NotNil(t, resp.Slots)
	assert.Empty(t, resp.Slots)
}

func TestExecute_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		req     *Request
		wantErr error
	}{
		{name: "missing station", req: &Request{}, wantErr: ErrInvalidInput},
		{name: "invalid selected slot", req: &Request{StationID: 7, SelectedSlotID: ptrInt64(0)}, wantErr: ErrInvalidInput},
		{name: "date without time", req: &Request{StationID: 7, Date: day(2024, 5, 10)}, wantErr: ErrInvalidInput},
		{name: "time without date", req: &Request{StationID: 7, StartTime: "10:00"}, wantErr: ErrInvalidInput},
		{name: "duration alone", req: &Request{StationID: 7, DurationHours: ptrFloat(1)}, wantErr: ErrInvalidInput},
		{name: "malformed time", req: &Request{StationID: 7, Date: day(2024, 5, 10), StartTime: "25:99"}, wantErr: ErrInvalidInput},
		{name: "zero duration", req: &Request{StationID: 7, Date: day(2024, 5, 10), StartTime: "10:00", DurationHours: ptrFloat(0)}, wantErr: ErrInvalidWindow},
		{name: "negative duration", req: &Request{StationID: 7, Date: day(2024, 5, 10), StartTime: "10:00", DurationHours: ptrFloat(-2)}, wantErr: ErrInvalidWindow},
		{name: "duration too long", req: &Request{StationID: 7, Date: day(2024, 5, 10), StartTime: "10:00", DurationHours: ptrFloat(48)}, wantErr: ErrInvalidWindow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slots := &fakeSlotRepo{slots: stationSlots()}
			uc := newTestUseCase(slots, &fakeReservationRepo{}, nil)

			resp, err := uc.Execute(context.Background(), tt.req)
			assert.Nil(t, resp)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
			assert.Equal(t, 0, slots.calls)
		})
	}
}

func TestExecute_SourceErrors(t *testing.T) {
	windowReq := func() *Request {
		return &Request{StationID: 7, Date: day(2024, 5, 10), StartTime: "10:00"}
	}

	t.Run("station not found", func(t *testing.T) {
		uc := newTestUseCase(&fakeSlotRepo{err: domain.ErrStationNotFound}, &fakeReservationRepo{}, nil)
		_, err := uc.Execute(context.Background(), windowReq())
		assert.True(t, errors.Is(err, ErrStationNotFound))
	})

	t.Run("slot source failure", func(t *testing.T) {
		uc := newTestUseCase(&fakeSlotRepo{err: errors.New("connection refused")}, &fakeReservationRepo{}, nil)
		_, err := uc.Execute(context.Background(), windowReq())
		assert.True(t, errors.Is(err, ErrInternal))
	})

	t.Run("reservation source failure", func(t *testing.T) {
		uc := newTestUseCase(&fakeSlotRepo{slots: stationSlots()}, &fakeReservationRepo{err: errors.New("timeout")}, nil)
		_, err := uc.Execute(context.Background(), windowReq())
		assert.True(t, errors.Is(err, ErrInternal))
	})

	t.Run("slot without id", func(t *testing.T) {
		slots := &fakeSlotRepo{slots: []domain.Slot{{ConnectorType: "CCS", Status: domain.SlotStatusAvailable, IsAvailable: true}}}
		uc := newTestUseCase(slots, &fakeReservationRepo{}, nil)
		_, err := uc.Execute(context.Background(), windowReq())
		assert.True(t, errors.Is(err, ErrInternal))
	})
}

func TestReconcileSelection(t *testing.T) {
	slots := []domain.AvailableSlot{{ID: 4}, {ID: 9}}

	selected, cleared := reconcileSelection(ptrInt64(9), slots)
	require.NotNil(t, selected)
	assert.Equal(t, int64(9), *selected)
	assert.False(t, cleared)

	selected, cleared = reconcileSelection(ptrInt64(5), slots)
	assert.Nil(t, selected)
	assert.True(t, cleared)

	selected, cleared = reconcileSelection(ptrInt64(5), []domain.AvailableSlot{})
	assert.Nil(t, selected)
	assert.True(t, cleared)
}
