package get_station_reservations

import (
	"context"

	"github.com/m04kA/SMC-ChargingService/internal/service/reservations/models"
)

type ReservationsService interface {
	GetStationReservations(ctx context.Context, req *models.GetStationReservationsRequest) (*models.ReservationListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
