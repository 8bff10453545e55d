package availability

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// SkipObserver получает уведомления о бронированиях, исключённых из проверки пересечений
type SkipObserver interface {
	ReservationSkipped(reason string)
}

// Причины пропуска бронирования
const (
	SkipReasonMalformed      = "malformed"
	SkipReasonForeignStation = "foreign_station"
)
