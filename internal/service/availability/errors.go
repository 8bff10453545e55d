package availability

import "errors"

var (
	// ErrInvalidWindow возвращается, когда окно бронирования не заканчивается строго после начала
	ErrInvalidWindow = errors.New("availability: invalid candidate window")

	// ErrInvalidSlot возвращается, когда у слота нет идентификатора
	ErrInvalidSlot = errors.New("availability: invalid slot")
)
