package stationapi

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("stationapi client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от бэкенда
	ErrInvalidResponse = errors.New("stationapi client: invalid response")

	// ErrInvalidFilter возвращается при некорректном фильтре
	ErrInvalidFilter = errors.New("stationapi client: invalid filter")
)
