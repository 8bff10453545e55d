package domain

import "errors"

// ErrStationNotFound is returned by slot and reservation sources for an unknown station
var ErrStationNotFound = errors.New("station not found")
