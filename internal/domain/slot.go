package domain

import (
	"fmt"
	"strconv"
)

// SlotStatus represents the administrative status of a charging slot
type SlotStatus string

const (
	SlotStatusAvailable        SlotStatus = "available"
	SlotStatusOccupied         SlotStatus = "occupied"
	SlotStatusUnderMaintenance SlotStatus = "under_maintenance"
)

// Slot represents one physical charging connector at a station
type Slot struct {
	ID            int64
	StationID     int64
	ConnectorType string // CCS, CHAdeMO, Type 2, ...
	MaxPowerKW    float64
	Status        SlotStatus
	IsAvailable   bool // может быть false при статусе available, если слот временно отключён
}

// IsEligible returns true if the slot can be considered for booking.
// Both the status and the availability flag are required.
func (s *Slot) IsEligible() bool {
	return s.Status == SlotStatusAvailable && s.IsAvailable
}

// AvailableSlot represents a slot that can be booked for the requested window
type AvailableSlot struct {
	ID            int64
	ConnectorType string
	MaxPowerKW    float64
	Label         string // "CCS - 50 kW"
}

// NewAvailableSlot builds the output descriptor for a slot
func NewAvailableSlot(s Slot) AvailableSlot {
	return AvailableSlot{
		ID:            s.ID,
		ConnectorType: s.ConnectorType,
		MaxPowerKW:    s.MaxPowerKW,
		Label:         SlotLabel(s.ConnectorType, s.MaxPowerKW),
	}
}

// SlotLabel returns a human-readable label combining connector type and power rating
func SlotLabel(connectorType string, maxPowerKW float64) string {
	return fmt.Sprintf("%s - %s kW", connectorType, strconv.FormatFloat(maxPowerKW, 'f', -1, 64))
}
