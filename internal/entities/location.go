package entities

import "time"

// DriverLocation хранит последнюю известную позицию водителя.
// Ключом записи служит DriverID, каждая публикация перезаписывает предыдущую.
type DriverLocation struct {
	DriverID  string
	Latitude  float64
	Longitude float64
	Timestamp time.Time
}
