package domain

// DriverStatus represents the current status of a driver.
type DriverStatus string

const (
	DriverStatusAvailable DriverStatus = "AVAILABLE"
	DriverStatusBusy      DriverStatus = "BUSY"
	DriverStatusOffline   DriverStatus = "OFFLINE"
)

// Driver represents a driver in the system. Status is owned by the
// dispatch path: only the acquire/release pair moves a driver in or
// out of BUSY.
type Driver struct {
	ID           string
	Name         string
	Phone        string
	VehicleModel string
	VehiclePlate string
	Status       DriverStatus
}
