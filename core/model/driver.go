package model

// DriverStatus enumerates the live status of a driver.
type DriverStatus string

const (
	DriverWorking   DriverStatus = "working"
	DriverVacation  DriverStatus = "vacation"
	DriverSick      DriverStatus = "sick"
	DriverAvailable DriverStatus = "available"
)

// Driver represents a member of the roster.
type Driver struct {
	ID         int          `json:"id"`
	Name       string       `json:"name"`
	Team       string       `json:"team"`
	EmployeeID string       `json:"employee_id"`
	Status     DriverStatus `json:"status"`

	// AssignedVehicle is a display-only back-reference, like Vehicle.Driver.
	AssignedVehicle string `json:"assigned_vehicle,omitempty"`
}
