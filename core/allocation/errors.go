package allocation

import "fmt"

// Conflict reasons returned by manual assign/unassign operations.
const (
	ReasonVehicleNotAvailable = "vehicle not available"
	ReasonDriverAlreadyHolds  = "driver already holds a vehicle"
	ReasonNotAllocated        = "vehicle not allocated"
	ReasonScheduleBacked      = "allocation backed by a dispatch schedule"
	ReasonUnknownVehicle      = "vehicle not in working set"
)

// ConflictError reports a manual operation that could not be applied. The
// working set is left unchanged; the caller decides whether to retry with
// another vehicle or surface the conflict to the operator.
type ConflictError struct {
	VehicleID int
	DriverID  int
	Op        string
	Reason    string
}

func (e *ConflictError) Error() string {
	if e.DriverID != 0 {
		return fmt.Sprintf("%s vehicle %d to driver %d: %s", e.Op, e.VehicleID, e.DriverID, e.Reason)
	}
	return fmt.Sprintf("%s vehicle %d: %s", e.Op, e.VehicleID, e.Reason)
}
