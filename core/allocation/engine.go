// Package allocation builds the per-date allocation working set and matches
// unassigned working drivers to available vehicles in priority order. All
// operations are synchronous and total; expected failures come back as typed
// conflicts, never panics. Callers must serialize operations targeting the
// same date.
package allocation

import (
	"sort"
	"time"

	"github.com/gyakuten55/rikuso-demo/core/availability"
	"github.com/gyakuten55/rikuso-demo/core/events"
	"github.com/gyakuten55/rikuso-demo/core/logger"
	"github.com/gyakuten55/rikuso-demo/core/metrics"
	"github.com/gyakuten55/rikuso-demo/core/model"
	"github.com/gyakuten55/rikuso-demo/core/schedule"
	"github.com/gyakuten55/rikuso-demo/core/snapshot"
	"github.com/gyakuten55/rikuso-demo/internal/eventbus"
)

// Config defines allocation parameters loaded from configuration.
type Config struct {
	// DefaultSlot is the time slot given to available vehicles.
	DefaultSlot model.TimeSlot `json:"default_slot"`
	// OffRoadSlot is the all-day slot given to maintenance/inspection entries.
	OffRoadSlot model.TimeSlot `json:"off_road_slot"`
	// InspectionWindowDays is the half-width of the maintenance window around
	// the next inspection date.
	InspectionWindowDays int `json:"inspection_window_days"`
}

// SetDefaults applies sane defaults.
func (c *Config) SetDefaults() {
	if c.DefaultSlot == (model.TimeSlot{}) {
		c.DefaultSlot = model.TimeSlot{Start: "08:00", End: "17:00"}
	}
	if c.OffRoadSlot == (model.TimeSlot{}) {
		c.OffRoadSlot = model.TimeSlot{Start: "00:00", End: "23:59"}
	}
	if c.InspectionWindowDays <= 0 {
		c.InspectionWindowDays = availability.InspectionWindowDays
	}
}

// Engine holds the allocation working set for one target date. It is rebuilt
// from scratch on every Recompute and mutated in place by manual operations.
type Engine struct {
	cfg  Config
	calc availability.Calculator
	log  logger.Logger
	sink metrics.Sink
	bus  eventbus.EventBus

	date        time.Time
	allocations []model.Allocation
}

// NewEngine creates an engine. Sink and bus may be nil when observability is
// not wired.
func NewEngine(cfg Config, log logger.Logger, sink metrics.Sink, bus eventbus.EventBus) *Engine {
	cfg.SetDefaults()
	if log == nil {
		log = logger.Nop{}
	}
	return &Engine{
		cfg:  cfg,
		calc: availability.Calculator{WindowDays: cfg.InspectionWindowDays},
		log:  log,
		sink: sink,
		bus:  bus,
	}
}

// Recompute rebuilds the working set for the date. Every vehicle of the
// snapshot lands in exactly one entry: schedule-committed vehicles as
// allocated, allocatable ones as available with their score, the rest as
// maintenance or inspection. The result is sorted by status rank, priority
// descending, then vehicle id.
func (e *Engine) Recompute(date time.Time, snap snapshot.Snapshot) ([]model.Allocation, error) {
	_, allocatable, err := e.calc.Compute(date, snap)
	if err != nil {
		return nil, err
	}

	seen := map[int]bool{}
	var allocs []model.Allocation

	for _, sc := range snap.SchedulesOn(date) {
		if !schedule.Commits(sc.Status) || seen[sc.VehicleID] {
			continue
		}
		seen[sc.VehicleID] = true
		allocs = append(allocs, model.Allocation{
			VehicleID: sc.VehicleID,
			DriverID:  sc.DriverID,
			Date:      date,
			TimeSlot:  sc.TimeSlot,
			Status:    model.StatusAllocated,
			Priority:  1,
			Scheduled: true,
		})
	}

	for _, v := range allocatable {
		if seen[v.ID] {
			continue
		}
		seen[v.ID] = true
		allocs = append(allocs, model.Allocation{
			VehicleID: v.ID,
			Date:      date,
			TimeSlot:  e.cfg.DefaultSlot,
			Status:    model.StatusAvailable,
			Priority:  Score(v, date),
		})
	}

	for _, v := range snap.Vehicles {
		if seen[v.ID] {
			continue
		}
		status := model.StatusInspection
		if v.Status == model.VehicleMaintenance || v.Status == model.VehicleBreakdown {
			status = model.StatusMaintenance
		}
		allocs = append(allocs, model.Allocation{
			VehicleID: v.ID,
			Date:      date,
			TimeSlot:  e.cfg.OffRoadSlot,
			Status:    status,
			Priority:  0,
		})
	}

	sortAllocations(allocs)
	e.date = date
	e.allocations = allocs

	for _, a := range allocs {
		vehiclesComputed.WithLabelValues(string(a.Status)).Inc()
	}
	if fr, ok := e.sink.(metrics.FleetSizeRecorder); ok && e.sink != nil {
		if err := fr.RecordFleetSize(len(snap.Vehicles)); err != nil {
			e.log.Errorf("fleet size metrics error: %v", err)
		}
	}
	e.log.Infof("recomputed %d allocations for %s", len(allocs), date.Format("2006-01-02"))
	return e.snapshotAllocations(), nil
}

// AutoAssign pairs unassigned working drivers, in their given order, with
// available entries in priority order (ties broken by ascending vehicle id).
// Drivers left without a vehicle are returned; a shortfall is capacity
// information for the caller, not an error.
func (e *Engine) AutoAssign(working []model.Driver) ([]model.Allocation, []model.Driver) {
	assigned := map[int]bool{}
	for _, a := range e.allocations {
		if a.Status == model.StatusAllocated && a.DriverID != 0 {
			assigned[a.DriverID] = true
		}
	}

	var unassigned []model.Driver
	for _, d := range working {
		if !assigned[d.ID] {
			unassigned = append(unassigned, d)
		}
	}

	avail := make([]int, 0, len(e.allocations))
	for i, a := range e.allocations {
		if a.Status == model.StatusAvailable {
			avail = append(avail, i)
		}
	}
	sort.SliceStable(avail, func(i, j int) bool {
		ai, aj := e.allocations[avail[i]], e.allocations[avail[j]]
		if ai.Priority != aj.Priority {
			return ai.Priority > aj.Priority
		}
		return ai.VehicleID < aj.VehicleID
	})

	n := len(unassigned)
	if n > len(avail) {
		n = len(avail)
	}
	var results []metrics.AllocationResult
	for i := 0; i < n; i++ {
		entry := &e.allocations[avail[i]]
		entry.DriverID = unassigned[i].ID
		entry.Status = model.StatusAllocated
		e.publish(events.AllocationEvent{Date: e.date, VehicleID: entry.VehicleID, DriverID: entry.DriverID, Auto: true})
		results = append(results, metrics.AllocationResult{
			Date:      e.date,
			VehicleID: entry.VehicleID,
			DriverID:  entry.DriverID,
			Status:    entry.Status,
			Priority:  entry.Priority,
			Auto:      true,
		})
	}
	shortfall := len(unassigned) - n
	autoAssignShortfall.Set(float64(shortfall))
	if shortfall > 0 {
		e.log.Warnf("auto-assign left %d drivers without a vehicle", shortfall)
	}
	e.recordResults(results)

	sortAllocations(e.allocations)
	return e.snapshotAllocations(), unassigned[n:]
}

// Assign hands the vehicle to the driver. It is only legal on an available
// entry, for a driver holding no allocated entry; otherwise a ConflictError
// is returned and nothing changes.
func (e *Engine) Assign(vehicleID, driverID int) ([]model.Allocation, error) {
	idx := e.indexOf(vehicleID)
	if idx < 0 {
		return nil, e.conflict("assign", vehicleID, driverID, ReasonUnknownVehicle)
	}
	if e.allocations[idx].Status != model.StatusAvailable {
		return nil, e.conflict("assign", vehicleID, driverID, ReasonVehicleNotAvailable)
	}
	for _, a := range e.allocations {
		if a.Status == model.StatusAllocated && a.DriverID == driverID {
			return nil, e.conflict("assign", vehicleID, driverID, ReasonDriverAlreadyHolds)
		}
	}

	entry := &e.allocations[idx]
	entry.DriverID = driverID
	entry.Status = model.StatusAllocated
	e.publish(events.AllocationEvent{Date: e.date, VehicleID: vehicleID, DriverID: driverID})
	e.recordResults([]metrics.AllocationResult{{
		Date:      e.date,
		VehicleID: vehicleID,
		DriverID:  driverID,
		Status:    entry.Status,
		Priority:  entry.Priority,
	}})
	sortAllocations(e.allocations)
	return e.snapshotAllocations(), nil
}

// Unassign releases a vehicle assigned by AutoAssign or Assign. Entries backed
// by a persisted dispatch schedule must go through the schedule lifecycle
// instead and are refused with a ConflictError.
func (e *Engine) Unassign(vehicleID int) ([]model.Allocation, error) {
	idx := e.indexOf(vehicleID)
	if idx < 0 {
		return nil, e.conflict("unassign", vehicleID, 0, ReasonUnknownVehicle)
	}
	entry := &e.allocations[idx]
	if entry.Status != model.StatusAllocated {
		return nil, e.conflict("unassign", vehicleID, 0, ReasonNotAllocated)
	}
	if entry.Scheduled {
		return nil, e.conflict("unassign", vehicleID, 0, ReasonScheduleBacked)
	}
	entry.DriverID = 0
	entry.Status = model.StatusAvailable
	sortAllocations(e.allocations)
	return e.snapshotAllocations(), nil
}

// Allocations returns a copy of the current working set.
func (e *Engine) Allocations() []model.Allocation { return e.snapshotAllocations() }

// Date returns the date the working set was built for.
func (e *Engine) Date() time.Time { return e.date }

// FilterByStatus returns the entries carrying the given status, preserving
// order.
func FilterByStatus(allocs []model.Allocation, status model.AllocationStatus) []model.Allocation {
	var out []model.Allocation
	for _, a := range allocs {
		if a.Status == status {
			out = append(out, a)
		}
	}
	return out
}

func (e *Engine) indexOf(vehicleID int) int {
	for i, a := range e.allocations {
		if a.VehicleID == vehicleID {
			return i
		}
	}
	return -1
}

func (e *Engine) conflict(op string, vehicleID, driverID int, reason string) error {
	assignConflicts.Inc()
	e.publish(events.ConflictEvent{Date: e.date, VehicleID: vehicleID, DriverID: driverID, Op: op, Reason: reason})
	e.log.Warnf("%s conflict on vehicle %d: %s", op, vehicleID, reason)
	return &ConflictError{VehicleID: vehicleID, DriverID: driverID, Op: op, Reason: reason}
}

func (e *Engine) publish(ev eventbus.Event) {
	if e.bus != nil {
		e.bus.Publish(ev)
	}
}

func (e *Engine) recordResults(results []metrics.AllocationResult) {
	if e.sink == nil || len(results) == 0 {
		return
	}
	if err := e.sink.RecordAllocationResult(results); err != nil {
		e.log.Errorf("metrics error: %v", err)
	}
}

func (e *Engine) snapshotAllocations() []model.Allocation {
	return append([]model.Allocation(nil), e.allocations...)
}

func sortAllocations(allocs []model.Allocation) {
	sort.SliceStable(allocs, func(i, j int) bool {
		if r := allocs[i].StatusRank() - allocs[j].StatusRank(); r != 0 {
			return r < 0
		}
		if allocs[i].Priority != allocs[j].Priority {
			return allocs[i].Priority > allocs[j].Priority
		}
		return allocs[i].VehicleID < allocs[j].VehicleID
	})
}
