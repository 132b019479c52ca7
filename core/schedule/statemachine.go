// Package schedule governs the dispatch schedule lifecycle. Entries move
// scheduled → in_progress → completed, with cancellation possible until
// completion. Completed and cancelled are terminal.
package schedule

import (
	"fmt"
	"time"

	"github.com/gyakuten55/rikuso-demo/core/model"
)

// InvalidTransitionError reports an illegal lifecycle change. The entry is
// never coerced to the nearest legal state.
type InvalidTransitionError struct {
	ScheduleID int
	From, To   model.ScheduleStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("schedule %d: illegal transition %s -> %s", e.ScheduleID, e.From, e.To)
}

var transitions = map[model.ScheduleStatus][]model.ScheduleStatus{
	model.ScheduleScheduled:  {model.ScheduleInProgress, model.ScheduleCancelled},
	model.ScheduleInProgress: {model.ScheduleCompleted, model.ScheduleCancelled},
	model.ScheduleCompleted:  nil,
	model.ScheduleCancelled:  nil,
}

// CanTransition reports whether from may move to to.
func CanTransition(from, to model.ScheduleStatus) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Transition returns a copy of the entry moved to the target status with
// UpdatedAt stamped, or an InvalidTransitionError leaving the input untouched.
func Transition(s model.DispatchSchedule, target model.ScheduleStatus, now time.Time) (model.DispatchSchedule, error) {
	if !CanTransition(s.Status, target) {
		return s, &InvalidTransitionError{ScheduleID: s.ID, From: s.Status, To: target}
	}
	s.Status = target
	s.UpdatedAt = now
	return s, nil
}

// Commits reports whether a schedule in the given status binds its vehicle and
// driver for its date. Cancelled and completed entries free both: the former
// immediately, the latter because the trip is already over.
func Commits(st model.ScheduleStatus) bool {
	return st == model.ScheduleScheduled || st == model.ScheduleInProgress
}
