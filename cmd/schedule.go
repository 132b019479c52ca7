package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/gyakuten55/rikuso-demo/core/model"
	"github.com/gyakuten55/rikuso-demo/core/schedule"
)

var (
	schedID   int
	schedNext string
)

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Dispatch schedule commands",
}

var scheduleTransitionCmd = &cobra.Command{
	Use:   "transition",
	Short: "Advance a schedule entry through its lifecycle",
	RunE:  runScheduleTransition,
}

func init() {
	scheduleTransitionCmd.Flags().IntVar(&schedID, "id", 0, "schedule id")
	scheduleTransitionCmd.Flags().StringVar(&schedNext, "to", "", "target status (in_progress, completed, cancelled)")
	scheduleCmd.AddCommand(scheduleTransitionCmd)
	rootCmd.AddCommand(scheduleCmd)
}

func runScheduleTransition(cmd *cobra.Command, args []string) error {
	svc, err := newService()
	if err != nil {
		return err
	}
	defer func() {
		if err := svc.Close(); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "service close: %v\n", err)
		}
	}()

	snap, err := loadSnapshot()
	if err != nil {
		return err
	}
	var entry *model.DispatchSchedule
	for i := range snap.Schedules {
		if snap.Schedules[i].ID == schedID {
			entry = &snap.Schedules[i]
			break
		}
	}
	if entry == nil {
		return fmt.Errorf("unknown schedule %d", schedID)
	}

	next, err := svc.TransitionSchedule(*entry, model.ScheduleStatus(schedNext), time.Now())
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "schedule %d: %s -> %s (commits vehicle %d: %t)\n",
		next.ID, entry.Status, next.Status, next.VehicleID, schedule.Commits(next.Status))
	return nil
}
