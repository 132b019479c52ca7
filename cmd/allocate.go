package cmd

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var allocateCmd = &cobra.Command{
	Use:   "allocate",
	Short: "Compute the vehicle allocation for a date and auto-assign drivers",
	RunE:  runAllocate,
}

func init() {
	rootCmd.AddCommand(allocateCmd)
}

func runAllocate(cmd *cobra.Command, args []string) error {
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
	date, err := targetDate()
	if err != nil {
		return err
	}

	res, err := svc.Allocate(cmd.Context(), date, snap)
	if err != nil {
		return err
	}

	tw := table.NewWriter()
	tw.SetOutputMirror(cmd.OutOrStdout())
	tw.AppendHeader(table.Row{"VEHICLE", "DRIVER", "STATUS", "PRIORITY", "SLOT"})
	for _, a := range res.Allocations {
		driver := "-"
		if a.DriverID != 0 {
			driver = fmt.Sprintf("%d", a.DriverID)
			if d, ok := snap.Driver(a.DriverID); ok {
				driver = d.Name
			}
		}
		plate := fmt.Sprintf("%d", a.VehicleID)
		if v, ok := snap.Vehicle(a.VehicleID); ok {
			plate = v.PlateNumber
		}
		tw.AppendRow(table.Row{plate, driver, a.Status, a.Priority,
			fmt.Sprintf("%s-%s", a.TimeSlot.Start, a.TimeSlot.End)})
	}
	tw.Render()

	if len(res.Unassigned) > 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "\n%d working driver(s) without a vehicle:\n", len(res.Unassigned))
		for _, d := range res.Unassigned {
			fmt.Fprintf(cmd.OutOrStdout(), "  %s (%d)\n", d.Name, d.ID)
		}
	}
	return nil
}
