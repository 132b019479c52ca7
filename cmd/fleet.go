package cmd

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var fleetCmd = &cobra.Command{
	Use:   "fleet",
	Short: "Fleet related commands",
}

var fleetStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summarize the fleet for a date",
	RunE:  runFleetStats,
}

func init() {
	fleetCmd.AddCommand(fleetStatsCmd)
	rootCmd.AddCommand(fleetCmd)
}

func runFleetStats(cmd *cobra.Command, args []string) error {
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
	sum := res.Summary

	tw := table.NewWriter()
	tw.SetOutputMirror(cmd.OutOrStdout())
	tw.AppendHeader(table.Row{"METRIC", "VALUE"})
	tw.AppendRow(table.Row{"vehicles", sum.Vehicles})
	tw.AppendRow(table.Row{"working drivers", sum.WorkingDrivers})
	tw.AppendRow(table.Row{"utilization", fmt.Sprintf("%.0f%%", sum.UtilizationRate*100)})
	tw.AppendRow(table.Row{"mileage mean", fmt.Sprintf("%.0f km", sum.MileageMean)})
	tw.AppendRow(table.Row{"mileage median", fmt.Sprintf("%.0f km", sum.MileageMedian)})
	tw.AppendRow(table.Row{"mileage stddev", fmt.Sprintf("%.0f km", sum.MileageStdDev)})
	for status, n := range sum.Allocations {
		tw.AppendRow(table.Row{fmt.Sprintf("allocations %s", status), n})
	}
	tw.Render()
	return nil
}
