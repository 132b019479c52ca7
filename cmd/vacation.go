package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/gyakuten55/rikuso-demo/core/model"
)

var (
	vacDriverID int
	vacType     string
	vacStart    string
	vacEnd      string
)

var vacationCmd = &cobra.Command{
	Use:   "vacation",
	Short: "Vacation policy commands",
}

var vacationValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a leave request against quota and team policy",
	RunE:  runVacationValidate,
}

func init() {
	vacationValidateCmd.Flags().IntVar(&vacDriverID, "driver", 0, "driver id")
	vacationValidateCmd.Flags().StringVar(&vacType, "type", "annual", "leave type (annual, sick, personal, emergency)")
	vacationValidateCmd.Flags().StringVar(&vacStart, "start", "", "first day off (YYYY-MM-DD)")
	vacationValidateCmd.Flags().StringVar(&vacEnd, "end", "", "last day off (YYYY-MM-DD, default start)")
	vacationCmd.AddCommand(vacationValidateCmd)
	rootCmd.AddCommand(vacationCmd)
}

func runVacationValidate(cmd *cobra.Command, args []string) error {
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
	driver, ok := snap.Driver(vacDriverID)
	if !ok {
		return fmt.Errorf("unknown driver %d", vacDriverID)
	}
	start, err := time.Parse("2006-01-02", vacStart)
	if err != nil {
		return fmt.Errorf("invalid start date %q: %w", vacStart, err)
	}
	end := start
	if vacEnd != "" {
		if end, err = time.Parse("2006-01-02", vacEnd); err != nil {
			return fmt.Errorf("invalid end date %q: %w", vacEnd, err)
		}
	}
	if end.Before(start) {
		return fmt.Errorf("end date %s before start date %s", vacEnd, vacStart)
	}

	req := model.VacationRequest{
		DriverID:    driver.ID,
		DriverName:  driver.Name,
		Team:        driver.Team,
		Type:        model.VacationType(vacType),
		StartDate:   start,
		EndDate:     end,
		Days:        model.DaysBetween(start, end) + 1,
		Status:      model.RequestPending,
		RequestedAt: time.Now(),
	}

	verdict := svc.ValidateVacation(req, snap)
	fmt.Fprintln(cmd.OutOrStdout(), verdict)
	if !verdict.OK {
		return fmt.Errorf("request rejected: %s", verdict.Reason)
	}
	return nil
}
