package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/careops/wardops/pkg/core/services"
)

// GenerateScheduleCmd creates the generate-schedule command
func GenerateScheduleCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate-schedule",
		Short: "Generate a department's shift schedule for the planning horizon",
		RunE: func(cmd *cobra.Command, args []string) error {
			department, _ := cmd.Flags().GetString("department")
			startStr, _ := cmd.Flags().GetString("start")

			start := time.Now()
			if startStr != "" {
				var err error
				start, err = time.Parse("2006-01-02", startStr)
				if err != nil {
					return fmt.Errorf("invalid start date %q (want YYYY-MM-DD): %w", startStr, err)
				}
			}

			report, err := services.GenerateSchedule(app.Ctx, app.Database, app.Logger, app.Cfg, department, start)
			if err != nil {
				return err
			}

			fmt.Printf("Run %s: %d staff scheduled over %d dates\n", report.RunID, len(report.Schedules), len(report.Dates))
			for _, schedule := range report.Schedules {
				fmt.Printf("  %s (%s): %d shifts\n", schedule.StaffName, schedule.StaffID, len(schedule.Shifts))
				for _, shift := range schedule.Shifts {
					fmt.Printf("    %s %s %s-%s\n",
						shift.Date.Format("2006-01-02"), shift.ShiftName,
						shift.Start.Format("15:04"), shift.End.Format("Mon 15:04"))
				}
			}

			return nil
		},
	}

	cmd.Flags().String("department", "", "Department to schedule (required)")
	cmd.Flags().String("start", "", "Horizon start date YYYY-MM-DD (default today)")
	cmd.MarkFlagRequired("department")

	return cmd
}
