package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/careops/wardops/pkg/core/services"
)

// AllocateBedsCmd creates the allocate-beds command
func AllocateBedsCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "allocate-beds",
		Short: "Run the bed allocation optimizer over waiting patients",
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := services.AllocateBeds(app.Ctx, app.Database, app.Logger, app.Cfg, time.Now())
			if err != nil {
				return err
			}

			fmt.Printf("Run %s: %d assigned, %d unassigned\n",
				report.RunID, len(report.Result.Assignments), len(report.Result.Unassigned))

			for _, a := range report.Result.Assignments {
				fmt.Printf("  %s -> bed %s (%s, urgency %d)\n", a.PatientID, a.BedID, a.Department, a.UrgencyScore)
			}
			for _, u := range report.Result.Unassigned {
				fmt.Printf("  %s unassigned: %s\n", u.Patient.ID, u.Reason)
			}

			fmt.Println("Utilization:")
			for _, u := range report.Result.Utilization {
				fmt.Printf("  %-12s total=%d occupied=%d available=%d\n", u.Department, u.Total, u.Occupied, u.Available)
			}

			return nil
		},
	}

	return cmd
}
