package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/careops/wardops/pkg/db"
)

// ListStaffCmd creates the list-staff command
func ListStaffCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list-staff",
		Short: "List staff members, optionally filtered by department",
		RunE: func(cmd *cobra.Command, args []string) error {
			department, _ := cmd.Flags().GetString("department")

			var staff []db.StaffRecord
			var err error
			if department != "" {
				staff, err = app.Database.GetStaff(app.Ctx, department)
			} else {
				staff, err = app.Database.GetAllStaff(app.Ctx)
			}
			if err != nil {
				return err
			}

			if len(staff) == 0 {
				fmt.Println("No staff found")
				return nil
			}

			for _, m := range staff {
				fmt.Printf("%-10s %-24s %-12s %-12s %s\n", m.ID, m.Name, m.Role, m.Department, m.Status)
			}

			return nil
		},
	}

	cmd.Flags().String("department", "", "Filter by department")

	return cmd
}
