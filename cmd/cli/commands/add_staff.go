package commands

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/careops/wardops/pkg/core/model"
	"github.com/careops/wardops/pkg/db"
)

// AddStaffCmd creates the add-staff command
func AddStaffCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add-staff",
		Short: "Register a staff member in a department",
		RunE: func(cmd *cobra.Command, args []string) error {
			name, _ := cmd.Flags().GetString("name")
			role, _ := cmd.Flags().GetString("role")
			department, _ := cmd.Flags().GetString("department")
			email, _ := cmd.Flags().GetString("email")
			status, _ := cmd.Flags().GetString("status")

			if !model.StaffStatus(status).IsValid() {
				return fmt.Errorf("invalid staff status %q", status)
			}

			staff := &db.StaffRecord{
				ID:         uuid.New().String(),
				Name:       name,
				Role:       role,
				Department: department,
				Email:      email,
				Status:     status,
			}

			if err := app.Database.InsertStaff(app.Ctx, staff); err != nil {
				return err
			}

			fmt.Printf("Added %s (%s) to %s as %s\n", name, staff.ID, department, role)
			return nil
		},
	}

	cmd.Flags().String("name", "", "Display name (required)")
	cmd.Flags().String("role", "nurse", "Role (doctor, nurse, technician, ...)")
	cmd.Flags().String("department", "", "Department (required)")
	cmd.Flags().String("email", "", "Contact email")
	cmd.Flags().String("status", string(model.StaffOffDuty), "Initial status")
	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("department")

	return cmd
}
