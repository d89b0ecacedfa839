package commands

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/careops/wardops/pkg/db"
)

// AddEquipmentCmd creates the add-equipment command
func AddEquipmentCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add-equipment",
		Short: "Register a piece of equipment in a department",
		RunE: func(cmd *cobra.Command, args []string) error {
			name, _ := cmd.Flags().GetString("name")
			department, _ := cmd.Flags().GetString("department")
			status, _ := cmd.Flags().GetString("status")

			equipment := &db.EquipmentRecord{
				ID:         uuid.New().String(),
				Name:       name,
				Department: department,
				Status:     status,
			}

			if err := app.Database.InsertEquipment(app.Ctx, equipment); err != nil {
				return err
			}

			fmt.Printf("Added equipment %s (%s) to %s\n", name, equipment.ID, department)
			return nil
		},
	}

	cmd.Flags().String("name", "", "Equipment name (required)")
	cmd.Flags().String("department", "", "Department (required)")
	cmd.Flags().String("status", "Operational", "Initial status")
	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("department")

	return cmd
}
