package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// ListEquipmentCmd creates the list-equipment command
func ListEquipmentCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list-equipment",
		Short: "List tracked equipment with maintenance status",
		RunE: func(cmd *cobra.Command, args []string) error {
			equipment, err := app.Database.GetEquipment(app.Ctx)
			if err != nil {
				return err
			}

			if len(equipment) == 0 {
				fmt.Println("No equipment found")
				return nil
			}

			for _, e := range equipment {
				maintained := "-"
				if !e.LastMaintenance.IsZero() {
					maintained = e.LastMaintenance.Format("2006-01-02")
				}
				fmt.Printf("%-10s %-24s %-12s %-12s last maintained %s\n",
					e.ID, e.Name, e.Department, e.Status, maintained)
			}

			return nil
		},
	}

	return cmd
}
