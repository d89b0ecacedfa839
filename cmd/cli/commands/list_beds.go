package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// ListBedsCmd creates the list-beds command
func ListBedsCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list-beds",
		Short: "List all beds with their status and occupants",
		RunE: func(cmd *cobra.Command, args []string) error {
			beds, err := app.Database.GetBeds(app.Ctx)
			if err != nil {
				return err
			}

			if len(beds) == 0 {
				fmt.Println("No beds found")
				return nil
			}

			for _, b := range beds {
				occupant := "-"
				if b.CurrentPatientID != "" {
					occupant = b.CurrentPatientID
				}
				fmt.Printf("%-10s room %-5s bed %-4s %-12s %-12s %s\n",
					b.ID, b.RoomNumber, b.BedNumber, b.Department, b.Status, occupant)
			}

			return nil
		},
	}

	return cmd
}
