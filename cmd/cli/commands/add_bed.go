package commands

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/careops/wardops/pkg/core/model"
	"github.com/careops/wardops/pkg/db"
)

// AddBedCmd creates the add-bed command
func AddBedCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add-bed",
		Short: "Register a bed in a department",
		RunE: func(cmd *cobra.Command, args []string) error {
			room, _ := cmd.Flags().GetString("room")
			number, _ := cmd.Flags().GetString("number")
			department, _ := cmd.Flags().GetString("department")
			status, _ := cmd.Flags().GetString("status")

			if !model.BedStatus(status).IsValid() {
				return fmt.Errorf("invalid bed status %q", status)
			}

			bed := &db.BedRecord{
				ID:         uuid.New().String(),
				RoomNumber: room,
				BedNumber:  number,
				Department: department,
				Status:     status,
			}

			if err := app.Database.InsertBed(app.Ctx, bed); err != nil {
				return err
			}

			fmt.Printf("Added bed %s (room %s, bed %s) to %s\n", bed.ID, room, number, department)
			return nil
		},
	}

	cmd.Flags().String("room", "", "Room number (required)")
	cmd.Flags().String("number", "", "Bed number within the room (required)")
	cmd.Flags().String("department", "", "Department (required)")
	cmd.Flags().String("status", string(model.BedAvailable), "Initial status")
	cmd.MarkFlagRequired("room")
	cmd.MarkFlagRequired("number")
	cmd.MarkFlagRequired("department")

	return cmd
}
