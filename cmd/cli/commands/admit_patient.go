package commands

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/careops/wardops/pkg/db"
)

// AdmitPatientCmd creates the admit-patient command
func AdmitPatientCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admit-patient",
		Short: "Register a patient on the bed waiting list",
		RunE: func(cmd *cobra.Command, args []string) error {
			name, _ := cmd.Flags().GetString("name")
			urgency, _ := cmd.Flags().GetInt("urgency")
			department, _ := cmd.Flags().GetString("department")

			if urgency < 1 || urgency > 10 {
				return fmt.Errorf("urgency must be between 1 and 10, got %d", urgency)
			}

			patient := &db.PatientRecord{
				ID:                 uuid.New().String(),
				Name:               name,
				UrgencyScore:       urgency,
				RequiredDepartment: department,
				AdmissionDate:      time.Now(),
			}

			if err := app.Database.InsertPatient(app.Ctx, patient); err != nil {
				return err
			}

			fmt.Printf("Admitted %s (%s), urgency %d, department %s\n", name, patient.ID, urgency, department)
			return nil
		},
	}

	cmd.Flags().String("name", "", "Patient display name (required)")
	cmd.Flags().Int("urgency", 0, "Urgency score 1-10 (required)")
	cmd.Flags().String("department", "", "Required department (required)")
	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("urgency")
	cmd.MarkFlagRequired("department")

	return cmd
}
