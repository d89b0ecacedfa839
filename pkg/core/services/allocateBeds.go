package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/careops/wardops/internal/config"
	"github.com/careops/wardops/pkg/core/allocator"
	"github.com/careops/wardops/pkg/core/model"
	"github.com/careops/wardops/pkg/db"
)

// AllocationReport is the persisted outcome of one bed-allocation run.
type AllocationReport struct {
	RunID  string
	Result *allocator.Result
}

// AllocateBeds loads the waiting-patient and bed snapshot, runs the bed
// allocator over the configured department constraints, and persists the
// resulting assignments: assignment records are inserted, allocated beds are
// flipped to occupied, and placed patients are flagged as assigned.
//
// now is the assignment timestamp; it is passed through to the allocator so
// runs stay reproducible.
func AllocateBeds(ctx context.Context, database db.BedStore, logger *zap.Logger, cfg *config.Config, now time.Time) (*AllocationReport, error) {
	logger.Info("Starting bed allocation run")

	patientRecords, err := database.GetWaitingPatients(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch waiting patients: %w", err)
	}

	bedRecords, err := database.GetBeds(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch beds: %w", err)
	}

	patients := toPatients(patientRecords)
	beds := toBeds(bedRecords)

	logger.Debug("Snapshot loaded",
		zap.Int("waiting_patients", len(patients)),
		zap.Int("allocatable_beds", len(beds)))

	result, err := allocator.Allocate(patients, beds, cfg.Departments, now)
	if err != nil {
		return nil, fmt.Errorf("allocation failed: %w", err)
	}

	runID := uuid.New().String()

	assignmentRecords := make([]db.BedAssignmentRecord, 0, len(result.Assignments))
	bedToPatient := make(map[string]string, len(result.Assignments))
	patientIDs := make([]string, 0, len(result.Assignments))

	for _, a := range result.Assignments {
		assignmentRecords = append(assignmentRecords, db.BedAssignmentRecord{
			ID:             uuid.New().String(),
			RunID:          runID,
			BedID:          a.BedID,
			PatientID:      a.PatientID,
			Department:     a.Department,
			UrgencyScore:   a.UrgencyScore,
			AssignmentDate: a.AssignmentDate,
		})
		bedToPatient[a.BedID] = a.PatientID
		patientIDs = append(patientIDs, a.PatientID)
	}

	if err := database.InsertBedAssignments(ctx, assignmentRecords); err != nil {
		return nil, fmt.Errorf("failed to persist assignments: %w", err)
	}
	if err := database.MarkBedsOccupied(ctx, bedToPatient); err != nil {
		return nil, fmt.Errorf("failed to update bed occupancy: %w", err)
	}
	if err := database.MarkPatientsAssigned(ctx, patientIDs); err != nil {
		return nil, fmt.Errorf("failed to update patient status: %w", err)
	}

	logger.Info("Bed allocation run complete",
		zap.String("run_id", runID),
		zap.Int("assigned", len(result.Assignments)),
		zap.Int("unassigned", len(result.Unassigned)))

	return &AllocationReport{RunID: runID, Result: result}, nil
}

func toPatients(records []db.PatientRecord) []model.Patient {
	patients := make([]model.Patient, 0, len(records))
	for _, r := range records {
		patients = append(patients, model.Patient{
			ID:                 r.ID,
			Name:               r.Name,
			UrgencyScore:       r.UrgencyScore,
			RequiredDepartment: r.RequiredDepartment,
			AdmissionDate:      r.AdmissionDate,
		})
	}
	return patients
}

// toBeds converts bed records into allocation candidates. Beds under
// maintenance or reserved are not allocatable and are excluded before the
// optimizer sees them.
func toBeds(records []db.BedRecord) []model.Bed {
	beds := make([]model.Bed, 0, len(records))
	for _, r := range records {
		status := model.BedStatus(r.Status)
		if status == model.BedMaintenance || status == model.BedReserved {
			continue
		}
		beds = append(beds, model.Bed{
			ID:               r.ID,
			RoomNumber:       r.RoomNumber,
			BedNumber:        r.BedNumber,
			Department:       r.Department,
			Status:           status,
			IsOccupied:       status == model.BedOccupied,
			CurrentPatientID: r.CurrentPatientID,
		})
	}
	return beds
}
