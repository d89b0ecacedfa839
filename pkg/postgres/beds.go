package postgres

import (
	"context"
	"fmt"

	"github.com/careops/wardops/pkg/db"
)

// GetBeds retrieves all bed records
func (d *DB) GetBeds(ctx context.Context) ([]db.BedRecord, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, room_number, bed_number, department, status, current_patient_id, notes
		FROM bed
		ORDER BY room_number, bed_number
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query beds: %w", err)
	}
	defer rows.Close()

	var beds []db.BedRecord
	for rows.Next() {
		var b db.BedRecord
		var patientID, notes *string
		if err := rows.Scan(&b.ID, &b.RoomNumber, &b.BedNumber, &b.Department, &b.Status, &patientID, &notes); err != nil {
			return nil, fmt.Errorf("failed to scan bed: %w", err)
		}
		if patientID != nil {
			b.CurrentPatientID = *patientID
		}
		if notes != nil {
			b.Notes = *notes
		}
		beds = append(beds, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating beds: %w", err)
	}

	return beds, nil
}

// InsertBed inserts a bed record
func (d *DB) InsertBed(ctx context.Context, bed *db.BedRecord) error {
	var patientID, notes *string
	if bed.CurrentPatientID != "" {
		patientID = &bed.CurrentPatientID
	}
	if bed.Notes != "" {
		notes = &bed.Notes
	}

	_, err := d.pool.Exec(ctx, `
		INSERT INTO bed (id, room_number, bed_number, department, status, current_patient_id, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, bed.ID, bed.RoomNumber, bed.BedNumber, bed.Department, bed.Status, patientID, notes)
	if err != nil {
		return fmt.Errorf("failed to insert bed: %w", err)
	}

	return nil
}

// MarkBedsOccupied flips the given beds to Occupied and records their new
// occupants in a single transaction
func (d *DB) MarkBedsOccupied(ctx context.Context, bedToPatient map[string]string) error {
	if len(bedToPatient) == 0 {
		return nil
	}

	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for bedID, patientID := range bedToPatient {
		_, err := tx.Exec(ctx, `
			UPDATE bed SET status = 'Occupied', current_patient_id = $2
			WHERE id = $1
		`, bedID, patientID)
		if err != nil {
			return fmt.Errorf("failed to mark bed %s occupied: %w", bedID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// InsertBedAssignments inserts allocation decision records
func (d *DB) InsertBedAssignments(ctx context.Context, assignments []db.BedAssignmentRecord) error {
	if len(assignments) == 0 {
		return nil
	}

	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, a := range assignments {
		_, err := tx.Exec(ctx, `
			INSERT INTO bed_assignment (id, run_id, bed_id, patient_id, department, urgency_score, assignment_date)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		`, a.ID, a.RunID, a.BedID, a.PatientID, a.Department, a.UrgencyScore, a.AssignmentDate)
		if err != nil {
			return fmt.Errorf("failed to insert bed assignment: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
