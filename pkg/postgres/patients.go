package postgres

import (
	"context"
	"fmt"

	"github.com/careops/wardops/pkg/db"
)

// GetWaitingPatients retrieves all patients not yet assigned to a bed
func (d *DB) GetWaitingPatients(ctx context.Context) ([]db.PatientRecord, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, name, urgency_score, required_department, admission_date, assigned
		FROM patient
		WHERE assigned = FALSE
		ORDER BY admission_date
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query waiting patients: %w", err)
	}
	defer rows.Close()

	var patients []db.PatientRecord
	for rows.Next() {
		var p db.PatientRecord
		if err := rows.Scan(&p.ID, &p.Name, &p.UrgencyScore, &p.RequiredDepartment, &p.AdmissionDate, &p.Assigned); err != nil {
			return nil, fmt.Errorf("failed to scan patient: %w", err)
		}
		patients = append(patients, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating patients: %w", err)
	}

	return patients, nil
}

// InsertPatient inserts a patient record
func (d *DB) InsertPatient(ctx context.Context, patient *db.PatientRecord) error {
	_, err := d.pool.Exec(ctx, `
		INSERT INTO patient (id, name, urgency_score, required_department, admission_date, assigned)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, patient.ID, patient.Name, patient.UrgencyScore, patient.RequiredDepartment, patient.AdmissionDate, patient.Assigned)
	if err != nil {
		return fmt.Errorf("failed to insert patient: %w", err)
	}

	return nil
}

// MarkPatientsAssigned flags the given patients as placed
func (d *DB) MarkPatientsAssigned(ctx context.Context, patientIDs []string) error {
	if len(patientIDs) == 0 {
		return nil
	}

	_, err := d.pool.Exec(ctx, `
		UPDATE patient SET assigned = TRUE WHERE id = ANY($1)
	`, patientIDs)
	if err != nil {
		return fmt.Errorf("failed to mark patients assigned: %w", err)
	}

	return nil
}
