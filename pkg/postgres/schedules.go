package postgres

import (
	"context"
	"fmt"

	"github.com/careops/wardops/pkg/db"
)

// GetShifts retrieves the planned shifts for one department
func (d *DB) GetShifts(ctx context.Context, department string) ([]db.ShiftRecord, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, run_id, staff_id, staff_name, department, shift_name, shift_start, shift_end, status
		FROM shift
		WHERE LOWER(department) = LOWER($1)
		ORDER BY shift_start, staff_name
	`, department)
	if err != nil {
		return nil, fmt.Errorf("failed to query shifts: %w", err)
	}
	defer rows.Close()

	var shifts []db.ShiftRecord
	for rows.Next() {
		var s db.ShiftRecord
		if err := rows.Scan(&s.ID, &s.RunID, &s.StaffID, &s.StaffName, &s.Department, &s.ShiftName, &s.ShiftStart, &s.ShiftEnd, &s.Status); err != nil {
			return nil, fmt.Errorf("failed to scan shift: %w", err)
		}
		shifts = append(shifts, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating shifts: %w", err)
	}

	return shifts, nil
}

// ReplaceShifts discards a department's planned shifts and stores the new
// horizon in a single transaction. Regeneration is whole-horizon, never a
// partial update.
func (d *DB) ReplaceShifts(ctx context.Context, department string, shifts []db.ShiftRecord) error {
	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
		DELETE FROM shift WHERE LOWER(department) = LOWER($1) AND status = 'Scheduled'
	`, department)
	if err != nil {
		return fmt.Errorf("failed to clear planned shifts: %w", err)
	}

	for _, s := range shifts {
		_, err := tx.Exec(ctx, `
			INSERT INTO shift (id, run_id, staff_id, staff_name, department, shift_name, shift_start, shift_end, status)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		`, s.ID, s.RunID, s.StaffID, s.StaffName, s.Department, s.ShiftName, s.ShiftStart, s.ShiftEnd, s.Status)
		if err != nil {
			return fmt.Errorf("failed to insert shift: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
