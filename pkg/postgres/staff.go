package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/careops/wardops/pkg/db"
)

const staffColumns = `id, name, role, department, contact, email, status, specialization`

// GetStaff retrieves staff records for one department
func (d *DB) GetStaff(ctx context.Context, department string) ([]db.StaffRecord, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT `+staffColumns+`
		FROM staff
		WHERE LOWER(department) = LOWER($1)
		ORDER BY name
	`, department)
	if err != nil {
		return nil, fmt.Errorf("failed to query staff: %w", err)
	}
	defer rows.Close()

	return scanStaff(rows)
}

// GetAllStaff retrieves every staff record
func (d *DB) GetAllStaff(ctx context.Context) ([]db.StaffRecord, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT `+staffColumns+`
		FROM staff
		ORDER BY department, name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query staff: %w", err)
	}
	defer rows.Close()

	return scanStaff(rows)
}

func scanStaff(rows pgx.Rows) ([]db.StaffRecord, error) {
	var staff []db.StaffRecord
	for rows.Next() {
		var s db.StaffRecord
		var contact, email, specialization *string
		if err := rows.Scan(&s.ID, &s.Name, &s.Role, &s.Department, &contact, &email, &s.Status, &specialization); err != nil {
			return nil, fmt.Errorf("failed to scan staff: %w", err)
		}
		if contact != nil {
			s.Contact = *contact
		}
		if email != nil {
			s.Email = *email
		}
		if specialization != nil {
			s.Specialization = *specialization
		}
		staff = append(staff, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating staff: %w", err)
	}

	return staff, nil
}

// InsertStaff inserts a staff record
func (d *DB) InsertStaff(ctx context.Context, staff *db.StaffRecord) error {
	var contact, email, specialization *string
	if staff.Contact != "" {
		contact = &staff.Contact
	}
	if staff.Email != "" {
		email = &staff.Email
	}
	if staff.Specialization != "" {
		specialization = &staff.Specialization
	}

	_, err := d.pool.Exec(ctx, `
		INSERT INTO staff (id, name, role, department, contact, email, status, specialization)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, staff.ID, staff.Name, staff.Role, staff.Department, contact, email, staff.Status, specialization)
	if err != nil {
		return fmt.Errorf("failed to insert staff: %w", err)
	}

	return nil
}
