package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/careops/wardops/pkg/db"
)

// GetEquipment retrieves all equipment records
func (d *DB) GetEquipment(ctx context.Context) ([]db.EquipmentRecord, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, name, department, status, last_maintenance, notes
		FROM equipment
		ORDER BY department, name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query equipment: %w", err)
	}
	defer rows.Close()

	var equipment []db.EquipmentRecord
	for rows.Next() {
		var e db.EquipmentRecord
		var lastMaintenance *time.Time
		var notes *string
		if err := rows.Scan(&e.ID, &e.Name, &e.Department, &e.Status, &lastMaintenance, &notes); err != nil {
			return nil, fmt.Errorf("failed to scan equipment: %w", err)
		}
		if lastMaintenance != nil {
			e.LastMaintenance = *lastMaintenance
		}
		if notes != nil {
			e.Notes = *notes
		}
		equipment = append(equipment, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating equipment: %w", err)
	}

	return equipment, nil
}

// InsertEquipment inserts an equipment record
func (d *DB) InsertEquipment(ctx context.Context, equipment *db.EquipmentRecord) error {
	var lastMaintenance *time.Time
	var notes *string
	if !equipment.LastMaintenance.IsZero() {
		lastMaintenance = &equipment.LastMaintenance
	}
	if equipment.Notes != "" {
		notes = &equipment.Notes
	}

	_, err := d.pool.Exec(ctx, `
		INSERT INTO equipment (id, name, department, status, last_maintenance, notes)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, equipment.ID, equipment.Name, equipment.Department, equipment.Status, lastMaintenance, notes)
	if err != nil {
		return fmt.Errorf("failed to insert equipment: %w", err)
	}

	return nil
}
