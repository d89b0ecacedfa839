package db

import "context"

// BedStore defines bed and patient snapshot operations used by allocation.
type BedStore interface {
	GetWaitingPatients(ctx context.Context) ([]PatientRecord, error)
	GetBeds(ctx context.Context) ([]BedRecord, error)
	InsertBedAssignments(ctx context.Context, assignments []BedAssignmentRecord) error
	MarkBedsOccupied(ctx context.Context, bedToPatient map[string]string) error
	MarkPatientsAssigned(ctx context.Context, patientIDs []string) error
}

// ScheduleStore defines roster and schedule operations used by scheduling.
type ScheduleStore interface {
	GetStaff(ctx context.Context, department string) ([]StaffRecord, error)
	ReplaceShifts(ctx context.Context, department string, shifts []ShiftRecord) error
	GetShifts(ctx context.Context, department string) ([]ShiftRecord, error)
}

// Database defines the full set of store operations. The postgres.DB
// implementation satisfies it.
type Database interface {
	BedStore
	ScheduleStore

	InsertPatient(ctx context.Context, patient *PatientRecord) error
	InsertBed(ctx context.Context, bed *BedRecord) error
	InsertStaff(ctx context.Context, staff *StaffRecord) error
	GetAllStaff(ctx context.Context) ([]StaffRecord, error)
	GetEquipment(ctx context.Context) ([]EquipmentRecord, error)
	InsertEquipment(ctx context.Context, equipment *EquipmentRecord) error
}
