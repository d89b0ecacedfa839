package db

import "time"

// PatientRecord is a persisted patient awaiting or holding a bed.
type PatientRecord struct {
	ID                 string
	Name               string
	UrgencyScore       int
	RequiredDepartment string
	AdmissionDate      time.Time
	Assigned           bool
}

// BedRecord is a persisted bed.
type BedRecord struct {
	ID               string
	RoomNumber       string
	BedNumber        string
	Department       string
	Status           string
	CurrentPatientID string // empty if unoccupied
	Notes            string
}

// StaffRecord is a persisted staff member.
type StaffRecord struct {
	ID             string
	Name           string
	Role           string
	Department     string
	Contact        string
	Email          string
	Status         string
	Specialization string
}

// EquipmentRecord is a persisted piece of equipment. Equipment is tracked but
// not optimized.
type EquipmentRecord struct {
	ID              string
	Name            string
	Department      string
	Status          string
	LastMaintenance time.Time
	Notes           string
}

// BedAssignmentRecord is one persisted allocation decision.
type BedAssignmentRecord struct {
	ID             string
	RunID          string
	BedID          string
	PatientID      string
	Department     string
	UrgencyScore   int
	AssignmentDate time.Time
}

// ShiftRecord is one persisted planned shift.
type ShiftRecord struct {
	ID         string
	RunID      string
	StaffID    string
	StaffName  string
	Department string
	ShiftName  string
	ShiftStart time.Time
	ShiftEnd   time.Time
	Status     string
}
