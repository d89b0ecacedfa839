package model

import "time"

// BedStatus describes the operational state of a bed.
type BedStatus string

const (
	BedAvailable   BedStatus = "Available"
	BedOccupied    BedStatus = "Occupied"
	BedMaintenance BedStatus = "Maintenance"
	BedReserved    BedStatus = "Reserved"
)

func (s BedStatus) IsValid() bool {
	return s == BedAvailable || s == BedOccupied || s == BedMaintenance || s == BedReserved
}

// StaffStatus describes whether a staff member can be scheduled.
type StaffStatus string

const (
	StaffOnDuty   StaffStatus = "On Duty"
	StaffOffDuty  StaffStatus = "Off Duty"
	StaffOnLeave  StaffStatus = "On Leave"
	StaffTraining StaffStatus = "Training"
)

func (s StaffStatus) IsValid() bool {
	return s == StaffOnDuty || s == StaffOffDuty || s == StaffOnLeave || s == StaffTraining
}

// Patient is a patient awaiting bed placement.
type Patient struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	UrgencyScore       int       `json:"urgencyScore"` // 1-10, higher is more urgent
	RequiredDepartment string    `json:"requiredDepartment"`
	AdmissionDate      time.Time `json:"admissionDate"`
}

// Bed is a single bed tagged with its department and occupancy.
type Bed struct {
	ID               string    `json:"id"`
	RoomNumber       string    `json:"roomNumber"`
	BedNumber        string    `json:"bedNumber"`
	Department       string    `json:"department"`
	Status           BedStatus `json:"status"`
	IsOccupied       bool      `json:"isOccupied"`
	CurrentPatientID string    `json:"currentPatientId,omitempty"`
}

// DepartmentConstraint is the capacity and admissible urgency band configured
// for one department. Read-only during an allocation run.
type DepartmentConstraint struct {
	Department      string `json:"department" yaml:"department" validate:"required"`
	TotalBeds       int    `json:"totalBeds" yaml:"totalBeds" validate:"min=0"`
	MinUrgencyScore int    `json:"minUrgencyScore" yaml:"minUrgencyScore" validate:"min=1,max=10"`
	MaxUrgencyScore int    `json:"maxUrgencyScore" yaml:"maxUrgencyScore" validate:"min=1,max=10,gtefield=MinUrgencyScore"`
}

// BedAssignment records one patient placed in one bed. Created only by a
// successful allocation step and never mutated afterward.
type BedAssignment struct {
	BedID          string    `json:"bedId"`
	PatientID      string    `json:"patientId"`
	Department     string    `json:"department"`
	UrgencyScore   int       `json:"urgencyScore"`
	AssignmentDate time.Time `json:"assignmentDate"`
}

// DepartmentUtilization is the derived per-department occupancy summary,
// recomputed on every allocation run.
type DepartmentUtilization struct {
	Department string `json:"department"`
	Total      int    `json:"total"`
	Occupied   int    `json:"occupied"`
	Available  int    `json:"available"`
}

// StaffMember is a schedulable member of a department's roster.
type StaffMember struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	Role       string      `json:"role"`
	Department string      `json:"department"`
	Status     StaffStatus `json:"status"`
}

// ShiftType is one named time window from the shift catalogue.
// StartHour/EndHour are hours of day; an EndHour at or before StartHour means
// the shift ends on the following calendar day.
type ShiftType struct {
	Name      string `json:"name" yaml:"name" validate:"required"`
	StartHour int    `json:"startHour" yaml:"startHour" validate:"min=0,max=23"`
	EndHour   int    `json:"endHour" yaml:"endHour" validate:"min=0,max=23"`
}

// Hours returns the shift's duration in hours, accounting for midnight wrap.
func (s ShiftType) Hours() int {
	if s.EndHour > s.StartHour {
		return s.EndHour - s.StartHour
	}
	return (24 - s.StartHour) + s.EndHour
}

// CrossesMidnight reports whether the shift ends on the following day.
func (s ShiftType) CrossesMidnight() bool {
	return s.EndHour <= s.StartHour
}

// SchedulingConstraints are the rules a department's schedule must satisfy.
type SchedulingConstraints struct {
	Department         string `json:"department" yaml:"department" validate:"required"`
	MinStaffPerShift   int    `json:"minStaffPerShift" yaml:"minStaffPerShift" validate:"min=1"`
	MinRestHours       int    `json:"minRestHours" yaml:"minRestHours" validate:"min=0"`
	MaxWorkingHours    int    `json:"maxWorkingHours" yaml:"maxWorkingHours" validate:"min=1"`
	MaxConsecutiveDays int    `json:"maxConsecutiveDays" yaml:"maxConsecutiveDays" validate:"min=1"`
}

// ShiftAssignment is one staff member's shift on one calendar date, with the
// window resolved to concrete instants. Night shifts end on the next day.
type ShiftAssignment struct {
	StaffID   string    `json:"staffId"`
	Date      time.Time `json:"date"`
	ShiftName string    `json:"shiftName"`
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
}

// OptimizedSchedule is the generated plan for one staff member over the
// planning horizon, shifts in chronological order.
type OptimizedSchedule struct {
	StaffID    string            `json:"staffId"`
	StaffName  string            `json:"staffName"`
	Department string            `json:"department"`
	Shifts     []ShiftAssignment `json:"shifts"`
}
