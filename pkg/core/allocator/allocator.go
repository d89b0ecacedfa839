package allocator

import (
	"fmt"
	"sort"
	"time"

	"github.com/careops/wardops/pkg/core/model"
)

// Result is the outcome of one allocation run. A run either produces a full
// Result or fails with a ConfigError; there are no partial results.
type Result struct {
	// Assignments created this run, in the order patients were placed.
	Assignments []model.BedAssignment

	// Unassigned patients with the reason each could not be placed.
	Unassigned []UnassignedPatient

	// Utilization per known department, in constraint order.
	Utilization []model.DepartmentUtilization
}

// run holds the working state of a single allocation pass. It is created per
// Allocate call and discarded afterward; caller-owned inputs are never
// mutated.
type run struct {
	constraints map[string]model.DepartmentConstraint
	deptOrder   []string

	beds     []model.Bed
	occupied map[string]int
}

// Allocate matches waiting patients to free beds under department capacity
// and urgency-band constraints.
//
// Patients are processed in urgency-descending order, ties broken by earliest
// admission timestamp; the sort is stable so equal patients keep their input
// order. Each patient gets the first free bed in their required department
// (stable bed input order). Patients that fail validation or find no bed are
// reported in Unassigned with a reason, never as an error.
//
// now is injected so assignment timestamps are reproducible.
func Allocate(patients []model.Patient, beds []model.Bed, constraints []model.DepartmentConstraint, now time.Time) (*Result, error) {
	r, err := newRun(beds, constraints)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Assignments: []model.BedAssignment{},
		Unassigned:  []UnassignedPatient{},
	}

	for _, p := range sortByPriority(patients) {
		if reason, ok := validatePatient(p, r.constraints); !ok {
			result.Unassigned = append(result.Unassigned, UnassignedPatient{Patient: p, Reason: reason})
			continue
		}

		c := r.constraints[p.RequiredDepartment]
		if p.UrgencyScore < c.MinUrgencyScore || p.UrgencyScore > c.MaxUrgencyScore {
			result.Unassigned = append(result.Unassigned, UnassignedPatient{Patient: p, Reason: ReasonOutsideUrgencyBand})
			continue
		}

		bed := r.claimFreeBed(p.RequiredDepartment, p.ID)
		if bed == nil {
			result.Unassigned = append(result.Unassigned, UnassignedPatient{Patient: p, Reason: ReasonNoBedAvailable})
			continue
		}

		result.Assignments = append(result.Assignments, model.BedAssignment{
			BedID:          bed.ID,
			PatientID:      p.ID,
			Department:     p.RequiredDepartment,
			UrgencyScore:   p.UrgencyScore,
			AssignmentDate: now,
		})
	}

	utilization, err := r.utilization()
	if err != nil {
		return nil, err
	}
	result.Utilization = utilization

	return result, nil
}

// newRun validates the structural inputs and builds the working state.
func newRun(beds []model.Bed, constraints []model.DepartmentConstraint) (*run, error) {
	if len(constraints) == 0 {
		return nil, &ConfigError{Reason: "no department constraints configured"}
	}

	r := &run{
		constraints: make(map[string]model.DepartmentConstraint, len(constraints)),
		occupied:    make(map[string]int, len(constraints)),
	}

	for _, c := range constraints {
		if _, exists := r.constraints[c.Department]; exists {
			return nil, &ConfigError{Reason: fmt.Sprintf("duplicate constraint for department %q", c.Department)}
		}
		r.constraints[c.Department] = c
		r.deptOrder = append(r.deptOrder, c.Department)
	}

	// Working copy of occupancy state; the caller's beds are never touched.
	r.beds = make([]model.Bed, len(beds))
	copy(r.beds, beds)

	for _, b := range r.beds {
		if _, known := r.constraints[b.Department]; !known {
			return nil, &ConfigError{Reason: fmt.Sprintf("bed %s tagged with unknown department %q", b.ID, b.Department)}
		}
		if b.IsOccupied {
			r.occupied[b.Department]++
		}
	}

	return r, nil
}

// sortByPriority returns a sorted copy of patients: urgency descending, then
// admission timestamp ascending. Stable, so further ties keep input order.
func sortByPriority(patients []model.Patient) []model.Patient {
	sorted := make([]model.Patient, len(patients))
	copy(sorted, patients)

	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].UrgencyScore != sorted[j].UrgencyScore {
			return sorted[i].UrgencyScore > sorted[j].UrgencyScore
		}
		return sorted[i].AdmissionDate.Before(sorted[j].AdmissionDate)
	})

	return sorted
}

// claimFreeBed finds the first unoccupied bed in the department (stable input
// order), marks it occupied in the working copy, and returns it. Returns nil
// if the department has no free bed.
func (r *run) claimFreeBed(department, patientID string) *model.Bed {
	for i := range r.beds {
		if r.beds[i].Department != department || r.beds[i].IsOccupied {
			continue
		}
		r.beds[i].IsOccupied = true
		r.beds[i].CurrentPatientID = patientID
		r.occupied[department]++
		return &r.beds[i]
	}
	return nil
}

// utilization derives the per-department occupancy summary from the working
// copy. Occupied exceeding total means the input bed data was inconsistent;
// that is surfaced, not clamped.
func (r *run) utilization() ([]model.DepartmentUtilization, error) {
	out := make([]model.DepartmentUtilization, 0, len(r.deptOrder))

	for _, dept := range r.deptOrder {
		total := 0
		for _, b := range r.beds {
			if b.Department == dept {
				total++
			}
		}

		occupied := r.occupied[dept]
		if occupied > total {
			return nil, fmt.Errorf("data integrity error: department %q has %d occupied beds but only %d beds", dept, occupied, total)
		}

		out = append(out, model.DepartmentUtilization{
			Department: dept,
			Total:      total,
			Occupied:   occupied,
			Available:  total - occupied,
		})
	}

	return out, nil
}
