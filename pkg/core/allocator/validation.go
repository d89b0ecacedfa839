package allocator

import (
	"fmt"

	"github.com/careops/wardops/pkg/core/model"
)

// UnassignedReason classifies why a patient was not placed this run.
type UnassignedReason string

const (
	// ReasonInvalidUrgency means the urgency score was outside [1,10].
	ReasonInvalidUrgency UnassignedReason = "urgency_out_of_range"

	// ReasonUnknownDepartment means the required department has no
	// configured constraint.
	ReasonUnknownDepartment UnassignedReason = "unknown_department"

	// ReasonMissingFields means a required identifier was empty.
	ReasonMissingFields UnassignedReason = "missing_required_fields"

	// ReasonOutsideUrgencyBand means the score fell outside the
	// department's admissible band.
	ReasonOutsideUrgencyBand UnassignedReason = "outside_department_urgency_band"

	// ReasonNoBedAvailable means every bed in the department was occupied.
	ReasonNoBedAvailable UnassignedReason = "no_bed_available"
)

// UnassignedPatient is a patient left unplaced by a run, with the reason.
// Validation failures are data-quality facts, not errors.
type UnassignedPatient struct {
	Patient model.Patient    `json:"patient"`
	Reason  UnassignedReason `json:"reason"`
}

// ConfigError marks a structural problem with the allocation inputs. Unlike
// per-patient unassigned reasons, it aborts the whole run.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("allocation configuration error: %s", e.Reason)
}

// validatePatient checks the per-patient preconditions. A failing patient is
// classified, not rejected with an error.
func validatePatient(p model.Patient, constraints map[string]model.DepartmentConstraint) (UnassignedReason, bool) {
	if p.ID == "" {
		return ReasonMissingFields, false
	}
	if p.UrgencyScore < 1 || p.UrgencyScore > 10 {
		return ReasonInvalidUrgency, false
	}
	if _, known := constraints[p.RequiredDepartment]; !known {
		return ReasonUnknownDepartment, false
	}
	return "", true
}
