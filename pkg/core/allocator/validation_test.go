package allocator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careops/wardops/pkg/core/model"
)

func TestAllocate_ValidationFailuresAreSoft(t *testing.T) {
	beds := []model.Bed{bed("b1", "General", false)}
	admitted := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		p      model.Patient
		reason UnassignedReason
	}{
		{
			name:   "urgency below range",
			p:      model.Patient{ID: "p1", UrgencyScore: 0, RequiredDepartment: "General", AdmissionDate: admitted},
			reason: ReasonInvalidUrgency,
		},
		{
			name:   "urgency above range",
			p:      model.Patient{ID: "p2", UrgencyScore: 11, RequiredDepartment: "General", AdmissionDate: admitted},
			reason: ReasonInvalidUrgency,
		},
		{
			name:   "unknown department",
			p:      model.Patient{ID: "p3", UrgencyScore: 5, RequiredDepartment: "Dermatology", AdmissionDate: admitted},
			reason: ReasonUnknownDepartment,
		},
		{
			name:   "missing patient ID",
			p:      model.Patient{UrgencyScore: 5, RequiredDepartment: "General", AdmissionDate: admitted},
			reason: ReasonMissingFields,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Allocate([]model.Patient{tt.p}, beds, testConstraints(), testNow)
			require.NoError(t, err, "validation failures must never be errors")

			assert.Empty(t, result.Assignments)
			require.Len(t, result.Unassigned, 1)
			assert.Equal(t, tt.reason, result.Unassigned[0].Reason)
		})
	}
}

func TestAllocate_InvalidPatientDoesNotConsumeBed(t *testing.T) {
	beds := []model.Bed{bed("b1", "General", false)}
	admitted := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)

	patients := []model.Patient{
		{ID: "bad", UrgencyScore: 99, RequiredDepartment: "General", AdmissionDate: admitted},
		{ID: "good", UrgencyScore: 5, RequiredDepartment: "General", AdmissionDate: admitted.Add(time.Hour)},
	}

	result, err := Allocate(patients, beds, testConstraints(), testNow)
	require.NoError(t, err)

	require.Len(t, result.Assignments, 1)
	assert.Equal(t, "good", result.Assignments[0].PatientID)
	require.Len(t, result.Unassigned, 1)
	assert.Equal(t, "bad", result.Unassigned[0].Patient.ID)
}
