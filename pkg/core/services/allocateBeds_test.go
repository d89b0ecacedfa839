package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/careops/wardops/internal/config"
	"github.com/careops/wardops/pkg/core/allocator"
	"github.com/careops/wardops/pkg/core/model"
	"github.com/careops/wardops/pkg/db"
)

// mockBedStore implements a test double for db.BedStore
type mockBedStore struct {
	patients []db.PatientRecord
	beds     []db.BedRecord

	insertedAssignments []db.BedAssignmentRecord
	occupiedBeds        map[string]string
	assignedPatients    []string

	getPatientsErr error
	insertErr      error
}

func (m *mockBedStore) GetWaitingPatients(ctx context.Context) ([]db.PatientRecord, error) {
	if m.getPatientsErr != nil {
		return nil, m.getPatientsErr
	}
	return m.patients, nil
}

func (m *mockBedStore) GetBeds(ctx context.Context) ([]db.BedRecord, error) {
	return m.beds, nil
}

func (m *mockBedStore) InsertBedAssignments(ctx context.Context, assignments []db.BedAssignmentRecord) error {
	if m.insertErr != nil {
		return m.insertErr
	}
	m.insertedAssignments = append(m.insertedAssignments, assignments...)
	return nil
}

func (m *mockBedStore) MarkBedsOccupied(ctx context.Context, bedToPatient map[string]string) error {
	if m.occupiedBeds == nil {
		m.occupiedBeds = make(map[string]string)
	}
	for bed, patient := range bedToPatient {
		m.occupiedBeds[bed] = patient
	}
	return nil
}

func (m *mockBedStore) MarkPatientsAssigned(ctx context.Context, patientIDs []string) error {
	m.assignedPatients = append(m.assignedPatients, patientIDs...)
	return nil
}

func testConfig() *config.Config {
	return &config.Config{
		DatabaseURL: "postgres://test",
		Departments: []model.DepartmentConstraint{
			{Department: "ICU", TotalBeds: 2, MinUrgencyScore: 8, MaxUrgencyScore: 10},
			{Department: "General", TotalBeds: 2, MinUrgencyScore: 1, MaxUrgencyScore: 10},
		},
		Scheduling: []model.SchedulingConstraints{
			{Department: "ICU", MinStaffPerShift: 2, MinRestHours: 8, MaxWorkingHours: 48, MaxConsecutiveDays: 5},
		},
		HorizonDays: config.DefaultHorizonDays,
	}
}

func TestAllocateBeds_PersistsAssignmentsAndOccupancy(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	mock := &mockBedStore{
		patients: []db.PatientRecord{
			{ID: "p1", Name: "P1", UrgencyScore: 9, RequiredDepartment: "ICU", AdmissionDate: now.Add(-time.Hour)},
			{ID: "p2", Name: "P2", UrgencyScore: 3, RequiredDepartment: "General", AdmissionDate: now.Add(-time.Hour)},
		},
		beds: []db.BedRecord{
			{ID: "icu-1", Department: "ICU", Status: "Available"},
			{ID: "gen-1", Department: "General", Status: "Available"},
		},
	}

	report, err := AllocateBeds(context.Background(), mock, zap.NewNop(), testConfig(), now)
	require.NoError(t, err)
	require.NotNil(t, report)
	assert.NotEmpty(t, report.RunID)

	require.Len(t, report.Result.Assignments, 2)
	require.Len(t, mock.insertedAssignments, 2)
	for _, record := range mock.insertedAssignments {
		assert.Equal(t, report.RunID, record.RunID)
		assert.NotEmpty(t, record.ID)
		assert.Equal(t, now, record.AssignmentDate)
	}

	assert.Equal(t, "p1", mock.occupiedBeds["icu-1"])
	assert.Equal(t, "p2", mock.occupiedBeds["gen-1"])
	assert.ElementsMatch(t, []string{"p1", "p2"}, mock.assignedPatients)
}

func TestAllocateBeds_ExcludesMaintenanceAndReservedBeds(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	mock := &mockBedStore{
		patients: []db.PatientRecord{
			{ID: "p1", UrgencyScore: 4, RequiredDepartment: "General", AdmissionDate: now},
		},
		beds: []db.BedRecord{
			{ID: "gen-1", Department: "General", Status: "Maintenance"},
			{ID: "gen-2", Department: "General", Status: "Reserved"},
		},
	}

	report, err := AllocateBeds(context.Background(), mock, zap.NewNop(), testConfig(), now)
	require.NoError(t, err)

	assert.Empty(t, report.Result.Assignments)
	require.Len(t, report.Result.Unassigned, 1)
	assert.Equal(t, allocator.ReasonNoBedAvailable, report.Result.Unassigned[0].Reason)

	// Excluded beds also don't count toward utilization.
	for _, u := range report.Result.Utilization {
		if u.Department == "General" {
			assert.Equal(t, 0, u.Total)
		}
	}
}

func TestAllocateBeds_OccupiedBedsCountTowardUtilization(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	mock := &mockBedStore{
		beds: []db.BedRecord{
			{ID: "icu-1", Department: "ICU", Status: "Occupied", CurrentPatientID: "old"},
			{ID: "icu-2", Department: "ICU", Status: "Available"},
		},
	}

	report, err := AllocateBeds(context.Background(), mock, zap.NewNop(), testConfig(), now)
	require.NoError(t, err)

	for _, u := range report.Result.Utilization {
		if u.Department == "ICU" {
			assert.Equal(t, 2, u.Total)
			assert.Equal(t, 1, u.Occupied)
			assert.Equal(t, 1, u.Available)
		}
	}
}

func TestAllocateBeds_StoreErrorIsWrapped(t *testing.T) {
	mock := &mockBedStore{getPatientsErr: errors.New("connection refused")}

	_, err := AllocateBeds(context.Background(), mock, zap.NewNop(), testConfig(), time.Now())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to fetch waiting patients")
}

func TestAllocateBeds_NothingPersistedOnInsertFailure(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	mock := &mockBedStore{
		patients: []db.PatientRecord{
			{ID: "p1", UrgencyScore: 4, RequiredDepartment: "General", AdmissionDate: now},
		},
		beds: []db.BedRecord{
			{ID: "gen-1", Department: "General", Status: "Available"},
		},
		insertErr: errors.New("constraint violation"),
	}

	_, err := AllocateBeds(context.Background(), mock, zap.NewNop(), testConfig(), now)
	require.Error(t, err)
	assert.Empty(t, mock.occupiedBeds, "occupancy must not change if assignments failed to persist")
	assert.Empty(t, mock.assignedPatients)
}
