package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/teambition/rrule-go"
	"go.uber.org/zap"

	"github.com/careops/wardops/internal/config"
	"github.com/careops/wardops/pkg/core/model"
	"github.com/careops/wardops/pkg/core/scheduler"
	"github.com/careops/wardops/pkg/db"
)

// ScheduleReport is the persisted outcome of one schedule generation run.
type ScheduleReport struct {
	RunID     string
	Dates     []time.Time
	Schedules []model.OptimizedSchedule
}

// GenerateSchedule loads the department roster, expands the planning horizon
// from the configured recurrence rule, runs the shift scheduler, and replaces
// the department's planned shifts with the new horizon. Regeneration discards
// the previous plan wholesale; there are no partial updates.
func GenerateSchedule(ctx context.Context, database db.ScheduleStore, logger *zap.Logger, cfg *config.Config, department string, start time.Time) (*ScheduleReport, error) {
	constraints, err := cfg.SchedulingFor(department)
	if err != nil {
		return nil, err
	}

	logger.Info("Starting schedule generation",
		zap.String("department", department),
		zap.Int("horizon_days", cfg.HorizonDays))

	staffRecords, err := database.GetStaff(ctx, department)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch staff: %w", err)
	}

	staff := toStaff(staffRecords)

	dates, err := planningDates(cfg, start)
	if err != nil {
		return nil, err
	}

	sched := scheduler.New()
	if len(cfg.ShiftCatalogue) > 0 {
		sched = scheduler.NewWithCatalogue(cfg.ShiftCatalogue)
	}

	schedules, err := sched.Generate(staff, constraints, dates)
	if err != nil {
		return nil, err
	}

	runID := uuid.New().String()

	var shiftRecords []db.ShiftRecord
	for _, schedule := range schedules {
		for _, shift := range schedule.Shifts {
			shiftRecords = append(shiftRecords, db.ShiftRecord{
				ID:         uuid.New().String(),
				RunID:      runID,
				StaffID:    schedule.StaffID,
				StaffName:  schedule.StaffName,
				Department: schedule.Department,
				ShiftName:  shift.ShiftName,
				ShiftStart: shift.Start,
				ShiftEnd:   shift.End,
				Status:     "Scheduled",
			})
		}
	}

	if err := database.ReplaceShifts(ctx, department, shiftRecords); err != nil {
		return nil, fmt.Errorf("failed to persist schedule: %w", err)
	}

	logger.Info("Schedule generation complete",
		zap.String("run_id", runID),
		zap.String("department", department),
		zap.Int("staff", len(schedules)),
		zap.Int("shifts", len(shiftRecords)))

	return &ScheduleReport{RunID: runID, Dates: dates, Schedules: schedules}, nil
}

// planningDates expands the planning horizon from the configured recurrence
// rule, defaulting to consecutive daily dates.
func planningDates(cfg *config.Config, start time.Time) ([]time.Time, error) {
	rule := cfg.PlanningRecurrence
	if rule == "" {
		rule = "FREQ=DAILY"
	}

	opt, err := rrule.StrToROption(rule)
	if err != nil {
		return nil, fmt.Errorf("invalid planning recurrence: %w", err)
	}

	opt.Dtstart = time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
	opt.Count = cfg.HorizonDays

	r, err := rrule.NewRRule(*opt)
	if err != nil {
		return nil, fmt.Errorf("invalid planning recurrence: %w", err)
	}

	return r.All(), nil
}

// toStaff converts staff records into scheduling candidates. Staff on leave
// cannot take shifts and are excluded from the roster.
func toStaff(records []db.StaffRecord) []model.StaffMember {
	staff := make([]model.StaffMember, 0, len(records))
	for _, r := range records {
		if model.StaffStatus(r.Status) == model.StaffOnLeave {
			continue
		}
		staff = append(staff, model.StaffMember{
			ID:         r.ID,
			Name:       r.Name,
			Role:       r.Role,
			Department: r.Department,
			Status:     model.StaffStatus(r.Status),
		})
	}
	return staff
}
