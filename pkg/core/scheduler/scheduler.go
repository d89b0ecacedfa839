package scheduler

import (
	"fmt"
	"strings"
	"time"

	"github.com/careops/wardops/pkg/core/model"
)

// Scheduler generates rotating coverage schedules for one department under
// rest, workload, and staffing-floor constraints. It owns its shift catalogue
// as an explicit value; there is no package-level shift table.
type Scheduler struct {
	catalogue []model.ShiftType
}

// New creates a Scheduler with the default three-shift catalogue.
func New() *Scheduler {
	return NewWithCatalogue(DefaultCatalogue())
}

// NewWithCatalogue creates a Scheduler with a custom shift catalogue.
// Catalogue order is the tie-break order for coverage balancing.
func NewWithCatalogue(catalogue []model.ShiftType) *Scheduler {
	return &Scheduler{catalogue: catalogue}
}

// ConfigError marks a fatal scheduling precondition failure. An under-staffed
// department cannot produce a valid schedule at all, so no partial schedules
// are returned.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("scheduling configuration error: %s", e.Reason)
}

// runState is the mutable tracking shared across all staff members within a
// single Generate call. It is created per run and discarded afterward.
type runState struct {
	workload map[string]int                 // staff ID -> cumulative assigned hours
	lastEnd  map[string]time.Time           // staff ID -> end instant of most recent shift
	coverage map[string]map[string]int      // date key -> shift name -> assignment count
}

func newRunState(staff []model.StaffMember) *runState {
	s := &runState{
		workload: make(map[string]int, len(staff)),
		lastEnd:  make(map[string]time.Time, len(staff)),
		coverage: make(map[string]map[string]int),
	}
	for _, m := range staff {
		s.workload[m.ID] = 0
		s.lastEnd[m.ID] = time.Time{}
	}
	return s
}

// Horizon returns the consecutive calendar days of a planning window,
// normalized to midnight of the start date's location.
func Horizon(start time.Time, days int) []time.Time {
	day := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
	dates := make([]time.Time, days)
	for i := 0; i < days; i++ {
		dates[i] = day.AddDate(0, 0, i)
	}
	return dates
}

// Generate produces one OptimizedSchedule per department staff member over
// the given planning dates, in roster order.
//
// Per staff member and date, the scheduler makes a single attempt with the
// shift type currently least assigned on that date (catalogue order breaks
// ties). A day that would violate the max-hours or min-rest constraint is
// left as a gap; there is no backtracking with another shift type. After
// MaxConsecutiveDays straight working days a rest day is forced and the
// counter resets.
func (s *Scheduler) Generate(staff []model.StaffMember, constraints model.SchedulingConstraints, dates []time.Time) ([]model.OptimizedSchedule, error) {
	if len(staff) == 0 {
		return nil, &ConfigError{Reason: "no staff members provided"}
	}
	if len(s.catalogue) == 0 {
		return nil, &ConfigError{Reason: "shift catalogue is empty"}
	}
	if len(dates) == 0 {
		return nil, &ConfigError{Reason: "planning horizon is empty"}
	}

	departmentStaff := filterDepartment(staff, constraints.Department)
	if len(departmentStaff) == 0 {
		return nil, &ConfigError{Reason: fmt.Sprintf("no staff members found in department %q", constraints.Department)}
	}
	if len(departmentStaff) < constraints.MinStaffPerShift {
		return nil, &ConfigError{Reason: fmt.Sprintf(
			"not enough staff in department %q: required %d, available %d",
			constraints.Department, constraints.MinStaffPerShift, len(departmentStaff))}
	}

	state := newRunState(departmentStaff)
	schedules := make([]model.OptimizedSchedule, 0, len(departmentStaff))

	for _, member := range departmentStaff {
		schedule := model.OptimizedSchedule{
			StaffID:    member.ID,
			StaffName:  member.Name,
			Department: member.Department,
			Shifts:     []model.ShiftAssignment{},
		}

		consecutiveDays := 0

		for _, date := range dates {
			// Forced rest day after the consecutive-day cap.
			if consecutiveDays >= constraints.MaxConsecutiveDays {
				consecutiveDays = 0
				continue
			}

			shiftType := s.leastAssignedShift(state, dateKey(date))

			if state.workload[member.ID]+shiftType.Hours() > constraints.MaxWorkingHours {
				continue
			}

			start := shiftStart(date, shiftType)
			if rest := start.Sub(state.lastEnd[member.ID]); rest < time.Duration(constraints.MinRestHours)*time.Hour {
				continue
			}

			end := shiftEnd(date, shiftType)
			schedule.Shifts = append(schedule.Shifts, model.ShiftAssignment{
				StaffID:   member.ID,
				Date:      date,
				ShiftName: shiftType.Name,
				Start:     start,
				End:       end,
			})

			consecutiveDays++
			state.workload[member.ID] += shiftType.Hours()
			state.lastEnd[member.ID] = end
			state.addCoverage(dateKey(date), shiftType.Name)
		}

		schedules = append(schedules, schedule)
	}

	return schedules, nil
}

// leastAssignedShift picks the catalogue entry with the fewest assignments on
// the date so far. Catalogue order wins ties, so coverage rotates through the
// shift types as staff are scheduled.
func (s *Scheduler) leastAssignedShift(state *runState, key string) model.ShiftType {
	best := s.catalogue[0]
	bestCount := state.coverageCount(key, best.Name)

	for _, candidate := range s.catalogue[1:] {
		if count := state.coverageCount(key, candidate.Name); count < bestCount {
			best = candidate
			bestCount = count
		}
	}

	return best
}

func (st *runState) coverageCount(key, shiftName string) int {
	if byShift, ok := st.coverage[key]; ok {
		return byShift[shiftName]
	}
	return 0
}

func (st *runState) addCoverage(key, shiftName string) {
	if st.coverage[key] == nil {
		st.coverage[key] = make(map[string]int)
	}
	st.coverage[key][shiftName]++
}

// filterDepartment selects the roster subset for the department,
// case-insensitively and ignoring surrounding whitespace.
func filterDepartment(staff []model.StaffMember, department string) []model.StaffMember {
	want := strings.ToLower(strings.TrimSpace(department))
	var subset []model.StaffMember
	for _, m := range staff {
		if strings.ToLower(strings.TrimSpace(m.Department)) == want {
			subset = append(subset, m)
		}
	}
	return subset
}

func dateKey(date time.Time) string {
	return date.Format("2006-01-02")
}

func shiftStart(date time.Time, t model.ShiftType) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), t.StartHour, 0, 0, 0, date.Location())
}

// shiftEnd resolves the end instant. A shift crossing midnight ends on the
// following calendar day; rest-interval arithmetic depends on this being
// exact.
func shiftEnd(date time.Time, t model.ShiftType) time.Time {
	end := time.Date(date.Year(), date.Month(), date.Day(), t.EndHour, 0, 0, 0, date.Location())
	if t.CrossesMidnight() {
		end = end.AddDate(0, 0, 1)
	}
	return end
}
