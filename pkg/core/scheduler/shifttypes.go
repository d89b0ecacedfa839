package scheduler

import "github.com/careops/wardops/pkg/core/model"

// DefaultCatalogue returns the standard three-shift rotation. The catalogue
// is a plain value owned by each Scheduler instance so independently
// configured runs can coexist.
func DefaultCatalogue() []model.ShiftType {
	return []model.ShiftType{
		{Name: "Morning", StartHour: 7, EndHour: 15},
		{Name: "Afternoon", StartHour: 15, EndHour: 23},
		{Name: "Night", StartHour: 23, EndHour: 7},
	}
}
