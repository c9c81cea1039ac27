package pricing

import "time"

// TimeSplit partitions a booking window at the evening boundary on the
// start date. A zero-length segment has equal start and end instants.
type TimeSplit struct {
	DaytimeStart time.Time
	DaytimeEnd   time.Time
	EveningStart time.Time
	EveningEnd   time.Time
	Crosses      bool
}

// SplitAtBoundary computes the daytime and evening sub-intervals of
// [start, end) against boundaryHour on the start date. The window
// crosses the boundary iff start < boundary <= end. Pure function.
func SplitAtBoundary(start, end time.Time, boundaryHour int) TimeSplit {
	boundary := time.Date(start.Year(), start.Month(), start.Day(), boundaryHour, 0, 0, 0, start.Location())

	switch {
	case !start.Before(boundary):
		// Entirely evening.
		return TimeSplit{
			DaytimeStart: start,
			DaytimeEnd:   start,
			EveningStart: start,
			EveningEnd:   end,
		}
	case end.Before(boundary):
		// Entirely daytime.
		return TimeSplit{
			DaytimeStart: start,
			DaytimeEnd:   end,
			EveningStart: end,
			EveningEnd:   end,
		}
	default:
		return TimeSplit{
			DaytimeStart: start,
			DaytimeEnd:   boundary,
			EveningStart: boundary,
			EveningEnd:   end,
			Crosses:      true,
		}
	}
}

func (s TimeSplit) DaytimeHours() int {
	return wholeHours(s.DaytimeStart, s.DaytimeEnd)
}

func (s TimeSplit) EveningHours() int {
	return wholeHours(s.EveningStart, s.EveningEnd)
}

// wholeHours is the truncated whole-hour difference between two
// instants; billing is hour-granular.
func wholeHours(from, to time.Time) int {
	if !to.After(from) {
		return 0
	}
	return int(to.Sub(from).Hours())
}
