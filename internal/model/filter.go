package model

import "time"

// Period selects a relative time bucket anchored to a reference instant.
type Period string

const (
	PeriodTotal   Period = "total"
	PeriodAnnual  Period = "annual"
	PeriodMonthly Period = "monthly"
	PeriodWeekly  Period = "weekly"
	PeriodDaily   Period = "daily"
)

// ParsePeriod maps a user-supplied period string to a Period,
// falling back to PeriodTotal for anything unrecognized.
func ParsePeriod(s string) Period {
	switch Period(s) {
	case PeriodAnnual, PeriodMonthly, PeriodWeekly, PeriodDaily:
		return Period(s)
	default:
		return PeriodTotal
	}
}

// FilterAll is the sentinel that disables an exact-match filter.
const FilterAll = "all"

// FilterSpec is the combined filter configuration the presentation layer
// passes into the pipeline. Exact-match filters are inert when empty or
// set to FilterAll; search filters are inert when empty. Period selection
// rides along here but is applied as a separate stage (filter.ByPeriod),
// so callers control where in the chain it runs.
type FilterSpec struct {
	Server string
	Player string
	Event  string
	Date   string

	SearchPlayer string
	SearchEvent  string
	SearchServer string

	Period Period
}

// Date is a resolved calendar date with no time component, used for
// period bucketing and display-sort comparison only.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// Key returns a comparable integer with the usual yyyymmdd ordering.
func (d Date) Key() int {
	return d.Year*10000 + int(d.Month)*100 + d.Day
}

// Refresh describes the outcome of one load cycle. It is what the hub
// broadcasts to WebSocket subscribers after every reload.
type Refresh struct {
	At       time.Time `json:"at"`
	Total    int       `json:"total"`
	Fallback bool      `json:"fallback"`
	Err      string    `json:"err,omitempty"`
}
