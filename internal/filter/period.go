package filter

import (
	"time"

	"github.com/luispauloloureiro/unfdashboard/internal/model"
	"github.com/luispauloloureiro/unfdashboard/internal/parser"
)

// ByPeriod keeps the records whose date falls in the bucket selected by
// period, relative to the reference instant. PeriodTotal is the identity
// and returns the input unchanged. For every other period, records whose
// date fails to parse are excluded. The reference instant is an explicit
// parameter — the pipeline never reads the wall clock itself.
func ByPeriod(records []model.Record, period model.Period, ref time.Time) []model.Record {
	if period == model.PeriodTotal {
		return records
	}

	// Calendar week containing ref: Sunday 00:00 through the following
	// Saturday, computed as the half-open range [weekStart, weekStart+7d).
	refDay := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, ref.Location())
	weekStart := refDay.AddDate(0, 0, -int(refDay.Weekday()))
	weekEnd := weekStart.AddDate(0, 0, 7)

	var out []model.Record
	for _, rec := range records {
		d, ok := parser.ParseDate(rec.Field(model.FieldDate))
		if !ok {
			continue
		}

		keep := false
		switch period {
		case model.PeriodAnnual:
			keep = d.Year == ref.Year()
		case model.PeriodMonthly:
			keep = d.Year == ref.Year() && d.Month == ref.Month()
		case model.PeriodWeekly:
			day := time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, ref.Location())
			keep = !day.Before(weekStart) && day.Before(weekEnd)
		case model.PeriodDaily:
			keep = d.Year == ref.Year() && d.Month == ref.Month() && d.Day == ref.Day()
		}

		if keep {
			out = append(out, rec)
		}
	}
	return out
}
