// Package filter implements the record-view filtering stages: exact and
// substring filters composed with logical AND, and period bucketing
// relative to an injectable reference instant. Every function returns a
// new view and leaves its input untouched, so the same record set can be
// re-filtered any number of times.
package filter

import (
	"strings"

	"github.com/luispauloloureiro/unfdashboard/internal/model"
)

// Apply evaluates the exact-match and substring filters of spec against
// each record and keeps those matching all active filters. Exact filters
// are case-sensitive and inert when empty or set to model.FilterAll;
// search filters are case-insensitive containment tests and inert when
// empty. A record missing a searched field cannot match it. The period
// selection in spec is not applied here — compose with ByPeriod on either
// side; the result is the same.
func Apply(records []model.Record, spec model.FilterSpec) []model.Record {
	var out []model.Record
	for _, rec := range records {
		if !matches(rec, spec) {
			continue
		}
		out = append(out, rec)
	}
	return out
}

func matches(rec model.Record, spec model.FilterSpec) bool {
	return matchExact(rec, model.FieldServer, spec.Server) &&
		matchExact(rec, model.FieldPlayer, spec.Player) &&
		matchExact(rec, model.FieldEvent, spec.Event) &&
		matchExact(rec, model.FieldDate, spec.Date) &&
		matchSearch(rec, model.FieldPlayer, spec.SearchPlayer) &&
		matchSearch(rec, model.FieldEvent, spec.SearchEvent) &&
		matchSearch(rec, model.FieldServer, spec.SearchServer)
}

func matchExact(rec model.Record, field, want string) bool {
	if want == "" || want == model.FilterAll {
		return true
	}
	return rec.Field(field) == want
}

func matchSearch(rec model.Record, field, query string) bool {
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(rec.Field(field)), strings.ToLower(query))
}
