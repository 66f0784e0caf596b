// Package aggregator computes the dashboard's aggregate views over a
// filtered record set: KPI summary, chart series, player ranking, and the
// distinct-value lists that feed the filter dropdowns. All tie-breaks are
// first-seen order, which the counter type preserves by tracking key
// insertion order alongside the counts.
package aggregator

import (
	"sort"
	"time"

	"github.com/luispauloloureiro/unfdashboard/internal/filter"
	"github.com/luispauloloureiro/unfdashboard/internal/model"
)

// rankingLimit caps the ranking table.
const rankingLimit = 50

// playerSeriesLimit caps the player participation chart.
const playerSeriesLimit = 10

// noEvent is the KPI placeholder when no record carries an event value.
const noEvent = "-"

// ---------------------------------------------------------------------------
// Insertion-ordered counter
// ---------------------------------------------------------------------------

// counter is a frequency table that remembers the order keys were first
// added, so ties can be broken by first-seen order instead of map order.
type counter struct {
	keys   []string
	counts map[string]int
}

func newCounter() *counter {
	return &counter{counts: make(map[string]int)}
}

// add counts a value, ignoring empties.
func (c *counter) add(value string) {
	if value == "" {
		return
	}
	if _, seen := c.counts[value]; !seen {
		c.keys = append(c.keys, value)
	}
	c.counts[value]++
}

// top returns the key with the highest count. Ties keep the key that
// entered the table first. Returns ok=false for an empty counter.
func (c *counter) top() (string, bool) {
	best := ""
	for _, k := range c.keys {
		if best == "" || c.counts[k] > c.counts[best] {
			best = k
		}
	}
	return best, best != ""
}

// series returns the counter as chart points sorted by count descending,
// first-seen order on ties. limit <= 0 means no truncation.
func (c *counter) series(limit int) []model.SeriesPoint {
	points := make([]model.SeriesPoint, 0, len(c.keys))
	for _, k := range c.keys {
		points = append(points, model.SeriesPoint{Label: k, Count: c.counts[k]})
	}
	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Count > points[j].Count
	})
	if limit > 0 && len(points) > limit {
		points = points[:limit]
	}
	return points
}

// ---------------------------------------------------------------------------
// Summary aggregation
// ---------------------------------------------------------------------------

// Aggregate computes the KPI summary and both chart series for a record
// view. TotalRecords counts every record; the player and event tables
// only count non-empty field values.
func Aggregate(records []model.Record) model.Summary {
	players := newCounter()
	events := newCounter()

	for _, rec := range records {
		players.add(rec.Field(model.FieldPlayer))
		events.add(rec.Field(model.FieldEvent))
	}

	topEvent, ok := events.top()
	if !ok {
		topEvent = noEvent
	}

	return model.Summary{
		TotalRecords:  len(records),
		UniquePlayers: len(players.keys),
		TopEvent:      topEvent,
		PlayerSeries:  players.series(playerSeriesLimit),
		EventSeries:   events.series(0),
	}
}

// ---------------------------------------------------------------------------
// Ranking builder
// ---------------------------------------------------------------------------

// Rank builds the player ranking for a period: participations per player
// plus the size of each player's distinct-event set, sorted by
// participation count descending (first-seen order on ties), dense
// 1-based ranks, truncated to the top 50.
func Rank(records []model.Record, period model.Period, ref time.Time) []model.RankingEntry {
	records = filter.ByPeriod(records, period, ref)

	participations := newCounter()
	eventSets := make(map[string]map[string]struct{})

	for _, rec := range records {
		player := rec.Field(model.FieldPlayer)
		if player == "" {
			continue
		}
		participations.add(player)

		if event := rec.Field(model.FieldEvent); event != "" {
			set, ok := eventSets[player]
			if !ok {
				set = make(map[string]struct{})
				eventSets[player] = set
			}
			set[event] = struct{}{}
		}
	}

	entries := make([]model.RankingEntry, 0, len(participations.keys))
	for _, player := range participations.keys {
		entries = append(entries, model.RankingEntry{
			Player:         player,
			Participations: participations.counts[player],
			UniqueEvents:   len(eventSets[player]),
		})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Participations > entries[j].Participations
	})
	if len(entries) > rankingLimit {
		entries = entries[:rankingLimit]
	}
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries
}

// ---------------------------------------------------------------------------
// Distinct values
// ---------------------------------------------------------------------------

// DistinctValues lists the unique non-empty values of one field in
// first-seen order, for populating a filter dropdown.
func DistinctValues(records []model.Record, field string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, rec := range records {
		v := rec.Field(field)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
