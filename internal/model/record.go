package model

// Well-known record fields. These match the spreadsheet's header row
// (lower-cased by the normalizer), so they are the keys the rest of the
// pipeline filters and aggregates on.
const (
	FieldServer = "servidor"
	FieldUser   = "usuario"
	FieldPlayer = "player"
	FieldEvent  = "evento"
	FieldProof  = "print"
	FieldDate   = "data"
	FieldTime   = "hora"
	FieldNote   = "observacao"
)

// Record is one normalized activity-log entry, keyed by lower-cased
// header name. Missing fields are absent from the map; absence and
// empty string are treated identically everywhere.
type Record map[string]string

// Field returns the value for a field name, or "" when absent.
func (r Record) Field(name string) string {
	return r[name]
}

// Summary is a point-in-time aggregation over a record view, feeding the
// KPI widgets and both chart series.
type Summary struct {
	TotalRecords  int           `json:"total_records"`
	UniquePlayers int           `json:"unique_players"`
	TopEvent      string        `json:"top_event"`
	PlayerSeries  []SeriesPoint `json:"player_series"` // top 10 by count
	EventSeries   []SeriesPoint `json:"event_series"`  // all events
}

// SeriesPoint is one labeled bar/slice in a chart series.
type SeriesPoint struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// RankingEntry is one row of the player ranking table.
type RankingEntry struct {
	Rank           int    `json:"rank"`
	Player         string `json:"player"`
	Participations int    `json:"participations"`
	UniqueEvents   int    `json:"unique_events"`
}

// Page is one slice of the sorted, filtered detail view.
type Page struct {
	Items        []Record `json:"items"`
	PageNumber   int      `json:"page_number"`
	TotalPages   int      `json:"total_pages"`
	TotalRecords int      `json:"total_records"`
}
