// Package pager orders the detail view for display and slices it into
// fixed-size pages.
package pager

import (
	"sort"

	"github.com/luispauloloureiro/unfdashboard/internal/model"
	"github.com/luispauloloureiro/unfdashboard/internal/parser"
)

// DefaultPageSize is the detail-table page size when none is configured.
const DefaultPageSize = 50

// SortForDisplay returns a copy of records ordered newest first: parsed
// date descending, then time-of-day string descending on equal dates.
// When either record's date fails to parse the pair compares equal, so
// such records keep their relative input order.
func SortForDisplay(records []model.Record) []model.Record {
	sorted := make([]model.Record, len(records))
	copy(sorted, records)

	sort.SliceStable(sorted, func(i, j int) bool {
		di, iok := parser.ParseDate(sorted[i].Field(model.FieldDate))
		dj, jok := parser.ParseDate(sorted[j].Field(model.FieldDate))
		if !iok || !jok {
			return false
		}
		if di.Key() != dj.Key() {
			return di.Key() > dj.Key()
		}
		return sorted[i].Field(model.FieldTime) > sorted[j].Field(model.FieldTime)
	})
	return sorted
}

// Paginate sorts records for display and returns the requested 1-based
// page. TotalPages is ceil(total/pageSize), zero when there are no
// records. Out-of-range page numbers are not an error: the returned page
// just has no items.
func Paginate(records []model.Record, pageNumber, pageSize int) model.Page {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}

	sorted := SortForDisplay(records)
	total := len(sorted)
	totalPages := (total + pageSize - 1) / pageSize

	page := model.Page{
		PageNumber:   pageNumber,
		TotalPages:   totalPages,
		TotalRecords: total,
	}

	start := (pageNumber - 1) * pageSize
	if pageNumber < 1 || start >= total {
		return page
	}
	end := start + pageSize
	if end > total {
		end = total
	}
	page.Items = sorted[start:end]
	return page
}
