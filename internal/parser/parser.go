package parser

import (
	"strings"

	"github.com/luispauloloureiro/unfdashboard/internal/model"
)

// ---------------------------------------------------------------------------
// CSV Tokenizer
// ---------------------------------------------------------------------------

// Tokenize splits raw CSV text into rows of trimmed fields.
// Rows that are empty or whitespace-only are discarded, including the
// trailing blank line most exports end with. The first returned row is
// the header row; Tokenize itself does not treat it specially.
func Tokenize(text string) [][]string {
	var rows [][]string
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		rows = append(rows, splitLine(line))
	}
	return rows
}

// splitLine splits one CSV line on commas, honoring quoted fields.
// A double quote flips "inside quotes" mode: while inside, commas are
// literal text. Quote characters are stripped from field content.
// There is no escape handling — a doubled quote toggles twice and is a
// net no-op, and an unbalanced quote leaves the rest of the line in
// quoted mode. That mirrors the minimal handling the spreadsheet export
// needs, not full RFC 4180.
func splitLine(line string) []string {
	var fields []string
	var current strings.Builder
	inQuotes := false

	for _, ch := range line {
		switch {
		case ch == '"':
			inQuotes = !inQuotes
		case ch == ',' && !inQuotes:
			fields = append(fields, strings.TrimSpace(current.String()))
			current.Reset()
		default:
			current.WriteRune(ch)
		}
	}
	fields = append(fields, strings.TrimSpace(current.String()))
	return fields
}

// ---------------------------------------------------------------------------
// Record Normalizer
// ---------------------------------------------------------------------------

// Normalize turns tokenized rows into records using the first row as the
// header. Headers are lower-cased and trimmed before use as keys; when a
// header repeats, the last column wins. Each data row is zipped against
// the headers positionally, ignoring whatever extends past the shorter
// side. Rows whose assigned values are all empty are dropped.
func Normalize(rows [][]string) []model.Record {
	if len(rows) == 0 {
		return nil
	}

	headers := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		headers[i] = strings.ToLower(strings.TrimSpace(h))
	}

	var records []model.Record
	for _, row := range rows[1:] {
		rec := make(model.Record, len(headers))
		hasData := false
		for j := 0; j < len(headers) && j < len(row); j++ {
			rec[headers[j]] = row[j]
			if strings.TrimSpace(row[j]) != "" {
				hasData = true
			}
		}
		if hasData {
			records = append(records, rec)
		}
	}
	return records
}
