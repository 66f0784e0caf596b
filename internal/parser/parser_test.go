package parser

import (
	"reflect"
	"testing"
	"time"

	"github.com/luispauloloureiro/unfdashboard/internal/model"
)

func TestTokenizeQuotedComma(t *testing.T) {
	rows := Tokenize(`a,"b,c",d`)

	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	want := []string{"a", "b,c", "d"}
	if !reflect.DeepEqual(rows[0], want) {
		t.Errorf("expected %v, got %v", want, rows[0])
	}
}

func TestTokenizeDoubledQuoteIsToggle(t *testing.T) {
	// "" toggles quote mode twice — a net no-op, not an escaped quote.
	rows := Tokenize(`"x""y",z`)

	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if rows[0][0] != "xy" {
		t.Errorf("expected quote characters stripped, got %q", rows[0][0])
	}
	if rows[0][1] != "z" {
		t.Errorf("expected second field z, got %q", rows[0][1])
	}
}

func TestTokenizeUnbalancedQuoteFailSoft(t *testing.T) {
	// An odd quote count leaves the rest of the line in quoted mode:
	// no error, the comma stays literal.
	rows := Tokenize(`"a,b`)

	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if len(rows[0]) != 1 {
		t.Errorf("expected 1 field, got %v", rows[0])
	}
	if rows[0][0] != "a,b" {
		t.Errorf("expected literal comma kept, got %q", rows[0][0])
	}
}

func TestTokenizeDropsBlankLines(t *testing.T) {
	rows := Tokenize("a,b\n\n   \nc,d\n")

	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[1][0] != "c" {
		t.Errorf("expected second row to start with c, got %q", rows[1][0])
	}
}

func TestTokenizeTrimsFields(t *testing.T) {
	rows := Tokenize("  a  , b ,c")

	want := []string{"a", "b", "c"}
	if !reflect.DeepEqual(rows[0], want) {
		t.Errorf("expected %v, got %v", want, rows[0])
	}
}

func TestNormalizeLowercasesHeaders(t *testing.T) {
	records := Normalize([][]string{
		{"Servidor", "PLAYER"},
		{"EU22", "Kursliov"},
	})

	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0]["servidor"] != "EU22" {
		t.Errorf("expected servidor EU22, got %q", records[0]["servidor"])
	}
	if records[0].Field(model.FieldPlayer) != "Kursliov" {
		t.Errorf("expected player Kursliov, got %q", records[0].Field(model.FieldPlayer))
	}
}

func TestNormalizeDropsEmptyRow(t *testing.T) {
	records := Normalize([][]string{
		{"Player", "Event"},
		{"", ""},
	})

	if len(records) != 0 {
		t.Errorf("expected all-empty row dropped, got %d records", len(records))
	}
}

func TestNormalizeLengthMismatch(t *testing.T) {
	// Extra headers and extra values beyond the shorter length are ignored.
	records := Normalize([][]string{
		{"a", "b", "c"},
		{"1", "2"},
		{"1", "2", "3", "4"},
	})

	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if _, ok := records[0]["c"]; ok {
		t.Error("expected missing column c to be absent, not empty")
	}
	if records[1]["c"] != "3" {
		t.Errorf("expected c=3, got %q", records[1]["c"])
	}
}

func TestNormalizeDuplicateHeaderLastWins(t *testing.T) {
	records := Normalize([][]string{
		{"x", "x"},
		{"first", "second"},
	})

	if records[0]["x"] != "second" {
		t.Errorf("expected last value to win, got %q", records[0]["x"])
	}
}

func TestNormalizeEmptyInput(t *testing.T) {
	if got := Normalize(nil); got != nil {
		t.Errorf("expected nil for empty input, got %v", got)
	}
	if got := Normalize([][]string{{"only", "headers"}}); len(got) != 0 {
		t.Errorf("expected no records for header-only input, got %v", got)
	}
}

func TestParseDate(t *testing.T) {
	d, ok := ParseDate("19/11/2025")
	if !ok {
		t.Fatal("expected parse to succeed")
	}
	if d.Year != 2025 || d.Month != time.November || d.Day != 19 {
		t.Errorf("expected 19 Nov 2025, got %+v", d)
	}
}

func TestParseDateWrongSeparator(t *testing.T) {
	if _, ok := ParseDate("2025-11-19"); ok {
		t.Error("expected failure for dash-separated date")
	}
}

func TestParseDateNonNumeric(t *testing.T) {
	if _, ok := ParseDate("aa/11/2025"); ok {
		t.Error("expected failure for non-numeric day")
	}
}

func TestParseDateWrongComponentCount(t *testing.T) {
	if _, ok := ParseDate("19/11"); ok {
		t.Error("expected failure for two components")
	}
	if _, ok := ParseDate("19/11/2025/7"); ok {
		t.Error("expected failure for four components")
	}
}
