package parser

import (
	"strconv"
	"strings"
	"time"

	"github.com/luispauloloureiro/unfdashboard/internal/model"
)

// ParseDate converts a dd/mm/yyyy string into a calendar date.
// It reports false when the string does not have exactly three
// /-separated components or any component is not an integer.
// No timezone or locale adjustment — purely a calendar triple.
func ParseDate(s string) (model.Date, bool) {
	parts := strings.Split(strings.TrimSpace(s), "/")
	if len(parts) != 3 {
		return model.Date{}, false
	}

	day, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return model.Date{}, false
	}
	month, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return model.Date{}, false
	}
	year, err := strconv.Atoi(strings.TrimSpace(parts[2]))
	if err != nil {
		return model.Date{}, false
	}

	return model.Date{Year: year, Month: time.Month(month), Day: day}, true
}
