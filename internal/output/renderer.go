package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/luispauloloureiro/unfdashboard/internal/model"
)

// Report is the one-shot stats view: the KPI summary plus the ranking
// table for the selected period.
type Report struct {
	Summary     model.Summary        `json:"summary"`
	Ranking     []model.RankingEntry `json:"ranking"`
	Period      model.Period         `json:"period"`
	GeneratedAt time.Time            `json:"generated_at"`
	Fallback    bool                 `json:"fallback"`
}

// Renderer writes a Report to an output stream.
type Renderer interface {
	Render(rep Report) error
}

// ---------------------------------------------------------------------------
// Text Renderer (colorized terminal output)
// ---------------------------------------------------------------------------

// The dashboard's ember palette.
var (
	styleTitle = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff6b35")).Bold(true)
	styleLabel = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	styleValue = lipgloss.NewStyle().Foreground(lipgloss.Color("#f7931e")).Bold(true)
	styleWarn  = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	styleRank  = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
)

// TextRenderer prints a report to the terminal with the dashboard colors.
type TextRenderer struct {
	w io.Writer
}

// NewTextRenderer returns a Renderer that writes colorized text to stdout.
func NewTextRenderer() *TextRenderer {
	return &TextRenderer{w: os.Stdout}
}

func (r *TextRenderer) Render(rep Report) error {
	var out []string

	out = append(out, styleTitle.Render(fmt.Sprintf("UNF activity — %s", rep.Period)))
	if rep.Fallback {
		out = append(out, styleWarn.Render("showing sample data: live load failed"))
	}
	out = append(out,
		kpi("registros", fmt.Sprintf("%d", rep.Summary.TotalRecords)),
		kpi("jogadores", fmt.Sprintf("%d", rep.Summary.UniquePlayers)),
		kpi("evento mais frequente", rep.Summary.TopEvent),
		"",
	)

	for _, e := range rep.Ranking {
		out = append(out, fmt.Sprintf("%s %-30s %4dx  %d eventos",
			styleRank.Render(fmt.Sprintf("#%02d", e.Rank)),
			e.Player, e.Participations, e.UniqueEvents))
	}

	for _, line := range out {
		if _, err := fmt.Fprintln(r.w, line); err != nil {
			return err
		}
	}
	return nil
}

func kpi(label, value string) string {
	return fmt.Sprintf("%s %s", styleLabel.Render(label+":"), styleValue.Render(value))
}

// ---------------------------------------------------------------------------
// JSON Renderer (structured output for piping)
// ---------------------------------------------------------------------------

// JSONRenderer prints the report as a single JSON object.
type JSONRenderer struct {
	enc *json.Encoder
}

// NewJSONRenderer returns a Renderer that writes JSON to stdout.
func NewJSONRenderer() *JSONRenderer {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return &JSONRenderer{enc: enc}
}

func (r *JSONRenderer) Render(rep Report) error {
	return r.enc.Encode(rep)
}
