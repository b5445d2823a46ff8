package types

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Severity classifies how serious a diagnostic issue is.
type Severity string

const (
	SevInfo    Severity = "info"    // informational (unusual but valid)
	SevWarning Severity = "warning" // band skipped or value ignored, decode continued
)

// Diagnostic represents a single non-fatal condition observed during a
// decode: an offline band, an unsupported pixel type, or a nodata value that
// was detected but not applied. Fatal conditions are returned as errors, not
// recorded here.
type Diagnostic struct {
	Severity Severity `json:"severity"`
	Band     int      `json:"band"`
	Offset   int      `json:"offset"` // byte offset into the input stream
	Issue    string   `json:"issue"`
	Expected any      `json:"expected,omitempty"`
	Actual   any      `json:"actual,omitempty"`
}

// Summary provides quick statistics over a report.
type Summary struct {
	Warnings int `json:"warnings"`
	Info     int `json:"info"`
}

// Report collects all diagnostics found during one decode.
type Report struct {
	Diagnostics []Diagnostic `json:"diagnostics"`
	Summary     Summary      `json:"summary"`

	// ByBand groups diagnostics by band index for efficient querying.
	ByBand map[int][]Diagnostic `json:"by_band,omitempty"`
}

// NewReport creates an empty report.
func NewReport() *Report {
	return &Report{
		ByBand: make(map[int][]Diagnostic),
	}
}

// Add adds a diagnostic to the report and updates indices.
func (r *Report) Add(d Diagnostic) {
	r.Diagnostics = append(r.Diagnostics, d)

	switch d.Severity {
	case SevWarning:
		r.Summary.Warnings++
	case SevInfo:
		r.Summary.Info++
	}

	r.ByBand[d.Band] = append(r.ByBand[d.Band], d)
}

// HasAnyIssues returns true if any diagnostics were recorded.
func (r *Report) HasAnyIssues() bool {
	return len(r.Diagnostics) > 0
}

// FormatJSON returns the report as formatted JSON (2-space indentation).
func (r *Report) FormatJSON() (string, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// FormatText returns a human-readable text report, one line per issue.
func (r *Report) FormatText() string {
	var b strings.Builder

	for _, d := range r.Diagnostics {
		b.WriteString(fmt.Sprintf("0x%04X [%s/band %d] %s", d.Offset, d.Severity, d.Band, d.Issue))
		if d.Expected != nil {
			b.WriteString(fmt.Sprintf(" (expected %v", d.Expected))
			if d.Actual != nil {
				b.WriteString(fmt.Sprintf(", got %v", d.Actual))
			}
			b.WriteString(")")
		} else if d.Actual != nil {
			b.WriteString(fmt.Sprintf(" (got %v)", d.Actual))
		}
		b.WriteString("\n")
	}

	if len(r.Diagnostics) == 0 {
		b.WriteString("No issues found.\n")
	}

	return b.String()
}
