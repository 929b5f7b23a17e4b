// Package report renders migration results and tool listings as colored
// text or JSON.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/beixiyo/ai-sync/internal/errors"
	"github.com/beixiyo/ai-sync/internal/migrate"
)

// Format specifies the output format for reports.
type Format string

const (
	// FormatText produces human-readable text output.
	FormatText Format = "text"
	// FormatJSON produces machine-readable JSON output.
	FormatJSON Format = "json"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatText, FormatJSON:
		return Format(s), nil
	}
	return "", errors.Newf("unknown output format %q (valid: text, json)", s)
}

// Reporter formats and writes results.
type Reporter struct {
	out    io.Writer
	format Format
}

// NewReporter creates a new Reporter.
func NewReporter(out io.Writer, format Format) *Reporter {
	return &Reporter{
		out:    out,
		format: format,
	}
}

// Report writes a migration report to the output.
func (r *Reporter) Report(rep *migrate.Report) error {
	if rep == nil {
		return nil
	}

	switch r.format {
	case FormatJSON:
		return r.writeJSON(rep)
	default:
		r.reportText(rep)
		return nil
	}
}

func (r *Reporter) writeJSON(v any) error {
	encoder := json.NewEncoder(r.out)
	encoder.SetIndent("", "  ")
	return errors.Wrap(encoder.Encode(v), "encoding JSON report")
}

func (r *Reporter) reportText(rep *migrate.Report) {
	fmt.Fprintf(r.out, "Source: %s\n", rep.SourceDir)
	fmt.Fprintf(r.out, "Tools:  %s\n\n", strings.Join(rep.Tools, ", "))

	if len(rep.Types) == 0 {
		fmt.Fprintln(r.out, color.YellowString("Nothing to migrate"))
		return
	}

	for _, tr := range rep.Types {
		fmt.Fprintf(r.out, "  %-9s %s\n", tr.Type, counts(tr.Stats))
	}
	fmt.Fprintln(r.out)

	summary := fmt.Sprintf("%d succeeded, %d skipped, %d failed", rep.Success, rep.Skipped, rep.Error)
	if rep.Error > 0 {
		fmt.Fprintln(r.out, color.RedString("✗ %s", summary))
	} else {
		fmt.Fprintln(r.out, color.GreenString("✓ %s", summary))
	}

	if len(rep.Errors) == 0 {
		return
	}

	fmt.Fprintln(r.out, "\nErrors:")
	printer := color.New(color.FgRed).SprintFunc()
	for _, fe := range rep.Errors {
		fmt.Fprintf(r.out, "  • %s: %s\n", printer(fe.File), fe.Error)
	}
}

func counts(s migrate.Stats) string {
	parts := []string{color.GreenString("%d ok", s.Success)}
	if s.Skipped > 0 {
		parts = append(parts, color.YellowString("%d skipped", s.Skipped))
	}
	if s.Error > 0 {
		parts = append(parts, color.RedString("%d failed", s.Error))
	}
	return strings.Join(parts, ", ")
}
