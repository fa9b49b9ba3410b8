// Package output renders limit findings as a table, JSON, or CSV.
package output

import (
	"fmt"

	"github.com/escape-velocity-ventures/limitwarden/internal/limits"
)

// Format selects a report renderer.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatCSV   Format = "csv"
)

// ParseFormat validates a format name from the CLI.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatTable, FormatJSON, FormatCSV:
		return Format(s), nil
	}
	return "", fmt.Errorf("unknown output format %q (want table, json, or csv)", s)
}

// Render serializes findings in the given format.
func Render(format Format, findings []limits.Finding) (string, error) {
	switch format {
	case FormatJSON:
		return RenderJSON(findings)
	case FormatCSV:
		return RenderCSV(findings), nil
	case FormatTable:
		return RenderTable(findings), nil
	}
	return "", fmt.Errorf("unknown output format %q", format)
}
