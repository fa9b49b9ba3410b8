package output

import (
	"encoding/json"
	"fmt"

	"github.com/escape-velocity-ventures/limitwarden/internal/limits"
)

// RenderJSON formats findings as an indented JSON array. An empty finding
// set renders as an empty array, not null.
func RenderJSON(findings []limits.Finding) (string, error) {
	if findings == nil {
		findings = []limits.Finding{}
	}
	out, err := json.MarshalIndent(findings, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal findings: %w", err)
	}
	return string(out), nil
}
