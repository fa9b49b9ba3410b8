package output

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/escape-velocity-ventures/limitwarden/internal/limits"
)

const csvHeader = "NAMESPACE,POD_NAME,CONTAINER_NAME,MISSING_CPU_LIMIT,MISSING_MEMORY_LIMIT"

// RenderCSV formats findings as CSV with every field double-quoted and
// booleans rendered as their JSON literals. Namespace, pod, and container
// names follow Kubernetes naming rules, so no quote or comma escaping is
// needed. An empty finding set renders as the header line only.
func RenderCSV(findings []limits.Finding) string {
	lines := make([]string, 0, len(findings)+1)
	lines = append(lines, csvHeader)

	for _, f := range findings {
		lines = append(lines, fmt.Sprintf("%q,%q,%q,%q,%q",
			f.Namespace,
			f.PodName,
			f.ContainerName,
			strconv.FormatBool(f.MissingCPULimit),
			strconv.FormatBool(f.MissingMemoryLimit),
		))
	}

	return strings.Join(lines, "\n")
}
