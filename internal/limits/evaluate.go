package limits

import (
	corev1 "k8s.io/api/core/v1"
)

// Evaluate walks every container of every pod and returns a Finding for each
// container whose resource limits have no "cpu" and/or no "memory" entry.
// Only key presence is checked: a limit of zero or an empty quantity still
// counts as set. Pod and container order is preserved. Pods in namespaces
// listed in exclude are skipped.
func Evaluate(pods []corev1.Pod, exclude map[string]bool) []Finding {
	var findings []Finding

	for _, pod := range pods {
		if exclude[pod.Namespace] {
			continue
		}
		for _, c := range pod.Spec.Containers {
			lims := c.Resources.Limits

			_, hasCPU := lims[corev1.ResourceCPU]
			_, hasMemory := lims[corev1.ResourceMemory]

			if hasCPU && hasMemory {
				continue
			}
			findings = append(findings, Finding{
				Namespace:          pod.Namespace,
				PodName:            pod.Name,
				ContainerName:      c.Name,
				MissingCPULimit:    !hasCPU,
				MissingMemoryLimit: !hasMemory,
			})
		}
	}

	return findings
}
