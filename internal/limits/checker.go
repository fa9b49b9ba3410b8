package limits

import (
	"context"
	"log/slog"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes"
)

// Checker lists pods from a cluster and evaluates their resource limits.
type Checker struct {
	clientset kubernetes.Interface
	exclude   map[string]bool
	log       *slog.Logger
}

// NewChecker creates a Checker. Namespaces in excludeNamespaces never
// produce findings.
func NewChecker(clientset kubernetes.Interface, excludeNamespaces []string) *Checker {
	excl := make(map[string]bool, len(excludeNamespaces))
	for _, ns := range excludeNamespaces {
		excl[ns] = true
	}
	return &Checker{
		clientset: clientset,
		exclude:   excl,
		log:       slog.Default().With("component", "checker"),
	}
}

// FindMissingLimits lists pods (all namespaces when namespace is empty) and
// returns a Finding per container with a missing CPU and/or memory limit.
// A listing failure is logged and degrades to an empty result; the caller
// cannot distinguish it from a clean cluster, so the audit still completes.
func (c *Checker) FindMissingLimits(ctx context.Context, namespace string) []Finding {
	if namespace != "" {
		c.log.Info("checking pods in namespace", "namespace", namespace)
	} else {
		c.log.Info("checking pods across all namespaces")
	}

	podList, err := c.clientset.CoreV1().Pods(namespace).List(ctx, metav1.ListOptions{})
	if err != nil {
		c.log.Error("failed to list pods", "namespace", namespace, "error", err)
		return nil
	}

	findings := Evaluate(podList.Items, c.exclude)

	for _, f := range findings {
		c.log.Debug("container with missing limits",
			"namespace", f.Namespace, "pod", f.PodName, "container", f.ContainerName,
			"missing_cpu", f.MissingCPULimit, "missing_memory", f.MissingMemoryLimit)
	}
	c.log.Info("limit check complete", "findings", len(findings), "pods", len(podList.Items))

	return findings
}
