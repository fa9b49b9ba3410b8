package limits

import (
	"context"
	"encoding/json"
	"log/slog"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/types"
	"k8s.io/client-go/kubernetes"
)

// AnnotationKey is the pod metadata annotation written by the Annotator.
const AnnotationKey = "warning"

// Annotation values, one per pod, mutually exclusive.
const (
	ValueNoLimits      = "no-limits"
	ValueNoCPULimit    = "no-cpu-limit"
	ValueNoMemoryLimit = "no-memory-limit"
)

// Annotator patches pods that have containers with missing limits.
// Each pod is patched at most once per run, best-effort, no retry.
type Annotator struct {
	clientset kubernetes.Interface
	dryRun    bool
	log       *slog.Logger
}

// NewAnnotator creates an Annotator. In dry-run mode no patches are issued;
// every pod that would be patched counts as a success.
func NewAnnotator(clientset kubernetes.Interface, dryRun bool) *Annotator {
	return &Annotator{
		clientset: clientset,
		dryRun:    dryRun,
		log:       slog.Default().With("component", "annotator"),
	}
}

// podSummary aggregates the findings of one pod.
type podSummary struct {
	namespace     string
	podName       string
	missingCPU    bool
	missingMemory bool
}

// annotationValue derives the single warning value for a pod.
func (s podSummary) annotationValue() string {
	switch {
	case s.missingCPU && s.missingMemory:
		return ValueNoLimits
	case s.missingCPU:
		return ValueNoCPULimit
	default:
		return ValueNoMemoryLimit
	}
}

// groupByPod ORs findings together per distinct namespace/pod pair.
func groupByPod(findings []Finding) map[string]*podSummary {
	pods := make(map[string]*podSummary)
	for _, f := range findings {
		key := f.Namespace + "/" + f.PodName
		s, ok := pods[key]
		if !ok {
			s = &podSummary{namespace: f.Namespace, podName: f.PodName}
			pods[key] = s
		}
		if f.MissingCPULimit {
			s.missingCPU = true
		}
		if f.MissingMemoryLimit {
			s.missingMemory = true
		}
	}
	return pods
}

// Annotate groups findings by pod and patches each distinct pod with a
// warning annotation via a metadata merge patch. A failure on one pod is
// logged and counted but does not stop the rest of the batch. Returns the
// number of pods annotated successfully and the number that failed.
func (a *Annotator) Annotate(ctx context.Context, findings []Finding) (succeeded, failed int) {
	pods := groupByPod(findings)
	if len(pods) == 0 {
		a.log.Info("no pods with missing limits, nothing to annotate")
		return 0, 0
	}

	a.log.Info("annotating pods with warning labels", "pods", len(pods), "dry_run", a.dryRun)

	for _, s := range pods {
		value := s.annotationValue()

		if a.dryRun {
			a.log.Info("[DRY RUN] would annotate pod",
				"namespace", s.namespace, "pod", s.podName, "warning", value)
			succeeded++
			continue
		}

		if err := a.patchPod(ctx, s.namespace, s.podName, value); err != nil {
			a.log.Error("failed to annotate pod",
				"namespace", s.namespace, "pod", s.podName, "warning", value, "error", err)
			failed++
			continue
		}
		a.log.Info("annotated pod", "namespace", s.namespace, "pod", s.podName, "warning", value)
		succeeded++
	}

	return succeeded, failed
}

func (a *Annotator) patchPod(ctx context.Context, namespace, name, value string) error {
	patch := map[string]any{
		"metadata": map[string]any{
			"annotations": map[string]string{
				AnnotationKey: value,
			},
		},
	}
	body, err := json.Marshal(patch)
	if err != nil {
		return err
	}

	_, err = a.clientset.CoreV1().Pods(namespace).Patch(
		ctx, name, types.MergePatchType, body, metav1.PatchOptions{})
	return err
}
