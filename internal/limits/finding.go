package limits

// Finding records one container that is missing a CPU and/or memory limit.
// A Finding only exists when at least one of the two booleans is true;
// containers with both limits set are never reported.
type Finding struct {
	Namespace          string `json:"namespace"`
	PodName            string `json:"pod_name"`
	ContainerName      string `json:"container_name"`
	MissingCPULimit    bool   `json:"missing_cpu_limit"`
	MissingMemoryLimit bool   `json:"missing_memory_limit"`
}
