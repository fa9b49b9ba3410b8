// limitwarden — Kubernetes pod resource-limit auditor
//
// A single binary that connects to a cluster, lists pods, flags every
// container missing a CPU and/or memory limit, optionally annotates the
// offending pods with a warning, prints a report, and exits.
//
// Usage:
//
//	limitwarden                        # audit all namespaces, table output
//	limitwarden -n payments            # audit one namespace
//	limitwarden --output json          # machine-readable output
//	limitwarden --annotate             # also patch offending pods
package main

import "github.com/escape-velocity-ventures/limitwarden/cmd"

var version = "dev"

func main() {
	cmd.Execute(version)
}
