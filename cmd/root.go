package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/escape-velocity-ventures/limitwarden/internal/config"
	"github.com/escape-velocity-ventures/limitwarden/internal/kube"
	"github.com/escape-velocity-ventures/limitwarden/internal/limits"
	"github.com/escape-velocity-ventures/limitwarden/internal/logging"
	"github.com/escape-velocity-ventures/limitwarden/internal/output"
)

var (
	// Flags
	flagOutput     string
	flagLogLevel   string
	flagNamespace  string
	flagAnnotate   bool
	flagDryRun     bool
	flagKubeconfig string
	flagConfig     string
	flagExcludeNS  []string
)

var rootCmd = &cobra.Command{
	Use:   "limitwarden",
	Short: "Audit Kubernetes pods for missing resource limits",
	Long: `limitwarden lists the pods in a cluster and reports every container
that has no CPU and/or memory limit set. With --annotate it also patches
each offending pod with a "warning" annotation (no-cpu-limit,
no-memory-limit, or no-limits).

It is a one-shot scanner: connect, list, evaluate, report, exit.`,
	SilenceUsage: true,
	RunE:         runAudit,
}

func init() {
	rootCmd.Flags().StringVar(&flagOutput, "output", "table", "Output format: table, json, csv")
	rootCmd.Flags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.Flags().StringVarP(&flagNamespace, "namespace", "n", "", "Check pods in a specific namespace (default: all namespaces)")
	rootCmd.Flags().BoolVar(&flagAnnotate, "annotate", false, "Annotate offending pods with warning labels (env: ANNOTATE)")
	rootCmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "With --annotate, log what would be patched without patching")
	rootCmd.Flags().StringVar(&flagKubeconfig, "kubeconfig", "", "Path to kubeconfig (default: KUBECONFIG or ~/.kube/config)")
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Config file path (default: ~/.limitwarden/config.yaml)")
	rootCmd.Flags().StringSliceVar(&flagExcludeNS, "exclude-namespace", nil, "Namespaces to skip (repeatable)")
}

// Execute runs the root command.
func Execute(version string) {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(fmt.Sprintf("limitwarden %s\n", version))
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runAudit(cmd *cobra.Command, args []string) error {
	cfg, cfgErr := config.Load(flagConfig)
	if cfgErr != nil {
		cfg = &config.Config{}
	}

	logLevel := flagLogLevel
	if !cmd.Flags().Changed("log-level") && cfg.LogLevel != "" {
		logLevel = cfg.LogLevel
	}
	logging.Setup(logLevel, "")
	log := slog.Default().With("component", "audit")

	if cfgErr != nil {
		log.Warn("ignoring unreadable config file", "error", cfgErr)
	}

	log.Info("starting pod resource limit audit")

	outputName := flagOutput
	if !cmd.Flags().Changed("output") && cfg.Output != "" {
		outputName = cfg.Output
	}
	format, err := output.ParseFormat(outputName)
	if err != nil {
		return err
	}

	excludes := flagExcludeNS
	if !cmd.Flags().Changed("exclude-namespace") && len(cfg.ExcludeNamespaces) > 0 {
		excludes = cfg.ExcludeNamespaces
	}

	clientset, err := kube.NewClient(flagKubeconfig)
	if err != nil {
		log.Error("failed to connect to cluster", "error", err)
		return fmt.Errorf("connect to cluster: %w", err)
	}

	ctx := cmd.Context()

	checker := limits.NewChecker(clientset, excludes)
	findings := checker.FindMissingLimits(ctx, flagNamespace)

	if resolveAnnotate(cmd, cfg) {
		if len(findings) > 0 {
			annotator := limits.NewAnnotator(clientset, flagDryRun)
			succeeded, failed := annotator.Annotate(ctx, findings)
			log.Info("annotation results", "succeeded", succeeded, "failed", failed)
			if failed > 0 {
				log.Warn("some pods could not be annotated, check logs for details", "failed", failed)
			}
		} else {
			log.Info("no pods with missing limits found, nothing to annotate")
		}
	}

	out, err := output.Render(format, findings)
	if err != nil {
		return err
	}
	fmt.Println(out)

	log.Info("pod resource limit audit completed")
	return nil
}

// resolveAnnotate returns the annotate setting: an explicit --annotate flag
// wins, then the ANNOTATE environment variable, then the config file.
func resolveAnnotate(cmd *cobra.Command, cfg *config.Config) bool {
	if cmd.Flags().Changed("annotate") {
		return flagAnnotate
	}
	if v, ok := os.LookupEnv("ANNOTATE"); ok {
		return strings.EqualFold(v, "true")
	}
	return cfg.Annotate
}
