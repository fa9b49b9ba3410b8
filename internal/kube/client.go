// Package kube resolves cluster credentials and builds a Kubernetes client.
package kube

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/rest"
	"k8s.io/client-go/tools/clientcmd"
)

// NewClient returns a clientset for the cluster. In-cluster credentials are
// tried first (for runs inside a pod), then the kubeconfig file: the explicit
// path when given, else KUBECONFIG, else $HOME/.kube/config. The first
// strategy that succeeds wins; there is no retry.
func NewClient(kubeconfigPath string) (kubernetes.Interface, error) {
	log := slog.Default().With("component", "kube")

	config, err := rest.InClusterConfig()
	if err == nil {
		log.Info("connected using in-cluster config")
	} else {
		config, err = kubeconfigConfig(kubeconfigPath)
		if err != nil {
			return nil, err
		}
		log.Info("connected using kubeconfig")
	}

	clientset, err := kubernetes.NewForConfig(config)
	if err != nil {
		return nil, fmt.Errorf("create clientset: %w", err)
	}
	return clientset, nil
}

func kubeconfigConfig(path string) (*rest.Config, error) {
	if path == "" {
		path = os.Getenv("KUBECONFIG")
	}
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home directory: %w", err)
		}
		path = filepath.Join(home, ".kube", "config")
	}

	config, err := clientcmd.BuildConfigFromFlags("", path)
	if err != nil {
		return nil, fmt.Errorf("load kubeconfig %s: %w", path, err)
	}
	return config, nil
}
