// cmd/root.go
package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/brandenburg-rta/rta-bounds/config"
)

var (
	taskSetPath string
	logLevel    string
)

var rootCmd = &cobra.Command{
	Use:   "rta-bounds",
	Short: "Compute worst-case response-time bounds for a task set",
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Compute response-time bounds for the task set in a YAML file",
	Run: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		spec, err := config.Load(taskSetPath)
		if err != nil {
			logrus.Fatalf("Loading task set: %v", err)
		}
		logrus.Infof("Analyzing %d tasks under %s scheduling", len(spec.Tasks), spec.Policy)

		results, err := config.Analyze(spec)
		if err != nil {
			logrus.Fatalf("Analysis failed: %v", err)
		}
		for _, r := range results {
			fmt.Printf("%s: R = %s\n", r.Name, r.ResponseTime)
		}
	},
}

// Execute runs the root command, exiting the process with a non-zero
// status on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	analyzeCmd.Flags().StringVar(&taskSetPath, "taskset", "", "Path to the task-set YAML file")
	analyzeCmd.Flags().StringVar(&logLevel, "log", "info", "Log level (debug, info, warn, error)")
	analyzeCmd.MarkFlagRequired("taskset")

	rootCmd.AddCommand(analyzeCmd)
}
