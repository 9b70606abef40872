// Package cli implements the cardeliveryd command line.
package cli

import (
	"github.com/spf13/cobra"
)

// BuildInfo carries the ldflags-injected build metadata.
type BuildInfo struct {
	Version   string
	Commit    string
	BuildDate string
}

var buildInfo = BuildInfo{Version: "dev", Commit: "unknown", BuildDate: "unknown"}

var rootCmd = &cobra.Command{
	Use:   "cardeliveryd",
	Short: "Car import and delivery service",
	Long: `cardeliveryd serves car, city and document listings over HTTP,
supports filtered search, and computes full import-cost estimates
(customs duty, utilization fee, delivery).

Client traffic is served on one port and admin traffic on another,
each with its own worker pool.`,
	// Running without a subcommand starts the server, matching how the
	// service is normally deployed.
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd, args)
	},
}

// Execute runs the CLI with the given build metadata.
func Execute(info BuildInfo) error {
	buildInfo = info
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)
}
