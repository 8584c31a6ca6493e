package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/driftbuild/drift/internal/version"
	"github.com/driftbuild/drift/pkg/logging"

	// Register the compiled-in plugins.
	_ "github.com/driftbuild/drift/pkg/plugins/builtin"
)

var (
	verbosity  int
	projectDir string

	rootCmd = &cobra.Command{
		Use:   "drift",
		Short: "A config-driven web build tool",
		Long: `drift turns a declarative set of script directives and plugins into a
normalized build pipeline: run commands, per-extension build plugins,
mounted directories, and an optional bundler.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.PersistentFlags().StringVarP(&projectDir, "dir", "d", ".", "Project directory containing drift.toml")

	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(topicsCmd)
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print version information for drift`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("drift version %s\n", version.Version)
		fmt.Printf("  commit: %s\n", version.Commit)
		fmt.Printf("  built:  %s\n", version.Date)
	},
}
