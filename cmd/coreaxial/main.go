package main

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	settingsFile string
	verbose      bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "coreaxial",
		Short: "Reactor assembly axial expansion engine",
	}

	rootCmd.PersistentFlags().StringVar(&settingsFile, "settings", "", "settings file overriding case settings")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(expandCmd())
	rootCmd.AddCommand(validateCmd())
	rootCmd.AddCommand(reportCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func expandCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "expand [project-path]",
		Short: "Run the expansion scenario and emit the resulting mesh and inventory",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runExpand(args[0])
		},
	}
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [project-path]",
		Short: "Validate a case definition without running the expansion",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runValidate(args[0])
		},
	}
}

func reportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "report [project-path]",
		Short: "Display the as-input assembly inventory",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runReport(args[0])
		},
	}
}
