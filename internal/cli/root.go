// Package cli provides the command-line interface for simple-resume.
package cli

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/athola/simple-resume/internal/version"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "simple-resume",
	Short: "Resolve document colour schemes",
	Long: `simple-resume resolves the colour scheme of a resume document: named
palettes from the built-in registry, deterministic generated palettes,
palettes fetched from the ColourLovers service, or colours supplied
directly, finalized into a complete set of legible role colours.`,
	Version:      version.Short(),
	SilenceUsage: true,
}

// NewRootCmd returns the fully wired root command.
func NewRootCmd() *cobra.Command {
	return rootCmd
}

// Execute runs the root command. Called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable verbose output")

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(paletteCmd)
}

// newLogger builds the command logger: debug to stderr when verbose,
// warnings only otherwise.
func newLogger(cmd *cobra.Command) hclog.Logger {
	verbose, _ := cmd.Flags().GetBool("verbose")
	level := hclog.Warn
	if verbose {
		level = hclog.Debug
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "simple-resume",
		Output: os.Stderr,
		Level:  level,
	})
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print detailed version information including build date, commit hash, and Go version.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version.String())
	},
}
