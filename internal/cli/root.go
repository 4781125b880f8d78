// Package cli provides the command-line interface for monet.
package cli

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/monet/internal/version"
)

var (
	// Global flags
	flagVerbose bool
	flagQuiet   bool

	// log is the shared diagnostic logger; the level is set from the
	// global flags before any command runs.
	log hclog.Logger = hclog.NewNullLogger()

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "monet",
		Short: "A perceptual colour theme generator",
		Long: `Monet derives complete UI colour themes from a single source colour.

Give it a colour (or an image to pick one from) and it produces light and
dark schemes with every semantic role assigned, plus the tonal palettes
they are built from. Colours are derived in HCT, a perceptually accurate
colour space, so every scheme keeps usable contrast by construction.`,
		Version:      version.Short(),
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := hclog.Warn
			if flagVerbose {
				level = hclog.Debug
			}
			if flagQuiet {
				level = hclog.Error
			}
			log = hclog.New(&hclog.LoggerOptions{
				Name:   "monet",
				Level:  level,
				Output: os.Stderr,
			})
		},
	}
)

// NewRootCmd returns the fully assembled root command.
func NewRootCmd() *cobra.Command {
	return rootCmd
}

// Execute runs the root command. It is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "suppress non-error output")

	// Set version template
	rootCmd.SetVersionTemplate(version.String() + "\n")

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(themeCmd)
	rootCmd.AddCommand(paletteCmd)
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print detailed version information including build date, commit hash, and Go version.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.String())
	},
}
