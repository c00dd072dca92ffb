package cli

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/zshkit/zpgen/internal/output"
	"github.com/zshkit/zpgen/internal/scaffold"
)

// Global flags
var (
	globalNoColor bool
	globalQuiet   bool
	globalDebug   bool
)

// Exit codes. ExitGitInitFailed distinguishes the degraded case where
// the scaffold was written successfully but Git initialization failed.
const (
	ExitOK            = 0
	ExitFailure       = 1
	ExitGitInitFailed = 2
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "zpgen",
	Short: "Zsh plugin scaffolding tool",
	Long: `zpgen generates new Zsh plugin directory trees from built-in templates.

Use "zpgen init <name> [options]" to create a plugin skeleton with a main
plugin script, optional autoloaded functions and bin directories, a Bash
wrapper, GitHub Actions workflows for shellcheck/shellspec, and a fresh
Git repository.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		output.SetupLogging(globalDebug, globalQuiet)
		output.SetQuiet(globalQuiet)
		output.SetNoColor(globalNoColor)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if scaffold.IsGitInitFailed(err) {
			os.Exit(ExitGitInitFailed)
		}
		os.Exit(ExitFailure)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVar(&globalNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVarP(&globalQuiet, "quiet", "q", false, "Suppress non-error output")
	rootCmd.PersistentFlags().BoolVar(&globalDebug, "debug", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)
}
