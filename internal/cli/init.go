package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/zshkit/zpgen/internal/config"
	"github.com/zshkit/zpgen/internal/name"
	"github.com/zshkit/zpgen/internal/output"
	"github.com/zshkit/zpgen/internal/scaffold"
	"github.com/zshkit/zpgen/internal/template"
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init <name>",
	Short: "Initialize a new Zsh plugin structure",
	Long: `Create a new plugin directory zsh-<name>-plugin from built-in templates.

The generated plugin contains:

  1. A main script <name>.plugin.zsh with function tracking, optional
     alias tracking, a <name>_plugin_init function that sets up FPATH and
     PATH entries, and a <name>_plugin_unload function that reverses
     everything the plugin defined.
  2. A Bash wrapper <name>.bash when --add-bash-wrapper is set.
  3. A .github/workflows/shell.yml GitHub Actions workflow running
     shellcheck and shellspec, unless --no-github-dir is set or both
     checks are disabled.
  4. A functions directory with an example autoloaded function, unless
     --no-functions-dir is set (an in-line example is emitted instead).
  5. An empty bin directory when --add-bin-dir is set.
  6. A .gitignore and Makefile, unless both --no-shell-check and
     --no-shell-spec are set.
  7. A README.md skeleton.
  8. A fresh Git repository, unless --no-git-init is set.

Plugin names must start with a letter and may only contain letters,
digits, hyphens and underscores.

A preset selected with --template provides the option defaults; any flag
given explicitly overrides its preset value.

Examples:
  zpgen init my-plugin
  zpgen init my-plugin --template minimal
  zpgen init my-plugin -t simple --add-bin-dir
  zpgen init my-plugin -d "Tools for widgets" -u myuser`,
	Args: cobra.ExactArgs(1),
	RunE: runInit,
}

// Init command flags
var (
	initTemplate    string
	initForce       bool
	initInteractive bool
	initOutputDir   string
	initConfigPath  string

	initAddBinDir      bool
	initAddBashWrapper bool
	initNoAliases      bool
	initNoShellCheck   bool
	initNoFunctionsDir bool
	initNoGitInit      bool
	initNoGithubDir    bool
	initNoShellSpec    bool
	initUseZplugins    bool

	initDescription string
	initGithubUser  string
)

func init() {
	// Flags for init
	initCmd.Flags().StringVarP(&initTemplate, "template", "t", "", "Preset to base options on (minimal|simple|complete)")
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "Overwrite existing files and directories")
	initCmd.Flags().BoolVarP(&initInteractive, "interactive", "i", false, "Prompt for preset, description and GitHub user")
	initCmd.Flags().StringVarP(&initOutputDir, "output", "o", ".", "Parent directory for the plugin")
	initCmd.Flags().StringVar(&initConfigPath, "config", "", "Path to defaults file (default: XDG config dir)")

	initCmd.Flags().BoolVarP(&initAddBinDir, "add-bin-dir", "a", false, "Add a bin directory for plugin-specific binaries")
	initCmd.Flags().BoolVarP(&initAddBashWrapper, "add-bash-wrapper", "w", false, "Add a Bash wrapper to load the plugin from Bash")
	initCmd.Flags().BoolVarP(&initNoAliases, "no-aliases", "A", false, "Do not include alias tracking support")
	initCmd.Flags().BoolVarP(&initNoShellCheck, "no-shell-check", "C", false, "Do not include shellcheck linting support")
	initCmd.Flags().BoolVarP(&initNoFunctionsDir, "no-functions-dir", "F", false, "Do not include a functions directory and example file")
	initCmd.Flags().BoolVarP(&initNoGitInit, "no-git-init", "G", false, "Do not initialize Git in the generated plugin")
	initCmd.Flags().BoolVarP(&initNoGithubDir, "no-github-dir", "H", false, "Do not include a .github directory")
	initCmd.Flags().BoolVarP(&initNoShellSpec, "no-shell-spec", "S", false, "Do not include shellspec testing support")
	initCmd.Flags().BoolVarP(&initUseZplugins, "use-zplugins", "z", false, "Use the zplugins plugin for support functions")

	initCmd.Flags().StringVarP(&initDescription, "description", "d", "", "Short description of the plugin")
	initCmd.Flags().StringVarP(&initGithubUser, "github-user", "u", "", "GitHub user name for inclusion in README.md")
}

func runInit(cmd *cobra.Command, args []string) error {
	pluginName, err := name.Parse(args[0])
	if err != nil {
		output.Failure("Initialization failed due to invalid plugin name.")
		output.Detail(err.Error())
		output.Detail("Plugin names must start with a letter and can only contain letters, digits, hyphens and underscores.")
		return err
	}

	cfg, err := config.LoadOrDefault(initConfigPath)
	if err != nil {
		output.Failure(fmt.Sprintf("Failed to load defaults file: %v", err))
		return err
	}
	applyOutputConfig(cmd, cfg)

	preset, err := resolveInitPreset(cmd, cfg)
	if err != nil {
		output.Failure(err.Error())
		return err
	}

	overrides, err := collectOverrides(cmd, cfg)
	if err != nil {
		return err
	}

	opts := scaffold.Resolve(preset, overrides)
	result, err := scaffold.Emit(cmd.Context(), scaffold.EmitOptions{
		Name:      pluginName,
		Options:   opts,
		ParentDir: initOutputDir,
		Force:     initForce,
	})
	if err != nil {
		return reportEmitError(err, result)
	}

	output.Success(fmt.Sprintf("Created plugin %s", result.Root))
	for _, file := range result.Files {
		output.Detail(file)
	}
	if result.GitInitialized {
		output.Detail(".git")
	}
	return nil
}

// applyOutputConfig applies the [output] section of the defaults file.
// Flags given on the command line always win over file values, so only
// unchanged flags pick up the configured preference.
func applyOutputConfig(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Root().PersistentFlags()
	if cfg.Output.Quiet && !flags.Changed("quiet") {
		globalQuiet = true
		output.SetupLogging(globalDebug, true)
		output.SetQuiet(true)
	}
	if cfg.Output.NoColor && !flags.Changed("no-color") {
		globalNoColor = true
		output.SetNoColor(true)
	}
}

// resolveInitPreset picks the preset from the --template flag, an
// interactive prompt, or the defaults file, in that order.
func resolveInitPreset(cmd *cobra.Command, cfg *config.Config) (scaffold.Preset, error) {
	if cmd.Flags().Changed("template") {
		return scaffold.ParsePreset(initTemplate)
	}
	if initInteractive {
		return promptPreset()
	}
	if cfg.Defaults.Template != "" {
		return scaffold.ParsePreset(cfg.Defaults.Template)
	}
	return scaffold.PresetNone, nil
}

// collectOverrides builds the explicit flag overrides for Resolve. Only
// flags actually given on the command line participate, so preset
// defaults remain in force for everything else.
func collectOverrides(cmd *cobra.Command, cfg *config.Config) (scaffold.Overrides, error) {
	var ov scaffold.Overrides

	boolFlag := func(flagName string, value *bool) *bool {
		if cmd.Flags().Changed(flagName) {
			return value
		}
		return nil
	}
	ov.AddBinDir = boolFlag("add-bin-dir", &initAddBinDir)
	ov.AddBashWrapper = boolFlag("add-bash-wrapper", &initAddBashWrapper)
	ov.NoAliases = boolFlag("no-aliases", &initNoAliases)
	ov.NoShellCheck = boolFlag("no-shell-check", &initNoShellCheck)
	ov.NoFunctionsDir = boolFlag("no-functions-dir", &initNoFunctionsDir)
	ov.NoGitInit = boolFlag("no-git-init", &initNoGitInit)
	ov.NoGithubDir = boolFlag("no-github-dir", &initNoGithubDir)
	ov.NoShellSpec = boolFlag("no-shell-spec", &initNoShellSpec)
	ov.UseZplugins = boolFlag("use-zplugins", &initUseZplugins)

	description := initDescription
	if !cmd.Flags().Changed("description") {
		description = cfg.Defaults.Description
		if initInteractive {
			prompted, err := promptDescription(description)
			if err != nil {
				return ov, err
			}
			description = prompted
		}
	}
	if description != "" {
		ov.ShortDescription = &description
	}

	githubUser := initGithubUser
	if !cmd.Flags().Changed("github-user") {
		githubUser = cfg.Defaults.GithubUser
		if githubUser == "" {
			githubUser = os.Getenv("USER")
		}
		if initInteractive {
			prompted, err := promptGithubUser(githubUser)
			if err != nil {
				return ov, err
			}
			githubUser = prompted
		}
	}
	if githubUser == "" {
		output.Failure("Initialization failed as no GitHub user could be determined.")
		output.Detail("The GitHub user is substituted into the repository URL in README.md.")
		output.Detail("Pass '--github-user', set defaults.github_user in the defaults file, or export USER.")
		return ov, errors.New("github user is required: set --github-user, defaults.github_user, or $USER")
	}
	ov.GithubUser = &githubUser

	return ov, nil
}

// reportEmitError prints a friendly failure block for each scaffold
// error kind and passes the error back for exit code selection.
func reportEmitError(err error, result *scaffold.EmitResult) error {
	var scaffoldErr *scaffold.Error
	var renderErr *template.RenderError

	switch {
	case scaffold.IsGitInitFailed(err):
		output.Warning("Plugin created, but Git repository initialization failed.")
		if result != nil {
			output.Detail(fmt.Sprintf("Scaffold is complete at %s", result.Root))
		}
		output.Detail(err.Error())
		output.Detail("Ensure that Git is installed and accessible, or use '--no-git-init' to skip Git initialization.")
	case scaffold.IsTargetExists(err):
		output.Failure("Initialization failed as the target file or directory already exists.")
		output.Detail(err.Error())
		output.Detail("Use '--force' to overwrite existing files and directories.")
	case errors.As(err, &renderErr):
		output.Failure("Initialization failed due to a template rendering error.")
		output.Detail(err.Error())
	case errors.As(err, &scaffoldErr):
		output.Failure("Initialization failed due to a filesystem error.")
		output.Detail(err.Error())
		output.Detail(fmt.Sprintf("Already-written files under %s are left in place.", filepath.Clean(initOutputDir)))
	default:
		output.Failure(fmt.Sprintf("An error occurred initializing the new plugin: %v", err))
	}
	return err
}
