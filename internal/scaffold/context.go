package scaffold

import (
	"github.com/zshkit/zpgen/internal/name"
	"github.com/zshkit/zpgen/internal/template"
)

// Context variable keys shared between the context builder and the
// embedded templates.
const (
	varGithubUser        = "github_user"
	varPluginDisplayName = "plugin_display_name"
	varPluginName        = "plugin_name"
	varPluginVar         = "plugin_var"
	varShortDescription  = "short_description"

	optIncludeAliases      = "include_aliases"
	optIncludeBashWrapper  = "include_bash_wrapper"
	optIncludeBinDir       = "include_bin_dir"
	optIncludeFunctionsDir = "include_functions_dir"
	optIncludeGitInit      = "include_git_init"
	optIncludeGithubDir    = "include_github_dir"
	optIncludePluginInit   = "include_plugin_init"
	optIncludeShellCheck   = "include_shell_check"
	optIncludeShellSpec    = "include_shell_spec"
	optUseZplugins         = "use_zplugins"
)

// defaultDescription is substituted when no description was given.
const defaultDescription = "Zsh plugin to do something..."

// BuildContext maps a validated name and resolved options into the flat
// variable set consumed by the template engine. Pure function; the
// include_* booleans correspond 1:1 to the conditional regions in the
// templates, inverted from the no_* options where necessary.
func BuildContext(n name.Name, opts Options) template.Variables {
	description := opts.ShortDescription
	if description == "" {
		description = defaultDescription
	}

	vars := template.NewMapVariables(map[string]interface{}{
		varPluginName:        n.String(),
		varPluginDisplayName: n.Display(),
		varPluginVar:         n.ShellVar(),
		varGithubUser:        opts.GithubUser,
		varShortDescription:  description,

		optIncludeAliases:      !opts.NoAliases,
		optIncludeBashWrapper:  opts.AddBashWrapper,
		optIncludeBinDir:       opts.AddBinDir,
		optIncludeFunctionsDir: !opts.NoFunctionsDir,
		optIncludeGitInit:      !opts.NoGitInit,
		optIncludeGithubDir:    !opts.NoGithubDir,
		optIncludeShellCheck:   !opts.NoShellCheck,
		optIncludeShellSpec:    !opts.NoShellSpec,
		optIncludePluginInit:   !opts.NoFunctionsDir || opts.AddBinDir,
		optUseZplugins:         opts.UseZplugins,
	})

	// The generated scripts index the global associative array as
	// ${VAR[key]}. A literal "${" directly before a substitution marker
	// would be ambiguous to the tag scanner, so templates assemble that
	// spelling from these two fragments instead.
	vars.Set("_shv_start", "${")
	vars.Set("_shv_end", "}")
	return vars
}
