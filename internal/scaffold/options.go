package scaffold

import "fmt"

// Preset names a bundle of default option values applied before
// explicit per-flag overrides.
type Preset int

const (
	// PresetNone means no preset was selected; defaults equal the
	// complete preset so the tool is useful out-of-the-box.
	PresetNone Preset = iota
	// PresetMinimal generates only the main plugin script and README:
	// no bin or functions directories, no Git repository, no GitHub
	// workflows, and no alias, shellcheck or shellspec support.
	PresetMinimal
	// PresetSimple generates an in-line function plugin with alias,
	// shellcheck and shellspec support but no bin or functions
	// directories and no GitHub workflows.
	PresetSimple
	// PresetComplete generates a plugin with every optional component.
	PresetComplete
)

// ParsePreset converts a preset name from the command line.
func ParsePreset(s string) (Preset, error) {
	switch s {
	case "minimal":
		return PresetMinimal, nil
	case "simple":
		return PresetSimple, nil
	case "complete":
		return PresetComplete, nil
	default:
		return PresetNone, fmt.Errorf("unknown template %q (must be minimal, simple, or complete)", s)
	}
}

// String returns the preset's command-line name.
func (p Preset) String() string {
	switch p {
	case PresetMinimal:
		return "minimal"
	case PresetSimple:
		return "simple"
	case PresetComplete:
		return "complete"
	default:
		return "none"
	}
}

// Options holds the resolved generation options for one run. Once
// resolved the value is never mutated.
type Options struct {
	// AddBinDir emits an empty bin/ directory with a placeholder file.
	AddBinDir bool
	// AddBashWrapper emits a Bash-compatible loader script.
	AddBashWrapper bool
	// NoAliases suppresses alias-tracking support in the plugin script.
	NoAliases bool
	// NoFunctionsDir suppresses the functions/ autoload directory; an
	// in-line example function is emitted in the main script instead.
	NoFunctionsDir bool
	// NoGitInit skips Git repository initialization.
	NoGitInit bool
	// NoGithubDir skips the .github/workflows directory.
	NoGithubDir bool
	// NoShellCheck removes shellcheck steps from the workflow and Makefile.
	NoShellCheck bool
	// NoShellSpec removes shellspec steps from the workflow and Makefile.
	NoShellSpec bool
	// UseZplugins delegates tracking and registration in the generated
	// script to the zplugins support library.
	UseZplugins bool

	// ShortDescription is free-form text substituted into the plugin
	// script and README.
	ShortDescription string
	// GithubUser is the GitHub account name used in the README.
	GithubUser string
}

// Overrides holds explicitly-set flag values. A nil field means the
// flag was not given and the preset default applies.
type Overrides struct {
	AddBinDir      *bool
	AddBashWrapper *bool
	NoAliases      *bool
	NoFunctionsDir *bool
	NoGitInit      *bool
	NoGithubDir    *bool
	NoShellCheck   *bool
	NoShellSpec    *bool
	UseZplugins    *bool

	ShortDescription *string
	GithubUser       *string
}

// presetDefaults returns the option values for a preset. PresetNone
// deliberately shares the complete column.
func presetDefaults(p Preset) Options {
	switch p {
	case PresetMinimal:
		return Options{
			NoAliases:      true,
			NoFunctionsDir: true,
			NoGitInit:      true,
			NoGithubDir:    true,
			NoShellCheck:   true,
			NoShellSpec:    true,
		}
	case PresetSimple:
		return Options{
			NoFunctionsDir: true,
			NoGithubDir:    true,
		}
	default:
		return Options{
			AddBinDir:      true,
			AddBashWrapper: true,
		}
	}
}

// Resolve merges preset defaults with explicit overrides. An explicitly
// set flag always wins over the preset value. The result is a pure
// merge with no failure modes.
func Resolve(preset Preset, ov Overrides) Options {
	opts := presetDefaults(preset)

	setBool := func(dst *bool, src *bool) {
		if src != nil {
			*dst = *src
		}
	}
	setBool(&opts.AddBinDir, ov.AddBinDir)
	setBool(&opts.AddBashWrapper, ov.AddBashWrapper)
	setBool(&opts.NoAliases, ov.NoAliases)
	setBool(&opts.NoFunctionsDir, ov.NoFunctionsDir)
	setBool(&opts.NoGitInit, ov.NoGitInit)
	setBool(&opts.NoGithubDir, ov.NoGithubDir)
	setBool(&opts.NoShellCheck, ov.NoShellCheck)
	setBool(&opts.NoShellSpec, ov.NoShellSpec)
	setBool(&opts.UseZplugins, ov.UseZplugins)

	if ov.ShortDescription != nil {
		opts.ShortDescription = *ov.ShortDescription
	}
	if ov.GithubUser != nil {
		opts.GithubUser = *ov.GithubUser
	}
	return opts
}

// wantsCI reports whether any CI tooling remains enabled. When both
// shellcheck and shellspec are disabled the workflow file, Makefile and
// .gitignore would all be no-ops and are skipped.
func (o Options) wantsCI() bool {
	return !o.NoShellCheck || !o.NoShellSpec
}

// wantsWorkflow reports whether .github/workflows/shell.yml is emitted.
func (o Options) wantsWorkflow() bool {
	return !o.NoGithubDir && o.wantsCI()
}
