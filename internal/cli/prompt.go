package cli

import (
	"github.com/AlecAivazis/survey/v2"
	"github.com/zshkit/zpgen/internal/scaffold"
)

// promptPreset interactively asks which preset to base options on.
func promptPreset() (scaffold.Preset, error) {
	var choice string
	prompt := &survey.Select{
		Message: "Plugin template:",
		Options: []string{"complete", "simple", "minimal"},
		Default: "complete",
		Help:    "Preset providing the option defaults; individual flags still override it",
	}
	if err := survey.AskOne(prompt, &choice); err != nil {
		return scaffold.PresetNone, err
	}
	return scaffold.ParsePreset(choice)
}

// promptDescription interactively asks for the plugin description.
func promptDescription(defaultValue string) (string, error) {
	var result string
	prompt := &survey.Input{
		Message: "Short description:",
		Default: defaultValue,
		Help:    "Added to the plugin source and README.md",
	}
	if err := survey.AskOne(prompt, &result); err != nil {
		return "", err
	}
	return result, nil
}

// promptGithubUser interactively asks for the GitHub user name.
func promptGithubUser(defaultValue string) (string, error) {
	var result string
	prompt := &survey.Input{
		Message: "GitHub user:",
		Default: defaultValue,
		Help:    "Used in the repository URL in README.md",
	}
	if err := survey.AskOne(prompt, &result); err != nil {
		return "", err
	}
	return result, nil
}
