package scaffold

import (
	"embed"
	"fmt"

	"github.com/zshkit/zpgen/internal/template"
)

//go:embed templates/*
var templatesFS embed.FS

// TemplateID addresses one of the embedded templates. The set is closed
// and fixed at build time; templates are never discovered from the
// filesystem at run time.
type TemplateID int

const (
	// TemplatePluginSource is the main <name>.plugin.zsh script.
	TemplatePluginSource TemplateID = iota
	// TemplatePluginSourceZplugins is the zplugins-based variant of the
	// main script.
	TemplatePluginSourceZplugins
	// TemplateBashWrapper is the <name>.bash loader script.
	TemplateBashWrapper
	// TemplateFunctionExample is the example autoload function file.
	TemplateFunctionExample
	// TemplateWorkflow is the .github/workflows/shell.yml file.
	TemplateWorkflow
	// TemplateMakefile is the Makefile.
	TemplateMakefile
	// TemplateGitignore is the .gitignore file.
	TemplateGitignore
	// TemplateReadme is the README.md skeleton.
	TemplateReadme
	// TemplateBinKeep is the placeholder that keeps bin/ trackable.
	TemplateBinKeep
)

// templateFiles maps each TemplateID to its embedded file.
var templateFiles = map[TemplateID]string{
	TemplatePluginSource:         "templates/name.plugin.zsh",
	TemplatePluginSourceZplugins: "templates/name.zplugins.zsh",
	TemplateBashWrapper:          "templates/name.bash",
	TemplateFunctionExample:      "templates/name_example",
	TemplateWorkflow:             "templates/shell.yml",
	TemplateMakefile:             "templates/Makefile",
	TemplateGitignore:            "templates/gitignore",
	TemplateReadme:               "templates/README.md",
	TemplateBinKeep:              "templates/keep",
}

// String returns the embedded file name for error messages.
func (id TemplateID) String() string {
	if path, ok := templateFiles[id]; ok {
		return path
	}
	return fmt.Sprintf("template(%d)", int(id))
}

// TemplateIDs returns all defined template IDs.
func TemplateIDs() []TemplateID {
	ids := make([]TemplateID, 0, len(templateFiles))
	for id := range templateFiles {
		ids = append(ids, id)
	}
	return ids
}

// templateSource returns the raw text of an embedded template.
func templateSource(id TemplateID) (string, error) {
	path, ok := templateFiles[id]
	if !ok {
		return "", newScaffoldError(RenderFailed,
			fmt.Sprintf("unknown template id %d", int(id)), "", nil)
	}
	data, err := templatesFS.ReadFile(path)
	if err != nil {
		return "", newScaffoldError(RenderFailed,
			"failed to read embedded template", path, err)
	}
	return string(data), nil
}

// RenderTemplate renders an embedded template against vars. A render
// failure here means template/context drift, a programming defect
// rather than a user-facing runtime condition.
func RenderTemplate(id TemplateID, vars template.Variables) (string, error) {
	source, err := templateSource(id)
	if err != nil {
		return "", err
	}
	content, err := template.Render(source, vars)
	if err != nil {
		return "", newScaffoldError(RenderFailed,
			"failed to render template", id.String(), err)
	}
	return content, nil
}
