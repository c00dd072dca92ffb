// Package scaffold creates new Zsh plugin directory trees from the
// embedded templates: option resolution, template context construction,
// rendering, file emission, and optional Git repository initialization.
package scaffold

import (
	"context"
	"os"
	"path/filepath"

	"github.com/zshkit/zpgen/internal/name"
	"github.com/zshkit/zpgen/internal/output"
	"github.com/zshkit/zpgen/internal/template"
)

// Relative paths inside the generated plugin root.
const (
	pathBinDir       = "bin"
	pathBinKeep      = ".keep"
	pathFunctionsDir = "functions"
	pathGithubDir    = ".github"
	pathWorkflowsDir = "workflows"
	pathWorkflowFile = "shell.yml"
	pathGitignore    = ".gitignore"
	pathMakefile     = "Makefile"
	pathReadme       = "README.md"
)

// EmitOptions configures one scaffold run.
type EmitOptions struct {
	// Name is the validated plugin name.
	Name name.Name
	// Options are the resolved generation options.
	Options Options
	// ParentDir is the directory the plugin root is created in.
	// Empty means the current working directory.
	ParentDir string
	// Force allows existing directories to be reused and existing
	// files to be overwritten instead of failing.
	Force bool
}

// EmitResult describes what a scaffold run created.
type EmitResult struct {
	// Root is the absolute or parent-relative path of the plugin root.
	Root string
	// Files lists the written files, relative to Root, in emission order.
	Files []string
	// GitInitialized is true when a Git repository was created in Root.
	GitInitialized bool
}

// Emit creates the plugin directory tree. On any filesystem or render
// failure the operation stops where it is; already-written files are
// left in place, there is no partial cleanup. A Git initialization
// failure is reported as a GitInitFailed error together with a non-nil
// result, since the scaffold itself is complete and valid on disk at
// that point.
func Emit(ctx context.Context, opts EmitOptions) (*EmitResult, error) {
	n := opts.Name
	vars := BuildContext(n, opts.Options)
	root := filepath.Join(opts.ParentDir, n.DirName())

	output.Debug("scaffolding plugin", "name", n.String(), "root", root, "force", opts.Force)

	result := &EmitResult{Root: root}
	if err := makeDirectory(root, opts.Force); err != nil {
		return nil, err
	}

	mainTemplate := TemplatePluginSource
	if opts.Options.UseZplugins {
		mainTemplate = TemplatePluginSourceZplugins
	}
	if err := renderToFile(result, root, n.ScriptName(), mainTemplate, vars, opts.Force); err != nil {
		return nil, err
	}

	if opts.Options.AddBashWrapper {
		if err := renderToFile(result, root, n.WrapperName(), TemplateBashWrapper, vars, opts.Force); err != nil {
			return nil, err
		}
	}

	if !opts.Options.NoFunctionsDir {
		if err := makeDirectory(filepath.Join(root, pathFunctionsDir), opts.Force); err != nil {
			return nil, err
		}
		fnFile := filepath.Join(pathFunctionsDir, n.ExampleFunctionName())
		if err := renderToFile(result, root, fnFile, TemplateFunctionExample, vars, opts.Force); err != nil {
			return nil, err
		}
	}

	if opts.Options.AddBinDir {
		if err := makeDirectory(filepath.Join(root, pathBinDir), opts.Force); err != nil {
			return nil, err
		}
		keepFile := filepath.Join(pathBinDir, pathBinKeep)
		if err := renderToFile(result, root, keepFile, TemplateBinKeep, vars, opts.Force); err != nil {
			return nil, err
		}
	}

	if opts.Options.wantsWorkflow() {
		workflows := filepath.Join(root, pathGithubDir, pathWorkflowsDir)
		if err := makeDirectory(filepath.Join(root, pathGithubDir), opts.Force); err != nil {
			return nil, err
		}
		if err := makeDirectory(workflows, opts.Force); err != nil {
			return nil, err
		}
		workflowFile := filepath.Join(pathGithubDir, pathWorkflowsDir, pathWorkflowFile)
		if err := renderToFile(result, root, workflowFile, TemplateWorkflow, vars, opts.Force); err != nil {
			return nil, err
		}
	}

	if opts.Options.wantsCI() {
		if err := renderToFile(result, root, pathGitignore, TemplateGitignore, vars, opts.Force); err != nil {
			return nil, err
		}
		if err := renderToFile(result, root, pathMakefile, TemplateMakefile, vars, opts.Force); err != nil {
			return nil, err
		}
	}

	if err := renderToFile(result, root, pathReadme, TemplateReadme, vars, opts.Force); err != nil {
		return nil, err
	}

	if !opts.Options.NoGitInit {
		if err := initRepository(ctx, root); err != nil {
			// The scaffold is complete; surface the failure without
			// discarding the result.
			return result, err
		}
		result.GitInitialized = true
	}

	return result, nil
}

// makeDirectory creates a directory, failing when the path already
// exists unless it is a directory and force is set.
func makeDirectory(path string, force bool) error {
	info, err := os.Stat(path)
	switch {
	case err == nil && info.IsDir() && force:
		return nil
	case err == nil:
		return newScaffoldError(TargetExists, "target directory already exists", path, nil)
	case !os.IsNotExist(err):
		return newScaffoldError(WriteFailed, "failed to stat target directory", path, err)
	}
	if err := os.MkdirAll(path, 0755); err != nil {
		return newScaffoldError(WriteFailed, "failed to create directory", path, err)
	}
	output.Debug("created directory", "path", path)
	return nil
}

// renderToFile renders a template and writes it below root, recording
// the relative path in result. Existing files fail unless force is set.
func renderToFile(result *EmitResult, root, relPath string, id TemplateID, vars template.Variables, force bool) error {
	target := filepath.Join(root, relPath)
	if info, err := os.Stat(target); err == nil {
		if !info.Mode().IsRegular() || !force {
			return newScaffoldError(TargetExists, "target file already exists", target, nil)
		}
	} else if !os.IsNotExist(err) {
		return newScaffoldError(WriteFailed, "failed to stat target file", target, err)
	}

	content, err := RenderTemplate(id, vars)
	if err != nil {
		return err
	}
	if err := os.WriteFile(target, []byte(content), 0644); err != nil {
		return newScaffoldError(WriteFailed, "failed to write file", target, err)
	}

	output.Debug("wrote file", "path", target, "template", id.String(), "bytes", len(content))
	result.Files = append(result.Files, relPath)
	return nil
}
