package scaffold

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func listEntries(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names
}

func readGenerated(t *testing.T, root, relPath string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(root, relPath))
	require.NoError(t, err)
	return string(data)
}

// emitWithoutGit runs Emit with git init disabled so tests do not depend
// on a git binary being installed.
func emitWithoutGit(t *testing.T, raw string, preset Preset, overrides Overrides) *EmitResult {
	t.Helper()
	overrides.NoGitInit = boolPtr(true)
	result, err := Emit(context.Background(), EmitOptions{
		Name:      mustParse(t, raw),
		Options:   Resolve(preset, overrides),
		ParentDir: t.TempDir(),
	})
	require.NoError(t, err)
	require.NotNil(t, result)
	return result
}

func TestEmitCompleteTree(t *testing.T) {
	result := emitWithoutGit(t, "containers", PresetComplete, Overrides{})

	assert.Equal(t, "zsh-containers-plugin", filepath.Base(result.Root))
	assert.Equal(t, []string{
		".github",
		".gitignore",
		"Makefile",
		"README.md",
		"bin",
		"containers.bash",
		"containers.plugin.zsh",
		"functions",
	}, listEntries(t, result.Root))

	assert.Equal(t, []string{"containers_example"},
		listEntries(t, filepath.Join(result.Root, "functions")))
	assert.Equal(t, []string{".keep"},
		listEntries(t, filepath.Join(result.Root, "bin")))
	assert.Equal(t, []string{"shell.yml"},
		listEntries(t, filepath.Join(result.Root, ".github", "workflows")))

	assert.Equal(t, []string{
		"containers.plugin.zsh",
		"containers.bash",
		filepath.Join("functions", "containers_example"),
		filepath.Join("bin", ".keep"),
		filepath.Join(".github", "workflows", "shell.yml"),
		".gitignore",
		"Makefile",
		"README.md",
	}, result.Files)
	assert.False(t, result.GitInitialized)
}

func TestEmitMinimalTree(t *testing.T) {
	result := emitWithoutGit(t, "x", PresetMinimal, Overrides{})

	assert.Equal(t, "zsh-x-plugin", filepath.Base(result.Root))
	assert.Equal(t, []string{"README.md", "x.plugin.zsh"}, listEntries(t, result.Root))
	assert.Equal(t, []string{"x.plugin.zsh", "README.md"}, result.Files)
}

// .gitignore and Makefile serve the lint targets; they appear whenever
// at least one of shellcheck or shellspec is enabled, even when the
// .github directory is suppressed.
func TestEmitCISupportFiles(t *testing.T) {
	result := emitWithoutGit(t, "x", PresetMinimal, Overrides{NoShellCheck: boolPtr(false)})
	entries := listEntries(t, result.Root)
	assert.Contains(t, entries, ".gitignore")
	assert.Contains(t, entries, "Makefile")
	assert.NotContains(t, entries, ".github")
}

func TestEmitExistingTargetFails(t *testing.T) {
	parent := t.TempDir()
	opts := EmitOptions{
		Name:      mustParse(t, "dup"),
		Options:   Resolve(PresetMinimal, Overrides{}),
		ParentDir: parent,
	}

	first, err := Emit(context.Background(), opts)
	require.NoError(t, err)
	before := listEntries(t, first.Root)

	_, err = Emit(context.Background(), opts)
	require.Error(t, err)
	assert.True(t, IsTargetExists(err))

	// The existing scaffold is untouched by the failed rerun.
	assert.Equal(t, before, listEntries(t, first.Root))
}

func TestEmitForceOverwrites(t *testing.T) {
	parent := t.TempDir()
	opts := EmitOptions{
		Name:      mustParse(t, "dup"),
		Options:   Resolve(PresetMinimal, Overrides{}),
		ParentDir: parent,
	}

	_, err := Emit(context.Background(), opts)
	require.NoError(t, err)

	marker := filepath.Join(parent, "zsh-dup-plugin", "README.md")
	require.NoError(t, os.WriteFile(marker, []byte("stale"), 0644))

	opts.Force = true
	result, err := Emit(context.Background(), opts)
	require.NoError(t, err)
	assert.NotEqual(t, "stale", readGenerated(t, result.Root, "README.md"))
}

func TestEmitGeneratedPluginSource(t *testing.T) {
	result := emitWithoutGit(t, "containers", PresetComplete, Overrides{})
	script := readGenerated(t, result.Root, "containers.plugin.zsh")

	assert.Contains(t, script, "typeset -gA CONTAINERS")
	assert.Contains(t, script, "_containers_remember_fn")
	assert.Contains(t, script, "_containers_define_alias")
	assert.Contains(t, script, "containers_plugin_init")
	assert.Contains(t, script, "containers_plugin_unload")
	assert.Contains(t, script, `${CONTAINERS[_PLUGIN_DIR]}`)
}

func TestEmitMinimalPluginSource(t *testing.T) {
	result := emitWithoutGit(t, "x", PresetMinimal, Overrides{})
	script := readGenerated(t, result.Root, "x.plugin.zsh")

	assert.Contains(t, script, "x_example", "inline example replaces the functions dir")
	assert.NotContains(t, script, "_define_alias")
	assert.NotContains(t, script, "x_plugin_init")
	assert.Contains(t, script, "x_plugin_unload")
}

func TestEmitZpluginsVariant(t *testing.T) {
	result := emitWithoutGit(t, "zp", PresetComplete, Overrides{UseZplugins: boolPtr(true)})
	script := readGenerated(t, result.Root, "zp.plugin.zsh")

	assert.Contains(t, script, "@zplugin_register")
	assert.NotContains(t, script, "typeset -gA")
}

func TestEmitWorkflowReflectsCITools(t *testing.T) {
	result := emitWithoutGit(t, "ci", PresetComplete, Overrides{NoShellSpec: boolPtr(true)})
	workflow := readGenerated(t, result.Root,
		filepath.Join(".github", "workflows", "shell.yml"))

	assert.Contains(t, workflow, "shellcheck")
	assert.NotContains(t, workflow, "shellspec")
}

func TestEmitReadme(t *testing.T) {
	user := "octocat"
	desc := "Manage containers from the shell"
	result := emitWithoutGit(t, "containers", PresetComplete, Overrides{
		GithubUser:       &user,
		ShortDescription: &desc,
	})
	readme := readGenerated(t, result.Root, "README.md")

	assert.Contains(t, readme, "# Containers")
	assert.Contains(t, readme, desc)
	assert.Contains(t, readme, "octocat/zsh-containers-plugin")
}

func TestEmitGitInit(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}

	result, err := Emit(context.Background(), EmitOptions{
		Name:      mustParse(t, "repo"),
		Options:   Resolve(PresetComplete, Overrides{}),
		ParentDir: t.TempDir(),
	})
	require.NoError(t, err)
	assert.True(t, result.GitInitialized)

	info, err := os.Stat(filepath.Join(result.Root, ".git"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
