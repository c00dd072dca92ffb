package cli

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zshkit/zpgen/internal/name"
	"github.com/zshkit/zpgen/internal/scaffold"
)

// resetFlags restores every flag to its default between runs. Cobra
// commands are package-level singletons, so flag values and Changed
// state would otherwise leak from one test to the next.
func resetFlags(t *testing.T) {
	t.Helper()
	sets := []*pflag.FlagSet{
		rootCmd.PersistentFlags(),
		initCmd.Flags(),
		versionCmd.Flags(),
	}
	for _, fs := range sets {
		fs.VisitAll(func(f *pflag.Flag) {
			require.NoError(t, f.Value.Set(f.DefValue))
			f.Changed = false
		})
	}
}

// runCommand executes the CLI against an isolated parent directory and
// an absent defaults file, so no user configuration leaks in. Git
// initialization is disabled; it has its own test in internal/scaffold.
func runCommand(t *testing.T, parent string, args ...string) error {
	t.Helper()
	t.Setenv("USER", "tester")
	resetFlags(t)
	full := append([]string{}, args...)
	full = append(full,
		"--output", parent,
		"--config", filepath.Join(parent, "no-such-config.toml"),
		"--no-git-init",
		"--quiet",
	)
	rootCmd.SetArgs(full)
	return rootCmd.Execute()
}

func assertExists(t *testing.T, path string) {
	t.Helper()
	_, err := os.Stat(path)
	assert.NoError(t, err, path)
}

func assertAbsent(t *testing.T, path string) {
	t.Helper()
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err), "expected %s to be absent", path)
}

func TestInitCreatesCompleteScaffold(t *testing.T) {
	parent := t.TempDir()
	require.NoError(t, runCommand(t, parent, "init", "containers"))

	root := filepath.Join(parent, "zsh-containers-plugin")
	assertExists(t, filepath.Join(root, "containers.plugin.zsh"))
	assertExists(t, filepath.Join(root, "containers.bash"))
	assertExists(t, filepath.Join(root, "functions", "containers_example"))
	assertExists(t, filepath.Join(root, "bin", ".keep"))
	assertExists(t, filepath.Join(root, ".github", "workflows", "shell.yml"))
	assertExists(t, filepath.Join(root, ".gitignore"))
	assertExists(t, filepath.Join(root, "Makefile"))
	assertExists(t, filepath.Join(root, "README.md"))
	assertAbsent(t, filepath.Join(root, ".git"))
}

func TestInitMinimalPreset(t *testing.T) {
	parent := t.TempDir()
	require.NoError(t, runCommand(t, parent, "init", "x", "--template", "minimal"))

	root := filepath.Join(parent, "zsh-x-plugin")
	assertExists(t, filepath.Join(root, "x.plugin.zsh"))
	assertExists(t, filepath.Join(root, "README.md"))
	assertAbsent(t, filepath.Join(root, "functions"))
	assertAbsent(t, filepath.Join(root, "Makefile"))
	assertAbsent(t, filepath.Join(root, ".github"))
}

func TestInitFlagOverridesPreset(t *testing.T) {
	parent := t.TempDir()
	require.NoError(t, runCommand(t, parent, "init", "x", "-t", "minimal", "--add-bin-dir"))

	root := filepath.Join(parent, "zsh-x-plugin")
	assertExists(t, filepath.Join(root, "bin", ".keep"))
	assertAbsent(t, filepath.Join(root, "functions"))
}

func TestInitInvalidName(t *testing.T) {
	parent := t.TempDir()
	err := runCommand(t, parent, "init", "1badname")
	require.Error(t, err)
	var nameErr *name.Error
	assert.ErrorAs(t, err, &nameErr)

	entries, readErr := os.ReadDir(parent)
	require.NoError(t, readErr)
	assert.Empty(t, entries, "nothing may be created for an invalid name")
}

func TestInitUnknownTemplate(t *testing.T) {
	err := runCommand(t, t.TempDir(), "init", "x", "--template", "bogus")
	assert.Error(t, err)
}

func TestInitExistingTarget(t *testing.T) {
	parent := t.TempDir()
	require.NoError(t, runCommand(t, parent, "init", "dup"))

	err := runCommand(t, parent, "init", "dup")
	require.Error(t, err)
	assert.True(t, scaffold.IsTargetExists(err))

	require.NoError(t, runCommand(t, parent, "init", "dup", "--force"))
}

func TestInitUsesConfigDefaults(t *testing.T) {
	parent := t.TempDir()
	cfgPath := filepath.Join(parent, "config.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`
[defaults]
github_user = "cfguser"
template = "minimal"
`), 0644))

	resetFlags(t)
	rootCmd.SetArgs([]string{
		"init", "x",
		"--output", parent,
		"--config", cfgPath,
		"--no-git-init",
		"--quiet",
	})
	require.NoError(t, rootCmd.Execute())

	root := filepath.Join(parent, "zsh-x-plugin")
	assertAbsent(t, filepath.Join(root, "functions"))

	readme, err := os.ReadFile(filepath.Join(root, "README.md"))
	require.NoError(t, err)
	assert.Contains(t, string(readme), "cfguser/zsh-x-plugin")
}

// captureStdout collects everything fn prints to stdout.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w
	defer func() { os.Stdout = old }()

	fn()

	require.NoError(t, w.Close())
	data, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(data)
}

func TestInitQuietFromConfig(t *testing.T) {
	parent := t.TempDir()
	cfgPath := filepath.Join(parent, "config.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`
[output]
quiet = true
`), 0644))

	t.Setenv("USER", "tester")
	run := func(extra ...string) string {
		resetFlags(t)
		args := append([]string{
			"init", "x",
			"--output", parent,
			"--config", cfgPath,
			"--no-git-init",
			"--force",
		}, extra...)
		rootCmd.SetArgs(args)
		return captureStdout(t, func() {
			require.NoError(t, rootCmd.Execute())
		})
	}

	assert.Empty(t, run(), "quiet from the defaults file suppresses output")
	assert.Contains(t, run("--quiet=false"), "Created plugin",
		"an explicit flag wins over the defaults file")
}

func TestInitMissingGithubUser(t *testing.T) {
	t.Setenv("USER", "")
	parent := t.TempDir()

	resetFlags(t)
	rootCmd.SetArgs([]string{
		"init", "x",
		"--output", parent,
		"--config", filepath.Join(parent, "no-such-config.toml"),
		"--no-git-init",
		"--quiet",
	})
	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "github user")

	// Passing the flag explicitly satisfies the requirement.
	resetFlags(t)
	rootCmd.SetArgs([]string{
		"init", "x",
		"--output", parent,
		"--config", filepath.Join(parent, "no-such-config.toml"),
		"--no-git-init",
		"--quiet",
		"--github-user", "someone",
	})
	require.NoError(t, rootCmd.Execute())

	readme, err := os.ReadFile(filepath.Join(parent, "zsh-x-plugin", "README.md"))
	require.NoError(t, err)
	assert.Contains(t, string(readme), "someone/zsh-x-plugin")
}

func TestInitRequiresName(t *testing.T) {
	err := runCommand(t, t.TempDir(), "init")
	assert.Error(t, err)
}

func TestVersionCommand(t *testing.T) {
	resetFlags(t)
	rootCmd.SetArgs([]string{"version", "--short"})
	assert.NoError(t, rootCmd.Execute())
}
