package scaffold

import (
	"context"
	"os/exec"
	"strings"

	"github.com/zshkit/zpgen/internal/output"
)

// initRepository initializes a Git repository in dir by shelling out to
// the git binary. There is no error recovery beyond reporting failure;
// the caller treats this as non-fatal since the scaffold on disk is
// already complete.
func initRepository(ctx context.Context, dir string) error {
	gitPath, err := exec.LookPath("git")
	if err != nil {
		return newScaffoldError(GitInitFailed,
			"git executable not found on PATH", dir, err)
	}

	output.Debug("initializing git repository", "dir", dir, "git", gitPath)
	cmd := exec.CommandContext(ctx, gitPath, "init", "--quiet")
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	if err != nil {
		message := "git init failed"
		if trimmed := strings.TrimSpace(string(out)); trimmed != "" {
			message = "git init failed: " + trimmed
		}
		return newScaffoldError(GitInitFailed, message, dir, err)
	}
	return nil
}
