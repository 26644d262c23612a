// Package vcs infers invocation defaults from version control
// metadata.
package vcs

import (
	"context"
	"os"
	"os/exec"
	"os/user"
	"strings"
	"time"

	"github.com/wellmaintained/lice/internal/logging"
)

// lookupTimeout bounds the git subprocess so a wedged credential or
// config helper cannot hang the whole run.
const lookupTimeout = 2 * time.Second

// GuessOrganization returns the committer name from `git config`,
// falling back to the current OS user when git is missing,
// unconfigured, or slow. The fallback is deliberately lenient: any
// lookup failure at all ends up at the OS user.
func GuessOrganization(ctx context.Context) string {
	logger := logging.GetLogger("vcs")

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, lookupTimeout)
	defer cancel()

	output, err := exec.CommandContext(ctx, "git", "config", "--get", "user.name").Output()
	if err == nil {
		if name := strings.TrimSpace(string(output)); name != "" {
			return name
		}
	} else {
		logger.Debug().Err(err).Msg("git config lookup failed, falling back to OS user")
	}

	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return os.Getenv("USER")
}
