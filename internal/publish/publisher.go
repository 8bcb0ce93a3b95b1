// Package publish commits and pushes the generated site with git, the
// way the daily pipeline publishes its GitHub Pages output.
package publish

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
)

// RunFunc executes a command in dir and returns its combined output.
// Swappable in tests.
type RunFunc func(ctx context.Context, dir, name string, args ...string) (string, error)

func execRun(ctx context.Context, dir, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	var out strings.Builder
	cmd.Stdout = &out
	cmd.Stderr = &out
	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(out.String())
		if msg != "" {
			return out.String(), fmt.Errorf("%s %s: %s: %w", name, strings.Join(args, " "), msg, err)
		}
		return out.String(), fmt.Errorf("%s %s: %w", name, strings.Join(args, " "), err)
	}
	return out.String(), nil
}

// Result reports what a publish run did.
type Result struct {
	RunID     string
	Committed bool
}

// Publisher pushes a site directory's current contents as one commit.
type Publisher struct {
	dir    string
	remote string
	branch string
	run    RunFunc
	now    func() time.Time
	log    *zap.Logger
}

// NewPublisher creates a publisher for the site at dir.
func NewPublisher(dir, remote, branch string, log *zap.Logger) *Publisher {
	if log == nil {
		log = zap.NewNop()
	}
	return &Publisher{
		dir:    dir,
		remote: remote,
		branch: branch,
		run:    execRun,
		now:    time.Now,
		log:    log,
	}
}

// Publish stages everything under the site directory, commits, and
// pushes. A working tree with no changes is a successful no-op: the
// charts simply have not changed since the last run.
func (p *Publisher) Publish(ctx context.Context) (Result, error) {
	ctx, span := otel.Tracer("matchdeck/publish").Start(ctx, "publish")
	defer span.End()

	if _, err := os.Stat(filepath.Join(p.dir, ".git")); err != nil {
		return Result{}, fmt.Errorf("%s is not a git repository: %w", p.dir, err)
	}

	runID := uuid.NewString()[:8]
	if _, err := p.run(ctx, p.dir, "git", "add", "-A"); err != nil {
		return Result{}, fmt.Errorf("staging site: %w", err)
	}

	msg := fmt.Sprintf("Daily update %s (%s)", p.now().Format("2006-01-02"), runID)
	out, err := p.run(ctx, p.dir, "git", "commit", "-m", msg)
	if err != nil {
		if strings.Contains(out, "nothing to commit") {
			p.log.Info("nothing to publish", zap.String("dir", p.dir))
			return Result{RunID: runID, Committed: false}, nil
		}
		return Result{}, fmt.Errorf("committing site: %w", err)
	}

	if _, err := p.run(ctx, p.dir, "git", "push", p.remote, p.branch); err != nil {
		return Result{}, fmt.Errorf("pushing to %s/%s: %w", p.remote, p.branch, err)
	}

	p.log.Info("site published",
		zap.String("remote", p.remote),
		zap.String("branch", p.branch),
		zap.String("run_id", runID))
	return Result{RunID: runID, Committed: true}, nil
}
