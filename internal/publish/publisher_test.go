package publish

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

type call struct {
	name string
	args []string
}

// recordingRunner fakes git, capturing the command sequence. Per-verb
// results let tests simulate "nothing to commit" and hard failures.
type recordingRunner struct {
	calls []call
	fail  map[string]error  // keyed by git subcommand
	out   map[string]string // output for a subcommand, success or not
}

func (r *recordingRunner) run(_ context.Context, _, name string, args ...string) (string, error) {
	r.calls = append(r.calls, call{name: name, args: args})
	verb := ""
	if len(args) > 0 {
		verb = args[0]
	}
	return r.out[verb], r.fail[verb]
}

func (r *recordingRunner) verbs() []string {
	var vs []string
	for _, c := range r.calls {
		if len(c.args) > 0 {
			vs = append(vs, c.args[0])
		}
	}
	return vs
}

func newTestPublisher(t *testing.T, r *recordingRunner) *Publisher {
	t.Helper()
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, ".git"), 0o755); err != nil {
		t.Fatal(err)
	}
	p := NewPublisher(dir, "origin", "main", nil)
	p.run = r.run
	p.now = func() time.Time { return time.Date(2026, 4, 12, 9, 0, 0, 0, time.UTC) }
	return p
}

func TestPublish_AddCommitPush(t *testing.T) {
	r := &recordingRunner{}
	p := newTestPublisher(t, r)

	res, err := p.Publish(context.Background())
	if err != nil {
		t.Fatalf("Publish: %v", err)
	}
	if !res.Committed {
		t.Error("expected Committed=true")
	}
	if got, want := r.verbs(), []string{"add", "commit", "push"}; strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("git verbs = %v, want %v", got, want)
	}

	// Commit message carries the date and run id.
	commit := r.calls[1]
	msg := commit.args[len(commit.args)-1]
	if !strings.HasPrefix(msg, "Daily update 2026-04-12 (") {
		t.Errorf("commit message = %q", msg)
	}
	if res.RunID == "" || !strings.Contains(msg, res.RunID) {
		t.Errorf("commit message %q does not carry run id %q", msg, res.RunID)
	}

	push := r.calls[2]
	if strings.Join(push.args, " ") != "push origin main" {
		t.Errorf("push args = %v", push.args)
	}
}

func TestPublish_NothingToCommitIsSuccess(t *testing.T) {
	r := &recordingRunner{
		fail: map[string]error{"commit": errors.New("exit status 1")},
		out:  map[string]string{"commit": "On branch main\nnothing to commit, working tree clean\n"},
	}
	p := newTestPublisher(t, r)

	res, err := p.Publish(context.Background())
	if err != nil {
		t.Fatalf("Publish: %v", err)
	}
	if res.Committed {
		t.Error("expected Committed=false")
	}
	for _, v := range r.verbs() {
		if v == "push" {
			t.Error("should not push when there was nothing to commit")
		}
	}
}

func TestPublish_PushFailureSurfaces(t *testing.T) {
	r := &recordingRunner{
		fail: map[string]error{"push": errors.New("exit status 128")},
	}
	p := newTestPublisher(t, r)

	if _, err := p.Publish(context.Background()); err == nil {
		t.Fatal("expected error from failed push")
	} else if !strings.Contains(err.Error(), "origin/main") {
		t.Errorf("error %q should name the remote and branch", err)
	}
}

func TestPublish_RequiresGitRepository(t *testing.T) {
	p := NewPublisher(t.TempDir(), "origin", "main", nil)
	r := &recordingRunner{}
	p.run = r.run

	if _, err := p.Publish(context.Background()); err == nil {
		t.Fatal("expected error for non-repository directory")
	}
	if len(r.calls) != 0 {
		t.Errorf("no git commands should run, got %v", r.calls)
	}
}
