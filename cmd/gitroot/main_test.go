package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gitwrap/internal/resolve"
)

func newRepoFixture(t *testing.T) string {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, ".git"), 0o755); err != nil {
		t.Fatalf("failed to create git dir: %v", err)
	}
	if err := os.MkdirAll(filepath.Join(root, "pkg", "inner"), 0o755); err != nil {
		t.Fatalf("failed to create nested dirs: %v", err)
	}
	return root
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestCLIPrintsRoot(t *testing.T) {
	root := newRepoFixture(t)
	out, _, err := execute(t, filepath.Join(root, "pkg", "inner"))
	if err != nil {
		t.Fatalf("command failed: %v", err)
	}
	if strings.TrimSpace(out) != root {
		t.Fatalf("expected %s, got %q", root, out)
	}
}

func TestCLIMissingPath(t *testing.T) {
	root := newRepoFixture(t)
	missing := filepath.Join(root, "pkg", "nope")
	out, errOut, err := execute(t, missing)
	if !errors.Is(err, resolve.ErrUnresolved) {
		t.Fatalf("expected ErrUnresolved, got %v", err)
	}
	if out != "" {
		t.Fatalf("expected no stdout, got %q", out)
	}
	if !strings.Contains(errOut, missing) {
		t.Fatalf("expected error naming %s, got %q", missing, errOut)
	}
}

func TestCLIJSONOutput(t *testing.T) {
	root := newRepoFixture(t)
	out, _, err := execute(t, "--json", root, filepath.Join(root, "pkg"))
	if err != nil {
		t.Fatalf("command failed: %v", err)
	}

	var payload resolve.RunResult
	if err := json.Unmarshal([]byte(out), &payload); err != nil {
		t.Fatalf("invalid json output: %v", err)
	}
	if payload.RunID == "" {
		t.Fatalf("expected run_id")
	}
	if len(payload.Lookups) != 2 {
		t.Fatalf("expected 2 lookups, got %d", len(payload.Lookups))
	}
	for _, lookup := range payload.Lookups {
		if lookup.Workdir != root {
			t.Fatalf("expected workdir %s, got %s", root, lookup.Workdir)
		}
	}
}

func TestCLIAbsolute(t *testing.T) {
	root, err := filepath.EvalSymlinks(newRepoFixture(t))
	if err != nil {
		t.Fatalf("failed to resolve temp dir: %v", err)
	}
	testChdir(t, root)

	out, _, err := execute(t)
	if err != nil {
		t.Fatalf("command failed: %v", err)
	}
	if strings.TrimSpace(out) != "." {
		t.Fatalf("expected . without --absolute, got %q", out)
	}

	out, _, err = execute(t, "--absolute")
	if err != nil {
		t.Fatalf("command failed: %v", err)
	}
	if strings.TrimSpace(out) != root {
		t.Fatalf("expected %s with --absolute, got %q", root, out)
	}
}

func TestCLIQuiet(t *testing.T) {
	root := newRepoFixture(t)
	_, errOut, err := execute(t, "--quiet", filepath.Join(root, "missing"))
	if !errors.Is(err, resolve.ErrUnresolved) {
		t.Fatalf("expected ErrUnresolved, got %v", err)
	}
	if errOut != "" {
		t.Fatalf("expected no stderr in quiet mode, got %q", errOut)
	}
}
