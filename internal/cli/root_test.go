package cli

import (
	"bytes"
	"context"
	"sort"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/surfplot/surfplot/pkg/observability"
)

// newTestCLI returns a CLI writing command output to out and debug logs
// to logs, and resets the global hooks after the test.
func newTestCLI(t *testing.T) (c *CLI, out, logs *bytes.Buffer) {
	t.Helper()
	t.Cleanup(observability.Reset)
	out, logs = &bytes.Buffer{}, &bytes.Buffer{}
	c = New(logs, log.DebugLevel)
	c.SetOutput(out)
	return c, out, logs
}

// execute runs the root command with args.
func execute(t *testing.T, c *CLI, args ...string) error {
	t.Helper()
	root := c.RootCommand()
	root.SetArgs(args)
	root.SetErr(&bytes.Buffer{})
	return root.ExecuteContext(context.Background())
}

func TestRootCommandTree(t *testing.T) {
	c, _, _ := newTestCLI(t)
	root := c.RootCommand()

	var names []string
	for _, cmd := range root.Commands() {
		names = append(names, cmd.Name())
	}
	sort.Strings(names)

	want := []string{"cache", "completion", "example", "layout", "medial-wall", "render"}
	if strings.Join(names, ",") != strings.Join(want, ",") {
		t.Errorf("commands = %v, want %v", names, want)
	}
}

func TestRootInstallsHooks(t *testing.T) {
	c, _, _ := newTestCLI(t)
	if err := execute(t, c, "layout"); err != nil {
		t.Fatalf("layout: %v", err)
	}
	if _, ok := observability.Build().(logHooks); !ok {
		t.Errorf("build hooks = %T, want logHooks", observability.Build())
	}
	if _, ok := observability.Cache().(logHooks); !ok {
		t.Errorf("cache hooks = %T, want logHooks", observability.Cache())
	}
}

func TestVersionFlag(t *testing.T) {
	c, out, _ := newTestCLI(t)
	if err := execute(t, c, "--version"); err != nil {
		t.Fatalf("--version: %v", err)
	}
	if !strings.Contains(out.String(), "surfplot") {
		t.Errorf("version output = %q", out.String())
	}
}

func TestCompletionCommand(t *testing.T) {
	c, out, _ := newTestCLI(t)
	if err := execute(t, c, "completion", "bash"); err != nil {
		t.Fatalf("completion: %v", err)
	}
	if !strings.Contains(out.String(), "surfplot") {
		t.Error("bash completion should mention surfplot")
	}
	if err := execute(t, c, "completion", "tcsh"); err == nil {
		t.Error("completion tcsh: want error")
	}
}
