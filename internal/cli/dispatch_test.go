package cli_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"vibelist/internal/cli"
	"vibelist/internal/commands"
	"vibelist/internal/config"
	"vibelist/internal/exitcode"
	"vibelist/internal/service"
	"vibelist/internal/store"
	"vibelist/internal/tasklist"
	"vibelist/internal/testutil"
)

// testFactory creates a service factory backed by the given FakeBackend.
// Each call restores a fresh task list, as a new process would.
func testFactory(backend *testutil.FakeBackend) cli.ServiceFactory {
	return func(ctx context.Context, cfg *config.Config, logger *log.Logger) (service.Service, io.Closer, error) {
		st, err := store.New(backend, cfg.StorageKey, logger)
		if err != nil {
			return nil, nil, err
		}
		return tasklist.New(st, tasklist.WithLogger(logger)), nil, nil
	}
}

func run(t *testing.T, d *cli.Dispatcher, args ...string) (stdout, stderr string, code int) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = d.Run(context.Background(), args, &out, &errOut)
	return out.String(), errOut.String(), code
}

func isolate(t *testing.T) string {
	t.Helper()
	for _, k := range []string{"VIBELIST_CONFIG_DIR", "VIBELIST_DATA_DIR", "VIBELIST_BACKEND", "VIBELIST_STORAGE_KEY", "VIBELIST_DEBUG"} {
		t.Setenv(k, "")
	}
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	return dir
}

func TestDispatcher_UnknownCommand(t *testing.T) {
	isolate(t)
	d := cli.NewDispatcher(commands.DefaultRegistry, testFactory(testutil.NewFakeBackend()))

	_, stderr, code := run(t, d, "unknowncmd")

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	expected := "error: unknown command: unknowncmd\n"
	if stderr != expected {
		t.Errorf("expected %q, got %q", expected, stderr)
	}
}

func TestDispatcher_FlagBeforeCommand(t *testing.T) {
	isolate(t)
	d := cli.NewDispatcher(commands.DefaultRegistry, testFactory(testutil.NewFakeBackend()))

	_, stderr, code := run(t, d, "--quiet")

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	expected := "error: unknown command: --quiet\n"
	if stderr != expected {
		t.Errorf("expected %q, got %q", expected, stderr)
	}
}

func TestDispatcher_UnknownFlag(t *testing.T) {
	isolate(t)
	d := cli.NewDispatcher(commands.DefaultRegistry, testFactory(testutil.NewFakeBackend()))

	_, stderr, code := run(t, d, "help", "--unknown")

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	expected := "error: unknown flag: -unknown\n"
	if stderr != expected {
		t.Errorf("expected %q, got %q", expected, stderr)
	}
}

func TestDispatcher_FlagMissingValue(t *testing.T) {
	isolate(t)
	d := cli.NewDispatcher(commands.DefaultRegistry, testFactory(testutil.NewFakeBackend()))

	_, stderr, code := run(t, d, "list", "--backend")

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	expected := "error: flag needs an argument: -backend\n"
	if stderr != expected {
		t.Errorf("expected %q, got %q", expected, stderr)
	}
}

func TestDispatcher_UnknownBackend(t *testing.T) {
	isolate(t)
	d := cli.NewDispatcher(commands.DefaultRegistry, testFactory(testutil.NewFakeBackend()))

	_, stderr, code := run(t, d, "list", "--backend", "cloud")

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stderr != "error: unknown backend: cloud\n" {
		t.Errorf("unexpected stderr: %q", stderr)
	}
}

func TestDispatcher_VersionCommand(t *testing.T) {
	isolate(t)
	d := cli.NewDispatcher(commands.DefaultRegistry, nil)

	stdout, stderr, code := run(t, d, "version")

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if stdout != "vibelist 0.1.0\n" {
		t.Errorf("expected 'vibelist 0.1.0\\n', got %q", stdout)
	}
}

func TestDispatcher_NoArgsLists(t *testing.T) {
	isolate(t)
	d := cli.NewDispatcher(commands.DefaultRegistry, testFactory(testutil.NewFakeBackend()))

	stdout, stderr, code := run(t, d)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if stdout != "no tasks yet\n" {
		t.Errorf("expected empty state, got %q", stdout)
	}
}

func TestDispatcher_FactoryError(t *testing.T) {
	isolate(t)
	factory := func(ctx context.Context, cfg *config.Config, logger *log.Logger) (service.Service, io.Closer, error) {
		return nil, nil, errors.New("disk on fire")
	}
	d := cli.NewDispatcher(commands.DefaultRegistry, factory)

	_, stderr, code := run(t, d, "list")

	if code != exitcode.StorageError {
		t.Errorf("expected exit code %d, got %d", exitcode.StorageError, code)
	}
	if stderr != "error: storage error: disk on fire\n" {
		t.Errorf("unexpected stderr: %q", stderr)
	}
}

func TestDispatcher_MalformedConfig(t *testing.T) {
	dir := isolate(t)
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("backend: [oops\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	d := cli.NewDispatcher(commands.DefaultRegistry, testFactory(testutil.NewFakeBackend()))

	_, stderr, code := run(t, d, "list", "--config", dir)

	if code != exitcode.StorageError {
		t.Errorf("expected exit code %d, got %d", exitcode.StorageError, code)
	}
	if !strings.HasPrefix(stderr, "error: config: ") {
		t.Errorf("unexpected stderr: %q", stderr)
	}
}

func TestDispatcher_CorruptStorageWarns(t *testing.T) {
	isolate(t)
	backend := testutil.NewFakeBackend()
	backend.Seed(store.DefaultKey, []byte("<<garbage>>"))
	d := cli.NewDispatcher(commands.DefaultRegistry, testFactory(backend))

	stdout, stderr, code := run(t, d, "list")

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout != "no tasks yet\n" {
		t.Errorf("expected empty state, got %q", stdout)
	}
	if !strings.HasPrefix(stderr, "warning: ") {
		t.Errorf("expected a warning on stderr, got %q", stderr)
	}
}

func TestDispatcher_WriteFailureWarns(t *testing.T) {
	isolate(t)
	backend := testutil.NewFakeBackend()
	backend.PutErr = testutil.ErrInjected
	d := cli.NewDispatcher(commands.DefaultRegistry, testFactory(backend))

	stdout, stderr, code := run(t, d, "add", "Buy", "milk")

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout != "ok\n" {
		t.Errorf("expected ok, got %q", stdout)
	}
	if !strings.Contains(stderr, "warning: write tasks") {
		t.Errorf("expected write warning, got %q", stderr)
	}
}

func TestDispatcher_Debug(t *testing.T) {
	dir := isolate(t)
	d := cli.NewDispatcher(commands.DefaultRegistry, testFactory(testutil.NewFakeBackend()))

	_, stderr, code := run(t, d, "list", "--debug", "--config", dir)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if !strings.Contains(stderr, "debug: config dir "+dir) {
		t.Errorf("expected debug output, got %q", stderr)
	}
	if !strings.Contains(stderr, "debug: loaded 0 tasks") {
		t.Errorf("expected load debug line, got %q", stderr)
	}
}

func TestDispatcher_Session(t *testing.T) {
	isolate(t)
	d := cli.NewDispatcher(commands.DefaultRegistry, testFactory(testutil.NewFakeBackend()))

	steps := [][]string{
		{"add", "Buy milk"},
		{"add", "Walk dog"},
		{"done", "2"},
	}
	for _, args := range steps {
		if _, stderr, code := run(t, d, args...); code != exitcode.Success {
			t.Fatalf("%v: exit %d: %s", args, code, stderr)
		}
	}

	stdout, _, _ := run(t, d, "ls")
	expected := "   1  [ ] Walk dog\n   2  [x] Buy milk\n1 task remaining\nrun 'vibelist clear' to remove completed tasks\n"
	if stdout != expected {
		t.Errorf("expected %q, got %q", expected, stdout)
	}

	stdout, _, _ = run(t, d, "clear")
	if stdout != "removed 1 task\n" {
		t.Errorf("unexpected clear output: %q", stdout)
	}

	stdout, _, _ = run(t, d, "list", "--quiet")
	if stdout != "   1  [ ] Walk dog\n1 task remaining\n" {
		t.Errorf("unexpected list after clear: %q", stdout)
	}
}

func TestOpenTaskList_Backends(t *testing.T) {
	for _, backend := range []string{config.BackendFile, config.BackendSQLite} {
		t.Run(backend, func(t *testing.T) {
			dir := isolate(t)
			d := cli.NewDispatcher(commands.DefaultRegistry, cli.OpenTaskList)

			if _, stderr, code := run(t, d, "add", "--config", dir, "--backend", backend, "Persist me"); code != exitcode.Success {
				t.Fatalf("add: exit %d: %s", code, stderr)
			}

			stdout, stderr, code := run(t, d, "list", "--config", dir, "--backend", backend)
			if code != exitcode.Success {
				t.Fatalf("list: exit %d: %s", code, stderr)
			}
			if stdout != "   1  [ ] Persist me\n1 task remaining\n" {
				t.Errorf("unexpected list output: %q", stdout)
			}
		})
	}
}

func TestOpenTaskList_MemoryDoesNotPersist(t *testing.T) {
	dir := isolate(t)
	d := cli.NewDispatcher(commands.DefaultRegistry, cli.OpenTaskList)

	if _, _, code := run(t, d, "add", "--config", dir, "--backend", "memory", "gone"); code != exitcode.Success {
		t.Fatalf("add failed: %d", code)
	}
	stdout, _, _ := run(t, d, "list", "--config", dir, "--backend", "memory")
	if stdout != "no tasks yet\n" {
		t.Errorf("expected empty list, got %q", stdout)
	}
}
