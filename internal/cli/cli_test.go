package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Raza978/cpp-fundamentals/internal/domain"
)

const wantDemo = "Hello world! 1\n" +
	"Muhammad Raza\n" +
	"John Doe\n" +
	"Mary Jane\n" +
	"Muhammad Raza Residental\n" +
	"Age = 21\n" +
	"Dog age = 23\n"

func execute(t *testing.T, args ...string) (stdout string, stderr string, err error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

// --- demo ---

func TestRoot_NoArgsRunsDemo(t *testing.T) {
	out, _, err := execute(t)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != wantDemo {
		t.Fatalf("unexpected output:\n%s\nwant:\n%s", out, wantDemo)
	}
}

func TestRun_MatchesRoot(t *testing.T) {
	out, _, err := execute(t, "run")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != wantDemo {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

func TestRun_SecondNamespace(t *testing.T) {
	out, _, err := execute(t, "run", "--namespace", "second")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(out, "Hello world! 2\n") {
		t.Fatalf("expected greeting from second namespace, got:\n%s", out)
	}
}

func TestRun_UnknownNamespace(t *testing.T) {
	out, _, err := execute(t, "-n", "third")
	if err == nil {
		t.Fatal("expected error for unknown namespace")
	}
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected invalid_config, got %v", err)
	}
	if out != "" {
		t.Fatalf("expected no stdout on error, got %q", out)
	}
}

func TestRun_DebugLogsStayOffStdout(t *testing.T) {
	out, errOut, err := execute(t, "--debug")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != wantDemo {
		t.Fatalf("debug logging leaked into stdout:\n%s", out)
	}
	if !strings.Contains(errOut, "demo.finished") {
		t.Fatalf("expected debug logs on stderr, got:\n%s", errOut)
	}
}

func TestRun_LogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "fundamentals.log")
	_, errOut, err := execute(t, "run", "--log-file", path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if errOut != "" {
		t.Fatalf("expected nothing on stderr with --log-file, got %q", errOut)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(b), "demo.finished") {
		t.Fatalf("expected demo.finished in log file, got:\n%s", b)
	}
}

func TestRun_UnknownFormat(t *testing.T) {
	_, _, err := execute(t, "run", "--format", "xml")
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected invalid_config, got %v", err)
	}
}

func TestRun_LogFileUnwritable(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	out, _, err := execute(t, "--log-file", filepath.Join(blocker, "sub", "app.log"))
	if !domain.IsKind(err, domain.KindExecution) || !errors.Is(err, domain.ErrExecution) {
		t.Fatalf("expected execution error wrapping ErrExecution, got %v", err)
	}
	if out != "" {
		t.Fatalf("expected no demo output when logging cannot start, got %q", out)
	}
}

// --- printDemo ---

func TestPrintDemo_JSON(t *testing.T) {
	var buf bytes.Buffer
	if err := printDemo(&buf, "", wantDemo, "json"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var payload struct {
		Namespace string   `json:"namespace"`
		Lines     []string `json:"lines"`
	}
	if err := json.Unmarshal(buf.Bytes(), &payload); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, buf.String())
	}
	if payload.Namespace != "first" {
		t.Errorf("expected namespace=first, got %q", payload.Namespace)
	}
	if len(payload.Lines) != 7 || payload.Lines[6] != "Dog age = 23" {
		t.Errorf("unexpected lines: %#v", payload.Lines)
	}
}

func TestPrintDemo_JSON_KeepsBlankLine(t *testing.T) {
	var buf bytes.Buffer
	if err := printDemo(&buf, "first", "\n", "json"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var payload struct {
		Lines []string `json:"lines"`
	}
	if err := json.Unmarshal(buf.Bytes(), &payload); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, buf.String())
	}
	if len(payload.Lines) != 1 || payload.Lines[0] != "" {
		t.Fatalf("expected one blank line, got %#v", payload.Lines)
	}
}

func TestPrintDemo_EmptyFormat_IsPretty(t *testing.T) {
	var buf bytes.Buffer
	if err := printDemo(&buf, "first", "a\n", ""); err != nil {
		t.Fatalf("empty format should behave like pretty, got error: %v", err)
	}
	if buf.String() != "a\n" {
		t.Fatalf("expected transcript verbatim, got %q", buf.String())
	}
}

func TestPrintDemo_UnknownFormat_ReturnsError(t *testing.T) {
	var buf bytes.Buffer
	err := printDemo(&buf, "first", "", "xml")
	if err == nil {
		t.Fatal("expected error for unknown format")
	}
	if !strings.Contains(err.Error(), "xml") {
		t.Errorf("expected error to mention format, got: %v", err)
	}
	if !domain.IsKind(err, domain.KindInvalidConfig) || !errors.Is(err, domain.ErrInvalidConfig) {
		t.Errorf("expected invalid_config wrapping ErrInvalidConfig, got: %v", err)
	}
}

func TestSplitLines(t *testing.T) {
	cases := []struct {
		input string
		want  int
	}{
		{"", 0},
		{"\n", 1},
		{"a\n", 1},
		{"a\nb\n", 2},
		{"a\nb", 2},
	}
	for _, c := range cases {
		if got := splitLines(c.input); len(got) != c.want {
			t.Errorf("splitLines(%q) = %d lines, want %d", c.input, len(got), c.want)
		}
	}
}

// --- roster ---

func TestRoster_PrintsMembers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "office.yaml")
	doc := "members:\n" +
		"  - kind: person\n    first: Mary\n    last: Jane\n" +
		"  - kind: employee\n    first: Muhammad\n    last: Raza\n    department: Residental\n" +
		"  - kind: dog\n"
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	out, _, err := execute(t, "roster", path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "Mary Jane\nMuhammad Raza Residental\nAge = 21\nDog age = 23\n"
	if out != want {
		t.Fatalf("unexpected output:\n%s\nwant:\n%s", out, want)
	}
}

func TestRoster_MissingFile(t *testing.T) {
	_, _, err := execute(t, "roster", filepath.Join(t.TempDir(), "nope.yaml"))
	if !domain.IsKind(err, domain.KindNotFound) || !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not_found wrapping ErrNotFound, got %v", err)
	}
}

func TestRoster_RequiresFile(t *testing.T) {
	if _, _, err := execute(t, "roster"); err == nil {
		t.Fatal("expected error without FILE argument")
	}
}

// --- types / version ---

func TestTypes_ListsCatalog(t *testing.T) {
	out, _, err := execute(t, "types")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"Person", "Employee", "Dog", "Ager", "Informer"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in types output, got:\n%s", want, out)
		}
	}
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "version")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(out, "fundamentals dev") {
		t.Fatalf("unexpected version output %q", out)
	}
}

// --- command structure ---

func TestRootCmd_RegistersSubcommands(t *testing.T) {
	cmd := newRootCmd()
	names := map[string]bool{}
	for _, sub := range cmd.Commands() {
		names[sub.Name()] = true
	}
	for _, expected := range []string{"run", "roster", "types", "version"} {
		if !names[expected] {
			t.Errorf("expected subcommand %q to be registered", expected)
		}
	}
}

func TestRootCmd_Flags(t *testing.T) {
	cmd := newRootCmd()
	for _, flag := range []string{"debug", "log-file"} {
		if cmd.PersistentFlags().Lookup(flag) == nil {
			t.Errorf("expected persistent --%s flag", flag)
		}
	}
	for _, flag := range []string{"namespace", "format"} {
		if cmd.Flags().Lookup(flag) == nil {
			t.Errorf("expected --%s flag on root command", flag)
		}
	}
}
