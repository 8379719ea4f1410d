package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ava12/pslex/internal/test"
)

func run(t *testing.T, stdin string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	dir := t.TempDir()
	cfg := filepath.Join(dir, "pslex.toml")
	if e := os.WriteFile(cfg, []byte("[output]\nformat = \"text\"\n"), 0o644); e != nil {
		t.Fatalf("writing config: %v", e)
	}

	root := NewRootCommand()
	var out, errOut bytes.Buffer
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(append([]string{"--config", cfg}, args...))
	err = root.Execute()
	return out.String(), errOut.String(), err
}

func TestTokensStdin(t *testing.T) {
	out, _, err := run(t, "[ 1 2 ]{ add }", "tokens")
	test.ExpectNoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	test.ExpectInt(t, 7, len(lines))
	test.Assert(t, strings.HasSuffix(lines[5], "identifier   add"), "unexpected line %q", lines[5])
}

func TestTokensFiles(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.ps")
	bad := filepath.Join(dir, "bad.ps")
	test.ExpectNoError(t, os.WriteFile(good, []byte("/x 3.5 def\n"), 0o644))
	test.ExpectNoError(t, os.WriteFile(bad, []byte("1\n  @"), 0o644))

	out, errOut, err := run(t, "", "tokens", "--format", "json", bad, good)
	test.Assert(t, errors.Is(err, errReported), "expecting reported error, got %v", err)

	var prog struct {
		Source string
		Tokens []struct{ Kind string }
	}
	test.ExpectNoError(t, json.Unmarshal([]byte(out), &prog))
	test.ExpectString(t, good, prog.Source)
	test.ExpectInt(t, 3, len(prog.Tokens))

	var rec struct {
		Error    string
		Line     int
		Col      int
		Expected []string
	}
	test.ExpectNoError(t, json.Unmarshal([]byte(errOut), &rec))
	test.ExpectInt(t, 2, rec.Line)
	test.ExpectInt(t, 3, rec.Col)
	test.Assert(t, strings.Contains(rec.Error, bad), "no file name in %q", rec.Error)
	test.ExpectInt(t, 5, len(rec.Expected))
}

func TestTokensMissingFile(t *testing.T) {
	_, _, err := run(t, "", "tokens", filepath.Join(t.TempDir(), "none.ps"))
	test.Assert(t, err != nil && !errors.Is(err, errReported), "expecting read error, got %v", err)
}

func TestTree(t *testing.T) {
	out, _, err := run(t, "/sq { dup mul } def", "tree", "--nest")
	test.ExpectNoError(t, err)
	expected := `program:
  key "/sq"
  proc:
    identifier "dup"
    identifier "mul"
  identifier "def"
`
	test.ExpectString(t, expected, out)

	out, _, err = run(t, "{ 1", "tree")
	test.ExpectNoError(t, err)
	test.ExpectString(t, "program:\n  op \"{\"\n  integer \"1\"\n", out)

	_, errOut, err := run(t, "{ 1", "tree", "-n")
	test.Assert(t, errors.Is(err, errReported), "expecting reported error, got %v", err)
	test.Assert(t, strings.Contains(errOut, "unexpected end of input"), "unexpected error output %q", errOut)
}

func TestRepl(t *testing.T) {
	out, _, err := run(t, "1 add\n/p {\ndup }\n@\n\nlater\n", "repl")
	test.ExpectNoError(t, err)
	test.Assert(t, strings.HasPrefix(out, prompt), "no prompt in %q", out)
	test.Assert(t, strings.Contains(out, continuePrompt), "no continuation prompt in %q", out)
	test.Assert(t, strings.Contains(out, "2:1      identifier   dup"), "continued input not tokenized: %q", out)
	test.Assert(t, strings.Contains(out, "error: unexpected char '@'"), "no error in %q", out)
	test.Assert(t, strings.Contains(out, "identifier   later"), "input after empty line not tokenized: %q", out)
}

func TestReplUnclosedAtEof(t *testing.T) {
	samples := []string{"{ 1\n", "[ 1\n\n", "{ [\n2 ]"}
	for _, sample := range samples {
		out, _, err := run(t, sample, "repl")
		test.ExpectNoError(t, err)
		test.Assert(t, strings.Contains(out, "error: unexpected end of input"), "sample %q: no error in %q", sample, out)
	}
}

func TestReplEof(t *testing.T) {
	out, _, err := run(t, "x", "repl")
	test.ExpectNoError(t, err)
	test.Assert(t, strings.Contains(out, "identifier   x"), "last line not tokenized: %q", out)
}

func TestGrammarCmd(t *testing.T) {
	out, _, err := run(t, "", "grammar", "-f", "yaml")
	test.ExpectNoError(t, err)
	test.Assert(t, strings.Contains(out, "name: radixnumber"), "unexpected output %q", out)
}

func TestBadFormatFlag(t *testing.T) {
	_, _, err := run(t, "", "tokens", "--format", "xml")
	test.Assert(t, err != nil && strings.Contains(err.Error(), "unknown format"), "expecting format error, got %v", err)
}

func TestVerboseLogs(t *testing.T) {
	_, errOut, err := run(t, "1 2", "tokens", "-v")
	test.ExpectNoError(t, err)
	test.Assert(t, strings.Contains(errOut, "component=lexer"), "no lexer log in %q", errOut)
}

func TestVersion(t *testing.T) {
	out, _, err := run(t, "", "version")
	test.ExpectNoError(t, err)
	test.Assert(t, strings.HasPrefix(out, "pslex v"+Version), "unexpected output %q", out)
}
