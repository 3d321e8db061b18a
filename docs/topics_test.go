package docs

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
	"testing"

	"github.com/etnz/cashbook/date"
	"github.com/google/go-cmp/cmp"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Fenced block kinds that are executed. Other blocks are only documentation.
const (
	bashSetup    = "bash setup"    // runs in a fresh directory
	bashRun      = "bash run"      // output is checked by the next console check
	consoleCheck = "console check" // expected output of the last bash run
	bashCheck    = "bash check"    // must exit successfully
)

// topicLine matches a topic entry in readme.md: "* name: description".
var topicLine = regexp.MustCompile(`(?m)^\*\s+([a-z-]+):`)

func TestTopics(t *testing.T) {
	readme, err := GetTopic("readme")
	if err != nil {
		t.Fatal(err)
	}
	var listed []string
	for _, m := range topicLine.FindAllStringSubmatch(readme, -1) {
		listed = append(listed, m[1])
	}
	slices.Sort(listed)

	all, err := GetAllTopics()
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(all, listed); diff != "" {
		t.Errorf("readme.md topics mismatch (-files +listed):\n%s", diff)
	}
}

func TestGetAllTopics(t *testing.T) {
	got, err := GetAllTopics()
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"dialog", "menu", "report"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("GetAllTopics() mismatch (-want +got):\n%s", diff)
	}

	all, err := GetTopics("*")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(all, "# cbk, a cashbook") {
		t.Errorf("GetTopics(*) should start with the readme, got %q", all[:min(len(all), 40)])
	}
	if _, err := GetTopic("nope"); err == nil {
		t.Error("GetTopic(nope): want an error")
	}
}

func TestCodeBlocks(t *testing.T) {
	files, err := filepath.Glob("*.md")
	if err != nil {
		t.Fatal(err)
	}
	files = append(files, "../README.md")

	cbk := buildCbk(t)
	for _, file := range files {
		t.Run(file, func(t *testing.T) {
			run(t, cbk, readBlocks(t, file))
		})
	}
}

// block is an executable fenced code block.
type block struct {
	kind    string
	content string
	pos     string // file:line, for error messages
}

// buildCbk builds the cbk command in a temporary directory and returns that directory.
func buildCbk(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	out, err := exec.Command("go", "build", "-o", filepath.Join(dir, "cbk"), "../cbk/").CombinedOutput()
	if err != nil {
		t.Fatalf("failed to build cbk: %v\n%s", err, out)
	}
	return dir
}

// readBlocks returns the executable blocks of a markdown file, in order.
func readBlocks(t *testing.T, file string) []block {
	t.Helper()
	source, err := os.ReadFile(file)
	if err != nil {
		t.Fatalf("failed to read %s: %v", file, err)
	}

	var blocks []block
	root := goldmark.DefaultParser().Parse(text.NewReader(source))
	ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		fcb, ok := n.(*ast.FencedCodeBlock)
		if !entering || !ok || fcb.Info == nil {
			return ast.WalkContinue, nil
		}
		kind := string(fcb.Info.Segment.Value(source))
		switch kind {
		case bashSetup, bashRun, consoleCheck, bashCheck:
		default:
			return ast.WalkContinue, nil
		}

		var content strings.Builder
		for i := 0; i < fcb.Lines().Len(); i++ {
			line := fcb.Lines().At(i)
			content.Write(line.Value(source))
		}
		line := bytes.Count(source[:fcb.Info.Segment.Start], []byte("\n")) + 1
		blocks = append(blocks, block{
			kind:    kind,
			content: content.String(),
			pos:     fmt.Sprintf("%s:%d", file, line),
		})
		return ast.WalkContinue, nil
	})
	return blocks
}

// run executes blocks in order, with cbk in the PATH, a fixed today and no user settings.
func run(t *testing.T, cbkDir string, blocks []block) {
	t.Helper()
	env := append(os.Environ(),
		"PATH="+cbkDir+string(os.PathListSeparator)+os.Getenv("PATH"),
		date.EnvTestingNow+"=2025-01-15",
		"CASHBOOK_CURRENCY=",
		"CASHBOOK_VERBOSE=",
	)

	dir := t.TempDir()
	var last string
	for _, b := range blocks {
		if b.kind == consoleCheck {
			got, want := strings.TrimSpace(last), strings.TrimSpace(b.content)
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("%s: output mismatch (-want +got):\n%s", b.pos, diff)
			}
			continue
		}
		if b.kind == bashSetup {
			dir = t.TempDir()
		}

		cmd := exec.Command("bash", "-c", "set -e; "+b.content)
		cmd.Dir = dir
		cmd.Env = env
		out, err := cmd.CombinedOutput()
		if b.kind == bashRun {
			last = string(out)
		}
		if err == nil {
			continue
		}
		if b.kind == bashCheck {
			t.Errorf("%s: check failed: %v\n%s", b.pos, err, out)
			continue
		}
		t.Fatalf("%s: %s failed: %v\n%s", b.pos, b.kind, err, out)
	}
}
