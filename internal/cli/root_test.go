package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func writeTrainingFile(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "corpus.txt")
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0644); err != nil {
		t.Fatalf("writing training file: %v", err)
	}
	return path
}

func TestRunJSONOutput(t *testing.T) {
	train := writeTrainingFile(t, "14/3/2012", "1/4/2012", "", "  ")

	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--train", train, "--json", "2/8/2012", "hello"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}

	var results []struct {
		Reliability string `json:"reliability"`
		Calendar    string `json:"calendar"`
		Day         int    `json:"day"`
		Month       int    `json:"month"`
		Year        int    `json:"year"`
	}
	if err := json.Unmarshal(out.Bytes(), &results); err != nil {
		t.Fatalf("decoding output: %v\n%s", err, out.String())
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	if results[0].Reliability != "resolved-unambiguously" || results[0].Day != 2 ||
		results[0].Month != 8 || results[0].Year != 2012 || results[0].Calendar != "gregorian" {
		t.Fatalf("unexpected first result: %+v", results[0])
	}
	if results[1].Reliability != "unclear/invalid" {
		t.Fatalf("unexpected second result: %+v", results[1])
	}
}

func TestRunReadsStdin(t *testing.T) {
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetIn(strings.NewReader("March 2, 1989\n\n"))
	cmd.SetArgs([]string{"--json"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(out.String(), `"unambiguous"`) {
		t.Fatalf("stdin date not parsed: %s", out.String())
	}
}

func TestRunMissingTrainingFile(t *testing.T) {
	cmd := NewRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--train", filepath.Join(t.TempDir(), "absent.txt"), "1/2/2012"})
	if err := cmd.Execute(); err == nil {
		t.Fatal("expected error for missing training file")
	}
}

func TestSplitLines(t *testing.T) {
	got := splitLines("14/3/2012\n\n  1/4/2012  \n\t\n")
	want := []string{"14/3/2012", "1/4/2012"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("splitLines = %v, want %v", got, want)
	}
	if got := splitLines(""); len(got) != 0 {
		t.Fatalf("splitLines of empty input = %v", got)
	}
}
