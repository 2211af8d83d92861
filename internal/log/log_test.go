package log

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestLevelFromInt(t *testing.T) {
	cases := map[int]Level{
		-3: Off,
		-1: Off,
		0:  Off,
		1:  Basic,
		2:  Detailed,
		3:  Trace,
		4:  Wire,
		7:  Wire,
		99: Wire,
	}

	for n, want := range cases {
		if got := LevelFromInt(n); got != want {
			t.Fatalf("LevelFromInt(%d): got %v, expected %v", n, got, want)
		}
	}
}

func TestLevelGating(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer func() {
		SetLevel(Off)
		SetOutput(os.Stderr)
	}()

	SetLevel(Basic)
	Basicf("shown %d", 1)
	Detailedf("hidden")

	out := buf.String()
	if !strings.Contains(out, "shown 1") {
		t.Fatalf("basic message suppressed: %q", out)
	}
	if strings.Contains(out, "hidden") {
		t.Fatalf("detailed message leaked at basic level: %q", out)
	}
}
