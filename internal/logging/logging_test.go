package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestContextAttributesAreLogged(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, false)

	ctx := AppendCtx(PackageCtx("wheel"), slog.Int("slices", 8))
	logger.InfoContext(ctx, "drawn")

	out := buf.String()
	for _, want := range []string{"msg=drawn", "package=wheel", "slices=8"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q missing %q", out, want)
		}
	}
}

func TestVerboseEnablesDebug(t *testing.T) {
	var quiet, loud bytes.Buffer
	New(&quiet, false).Debug("hidden")
	New(&loud, true).Debug("shown")

	if quiet.Len() != 0 {
		t.Errorf("non-verbose logger wrote %q", quiet.String())
	}
	if !strings.Contains(loud.String(), "shown") {
		t.Errorf("verbose logger output = %q, want debug record", loud.String())
	}
}

func TestAppendCtxDoesNotShareAttrs(t *testing.T) {
	base := PackageCtx("wheel")
	a := AppendCtx(base, slog.String("k", "a"))
	b := AppendCtx(base, slog.String("k", "b"))

	var bufA, bufB bytes.Buffer
	New(&bufA, false).InfoContext(a, "x")
	New(&bufB, false).InfoContext(b, "x")

	if !strings.Contains(bufA.String(), "k=a") || strings.Contains(bufA.String(), "k=b") {
		t.Errorf("context a logged %q", bufA.String())
	}
	if !strings.Contains(bufB.String(), "k=b") {
		t.Errorf("context b logged %q", bufB.String())
	}
}
