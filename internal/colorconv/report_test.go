package colorconv

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestReportTuple(t *testing.T) {
	var buf bytes.Buffer
	r := &Reporter{W: &buf, Format: FormatTuple}
	n, err := r.Report(NewInterpolator(4).Cycle(DefaultPalette().Colors()))
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if n != 20 || len(lines) != 20 {
		t.Fatalf("wrote %d / %d lines, want 20", n, len(lines))
	}
	if lines[0] != "(255, 0, 55)" {
		t.Errorf("first line %q", lines[0])
	}
	if lines[4] != "(255, 99, 0)" {
		t.Errorf("second anchor line %q", lines[4])
	}
}

func TestReportC(t *testing.T) {
	r := &Reporter{Format: FormatC}
	if got := r.Line(RGB(1, 36, 255)); got != "{1, 36, 255}," {
		t.Errorf("Line = %q", got)
	}
	if got := (&Reporter{}).Line(Color{0.5, 0, 1}); got != "(0.5, 0, 1)" {
		t.Errorf("fractional Line = %q", got)
	}
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestReportErrors(t *testing.T) {
	r := &Reporter{W: failWriter{}}
	if _, err := r.Report(NewInterpolator(4).Cycle(DefaultPalette().Colors())); err == nil {
		t.Error("expected write error")
	}
	var buf bytes.Buffer
	r = &Reporter{W: &buf}
	if _, err := r.Report(NewInterpolator(0).Cycle(DefaultPalette().Colors())); !errors.Is(err, ErrBadSteps) {
		t.Errorf("err = %v", err)
	}
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"": FormatTuple, "tuple": FormatTuple, "c": FormatC} {
		if got, err := ParseFormat(in); err != nil || got != want {
			t.Errorf("ParseFormat(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParseFormat("csv"); err == nil {
		t.Error("expected error for csv")
	}
}
