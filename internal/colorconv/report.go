package colorconv

import (
	"fmt"
	"io"
	"iter"
	"strconv"
)

// Format is the line layout used by Reporter.
type Format string

const (
	FormatTuple Format = "tuple" // (255, 0, 55)
	FormatC     Format = "c"     // {255, 0, 55},
)

// ParseFormat accepts the names used on the command line.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatTuple, "":
		return FormatTuple, nil
	case FormatC:
		return FormatC, nil
	}
	return "", fmt.Errorf("colorconv: unknown format %q", s)
}

// Reporter prints one colour per line in production order.
type Reporter struct {
	W      io.Writer
	Format Format
}

func formatComponent(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// Line renders a single colour.
func (r *Reporter) Line(c Color) string {
	if r.Format == FormatC {
		return fmt.Sprintf("{%s, %s, %s},", formatComponent(c.R), formatComponent(c.G), formatComponent(c.B))
	}
	return c.String()
}

// Report writes every colour of seq and returns the number written.
func (r *Reporter) Report(seq iter.Seq2[Color, error]) (int, error) {
	n := 0
	for c, err := range seq {
		if err != nil {
			return n, err
		}
		if _, err := fmt.Fprintln(r.W, r.Line(c)); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}
