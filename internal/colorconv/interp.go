package colorconv

import (
	"errors"
	"fmt"
	"iter"
	"math"

	"paranoid/internal/logging"
)

var (
	ErrTooFewAnchors = errors.New("colorconv: need at least two anchors")
	ErrBadSteps      = errors.New("colorconv: steps must be at least 1")
)

// Interpolator walks a cyclic palette and fills each segment with colours
// interpolated in Space.
type Interpolator struct {
	Space   UniformSpace
	Steps   int
	Scaling Scaling
}

// NewInterpolator returns a Lab interpolator producing 0..255 linear values.
func NewInterpolator(steps int) *Interpolator {
	return &Interpolator{Space: LabSpace{}, Steps: steps, Scaling: Byte}
}

// Cycle yields, for every anchor in order, its linear value followed by
// Steps-1 linear colours towards the next anchor (the last wraps to the
// first). It yields len(anchors)*Steps colours. The first error stops it.
func (p *Interpolator) Cycle(anchors []Color) iter.Seq2[Color, error] {
	return func(yield func(Color, error) bool) {
		if len(anchors) < 2 {
			yield(Color{}, fmt.Errorf("%w: got %d", ErrTooFewAnchors, len(anchors)))
			return
		}
		if p.Steps < 1 {
			yield(Color{}, fmt.Errorf("%w: got %d", ErrBadSteps, p.Steps))
			return
		}
		space := p.Space
		if space == nil {
			space = LabSpace{}
		}
		log := logging.Logger()

		for i, c := range anchors {
			if !yield(EncodeToLinear(c, p.Scaling), nil) {
				return
			}
			next := anchors[(i+1)%len(anchors)]

			from, err := space.ToUniform(c)
			if err != nil {
				yield(Color{}, fmt.Errorf("anchor %d: %w", i, err))
				return
			}
			to, err := space.ToUniform(next)
			if err != nil {
				yield(Color{}, fmt.Errorf("anchor %d: %w", (i+1)%len(anchors), err))
				return
			}
			log.Debug("segment", "index", i, "from", from, "to", to)

			for j := 1; j < p.Steps; j++ {
				enc, err := space.FromUniform(from.Lerp(to, j, p.Steps))
				if err != nil {
					yield(Color{}, fmt.Errorf("anchor %d step %d: %w", i, j, err))
					return
				}
				// int() semantics: drop the fraction before re-linearising
				enc = enc.apply(math.Trunc)
				if !yield(EncodeToLinear(enc, p.Scaling), nil) {
					return
				}
			}
		}
	}
}

// Collect drains seq, stopping at the first error.
func Collect(seq iter.Seq2[Color, error]) ([]Color, error) {
	var out []Color
	for c, err := range seq {
		if err != nil {
			return out, err
		}
		out = append(out, c)
	}
	return out, nil
}
