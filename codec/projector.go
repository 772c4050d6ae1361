package codec

import (
	"fmt"

	"github.com/mautorresp/CLF-Teleport/errs"
	"github.com/mautorresp/CLF-Teleport/format"
	"github.com/mautorresp/CLF-Teleport/seed"
)

// Project computes the byte a seed derives at position pos.
//
// For Const, Affine and Periodic seeds the result is exact at every position
// in [0, n). For Radial seeds it is exact at positions whose radius is a
// stored ring (or, with a meta-law, at every position the law was verified
// against); other positions receive nearest-anchor continuation, which is
// deterministic but not a verified reconstruction of the original byte.
//
// Project returns errs.ErrOutOfRange when pos is outside [0, n) and
// errs.ErrMalformedSeed when the seed's parameters are inconsistent with its
// family. It is a pure function of (seed, pos) and safe for concurrent use
// on a shared seed.
func Project(s seed.Seed, pos int) (byte, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	if pos < 0 || pos >= s.Length {
		return 0, fmt.Errorf("%w: position %d, domain [0, %d)", errs.ErrOutOfRange, pos, s.Length)
	}

	return projectChecked(&s, pos), nil
}

// ProjectRange reconstructs the bytes in [start, end). It requires
// 0 <= start <= end <= n; start == end yields an empty slice.
func ProjectRange(s seed.Seed, start, end int) ([]byte, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if start < 0 || end < start || end > s.Length {
		return nil, fmt.Errorf("%w: range [%d, %d), domain [0, %d)", errs.ErrOutOfRange, start, end, s.Length)
	}

	out := make([]byte, end-start)
	for i := range out {
		out[i] = projectChecked(&s, start+i)
	}

	return out, nil
}

// projectChecked evaluates a validated seed at an in-range position.
func projectChecked(s *seed.Seed, pos int) byte {
	switch s.Family {
	case format.FamilyConst:
		return EvalConst(pos, s.Const)
	case format.FamilyAffine:
		return EvalAffine(pos, s.Affine)
	case format.FamilyPeriodic:
		return EvalPeriodic(pos, s.Periodic)
	case format.FamilyRadial:
		return projectRadial(s.Radial, pos)
	default:
		// Unreachable after Validate.
		return 0
	}
}

func projectRadial(p *seed.RadialParams, pos int) byte {
	r := pos - p.Center
	if r < 0 {
		r = -r
	}

	if p.Meta != nil {
		// The collapsed form covers every radius directly.
		s0 := p.Meta.Base + p.Meta.Gradient*byte(r%256)
		if pos > p.Center {
			return s0 + p.Meta.Delta
		}

		return s0
	}

	ring := p.RingAt(r)
	if ring == nil {
		// Continuation: borrow the law of the nearest stored radius, ties
		// preferring the smaller one.
		ring = p.NearestRing(r)
	}

	// Local index 0 is the left side (and the center), the law's last index
	// is the right side.
	idx := 0
	if pos > p.Center {
		idx = ring.Law.Length - 1
	}

	return projectChecked(ring.Law, idx)
}
