// Package seed defines the immutable structural signature of a byte string:
// a tagged record naming the detected generator family, its parameters, and
// the length of the valid projection domain.
//
// A Seed is built once by the recognizer and consumed arbitrarily often by
// the projector; nothing mutates it after construction. Radial seeds own
// their ring sub-seeds directly (a finite variant tree, no pointers back up),
// so the structure is acyclic and serializes without cycle detection.
package seed

import (
	"fmt"

	"github.com/mautorresp/CLF-Teleport/errs"
	"github.com/mautorresp/CLF-Teleport/format"
)

// Seed describes a detected generator family for a byte string of Length
// bytes. Exactly one parameter field is meaningful, selected by Family.
//
// Length is always carried so the projector knows the valid domain [0, Length).
type Seed struct {
	Family format.FamilyType
	Length int

	Const    ConstParams
	Affine   AffineParams
	Periodic PeriodicParams
	Radial   *RadialParams
}

// ConstParams parameterizes the constant law S[i] = Value.
type ConstParams struct {
	Value byte
}

// AffineParams parameterizes the affine law S[i] = (Intercept + Slope*i) mod 256.
type AffineParams struct {
	Slope     byte
	Intercept byte
}

// PeriodicParams parameterizes the periodic law S[i] = Pattern[i mod len(Pattern)].
// The period is the pattern length; it is always strictly below the seed length.
type PeriodicParams struct {
	Pattern []byte
}

// RadialParams parameterizes the radial composite law S[i] = R(|i - Center|).
//
// Exactly one of Rings and Meta carries the ring vocabulary:
//   - Rings is an explicit radius-sorted table of sub-seeds, one per sampled
//     radius. Positions at a stored radius project exactly; other positions
//     use nearest-anchor continuation.
//   - Meta is a collapsed closed form valid for every radius, produced only
//     when it was verified against every sampled ring.
//
// A zero-length input is represented by a RadialParams with no rings and no
// meta-law.
type RadialParams struct {
	Center int
	Rings  []Ring
	Meta   *MetaLaw
}

// Ring binds one sampled radius to the sub-seed generating its 1–2 bytes.
//
// The sub-seed's domain is the ring's local index space: index 0 is the left
// position Center-Radius (or the center itself at radius 0), index 1 is the
// right position Center+Radius when both sides are in range.
type Ring struct {
	Radius int
	Law    *Seed
}

// MetaLaw is the collapsed per-ring closed form: ring r behaves as an affine
// sub-seed with intercept (Base + Gradient*r) mod 256 and slope Delta.
type MetaLaw struct {
	Base     byte
	Gradient byte
	Delta    byte
}

// NewConst builds a constant seed for n bytes of value.
func NewConst(value byte, n int) Seed {
	return Seed{Family: format.FamilyConst, Length: n, Const: ConstParams{Value: value}}
}

// NewAffine builds an affine seed for n bytes following
// (intercept + slope*i) mod 256.
func NewAffine(slope, intercept byte, n int) Seed {
	return Seed{Family: format.FamilyAffine, Length: n, Affine: AffineParams{Slope: slope, Intercept: intercept}}
}

// NewPeriodic builds a periodic seed for n bytes repeating pattern. The
// pattern is copied so the seed does not alias caller memory.
func NewPeriodic(pattern []byte, n int) Seed {
	p := make([]byte, len(pattern))
	copy(p, pattern)

	return Seed{Family: format.FamilyPeriodic, Length: n, Periodic: PeriodicParams{Pattern: p}}
}

// NewRadial builds a radial composite seed for n bytes.
func NewRadial(params *RadialParams, n int) Seed {
	return Seed{Family: format.FamilyRadial, Length: n, Radial: params}
}

// RingAt returns the ring stored at exactly radius r, or nil when r is not a
// stored radius. Rings are radius-sorted, so the lookup is a binary search.
func (p *RadialParams) RingAt(r int) *Ring {
	lo, hi := 0, len(p.Rings)
	for lo < hi {
		mid := (lo + hi) / 2
		if p.Rings[mid].Radius < r {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo < len(p.Rings) && p.Rings[lo].Radius == r {
		return &p.Rings[lo]
	}

	return nil
}

// NearestRing returns the stored ring whose radius is closest to r. Ties
// prefer the smaller radius. Returns nil when no rings are stored.
func (p *RadialParams) NearestRing(r int) *Ring {
	if len(p.Rings) == 0 {
		return nil
	}

	lo, hi := 0, len(p.Rings)
	for lo < hi {
		mid := (lo + hi) / 2
		if p.Rings[mid].Radius < r {
			lo = mid + 1
		} else {
			hi = mid
		}
	}

	// lo is the first ring with Radius >= r; its left neighbor is the last
	// ring below r. The tie at equal distance goes to the smaller radius.
	if lo == 0 {
		return &p.Rings[0]
	}
	if lo == len(p.Rings) {
		return &p.Rings[len(p.Rings)-1]
	}

	below, above := &p.Rings[lo-1], &p.Rings[lo]
	if r-below.Radius <= above.Radius-r {
		return below
	}

	return above
}

// Validate checks that the seed's parameters are consistent with its declared
// family. It reports errs.ErrMalformedSeed (wrapped with detail) on the first
// inconsistency found.
//
// Validate is the projector's entry gate for seeds arriving from untrusted
// sources such as wire decoding.
func (s *Seed) Validate() error {
	if !s.Family.IsValid() {
		return fmt.Errorf("%w: family tag 0x%02x", errs.ErrMalformedSeed, uint8(s.Family))
	}
	if s.Length < 0 {
		return fmt.Errorf("%w: negative length %d", errs.ErrMalformedSeed, s.Length)
	}

	switch s.Family {
	case format.FamilyConst, format.FamilyAffine:
		return nil
	case format.FamilyPeriodic:
		if len(s.Periodic.Pattern) == 0 {
			return fmt.Errorf("%w: periodic seed with empty pattern", errs.ErrMalformedSeed)
		}

		return nil
	case format.FamilyRadial:
		return s.validateRadial()
	}

	return nil
}

func (s *Seed) validateRadial() error {
	p := s.Radial
	if p == nil {
		return fmt.Errorf("%w: radial seed without parameters", errs.ErrMalformedSeed)
	}
	if s.Length == 0 {
		if len(p.Rings) != 0 || p.Meta != nil {
			return fmt.Errorf("%w: zero-length radial seed with ring data", errs.ErrMalformedSeed)
		}

		return nil
	}
	if p.Center < 0 || p.Center >= s.Length {
		return fmt.Errorf("%w: center %d outside [0, %d)", errs.ErrMalformedSeed, p.Center, s.Length)
	}
	if p.Meta != nil {
		if len(p.Rings) != 0 {
			return fmt.Errorf("%w: radial seed with both meta-law and ring table", errs.ErrMalformedSeed)
		}

		return nil
	}
	if len(p.Rings) == 0 {
		return fmt.Errorf("%w: radial seed with neither meta-law nor rings", errs.ErrMalformedSeed)
	}

	prev := -1
	for i := range p.Rings {
		ring := &p.Rings[i]
		if ring.Radius <= prev {
			return fmt.Errorf("%w: ring radii not strictly ascending at %d", errs.ErrMalformedSeed, ring.Radius)
		}
		prev = ring.Radius
		if ring.Law == nil {
			return fmt.Errorf("%w: ring %d without law", errs.ErrMalformedSeed, ring.Radius)
		}
		if ring.Law.Length < 1 || ring.Law.Length > 2 {
			return fmt.Errorf("%w: ring %d law covers %d positions", errs.ErrMalformedSeed,
				ring.Radius, ring.Law.Length)
		}
		if err := ring.Law.Validate(); err != nil {
			return fmt.Errorf("ring %d: %w", ring.Radius, err)
		}
	}

	return nil
}

// String returns a compact debug description of the seed.
func (s Seed) String() string {
	switch s.Family {
	case format.FamilyConst:
		return fmt.Sprintf("Const{value=%d, n=%d}", s.Const.Value, s.Length)
	case format.FamilyAffine:
		return fmt.Sprintf("Affine{slope=%d, intercept=%d, n=%d}", s.Affine.Slope, s.Affine.Intercept, s.Length)
	case format.FamilyPeriodic:
		return fmt.Sprintf("Periodic{period=%d, n=%d}", len(s.Periodic.Pattern), s.Length)
	case format.FamilyRadial:
		if s.Radial == nil {
			return fmt.Sprintf("Radial{nil, n=%d}", s.Length)
		}
		if s.Radial.Meta != nil {
			return fmt.Sprintf("Radial{center=%d, meta, n=%d}", s.Radial.Center, s.Length)
		}

		return fmt.Sprintf("Radial{center=%d, rings=%d, n=%d}", s.Radial.Center, len(s.Radial.Rings), s.Length)
	default:
		return fmt.Sprintf("Unknown{n=%d}", s.Length)
	}
}
