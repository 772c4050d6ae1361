// Package validate certifies agreement between a byte string and its seed at
// the strategic positions P(n), using three independent checksums:
//
//   - a positional grid residual over the sampled indices, which must be zero
//     for any seed the recognizer built;
//   - a structural residual collapsing the seed's own law parameters to one
//     scalar, a cheap structural consistency signal;
//   - a SHA-256 digest of the bytes at P(n) from both the original and the
//     projected sequence, whose equality certifies agreement at those
//     positions with collision resistance.
//
// None of the three claims anything about positions outside P(n); matching
// digests are not evidence of full-string reconstruction.
package validate

import (
	"crypto/sha256"
	"fmt"

	"github.com/mautorresp/CLF-Teleport/codec"
	"github.com/mautorresp/CLF-Teleport/errs"
	"github.com/mautorresp/CLF-Teleport/format"
	"github.com/mautorresp/CLF-Teleport/sampler"
	"github.com/mautorresp/CLF-Teleport/seed"
)

// Report holds the three checksum results for one (original, seed) pair.
type Report struct {
	// GridResidual is sum((original[i] - projected[i]) * i) mod 256 over
	// i in P(n). Zero for every well-formed seed; a non-zero value indicates
	// a recognizer bug, not a normal runtime condition.
	GridResidual byte

	// StructuralResidual is the structural checksum of the seed's law
	// parameters, mod 256: a direct scalar for parametric families, a
	// radius-weighted field sum for radial seeds. A consistency signal, not
	// a cryptographic claim.
	StructuralResidual byte

	// HashMatch reports whether the SHA-256 digests over the bytes at P(n)
	// agree between original and projection.
	HashMatch bool

	// OriginalDigest and ProjectedDigest are the two grid digests.
	OriginalDigest  [sha256.Size]byte
	ProjectedDigest [sha256.Size]byte

	// Positions is the strategic position set the checksums covered.
	Positions []int
}

// Check computes the three checksums for original against s.
//
// The seed's declared length must equal len(original); a mismatch is a
// caller contract violation, reported as an error rather than a failing
// report.
func Check(original []byte, s seed.Seed) (Report, error) {
	if err := s.Validate(); err != nil {
		return Report{}, err
	}
	if s.Length != len(original) {
		return Report{}, fmt.Errorf("%w: seed length %d, input length %d",
			errs.ErrOutOfRange, s.Length, len(original))
	}

	positions := sampler.Positions(len(original))
	report := Report{Positions: positions}

	projected := make([]byte, len(positions))
	for k, i := range positions {
		v, err := codec.Project(s, i)
		if err != nil {
			return Report{}, fmt.Errorf("projecting position %d: %w", i, err)
		}
		projected[k] = v
	}

	var grid byte
	originalGrid := make([]byte, len(positions))
	for k, i := range positions {
		originalGrid[k] = original[i]
		grid += (original[i] - projected[k]) * byte(i%256)
	}
	report.GridResidual = grid

	report.StructuralResidual = StructuralResidual(s)

	report.OriginalDigest = sha256.Sum256(originalGrid)
	report.ProjectedDigest = sha256.Sum256(projected)
	report.HashMatch = report.OriginalDigest == report.ProjectedDigest

	return report, nil
}

// StructuralResidual collapses a seed's law parameters into one scalar in
// Z/256Z.
//
// Parametric families reduce directly: a constant seed yields its value, an
// affine seed the midpoint of its first two values, and a periodic seed 0.
// Radial seeds integrate over their field instead: sum(phi * omega) mod 256,
// where phi is the representative byte of each term and
// omega = r * (1 + phi mod 3) mod 256 weights it by radius.
func StructuralResidual(s seed.Seed) byte {
	switch s.Family {
	case format.FamilyConst:
		return s.Const.Value
	case format.FamilyAffine:
		return affineMidpoint(s.Affine.Intercept, s.Affine.Slope)
	case format.FamilyRadial:
		var total byte
		for _, term := range radialTerms(&s) {
			omega := byte(term.radius%256) * (1 + term.phi%3)
			total += term.phi * omega
		}

		return total
	default:
		return 0
	}
}

type radialTerm struct {
	radius int
	phi    byte
}

func radialTerms(s *seed.Seed) []radialTerm {
	if s.Radial == nil {
		return nil
	}
	if s.Radial.Meta != nil {
		return []radialTerm{
			{0, s.Radial.Meta.Base},
			{1, s.Radial.Meta.Gradient},
			{2, s.Radial.Meta.Delta},
		}
	}
	terms := make([]radialTerm, 0, len(s.Radial.Rings))
	for i := range s.Radial.Rings {
		ring := &s.Radial.Rings[i]
		terms = append(terms, radialTerm{ring.Radius, ringSummary(ring.Law)})
	}

	return terms
}

// ringSummary reduces a ring law to one representative byte: the constant's
// value, or the midpoint of an affine ring's two sides.
func ringSummary(law *seed.Seed) byte {
	switch law.Family {
	case format.FamilyConst:
		return law.Const.Value
	case format.FamilyAffine:
		return affineMidpoint(law.Affine.Intercept, law.Affine.Slope)
	case format.FamilyPeriodic:
		return law.Periodic.Pattern[0]
	default:
		return 0
	}
}

func affineMidpoint(s0, delta byte) byte {
	left := int(s0)
	right := int(s0 + delta)

	return byte((left + right) / 2 % 256)
}
