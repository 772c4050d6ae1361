// Package teleport provides a compact structural signature codec for byte
// sequences.
//
// Instead of storing a byte sequence verbatim, teleport recognizes the
// structure of the sequence and stores a small seed describing it: a global
// family law (constant, affine, or periodic) when one holds at every
// strategic position, or a radial decomposition around the sequence center
// otherwise. Projection regenerates bytes from the seed; the sampled
// strategic grid reproduces the original exactly, while unsampled positions
// are continued from the nearest stored ring.
//
// # Core Features
//
//   - Total recognition: every input yields a seed, worst case a radial one
//   - Byte-exact projection at every strategic grid position
//   - Meta-law collapse of affine ring gradients to three bytes
//   - Canonical binary wire encoding with endianness-tagged headers
//   - Three-channel validation (grid residual, structural residual, digest)
//   - Content-addressed seed vault (64-bit xxHash64) with optional
//     compression (None, Zstd, S2, LZ4) and directory persistence
//
// # Basic Usage
//
// Recognizing and projecting:
//
//	import "github.com/mautorresp/CLF-Teleport"
//
//	data := readSequence()
//	s := teleport.Recognize(data)
//
//	// Project single positions or whole ranges.
//	b, _ := teleport.Project(s, 0)
//	prefix, _ := teleport.ProjectRange(s, 0, 64)
//
// Validating a seed against its source:
//
//	report, err := teleport.Validate(data, s)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("grid residual: %d, digests match: %v\n",
//	    report.GridResidual, report.HashMatch)
//
// Encoding for storage or transport:
//
//	encoded, _ := teleport.EncodeSeed(s)
//	decoded, _ := teleport.DecodeSeed(encoded)
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the codec,
// validate, and wire packages, simplifying the most common use cases. For
// fine-grained control (recognizer options, vault storage, custom
// compression) use those packages directly.
package teleport

import (
	"github.com/mautorresp/CLF-Teleport/codec"
	"github.com/mautorresp/CLF-Teleport/seed"
	"github.com/mautorresp/CLF-Teleport/validate"
	"github.com/mautorresp/CLF-Teleport/wire"
)

// Recognize builds a structural seed for data using the default recognizer
// settings (parallel ring fitting, meta-law collapse enabled).
//
// Recognition is total: it never fails. Inputs matching a global constant,
// affine, or periodic law at every strategic position yield that family;
// everything else yields a radial decomposition centered at len(data)/2.
//
// For custom settings construct a codec.Recognizer:
//
//	r, err := codec.NewRecognizer(codec.WithFullClosure(true))
//	s := r.Recognize(data)
func Recognize(data []byte) seed.Seed {
	return codec.Recognize(data)
}

// Project evaluates the seed at a single position.
//
// Positions on the strategic grid of the recognized input reproduce the
// original bytes exactly. Positions off the grid of a radial seed are
// continued from the nearest stored ring (ties resolve to the smaller
// radius), which is deterministic but not a reconstruction of the input.
//
// Returns errs.ErrOutOfRange when pos is outside [0, seed.Length) and
// errs.ErrMalformedSeed when the seed fails validation.
func Project(s seed.Seed, pos int) (byte, error) {
	return codec.Project(s, pos)
}

// ProjectRange evaluates the seed over [start, end), validating the seed
// once for the whole range.
func ProjectRange(s seed.Seed, start, end int) ([]byte, error) {
	return codec.ProjectRange(s, start, end)
}

// Validate checks s against the original bytes it was recognized from and
// returns the three-channel report: the position-weighted grid residual
// over the strategic positions, the structural residual over the seed
// parameters, and the SHA-256 digests of the original and projected grid
// samples.
//
// A well-formed seed produced by Recognize reports a zero grid residual and
// matching digests.
func Validate(original []byte, s seed.Seed) (validate.Report, error) {
	return validate.Check(original, s)
}

// EncodeSeed serializes s into its canonical wire form. Encoding is
// deterministic, so equal seeds always produce identical bytes.
func EncodeSeed(s seed.Seed) ([]byte, error) {
	return wire.EncodeSeed(s)
}

// DecodeSeed parses wire bytes produced by EncodeSeed. The decoded seed is
// validated before being returned.
func DecodeSeed(data []byte) (seed.Seed, error) {
	return wire.DecodeSeed(data)
}
