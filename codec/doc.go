// Package codec implements the recognition/projection engine: detecting
// which generator family produced a byte string, fitting its parameters into
// a compact seed, and re-deriving byte values at arbitrary positions from
// that seed.
//
// # Recognition
//
// Recognize tests the global families in strict simplicity order (Const,
// then Affine, then Periodic) against the strategic position set P(n). The
// first family that reproduces every sampled byte exactly wins. When none
// matches, the input is radially decomposed: partitioned into concentric
// rings around the center index n/2, each ring fitted independently, with an
// optional meta-law collapse when a single closed form reproduces every
// sampled ring.
//
// # Projection
//
// Project is the inverse operator. For Const, Affine and Periodic seeds it
// is exact at every position in [0, n). For Radial seeds it is exact at
// every position whose radius was sampled during recognition (which covers
// all of P(n)); elsewhere it applies nearest-anchor continuation — a
// deterministic extrapolation from the closest stored ring, not a verified
// reconstruction. A fixed-size seed cannot invert arbitrary data at every
// position; exactness is only contractual on the sampled grid.
//
// All operations are pure: recognition never fails for well-formed input,
// and projection only errors on contract violations (out-of-range position,
// malformed seed).
package codec
