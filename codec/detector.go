package codec

import (
	"github.com/mautorresp/CLF-Teleport/sampler"
	"github.com/mautorresp/CLF-Teleport/seed"
)

// byteSource is the sampling oracle detection runs against: a total function
// from position to byte value over a domain of known length. Using an oracle
// instead of a slice lets ring detection reuse the same solvers on a
// projected local index space without materializing ring bytes.
type byteSource func(pos int) byte

// sliceSource adapts a byte slice to a byteSource.
func sliceSource(data []byte) byteSource {
	return func(pos int) byte { return data[pos] }
}

// Detect tests the simple families against the strategic sample positions of
// data, in strict simplicity order: Const, then Affine, then Periodic. The
// first family that reproduces every sampled byte exactly wins; ties cannot
// occur.
//
// The boolean result is false when no simple family matches. That is a
// normal outcome, not an error: the caller falls back to radial
// decomposition.
func Detect(data []byte) (seed.Seed, bool) {
	return detect(sliceSource(data), len(data))
}

func detect(src byteSource, n int) (seed.Seed, bool) {
	if n == 0 {
		return seed.Seed{}, false
	}

	if s, ok := detectConst(src, n); ok {
		return s, true
	}
	if s, ok := detectAffine(src, n); ok {
		return s, true
	}
	if s, ok := detectPeriodic(src, n); ok {
		return s, true
	}

	return seed.Seed{}, false
}

// detectConst matches when every strategic sample equals the first byte.
func detectConst(src byteSource, n int) (seed.Seed, bool) {
	value := src(0)
	for _, i := range sampler.Positions(n) {
		if src(i) != value {
			return seed.Seed{}, false
		}
	}

	return seed.NewConst(value, n), true
}

// detectAffine fits slope and intercept from positions 0 and 1 (the position
// delta 1 is invertible mod 256, so the fit is unique), then verifies the
// hypothesis at every strategic position. Any mismatch rejects the family.
func detectAffine(src byteSource, n int) (seed.Seed, bool) {
	if n < 2 {
		return seed.Seed{}, false
	}

	intercept := src(0)
	slope := src(1) - intercept
	params := seed.AffineParams{Slope: slope, Intercept: intercept}

	for _, i := range sampler.Positions(n) {
		if src(i) != EvalAffine(i, params) {
			return seed.Seed{}, false
		}
	}

	return seed.NewAffine(slope, intercept, n), true
}

// detectPeriodic tries the fixed candidate period ladder ascending and
// accepts the smallest period whose leading pattern reproduces every
// strategic sample. Candidate periods are always strictly below n.
func detectPeriodic(src byteSource, n int) (seed.Seed, bool) {
	positions := sampler.Positions(n)

	for _, period := range sampler.Periods(n) {
		pattern := make([]byte, period)
		for i := range pattern {
			pattern[i] = src(i)
		}

		params := seed.PeriodicParams{Pattern: pattern}
		ok := true
		for _, i := range positions {
			if src(i) != EvalPeriodic(i, params) {
				ok = false
				break
			}
		}
		if ok {
			return seed.NewPeriodic(pattern, n), true
		}
	}

	return seed.Seed{}, false
}
