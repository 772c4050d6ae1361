// Package sampler selects the deterministic strategic index sets used for
// recognition and verification.
//
// Every set is a pure function of the input length (or ring geometry) alone:
// the same n always yields the same positions, so a seed built on one host
// verifies identically on another. Set sizes are O(log n) regardless of
// input size.
package sampler

import "sort"

// smallPrimeOffsets are the prime distances probed on both sides of the
// geometric center.
var smallPrimeOffsets = []int{3, 5, 7, 11, 13}

// strategicPeriods is the fixed candidate period ladder for periodic
// detection. Small primes catch fundamental repetition; the set is constant
// so detection cost does not grow with n.
var strategicPeriods = []int{
	2, 3, 4, 5, 7, 11, 13, 17, 19, 23, 28, 29, 31, 37, 41, 43,
	47, 53, 59, 61, 67, 71, 73, 79, 83, 89, 97,
}

// strategicRadii is the fixed base radius ladder for radial decomposition of
// large inputs. Grid-critical radii are added on top by Radii.
var strategicRadii = []int{0, 1, 2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47}

// fullRadiusLimit is the largest center distance for which every radius is
// enumerated instead of sampled strategically.
const fullRadiusLimit = 20

// Positions returns the strategic position set P(n): a sorted, duplicate-free
// subset of [0, n) that recognition fits against and validation re-checks.
//
// The set always contains 0, n-1 and the geometric center n/2, the fractional
// anchors at quarters, eighths and sixteenths, and a ladder of power-of-two
// and small-prime offsets from the center, all clipped to range.
//
// Positions(0) returns an empty set.
func Positions(n int) []int {
	if n <= 0 {
		return nil
	}

	set := make(map[int]struct{}, 48)
	add := func(i int) {
		if i >= 0 && i < n {
			set[i] = struct{}{}
		}
	}

	add(0)
	add(1)
	add(n - 1)

	center := n / 2
	add(center)

	// Fractional anchors.
	add(n / 4)
	add(3 * n / 4)
	for _, k := range []int{1, 3, 5, 7} {
		add(k * n / 8)
	}
	for _, k := range []int{1, 3, 5, 7, 9, 11} {
		add(k * n / 16)
	}

	// Power-of-two offsets from the center.
	for step := 1; step <= center || step <= n-1-center; step <<= 1 {
		add(center - step)
		add(center + step)
	}

	// Small-prime offsets from the center.
	for _, p := range smallPrimeOffsets {
		add(center - p)
		add(center + p)
	}

	positions := make([]int, 0, len(set))
	for i := range set {
		positions = append(positions, i)
	}
	sort.Ints(positions)

	return positions
}

// Periods returns the candidate periods tested by periodic detection,
// ascending, restricted to periods strictly below n. A period equal to n is
// trivial and never returned.
func Periods(n int) []int {
	periods := make([]int, 0, len(strategicPeriods))
	for _, p := range strategicPeriods {
		if p >= n {
			break
		}
		periods = append(periods, p)
	}

	return periods
}

// Center returns the canonical decomposition center for an input of length n.
func Center(n int) int {
	return n / 2
}

// MaxRadius returns the largest center distance occurring in an input of
// length n, i.e. the radius that reaches index 0 or n-1.
func MaxRadius(n int) int {
	if n <= 0 {
		return 0
	}
	center := Center(n)
	if n-1-center > center {
		return n - 1 - center
	}

	return center
}

// Radii returns the strategic radius ladder for radial decomposition of an
// input of length n, sorted ascending.
//
// For small inputs (MaxRadius(n) <= 20) every radius is enumerated, so the
// decomposition covers the input completely. For larger inputs the ladder is
// the fixed prime base set plus every radius of a strategic position
// (guaranteeing exactness at P(n)), plus the quarter points of the maximum
// radius as coarse structure anchors.
//
// Radii(0) returns an empty set.
func Radii(n int) []int {
	if n <= 0 {
		return nil
	}

	center := Center(n)
	maxRadius := MaxRadius(n)

	if maxRadius <= fullRadiusLimit {
		radii := make([]int, maxRadius+1)
		for r := range radii {
			radii[r] = r
		}

		return radii
	}

	set := make(map[int]struct{}, 64)
	add := func(r int) {
		if r >= 0 && r <= maxRadius {
			set[r] = struct{}{}
		}
	}

	for _, r := range strategicRadii {
		add(r)
	}

	// Radii of the strategic positions: exact agreement at P(n) requires a
	// stored ring for every position the validator re-checks.
	for _, i := range Positions(n) {
		if i >= center {
			add(i - center)
		} else {
			add(center - i)
		}
	}

	// Coarse structure anchors.
	add(maxRadius / 4)
	add(maxRadius / 2)
	add(3 * maxRadius / 4)
	add(maxRadius)

	radii := make([]int, 0, len(set))
	for r := range set {
		radii = append(radii, r)
	}
	sort.Ints(radii)

	return radii
}
