package codec

import (
	"runtime"
	"sync"

	"github.com/mautorresp/CLF-Teleport/format"
	"github.com/mautorresp/CLF-Teleport/sampler"
	"github.com/mautorresp/CLF-Teleport/seed"
)

// minMetaRings is the smallest ring count the meta-law fit accepts; with
// fewer rings a closed form over radii is not evidence of structure.
const minMetaRings = 5

// parallelRingThreshold is the ring count above which ring recognition forks
// across goroutines.
const parallelRingThreshold = 16

// Decompose partitions data into concentric rings around the canonical
// center n/2 and fits each sampled ring independently. This is the universal
// fallback family: it is total and never fails.
//
// Decompose of an empty input yields radial parameters with no rings; the
// projector reconstructs an empty output from them.
func Decompose(data []byte) *seed.RadialParams {
	return decompose(data, defaultRecognizer)
}

func decompose(data []byte, cfg *Recognizer) *seed.RadialParams {
	n := len(data)
	if n == 0 {
		return &seed.RadialParams{}
	}

	center := sampler.Center(n)

	var radii []int
	if cfg.fullClosure {
		radii = make([]int, sampler.MaxRadius(n)+1)
		for r := range radii {
			radii[r] = r
		}
	} else {
		radii = sampler.Radii(n)
	}

	rings := make([]seed.Ring, len(radii))
	fit := func(idx int) {
		r := radii[idx]
		rings[idx] = seed.Ring{Radius: r, Law: fitRing(data, center, r)}
	}

	// Ring recognitions are data-independent of each other, so they fork
	// across workers and join before meta-law fitting.
	if cfg.parallel && len(radii) >= parallelRingThreshold {
		forkJoin(len(radii), fit)
	} else {
		for idx := range radii {
			fit(idx)
		}
	}

	params := &seed.RadialParams{Center: center}
	if cfg.metaCollapse {
		if meta := fitMetaLaw(rings); meta != nil {
			params.Meta = meta

			return params
		}
	}
	params.Rings = rings

	return params
}

// forkJoin runs fn(0..count-1) across GOMAXPROCS workers and waits for all
// of them. Workers write to disjoint indices, so no locking is needed.
func forkJoin(count int, fn func(idx int)) {
	workers := runtime.GOMAXPROCS(0)
	if workers > count {
		workers = count
	}

	var wg sync.WaitGroup
	chunk := (count + workers - 1) / workers
	for w := 0; w < workers; w++ {
		start := w * chunk
		end := start + chunk
		if end > count {
			end = count
		}
		if start >= end {
			break
		}

		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for idx := start; idx < end; idx++ {
				fn(idx)
			}
		}(start, end)
	}
	wg.Wait()
}

// fitRing fits the sub-seed for one ring: the 1–2 bytes at positions
// center-r and center+r, clipped to range. The sub-seed's domain is the
// ring's local index space (0 = left or center, 1 = right).
//
// The detector always matches 1–2 samples with Const or Affine, but if it
// ever declined, the ring would be stored as a literal two-entry table — the
// base case that keeps decomposition total.
func fitRing(data []byte, center, r int) *seed.Seed {
	n := len(data)

	var values []byte
	if r == 0 {
		values = []byte{data[center]}
	} else {
		values = make([]byte, 0, 2)
		if center-r >= 0 {
			values = append(values, data[center-r])
		}
		if center+r < n {
			values = append(values, data[center+r])
		}
	}

	if s, ok := detect(sliceSource(values), len(values)); ok {
		return &s
	}

	// Literal fallback: store the raw side bytes as a degenerate affine law.
	law := seed.NewAffine(values[len(values)-1]-values[0], values[0], len(values))

	return &law
}

// fitMetaLaw attempts to collapse an explicit ring table into a single
// closed form: every ring behaving as an affine sub-seed with intercept
// (base + gradient*r) mod 256 and a constant slope delta.
//
// The collapse is only valid when the formula reproduces every sampled ring
// exactly, so the fit is verified against all of them before it is accepted.
func fitMetaLaw(rings []seed.Ring) *seed.MetaLaw {
	if len(rings) < minMetaRings {
		return nil
	}

	for i := range rings {
		f := rings[i].Law.Family
		if f != format.FamilyConst && f != format.FamilyAffine {
			return nil
		}
	}

	// Constant slope candidate from the first two-sided ring; one-sided and
	// constant rings contribute slope 0.
	var delta byte
	for i := range rings {
		if rings[i].Law.Length == 2 {
			delta = ringSide(rings[i].Law, 1) - ringSide(rings[i].Law, 0)
			break
		}
	}

	r0, r1 := rings[0].Radius, rings[1].Radius
	b0 := ringSide(rings[0].Law, 0)
	b1 := ringSide(rings[1].Law, 0)

	gradient, ok := solveGradient(b0, b1, r1-r0)
	if !ok {
		return nil
	}
	base := b0 - gradient*byte(r0%256)

	meta := &seed.MetaLaw{Base: base, Gradient: gradient, Delta: delta}
	for i := range rings {
		r := rings[i].Radius
		s0 := meta.Base + meta.Gradient*byte(r%256)
		if ringSide(rings[i].Law, 0) != s0 {
			return nil
		}
		if rings[i].Law.Length == 2 && ringSide(rings[i].Law, 1) != s0+meta.Delta {
			return nil
		}
	}

	return meta
}

// ringSide evaluates a ring law at a local index (0 = left/center, 1 = right).
func ringSide(law *seed.Seed, idx int) byte {
	switch law.Family {
	case format.FamilyConst:
		return EvalConst(idx, law.Const)
	case format.FamilyAffine:
		return EvalAffine(idx, law.Affine)
	case format.FamilyPeriodic:
		return EvalPeriodic(idx, law.Periodic)
	default:
		return 0
	}
}

// solveGradient solves b1 = b0 + gradient*dr in Z/256Z. An odd dr is
// invertible mod 256; an even dr only admits an exact integer slope with no
// wraparound.
func solveGradient(b0, b1 byte, dr int) (byte, bool) {
	if dr == 0 {
		return 0, false
	}
	if dr%2 != 0 {
		return (b1 - b0) * invMod256(byte(dr%256)), true
	}

	raw := int(b1) - int(b0)
	if raw%dr != 0 {
		return 0, false
	}

	return byte(raw / dr), true
}

// invMod256 returns the multiplicative inverse of an odd byte mod 256,
// via Newton iteration on the 2-adic lift.
func invMod256(x byte) byte {
	inv := x // correct mod 8 for odd x
	inv *= 2 - x*inv
	inv *= 2 - x*inv
	inv *= 2 - x*inv

	return inv
}
