package codec

import "github.com/mautorresp/CLF-Teleport/seed"

// EvalConst evaluates the constant law at any position.
func EvalConst(_ int, p seed.ConstParams) byte {
	return p.Value
}

// EvalAffine evaluates (intercept + slope*pos) mod 256. Total for every
// pos >= 0; the position is reduced mod 256 first since the law lives in
// Z/256Z.
func EvalAffine(pos int, p seed.AffineParams) byte {
	return p.Intercept + p.Slope*byte(pos%256)
}

// EvalPeriodic evaluates pattern[pos mod period]. The pattern must be
// non-empty; seeds are validated before evaluation.
func EvalPeriodic(pos int, p seed.PeriodicParams) byte {
	return p.Pattern[pos%len(p.Pattern)]
}
