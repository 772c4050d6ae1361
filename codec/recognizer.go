package codec

import (
	"github.com/mautorresp/CLF-Teleport/internal/options"
	"github.com/mautorresp/CLF-Teleport/seed"
)

// Recognizer builds seeds from byte strings. The zero configuration (meta-law
// collapse on, parallel ring recognition on, strategic ring sampling) suits
// almost all callers; functional options tune the radial decomposition.
//
// A Recognizer is immutable after construction and safe for concurrent use.
type Recognizer struct {
	parallel     bool
	metaCollapse bool
	fullClosure  bool
}

// Option configures a Recognizer.
type Option = options.Option[*Recognizer]

// WithParallelRings toggles fork-join recognition of independent rings.
func WithParallelRings(enabled bool) Option {
	return options.NoError(func(r *Recognizer) {
		r.parallel = enabled
	})
}

// WithMetaLawCollapse toggles collapsing an explicit ring table into a
// closed-form meta-law when one fits every sampled ring exactly.
func WithMetaLawCollapse(enabled bool) Option {
	return options.NoError(func(r *Recognizer) {
		r.metaCollapse = enabled
	})
}

// WithFullClosure makes radial decomposition enumerate every radius instead
// of the strategic ladder. Projection from such a seed is exact at every
// position, at the cost of O(n) recognition work and a seed that grows with
// the input.
func WithFullClosure(enabled bool) Option {
	return options.NoError(func(r *Recognizer) {
		r.fullClosure = enabled
	})
}

var defaultRecognizer = &Recognizer{parallel: true, metaCollapse: true}

// NewRecognizer creates a Recognizer with the given options applied over the
// defaults.
func NewRecognizer(opts ...Option) (*Recognizer, error) {
	r := *defaultRecognizer
	if err := options.Apply(&r, opts...); err != nil {
		return nil, err
	}

	return &r, nil
}

// Recognize builds the seed for data: the simple families are tried in
// simplicity order on the strategic sample set, and radial decomposition is
// the universal fallback. Recognize is total — it returns a seed for every
// finite byte string, including empty and single-byte inputs.
//
// The returned seed does not alias data; it can outlive the input buffer.
func (r *Recognizer) Recognize(data []byte) seed.Seed {
	n := len(data)
	if n == 0 {
		return seed.NewRadial(&seed.RadialParams{}, 0)
	}

	if s, ok := Detect(data); ok {
		return s
	}

	return seed.NewRadial(decompose(data, r), n)
}

// Recognize builds the seed for data using the default recognizer
// configuration.
func Recognize(data []byte) seed.Seed {
	return defaultRecognizer.Recognize(data)
}
