// Package errs defines the sentinel errors shared across the codec packages.
//
// Errors are plain sentinels so callers can test them with errors.Is after
// call sites wrap them with fmt.Errorf("...: %w", err) context.
package errs

import "errors"

var (
	// ErrOutOfRange indicates a projection position outside the seed's
	// declared domain [0, length).
	ErrOutOfRange = errors.New("position out of range")

	// ErrMalformedSeed indicates seed parameters inconsistent with the
	// declared family, e.g. a periodic seed with an empty pattern.
	ErrMalformedSeed = errors.New("malformed seed")

	// ErrInvalidMagicNumber indicates wire data that does not start with a
	// recognized seed magic number.
	ErrInvalidMagicNumber = errors.New("invalid magic number")

	// ErrInvalidHeaderSize indicates wire data too short to contain a seed
	// header.
	ErrInvalidHeaderSize = errors.New("invalid header size")

	// ErrTruncatedData indicates wire data that ends inside a field.
	ErrTruncatedData = errors.New("truncated wire data")

	// ErrUnknownFamily indicates a family tag outside the closed vocabulary.
	ErrUnknownFamily = errors.New("unknown family tag")

	// ErrSeedNotFound indicates a vault lookup for an ID with no stored seed.
	ErrSeedNotFound = errors.New("seed not found")

	// ErrSeedCollision indicates two distinct canonical encodings hashing to
	// the same vault ID.
	ErrSeedCollision = errors.New("seed ID collision")
)
