package compress

// ZstdCompressor compresses seed payloads with Zstandard. The best ratio of
// the built-in codecs, suited to vaults persisted to disk where space
// matters more than encode speed.
//
// The default build uses the pure-Go implementation; building with the
// czstd tag switches to the cgo libzstd binding.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd codec with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
