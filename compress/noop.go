package compress

// NoOpCompressor bypasses compression, returning its input unchanged. Useful
// for baselines and for vaults whose seeds are too small to benefit.
//
// Both directions return the input slice as-is, sharing its memory; callers
// must not modify the input afterwards if they keep the result.
type NoOpCompressor struct{}

var _ Codec = (*NoOpCompressor)(nil)

// NewNoOpCompressor creates a pass-through codec.
func NewNoOpCompressor() NoOpCompressor {
	return NoOpCompressor{}
}

// Compress returns data unchanged.
func (c NoOpCompressor) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns data unchanged.
func (c NoOpCompressor) Decompress(data []byte) ([]byte, error) {
	return data, nil
}
