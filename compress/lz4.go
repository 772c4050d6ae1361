package compress

import (
	"errors"
	"sync"

	"github.com/pierrec/lz4/v4"
)

// lz4CompressorPool pools lz4.Compressor instances; the compressor keeps
// internal match tables that benefit from reuse.
var lz4CompressorPool = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

// LZ4Compressor compresses seed payloads with LZ4 block compression.
//
// The block format carries no length header, so the compressed output is
// framed with a uvarint-free convention: a payload that grew under
// compression is stored raw behind a one-byte marker.
type LZ4Compressor struct{}

var _ Codec = (*LZ4Compressor)(nil)

const (
	lz4MarkerCompressed = 0x01
	lz4MarkerRaw        = 0x00
)

// NewLZ4Compressor creates a new LZ4 codec.
func NewLZ4Compressor() LZ4Compressor {
	return LZ4Compressor{}
}

// Compress compresses data using LZ4 block compression.
func (c LZ4Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	compressor := lz4CompressorPool.Get().(*lz4.Compressor)
	defer lz4CompressorPool.Put(compressor)

	dst := make([]byte, 1+lz4.CompressBlockBound(len(data)))
	n, err := compressor.CompressBlock(data, dst[1:])
	if err != nil || n == 0 || n >= len(data) {
		// Incompressible payload: store raw.
		out := make([]byte, 1+len(data))
		out[0] = lz4MarkerRaw
		copy(out[1:], data)

		return out, nil
	}

	dst[0] = lz4MarkerCompressed

	return dst[:1+n], nil
}

// Decompress decompresses LZ4 block data produced by Compress.
func (c LZ4Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	marker, body := data[0], data[1:]
	switch marker {
	case lz4MarkerRaw:
		out := make([]byte, len(body))
		copy(out, body)

		return out, nil
	case lz4MarkerCompressed:
		// Grow the destination until the block fits; seed payloads rarely
		// exceed a few KiB, so one or two rounds suffice.
		size := 4 * len(body)
		if size < 64 {
			size = 64
		}
		for {
			dst := make([]byte, size)
			n, err := lz4.UncompressBlock(body, dst)
			if err == nil {
				return dst[:n], nil
			}
			if size >= 1<<24 {
				return nil, err
			}
			size *= 2
		}
	default:
		return nil, errors.New("lz4: unknown framing marker")
	}
}
