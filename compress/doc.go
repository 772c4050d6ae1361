// Package compress provides the compression codecs the vault applies to
// wire-encoded seed payloads before storing them.
//
// Seed payloads are small (a header plus a bounded ring table) and highly
// structured, so the codecs favor low fixed overhead: S2 and LZ4 for speed,
// Zstd for ratio, and a no-op codec for debugging and baselines. All codecs
// are stateless values, safe for concurrent use, with pooled internal
// encoder/decoder state where the underlying library benefits from reuse.
package compress
