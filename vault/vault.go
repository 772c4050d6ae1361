// Package vault implements content-addressed seed storage.
//
// A seed's identity is the xxHash64 of its canonical wire encoding, so
// structurally identical seeds share one entry regardless of how they were
// produced. Payloads are compressed before storage and the vault verifies on
// every Put that an existing entry under the same ID holds the same
// canonical bytes — a differing payload surfaces the hash collision instead
// of silently overwriting.
//
// The vault is an in-memory map, optionally mirrored to a directory so seeds
// survive process restarts.
package vault

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/mautorresp/CLF-Teleport/compress"
	"github.com/mautorresp/CLF-Teleport/errs"
	"github.com/mautorresp/CLF-Teleport/format"
	"github.com/mautorresp/CLF-Teleport/internal/hash"
	"github.com/mautorresp/CLF-Teleport/internal/options"
	"github.com/mautorresp/CLF-Teleport/seed"
	"github.com/mautorresp/CLF-Teleport/wire"
)

// Vault stores wire-encoded seeds keyed by content ID. Safe for concurrent
// use.
type Vault struct {
	mu          sync.RWMutex
	entries     map[uint64][]byte // compressed canonical payloads
	codec       compress.Codec
	compression format.CompressionType
	dir         string
}

// Option configures a Vault.
type Option = options.Option[*Vault]

// WithCompression selects the codec applied to stored payloads. The default
// is S2.
func WithCompression(compressionType format.CompressionType) Option {
	return options.New(func(v *Vault) error {
		if !compressionType.IsValid() {
			return fmt.Errorf("invalid vault compression: %s", compressionType)
		}
		v.compression = compressionType

		return nil
	})
}

// WithDir mirrors stored seeds into dir, one file per ID. The directory is
// created if missing.
func WithDir(dir string) Option {
	return options.New(func(v *Vault) error {
		if dir == "" {
			return fmt.Errorf("vault directory must not be empty")
		}
		v.dir = dir

		return nil
	})
}

// New creates a Vault.
func New(opts ...Option) (*Vault, error) {
	v := &Vault{
		entries:     make(map[uint64][]byte),
		compression: format.CompressionS2,
	}
	if err := options.Apply(v, opts...); err != nil {
		return nil, err
	}

	codec, err := compress.CreateCodec(v.compression, "vault")
	if err != nil {
		return nil, err
	}
	v.codec = codec

	if v.dir != "" {
		if err := os.MkdirAll(v.dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating vault directory: %w", err)
		}
	}

	return v, nil
}

// Put stores s and returns its content ID. Storing the same seed twice is
// idempotent; a different seed hashing to an occupied ID returns
// errs.ErrSeedCollision.
func (v *Vault) Put(s seed.Seed) (uint64, error) {
	canonical, err := wire.EncodeSeed(s)
	if err != nil {
		return 0, err
	}
	id := hash.ID(canonical)

	v.mu.Lock()
	defer v.mu.Unlock()

	if stored, ok := v.entries[id]; ok {
		existing, err := v.codec.Decompress(stored)
		if err != nil {
			return 0, fmt.Errorf("verifying entry %016x: %w", id, err)
		}
		if !bytes.Equal(existing, canonical) {
			return 0, fmt.Errorf("%w: id %016x", errs.ErrSeedCollision, id)
		}

		return id, nil
	}

	compressed, err := v.codec.Compress(canonical)
	if err != nil {
		return 0, fmt.Errorf("compressing seed %016x: %w", id, err)
	}
	// The no-op codec aliases its input; entries must own their bytes.
	stored := make([]byte, len(compressed))
	copy(stored, compressed)
	v.entries[id] = stored

	if v.dir != "" {
		if err := v.writeEntry(id, stored); err != nil {
			delete(v.entries, id)
			return 0, err
		}
	}

	return id, nil
}

// Get retrieves the seed stored under id, falling back to the mirror
// directory when the entry is not in memory.
func (v *Vault) Get(id uint64) (seed.Seed, error) {
	v.mu.RLock()
	stored, ok := v.entries[id]
	v.mu.RUnlock()

	if !ok && v.dir != "" {
		loaded, compression, err := v.readEntry(id)
		if err != nil {
			return seed.Seed{}, err
		}

		codec, err := compress.GetCodec(compression)
		if err != nil {
			return seed.Seed{}, err
		}
		canonical, err := codec.Decompress(loaded)
		if err != nil {
			return seed.Seed{}, fmt.Errorf("decompressing entry %016x: %w", id, err)
		}

		return wire.DecodeSeed(canonical)
	}
	if !ok {
		return seed.Seed{}, fmt.Errorf("%w: id %016x", errs.ErrSeedNotFound, id)
	}

	canonical, err := v.codec.Decompress(stored)
	if err != nil {
		return seed.Seed{}, fmt.Errorf("decompressing entry %016x: %w", id, err)
	}

	return wire.DecodeSeed(canonical)
}

// Has reports whether id is stored in memory.
func (v *Vault) Has(id uint64) bool {
	v.mu.RLock()
	defer v.mu.RUnlock()
	_, ok := v.entries[id]

	return ok
}

// Len returns the number of in-memory entries.
func (v *Vault) Len() int {
	v.mu.RLock()
	defer v.mu.RUnlock()

	return len(v.entries)
}

// IDs returns the stored content IDs, ascending.
func (v *Vault) IDs() []uint64 {
	v.mu.RLock()
	defer v.mu.RUnlock()

	ids := make([]uint64, 0, len(v.entries))
	for id := range v.entries {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids
}

// entryPath returns the mirror file for an ID.
func (v *Vault) entryPath(id uint64) string {
	return filepath.Join(v.dir, fmt.Sprintf("%016x.seed", id))
}

// writeEntry persists one entry as [1 byte compression type][payload].
func (v *Vault) writeEntry(id uint64, payload []byte) error {
	data := make([]byte, 1+len(payload))
	data[0] = byte(v.compression)
	copy(data[1:], payload)

	if err := os.WriteFile(v.entryPath(id), data, 0o644); err != nil {
		return fmt.Errorf("persisting seed %016x: %w", id, err)
	}

	return nil
}

func (v *Vault) readEntry(id uint64) ([]byte, format.CompressionType, error) {
	data, err := os.ReadFile(v.entryPath(id))
	if os.IsNotExist(err) {
		return nil, 0, fmt.Errorf("%w: id %016x", errs.ErrSeedNotFound, id)
	}
	if err != nil {
		return nil, 0, fmt.Errorf("reading seed %016x: %w", id, err)
	}
	if len(data) < 1 {
		return nil, 0, fmt.Errorf("%w: empty entry file for %016x", errs.ErrTruncatedData, id)
	}

	compression := format.CompressionType(data[0])
	if !compression.IsValid() {
		return nil, 0, fmt.Errorf("%w: entry %016x compression 0x%02x", errs.ErrTruncatedData, id, data[0])
	}

	return data[1:], compression, nil
}
