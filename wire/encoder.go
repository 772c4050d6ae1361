// Package wire implements the compact binary encoding of seeds: a fixed
// header (magic number, endianness flag, payload length) followed by a
// recursive tag+varint parameter encoding. Every field of the seed data
// model round-trips losslessly, including nested ring maps.
//
// The layout of each encoded seed is:
//
//	1 byte   family tag
//	uvarint  length n
//	params   family-specific:
//	           Const     1 byte value
//	           Affine    1 byte slope, 1 byte intercept
//	           Periodic  uvarint pattern length, pattern bytes
//	           Radial    uvarint center, 1 byte mode,
//	                     mode 1: 3 bytes meta (base, gradient, delta)
//	                     mode 0: uvarint ring count, then per ring a uvarint
//	                             radius and a recursively encoded law
//
// Varints are byte-order independent; the header's endianness bit governs
// the fixed-width payload length field. The flag itself is always stored
// little-endian so a decoder can read it before choosing an engine.
package wire

import (
	"encoding/binary"
	"fmt"

	"github.com/mautorresp/CLF-Teleport/endian"
	"github.com/mautorresp/CLF-Teleport/format"
	"github.com/mautorresp/CLF-Teleport/internal/pool"
	"github.com/mautorresp/CLF-Teleport/seed"
)

// EncodeSeed serializes s into the canonical little-endian wire form.
// The seed is validated first; a malformed seed is never encoded.
func EncodeSeed(s seed.Seed) ([]byte, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	engine := endian.GetLittleEndianEngine()
	buf := pool.GetSeedBuffer()
	defer pool.PutSeedBuffer(buf)

	// Header placeholder; the payload length lands after encoding.
	buf.B = append(buf.B, 0, 0, 0, 0, 0, 0)

	encodeInto(buf, &s)

	flag := uint16(MagicSeedV1Opt)
	buf.B[0] = byte(flag)
	buf.B[1] = byte(flag >> 8)
	payloadLen := uint32(buf.Len() - HeaderSize) //nolint:gosec
	engine.PutUint32(buf.B[2:6], payloadLen)

	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())

	return out, nil
}

func encodeInto(buf *pool.ByteBuffer, s *seed.Seed) {
	buf.B = append(buf.B, byte(s.Family))
	buf.B = binary.AppendUvarint(buf.B, uint64(s.Length)) //nolint:gosec

	switch s.Family {
	case format.FamilyConst:
		buf.B = append(buf.B, s.Const.Value)
	case format.FamilyAffine:
		buf.B = append(buf.B, s.Affine.Slope, s.Affine.Intercept)
	case format.FamilyPeriodic:
		buf.B = binary.AppendUvarint(buf.B, uint64(len(s.Periodic.Pattern)))
		buf.B = append(buf.B, s.Periodic.Pattern...)
	case format.FamilyRadial:
		encodeRadial(buf, s.Radial)
	}
}

func encodeRadial(buf *pool.ByteBuffer, p *seed.RadialParams) {
	buf.B = binary.AppendUvarint(buf.B, uint64(p.Center)) //nolint:gosec

	if p.Meta != nil {
		buf.B = append(buf.B, 1, p.Meta.Base, p.Meta.Gradient, p.Meta.Delta)

		return
	}

	buf.B = append(buf.B, 0)
	buf.B = binary.AppendUvarint(buf.B, uint64(len(p.Rings)))
	for i := range p.Rings {
		ring := &p.Rings[i]
		buf.B = binary.AppendUvarint(buf.B, uint64(ring.Radius)) //nolint:gosec
		encodeInto(buf, ring.Law)
	}
}

// EncodedSize returns the exact wire size of s without encoding it.
func EncodedSize(s seed.Seed) int {
	return HeaderSize + seedSize(&s)
}

func seedSize(s *seed.Seed) int {
	size := 1 + uvarintLen(uint64(s.Length)) //nolint:gosec

	switch s.Family {
	case format.FamilyConst:
		size++
	case format.FamilyAffine:
		size += 2
	case format.FamilyPeriodic:
		size += uvarintLen(uint64(len(s.Periodic.Pattern))) + len(s.Periodic.Pattern)
	case format.FamilyRadial:
		p := s.Radial
		size += uvarintLen(uint64(p.Center)) + 1 //nolint:gosec
		if p.Meta != nil {
			size += 3
		} else {
			size += uvarintLen(uint64(len(p.Rings)))
			for i := range p.Rings {
				size += uvarintLen(uint64(p.Rings[i].Radius)) //nolint:gosec
				size += seedSize(p.Rings[i].Law)
			}
		}
	}

	return size
}

func uvarintLen(v uint64) int {
	n := 1
	for v >= 0x80 {
		v >>= 7
		n++
	}

	return n
}

// DescribeFlag renders a header flag for diagnostics.
func DescribeFlag(flag uint16) string {
	order := "little-endian"
	if flag&EndiannessMask != 0 {
		order = "big-endian"
	}

	return fmt.Sprintf("magic=0x%04X %s", flag&MagicNumberMask, order)
}
