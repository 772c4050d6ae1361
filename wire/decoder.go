package wire

import (
	"encoding/binary"
	"fmt"

	"github.com/mautorresp/CLF-Teleport/endian"
	"github.com/mautorresp/CLF-Teleport/errs"
	"github.com/mautorresp/CLF-Teleport/format"
	"github.com/mautorresp/CLF-Teleport/seed"
)

// DecodeSeed parses a wire-encoded seed. The decoded seed is validated
// before it is returned, so wire data from untrusted sources cannot produce
// a seed the projector would reject later.
func DecodeSeed(data []byte) (seed.Seed, error) {
	if len(data) < HeaderSize {
		return seed.Seed{}, fmt.Errorf("%w: %d bytes, header needs %d", errs.ErrInvalidHeaderSize, len(data), HeaderSize)
	}

	// The flag is always little-endian; the endianness bit only governs the
	// rest of the header.
	flag := uint16(data[0]) | uint16(data[1])<<8
	if flag&MagicNumberMask != MagicSeedV1Opt {
		return seed.Seed{}, fmt.Errorf("%w: 0x%04X", errs.ErrInvalidMagicNumber, flag&MagicNumberMask)
	}

	engine := endian.GetLittleEndianEngine()
	if flag&EndiannessMask != 0 {
		engine = endian.GetBigEndianEngine()
	}

	payloadLen := engine.Uint32(data[2:6])
	payload := data[HeaderSize:]
	if uint32(len(payload)) != payloadLen { //nolint:gosec
		return seed.Seed{}, fmt.Errorf("%w: payload length %d, declared %d",
			errs.ErrTruncatedData, len(payload), payloadLen)
	}

	d := &decoder{data: payload}
	s, err := d.decodeSeed(0)
	if err != nil {
		return seed.Seed{}, err
	}
	if d.off != len(payload) {
		return seed.Seed{}, fmt.Errorf("%w: %d trailing bytes", errs.ErrTruncatedData, len(payload)-d.off)
	}
	if err := s.Validate(); err != nil {
		return seed.Seed{}, err
	}

	return s, nil
}

type decoder struct {
	data []byte
	off  int
}

func (d *decoder) readByte() (byte, error) {
	if d.off >= len(d.data) {
		return 0, fmt.Errorf("%w: at offset %d", errs.ErrTruncatedData, d.off)
	}
	b := d.data[d.off]
	d.off++

	return b, nil
}

func (d *decoder) readBytes(n int) ([]byte, error) {
	if n < 0 || d.off+n > len(d.data) {
		return nil, fmt.Errorf("%w: need %d bytes at offset %d", errs.ErrTruncatedData, n, d.off)
	}
	b := d.data[d.off : d.off+n]
	d.off += n

	return b, nil
}

func (d *decoder) readUvarint() (uint64, error) {
	v, n := binary.Uvarint(d.data[d.off:])
	if n <= 0 {
		return 0, fmt.Errorf("%w: bad uvarint at offset %d", errs.ErrTruncatedData, d.off)
	}
	d.off += n

	return v, nil
}

func (d *decoder) decodeSeed(depth int) (seed.Seed, error) {
	if depth > MaxRecursionDepth {
		return seed.Seed{}, fmt.Errorf("%w: nesting deeper than %d", errs.ErrMalformedSeed, MaxRecursionDepth)
	}

	tag, err := d.readByte()
	if err != nil {
		return seed.Seed{}, err
	}
	family := format.FamilyType(tag)
	if !family.IsValid() {
		return seed.Seed{}, fmt.Errorf("%w: 0x%02X", errs.ErrUnknownFamily, tag)
	}

	length, err := d.readUvarint()
	if err != nil {
		return seed.Seed{}, err
	}

	s := seed.Seed{Family: family, Length: int(length)} //nolint:gosec

	switch family {
	case format.FamilyConst:
		v, err := d.readByte()
		if err != nil {
			return seed.Seed{}, err
		}
		s.Const = seed.ConstParams{Value: v}
	case format.FamilyAffine:
		b, err := d.readBytes(2)
		if err != nil {
			return seed.Seed{}, err
		}
		s.Affine = seed.AffineParams{Slope: b[0], Intercept: b[1]}
	case format.FamilyPeriodic:
		patternLen, err := d.readUvarint()
		if err != nil {
			return seed.Seed{}, err
		}
		pattern, err := d.readBytes(int(patternLen)) //nolint:gosec
		if err != nil {
			return seed.Seed{}, err
		}
		s.Periodic = seed.PeriodicParams{Pattern: append([]byte(nil), pattern...)}
	case format.FamilyRadial:
		params, err := d.decodeRadial(depth)
		if err != nil {
			return seed.Seed{}, err
		}
		s.Radial = params
	}

	return s, nil
}

func (d *decoder) decodeRadial(depth int) (*seed.RadialParams, error) {
	center, err := d.readUvarint()
	if err != nil {
		return nil, err
	}
	params := &seed.RadialParams{Center: int(center)} //nolint:gosec

	mode, err := d.readByte()
	if err != nil {
		return nil, err
	}
	switch mode {
	case 1:
		b, err := d.readBytes(3)
		if err != nil {
			return nil, err
		}
		params.Meta = &seed.MetaLaw{Base: b[0], Gradient: b[1], Delta: b[2]}
	case 0:
		count, err := d.readUvarint()
		if err != nil {
			return nil, err
		}
		if count > uint64(len(d.data)) {
			return nil, fmt.Errorf("%w: ring count %d exceeds payload", errs.ErrTruncatedData, count)
		}
		if count > 0 {
			params.Rings = make([]seed.Ring, 0, count)
		}
		for k := uint64(0); k < count; k++ {
			radius, err := d.readUvarint()
			if err != nil {
				return nil, err
			}
			law, err := d.decodeSeed(depth + 1)
			if err != nil {
				return nil, err
			}
			params.Rings = append(params.Rings, seed.Ring{Radius: int(radius), Law: &law}) //nolint:gosec
		}
	default:
		return nil, fmt.Errorf("%w: radial mode 0x%02X", errs.ErrMalformedSeed, mode)
	}

	return params, nil
}
