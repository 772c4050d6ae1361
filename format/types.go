// Package format defines the closed type vocabularies shared by the codec:
// the generator family tags and the compression algorithms the vault accepts.
package format

type (
	FamilyType      uint8
	CompressionType uint8
)

const (
	FamilyConst    FamilyType = 0x1 // FamilyConst represents the constant law S[i] = c.
	FamilyAffine   FamilyType = 0x2 // FamilyAffine represents the affine law S[i] = (s0 + i*delta) mod 256.
	FamilyPeriodic FamilyType = 0x3 // FamilyPeriodic represents the periodic law S[i] = pattern[i mod k].
	FamilyRadial   FamilyType = 0x4 // FamilyRadial represents the radial composite law S[i] = R[|i - center|].

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

func (f FamilyType) String() string {
	switch f {
	case FamilyConst:
		return "Const"
	case FamilyAffine:
		return "Affine"
	case FamilyPeriodic:
		return "Periodic"
	case FamilyRadial:
		return "Radial"
	default:
		return "Unknown"
	}
}

// IsValid reports whether f is one of the four closed family tags.
// The vocabulary is fixed; there is no runtime extension mechanism.
func (f FamilyType) IsValid() bool {
	return f >= FamilyConst && f <= FamilyRadial
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// IsValid reports whether c is a supported compression type.
func (c CompressionType) IsValid() bool {
	return c >= CompressionNone && c <= CompressionLZ4
}
