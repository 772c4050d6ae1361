package wire

const (
	// Bit masks for the header flag field.
	EndiannessMask   = 0x0001 // endianness bit (bit 0): 0=little, 1=big
	ReservedBitsMask = 0x000E // reserved bits (bits 1-3), must be zero
	MagicNumberMask  = 0xFFF0 // magic number (bits 4-15)

	// MagicSeedV1Opt is the version 1 magic number for the seed wire format.
	MagicSeedV1Opt = 0x5D10

	// HeaderSize is the fixed header size in bytes: a uint16 flag followed
	// by a uint32 payload length.
	HeaderSize = 6

	// MaxRecursionDepth bounds nested seed decoding. Ring laws nest one
	// level in practice; the cap rejects maliciously deep wire data before
	// it exhausts the stack.
	MaxRecursionDepth = 64
)
