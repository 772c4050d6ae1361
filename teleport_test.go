package teleport

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mautorresp/CLF-Teleport/format"
	"github.com/mautorresp/CLF-Teleport/sampler"
)

func TestRecognizeProjectRoundTrip_Const(t *testing.T) {
	data := make([]byte, 1000)
	for i := range data {
		data[i] = 0x5A
	}

	s := Recognize(data)
	require.Equal(t, format.FamilyConst, s.Family)

	got, err := ProjectRange(s, 0, len(data))
	require.NoError(t, err)
	require.Equal(t, data, got)
}

func TestRecognizeProjectRoundTrip_Affine(t *testing.T) {
	data := make([]byte, 777)
	for i := range data {
		data[i] = byte(3*i + 11)
	}

	s := Recognize(data)
	require.Equal(t, format.FamilyAffine, s.Family)

	got, err := ProjectRange(s, 0, len(data))
	require.NoError(t, err)
	require.Equal(t, data, got)
}

func TestRecognizeProjectRoundTrip_Periodic(t *testing.T) {
	pattern := []byte{9, 8, 7, 6, 5}
	data := make([]byte, 640)
	for i := range data {
		data[i] = pattern[i%len(pattern)]
	}

	s := Recognize(data)
	require.Equal(t, format.FamilyPeriodic, s.Family)

	got, err := ProjectRange(s, 0, len(data))
	require.NoError(t, err)
	require.Equal(t, data, got)
}

func TestRecognize_RandomDataIsRadial(t *testing.T) {
	rng := rand.New(rand.NewSource(29))
	data := make([]byte, 10*1024*1024)
	rng.Read(data)

	s := Recognize(data)
	require.Equal(t, format.FamilyRadial, s.Family)
	require.Equal(t, len(data), s.Length)

	// Exact at every strategic position, regardless of input entropy.
	for _, pos := range sampler.Positions(len(data)) {
		b, err := Project(s, pos)
		require.NoError(t, err)
		require.Equal(t, data[pos], b, "position %d", pos)
	}
}

func TestValidate_CleanReport(t *testing.T) {
	rng := rand.New(rand.NewSource(31))
	data := make([]byte, 50_000)
	rng.Read(data)

	s := Recognize(data)
	report, err := Validate(data, s)
	require.NoError(t, err)

	require.Equal(t, byte(0), report.GridResidual)
	require.True(t, report.HashMatch)
	require.Equal(t, sampler.Positions(len(data)), report.Positions)
}

func TestValidate_DetectsTampering(t *testing.T) {
	data := make([]byte, 4096)
	for i := range data {
		data[i] = byte(2 * i)
	}

	s := Recognize(data)
	tampered := make([]byte, len(data))
	copy(tampered, data)
	tampered[1] ^= 0xFF

	report, err := Validate(tampered, s)
	require.NoError(t, err)
	require.False(t, report.HashMatch)
}

func TestWireRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(37))
	data := make([]byte, 8192)
	rng.Read(data)

	s := Recognize(data)
	encoded, err := EncodeSeed(s)
	require.NoError(t, err)
	require.Less(t, len(encoded), len(data))

	decoded, err := DecodeSeed(encoded)
	require.NoError(t, err)
	require.Equal(t, s, decoded)

	// Decoded seeds project identically.
	for _, pos := range sampler.Positions(len(data)) {
		want, err := Project(s, pos)
		require.NoError(t, err)
		got, err := Project(decoded, pos)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
}

func TestProject_OutOfRange(t *testing.T) {
	s := Recognize([]byte{1, 2, 3})

	_, err := Project(s, 3)
	require.Error(t, err)
	_, err = Project(s, -1)
	require.Error(t, err)
}
