package codec

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mautorresp/CLF-Teleport/format"
	"github.com/mautorresp/CLF-Teleport/sampler"
)

func TestRecognize_Totality(t *testing.T) {
	inputs := [][]byte{
		nil,
		{},
		{0},
		{255},
		{1, 2},
		bytes.Repeat([]byte{0xAB}, 3),
		randomData(10, 21),
		randomData(1<<16, 22),
	}
	for _, data := range inputs {
		s := Recognize(data)
		require.NoError(t, s.Validate(), "n=%d", len(data))
		require.Equal(t, len(data), s.Length)
	}
}

func TestRecognize_Empty(t *testing.T) {
	s := Recognize(nil)
	require.Equal(t, format.FamilyRadial, s.Family)
	require.Equal(t, 0, s.Length)

	out, err := ProjectRange(s, 0, 0)
	require.NoError(t, err)
	require.Empty(t, out)
}

func TestRecognize_FamilyPriority(t *testing.T) {
	// Identical bytes always yield Const.
	s := Recognize(bytes.Repeat([]byte{200}, 1000))
	require.Equal(t, format.FamilyConst, s.Family)

	// An exact affine progression always yields Affine, never Radial.
	data := make([]byte, 1000)
	for i := range data {
		data[i] = byte((3 + 5*i) % 256)
	}
	s = Recognize(data)
	require.Equal(t, format.FamilyAffine, s.Family)
}

func TestRecognize_DoesNotAliasInput(t *testing.T) {
	data := []byte{4, 4, 4, 4}
	s := Recognize(data)
	data[0] = 99

	got, err := Project(s, 0)
	require.NoError(t, err)
	require.Equal(t, byte(4), got)
}

func TestRecognize_IdempotentOnGrid(t *testing.T) {
	inputs := [][]byte{
		bytes.Repeat([]byte{65}, 5),
		{1, 2, 3, 1, 2, 3, 1, 2, 3, 1},
		radialAffineData(2001),
	}
	for _, data := range inputs {
		first := Recognize(data)
		replayed, err := ProjectRange(first, 0, len(data))
		require.NoError(t, err)

		second := Recognize(replayed)
		require.Equal(t, first.Family, second.Family)
		for _, i := range sampler.Positions(len(data)) {
			a, err := Project(first, i)
			require.NoError(t, err)
			b, err := Project(second, i)
			require.NoError(t, err)
			require.Equal(t, a, b, "position %d", i)
		}
	}
}

func TestRecognize_ScenarioTable(t *testing.T) {
	affine50 := make([]byte, 50)
	for i := range affine50 {
		affine50[i] = byte(i * 2 % 256)
	}

	tests := []struct {
		name       string
		data       []byte
		wantFamily format.FamilyType
		pos        int
		want       byte
	}{
		{"five A bytes", []byte{65, 65, 65, 65, 65}, format.FamilyConst, 3, 65},
		{"doubling ramp", affine50, format.FamilyAffine, 40, 80},
		{"period three", []byte{1, 2, 3, 1, 2, 3, 1, 2, 3, 1}, format.FamilyPeriodic, 9, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Recognize(tt.data)
			require.Equal(t, tt.wantFamily, s.Family)

			got, err := Project(s, tt.pos)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}
