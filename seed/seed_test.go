package seed

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mautorresp/CLF-Teleport/errs"
	"github.com/mautorresp/CLF-Teleport/format"
)

func constLaw(value byte, n int) *Seed {
	s := NewConst(value, n)
	return &s
}

func TestValidate_SimpleFamilies(t *testing.T) {
	tests := []struct {
		name string
		seed Seed
	}{
		{"const", NewConst(65, 5)},
		{"affine", NewAffine(2, 0, 50)},
		{"periodic", NewPeriodic([]byte{1, 2, 3}, 10)},
		{"const empty", NewConst(0, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, tt.seed.Validate())
		})
	}
}

func TestValidate_Malformed(t *testing.T) {
	tests := []struct {
		name string
		seed Seed
	}{
		{"unknown family", Seed{Family: 0x7F, Length: 3}},
		{"negative length", Seed{Family: format.FamilyConst, Length: -1}},
		{"empty pattern", Seed{Family: format.FamilyPeriodic, Length: 10}},
		{"radial without params", Seed{Family: format.FamilyRadial, Length: 10}},
		{"radial center out of range", NewRadial(&RadialParams{Center: 10}, 10)},
		{"radial no rings no meta", NewRadial(&RadialParams{Center: 5}, 10)},
		{"radial meta plus rings", NewRadial(&RadialParams{
			Center: 5,
			Meta:   &MetaLaw{},
			Rings:  []Ring{{Radius: 0, Law: constLaw(1, 1)}},
		}, 10)},
		{"ring radii unsorted", NewRadial(&RadialParams{
			Center: 5,
			Rings: []Ring{
				{Radius: 2, Law: constLaw(1, 2)},
				{Radius: 1, Law: constLaw(1, 2)},
			},
		}, 10)},
		{"ring without law", NewRadial(&RadialParams{
			Center: 5,
			Rings:  []Ring{{Radius: 0}},
		}, 10)},
		{"ring law length 3", NewRadial(&RadialParams{
			Center: 5,
			Rings:  []Ring{{Radius: 0, Law: constLaw(1, 3)}},
		}, 10)},
		{"zero length with rings", NewRadial(&RadialParams{
			Rings: []Ring{{Radius: 0, Law: constLaw(1, 1)}},
		}, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.ErrorIs(t, tt.seed.Validate(), errs.ErrMalformedSeed)
		})
	}
}

func TestValidate_EmptyRadial(t *testing.T) {
	s := NewRadial(&RadialParams{}, 0)
	require.NoError(t, s.Validate())
}

func TestNewPeriodic_CopiesPattern(t *testing.T) {
	pattern := []byte{1, 2, 3}
	s := NewPeriodic(pattern, 9)
	pattern[0] = 99
	require.Equal(t, byte(1), s.Periodic.Pattern[0])
}

func TestRingAt(t *testing.T) {
	p := &RadialParams{
		Center: 50,
		Rings: []Ring{
			{Radius: 0, Law: constLaw(10, 1)},
			{Radius: 3, Law: constLaw(11, 2)},
			{Radius: 7, Law: constLaw(12, 2)},
		},
	}

	require.Equal(t, 3, p.RingAt(3).Radius)
	require.Nil(t, p.RingAt(4))
	require.Equal(t, 0, p.RingAt(0).Radius)
	require.Nil(t, p.RingAt(100))
}

func TestNearestRing_TiePrefersSmallerRadius(t *testing.T) {
	p := &RadialParams{
		Center: 50,
		Rings: []Ring{
			{Radius: 2, Law: constLaw(1, 2)},
			{Radius: 6, Law: constLaw(2, 2)},
		},
	}

	// Radius 4 is equidistant from 2 and 6; the smaller anchor wins.
	require.Equal(t, 2, p.NearestRing(4).Radius)
	require.Equal(t, 2, p.NearestRing(0).Radius)
	require.Equal(t, 6, p.NearestRing(5).Radius)
	require.Equal(t, 6, p.NearestRing(100).Radius)
	require.Equal(t, 2, p.NearestRing(2).Radius)
}

func TestNearestRing_Empty(t *testing.T) {
	p := &RadialParams{}
	require.Nil(t, p.NearestRing(3))
}

func TestSeedString(t *testing.T) {
	require.Equal(t, "Const{value=65, n=5}", NewConst(65, 5).String())
	require.Equal(t, "Affine{slope=2, intercept=0, n=50}", NewAffine(2, 0, 50).String())
	require.Equal(t, "Periodic{period=3, n=10}", NewPeriodic([]byte{1, 2, 3}, 10).String())
}
