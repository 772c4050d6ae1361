package codec

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mautorresp/CLF-Teleport/errs"
	"github.com/mautorresp/CLF-Teleport/format"
	"github.com/mautorresp/CLF-Teleport/sampler"
	"github.com/mautorresp/CLF-Teleport/seed"
)

func TestProject_SimpleFamilies(t *testing.T) {
	tests := []struct {
		name string
		seed seed.Seed
		pos  int
		want byte
	}{
		{"const", seed.NewConst(65, 5), 3, 65},
		{"affine", seed.NewAffine(2, 0, 50), 40, 80},
		{"affine wrap", seed.NewAffine(255, 10, 300), 11, 255}, // 10 - 11 mod 256
		{"periodic", seed.NewPeriodic([]byte{1, 2, 3}, 10), 9, 1},
		{"periodic mid", seed.NewPeriodic([]byte{1, 2, 3}, 10), 5, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Project(tt.seed, tt.pos)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestProject_OutOfRange(t *testing.T) {
	s := seed.NewConst(1, 5)

	_, err := Project(s, 5)
	require.ErrorIs(t, err, errs.ErrOutOfRange)
	_, err = Project(s, -1)
	require.ErrorIs(t, err, errs.ErrOutOfRange)
}

func TestProject_MalformedSeed(t *testing.T) {
	s := seed.Seed{Family: format.FamilyPeriodic, Length: 10}

	_, err := Project(s, 0)
	require.ErrorIs(t, err, errs.ErrMalformedSeed)
}

func TestProject_EmptyDomain(t *testing.T) {
	s := seed.NewRadial(&seed.RadialParams{}, 0)

	_, err := Project(s, 0)
	require.ErrorIs(t, err, errs.ErrOutOfRange)

	out, err := ProjectRange(s, 0, 0)
	require.NoError(t, err)
	require.Empty(t, out)
}

func TestProjectRange_Bounds(t *testing.T) {
	s := seed.NewAffine(1, 0, 10)

	out, err := ProjectRange(s, 2, 6)
	require.NoError(t, err)
	require.Equal(t, []byte{2, 3, 4, 5}, out)

	_, err = ProjectRange(s, -1, 5)
	require.ErrorIs(t, err, errs.ErrOutOfRange)
	_, err = ProjectRange(s, 4, 2)
	require.ErrorIs(t, err, errs.ErrOutOfRange)
	_, err = ProjectRange(s, 0, 11)
	require.ErrorIs(t, err, errs.ErrOutOfRange)
}

func TestProject_GridExactness(t *testing.T) {
	inputs := [][]byte{
		radialAffineData(2001),
		randomData(100000, 11),
		randomData(257, 12),
		{9},
	}
	for _, data := range inputs {
		s := Recognize(data)
		for _, i := range sampler.Positions(len(data)) {
			got, err := Project(s, i)
			require.NoError(t, err)
			require.Equal(t, data[i], got, "n=%d position %d", len(data), i)
		}
	}
}

func TestProject_ContinuationIsDeterministic(t *testing.T) {
	data := randomData(100000, 4)
	s := Recognize(data)
	require.Equal(t, format.FamilyRadial, s.Family)
	require.NotEmpty(t, s.Radial.Rings)

	// Pick a position whose radius is not a stored ring.
	stored := make(map[int]struct{}, len(s.Radial.Rings))
	for _, ring := range s.Radial.Rings {
		stored[ring.Radius] = struct{}{}
	}
	center := s.Radial.Center
	pos := -1
	for i := 0; i < len(data); i++ {
		r := i - center
		if r < 0 {
			r = -r
		}
		if _, ok := stored[r]; !ok {
			pos = i
			break
		}
	}
	require.GreaterOrEqual(t, pos, 0)

	first, err := Project(s, pos)
	require.NoError(t, err)
	second, err := Project(s, pos)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestProject_ContinuationIsNotReconstruction(t *testing.T) {
	// A fixed-size seed cannot invert random data everywhere; off-grid
	// positions get a deterministic continuation byte, and full-string
	// equality must not hold.
	data := randomData(1<<20, 5)
	s := Recognize(data)
	require.Equal(t, format.FamilyRadial, s.Family)

	out, err := ProjectRange(s, 0, len(data))
	require.NoError(t, err)
	require.NotEqual(t, data, out)
}

func TestProject_MetaLawExactEverywhere(t *testing.T) {
	data := radialAffineData(2001)
	s := Recognize(data)
	require.Equal(t, format.FamilyRadial, s.Family)
	require.NotNil(t, s.Radial.Meta)

	out, err := ProjectRange(s, 0, len(data))
	require.NoError(t, err)
	require.Equal(t, data, out)
}

func TestProject_ContinuationTieBreak(t *testing.T) {
	// Rings at radii 2 and 6 with different constant laws; radius 4 is
	// equidistant and must use the smaller anchor.
	left := seed.NewConst(10, 2)
	right := seed.NewConst(20, 2)
	s := seed.NewRadial(&seed.RadialParams{
		Center: 10,
		Rings: []seed.Ring{
			{Radius: 2, Law: &left},
			{Radius: 6, Law: &right},
		},
	}, 21)

	got, err := Project(s, 14) // radius 4
	require.NoError(t, err)
	require.Equal(t, byte(10), got)

	got, err = Project(s, 15) // radius 5, nearer to 6
	require.NoError(t, err)
	require.Equal(t, byte(20), got)
}

func TestProject_ConcurrentReaders(t *testing.T) {
	data := randomData(50000, 6)
	s := Recognize(data)
	positions := sampler.Positions(len(data))

	done := make(chan struct{})
	for w := 0; w < 4; w++ {
		go func() {
			defer func() { done <- struct{}{} }()
			for _, i := range positions {
				got, err := Project(s, i)
				if err != nil || got != data[i] {
					t.Errorf("position %d: got %d err %v", i, got, err)
					return
				}
			}
		}()
	}
	for w := 0; w < 4; w++ {
		<-done
	}
}
