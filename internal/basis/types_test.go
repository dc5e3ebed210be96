package basis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		input   string
		want    Role
		wantErr bool
	}{
		{"orbital", RoleOrbital, false},
		{"jfit", RoleJFit, false},
		{"jkfit", RoleJKFit, false},
		{"rifit", RoleRIFit, false},
		{"admmfit", RoleADMMFit, false},
		{"", "", true},
		{"Orbital", "", true},
		{"dftfit", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseRole(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRolesCoverAllValidValues(t *testing.T) {
	for _, r := range Roles() {
		assert.True(t, r.Valid(), "role %q", r)
		assert.NotEmpty(t, r.Description())
	}
}

func TestShellAccessors(t *testing.T) {
	sh := Shell{
		AngularMomentum: []int{0, 1},
		Exponents:       []float64{7.8682724, 1.8812885, 0.5442493},
		Coefficients: [][]float64{
			{-0.1193324, -0.1608542, 1.1434564},
			{0.0689991, 0.3164240, 0.7443083},
		},
	}

	assert.Equal(t, 3, sh.NPrim())
	assert.Equal(t, 2, sh.NRows())
	assert.Equal(t, 1, sh.MaxAM())
	assert.True(t, sh.IsCombined())

	single := Shell{AngularMomentum: []int{2}}
	assert.False(t, single.IsCombined())
	assert.Equal(t, 2, single.MaxAM())
}

func TestElementKeysNumericOrder(t *testing.T) {
	bs := &BasisSet{
		Name: "test",
		Elements: map[string]ElementBasis{
			"10": {},
			"2":  {},
			"1":  {},
			"6":  {},
		},
	}

	assert.Equal(t, []string{"1", "2", "6", "10"}, bs.ElementKeys())
}

func TestSortElementKeysNonNumericLast(t *testing.T) {
	keys := []string{"x", "8", "1", "a"}
	SortElementKeys(keys)
	assert.Equal(t, []string{"1", "8", "a", "x"}, keys)
}

func TestClassifyHarmonic(t *testing.T) {
	shell := func(h Harmonic) Shell {
		return Shell{
			AngularMomentum: []int{0},
			Exponents:       []float64{1.0},
			Coefficients:    [][]float64{{1.0}},
			Harmonic:        h,
		}
	}

	tests := []struct {
		name   string
		shells map[string][]Shell
		want   Harmonic
	}{
		{
			name:   "all spherical",
			shells: map[string][]Shell{"1": {shell(HarmonicSpherical)}, "6": {shell(HarmonicSpherical)}},
			want:   HarmonicSpherical,
		},
		{
			name:   "all cartesian",
			shells: map[string][]Shell{"1": {shell(HarmonicCartesian)}},
			want:   HarmonicCartesian,
		},
		{
			name:   "mixed",
			shells: map[string][]Shell{"1": {shell(HarmonicSpherical)}, "6": {shell(HarmonicCartesian)}},
			want:   HarmonicMixed,
		},
		{
			name:   "no shells",
			shells: map[string][]Shell{"1": nil},
			want:   HarmonicNone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bs := &BasisSet{Name: "test", Elements: map[string]ElementBasis{}}
			for k, shells := range tt.shells {
				bs.Elements[k] = ElementBasis{Shells: shells}
			}
			assert.Equal(t, tt.want, bs.ClassifyHarmonic())
		})
	}
}

func TestHasECP(t *testing.T) {
	el := ElementBasis{
		ECPElectrons: 10,
		ECPPotentials: []ECPPotential{{
			AngularMomentum:   []int{0},
			RExponents:        []int{2},
			GaussianExponents: []float64{10.0},
			Coefficients:      [][]float64{{50.0}},
		}},
	}
	assert.True(t, el.HasECP())
	assert.False(t, ElementBasis{}.HasECP())
}
