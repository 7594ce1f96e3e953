package optimise_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/certmin/interval"
	"github.com/katalvlaran/certmin/optimise"
	"github.com/katalvlaran/certmin/polynomial"
)

func TestLoadConfig_EmptyDocument(t *testing.T) {
	cfg, err := optimise.LoadConfig(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, optimise.DefaultConfig(), cfg)
}

func TestLoadConfig_Overlay(t *testing.T) {
	doc := `
workers: 4
boundary: corners
solver:
  max_boxes: 500
`
	cfg, err := optimise.LoadConfig(strings.NewReader(doc))
	require.NoError(t, err)

	want := optimise.DefaultConfig()
	want.Workers = 4
	want.Boundary = "corners"
	want.Solver.MaxBoxes = 500
	assert.Equal(t, want, cfg)
}

func TestLoadConfig_UnknownField(t *testing.T) {
	_, err := optimise.LoadConfig(strings.NewReader("wrokers: 4\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "wrokers")
}

// TestLoadConfig_AllViolations: every invalid field shows up in one error.
func TestLoadConfig_AllViolations(t *testing.T) {
	doc := `
workers: 0
boundary: sides
solver:
  tolerance: -1
`
	_, err := optimise.LoadConfig(strings.NewReader(doc))
	require.Error(t, err)
	assert.ErrorIs(t, err, optimise.ErrInvalidOption)
	for _, frag := range []string{"workers", "sides", "Tolerance"} {
		assert.Contains(t, err.Error(), frag)
	}
}

func TestConfig_OptionsDriveMinimise(t *testing.T) {
	cfg := optimise.DefaultConfig()
	cfg.Workers = 3
	cfg.Boundary = "none"
	opts, err := cfg.Options()
	require.NoError(t, err)

	// x + y on [0,1]²: no interior stationary point, and the boundary is off
	f := polynomial.MustNew(2, term(1, 1, 1, 0), term(1, 1, 0, 1))
	res, err := optimise.Minimise(f, interval.Vector{iv(0, 1), iv(0, 1)}, opts...)
	require.NoError(t, err)
	assert.Equal(t, optimise.NoRealSolution, res.Status)
}

func TestParseBoundary(t *testing.T) {
	for _, b := range []optimise.BoundaryPolicy{optimise.BoundaryFaces, optimise.BoundaryCorners, optimise.BoundaryNone} {
		got, err := optimise.ParseBoundary(b.String())
		require.NoError(t, err)
		assert.Equal(t, b, got)
	}
	_, err := optimise.ParseBoundary("edges")
	assert.ErrorIs(t, err, optimise.ErrInvalidOption)
}

// TestDefaultConfigMatchesDefaults: the options derived from DefaultConfig
// behave exactly like passing no options.
func TestDefaultConfigMatchesDefaults(t *testing.T) {
	opts, err := optimise.DefaultConfig().Options()
	require.NoError(t, err)

	f := polynomial.MustNew(2, term(1, 1, 4, 0), term(1, 1, 0, 4), term(-4, 1, 1, 1))
	d := interval.Vector{iv(-2, 2), iv(-2, 2)}
	want, wantRep, err := optimise.MinimiseAll(f, d)
	require.NoError(t, err)
	got, gotRep, err := optimise.MinimiseAll(f, d, opts...)
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, wantRep, gotRep)
}
