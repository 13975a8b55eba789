package conway_test

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polyhedra/conway"
	"github.com/katalvlaran/polyhedra/diag"
	"github.com/katalvlaran/polyhedra/halfedge"
	"github.com/katalvlaran/polyhedra/mesh"
	"github.com/katalvlaran/polyhedra/seeds"
)

// quiet silences the default slog reporter in tests.
var quiet = conway.WithReporter(diag.Discard)

// TestGenerate_ReferenceCounts checks vertex and polygon counts of known notations.
func TestGenerate_ReferenceCounts(t *testing.T) {
	cases := []struct {
		notation string
		v, f     int
	}{
		{"I", 12, 20},
		{"D", 20, 12},
		{"dI", 20, 12},
		{"tI", 60, 32},
		{"tktI", 540, 272},
		{"C", 8, 6},
		{"dC", 6, 8},
		{"aC", 12, 14},
		{"gC", 38, 24},
		{"tgC", 120, 62},
		{"sC", 24, 38},
		{"oC", 26, 24},
		{"eC", 24, 26},
		{"mC", 26, 48},
		{"bC", 48, 26},
		{"cC", 32, 18},
		{"nC", 14, 24},
		{"zC", 24, 14},
		{"jC", 14, 12},
		{"kC", 14, 24},
		{"tC", 24, 14},
		{"T", 4, 4},
		{"dT", 4, 4},
		{"O", 6, 8},
		{"P5", 10, 7},
		{"A5", 10, 12},
		{"Y5", 6, 6},
		{"P12", 24, 14},
		{"k4P5", 15, 22},
		{"t3C", 24, 14},
		{"t4C", 8, 6},
	}
	for _, tc := range cases {
		t.Run(tc.notation, func(t *testing.T) {
			m, err := conway.Generate(tc.notation, quiet)
			require.NoError(t, err)
			assert.Equal(t, tc.v, m.VertexCount(), "vertices")
			assert.Equal(t, tc.f, m.PolygonCount(), "polygons")
			assert.Equal(t, 2, m.EulerCharacteristic())
			_, err = halfedge.Build(m)
			assert.NoError(t, err)
		})
	}
}

// TestGenerate_Subdivision covers the next (tk)²t level of the icosahedron.
func TestGenerate_Subdivision(t *testing.T) {
	if testing.Short() {
		t.Skip("large mesh")
	}
	m, err := conway.Generate("tktktI", quiet)
	require.NoError(t, err)
	assert.Equal(t, 4860, m.VertexCount())
	assert.Equal(t, 2432, m.PolygonCount())
}

// TestGenerate_Radius scales the farthest vertex onto the sphere.
func TestGenerate_Radius(t *testing.T) {
	for _, r := range []float64{conway.DefaultRadius, 1, 2.5} {
		opts := []conway.Option{quiet}
		if r != conway.DefaultRadius {
			opts = append(opts, conway.WithRadius(r))
		}
		m, err := conway.Generate("tI", opts...)
		require.NoError(t, err)

		farthest := 0.0
		for _, v := range m.Vertices {
			farthest = math.Max(farthest, v.Norm())
		}
		assert.InDelta(t, r, farthest, 1e-9*r)
	}
}

// TestGenerate_Deterministic builds the same mesh from parallel goroutines.
func TestGenerate_Deterministic(t *testing.T) {
	want, err := conway.Generate("gtI", quiet)
	require.NoError(t, err)

	const workers = 8
	got := make([]*mesh.Mesh, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			got[i], _ = conway.Generate("gtI", quiet)
		}(i)
	}
	wg.Wait()
	for i := range got {
		assert.Equal(t, want, got[i])
	}
}

// TestGenerate_Malformed returns an empty mesh and reports one input event.
func TestGenerate_Malformed(t *testing.T) {
	cases := []struct {
		notation string
		err      error
	}{
		{"", conway.ErrEmptyNotation},
		{"X", conway.ErrUnknownSeed},
		{"kX", conway.ErrUnknownSeed},
		{"xC", conway.ErrUnknownOperator},
		{"k C", conway.ErrUnknownOperator},
		{"3kC", conway.ErrDanglingArgument},
		{"42", conway.ErrDanglingArgument},
		{"P1234567890", conway.ErrArgumentOverflow},
		{"P", seeds.ErrTooFewSides},
		{"A2", seeds.ErrTooFewSides},
		{"Y70000", seeds.ErrTooManySides},
	}
	for _, tc := range cases {
		t.Run(tc.notation, func(t *testing.T) {
			rec := &diag.Recorder{}
			m, err := conway.Generate(tc.notation, conway.WithReporter(rec))
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.err)
			require.NotNil(t, m)
			assert.True(t, m.IsEmpty())

			events := rec.Events()
			require.Len(t, events, 1)
			assert.Equal(t, diag.LevelInput, events[0].Level)
			assert.Equal(t, "conway.Generate", events[0].Function)
			assert.Equal(t, err.Error(), events[0].Message)
		})
	}
}

// TestGenerate_StrictInputDoesNotPanic keeps input errors recoverable in strict mode.
func TestGenerate_StrictInputDoesNotPanic(t *testing.T) {
	rec := &diag.Recorder{}
	assert.NotPanics(t, func() {
		_, err := conway.Generate("Q", conway.WithReporter(rec), conway.WithStrict())
		assert.ErrorIs(t, err, conway.ErrUnknownSeed)
	})
	assert.Equal(t, 1, rec.Len())
}

// TestApply_FoldsOverExistingMesh applies operators without rescaling.
func TestApply_FoldsOverExistingMesh(t *testing.T) {
	cube := seeds.Cube()
	out, err := conway.Apply(cube, "dd", quiet)
	require.NoError(t, err)
	assert.Equal(t, 8, out.VertexCount())
	assert.Equal(t, cube.SortedDegrees(), out.SortedDegrees())

	same, err := conway.Apply(cube, "", quiet)
	require.NoError(t, err)
	assert.Equal(t, cube, same)
	same.Vertices[0].X = 42
	assert.NotEqual(t, 42.0, cube.Vertices[0].X)

	// Without scaling, ambo of the ±1 tetrahedron keeps unit midpoints.
	a, err := conway.Apply(seeds.Tetrahedron(), "a", quiet)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, a.Vertices[0].Norm(), 1e-12)
}

// TestApply_IntegrityViolation reports open meshes at integrity level.
func TestApply_IntegrityViolation(t *testing.T) {
	tet := seeds.Tetrahedron()
	open := mesh.New(tet.Vertices, tet.Polygons[:3])

	rec := &diag.Recorder{}
	out, err := conway.Apply(open, "d", conway.WithReporter(rec))
	assert.ErrorIs(t, err, halfedge.ErrOpenEdge)
	assert.True(t, out.IsEmpty())
	require.Equal(t, 1, rec.Len())
	assert.Equal(t, diag.LevelIntegrity, rec.Events()[0].Level)
	assert.Equal(t, "conway.Apply", rec.Events()[0].Function)

	rec.Reset()
	assert.Panics(t, func() {
		_, _ = conway.Apply(open, "d", conway.WithReporter(rec), conway.WithStrict())
	})
	assert.Equal(t, 1, rec.Len(), "event is recorded before the panic")
}

// TestApply_UnknownOperator rejects the whole string before running anything.
func TestApply_UnknownOperator(t *testing.T) {
	rec := &diag.Recorder{}
	out, err := conway.Apply(seeds.Cube(), "dQ", conway.WithReporter(rec))
	assert.ErrorIs(t, err, conway.ErrUnknownOperator)
	assert.True(t, out.IsEmpty())
	assert.Equal(t, diag.LevelInput, rec.Events()[0].Level)
}

// TestOptions_Offsets routes the configured offsets to k and c.
func TestOptions_Offsets(t *testing.T) {
	flat, err := conway.Apply(seeds.Cube(), "k", quiet, conway.WithKisOffset(0))
	require.NoError(t, err)
	assert.InDelta(t, 0.707, flat.Vertices[8].Z, 1e-12)

	def, err := conway.Apply(seeds.Cube(), "k", quiet)
	require.NoError(t, err)
	assert.InDelta(t, 0.807, def.Vertices[8].Z, 1e-12)

	wide, err := conway.Apply(seeds.Cube(), "c", quiet, conway.WithChamferOffset(1))
	require.NoError(t, err)
	assert.InDelta(t, 2*0.707, wide.Vertices[0].X, 1e-12)
}

// TestOptions_Panics rejects meaningless option values at construction.
func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { conway.WithRadius(0) })
	assert.Panics(t, func() { conway.WithRadius(-1) })
	assert.Panics(t, func() { conway.WithRadius(math.NaN()) })
	assert.Panics(t, func() { conway.WithRadius(math.Inf(1)) })
	assert.Panics(t, func() { conway.WithReporter(nil) })
	assert.Panics(t, func() { conway.WithKisOffset(math.Inf(-1)) })
	assert.Panics(t, func() { conway.WithChamferOffset(-1) })
	assert.Panics(t, func() { conway.WithChamferOffset(math.NaN()) })
	assert.NotPanics(t, func() { conway.WithKisOffset(-0.5) })
}

// TestClassify maps error classes onto levels.
func TestClassify(t *testing.T) {
	assert.Equal(t, diag.LevelInput, conway.Classify(conway.ErrUnknownOperator))
	assert.Equal(t, diag.LevelInput, conway.Classify(seeds.ErrTooManySides))
	assert.Equal(t, diag.LevelDegeneracy, conway.Classify(mesh.ErrDegeneratePolygon))
	assert.Equal(t, diag.LevelDegeneracy, conway.Classify(mesh.ErrDegenerateMesh))
	assert.Equal(t, diag.LevelIntegrity, conway.Classify(halfedge.ErrNonManifold))
	assert.Equal(t, diag.LevelIntegrity, conway.Classify(&halfedge.ManifoldError{Kind: halfedge.KindOpenEdge}))
}
