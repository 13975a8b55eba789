package mesh_test

import (
	"errors"
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polyhedra/mesh"
)

const tol = 1e-9

// unitCube returns the axis-aligned cube with corners at ±1, wound outward.
func unitCube() *mesh.Mesh {
	return mesh.New(
		[]r3.Vector{
			{X: 1, Y: 1, Z: 1}, {X: -1, Y: 1, Z: 1}, {X: -1, Y: -1, Z: 1}, {X: 1, Y: -1, Z: 1},
			{X: 1, Y: -1, Z: -1}, {X: 1, Y: 1, Z: -1}, {X: -1, Y: 1, Z: -1}, {X: -1, Y: -1, Z: -1},
		},
		[]mesh.Polygon{
			mesh.NewPolygon(3, 2, 1, 0),
			mesh.NewPolygon(3, 0, 5, 4),
			mesh.NewPolygon(0, 1, 6, 5),
			mesh.NewPolygon(1, 2, 7, 6),
			mesh.NewPolygon(2, 3, 4, 7),
			mesh.NewPolygon(5, 6, 7, 4),
		},
	)
}

func assertVec(t *testing.T, want, got r3.Vector) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, tol, "x")
	assert.InDelta(t, want.Y, got.Y, tol, "y")
	assert.InDelta(t, want.Z, got.Z, tol, "z")
}

//----------------------------------------------------------------------------//
// Construction and validation
//----------------------------------------------------------------------------//

// TestNew_DeepCopies ensures New and Clone never alias caller slices.
func TestNew_DeepCopies(t *testing.T) {
	vs := []r3.Vector{{X: 1}, {Y: 1}, {Z: 1}}
	idx := []int{0, 1, 2}
	m := mesh.New(vs, []mesh.Polygon{{Vertices: idx, Material: 3}})

	vs[0] = r3.Vector{X: 9}
	idx[0] = 2
	assert.Equal(t, r3.Vector{X: 1}, m.Vertices[0])
	assert.Equal(t, []int{0, 1, 2}, m.Polygons[0].Vertices)
	assert.Equal(t, 3, m.Polygons[0].Material)

	c := m.Clone()
	c.Polygons[0].Vertices[1] = 0
	assert.Equal(t, 1, m.Polygons[0].Vertices[1])
}

// TestEmpty checks the failure sentinel mesh and nil-receiver safety.
func TestEmpty(t *testing.T) {
	e := mesh.Empty()
	assert.True(t, e.IsEmpty())
	assert.Zero(t, e.VertexCount())
	assert.Zero(t, e.PolygonCount())

	var nilMesh *mesh.Mesh
	assert.True(t, nilMesh.IsEmpty())
	assert.True(t, nilMesh.Clone().IsEmpty())
	assert.False(t, unitCube().IsEmpty())
}

// TestValidate_Errors drives every structural violation.
func TestValidate_Errors(t *testing.T) {
	tri := []r3.Vector{{X: 1}, {Y: 1}, {Z: 1}}
	cases := []struct {
		name string
		poly mesh.Polygon
		err  error
	}{
		{"TooFew", mesh.NewPolygon(0, 1), mesh.ErrDegeneratePolygon},
		{"Negative", mesh.NewPolygon(0, -1, 2), mesh.ErrVertexOutOfRange},
		{"TooLarge", mesh.NewPolygon(0, 1, 3), mesh.ErrVertexOutOfRange},
		{"Repeated", mesh.NewPolygon(0, 1, 1), mesh.ErrRepeatedVertex},
		{"RepeatedWrap", mesh.NewPolygon(0, 1, 2, 0), mesh.ErrRepeatedVertex},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := mesh.New(tri, []mesh.Polygon{tc.poly}).Validate()
			assert.True(t, errors.Is(err, tc.err), "got %v, want %v", err, tc.err)
		})
	}
	assert.NoError(t, unitCube().Validate())
}

//----------------------------------------------------------------------------//
// Geometry
//----------------------------------------------------------------------------//

// TestTriangleNormal_OperandOrder pins the (c-a)×(b-a) convention.
func TestTriangleNormal_OperandOrder(t *testing.T) {
	a := r3.Vector{}
	b := r3.Vector{X: 1}
	c := r3.Vector{Y: 1}
	// (c-a)×(b-a) = y × x = -z
	assertVec(t, r3.Vector{Z: -1}, mesh.TriangleNormal(a, b, c))
	assertVec(t, r3.Vector{Z: 1}, mesh.TriangleNormal(a, c, b))
}

// TestTriangleNormal_Degenerate checks collinear points yield zero, not NaN.
func TestTriangleNormal_Degenerate(t *testing.T) {
	n := mesh.TriangleNormal(r3.Vector{}, r3.Vector{X: 1}, r3.Vector{X: 2})
	assert.Equal(t, r3.Vector{}, n)
	assert.False(t, math.IsNaN(n.X))
}

// TestPolygonCenterAndNormal_Cube checks that every cube face normal points outward
// and equals its center direction.
func TestPolygonCenterAndNormal_Cube(t *testing.T) {
	m := unitCube()
	for i := 0; i < m.PolygonCount(); i++ {
		c, err := m.PolygonCenter(i)
		require.NoError(t, err)
		n, err := m.PolygonNormal(i)
		require.NoError(t, err)
		assert.InDelta(t, 1.0, c.Norm(), tol, "face %d center on axis at distance 1", i)
		assertVec(t, c, n)
	}

	centers, err := m.PolygonCenters()
	require.NoError(t, err)
	normals, err := m.PolygonNormals()
	require.NoError(t, err)
	require.Len(t, centers, 6)
	require.Len(t, normals, 6)
	assertVec(t, r3.Vector{Z: 1}, normals[0])
	assertVec(t, r3.Vector{Z: -1}, centers[5])
}

// TestPolygonCenter_Degenerate checks the zero sentinel on short polygons.
func TestPolygonCenter_Degenerate(t *testing.T) {
	m := mesh.New([]r3.Vector{{X: 1}, {Y: 1}}, []mesh.Polygon{mesh.NewPolygon(0, 1)})

	c, err := m.PolygonCenter(0)
	assert.ErrorIs(t, err, mesh.ErrDegeneratePolygon)
	assert.Equal(t, r3.Vector{}, c)

	n, err := m.PolygonNormal(0)
	assert.ErrorIs(t, err, mesh.ErrDegeneratePolygon)
	assert.Equal(t, r3.Vector{}, n)

	_, err = m.PolygonCenters()
	assert.ErrorIs(t, err, mesh.ErrDegeneratePolygon)

	_, err = m.PolygonCenter(5)
	assert.ErrorIs(t, err, mesh.ErrPolygonOutOfRange)
}

// TestPolygonNormal_ZeroArea returns the zero vector for a flat, collinear polygon.
func TestPolygonNormal_ZeroArea(t *testing.T) {
	m := mesh.New([]r3.Vector{{}, {X: 1}, {X: 2}}, []mesh.Polygon{mesh.NewPolygon(0, 1, 2)})
	n, err := m.PolygonNormal(0)
	require.NoError(t, err)
	assert.Equal(t, r3.Vector{}, n)
}

//----------------------------------------------------------------------------//
// Statistics
//----------------------------------------------------------------------------//

// TestStats_Cube verifies Euler's formula and degree bookkeeping.
func TestStats_Cube(t *testing.T) {
	m := unitCube()
	s := m.Stats()
	assert.Equal(t, 8, s.Vertices)
	assert.Equal(t, 12, s.Edges)
	assert.Equal(t, 6, s.Polygons)
	assert.Equal(t, 2, s.Euler)
	assert.Equal(t, map[int]int{4: 6}, s.FaceSizes)
	assert.Equal(t, map[int]int{3: 8}, s.Degrees)
	assert.Equal(t, 8, s.HullVertices)
	assert.Equal(t, 2, m.EulerCharacteristic())
	assert.Equal(t, []int{3, 3, 3, 3, 3, 3, 3, 3}, m.SortedDegrees())
	assert.Equal(t, []int{4, 4, 4, 4, 4, 4}, m.SortedFaceSizes())
}

// TestHullVertexCount distinguishes convex from non-convex vertex sets.
func TestHullVertexCount(t *testing.T) {
	m := unitCube()
	assert.Equal(t, 8, m.HullVertexCount())

	// Add an interior point: it must not be on the hull.
	inner := m.Clone()
	inner.Vertices = append(inner.Vertices, r3.Vector{X: 0.1, Y: 0.1, Z: 0.1})
	assert.Equal(t, 8, inner.HullVertexCount())
	assert.Equal(t, 8, inner.Stats().HullVertices)

	small := mesh.New([]r3.Vector{{X: 1}, {Y: 1}, {Z: 1}}, nil)
	assert.Equal(t, 3, small.HullVertexCount())
}

//----------------------------------------------------------------------------//
// Sphere normalization
//----------------------------------------------------------------------------//

// TestScaleToSphere_FarthestAtRadius checks the normalization contract.
func TestScaleToSphere_FarthestAtRadius(t *testing.T) {
	m := unitCube()
	m.Vertices[0] = r3.Vector{X: 2, Y: 2, Z: 2} // make one vertex the farthest

	out, err := mesh.ScaleToSphere(m, 100)
	require.NoError(t, err)

	farthest := 0.0
	for _, v := range out.Vertices {
		farthest = math.Max(farthest, v.Norm())
	}
	assert.InDelta(t, 100.0, farthest, 1e-9)
	// Input untouched, shape preserved.
	assert.Equal(t, r3.Vector{X: 2, Y: 2, Z: 2}, m.Vertices[0])
	assert.InDelta(t, out.Vertices[1].Norm()/out.Vertices[0].Norm(), m.Vertices[1].Norm()/m.Vertices[0].Norm(), 1e-12)
	assert.Equal(t, m.Polygons, out.Polygons)
}

// TestScaleToSphere_Edges covers empty, degenerate and invalid radius inputs.
func TestScaleToSphere_Edges(t *testing.T) {
	out, err := mesh.ScaleToSphere(mesh.Empty(), 10)
	require.NoError(t, err)
	assert.True(t, out.IsEmpty())

	flat := mesh.New([]r3.Vector{{}, {}, {}}, []mesh.Polygon{mesh.NewPolygon(0, 1, 2)})
	_, err = mesh.ScaleToSphere(flat, 10)
	assert.ErrorIs(t, err, mesh.ErrDegenerateMesh)

	for _, r := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		_, err = mesh.ScaleToSphere(unitCube(), r)
		assert.ErrorIs(t, err, mesh.ErrInvalidRadius, "radius %v", r)
	}
}

// TestProjectOntoSphere puts every vertex at the radius.
func TestProjectOntoSphere(t *testing.T) {
	m := unitCube()
	m.Vertices[0] = r3.Vector{X: 3, Y: 0, Z: 0}
	out, err := mesh.ProjectOntoSphere(m, 5)
	require.NoError(t, err)
	for _, v := range out.Vertices {
		assert.InDelta(t, 5.0, v.Norm(), 1e-9)
	}
	assertVec(t, r3.Vector{X: 5}, out.Vertices[0])

	_, err = mesh.ProjectOntoSphere(m, 0)
	assert.ErrorIs(t, err, mesh.ErrInvalidRadius)
}

//----------------------------------------------------------------------------//
// Rendering view
//----------------------------------------------------------------------------//

// TestFaces exposes positions, normal and material per polygon.
func TestFaces(t *testing.T) {
	m := unitCube()
	m.Polygons[2].Material = 7

	faces, err := m.Faces()
	require.NoError(t, err)
	require.Len(t, faces, 6)
	assert.Equal(t, 7, faces[2].Material)
	assert.Equal(t, 2, faces[2].Index)
	assert.Len(t, faces[2].Positions, 4)
	assertVec(t, r3.Vector{Z: 1}, faces[0].Normal)
	assert.Equal(t, m.Vertices[3], faces[0].Positions[0])

	_, err = m.Face(-1)
	assert.ErrorIs(t, err, mesh.ErrPolygonOutOfRange)
}
