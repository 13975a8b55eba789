package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polyhedra/conway"
)

// TestRun_Stats prints the truncated icosahedron summary.
func TestRun_Stats(t *testing.T) {
	var stdout, stderr bytes.Buffer
	require.NoError(t, run([]string{"-n", "tI"}, &stdout, &stderr))
	assert.Equal(t, strings.Join([]string{
		"notation  tI",
		"vertices  60",
		"edges     90",
		"polygons  32",
		"euler     2",
		"faces     5:12 6:20",
		"degrees   3:60",
		"hull      60/60",
		"shells    1",
		"",
	}, "\n"), stdout.String())
	assert.Empty(t, stderr.String())
}

// TestRun_WritesOBJ writes the file and logs its path.
func TestRun_WritesOBJ(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cube.obj")
	var stdout, stderr bytes.Buffer
	require.NoError(t, run([]string{"-n", "C", "-r", "1", "-o", path}, &stdout, &stderr))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 8, strings.Count(string(data), "\nv "))
	assert.Equal(t, 6, strings.Count(string(data), "\nf "))
	assert.Contains(t, stderr.String(), "wrote obj")
}

// TestRun_Pick prints the polygon at a point on the top face of the cube.
func TestRun_Pick(t *testing.T) {
	var stdout, stderr bytes.Buffer
	require.NoError(t, run([]string{"-n", "C", "-r", "1", "-at", "0, 0, 0.5774"}, &stdout, &stderr))
	assert.Contains(t, stdout.String(), "at        0\nring      1 2 3 4\n")
}

// TestRun_Errors rejects bad flags and notations.
func TestRun_Errors(t *testing.T) {
	cases := []struct {
		name string
		args []string
		err  error
	}{
		{"bad notation", []string{"-n", "xI"}, conway.ErrUnknownOperator},
		{"zero radius", []string{"-r", "0"}, errUsage},
		{"chamfer", []string{"-chamfer", "-1"}, errUsage},
		{"point arity", []string{"-at", "1,2"}, errUsage},
		{"point value", []string{"-at", "1,2,z"}, errUsage},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			err := run(tc.args, &stdout, &stderr)
			assert.ErrorIs(t, err, tc.err)
			assert.Empty(t, stdout.String())
		})
	}
}

// TestRun_VerboseLogs emits the debug line.
func TestRun_VerboseLogs(t *testing.T) {
	var stdout, stderr bytes.Buffer
	require.NoError(t, run([]string{"-v", "-n", "T"}, &stdout, &stderr))
	assert.Contains(t, stderr.String(), "generating")
	assert.Contains(t, stderr.String(), "notation=T")
}
