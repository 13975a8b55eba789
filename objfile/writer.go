// SPDX-License-Identifier: MIT
// Package: polyhedra/objfile
//
// writer.go — Wavefront OBJ encoder.

package objfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/golang/geo/r3"

	"github.com/katalvlaran/polyhedra/mesh"
)

const (
	methodWrite     = "Write"
	methodWriteFile = "WriteFile"

	// precision is the number of decimals printed per coordinate.
	precision = 6
)

// Write encodes m as an OBJ object called name.
// m is validated first; nothing is written for an invalid mesh.
func Write(w io.Writer, m *mesh.Mesh, name string) error {
	if err := m.Validate(); err != nil {
		return fmt.Errorf("%s: %w", methodWrite, err)
	}
	faces, err := m.Faces()
	if err != nil {
		return fmt.Errorf("%s: %w", methodWrite, err)
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# polyhedra %s: %d vertices, %d polygons\n", name, m.VertexCount(), m.PolygonCount())
	fmt.Fprintf(bw, "o %s\n", name)
	for _, v := range m.Vertices {
		writeVector(bw, "v", v)
	}
	for _, f := range faces {
		writeVector(bw, "vn", f.Normal)
	}

	material := -1
	for _, f := range faces {
		if f.Material != material {
			material = f.Material
			fmt.Fprintf(bw, "usemtl material%d\n", material)
		}
		bw.WriteString("f")
		for _, v := range m.Polygons[f.Index].Vertices {
			fmt.Fprintf(bw, " %d//%d", v+1, f.Index+1)
		}
		bw.WriteByte('\n')
	}

	if err = bw.Flush(); err != nil {
		return fmt.Errorf("%s: %w", methodWrite, err)
	}
	return nil
}

// WriteFile creates (or truncates) path and writes m into it.
func WriteFile(path string, m *mesh.Mesh, name string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%s: %w", methodWriteFile, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%s: %w", methodWriteFile, cerr)
		}
	}()

	return Write(f, m, name)
}

// writeVector prints "<tag> x y z".
func writeVector(bw *bufio.Writer, tag string, v r3.Vector) {
	bw.WriteString(tag)
	for _, c := range [3]float64{v.X, v.Y, v.Z} {
		if c == 0 {
			c = 0 // drop the sign of -0
		}
		bw.WriteByte(' ')
		bw.WriteString(strconv.FormatFloat(c, 'f', precision, 64))
	}
	bw.WriteByte('\n')
}
