// Package main - polyhedra command-line generator.
//
// Context & Motivation:
//
//	Turns a Conway notation string into a polyhedron, prints its
//	combinatorial statistics and optionally writes it as a Wavefront OBJ
//	file that any modelling tool can open.
//
// Usage:
//
//	polyhedra -n tktI -r 1 -o golfball.obj
//	polyhedra -n cC -at 0,0,100
//
// Flags:
//
//	-n        notation (default "tI")
//	-r        circumscribed radius (default 100)
//	-o        OBJ output path; empty writes nothing
//	-at x,y,z print the polygon picked at this point and its neighbors
//	-kis      apex offset for k, t, m, n, z, b
//	-chamfer  offset for c
//	-strict   panic on integrity violations
//	-v        debug logging
//
// Expected Output (polyhedra -n tI):
//
//	notation  tI
//	vertices  60
//	edges     90
//	polygons  32
//	euler     2
//	faces     5:12 6:20
//	degrees   3:60
//	hull      60/60
//	shells    1
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/golang/geo/r3"

	"github.com/katalvlaran/polyhedra/conway"
	"github.com/katalvlaran/polyhedra/diag"
	"github.com/katalvlaran/polyhedra/halfedge"
	"github.com/katalvlaran/polyhedra/mesh"
	"github.com/katalvlaran/polyhedra/objfile"
	"github.com/katalvlaran/polyhedra/spatial"
)

// errUsage marks flag values rejected before generation.
var errUsage = errors.New("polyhedra: invalid flag value")

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

// run parses args, generates the mesh and writes the report to stdout.
// Diagnostics go to stderr through slog.
func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("polyhedra", flag.ContinueOnError)
	fs.SetOutput(stderr)
	notation := fs.String("n", "tI", "Conway notation, e.g. tktI")
	radius := fs.Float64("r", conway.DefaultRadius, "circumscribed radius")
	out := fs.String("o", "", "write the mesh as OBJ to this path")
	at := fs.String("at", "", "print the polygon at point x,y,z")
	kis := fs.Float64("kis", conway.DefaultKisOffset, "kis apex offset")
	chamfer := fs.Float64("chamfer", conway.DefaultChamferOffset, "chamfer offset")
	strict := fs.Bool("strict", false, "panic on integrity violations")
	verbose := fs.Bool("v", false, "debug logging")
	if err := fs.Parse(args); err != nil {
		return err
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	if !(*radius > 0) || math.IsInf(*radius, 0) {
		return fmt.Errorf("-r %v: %w", *radius, errUsage)
	}
	if math.IsNaN(*kis) || math.IsInf(*kis, 0) {
		return fmt.Errorf("-kis %v: %w", *kis, errUsage)
	}
	if !(*chamfer > -1) || math.IsInf(*chamfer, 0) {
		return fmt.Errorf("-chamfer %v: %w", *chamfer, errUsage)
	}
	var point *r3.Vector
	if *at != "" {
		p, err := parsePoint(*at)
		if err != nil {
			return err
		}
		point = &p
	}

	opts := []conway.Option{
		conway.WithRadius(*radius),
		conway.WithReporter(diag.NewSlogReporter(logger)),
		conway.WithKisOffset(*kis),
		conway.WithChamferOffset(*chamfer),
	}
	if *strict {
		opts = append(opts, conway.WithStrict())
	}

	logger.Debug("generating", slog.String("notation", *notation), slog.Float64("radius", *radius))
	m, err := conway.Generate(*notation, opts...)
	if err != nil {
		return err
	}
	adj, err := halfedge.Build(m)
	if err != nil {
		return err
	}
	printStats(stdout, *notation, m)
	fmt.Fprintf(stdout, "%-9s %d\n", "shells", len(adj.Shells()))

	if point != nil {
		idx, err := spatial.PolygonAt(m, *point)
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "%-9s %d\n", "at", idx)
		if idx >= 0 {
			depths, err := adj.PolygonDepths(idx, 1)
			if err != nil {
				return err
			}
			fmt.Fprintf(stdout, "%-9s %s\n", "ring", ring(depths))
		}
	}

	if *out != "" {
		if err = objfile.WriteFile(*out, m, *notation); err != nil {
			return err
		}
		logger.Info("wrote obj", slog.String("path", *out), slog.Int("vertices", m.VertexCount()))
	}

	return nil
}

// parsePoint reads "x,y,z".
func parsePoint(s string) (r3.Vector, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return r3.Vector{}, fmt.Errorf("-at %q: want x,y,z: %w", s, errUsage)
	}
	var c [3]float64
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return r3.Vector{}, fmt.Errorf("-at %q: %w", s, errors.Join(errUsage, err))
		}
		c[i] = v
	}
	return r3.Vector{X: c[0], Y: c[1], Z: c[2]}, nil
}

// printStats writes one aligned "key value" line per statistic.
func printStats(w io.Writer, notation string, m *mesh.Mesh) {
	s := m.Stats()
	fmt.Fprintf(w, "%-9s %s\n", "notation", notation)
	fmt.Fprintf(w, "%-9s %d\n", "vertices", s.Vertices)
	fmt.Fprintf(w, "%-9s %d\n", "edges", s.Edges)
	fmt.Fprintf(w, "%-9s %d\n", "polygons", s.Polygons)
	fmt.Fprintf(w, "%-9s %d\n", "euler", s.Euler)
	fmt.Fprintf(w, "%-9s %s\n", "faces", histogram(s.FaceSizes))
	fmt.Fprintf(w, "%-9s %s\n", "degrees", histogram(s.Degrees))
	fmt.Fprintf(w, "%-9s %d/%d\n", "hull", s.HullVertices, s.Vertices)
}

// ring lists the polygons adjacent to the picked one.
func ring(depths []int) string {
	var parts []string
	for p, d := range depths {
		if d == 1 {
			parts = append(parts, strconv.Itoa(p))
		}
	}
	return strings.Join(parts, " ")
}

// histogram renders a count map as "k:v" pairs in ascending key order.
func histogram(h map[int]int) string {
	keys := make([]int, 0, len(h))
	for k := range h {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = strconv.Itoa(k) + ":" + strconv.Itoa(h[k])
	}
	return strings.Join(parts, " ")
}
