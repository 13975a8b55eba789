package diag_test

import (
	"bytes"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polyhedra/diag"
)

// TestLevel_String checks the stable level names used in log attributes.
func TestLevel_String(t *testing.T) {
	assert.Equal(t, "input", diag.LevelInput.String())
	assert.Equal(t, "degeneracy", diag.LevelDegeneracy.String())
	assert.Equal(t, "integrity", diag.LevelIntegrity.String())
	assert.Equal(t, "unknown", diag.Level(42).String())
}

// TestRecorder_CollectsInOrder verifies formatting and ordering of recorded events.
func TestRecorder_CollectsInOrder(t *testing.T) {
	var rec diag.Recorder
	rec.Report(diag.LevelInput, "conway.Generate", "unknown seed %q", 'X')
	rec.Report(diag.LevelIntegrity, "halfedge.Build", "edge %d→%d", 3, 4)

	events := rec.Events()
	require.Len(t, events, 2)
	assert.Equal(t, diag.Event{Level: diag.LevelInput, Function: "conway.Generate", Message: "unknown seed 'X'"}, events[0])
	assert.Equal(t, "[halfedge.Build] integrity: edge 3→4", events[1].String())

	rec.Reset()
	assert.Zero(t, rec.Len())
}

// TestRecorder_Concurrent ensures Recorder is safe under parallel reporters.
func TestRecorder_Concurrent(t *testing.T) {
	var rec diag.Recorder
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			rec.Report(diag.LevelDegeneracy, "worker", "n=%d", i)
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 16, rec.Len())
}

// TestSlogReporter_Attributes checks that events reach the logger with attributes.
func TestSlogReporter_Attributes(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	r := diag.NewSlogReporter(logger)

	r.Report(diag.LevelIntegrity, "conway.Dual", "vertex %d is not closed", 7)

	out := buf.String()
	assert.Contains(t, out, "level=ERROR")
	assert.Contains(t, out, "vertex 7 is not closed")
	assert.Contains(t, out, "function=conway.Dual")
	assert.Contains(t, out, "level=integrity")
}

// TestStrict_PanicsOnIntegrityOnly verifies the detection-enabled wrapper.
func TestStrict_PanicsOnIntegrityOnly(t *testing.T) {
	var rec diag.Recorder
	strict := diag.Strict(&rec)

	assert.NotPanics(t, func() { strict.Report(diag.LevelInput, "f", "bad input") })
	assert.NotPanics(t, func() { strict.Report(diag.LevelDegeneracy, "f", "flat polygon") })
	assert.PanicsWithValue(t, "[f] integrity: open cycle", func() {
		strict.Report(diag.LevelIntegrity, "f", "open cycle")
	})
	// The event is forwarded before panicking.
	assert.Equal(t, 3, rec.Len())
}

// TestDiscard_NoPanic is a smoke test for the no-op sink.
func TestDiscard_NoPanic(t *testing.T) {
	assert.NotPanics(t, func() { diag.Discard.Report(diag.LevelIntegrity, "f", "%d", 1) })
	assert.NotPanics(t, func() { diag.Strict(nil).Report(diag.LevelInput, "f", "x") })
}
