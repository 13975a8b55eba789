// SPDX-License-Identifier: MIT
// Package: polyhedra/conway
//
// config.go — internal configuration and deterministic defaults.
//
// Design:
//   • config is the single source of truth for Generate/Apply knobs.
//   • newConfig applies options in order (later overrides earlier).
//
// Deterministic defaults:
//   • radius        = DefaultRadius (100)
//   • reporter      = diag.NewSlogReporter(slog.Default())
//   • strict        = false
//   • kisOffset     = DefaultKisOffset (0.1)
//   • chamferOffset = DefaultChamferOffset (0.1)

package conway

import (
	"log/slog"

	"github.com/katalvlaran/polyhedra/diag"
	"github.com/katalvlaran/polyhedra/mesh"
)

// config aggregates the knobs used by Generate and Apply.
// It is passed by value.
type config struct {
	radius        float64
	reporter      diag.Reporter
	strict        bool
	kisOffset     float64
	chamferOffset float64
}

// newConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)).
func newConfig(opts ...Option) config {
	cfg := config{
		radius:        DefaultRadius,
		reporter:      nil,
		kisOffset:     DefaultKisOffset,
		chamferOffset: DefaultChamferOffset,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	// Resolve the reporter last so WithStrict wraps whichever one was chosen.
	if cfg.reporter == nil {
		cfg.reporter = diag.NewSlogReporter(slog.Default())
	}
	if cfg.strict {
		cfg.reporter = diag.Strict(cfg.reporter)
	}

	return cfg
}

// operators returns the letter table bound to this config's offsets.
func (c config) operators() map[rune]Operator {
	if c.kisOffset == DefaultKisOffset && c.chamferOffset == DefaultChamferOffset {
		return defaultOperators
	}
	return operatorTable(c.kisOffset, c.chamferOffset)
}

// fail reports err at the level Classify assigns and returns the empty mesh
// every failed request yields. With WithStrict an integrity violation panics
// inside Report.
func (c config) fail(method string, err error) (*mesh.Mesh, error) {
	c.reporter.Report(Classify(err), "conway."+method, "%v", err)
	return mesh.Empty(), err
}
