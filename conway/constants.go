// SPDX-License-Identifier: MIT
// Package: polyhedra/conway
//
// constants.go — operator defaults and method tags.

package conway

//-----------------------------------------------------------------------------
// Method Name Constants
//   used to prefix errors with the operator name for context.
//-----------------------------------------------------------------------------

const (
	methodDual     = "Dual"
	methodKis      = "Kis"
	methodAmbo     = "Ambo"
	methodGyro     = "Gyro"
	methodChamfer  = "Chamfer"
	methodTruncate = "Truncate"
	methodJoin     = "Join"
	methodSnub     = "Snub"
	methodExpand   = "Expand"
	methodOrtho    = "Ortho"
	methodMeta     = "Meta"
	methodBevel    = "Bevel"
	methodNeedle   = "Needle"
	methodZip      = "Zip"

	methodParse    = "Parse"
	methodGenerate = "Generate"
	methodApply    = "Apply"
)

//-----------------------------------------------------------------------------
// Operator Defaults
//-----------------------------------------------------------------------------

// DefaultKisOffset is the apex height, along the face normal, used by kis and
// every operator composed from it (t, m, n, z, b).
const DefaultKisOffset = 0.1

// DefaultChamferOffset is the chamfer offset used by c.
const DefaultChamferOffset = 0.1

// KisAllFaces is the side filter that raises a pyramid on every face.
const KisAllFaces = 0

// DefaultRadius is the sphere radius Generate scales its result to.
const DefaultRadius = 100.0

//-----------------------------------------------------------------------------
// Geometry Constants
//-----------------------------------------------------------------------------

const (
	// gyroSplit places the two new vertices on each edge at 1/3 and 2/3.
	gyroSplit = 1.0 / 3.0

	// chamferLift scales the chamfer offset applied along each face normal.
	chamferLift = 1.5
)

//-----------------------------------------------------------------------------
// Parser Limits
//-----------------------------------------------------------------------------

// maxArgumentDigits bounds a numeric argument to 9 decimal digits so the
// place-value accumulation cannot overflow int on any platform.
const maxArgumentDigits = 9
