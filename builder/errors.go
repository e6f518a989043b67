// SPDX-License-Identifier: MIT
// Package: bintree/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Builders never panic; a failed build returns a nil node and one of these.
//   • Errors returned for a height above the limit carry ErrHeightLimit and
//     are also marked ErrInvalidHeight, so a caller that only distinguishes
//     "bad height" needs a single check. The sentinels themselves stay
//     distinct: a height below MinHeight never matches ErrHeightLimit.

package builder

import (
	"github.com/cockroachdb/errors"
)

// ErrInvalidHeight indicates height < 1.
var ErrInvalidHeight = errors.New("builder: invalid height")

// ErrHeightLimit indicates a height above the configured maximum
// (see WithMaxHeight). Returned errors also satisfy
// errors.Is(err, ErrInvalidHeight).
var ErrHeightLimit = errors.New("builder: height exceeds limit")

// ErrInvalidRepresentation indicates a representation tag other than
// core.RepresentationRecord or core.RepresentationMapping.
var ErrInvalidRepresentation = errors.New("builder: invalid representation")

// ErrSubtreeConstruction indicates that a child subtree could not be built.
// Only the recursive strategy reports it; the whole build is abandoned.
var ErrSubtreeConstruction = errors.New("builder: subtree construction failed")

// ErrRuleFailure indicates that a caller-supplied branch rule panicked.
var ErrRuleFailure = errors.New("builder: branch rule failed")

// ErrOptionViolation indicates an invalid functional option (nil rule,
// out-of-range max height). Reported at call time, before any allocation.
var ErrOptionViolation = errors.New("builder: invalid option")

// ErrUnknownStrategy indicates a Strategy value or name that is not supported.
var ErrUnknownStrategy = errors.New("builder: unknown strategy")

// builderErrorf attaches method context to a sentinel:
// "<Method>: <formatted message>: <sentinel>".
func builderErrorf(method string, sentinel error, format string, args ...interface{}) error {
	return errors.Wrapf(sentinel, method+": "+format, args...)
}
