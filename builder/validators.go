// SPDX-License-Identifier: MIT
// Package: bintree/builder
//
// validators.go - parameter contracts shared by all strategies.
//
// Each function returns a sentinel wrapped via builderErrorf when its
// precondition is violated. Order of checks (see prepare):
//   option error → height → height limit → representation.

package builder

import (
	"math/bits"

	"github.com/cockroachdb/errors"
)

// addressableHeight is the tallest tree whose node count 2^h − 1 fits in an
// int on this platform.
const addressableHeight = bits.UintSize - 2

// validateHeight ensures MinHeight ≤ height ≤ maxHeight. A height above the
// limit is reported as ErrHeightLimit and marked ErrInvalidHeight.
// Complexity: O(1).
func validateHeight(method string, height, maxHeight int) error {
	if height < MinHeight {
		return builderErrorf(method, ErrInvalidHeight, "height must be ≥ %d, got %d", MinHeight, height)
	}
	limit := min(maxHeight, addressableHeight)
	if height > limit {
		return errors.Mark(
			builderErrorf(method, ErrHeightLimit, "height %d above limit %d", height, limit),
			ErrInvalidHeight)
	}

	return nil
}

// validateRepresentation ensures the tag names one of the two supported forms.
// Complexity: O(1).
func validateRepresentation(method string, cfg builderConfig) error {
	if !cfg.repr.Valid() {
		return builderErrorf(method, ErrInvalidRepresentation, "representation %q", string(cfg.repr))
	}

	return nil
}

// prepare resolves options and runs every validator in order.
// It returns the config a strategy should build with.
func prepare(method string, height int, opts []Option) (builderConfig, error) {
	cfg := newBuilderConfig(opts...)

	// 1. Option violations come first: nothing else is trustworthy.
	if cfg.err != nil {
		return cfg, errors.Wrapf(cfg.err, "%s", method)
	}

	// 2. Height bounds.
	if err := validateHeight(method, height, cfg.maxHeight); err != nil {
		return cfg, err
	}

	// 3. Representation tag.
	if err := validateRepresentation(method, cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}
