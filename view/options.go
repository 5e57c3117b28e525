// SPDX-License-Identifier: MIT

// Package view: functional configuration for ND construction.
// This file defines:
//   - NDOption (functional options with internal state),
//   - documented defaults,
//   - WithX constructors,
//   - gatherNDOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state, defaults are constants.
//   - Safe by construction: option values are validated in NewND and reported
//     through the package sentinels, never by panicking on user input.

package view

// DefaultOffset is the starting offset used when WithOffset is not given.
const DefaultOffset = 0

// ndConfig is the internal option state consumed by NewND.
// A nil strides slice means "derive row-major strides from the shape".
type ndConfig struct {
	strides []int
	offset  int
}

// NDOption mutates the ND construction config.
type NDOption func(*ndConfig)

// WithStrides sets explicit per-axis strides (in elements). The slice is
// copied; its arity must match the shape and every entry must be >= 0,
// which NewND enforces via ErrBadShape / ErrBadStride.
func WithStrides(strides []int) NDOption {
	return func(c *ndConfig) {
		c.strides = append([]int(nil), strides...)
	}
}

// WithOffset sets the flat index of element (0,...,0). Must be >= 0;
// NewND reports violations as ErrOutOfRange.
func WithOffset(offset int) NDOption {
	return func(c *ndConfig) {
		c.offset = offset
	}
}

// gatherNDOptions applies opts over the documented defaults.
func gatherNDOptions(opts []NDOption) ndConfig {
	cfg := ndConfig{offset: DefaultOffset}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
