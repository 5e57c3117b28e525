// SPDX-License-Identifier: MIT
// Package view: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the view
// package. Constructors and accessors return these sentinels and tests check
// them via errors.Is. Panics are reserved for programmer errors (Slice with
// impossible bounds), mirroring stdlib slicing.

package view

import "errors"

var (
	// ErrBadShape is returned when a requested shape is invalid: a negative
	// element count, a negative shape entry, or strides whose arity does not
	// match the shape.
	ErrBadShape = errors.New("view: invalid shape")

	// ErrBadStride is returned for a non-positive 1-D stride or a negative
	// n-D axis stride. Negative strides are deliberately unsupported; they
	// buy little for reductions and complicate zero-copy retyping.
	ErrBadStride = errors.New("view: invalid stride")

	// ErrShortBuffer is returned when the backing slice is too short to hold
	// the described window (last reachable index out of bounds).
	ErrShortBuffer = errors.New("view: backing slice too short")

	// ErrOutOfRange indicates an element index outside the window.
	ErrOutOfRange = errors.New("view: index out of range")

	// ErrDimensionMismatch indicates an index arity different from the rank.
	ErrDimensionMismatch = errors.New("view: dimension mismatch")
)
