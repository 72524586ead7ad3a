// SPDX-License-Identifier: MIT
// Package view: sentinel error set.
// Container-level conditions (out-of-range, duplicate, size mismatch, zero
// division) reuse the vec sentinels so callers match one vocabulary across
// the module; this file defines only the conditions born at the view layer.

package view

import "errors"

var (
	// ErrInvalidRange is returned when a window is requested with zero
	// length, a negative start, or an extent that overruns the base
	// container. Construction-time only; no partially built views exist.
	ErrInvalidRange = errors.New("view: invalid subvector range")
)
