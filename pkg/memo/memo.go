// Copyright (c) 2019-2026 JetKit Contributors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

// Package memo provides a single-resolution cell: a value that is computed at
// most once per configuration pass and read thereafter, whether the
// computation succeeded or failed.
package memo

type state int

const (
	unresolved state = iota
	resolved
	failed
)

// Cell holds a not-yet-resolved | resolved(value) | failed(error) state.
// It is not safe for concurrent use; one resolution pass is single-threaded.
type Cell[T any] struct {
	st    state
	value T
	err   error
}

// GetOrResolve returns the stored outcome, invoking resolve only on the first
// call. A failed resolution is also memoized: subsequent calls return the
// original error without re-triggering side effects.
func (c *Cell[T]) GetOrResolve(resolve func() (T, error)) (T, error) {
	if c.st == unresolved {
		c.value, c.err = resolve()
		if c.err != nil {
			c.st = failed
		} else {
			c.st = resolved
		}
	}
	return c.value, c.err
}

// Resolved reports whether a value (or error) has been stored.
func (c *Cell[T]) Resolved() bool {
	return c.st != unresolved
}
