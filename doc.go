// Package sparsevec is a small in-memory toolkit for sparse vectors,
// non-owning subvector views and lazy elementwise expressions.
//
// 🚀 What is sparsevec?
//
//	A modern, single-threaded, almost-zero-dependency library that brings together:
//		• Concrete storage: sorted sparse vectors and flat dense vectors
//		• Views: windows onto a contiguous index range, no copies, write-through
//		• Lazy arithmetic: add, subtract, elementwise multiply, scale, abs
//		• Algebraic push-down: slicing an expression slices its operands instead
//		• Interop: adapters to gonum's mat.VecDense and blas64.Vector
//
// ✨ Why choose sparsevec?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Fail-fast guarantees – sentinel errors before any partial mutation
//   - Pure Go – no cgo, no hidden deps
//   - Deterministic – sorted entry order, fixed loop orders, no map iteration
//
// Under the hood, everything is organized under three subpackages:
//
//	vec/   — fundamental Sparse and Dense containers, Expr & Scanner contracts
//	view/  — Subvector and DenseWindow, write-through windows over storage
//	expr/  — lazy expression nodes, materialization, Subview push-down
//
// Quick sketch:
//
//	    base:  [ . 1 . . 7 . 2 . ]
//	    view:      [ . . 7 ]        = view.New(base, 2, 3)
//
//	writes through the view land directly in base; iteration yields only the
//	stored non-zero entries of the window, in ascending local order.
//
// Dive into the package examples and examples/ for full usage patterns.
//
//	go get github.com/katalvlaran/sparsevec
package sparsevec
