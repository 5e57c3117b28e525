// Package nanview is your toolkit for numeric data that may contain NaN or
// absent values — no copies, no runtime checks, no guesswork.
//
// 🚀 What is nanview?
//
//	A small, focused library that brings together:
//		• Views: no-copy 1-D mutable and n-D read-only windows over your slices
//		• Options: a generic Option type plus a zero-cost "known present" wrapper
//		• NaN-free floats: F32/F64 wrappers that exclude NaN by construction
//		• NaN removal: an in-place partition that retypes the survivors statically
//		• NaN-skipping folds: reductions that silently skip invalid elements
//
// ✨ Why choose nanview?
//
//   - Static guarantees – "no NaN here" is a type, not a runtime assertion
//   - Zero copies – partitioning rearranges in place and retypes the prefix
//   - Pure Go – no cgo, no hidden deps
//   - Deterministic – same input, same result, every run
//
// Under the hood, everything is organized under four subpackages:
//
//	view/     — Mut1 (1-D mutable strided) and ND (n-D read-only) views
//	option/   — Option[T] and the NotNone[T] non-absent wrapper
//	notnan/   — F32/F64 float wrappers guaranteed free of NaN
//	maybenan/ — the Kind capability, RemoveNaNMut partition and FoldSkipNaN
//
// Quick sketch:
//
//	data := []float64{math.NaN(), 1.0, math.NaN(), 2.0}
//	kept := maybenan.Float64{}.RemoveNaNMut(view.FromSlice(data))
//	// kept has length 2 and element type notnan.F64 — NaN is gone, statically.
//
// Dive into each package's doc.go for contracts, complexity and error sets.
//
//	go get github.com/katalvlaran/nanview
package nanview
