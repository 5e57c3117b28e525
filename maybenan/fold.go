package maybenan

import "github.com/katalvlaran/nanview/view"

// FoldSkipNaN folds f over the non-NaN elements of a, starting from init.
// NaN elements are skipped silently; they are never an error.
//
// The combiner receives a pointer aliasing the element's storage, retyped to
// the non-NaN counterpart. Traversal follows the view's deterministic
// element order; beyond that the order is unspecified and callers must not
// depend on it.
//
// Complexity: O(size) time, O(rank) memory (the traversal odometer).
func FoldSkipNaN[V, N, B any, K Kind[V, N]](k K, a view.ND[V], init B, f func(B, *N) B) B {
	acc := init
	a.ForEach(func(p *V) {
		if w := k.TryNotNaN(p); w != nil {
			acc = f(acc, w)
		}
	})

	return acc
}

// CountNotNaN returns the number of non-NaN elements of a.
func CountNotNaN[V, N any, K Kind[V, N]](k K, a view.ND[V]) int {
	return FoldSkipNaN(k, a, 0, func(c int, _ *N) int { return c + 1 })
}
