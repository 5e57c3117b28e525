package maybenan

import "github.com/katalvlaran/nanview/view"

// removeNaN partitions v in place so that all non-NaN elements form a
// contiguous prefix, and returns that prefix (still typed V; the callers in
// floats.go / optional.go retype it via castMut1).
//
// Two pointers converge from both ends:
//
//	i scans right past elements that are already correctly placed (non-NaN);
//	j scans left past elements that are already correctly excluded (NaN);
//	when both stop, v[i] is NaN and v[j] is not: swap and keep converging.
//
// Loop invariant: i == 0 || !IsNaN(v[i-1]), and j == len-1 || IsNaN(v[j+1]).
//
// Properties: O(n) time, at most n/2 swaps, no allocation. The swap sequence
// is a pure function of the input, so the surviving order is deterministic
// and re-running on the output performs zero swaps (idempotent).
func removeNaN[V, N any, K Kind[V, N]](k K, v view.Mut1[V]) view.Mut1[V] {
	n := v.Len()
	if n == 0 {
		return v.Slice(0, 0)
	}
	i, j := 0, n-1
	for {
		for i <= j && !k.IsNaN(v.Get(i)) {
			i++
		}
		for j > i && k.IsNaN(v.Get(j)) {
			j--
		}
		if i >= j {
			return v.Slice(0, i)
		}
		v.Swap(i, j)
		i++
		j--
	}
}
