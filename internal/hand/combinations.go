package hand

// forEachCombination calls fn with every k-element index subset of [0, n) in
// lexicographic order. The slice passed to fn is reused between calls.
// Enumeration stops early when fn returns false.
func forEachCombination(n, k int, fn func(idx []int) bool) {
	if k <= 0 || k > n {
		return
	}
	comb := make([]int, k)
	var dfs func(start, depth int) bool
	dfs = func(start, depth int) bool {
		if depth == k {
			return fn(comb)
		}
		for i := start; i <= n-(k-depth); i++ {
			comb[depth] = i
			if !dfs(i+1, depth+1) {
				return false
			}
		}
		return true
	}
	dfs(0, 0)
}
