package filter

import (
	"fmt"
	"sort"

	"github.com/ksakata/winnow/internal/token"
)

// SimilarMethod selects the ordering strategy for Similar.
type SimilarMethod string

// Available Similar methods. Greedy chains each token to its nearest
// unplaced neighbor; kruskal and prim build a maximum-similarity
// spanning tree first and emit it in depth-first order.
const (
	SimilarGreedy  SimilarMethod = "greedy"
	SimilarKruskal SimilarMethod = "kruskal"
	SimilarPrim    SimilarMethod = "prim"
)

// SimilarMethods lists the selectable methods in help-text order.
func SimilarMethods() []SimilarMethod {
	return []SimilarMethod{SimilarGreedy, SimilarKruskal, SimilarPrim}
}

// ParseSimilarMethod validates a method name from the CLI.
func ParseSimilarMethod(s string) (SimilarMethod, error) {
	switch m := SimilarMethod(s); m {
	case SimilarGreedy, SimilarKruskal, SimilarPrim:
		return m, nil
	default:
		return "", fmt.Errorf("unknown similar method %q", s)
	}
}

// Similar reorders the sequence so tokens with similar names sit next
// to each other. Similarity is the longest-common-subsequence ratio of
// the two names. The walk starts at the first token, so the output is
// anchored to the original head; reverse inverts the final order. The
// result is always a permutation of the input.
type Similar struct {
	method  SimilarMethod
	reverse bool
}

// NewSimilar returns a similarity-ordering command.
func NewSimilar(method SimilarMethod, reverse bool) *Similar {
	return &Similar{method: method, reverse: reverse}
}

func (c *Similar) Execute(tokens []token.Token) ([]token.Token, error) {
	n := len(tokens)
	out := make([]token.Token, n)
	if n < 2 {
		copy(out, tokens)
		return out, nil
	}

	sim := similarityMatrix(tokens)

	var order []int
	switch c.method {
	case SimilarGreedy:
		order = greedyOrder(sim)
	case SimilarKruskal:
		order = treeOrder(kruskalTree(sim), sim)
	case SimilarPrim:
		order = treeOrder(primTree(sim), sim)
	default:
		return nil, &CommandExecutionError{Command: IDSimilar, Reason: fmt.Sprintf("unknown similar method %q", c.method)}
	}

	if c.reverse {
		for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
			order[i], order[j] = order[j], order[i]
		}
	}
	for i, idx := range order {
		out[i] = tokens[idx]
	}
	return out, nil
}

func similarityMatrix(tokens []token.Token) [][]float64 {
	n := len(tokens)
	sim := make([][]float64, n)
	for i := range sim {
		sim[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			s := nameSimilarity(tokens[i].Name(), tokens[j].Name())
			sim[i][j] = s
			sim[j][i] = s
		}
	}
	return sim
}

// nameSimilarity is the LCS ratio 2*lcs/(len(a)+len(b)), 1.0 for two
// identical names and 0.0 for names sharing no characters.
func nameSimilarity(a, b string) float64 {
	if len(a)+len(b) == 0 {
		return 1
	}
	return 2 * float64(lcsLength(a, b)) / float64(len(a)+len(b))
}

func lcsLength(a, b string) int {
	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				cur[j] = prev[j-1] + 1
			} else if prev[j] >= cur[j-1] {
				cur[j] = prev[j]
			} else {
				cur[j] = cur[j-1]
			}
		}
		prev, cur = cur, prev
	}
	return prev[len(b)]
}

// greedyOrder starts at index 0 and repeatedly appends the most similar
// unplaced index; ties go to the lowest index.
func greedyOrder(sim [][]float64) []int {
	n := len(sim)
	order := make([]int, 0, n)
	placed := make([]bool, n)
	cur := 0
	placed[0] = true
	order = append(order, 0)
	for len(order) < n {
		next := -1
		for j := 0; j < n; j++ {
			if placed[j] {
				continue
			}
			if next < 0 || sim[cur][j] > sim[cur][next] {
				next = j
			}
		}
		placed[next] = true
		order = append(order, next)
		cur = next
	}
	return order
}

// kruskalTree builds a maximum-similarity spanning tree by taking edges
// in descending similarity order and joining components (union-find).
// Ties are broken by ascending (i, j) so the tree is deterministic.
func kruskalTree(sim [][]float64) [][]int {
	n := len(sim)
	type edge struct{ i, j int }
	edges := make([]edge, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			edges = append(edges, edge{i, j})
		}
	}
	sort.SliceStable(edges, func(a, b int) bool {
		return sim[edges[a].i][edges[a].j] > sim[edges[b].i][edges[b].j]
	})

	parent := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(x int) int {
		if parent[x] != x {
			parent[x] = find(parent[x])
		}
		return parent[x]
	}

	adj := make([][]int, n)
	for _, e := range edges {
		ri, rj := find(e.i), find(e.j)
		if ri == rj {
			continue
		}
		parent[ri] = rj
		adj[e.i] = append(adj[e.i], e.j)
		adj[e.j] = append(adj[e.j], e.i)
	}
	return adj
}

// primTree grows a maximum-similarity spanning tree from index 0. The
// best edge from the tree to the outside is chosen each step; ties go
// to the lowest (outside, inside) index pair.
func primTree(sim [][]float64) [][]int {
	n := len(sim)
	inTree := make([]bool, n)
	inTree[0] = true
	adj := make([][]int, n)
	for count := 1; count < n; count++ {
		bi, bj := -1, -1
		for i := 0; i < n; i++ {
			if !inTree[i] {
				continue
			}
			for j := 0; j < n; j++ {
				if inTree[j] {
					continue
				}
				if bj < 0 || sim[i][j] > sim[bi][bj] {
					bi, bj = i, j
				}
			}
		}
		inTree[bj] = true
		adj[bi] = append(adj[bi], bj)
		adj[bj] = append(adj[bj], bi)
	}
	return adj
}

// treeOrder linearizes a spanning tree depth-first from index 0,
// visiting the most similar child first.
func treeOrder(adj [][]int, sim [][]float64) []int {
	n := len(adj)
	order := make([]int, 0, n)
	seen := make([]bool, n)
	var walk func(int)
	walk = func(cur int) {
		seen[cur] = true
		order = append(order, cur)
		next := append([]int(nil), adj[cur]...)
		sort.SliceStable(next, func(a, b int) bool {
			return sim[cur][next[a]] > sim[cur][next[b]]
		})
		for _, nb := range next {
			if !seen[nb] {
				walk(nb)
			}
		}
	}
	walk(0)
	return order
}
