package filling

import "iter"

/*
 * partition tracks disjoint sets of cell indices together with a
 * circular successor list per set. The union-find side answers
 * canonify/count; the ring lets a whole set be walked starting from
 * any member. Both are mutated only through merge, which keeps them in
 * lockstep: a merge splices the two rings into one by swapping the
 * successors of the two canonical representatives.
 */
type partition struct {
	parent []int
	size   []int
	next   []int
}

func newPartition(n int) *partition {
	p := &partition{
		parent: make([]int, n),
		size:   make([]int, n),
		next:   make([]int, n),
	}
	p.reset()
	return p
}

// reset returns every cell to a singleton set whose ring is a self-loop.
func (p *partition) reset() {
	for i := range p.parent {
		p.parent[i] = i
		p.size[i] = 1
		p.next[i] = i
	}
}

// canonify returns the representative of x's set, compressing the path
// behind it.
func (p *partition) canonify(x int) int {
	root := x
	for p.parent[root] != root {
		root = p.parent[root]
	}
	for p.parent[x] != root {
		p.parent[x], x = root, p.parent[x]
	}
	return root
}

func (p *partition) count(x int) int {
	return p.size[p.canonify(x)]
}

// merge unifies the sets containing a and b. A no-op if they are
// already one set. Callers must not rely on which representative
// survives.
func (p *partition) merge(a, b int) {
	a = p.canonify(a)
	b = p.canonify(b)
	if a == b {
		return
	}
	if p.size[a] < p.size[b] {
		a, b = b, a
	}
	p.parent[b] = a
	p.size[a] += p.size[b]
	p.next[a], p.next[b] = p.next[b], p.next[a]
}

// component walks the ring of x's set, yielding every member exactly
// once, starting at x.
func (p *partition) component(x int) iter.Seq[int] {
	return func(yield func(int) bool) {
		i := x
		for {
			if !yield(i) {
				return
			}
			i = p.next[i]
			if i == x {
				return
			}
		}
	}
}
