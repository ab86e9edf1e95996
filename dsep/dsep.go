package dsep

import (
	"github.com/Hepaul7/doverifier/dag"
)

// IsDSeparated returns true iff s and t are d-separated given z in g.
// See the package doc for the ancestral-moralization algorithm.
func IsDSeparated(g *dag.Graph, s, t string, z map[string]struct{}) bool {
	if s == t {
		return false
	}
	if !g.HasVertex(s) || !g.HasVertex(t) {
		return true
	}

	roots := map[string]struct{}{s: {}, t: {}}
	for v := range z {
		roots[v] = struct{}{}
	}

	ancestral := g.AncestorsOfSet(roots)
	for v := range roots {
		ancestral[v] = struct{}{}
	}

	induced := g.InducedSubgraph(ancestral)
	moral := moralize(induced)

	for v := range z {
		moral.remove(v)
	}

	if !moral.has(s) || !moral.has(t) {
		return true
	}

	return !moral.hasPath(s, t)
}

// undirected is a minimal undirected adjacency used only to decide
// reachability after moralization; it is not exported because nothing
// outside this package needs an undirected view of a causal graph.
type undirected struct {
	adj map[string]map[string]struct{}
}

func newUndirected() *undirected {
	return &undirected{adj: make(map[string]map[string]struct{})}
}

func (u *undirected) addVertex(v string) {
	if _, ok := u.adj[v]; !ok {
		u.adj[v] = make(map[string]struct{})
	}
}

func (u *undirected) addEdge(a, b string) {
	u.addVertex(a)
	u.addVertex(b)
	if a == b {
		return
	}
	u.adj[a][b] = struct{}{}
	u.adj[b][a] = struct{}{}
}

func (u *undirected) has(v string) bool {
	_, ok := u.adj[v]
	return ok
}

func (u *undirected) remove(v string) {
	for nbr := range u.adj[v] {
		delete(u.adj[nbr], v)
	}
	delete(u.adj, v)
}

// hasPath reports whether b is reachable from a via a plain BFS.
func (u *undirected) hasPath(a, b string) bool {
	if !u.has(a) || !u.has(b) {
		return false
	}
	visited := map[string]struct{}{a: {}}
	queue := []string{a}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur == b {
			return true
		}
		for nbr := range u.adj[cur] {
			if _, seen := visited[nbr]; seen {
				continue
			}
			visited[nbr] = struct{}{}
			queue = append(queue, nbr)
		}
	}

	return false
}

// moralize builds the moral graph of an (already ancestral-induced) DAG:
// its skeleton plus an edge between every pair of distinct parents sharing
// a common child.
func moralize(g *dag.Graph) *undirected {
	m := newUndirected()
	for _, v := range g.Vertices() {
		m.addVertex(v)
	}
	for _, v := range g.Vertices() {
		children, _ := g.Children(v)
		for _, c := range children {
			m.addEdge(v, c)
		}
		parents, _ := g.Parents(v)
		for i := 0; i < len(parents); i++ {
			for j := i + 1; j < len(parents); j++ {
				m.addEdge(parents[i], parents[j])
			}
		}
	}

	return m
}
