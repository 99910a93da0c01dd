package feed

// FollowGraph owns the directed following relation between user ids.
// Edges are kept in insertion order per follower; set semantics are
// enforced on mutation. The graph itself does not reject self-follows;
// the Facade does.
type FollowGraph struct {
	edges map[string][]string
}

func NewFollowGraph() *FollowGraph {
	return &FollowGraph{edges: make(map[string][]string)}
}

// Follow adds an edge from userID to targetID if absent. Idempotent.
func (g *FollowGraph) Follow(userID, targetID string) {
	for _, id := range g.edges[userID] {
		if id == targetID {
			return
		}
	}
	g.edges[userID] = append(g.edges[userID], targetID)
}

// Unfollow removes the edge from userID to targetID if present. Idempotent.
func (g *FollowGraph) Unfollow(userID, targetID string) {
	list := g.edges[userID]
	for i, id := range list {
		if id == targetID {
			g.edges[userID] = append(list[:i], list[i+1:]...)
			return
		}
	}
}

// IsFollowing reports whether userID follows targetID. Unknown users
// follow nobody.
func (g *FollowGraph) IsFollowing(userID, targetID string) bool {
	for _, id := range g.edges[userID] {
		if id == targetID {
			return true
		}
	}
	return false
}

// Following returns a copy of the set of ids userID follows.
func (g *FollowGraph) Following(userID string) []string {
	list := g.edges[userID]
	out := make([]string, len(list))
	copy(out, list)
	return out
}

// Snapshot exposes the full edge map for persistence.
func (g *FollowGraph) Snapshot() map[string][]string {
	return g.edges
}

// Restore replaces the graph's contents with a rehydrated edge map.
func (g *FollowGraph) Restore(edges map[string][]string) {
	if edges == nil {
		edges = make(map[string][]string)
	}
	g.edges = edges
}
