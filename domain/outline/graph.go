package outline

import "strings"

// PathSeparator joins ancestor keywords into a graph node identity.
const PathSeparator = "/"

// GraphNode is one flattened forest node. ID is unique per
// root-to-node path, not per keyword: identical keywords under
// different parents stay distinct.
type GraphNode struct {
	ID      string
	Level   int
	Keyword string
}

// GraphEdge is a directed parent-to-child relationship between node
// identities.
type GraphEdge struct {
	From string
	To   string
}

// FlattenForest converts a forest into a generic node/edge set with
// path-based identities. Roots use their bare keyword as identity;
// deeper nodes concatenate their ancestor keywords. Exactly one edge
// is emitted per parent/child pair. The forest is a directed forest,
// so the result is acyclic.
func FlattenForest(forest []*Node) ([]GraphNode, []GraphEdge) {
	nodes := make([]GraphNode, 0)
	edges := make([]GraphEdge, 0)
	seenNodes := make(map[string]struct{})
	seenEdges := make(map[GraphEdge]struct{})

	var walk func(node *Node, parentID string)
	walk = func(node *Node, parentID string) {
		id := node.keyword
		if parentID != "" {
			id = parentID + PathSeparator + node.keyword
		}

		if _, ok := seenNodes[id]; !ok {
			nodes = append(nodes, GraphNode{ID: id, Level: node.level, Keyword: node.keyword})
			seenNodes[id] = struct{}{}
		}

		if parentID != "" {
			if _, ok := seenNodes[parentID]; !ok {
				// Stand-in for a parent that was never materialized.
				// Only reachable through malformed recursive
				// construction; keeps the edge set consistent.
				pieces := strings.Split(parentID, PathSeparator)
				nodes = append(nodes, GraphNode{
					ID:      parentID,
					Level:   node.level - 1,
					Keyword: pieces[len(pieces)-1],
				})
				seenNodes[parentID] = struct{}{}
			}
			edge := GraphEdge{From: parentID, To: id}
			if _, ok := seenEdges[edge]; !ok {
				edges = append(edges, edge)
				seenEdges[edge] = struct{}{}
			}
		}

		for _, child := range node.children {
			walk(child, id)
		}
	}

	for _, root := range forest {
		walk(root, "")
	}

	return nodes, edges
}
