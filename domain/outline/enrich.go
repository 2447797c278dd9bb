package outline

import "cosylinks-backend/domain/procedure"

// TreeView is the serializable enriched form of a node: its keyword,
// depth, the procedures matched against that keyword alone, and its
// enriched children.
type TreeView struct {
	Keyword           string             `json:"keyword"`
	Level             int                `json:"level"`
	MatchedProcedures []procedure.Record `json:"matchedProcedures"`
	Children          []*TreeView        `json:"children"`
}

// Enrich converts a node into its serializable view. A node's matches
// are computed using only that node's own keyword; sibling and
// descendant keywords are excluded, so a procedure tagged with a child
// keyword never surfaces at the parent. Every node at every depth gets
// its own independent pass over the full record list.
func Enrich(node *Node, records []procedure.Record) *TreeView {
	children := make([]*TreeView, 0, len(node.children))
	for _, child := range node.children {
		children = append(children, Enrich(child, records))
	}
	return &TreeView{
		Keyword:           node.keyword,
		Level:             node.level,
		MatchedProcedures: procedure.MatchByKeywords(records, procedure.NewKeywordSet(node.keyword)),
		Children:          children,
	}
}

// EnrichForest enriches every root of the forest.
func EnrichForest(forest []*Node, records []procedure.Record) []*TreeView {
	views := make([]*TreeView, 0, len(forest))
	for _, root := range forest {
		views = append(views, Enrich(root, records))
	}
	return views
}
