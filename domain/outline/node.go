// Package outline implements the keyword tree: parsing an
// indentation-formatted outline into a rooted forest, enriching nodes
// with matching procedure records, and flattening the forest into a
// visualization-ready graph.
package outline

import (
	"sort"
	"strings"
)

// indentWidth is the number of leading spaces that encode one level of
// hierarchy. Tabs never count as indentation.
const indentWidth = 4

// Node is one line of the outline. Children are owned by their parent;
// the parent pointer is a non-owning back-reference used for ancestor
// queries only. Nodes are immutable once BuildForest returns.
type Node struct {
	keyword  string
	level    int
	parent   *Node
	children []*Node
}

// Keyword returns the trimmed line content.
func (n *Node) Keyword() string { return n.keyword }

// Level returns the hierarchical depth. Direct children of the
// synthetic root are level 0.
func (n *Node) Level() int { return n.level }

// Parent returns the parent node, or nil for a root of the forest.
// The synthetic level -1 root is never exposed.
func (n *Node) Parent() *Node {
	if n.parent != nil && n.parent.level < 0 {
		return nil
	}
	return n.parent
}

// Children returns the node's children in source order. Callers must
// not mutate the returned slice.
func (n *Node) Children() []*Node { return n.children }

func (n *Node) addChild(child *Node) {
	child.parent = n
	n.children = append(n.children, child)
}

// AllKeywords returns the keyword of this node and of every descendant,
// sorted and deduplicated. This is the one place multi-keyword
// aggregation happens; per-node matching uses only the node's own
// keyword (see Enrich).
func (n *Node) AllKeywords() []string {
	set := make(map[string]struct{})
	n.collectKeywords(set)
	return sortedKeywords(set)
}

func (n *Node) collectKeywords(set map[string]struct{}) {
	set[n.keyword] = struct{}{}
	for _, child := range n.children {
		child.collectKeywords(set)
	}
}

// BuildForest parses indentation-formatted outline text into a forest
// of keyword nodes. Hierarchy is encoded by groups of four leading
// spaces per level; indentation that is not a multiple of four rounds
// down. Blank lines are skipped entirely. Empty input yields an empty
// forest. The parser never fails: a level that jumps past its ancestors
// simply attaches under the nearest strictly shallower one.
func BuildForest(text string) []*Node {
	root := &Node{keyword: "ROOT", level: -1}
	stack := []*Node{root}

	for _, line := range strings.Split(text, "\n") {
		stripped := strings.TrimRight(line, " \t\r")
		if stripped == "" {
			continue
		}

		level := leadingSpaces(line) / indentWidth
		node := &Node{keyword: strings.TrimSpace(stripped), level: level}

		// Pop open ancestors until the top is strictly shallower.
		for len(stack) > 1 && stack[len(stack)-1].level >= level {
			stack = stack[:len(stack)-1]
		}
		stack[len(stack)-1].addChild(node)
		stack = append(stack, node)
	}

	return root.children
}

// leadingSpaces counts leading literal space characters only.
func leadingSpaces(line string) int {
	count := 0
	for _, r := range line {
		if r != ' ' {
			break
		}
		count++
	}
	return count
}

// Vocabulary returns the sorted, deduplicated union of all keywords in
// the given forests. Used to populate form controls.
func Vocabulary(forests ...[]*Node) []string {
	set := make(map[string]struct{})
	for _, forest := range forests {
		for _, node := range forest {
			node.collectKeywords(set)
		}
	}
	return sortedKeywords(set)
}

func sortedKeywords(set map[string]struct{}) []string {
	keywords := make([]string, 0, len(set))
	for keyword := range set {
		keywords = append(keywords, keyword)
	}
	sort.Strings(keywords)
	return keywords
}
