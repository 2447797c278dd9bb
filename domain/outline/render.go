package outline

// Fixed visual style for the force-directed graph widget: white boxes
// with black borders and text, black curved directional edges.
const (
	nodeBackground      = "#ffffff"
	nodeBorder          = "#000000"
	nodeHighlightBg     = "#f3f4f6"
	nodeFontColor       = "#000000"
	nodeFontSize        = 14
	nodeShape           = "box"
	nodeBorderWidth     = 2
	edgeColor           = "#000000"
	edgeSmoothType      = "curvedCW"
	edgeSmoothRoundness = 0.2
)

// GraphPayload is the declarative node/edge structure consumed directly
// by the visualization widget.
type GraphPayload struct {
	Nodes []VisNode `json:"nodes"`
	Edges []VisEdge `json:"edges"`
}

// VisNode carries the disambiguating path in ID while the label shows
// only the bare keyword.
type VisNode struct {
	ID          string   `json:"id"`
	Label       string   `json:"label"`
	Level       int      `json:"level"`
	Color       VisColor `json:"color"`
	Font        VisFont  `json:"font"`
	Shape       string   `json:"shape"`
	BorderWidth int      `json:"borderWidth"`
}

// VisColor is a node's fill and border colors.
type VisColor struct {
	Background string       `json:"background"`
	Border     string       `json:"border"`
	Highlight  VisHighlight `json:"highlight"`
}

// VisHighlight is the selected-state color pair.
type VisHighlight struct {
	Background string `json:"background"`
	Border     string `json:"border"`
}

// VisFont is a node's label styling.
type VisFont struct {
	Color string `json:"color"`
	Size  int    `json:"size"`
}

// VisEdge is a directed, curved edge between node identities.
type VisEdge struct {
	From   string       `json:"from"`
	To     string       `json:"to"`
	Arrows string       `json:"arrows"`
	Color  VisEdgeColor `json:"color"`
	Smooth VisSmooth    `json:"smooth"`
}

// VisEdgeColor is an edge's normal and highlighted color.
type VisEdgeColor struct {
	Color     string `json:"color"`
	Highlight string `json:"highlight"`
}

// VisSmooth selects the edge curvature.
type VisSmooth struct {
	Type      string  `json:"type"`
	Roundness float64 `json:"roundness"`
}

// RenderGraph maps flattened nodes and edges into the visualization
// payload. Purely presentational: no decision logic beyond the
// identity/label separation.
func RenderGraph(nodes []GraphNode, edges []GraphEdge) GraphPayload {
	payload := GraphPayload{
		Nodes: make([]VisNode, 0, len(nodes)),
		Edges: make([]VisEdge, 0, len(edges)),
	}

	for _, node := range nodes {
		payload.Nodes = append(payload.Nodes, VisNode{
			ID:    node.ID,
			Label: node.Keyword,
			Level: node.Level,
			Color: VisColor{
				Background: nodeBackground,
				Border:     nodeBorder,
				Highlight: VisHighlight{
					Background: nodeHighlightBg,
					Border:     nodeBorder,
				},
			},
			Font:        VisFont{Color: nodeFontColor, Size: nodeFontSize},
			Shape:       nodeShape,
			BorderWidth: nodeBorderWidth,
		})
	}

	for _, edge := range edges {
		payload.Edges = append(payload.Edges, VisEdge{
			From:   edge.From,
			To:     edge.To,
			Arrows: "to",
			Color:  VisEdgeColor{Color: edgeColor, Highlight: edgeColor},
			Smooth: VisSmooth{Type: edgeSmoothType, Roundness: edgeSmoothRoundness},
		})
	}

	return payload
}
