// Package handlers implements the read-side query handlers.
package handlers

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"cosylinks-backend/application/ports"
	"cosylinks-backend/application/queries"
	"cosylinks-backend/application/queries/bus"
	"cosylinks-backend/domain/outline"
	"cosylinks-backend/pkg/observability"
)

// GetTreeHandler builds the enriched keyword tree for a version.
type GetTreeHandler struct {
	source  ports.OutlineSource
	store   ports.ProcedureStore
	metrics *observability.Collector
	logger  *zap.Logger
}

// NewGetTreeHandler creates a new handler
func NewGetTreeHandler(
	source ports.OutlineSource,
	store ports.ProcedureStore,
	metrics *observability.Collector,
	logger *zap.Logger,
) *GetTreeHandler {
	return &GetTreeHandler{source: source, store: store, metrics: metrics, logger: logger}
}

// Handle implements bus.QueryHandler
func (h *GetTreeHandler) Handle(ctx context.Context, query bus.Query) (interface{}, error) {
	q, ok := query.(queries.GetTreeQuery)
	if !ok {
		return nil, fmt.Errorf("unexpected query type %T", query)
	}

	records, err := h.store.Load(ctx, q.RecordsPath)
	if err != nil {
		return nil, err
	}

	result := queries.GetTreeResult{
		Tree:          []*outline.TreeView{},
		OtherKeywords: []*outline.TreeView{},
	}

	if text, err := h.source.Read(ctx, q.TreePath); err != nil {
		return nil, err
	} else if text != "" {
		forest := outline.BuildForest(text)
		result.Tree = outline.EnrichForest(forest, records)
		h.metrics.TreesBuilt.Inc()
	}

	if text, err := h.source.Read(ctx, q.OtherKeywordsPath); err != nil {
		return nil, err
	} else if text != "" {
		forest := outline.BuildForest(text)
		result.OtherKeywords = outline.EnrichForest(forest, records)
		h.metrics.TreesBuilt.Inc()
	}

	h.logger.Debug("tree built",
		zap.String("treePath", q.TreePath),
		zap.Int("roots", len(result.Tree)),
		zap.Int("records", len(records)),
	)
	return result, nil
}

// GetGraphDataHandler flattens a version's tree into the visualization
// payload.
type GetGraphDataHandler struct {
	source ports.OutlineSource
	logger *zap.Logger
}

// NewGetGraphDataHandler creates a new handler
func NewGetGraphDataHandler(source ports.OutlineSource, logger *zap.Logger) *GetGraphDataHandler {
	return &GetGraphDataHandler{source: source, logger: logger}
}

// Handle implements bus.QueryHandler
func (h *GetGraphDataHandler) Handle(ctx context.Context, query bus.Query) (interface{}, error) {
	q, ok := query.(queries.GetGraphDataQuery)
	if !ok {
		return nil, fmt.Errorf("unexpected query type %T", query)
	}

	text, err := h.source.Read(ctx, q.TreePath)
	if err != nil {
		return nil, err
	}

	nodes, edges := outline.FlattenForest(outline.BuildForest(text))
	payload := outline.RenderGraph(nodes, edges)

	h.logger.Debug("graph flattened",
		zap.String("treePath", q.TreePath),
		zap.Int("nodes", len(payload.Nodes)),
		zap.Int("edges", len(payload.Edges)),
	)
	return payload, nil
}

// ListKeywordsHandler builds the flat keyword vocabulary of a version.
type ListKeywordsHandler struct {
	source ports.OutlineSource
	logger *zap.Logger
}

// NewListKeywordsHandler creates a new handler
func NewListKeywordsHandler(source ports.OutlineSource, logger *zap.Logger) *ListKeywordsHandler {
	return &ListKeywordsHandler{source: source, logger: logger}
}

// Handle implements bus.QueryHandler
func (h *ListKeywordsHandler) Handle(ctx context.Context, query bus.Query) (interface{}, error) {
	q, ok := query.(queries.ListKeywordsQuery)
	if !ok {
		return nil, fmt.Errorf("unexpected query type %T", query)
	}

	treeText, err := h.source.Read(ctx, q.TreePath)
	if err != nil {
		return nil, err
	}
	otherText, err := h.source.Read(ctx, q.OtherKeywordsPath)
	if err != nil {
		return nil, err
	}

	return outline.Vocabulary(
		outline.BuildForest(treeText),
		outline.BuildForest(otherText),
	), nil
}
