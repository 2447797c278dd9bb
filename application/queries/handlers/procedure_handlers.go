package handlers

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"cosylinks-backend/application/ports"
	"cosylinks-backend/application/queries"
	"cosylinks-backend/application/queries/bus"
	"cosylinks-backend/domain/procedure"
)

// ListProceduresHandler returns a version's full record list.
type ListProceduresHandler struct {
	store  ports.ProcedureStore
	logger *zap.Logger
}

// NewListProceduresHandler creates a new handler
func NewListProceduresHandler(store ports.ProcedureStore, logger *zap.Logger) *ListProceduresHandler {
	return &ListProceduresHandler{store: store, logger: logger}
}

// Handle implements bus.QueryHandler
func (h *ListProceduresHandler) Handle(ctx context.Context, query bus.Query) (interface{}, error) {
	q, ok := query.(queries.ListProceduresQuery)
	if !ok {
		return nil, fmt.Errorf("unexpected query type %T", query)
	}

	return h.store.Load(ctx, q.RecordsPath)
}

// SearchProceduresHandler runs a title search over a version's records.
type SearchProceduresHandler struct {
	store  ports.ProcedureStore
	logger *zap.Logger
}

// NewSearchProceduresHandler creates a new handler
func NewSearchProceduresHandler(store ports.ProcedureStore, logger *zap.Logger) *SearchProceduresHandler {
	return &SearchProceduresHandler{store: store, logger: logger}
}

// Handle implements bus.QueryHandler
func (h *SearchProceduresHandler) Handle(ctx context.Context, query bus.Query) (interface{}, error) {
	q, ok := query.(queries.SearchProceduresQuery)
	if !ok {
		return nil, fmt.Errorf("unexpected query type %T", query)
	}

	records, err := h.store.Load(ctx, q.RecordsPath)
	if err != nil {
		return nil, err
	}

	results := procedure.SearchByTitle(records, q.Query)
	h.logger.Debug("title search",
		zap.String("query", q.Query),
		zap.Int("hits", len(results)),
	)
	return results, nil
}
