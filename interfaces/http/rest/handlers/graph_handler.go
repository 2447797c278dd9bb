package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"cosylinks-backend/application/queries"
	querybus "cosylinks-backend/application/queries/bus"
	"cosylinks-backend/infrastructure/dataset"
	"cosylinks-backend/pkg/common"
)

// GraphHandler serves the flattened visualization payload of a
// version's keyword tree.
type GraphHandler struct {
	queryBus *querybus.QueryBus
	registry *dataset.Registry
	logger   *zap.Logger
}

// NewGraphHandler creates a new graph handler
func NewGraphHandler(queryBus *querybus.QueryBus, registry *dataset.Registry, logger *zap.Logger) *GraphHandler {
	return &GraphHandler{queryBus: queryBus, registry: registry, logger: logger}
}

// GetGraphData handles GET /datasets/{datasetID}/versions/{versionID}/graph
func (h *GraphHandler) GetGraphData(w http.ResponseWriter, r *http.Request) {
	_, version, err := resolveVersion(h.registry, r)
	if err != nil {
		common.RespondAppError(w, err)
		return
	}

	if version.TreeTxt == "" {
		// No outline configured: graph export is skipped, not failed.
		common.RespondJSON(w, http.StatusOK, map[string]interface{}{
			"nodes": []interface{}{},
			"edges": []interface{}{},
		})
		return
	}

	result, err := h.queryBus.Ask(r.Context(), queries.GetGraphDataQuery{
		TreePath: version.TreeTxt,
	})
	if err != nil {
		h.logger.Error("failed to get graph data",
			zap.String("version", version.ID),
			zap.Error(err),
		)
		common.RespondAppError(w, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, result)
}
