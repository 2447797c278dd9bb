package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"cosylinks-backend/application/queries"
	querybus "cosylinks-backend/application/queries/bus"
	"cosylinks-backend/infrastructure/dataset"
	"cosylinks-backend/pkg/common"
)

// TreeHandler serves the enriched keyword tree and the flat keyword
// vocabulary of a version.
type TreeHandler struct {
	queryBus *querybus.QueryBus
	registry *dataset.Registry
	logger   *zap.Logger
}

// NewTreeHandler creates a new tree handler
func NewTreeHandler(queryBus *querybus.QueryBus, registry *dataset.Registry, logger *zap.Logger) *TreeHandler {
	return &TreeHandler{queryBus: queryBus, registry: registry, logger: logger}
}

// GetTree handles GET /datasets/{datasetID}/versions/{versionID}/tree
func (h *TreeHandler) GetTree(w http.ResponseWriter, r *http.Request) {
	_, version, err := resolveVersion(h.registry, r)
	if err != nil {
		common.RespondAppError(w, err)
		return
	}

	result, err := h.queryBus.Ask(r.Context(), queries.GetTreeQuery{
		TreePath:          version.TreeTxt,
		OtherKeywordsPath: version.OtherKeywordsTxt,
		RecordsPath:       version.TaggedDatabaseCSV,
	})
	if err != nil {
		h.logger.Error("failed to build tree",
			zap.String("version", version.ID),
			zap.Error(err),
		)
		common.RespondAppError(w, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, result)
}

// ListKeywords handles GET /datasets/{datasetID}/versions/{versionID}/keywords
func (h *TreeHandler) ListKeywords(w http.ResponseWriter, r *http.Request) {
	_, version, err := resolveVersion(h.registry, r)
	if err != nil {
		common.RespondAppError(w, err)
		return
	}

	result, err := h.queryBus.Ask(r.Context(), queries.ListKeywordsQuery{
		TreePath:          version.TreeTxt,
		OtherKeywordsPath: version.OtherKeywordsTxt,
	})
	if err != nil {
		h.logger.Error("failed to list keywords",
			zap.String("version", version.ID),
			zap.Error(err),
		)
		common.RespondAppError(w, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, result)
}
