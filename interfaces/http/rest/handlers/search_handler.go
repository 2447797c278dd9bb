package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"cosylinks-backend/application/queries"
	querybus "cosylinks-backend/application/queries/bus"
	"cosylinks-backend/infrastructure/dataset"
	"cosylinks-backend/pkg/common"
)

// SearchHandler serves title search over a version's records.
type SearchHandler struct {
	queryBus *querybus.QueryBus
	registry *dataset.Registry
	logger   *zap.Logger
}

// NewSearchHandler creates a new search handler
func NewSearchHandler(queryBus *querybus.QueryBus, registry *dataset.Registry, logger *zap.Logger) *SearchHandler {
	return &SearchHandler{queryBus: queryBus, registry: registry, logger: logger}
}

// SearchProcedures handles GET /datasets/{datasetID}/versions/{versionID}/procedures/search
func (h *SearchHandler) SearchProcedures(w http.ResponseWriter, r *http.Request) {
	_, version, err := resolveVersion(h.registry, r)
	if err != nil {
		common.RespondAppError(w, err)
		return
	}

	result, err := h.queryBus.Ask(r.Context(), queries.SearchProceduresQuery{
		RecordsPath: version.TaggedDatabaseCSV,
		Query:       r.URL.Query().Get("q"),
	})
	if err != nil {
		h.logger.Error("failed to search procedures",
			zap.String("version", version.ID),
			zap.Error(err),
		)
		common.RespondAppError(w, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, result)
}
