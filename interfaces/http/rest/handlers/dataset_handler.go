package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"cosylinks-backend/infrastructure/config"
	"cosylinks-backend/infrastructure/dataset"
	"cosylinks-backend/pkg/common"
)

// DatasetHandler serves the dataset registry listing.
type DatasetHandler struct {
	registry *dataset.Registry
	cfg      *config.Config
	logger   *zap.Logger
}

// NewDatasetHandler creates a new dataset handler
func NewDatasetHandler(registry *dataset.Registry, cfg *config.Config, logger *zap.Logger) *DatasetHandler {
	return &DatasetHandler{registry: registry, cfg: cfg, logger: logger}
}

// datasetView hides resolved filesystem paths from API clients.
type datasetView struct {
	ID       string        `json:"id"`
	Label    string        `json:"label"`
	Versions []versionView `json:"versions"`
}

type versionView struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

type datasetListView struct {
	AppTitle string        `json:"appTitle"`
	Datasets []datasetView `json:"datasets"`
}

// ListDatasets handles GET /datasets
func (h *DatasetHandler) ListDatasets(w http.ResponseWriter, r *http.Request) {
	definitions := h.registry.List()

	view := datasetListView{
		AppTitle: h.cfg.AppTitle,
		Datasets: make([]datasetView, 0, len(definitions)),
	}
	for _, def := range definitions {
		versions := make([]versionView, 0, len(def.Versions))
		for _, ver := range def.Versions {
			versions = append(versions, versionView{ID: ver.ID, Label: ver.Label})
		}
		view.Datasets = append(view.Datasets, datasetView{
			ID:       def.ID,
			Label:    def.Label,
			Versions: versions,
		})
	}

	common.RespondJSON(w, http.StatusOK, view)
}
