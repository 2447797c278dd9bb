// Package handlers implements the HTTP request handlers.
package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"cosylinks-backend/infrastructure/dataset"
)

// resolveVersion resolves the dataset and version named in the URL.
// Missing path values fall back to the registry defaults (first
// dataset, first version).
func resolveVersion(registry *dataset.Registry, r *http.Request) (dataset.Definition, dataset.Version, error) {
	datasetID := chi.URLParam(r, "datasetID")
	versionID := chi.URLParam(r, "versionID")
	return registry.ResolveVersion(datasetID, versionID)
}
