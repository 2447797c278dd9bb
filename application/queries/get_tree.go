// Package queries defines the read-side operations of the service.
package queries

import (
	"cosylinks-backend/domain/outline"
	pkgerrors "cosylinks-backend/pkg/errors"
	"cosylinks-backend/pkg/utils"
)

// GetTreeQuery asks for a version's enriched keyword tree. Paths are
// resolved by the interface layer from the dataset registry; empty
// paths degrade to empty forests rather than failing.
type GetTreeQuery struct {
	TreePath          string `json:"tree_path"`
	OtherKeywordsPath string `json:"other_keywords_path,omitempty"`
	RecordsPath       string `json:"records_path,omitempty"`
}

// Validate validates the query
func (q GetTreeQuery) Validate() error {
	if err := utils.ValidateStruct(q); err != nil {
		return pkgerrors.NewValidationError(err.Error())
	}
	return nil
}

// GetTreeResult is the enriched nested structure for tree-view
// rendering, plus the flat other-keywords forest enriched the same way.
type GetTreeResult struct {
	Tree          []*outline.TreeView `json:"tree"`
	OtherKeywords []*outline.TreeView `json:"otherKeywords"`
}
