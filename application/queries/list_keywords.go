package queries

import (
	pkgerrors "cosylinks-backend/pkg/errors"
	"cosylinks-backend/pkg/utils"
)

// ListKeywordsQuery asks for the flat keyword vocabulary of a version:
// the sorted union of every keyword in the tree and other-keywords
// outlines, for form-control population.
type ListKeywordsQuery struct {
	TreePath          string `json:"tree_path"`
	OtherKeywordsPath string `json:"other_keywords_path,omitempty"`
}

// Validate validates the query
func (q ListKeywordsQuery) Validate() error {
	if err := utils.ValidateStruct(q); err != nil {
		return pkgerrors.NewValidationError(err.Error())
	}
	return nil
}
