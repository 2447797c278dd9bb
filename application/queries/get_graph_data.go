package queries

import (
	pkgerrors "cosylinks-backend/pkg/errors"
	"cosylinks-backend/pkg/utils"
)

// GetGraphDataQuery asks for the flattened, render-ready graph of a
// version's keyword tree. Graph export is an optional stage: callers
// that only need the tree never issue this query.
type GetGraphDataQuery struct {
	TreePath string `json:"tree_path" validate:"required"`
}

// Validate validates the query
func (q GetGraphDataQuery) Validate() error {
	if err := utils.ValidateStruct(q); err != nil {
		return pkgerrors.NewValidationError(err.Error())
	}
	return nil
}
