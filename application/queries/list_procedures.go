package queries

import (
	pkgerrors "cosylinks-backend/pkg/errors"
	"cosylinks-backend/pkg/utils"
)

// ListProceduresQuery asks for a version's full record list in storage
// order. An empty path is a version without a record store and yields
// an empty list.
type ListProceduresQuery struct {
	RecordsPath string `json:"records_path"`
}

// Validate validates the query
func (q ListProceduresQuery) Validate() error {
	if err := utils.ValidateStruct(q); err != nil {
		return pkgerrors.NewValidationError(err.Error())
	}
	return nil
}
