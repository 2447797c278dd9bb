package queries

import (
	pkgerrors "cosylinks-backend/pkg/errors"
	"cosylinks-backend/pkg/utils"
)

// SearchProceduresQuery asks for the records whose title contains the
// query string. An empty query is valid and returns an empty result;
// it never means "match all". An empty records path is a version
// without a record store and searches nothing.
type SearchProceduresQuery struct {
	RecordsPath string `json:"records_path"`
	Query       string `json:"q"`
}

// Validate validates the query
func (q SearchProceduresQuery) Validate() error {
	if err := utils.ValidateStruct(q); err != nil {
		return pkgerrors.NewValidationError(err.Error())
	}
	return nil
}
