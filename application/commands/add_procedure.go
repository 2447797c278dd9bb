// Package commands defines the write-side operations of the service.
package commands

import (
	pkgerrors "cosylinks-backend/pkg/errors"
	"cosylinks-backend/pkg/utils"
)

// AddProcedureCommand appends a new record to a version's store. Tag is
// optional: a missing tag is stored as the uncategorized sentinel. A
// duplicate code is silently skipped; the caller cannot distinguish
// "added" from "duplicate skipped" from the command outcome.
type AddProcedureCommand struct {
	RecordsPath string `json:"-" validate:"required"`
	Code        string `json:"code" validate:"required"`
	Title       string `json:"title" validate:"required"`
	Link        string `json:"link" validate:"required"`
	Tag         string `json:"tag"`
}

// Validate validates the command
func (c AddProcedureCommand) Validate() error {
	if err := utils.ValidateStruct(c); err != nil {
		return pkgerrors.NewValidationError(err.Error())
	}
	return nil
}
