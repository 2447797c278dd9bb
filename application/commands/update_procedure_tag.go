package commands

import (
	pkgerrors "cosylinks-backend/pkg/errors"
	"cosylinks-backend/pkg/utils"
)

// UpdateProcedureTagCommand rewrites the tag of an existing record.
// The raw value is normalized before storing; an entirely empty result
// stores as an empty string.
type UpdateProcedureTagCommand struct {
	RecordsPath string `json:"-" validate:"required"`
	Code        string `json:"code" validate:"required"`
	Tag         string `json:"tag"`
}

// Validate validates the command
func (c UpdateProcedureTagCommand) Validate() error {
	if err := utils.ValidateStruct(c); err != nil {
		return pkgerrors.NewValidationError(err.Error())
	}
	return nil
}
