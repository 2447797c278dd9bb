// Package ports declares the storage interfaces the application layer
// depends on. Implementations live under infrastructure.
package ports

import (
	"context"

	"cosylinks-backend/domain/procedure"
)

// ProcedureStore loads and persists a version's procedure records.
// Update serializes the whole load-modify-save cycle per path; the
// domain collection itself stays lock-free.
type ProcedureStore interface {
	// Load returns the records stored at path. A missing file is not
	// an error: it yields an empty list.
	Load(ctx context.Context, path string) ([]procedure.Record, error)

	// Update applies fn to the current records under a per-store lock
	// and persists the result.
	Update(ctx context.Context, path string, fn func([]procedure.Record) ([]procedure.Record, error)) error
}

// OutlineSource reads raw outline text. A missing file yields empty
// text, not an error.
type OutlineSource interface {
	Read(ctx context.Context, path string) (string, error)
}
