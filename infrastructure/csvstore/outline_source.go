package csvstore

import (
	"context"
	"os"

	"go.uber.org/zap"

	pkgerrors "cosylinks-backend/pkg/errors"
)

// OutlineSource reads raw outline text from disk. A missing file is
// "no nodes", not an error, matching the lenient-parser design.
type OutlineSource struct {
	logger *zap.Logger
}

// NewOutlineSource creates a new source.
func NewOutlineSource(logger *zap.Logger) *OutlineSource {
	return &OutlineSource{logger: logger}
}

// Read returns the outline text at path. Empty paths and missing files
// yield empty text.
func (s *OutlineSource) Read(ctx context.Context, path string) (string, error) {
	if path == "" {
		return "", nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		s.logger.Debug("outline file missing, treating as empty", zap.String("path", path))
		return "", nil
	}
	if err != nil {
		return "", pkgerrors.NewStorageError("read outline", err)
	}
	return string(data), nil
}
