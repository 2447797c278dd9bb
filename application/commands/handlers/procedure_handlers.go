// Package handlers implements the write-side command handlers.
package handlers

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"cosylinks-backend/application/commands"
	"cosylinks-backend/application/commands/bus"
	"cosylinks-backend/application/ports"
	"cosylinks-backend/domain/procedure"
	pkgerrors "cosylinks-backend/pkg/errors"
	"cosylinks-backend/pkg/observability"
)

// AddProcedureHandler appends a record to a version's store.
type AddProcedureHandler struct {
	store   ports.ProcedureStore
	metrics *observability.Collector
	logger  *zap.Logger
}

// NewAddProcedureHandler creates a new handler
func NewAddProcedureHandler(
	store ports.ProcedureStore,
	metrics *observability.Collector,
	logger *zap.Logger,
) *AddProcedureHandler {
	return &AddProcedureHandler{store: store, metrics: metrics, logger: logger}
}

// Handle implements bus.CommandHandler
func (h *AddProcedureHandler) Handle(ctx context.Context, cmd bus.Command) error {
	c, ok := cmd.(commands.AddProcedureCommand)
	if !ok {
		return fmt.Errorf("unexpected command type %T", cmd)
	}

	return h.store.Update(ctx, c.RecordsPath, func(records []procedure.Record) ([]procedure.Record, error) {
		collection := procedure.NewCollection(records)
		if collection.Contains(c.Code) {
			// Silent no-op by contract; the log line is the only trace.
			h.logger.Debug("duplicate procedure code skipped", zap.String("code", c.Code))
			return collection.Records(), nil
		}
		collection.Add(procedure.Record{
			Code:  c.Code,
			Title: c.Title,
			Link:  c.Link,
			Tag:   c.Tag,
		})
		h.metrics.ProceduresAdded.Inc()
		h.logger.Info("procedure added", zap.String("code", c.Code))
		return collection.Records(), nil
	})
}

// UpdateProcedureTagHandler rewrites a record's tag.
type UpdateProcedureTagHandler struct {
	store   ports.ProcedureStore
	metrics *observability.Collector
	logger  *zap.Logger
}

// NewUpdateProcedureTagHandler creates a new handler
func NewUpdateProcedureTagHandler(
	store ports.ProcedureStore,
	metrics *observability.Collector,
	logger *zap.Logger,
) *UpdateProcedureTagHandler {
	return &UpdateProcedureTagHandler{store: store, metrics: metrics, logger: logger}
}

// Handle implements bus.CommandHandler
func (h *UpdateProcedureTagHandler) Handle(ctx context.Context, cmd bus.Command) error {
	c, ok := cmd.(commands.UpdateProcedureTagCommand)
	if !ok {
		return fmt.Errorf("unexpected command type %T", cmd)
	}

	return h.store.Update(ctx, c.RecordsPath, func(records []procedure.Record) ([]procedure.Record, error) {
		collection := procedure.NewCollection(records)
		if !collection.UpdateTag(c.Code, c.Tag) {
			return nil, pkgerrors.NewNotFoundError("procedure")
		}
		h.metrics.TagsUpdated.Inc()
		h.logger.Info("procedure tag updated",
			zap.String("code", c.Code),
			zap.String("tag", procedure.NormalizeTag(c.Tag)),
		)
		return collection.Records(), nil
	})
}
