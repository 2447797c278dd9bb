package handlers

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"cosylinks-backend/application/commands"
	commandbus "cosylinks-backend/application/commands/bus"
	"cosylinks-backend/application/queries"
	querybus "cosylinks-backend/application/queries/bus"
	"cosylinks-backend/domain/procedure"
	"cosylinks-backend/infrastructure/dataset"
	"cosylinks-backend/pkg/common"
)

const maxProcedureBodyBytes = 1 << 20

// exportHeader is the English header used for CSV downloads regardless
// of the header stored on disk.
var exportHeader = []string{"Code", "Title", "Link", "Tag"}

// ProcedureHandler serves the record list of a version and its
// mutations.
type ProcedureHandler struct {
	queryBus   *querybus.QueryBus
	commandBus *commandbus.CommandBus
	registry   *dataset.Registry
	logger     *zap.Logger
}

// NewProcedureHandler creates a new procedure handler
func NewProcedureHandler(
	queryBus *querybus.QueryBus,
	commandBus *commandbus.CommandBus,
	registry *dataset.Registry,
	logger *zap.Logger,
) *ProcedureHandler {
	return &ProcedureHandler{
		queryBus:   queryBus,
		commandBus: commandBus,
		registry:   registry,
		logger:     logger,
	}
}

// ListProcedures handles GET /datasets/{datasetID}/versions/{versionID}/procedures
func (h *ProcedureHandler) ListProcedures(w http.ResponseWriter, r *http.Request) {
	_, version, err := resolveVersion(h.registry, r)
	if err != nil {
		common.RespondAppError(w, err)
		return
	}

	result, err := h.queryBus.Ask(r.Context(), queries.ListProceduresQuery{
		RecordsPath: version.TaggedDatabaseCSV,
	})
	if err != nil {
		h.logger.Error("failed to list procedures",
			zap.String("version", version.ID),
			zap.Error(err),
		)
		common.RespondAppError(w, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, result)
}

// addProcedureRequest is the JSON body of a procedure creation.
type addProcedureRequest struct {
	Code  string `json:"code"`
	Title string `json:"title"`
	Link  string `json:"link"`
	Tag   string `json:"tag"`
}

// AddProcedure handles POST /datasets/{datasetID}/versions/{versionID}/procedures
func (h *ProcedureHandler) AddProcedure(w http.ResponseWriter, r *http.Request) {
	_, version, err := resolveVersion(h.registry, r)
	if err != nil {
		common.RespondAppError(w, err)
		return
	}

	var req addProcedureRequest
	if err := common.ParseJSONBody(r, &req, maxProcedureBodyBytes); err != nil {
		common.RespondError(w, http.StatusBadRequest,
			common.StandardErrorCodes.BadRequest, "invalid request body")
		return
	}

	cmd := commands.AddProcedureCommand{
		RecordsPath: version.TaggedDatabaseCSV,
		Code:        strings.TrimSpace(req.Code),
		Title:       strings.TrimSpace(req.Title),
		Link:        strings.TrimSpace(req.Link),
		Tag:         req.Tag,
	}
	if err := h.commandBus.Send(r.Context(), cmd); err != nil {
		h.logger.Error("failed to add procedure",
			zap.String("version", version.ID),
			zap.String("code", cmd.Code),
			zap.Error(err),
		)
		common.RespondAppError(w, err)
		return
	}

	common.RespondJSON(w, http.StatusCreated, map[string]string{"code": cmd.Code})
}

// updateTagRequest is the JSON body of a tag rewrite.
type updateTagRequest struct {
	Tag string `json:"tag"`
}

// UpdateTag handles PUT /datasets/{datasetID}/versions/{versionID}/procedures/{code}/tag
func (h *ProcedureHandler) UpdateTag(w http.ResponseWriter, r *http.Request) {
	_, version, err := resolveVersion(h.registry, r)
	if err != nil {
		common.RespondAppError(w, err)
		return
	}

	code := chi.URLParam(r, "code")

	var req updateTagRequest
	if err := common.ParseJSONBody(r, &req, maxProcedureBodyBytes); err != nil {
		common.RespondError(w, http.StatusBadRequest,
			common.StandardErrorCodes.BadRequest, "invalid request body")
		return
	}

	cmd := commands.UpdateProcedureTagCommand{
		RecordsPath: version.TaggedDatabaseCSV,
		Code:        code,
		Tag:         req.Tag,
	}
	if err := h.commandBus.Send(r.Context(), cmd); err != nil {
		h.logger.Error("failed to update procedure tag",
			zap.String("version", version.ID),
			zap.String("code", code),
			zap.Error(err),
		)
		common.RespondAppError(w, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, map[string]string{
		"code": code,
		"tag":  procedure.NormalizeTag(req.Tag),
	})
}

// ExportCSV handles GET /datasets/{datasetID}/versions/{versionID}/procedures/export
func (h *ProcedureHandler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	_, version, err := resolveVersion(h.registry, r)
	if err != nil {
		common.RespondAppError(w, err)
		return
	}

	result, err := h.queryBus.Ask(r.Context(), queries.ListProceduresQuery{
		RecordsPath: version.TaggedDatabaseCSV,
	})
	if err != nil {
		h.logger.Error("failed to export procedures",
			zap.String("version", version.ID),
			zap.Error(err),
		)
		common.RespondAppError(w, err)
		return
	}

	records, ok := result.([]procedure.Record)
	if !ok {
		common.RespondError(w, http.StatusInternalServerError,
			common.StandardErrorCodes.InternalError, "unexpected result type")
		return
	}

	filename := fmt.Sprintf("%s_%s_tagged_database.csv", chiParamOr(r, "datasetID", "default"), version.ID)
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	// The BOM keeps spreadsheet tools from misreading Korean titles.
	if _, err := w.Write([]byte("\xEF\xBB\xBF")); err != nil {
		return
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(exportHeader); err != nil {
		return
	}
	for _, rec := range records {
		if err := writer.Write([]string{rec.Code, rec.Title, rec.Link, rec.Tag}); err != nil {
			return
		}
	}
	writer.Flush()
}

func chiParamOr(r *http.Request, key, fallback string) string {
	if v := chi.URLParam(r, key); v != "" {
		return v
	}
	return fallback
}
