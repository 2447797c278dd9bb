// Package csvstore persists procedure records in CSV files, tolerating
// the bilingual header variants found in operator-maintained sheets.
package csvstore

import (
	"bytes"
	"context"
	"encoding/csv"
	"os"
	"strings"
	"sync"

	"go.uber.org/zap"

	"cosylinks-backend/domain/procedure"
	pkgerrors "cosylinks-backend/pkg/errors"
	"cosylinks-backend/pkg/observability"
)

// utf8BOM is written on save and stripped on load; the sheets these
// files round-trip through expect it.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// defaultHeader is used when writing a file that does not exist yet.
var defaultHeader = []string{"코드", "제목", "link", "tag"}

// Column-name aliases, matched case-insensitively. "name" wins over
// "code" for the code column.
var (
	codePrimaryAliases = []string{"name"}
	codeAliases        = []string{"코드", "code"}
	titleAliases       = []string{"제목", "title"}
	linkAliases        = []string{"link", "url", "링크"}
	tagAliases         = []string{"tag", "태그"}
)

// ProcedureStore is the file-backed record store. Update serializes
// writers per path; readers are not blocked by writers of other paths.
type ProcedureStore struct {
	metrics *observability.Collector
	logger  *zap.Logger

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewProcedureStore creates a new store.
func NewProcedureStore(metrics *observability.Collector, logger *zap.Logger) *ProcedureStore {
	return &ProcedureStore{
		metrics: metrics,
		logger:  logger,
		locks:   make(map[string]*sync.Mutex),
	}
}

// Load reads the records stored at path. A missing file or an empty
// path yields an empty list, never an error.
func (s *ProcedureStore) Load(ctx context.Context, path string) ([]procedure.Record, error) {
	records := make([]procedure.Record, 0)
	if path == "" {
		return records, nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		s.logger.Debug("record store file missing, treating as empty", zap.String("path", path))
		return records, nil
	}
	if err != nil {
		s.metrics.StoreOperations.WithLabelValues("load", "error").Inc()
		return nil, pkgerrors.NewStorageError("load", err)
	}

	rows, err := parseCSV(data)
	if err != nil {
		s.metrics.StoreOperations.WithLabelValues("load", "error").Inc()
		return nil, pkgerrors.NewStorageError("load", err)
	}
	if len(rows) == 0 {
		return records, nil
	}

	cols := resolveColumns(rows[0])
	for _, row := range rows[1:] {
		records = append(records, procedure.Record{
			Code:  cell(row, cols.code),
			Title: cell(row, cols.title),
			Link:  cell(row, cols.link),
			Tag:   cell(row, cols.tag),
		})
	}

	s.metrics.StoreOperations.WithLabelValues("load", "ok").Inc()
	return records, nil
}

// Update applies fn to the current records under the path's lock and
// persists the result.
func (s *ProcedureStore) Update(ctx context.Context, path string, fn func([]procedure.Record) ([]procedure.Record, error)) error {
	if path == "" {
		return pkgerrors.NewValidationError("record store path is not configured")
	}

	lock := s.lockFor(path)
	lock.Lock()
	defer lock.Unlock()

	records, err := s.Load(ctx, path)
	if err != nil {
		return err
	}

	updated, err := fn(records)
	if err != nil {
		return err
	}

	return s.save(path, updated)
}

// save writes the records, preserving the existing file's header row
// (column names and order) when one is present.
func (s *ProcedureStore) save(path string, records []procedure.Record) error {
	header := append([]string(nil), defaultHeader...)
	if data, err := os.ReadFile(path); err == nil {
		if rows, err := parseCSV(data); err == nil && len(rows) > 0 && len(rows[0]) > 0 {
			header = rows[0]
		}
	}

	hasNameColumn := false
	for _, field := range header {
		if strings.ToLower(field) == "name" {
			hasNameColumn = true
			break
		}
	}

	var buf bytes.Buffer
	buf.Write(utf8BOM)
	writer := csv.NewWriter(&buf)
	if err := writer.Write(header); err != nil {
		return pkgerrors.NewStorageError("save", err)
	}

	for _, record := range records {
		row := make([]string, len(header))
		for i, field := range header {
			switch lower := strings.ToLower(field); {
			case lower == "name":
				row[i] = record.Code
			case lower == "코드" || lower == "code":
				// Only carries the code when no Name column exists.
				if !hasNameColumn {
					row[i] = record.Code
				}
			case lower == "제목" || lower == "title":
				row[i] = record.Title
			case lower == "link" || lower == "url" || lower == "링크":
				row[i] = record.Link
			case lower == "tag" || lower == "태그":
				row[i] = record.Tag
			}
		}
		if err := writer.Write(row); err != nil {
			return pkgerrors.NewStorageError("save", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return pkgerrors.NewStorageError("save", err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		s.metrics.StoreOperations.WithLabelValues("save", "error").Inc()
		return pkgerrors.NewStorageError("save", err)
	}

	s.metrics.StoreOperations.WithLabelValues("save", "ok").Inc()
	s.logger.Debug("record store saved", zap.String("path", path), zap.Int("records", len(records)))
	return nil
}

func (s *ProcedureStore) lockFor(path string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.locks[path]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[path] = lock
	}
	return lock
}

func parseCSV(data []byte) ([][]string, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	return reader.ReadAll()
}

type columnIndexes struct {
	code  int
	title int
	link  int
	tag   int
}

// resolveColumns maps the header row to record fields, matching
// aliases case-insensitively. A column that cannot be resolved stays
// at -1 and its field loads as the empty string.
func resolveColumns(header []string) columnIndexes {
	cols := columnIndexes{code: -1, title: -1, link: -1, tag: -1}

	cols.code = findColumn(header, codePrimaryAliases)
	if cols.code < 0 {
		cols.code = findColumn(header, codeAliases)
	}
	cols.title = findColumn(header, titleAliases)
	cols.link = findColumn(header, linkAliases)
	cols.tag = findColumn(header, tagAliases)
	return cols
}

func findColumn(header []string, aliases []string) int {
	for i, field := range header {
		lower := strings.ToLower(strings.TrimSpace(field))
		for _, alias := range aliases {
			if lower == alias {
				return i
			}
		}
	}
	return -1
}

func cell(row []string, index int) string {
	if index < 0 || index >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[index])
}
