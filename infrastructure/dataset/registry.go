// Package dataset loads the datasets.json registry: the datasets this
// instance serves and, per dataset, the versions binding an outline
// file and a tagged record store together.
package dataset

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"

	pkgerrors "cosylinks-backend/pkg/errors"
)

// Version binds one outline revision to its record store. Paths are
// absolute after loading; any of them may be empty, which downstream
// code treats as "no data".
type Version struct {
	ID                string `json:"id"`
	Label             string `json:"label"`
	TreeTxt           string `json:"tree_txt,omitempty"`
	OtherKeywordsTxt  string `json:"other_keywords_txt,omitempty"`
	TaggedDatabaseCSV string `json:"tagged_database_csv,omitempty"`
}

// Definition is one dataset with its versions.
type Definition struct {
	ID       string    `json:"id"`
	Label    string    `json:"label"`
	Versions []Version `json:"versions"`
}

type registryFile struct {
	Datasets []definitionFile `json:"datasets"`
}

// definitionFile mirrors the on-disk shape, including the legacy flat
// fields that predate the versions array.
type definitionFile struct {
	ID                string        `json:"id"`
	Label             string        `json:"label"`
	Versions          []versionFile `json:"versions"`
	TreeTxt           string        `json:"tree_txt"`
	OtherKeywordsTxt  string        `json:"other_keywords_txt"`
	TaggedDatabaseCSV string        `json:"tagged_database_csv"`
}

type versionFile struct {
	ID                string `json:"id"`
	Label             string `json:"label"`
	TreeTxt           string `json:"tree_txt"`
	OtherKeywordsTxt  string `json:"other_keywords_txt"`
	TaggedDatabaseCSV string `json:"tagged_database_csv"`
}

// Registry holds the loaded dataset definitions and supports hot
// reloading when the backing file changes.
type Registry struct {
	path   string
	logger *zap.Logger

	mu          sync.RWMutex
	definitions []Definition
}

// NewRegistry loads the registry from path, creating a default file
// when none exists.
func NewRegistry(path string, logger *zap.Logger) (*Registry, error) {
	r := &Registry{path: path, logger: logger}
	if err := r.Reload(); err != nil {
		return nil, err
	}
	return r, nil
}

// Reload re-reads the registry file. On failure the previous
// definitions are kept.
func (r *Registry) Reload() error {
	if err := ensureDefaultFile(r.path); err != nil {
		return err
	}

	data, err := os.ReadFile(r.path)
	if err != nil {
		return fmt.Errorf("failed to read dataset registry: %w", err)
	}

	var raw registryFile
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to parse dataset registry: %w", err)
	}

	baseDir := filepath.Dir(r.path)
	definitions := make([]Definition, 0, len(raw.Datasets))
	for _, item := range raw.Datasets {
		def := Definition{
			ID:    item.ID,
			Label: item.Label,
		}
		if def.Label == "" {
			def.Label = def.ID
		}

		for _, ver := range item.Versions {
			def.Versions = append(def.Versions, Version{
				ID:                ver.ID,
				Label:             labelOr(ver.Label, ver.ID),
				TreeTxt:           resolvePath(baseDir, ver.TreeTxt),
				OtherKeywordsTxt:  resolvePath(baseDir, ver.OtherKeywordsTxt),
				TaggedDatabaseCSV: resolvePath(baseDir, ver.TaggedDatabaseCSV),
			})
		}

		// Legacy flat fields convert to a single "default" version.
		if len(def.Versions) == 0 &&
			(item.TreeTxt != "" || item.OtherKeywordsTxt != "" || item.TaggedDatabaseCSV != "") {
			def.Versions = append(def.Versions, Version{
				ID:                "default",
				Label:             "default",
				TreeTxt:           resolvePath(baseDir, item.TreeTxt),
				OtherKeywordsTxt:  resolvePath(baseDir, item.OtherKeywordsTxt),
				TaggedDatabaseCSV: resolvePath(baseDir, item.TaggedDatabaseCSV),
			})
		}

		definitions = append(definitions, def)
	}

	if len(definitions) == 0 {
		return fmt.Errorf("dataset registry %s must define at least one dataset", r.path)
	}

	r.mu.Lock()
	r.definitions = definitions
	r.mu.Unlock()

	r.logger.Info("dataset registry loaded",
		zap.String("path", r.path),
		zap.Int("datasets", len(definitions)),
	)
	return nil
}

// List returns all dataset definitions in file order.
func (r *Registry) List() []Definition {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Definition, len(r.definitions))
	copy(out, r.definitions)
	return out
}

// Resolve returns the dataset with the given id; an empty id resolves
// to the first dataset.
func (r *Registry) Resolve(datasetID string) (Definition, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if datasetID == "" {
		return r.definitions[0], nil
	}
	for _, def := range r.definitions {
		if def.ID == datasetID {
			return def, nil
		}
	}
	return Definition{}, pkgerrors.NewNotFoundError("dataset")
}

// ResolveVersion returns a dataset and one of its versions; an empty
// version id resolves to the dataset's first version.
func (r *Registry) ResolveVersion(datasetID, versionID string) (Definition, Version, error) {
	def, err := r.Resolve(datasetID)
	if err != nil {
		return Definition{}, Version{}, err
	}
	if len(def.Versions) == 0 {
		return Definition{}, Version{}, pkgerrors.NewNotFoundError("version")
	}
	if versionID == "" {
		return def, def.Versions[0], nil
	}
	for _, ver := range def.Versions {
		if ver.ID == versionID {
			return def, ver, nil
		}
	}
	return Definition{}, Version{}, pkgerrors.NewNotFoundError("version")
}

// Path returns the backing file path.
func (r *Registry) Path() string {
	return r.path
}

func labelOr(label, fallback string) string {
	if label != "" {
		return label
	}
	return fallback
}

// resolvePath resolves relative paths against the registry file's
// directory; absolute paths pass through unchanged.
func resolvePath(baseDir, path string) string {
	if path == "" {
		return ""
	}
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(baseDir, path)
}

// ensureDefaultFile writes a starter registry when the file is missing.
func ensureDefaultFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return err
	}

	payload := registryFile{
		Datasets: []definitionFile{
			{
				ID:    "set_a",
				Label: "Set A",
				Versions: []versionFile{
					{
						ID:                "default",
						Label:             "default",
						TreeTxt:           "set_a_tree.txt",
						TaggedDatabaseCSV: "set_a_tagged_database.csv",
					},
				},
			},
			{
				ID:    "set_b",
				Label: "Set B",
				Versions: []versionFile{
					{
						ID:                "default",
						Label:             "default",
						TreeTxt:           "set_b_tree.txt",
						TaggedDatabaseCSV: "set_b_tagged_database.csv",
					},
				},
			},
		},
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
