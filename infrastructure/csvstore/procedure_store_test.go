package csvstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"cosylinks-backend/domain/procedure"
	"cosylinks-backend/pkg/observability"
)

func newTestStore() *ProcedureStore {
	return NewProcedureStore(observability.NewCollector("test"), zap.NewNop())
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestProcedureStoreLoad(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()

	t.Run("empty path yields empty list", func(t *testing.T) {
		records, err := store.Load(ctx, "")
		require.NoError(t, err)
		assert.Empty(t, records)
		assert.NotNil(t, records)
	})

	t.Run("missing file yields empty list", func(t *testing.T) {
		records, err := store.Load(ctx, filepath.Join(t.TempDir(), "missing.csv"))
		require.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("korean header", func(t *testing.T) {
		path := writeFile(t, t.TempDir(), "db.csv",
			"코드,제목,link,tag\nP-001,CPU 점검,http://a,cpu;mem\n")

		records, err := store.Load(ctx, path)
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "P-001", records[0].Code)
		assert.Equal(t, "CPU 점검", records[0].Title)
		assert.Equal(t, "http://a", records[0].Link)
		assert.Equal(t, "cpu;mem", records[0].Tag)
	})

	t.Run("english header with url column", func(t *testing.T) {
		path := writeFile(t, t.TempDir(), "db.csv",
			"Code,Title,URL,Tag\nP-002,Restart,http://b,REST\n")

		records, err := store.Load(ctx, path)
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "P-002", records[0].Code)
		assert.Equal(t, "http://b", records[0].Link)
	})

	t.Run("name column wins over code column", func(t *testing.T) {
		path := writeFile(t, t.TempDir(), "db.csv",
			"code,name,title,link,tag\nWRONG,RIGHT,T,L,X\n")

		records, err := store.Load(ctx, path)
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "RIGHT", records[0].Code)
	})

	t.Run("byte order mark is stripped", func(t *testing.T) {
		path := writeFile(t, t.TempDir(), "db.csv",
			"\xEF\xBB\xBFcode,title,link,tag\nP-003,T,L,X\n")

		records, err := store.Load(ctx, path)
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "P-003", records[0].Code)
	})

	t.Run("cells are trimmed", func(t *testing.T) {
		path := writeFile(t, t.TempDir(), "db.csv",
			"code,title,link,tag\n  P-004 , Title , http://c , cpu \n")

		records, err := store.Load(ctx, path)
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "P-004", records[0].Code)
		assert.Equal(t, "Title", records[0].Title)
	})

	t.Run("unresolvable columns load as empty strings", func(t *testing.T) {
		path := writeFile(t, t.TempDir(), "db.csv",
			"foo,bar\n1,2\n")

		records, err := store.Load(ctx, path)
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, procedure.Record{}, records[0])
	})
}

func TestProcedureStoreUpdate(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()

	t.Run("append round trips", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "db.csv")

		err := store.Update(ctx, path, func(records []procedure.Record) ([]procedure.Record, error) {
			return append(records, procedure.Record{Code: "P-001", Title: "T", Link: "L", Tag: "cpu"}), nil
		})
		require.NoError(t, err)

		records, err := store.Load(ctx, path)
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "P-001", records[0].Code)
		assert.Equal(t, "cpu", records[0].Tag)
	})

	t.Run("new file gets byte order mark", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "db.csv")

		err := store.Update(ctx, path, func(records []procedure.Record) ([]procedure.Record, error) {
			return append(records, procedure.Record{Code: "P-001"}), nil
		})
		require.NoError(t, err)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, utf8BOM, data[:3])
	})

	t.Run("existing header is preserved", func(t *testing.T) {
		path := writeFile(t, t.TempDir(), "db.csv",
			"name,제목,url,태그\nP-001,Old,http://a,x\n")

		err := store.Update(ctx, path, func(records []procedure.Record) ([]procedure.Record, error) {
			return append(records, procedure.Record{Code: "P-002", Title: "New", Link: "http://b", Tag: "y"}), nil
		})
		require.NoError(t, err)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		rows, err := parseCSV(data)
		require.NoError(t, err)
		require.GreaterOrEqual(t, len(rows), 3)
		assert.Equal(t, []string{"name", "제목", "url", "태그"}, rows[0])
		assert.Equal(t, []string{"P-002", "New", "http://b", "y"}, rows[2])
	})

	t.Run("empty path is a validation error", func(t *testing.T) {
		err := store.Update(ctx, "", func(records []procedure.Record) ([]procedure.Record, error) {
			return records, nil
		})
		assert.Error(t, err)
	})

	t.Run("callback error aborts the save", func(t *testing.T) {
		path := writeFile(t, t.TempDir(), "db.csv",
			"code,title,link,tag\nP-001,T,L,X\n")
		before, err := os.ReadFile(path)
		require.NoError(t, err)

		err = store.Update(ctx, path, func(records []procedure.Record) ([]procedure.Record, error) {
			return nil, assert.AnError
		})
		assert.Error(t, err)

		after, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, before, after)
	})
}

func TestOutlineSourceRead(t *testing.T) {
	ctx := context.Background()
	source := NewOutlineSource(zap.NewNop())

	t.Run("empty path yields empty text", func(t *testing.T) {
		text, err := source.Read(ctx, "")
		require.NoError(t, err)
		assert.Empty(t, text)
	})

	t.Run("missing file yields empty text", func(t *testing.T) {
		text, err := source.Read(ctx, filepath.Join(t.TempDir(), "missing.txt"))
		require.NoError(t, err)
		assert.Empty(t, text)
	})

	t.Run("reads file content verbatim", func(t *testing.T) {
		path := writeFile(t, t.TempDir(), "tree.txt", "A\n    B\n")
		text, err := source.Read(ctx, path)
		require.NoError(t, err)
		assert.Equal(t, "A\n    B\n", text)
	})
}
