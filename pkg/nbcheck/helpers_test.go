package nbcheck

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

type testCell struct {
	Type   string   `json:"cell_type"`
	Source []string `json:"source"`
}

func code(lines ...string) testCell {
	return testCell{Type: "code", Source: lines}
}

func markdown(lines ...string) testCell {
	return testCell{Type: "markdown", Source: lines}
}

func writeNotebook(t *testing.T, cells ...testCell) string {
	t.Helper()
	if cells == nil {
		cells = []testCell{}
	}
	data, err := json.Marshal(map[string]any{
		"cells":          cells,
		"metadata":       map[string]any{},
		"nbformat":       4,
		"nbformat_minor": 5,
	})
	require.NoError(t, err)
	return writeRaw(t, "notebook.ipynb", string(data))
}

func writeRaw(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}
