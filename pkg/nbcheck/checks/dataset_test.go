package checks

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/nbcheck-go/pkg/nbcheck/models"
)

func TestDatasetMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Aircraft_Incident_Dataset.csv")

	res := Dataset(path, 5)
	assert.Equal(t, IDDataset, res.ID)
	assert.True(t, res.Blocking)
	assert.Equal(t, models.StatusFail, res.Status)
	assert.True(t, res.Failed())
	require.NotNil(t, res.Dataset)
	assert.False(t, res.Dataset.Exists)
}

func TestDatasetReadable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(path, []byte("Date,Aircraft\n2001,B737\n2002,A320\n"), 0o644))

	res := Dataset(path, 5)
	assert.Equal(t, models.StatusPass, res.Status)
	require.NotNil(t, res.Dataset.Sample)
	assert.Equal(t, 2, res.Dataset.Sample.Columns())
	assert.Equal(t, 2, res.Dataset.Sample.Rows)
	assert.Equal(t, int64(34), res.Dataset.SizeBytes)
	assert.Contains(t, res.Details, "columns: 2")
	assert.Contains(t, res.Details, "header: Date, Aircraft")
}

func TestDatasetUnreadableIsWarning(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(path, []byte("a,b\n1,2,3\n"), 0o644))

	res := Dataset(path, 5)
	assert.Equal(t, models.StatusWarn, res.Status)
	assert.False(t, res.Failed())
	assert.True(t, res.Dataset.Exists)
	assert.NotEmpty(t, res.Dataset.ReadError)
	assert.Nil(t, res.Dataset.Sample)
}

func TestDatasetShortRowsPass(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(path, []byte("a,b,c\n1,2\n"), 0o644))

	res := Dataset(path, 5)
	assert.Equal(t, models.StatusPass, res.Status)
	require.NotNil(t, res.Dataset.Sample)
	assert.Equal(t, 3, res.Dataset.Sample.Columns())
	assert.Equal(t, 1, res.Dataset.Sample.Rows)
}

func TestDatasetNoSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(path, []byte("a,b,c\n1,2\n"), 0o644))

	res := Dataset(path, 0)
	assert.Equal(t, models.StatusPass, res.Status)
	assert.Nil(t, res.Dataset.Sample)
}

func TestDatasetDirectory(t *testing.T) {
	res := Dataset(t.TempDir(), 5)
	assert.Equal(t, models.StatusWarn, res.Status)
	assert.True(t, res.Dataset.Exists)
}
