package checks

import (
	"fmt"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/ukaji3/nbcheck-go/pkg/nbcheck/models"
	"github.com/ukaji3/nbcheck-go/pkg/nbcheck/parser"
)

// Dataset checks that the dataset file exists and, when sampleRows > 0,
// that its first rows parse as a table. A missing file fails; a file that
// exists but cannot be read is only a warning.
func Dataset(path string, sampleRows int) models.CheckResult {
	info := &models.DatasetInfo{Path: path}
	res := models.CheckResult{
		ID:       IDDataset,
		Name:     "Dataset file",
		Status:   models.StatusPass,
		Blocking: true,
		Dataset:  info,
	}

	fi, err := os.Stat(path)
	if err != nil {
		res.Status = models.StatusFail
		res.Summary = fmt.Sprintf("dataset not found: %s", path)
		res.Details = []string{"make sure the file is at the configured path"}
		if !os.IsNotExist(err) {
			res.Details = append(res.Details, err.Error())
		}
		return res
	}
	info.Exists = true
	if fi.IsDir() {
		info.ReadError = "path is a directory"
		res.Status = models.StatusWarn
		res.Summary = fmt.Sprintf("dataset path is a directory: %s", path)
		return res
	}

	info.SizeBytes = fi.Size()
	res.Summary = fmt.Sprintf("dataset found: %s", path)
	res.Details = []string{fmt.Sprintf("size: %s", humanize.Bytes(uint64(fi.Size())))}
	if sampleRows <= 0 {
		return res
	}

	sample, err := parser.SampleTable(path, sampleRows)
	if err != nil {
		info.ReadError = err.Error()
		res.Status = models.StatusWarn
		res.Details = append(res.Details, fmt.Sprintf("could not read the file as a table: %v", err))
		return res
	}
	info.Sample = sample
	res.Details = append(res.Details,
		fmt.Sprintf("format: %s", sample.Format),
		fmt.Sprintf("columns: %d", sample.Columns()),
		fmt.Sprintf("sample rows read: %d", sample.Rows),
		fmt.Sprintf("header: %s", strings.Join(sample.Header, ", ")),
	)
	return res
}
