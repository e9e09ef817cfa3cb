// Package output renders validation reports.
package output

import (
	"encoding/json"

	"github.com/ukaji3/nbcheck-go/pkg/nbcheck/models"
)

// ToJSON serializes a report.
func ToJSON(report *models.Report, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(report, "", "  ")
	}
	return json.Marshal(report)
}
