package checks

import (
	"testing"

	"github.com/ukaji3/nbcheck-go/pkg/nbcheck/models"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func notebook(cells ...models.Cell) *models.Notebook {
	return &models.Notebook{Cells: cells}
}

func codeCell(src ...string) models.Cell {
	return models.Cell{Type: "code", Source: src}
}

func markdownCell(src ...string) models.Cell {
	return models.Cell{Type: "markdown", Source: src}
}
