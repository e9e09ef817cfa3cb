package checks

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/nbcheck-go/pkg/nbcheck/models"
)

func TestSyntaxCollectsEveryFailingCell(t *testing.T) {
	nb := notebook(
		markdownCell("# Title"),
		codeCell("x = 1\n", "y = x + 1"),
		codeCell("def f(:\n", "    pass"),
		codeCell("   \n"),
		codeCell("for i in range(3) print(i)"),
		codeCell("print('ok')"),
	)

	res, err := Syntax(context.Background(), nb, true)
	require.NoError(t, err)

	assert.Equal(t, IDSyntax, res.ID)
	assert.True(t, res.Blocking)
	assert.Equal(t, models.StatusFail, res.Status)
	require.Len(t, res.Syntax, 2)
	assert.Equal(t, 2, res.Syntax[0].Cell)
	assert.Equal(t, 1, res.Syntax[0].Line)
	assert.Equal(t, 4, res.Syntax[1].Cell)
	assert.Contains(t, res.Details, "code cells checked: 4")
}

func TestSyntaxRejectsWhatPythonWouldNotCompile(t *testing.T) {
	nb := notebook(
		codeCell("import pandas as pd\n", "print \"hello\""),
		codeCell("df = pd.read_csv('a.csv')"),
		codeCell("for i in range(3):\n", "    pass\n", "return i"),
		codeCell("model.fit(X=X_train, y_train)"),
		codeCell("def score(y, y):\n", "    return 0"),
		codeCell("for i in range(3):\n", "    if i:\n", "        break"),
	)

	res, err := Syntax(context.Background(), nb, true)
	require.NoError(t, err)

	assert.Equal(t, models.StatusFail, res.Status)
	assert.Equal(t, "syntax errors found: 4", res.Summary)

	var cells []int
	for _, f := range res.Syntax {
		cells = append(cells, f.Cell)
	}
	assert.Equal(t, []int{0, 2, 3, 4}, cells)
	assert.Contains(t, res.Syntax[0].Message, "Missing parentheses in call to 'print'")
	assert.Equal(t, 2, res.Syntax[0].Line)
	assert.Equal(t, "'return' outside function", res.Syntax[1].Message)
	assert.Equal(t, 3, res.Syntax[1].Line)
	assert.Equal(t, "positional argument follows keyword argument", res.Syntax[2].Message)
	assert.Equal(t, "duplicate argument 'y' in function definition", res.Syntax[3].Message)
}

func TestSyntaxNoCodeCells(t *testing.T) {
	res, err := Syntax(context.Background(), notebook(markdownCell("text")), true)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPass, res.Status)
	assert.Empty(t, res.Syntax)
}

func TestSyntaxDoesNotModifyNotebook(t *testing.T) {
	nb := notebook(codeCell("%time x = 1\n", "y = 2"))
	_, err := Syntax(context.Background(), nb, true)
	require.NoError(t, err)
	assert.Equal(t, "%time x = 1\ny = 2", nb.Cells[0].Text())
}

func TestStructure(t *testing.T) {
	res := Structure(models.CellStats{Total: 3, Code: 2, Markdown: 1, SizeBytes: 1536})
	assert.Equal(t, models.StatusPass, res.Status)
	assert.True(t, res.Blocking)
	assert.Contains(t, res.Details, "code cells: 2")
	assert.Contains(t, res.Details, "file size: 1.5 kB")

	res = Structure(models.CellStats{Total: 1, Markdown: 1})
	assert.Equal(t, models.StatusWarn, res.Status)
	assert.False(t, res.Failed())
}
