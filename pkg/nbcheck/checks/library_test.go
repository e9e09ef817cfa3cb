package checks

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/nbcheck-go/pkg/nbcheck/models"
)

func TestImportedModules(t *testing.T) {
	tests := []struct {
		name string
		code string
		want []string
	}{
		{
			name: "one per line",
			code: "import pandas as pd\nimport numpy as np\nfrom sklearn.model_selection import train_test_split\nimport pandas\n",
			want: []string{"numpy", "pandas", "sklearn.model_selection"},
		},
		{
			name: "comma separated",
			code: "import numpy, pandas\n",
			want: []string{"numpy", "pandas"},
		},
		{
			name: "comma separated with aliases",
			code: "import numpy as np, pandas as pd, matplotlib.pyplot as plt  # plotting\n",
			want: []string{"matplotlib.pyplot", "numpy", "pandas"},
		},
		{
			name: "indented and after semicolon",
			code: "try:\n    import catboost\nexcept ImportError:\n    pass\nx = 1; import seaborn as sns\n",
			want: []string{"catboost", "seaborn"},
		},
		{
			name: "from import names are not modules",
			code: "from sklearn.tree import DecisionTreeClassifier, export_text\n",
			want: []string{"sklearn.tree"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ImportedModules(tt.code))
		})
	}
}

func TestLibraryReferencesCommaImport(t *testing.T) {
	nb := notebook(codeCell("import numpy as np, pandas as pd\n"))
	libs := []Library{
		{Module: "numpy", Pip: "numpy", Required: true},
		{Module: "pandas", Pip: "pandas", Required: true},
	}

	res := LibraryReferences(nb, libs)
	assert.Equal(t, models.StatusPass, res.Status)
	assert.Empty(t, res.Details)
	for _, st := range res.Libraries {
		assert.True(t, st.Referenced, st.Module)
	}
}

func TestLibraryReferences(t *testing.T) {
	nb := notebook(codeCell(
		"import pandas as pd\n",
		"from sklearn.tree import DecisionTreeClassifier\n",
		"import matplotlib.pyplot as plt\n",
	))
	libs := []Library{
		{Module: "pandas", Pip: "pandas", Required: true},
		{Module: "sklearn", Pip: "scikit-learn", Required: true},
		{Module: "matplotlib", Pip: "matplotlib", Required: true},
		{Module: "seaborn", Pip: "seaborn", Required: true},
		{Module: "catboost", Pip: "catboost"},
	}

	res := LibraryReferences(nb, libs)
	assert.Equal(t, IDLibraryRefs, res.ID)
	assert.False(t, res.Blocking)
	assert.Equal(t, models.StatusWarn, res.Status)
	assert.Equal(t, []string{"required library seaborn is not imported"}, res.Details)

	referenced := map[string]bool{}
	for _, st := range res.Libraries {
		referenced[st.Module] = st.Referenced
		assert.Nil(t, st.Installed)
	}
	assert.Equal(t, map[string]bool{
		"pandas": true, "sklearn": true, "matplotlib": true, "seaborn": false, "catboost": false,
	}, referenced)
}

func TestLibraryReferencesPrefix(t *testing.T) {
	nb := notebook(codeCell("import pandasql\n"))
	res := LibraryReferences(nb, []Library{{Module: "pandas", Required: true}})
	assert.False(t, res.Libraries[0].Referenced)
}

func TestLibraryInstall(t *testing.T) {
	prober := StaticProber{"pandas": true, "sklearn": true}
	libs := []Library{
		{Module: "pandas", Pip: "pandas", Required: true},
		{Module: "sklearn", Pip: "scikit-learn", Required: true},
		{Module: "seaborn", Pip: "seaborn", Required: true},
		{Module: "catboost", Pip: "catboost"},
	}

	res := LibraryInstall(context.Background(), prober, libs, time.Second)
	assert.Equal(t, IDLibraryStatus, res.ID)
	assert.False(t, res.Blocking)
	assert.Equal(t, models.StatusWarn, res.Status)
	assert.Equal(t, "required libraries missing: 1", res.Summary)
	assert.Contains(t, res.Details, "seaborn (seaborn) - NOT installed")
	assert.Contains(t, res.Details, "  install: pip install seaborn")
	assert.Contains(t, res.Details, "catboost (catboost) - not installed (optional)")

	require.Len(t, res.Libraries, 4)
	for i, lib := range libs {
		st := res.Libraries[i]
		assert.Equal(t, lib.Module, st.Module)
		require.NotNil(t, st.Installed)
		assert.Equal(t, prober[lib.Module], *st.Installed)
	}
}

func TestLibraryInstallOptionalOnly(t *testing.T) {
	libs := []Library{{Module: "pandas", Required: true}, {Module: "tensorflow"}}
	res := LibraryInstall(context.Background(), StaticProber{"pandas": true}, libs, 0)
	assert.Equal(t, models.StatusPass, res.Status)
}

func TestLibraryInstallSkipped(t *testing.T) {
	res := LibraryInstall(context.Background(), nil, DefaultLibraries(), time.Second)
	assert.Equal(t, models.StatusSkip, res.Status)
	assert.Empty(t, res.Libraries)
}

type failingProber struct{ calls atomic.Int32 }

func (f *failingProber) Available(context.Context, string) (bool, error) {
	f.calls.Add(1)
	return false, errors.New("python3: executable file not found")
}

func TestLibraryInstallProbeError(t *testing.T) {
	prober := &failingProber{}
	libs := DefaultLibraries()

	res := LibraryInstall(context.Background(), prober, libs, time.Second)
	assert.Equal(t, models.StatusWarn, res.Status)
	assert.Equal(t, "some libraries could not be probed", res.Summary)
	assert.Equal(t, int32(len(libs)), prober.calls.Load())
	for _, st := range res.Libraries {
		assert.Nil(t, st.Installed)
		assert.NotEmpty(t, st.ProbeError)
	}
}

type slowProber struct{}

func (slowProber) Available(ctx context.Context, _ string) (bool, error) {
	select {
	case <-ctx.Done():
		return false, ctx.Err()
	case <-time.After(5 * time.Second):
		return true, nil
	}
}

func TestLibraryInstallTimeout(t *testing.T) {
	libs := []Library{{Module: "pandas", Required: true}}
	res := LibraryInstall(context.Background(), slowProber{}, libs, 10*time.Millisecond)
	assert.Equal(t, models.StatusWarn, res.Status)
	assert.Contains(t, res.Libraries[0].ProbeError, "deadline exceeded")
}

func TestPythonProberRejectsInvalidModule(t *testing.T) {
	p := PythonProber{Python: "python3"}
	for _, mod := range []string{"", "os; import sys", "a b", "1abc", "x.", "pandas\nimport os"} {
		_, err := p.Available(context.Background(), mod)
		assert.ErrorIs(t, err, ErrInvalidModule, mod)
	}
}

func TestPythonProberMissingInterpreter(t *testing.T) {
	p := PythonProber{Python: "nbcheck-no-such-python"}
	ok, err := p.Available(context.Background(), "pandas")
	assert.False(t, ok)
	assert.Error(t, err)
}
