package checks

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/ukaji3/nbcheck-go/pkg/nbcheck/models"
)

// Library is a Python library the notebook is expected to use.
type Library struct {
	// Module is the import name.
	Module string `yaml:"module"`
	// Pip is the package name passed to pip.
	Pip string `yaml:"pip"`
	// Required distinguishes required from optional libraries.
	Required bool `yaml:"required"`
}

// DefaultLibraries returns the libraries of the ML coursework notebook.
func DefaultLibraries() []Library {
	return []Library{
		{Module: "pandas", Pip: "pandas", Required: true},
		{Module: "numpy", Pip: "numpy", Required: true},
		{Module: "matplotlib", Pip: "matplotlib", Required: true},
		{Module: "seaborn", Pip: "seaborn", Required: true},
		{Module: "sklearn", Pip: "scikit-learn", Required: true},
		{Module: "catboost", Pip: "catboost"},
		{Module: "tensorflow", Pip: "tensorflow"},
	}
}

var (
	fromPattern   = regexp.MustCompile(`(?m)(?:^|;)[ \t]*from[ \t]+([\w.]+)[ \t]+import\b`)
	importPattern = regexp.MustCompile(`(?m)(?:^|;)[ \t]*import[ \t]+([^;#\n]+)`)
	aliasPattern  = regexp.MustCompile(`^([\w.]+)(?:\s+as\s+\w+)?$`)
)

// ImportedModules returns the sorted, de-duplicated module paths named in
// import statements of code. Each module of a comma-separated import
// counts, with any alias dropped.
func ImportedModules(code string) []string {
	seen := make(map[string]bool)
	for _, m := range fromPattern.FindAllStringSubmatch(code, -1) {
		seen[m[1]] = true
	}
	for _, m := range importPattern.FindAllStringSubmatch(code, -1) {
		list := strings.Trim(strings.TrimSpace(m[1]), "()")
		for _, item := range strings.Split(list, ",") {
			if a := aliasPattern.FindStringSubmatch(strings.TrimSpace(item)); a != nil {
				seen[a[1]] = true
			}
		}
	}
	mods := make([]string, 0, len(seen))
	for m := range seen {
		mods = append(mods, m)
	}
	sort.Strings(mods)
	return mods
}

func references(imports []string, module string) bool {
	for _, imp := range imports {
		if imp == module || strings.HasPrefix(imp, module+".") {
			return true
		}
	}
	return false
}

// LibraryReferences reports which configured libraries the notebook imports.
// It is advisory: a required library that is never imported is a warning.
func LibraryReferences(nb *models.Notebook, libs []Library) models.CheckResult {
	imports := ImportedModules(nb.CodeText())

	res := models.CheckResult{
		ID:      IDLibraryRefs,
		Name:    "Library imports",
		Status:  models.StatusPass,
		Summary: fmt.Sprintf("imports found: %d", len(imports)),
	}
	for _, lib := range libs {
		st := models.LibraryStatus{
			Module:     lib.Module,
			Pip:        lib.Pip,
			Required:   lib.Required,
			Referenced: references(imports, lib.Module),
		}
		res.Libraries = append(res.Libraries, st)
		if lib.Required && !st.Referenced {
			res.Status = models.StatusWarn
			res.Details = append(res.Details, fmt.Sprintf("required library %s is not imported", lib.Module))
		}
	}
	return res
}
