package checks

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/ukaji3/nbcheck-go/pkg/nbcheck/models"
)

// Predicate tests the joined code of a notebook.
type Predicate func(code string) bool

// Element is one labelled entry of an element table.
type Element struct {
	Label string
	Match Predicate
}

// Contains matches if any of the substrings occurs.
func Contains(subs ...string) Predicate {
	return func(code string) bool {
		for _, s := range subs {
			if strings.Contains(code, s) {
				return true
			}
		}
		return false
	}
}

// ContainsAll matches if every substring occurs.
func ContainsAll(subs ...string) Predicate {
	return func(code string) bool {
		for _, s := range subs {
			if !strings.Contains(code, s) {
				return false
			}
		}
		return true
	}
}

// Matches matches if the regular expression finds a match.
// It panics if pattern does not compile.
func Matches(pattern string) Predicate {
	re := regexp.MustCompile(pattern)
	return re.MatchString
}

// AnyOf matches if any predicate matches.
func AnyOf(preds ...Predicate) Predicate {
	return func(code string) bool {
		for _, p := range preds {
			if p(code) {
				return true
			}
		}
		return false
	}
}

// StandardElements returns the full ML pipeline checklist.
func StandardElements() []Element {
	return []Element{
		{"Data loading (read_csv)", Contains("read_csv")},
		{"Data analysis (.info, .describe)", ContainsAll(".info()", ".describe()")},
		{"Missing value handling", Contains("isnull", "fillna")},
		{"Regular expressions", Matches(`(?m)^\s*(?:import\s+re\b|from\s+re\s+import)|\bre\.\w+\(`)},
		{"Encoding (LabelEncoder)", Contains("LabelEncoder")},
		{"Encoding (OneHotEncoder)", Contains("OneHotEncoder")},
		{"Visualisation (matplotlib/seaborn)", Contains("plt.", "sns.")},
		{"Feature selection", AnyOf(Contains("VarianceThreshold", "SelectKBest"), Matches(`\bRFE(?:CV)?\b`))},
		{"Train/test split (train_test_split)", Contains("train_test_split")},
		{"Normalisation (StandardScaler)", Contains("StandardScaler")},
		{"KNN model", Contains("KNeighborsClassifier")},
		{"Decision tree", Contains("DecisionTreeClassifier")},
		{"Random forest", Contains("RandomForestClassifier")},
		{"CatBoost", Contains("CatBoostClassifier")},
		{"Neural networks", Contains("keras", "tensorflow")},
		{"Hyperparameter search (GridSearchCV)", Contains("GridSearchCV")},
		{"Evaluation metrics", ContainsAll("accuracy_score", "f1_score")},
		{"Prediction on new data", Contains("predict")},
	}
}

// QuickElements returns the short checklist used by the light mode.
func QuickElements() []Element {
	return []Element{
		{"pandas", Contains("pd.", "import pandas")},
		{"sklearn", Contains("sklearn")},
		{"train_test_split", Contains("train_test_split")},
		{"Data loading (read_csv)", Contains("read_csv")},
		{"Models", Contains("KNeighborsClassifier", "DecisionTreeClassifier", "RandomForestClassifier", "CatBoostClassifier")},
	}
}

// Elements evaluates every entry of table against the notebook code.
// It passes when every element is present.
func Elements(nb *models.Notebook, table []Element) models.CheckResult {
	code := nb.CodeText()

	results := make([]models.ElementResult, len(table))
	passed := 0
	for i, el := range table {
		ok := el.Match(code)
		results[i] = models.ElementResult{Label: el.Label, Present: ok}
		if ok {
			passed++
		}
	}

	pct := 100
	if len(table) > 0 {
		pct = passed * 100 / len(table)
	}
	res := models.CheckResult{
		ID:       IDElements,
		Name:     "Key elements",
		Status:   models.StatusPass,
		Blocking: true,
		Summary:  fmt.Sprintf("elements present: %d/%d (%d%%)", passed, len(table), pct),
		Elements: results,
	}
	for _, r := range results {
		if !r.Present {
			res.Status = models.StatusFail
			res.Details = append(res.Details, "missing: "+r.Label)
		}
	}
	return res
}
