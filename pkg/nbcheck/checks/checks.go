// Package checks implements the individual notebook checks.
//
// Each check is a function over the parsed notebook (or the environment for
// the dataset and install checks) that returns one models.CheckResult.
// Checks never modify the notebook and do not depend on each other.
package checks

// Check IDs in report order.
const (
	IDStructure     = "structure"
	IDSyntax        = "syntax"
	IDElements      = "elements"
	IDLibraryRefs   = "library-references"
	IDLibraryStatus = "library-install"
	IDDataset       = "dataset"
	IDCommentRatio  = "comment-ratio"
	IDPrintUsage    = "print-usage"
	IDErrorHandling = "error-handling"
)

// Order lists check IDs in the order they appear in a report.
var Order = []string{
	IDStructure,
	IDSyntax,
	IDElements,
	IDLibraryRefs,
	IDLibraryStatus,
	IDDataset,
	IDCommentRatio,
	IDPrintUsage,
	IDErrorHandling,
}
