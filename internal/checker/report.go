package checker

import (
	"fmt"
	"sort"
	"strings"

	"urlcheck/pkg/models"
)

// Fixed table shape, matching what url_check.md consumers already parse.
const (
	headerRow    = "| 狀態 | 網址 | 轉址網址 |"
	separatorRow = "| --- | --- | ------ |"
)

// InterpretResult renders one check outcome as a table row.
// Normal results produce no row.
func InterpretResult(url string, result models.CheckResult) (string, bool) {
	switch result.Status() {
	case models.Moved:
		redirectURL, _ := result.Redirect()
		return fmt.Sprintf("| 301 轉址 | %s | %s |", url, redirectURL), true
	case models.Unavailable:
		return fmt.Sprintf("| 404 失效 | %s | |", url), true
	default:
		return "", false
	}
}

// BuildReport sorts the rows and prepends the table header. The sort keys on
// the full row text, so rows group by marker first and URL second.
func BuildReport(rows []string) string {
	sorted := make([]string, len(rows))
	copy(sorted, rows)
	sort.Strings(sorted)

	report := append([]string{headerRow, separatorRow}, sorted...)
	return strings.Join(report, "\n")
}
