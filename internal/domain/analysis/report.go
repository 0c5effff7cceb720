package analysis

import (
	"strconv"
	"strings"

	"github.com/okian/labelreport/internal/domain/model"
)

const (
	lineSeparator = "\n"
	linePrefix    = " "
	lineInfix     = "% de ser do tipo "
)

// FormatConfidence renders a confidence with exactly two decimals. Rounding
// follows strconv on the exact binary value, so 92.345 becomes "92.34".
func FormatConfidence(c float64) string {
	return strconv.FormatFloat(c, 'f', 2, 64)
}

// FormatReport pairs names[i] with labels[i] and renders one line per pair:
//
//	" 95.20% de ser do tipo Cão"
//
// Lines are joined by "\n". Pairing is positional; when the slices differ in
// length only the first min(len(names), len(labels)) pairs are rendered.
func FormatReport(names []string, labels []model.Label) string {
	n := min(len(names), len(labels))
	lines := make([]string, n)
	for i := 0; i < n; i++ {
		lines[i] = linePrefix + FormatConfidence(labels[i].Confidence) + lineInfix + names[i]
	}
	return strings.Join(lines, lineSeparator)
}
