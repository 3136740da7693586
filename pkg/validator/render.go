package validator

import (
	"fmt"
	"strings"
)

// LineSeparator joins rendered report lines.
const LineSeparator = "\n"

const indentUnit = "  "

// Render flattens a failure tree into report lines. Every reason at depth d
// is prefixed with d two-space indents and "- ". A group is followed by its
// members at d+1, each member by its own reasons at d+2.
func Render(reasons Reasons) []string {
	lines := make([]string, 0, reasons.Len())
	return renderReasons(lines, reasons, 0)
}

// RenderText renders reasons as a single block of text.
func RenderText(reasons Reasons) string {
	return strings.Join(Render(reasons), LineSeparator)
}

// Display returns the string used for a value in reports.
// Values implementing fmt.Stringer control their own representation.
func Display(v any) string {
	return fmt.Sprint(v)
}

func renderReasons(lines []string, reasons Reasons, depth int) []string {
	prefix := strings.Repeat(indentUnit, depth)
	for _, item := range reasons.items {
		switch r := item.(type) {
		case Simple:
			lines = append(lines, prefix+"- "+r.Text)
		case Group:
			lines = append(lines, fmt.Sprintf("%s- %d members of collection '%s' failed validation:",
				prefix, len(r.Elements), r.Name))
			memberPrefix := prefix + indentUnit
			for i, el := range r.Elements {
				lines = append(lines, fmt.Sprintf("%s- [%d] %s", memberPrefix, i, Display(el.Member)))
				lines = renderReasons(lines, el.Reasons, depth+2)
			}
		}
	}
	return lines
}
