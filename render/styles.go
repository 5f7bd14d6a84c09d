package render

import (
	"regexp"
	"strings"
)

// pageSizePattern accepts the CSS @page size values the page supports: a
// named paper size with an optional orientation, or one or two lengths.
var pageSizePattern = regexp.MustCompile(`^(?i)(?:(?:a3|a4|a5|b4|b5|jis-b4|jis-b5|letter|legal|ledger)(?: (?:portrait|landscape))?|auto|portrait|landscape|\d+(?:\.\d+)?(?:mm|cm|in)(?: \d+(?:\.\d+)?(?:mm|cm|in))?)$`)

// ValidPageSize reports whether size can be used in the print rule. ""
// stands for the A4 default.
func ValidPageSize(size string) bool {
	return size == "" || pageSizePattern.MatchString(size)
}

// StyleRule is one CSS rule of the page.
type StyleRule struct {
	Selector     string
	Declarations string
}

func (r StyleRule) String() string {
	return r.Selector + " { " + r.Declarations + " }"
}

// Styles returns the page's rules in application order. pageSize goes into
// the print media rule; "" means A4.
func Styles(pageSize string) []StyleRule {
	if pageSize == "" {
		pageSize = "A4"
	}

	return []StyleRule{
		{"body", "margin: 0; padding: 0;"},
		{".workspace", "margin: 0; padding: 10px; position: relative; width: 100%; box-sizing: border-box; text-align: right;"},
		{".main-table-outer", "display: inline-block; position: relative; right: 0px; border-spacing: 0;"},
		{".main-table", "position: relative; right: 0px; top: 0px; border-spacing: 0; border: 2px solid #000;"},
		{".day", "width: 20px; height: 20px; padding: 0; margin: 0; position: relative; background-color: #f0f0ff;"},
		{".header", "height: 20px; padding: 0px; border-bottom: 2px solid #000;"},
		{".day, .month, .header", `font-family: "Calibri", "sans-serif"; text-align: center; vertical-align: middle; box-sizing: border-box; font-size: 0.8em;`},
		{".month", "width: 70px; white-space: pre; border-right: 2px solid #000;"},
		{".header, .month", "font-weight: bold;"},
		{".month-below", "border-bottom: 1px solid #000;"},
		{".month-right", "border-right: 1px solid #000;"},
		{".year-below", "border-bottom: 2px solid #000;"},
		{".year-right", "border-right: 2px solid #000;"},
		{".weekend-lite", "background-color: #c0c0ff;"},
		{".weekend-full", "background-color: #9090df;"},
		{".today:before", `width: 20px; height: 20px; border-radius: 15px; content: " "; box-sizing: border-box; display: block; position: absolute; padding: 0; margin: 0; top: 0; border: 2px solid #000;`},
		{"@media print", "@page { size: " + pageSize + "; }"},
	}
}

// CSS joins rules into the text of a single style element.
func CSS(rules []StyleRule) string {
	lines := make([]string, len(rules))
	for i, r := range rules {
		lines[i] = r.String()
	}
	return strings.Join(lines, "\n")
}
