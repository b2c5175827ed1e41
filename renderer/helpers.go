package renderer

import (
	"strings"
	"text/template"

	"github.com/etnz/collateral"
)

// funcs are available to every template.
var funcs = template.FuncMap{
	"trend": trendMarker,
	"band":  bandMarker,
	"cell":  cell,
}

// trendMarker renders a card trend as an arrow.
func trendMarker(t collateral.Trend) string {
	switch t {
	case collateral.Up:
		return "▲"
	case collateral.Down:
		return "▼"
	}
	return "•"
}

// bandMarker renders a risk band as a coloured dot followed by its name.
func bandMarker(b collateral.RiskBand) string {
	switch b {
	case collateral.Safe:
		return "🟢 safe"
	case collateral.Warning:
		return "🟡 warning"
	case collateral.Danger:
		return "🔴 danger"
	}
	return string(b)
}

// cell escapes a value for a markdown table cell.
func cell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
