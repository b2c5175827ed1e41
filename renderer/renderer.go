// Package renderer renders the LTV dashboard as markdown.
//
// Each view is a main text/template that pulls in named partials, all of them
// embedded markdown files.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"github.com/etnz/collateral"
)

//go:embed *.md
var templates embed.FS

// Dashboard is the data behind the main dashboard view.
type Dashboard struct {
	Title   string
	Filter  collateral.View
	Cards   []collateral.Card
	Rows    []collateral.Row
	Loading bool // no collection has been loaded yet
}

// NewDashboard builds the dashboard of assets as selected by view. A nil
// collection is still loading, an empty one is not.
func NewDashboard(p collateral.Policy, view collateral.View, assets []collateral.Asset) (*Dashboard, error) {
	d := &Dashboard{Title: "Asset LTV Dashboard", Filter: view}
	if assets == nil {
		d.Loading = true
		return d, nil
	}
	selected, err := view.Select(assets)
	if err != nil {
		return nil, err
	}
	// cards summarise what the table shows.
	if d.Cards, err = p.Cards(p.Aggregate(selected)); err != nil {
		return nil, err
	}
	if d.Rows, err = p.Rows(selected); err != nil {
		return nil, err
	}
	return d, nil
}

// RenderDashboard renders the cards and the asset table.
func RenderDashboard(d *Dashboard) string {
	partials := map[string]string{
		"dashboard_title": "dashboard_title.md",
		"cards":           "cards.md",
		"asset_table":     "asset_table.md",
	}
	return renderTemplate("dashboard", "dashboard.md", partials, d)
}

// RenderCards renders only the summary cards.
func RenderCards(cards []collateral.Card) string {
	return renderTemplate("cards", "cards.md", nil, &Dashboard{Cards: cards})
}

// RenderDetail renders the LTV card of a single asset.
func RenderDetail(d *collateral.Detail) string {
	partials := map[string]string{
		"detail_market": "detail_market.md",
		"detail_ltv":    "detail_ltv.md",
	}
	return renderTemplate("detail", "detail.md", partials, d)
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Funcs(funcs).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		content, err := fs.ReadFile(templates, file)
		if err != nil {
			return fmt.Sprintf("error reading partial template %q: %v", file, err)
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
