package ui

import (
	"fmt"

	gomponents "maragu.dev/gomponents"
	data "maragu.dev/gomponents-datastar"
	html "maragu.dev/gomponents/html"
)

type metricsBarData struct {
	Label   string
	Days    string
	Percent int
}

type metricsRowData struct {
	Filter   string
	Name     string
	Project  string
	Policy   string
	Stage    string
	Assignee string
	Days     string
}

func metricsPage(bars []metricsBarData, rows []metricsRowData) gomponents.Node {
	if len(rows) == 0 {
		return appPage("Metrics", "metrics", emptyStateCard("No governance bundles found."))
	}

	barNodes := make([]gomponents.Node, 0, len(bars))
	for i := range bars {
		b := bars[i]
		barNodes = append(barNodes, html.Div(
			html.Class("bar-row"),
			html.Span(html.Class("bar-label"), gomponents.Text(b.Label)),
			html.Div(html.Class("bar-track"),
				html.Div(html.Class("bar-fill"), html.StyleAttr(fmt.Sprintf("width: %d%%", b.Percent))),
			),
			html.Span(html.Class("bar-value"), gomponents.Text(b.Days)),
		))
	}

	tableRows := make([]gomponents.Node, 0, len(rows))
	for i := range rows {
		r := rows[i]
		tableRows = append(tableRows, html.Tr(
			data.Show(containsExpr(r.Filter)),
			html.Td(gomponents.Text(r.Name)),
			html.Td(gomponents.Text(r.Project)),
			html.Td(gomponents.Text(r.Policy)),
			html.Td(gomponents.Text(r.Stage)),
			html.Td(gomponents.Text(r.Assignee)),
			html.Td(gomponents.Text(r.Days)),
		))
	}

	return appPage(
		"Metrics",
		"metrics",
		html.Div(html.Class(cardClass()),
			html.H2(gomponents.Text("Longest time in current stage")),
			html.P(html.Class(mutedClass()), gomponents.Text("Bundles ranked by days spent in their current stage.")),
			html.Div(html.Class("bars"), gomponents.Group(barNodes)),
		),
		html.Div(
			data.Signals(map[string]any{"q": ""}),
			html.Div(html.Class(cardClass()), html.Label(gomponents.Text("Quick filter")), html.Input(html.Type("text"), data.Bind("q"), html.Placeholder("Filter by bundle, project, or stage"))),
			html.Div(html.Class(cardClass("table-wrap")),
				html.Table(
					html.THead(html.Tr(
						html.Th(gomponents.Text("Bundle")),
						html.Th(gomponents.Text("Project")),
						html.Th(gomponents.Text("Policy")),
						html.Th(gomponents.Text("Current Stage")),
						html.Th(gomponents.Text("Assignee")),
						html.Th(gomponents.Text("Days in Stage")),
					)),
					html.TBody(gomponents.Group(tableRows)),
				),
			),
		),
	)
}
