package ui

import (
	"fmt"

	gomponents "maragu.dev/gomponents"
	data "maragu.dev/gomponents-datastar"
	html "maragu.dev/gomponents/html"
)

type bundlesListRowData struct {
	Filter       string
	Name         string
	HistoryURL   string
	State        string
	StateTone    string
	CurrentStage string
	Assignee     string
	Days         string
	LastUpdated  string
	Project      string
	Policy       string
	Created      string
	Owner        string
	Stages       []string
	Branch       string
}

func bundlesListPage(rows []bundlesListRowData) gomponents.Node {
	tableRows := make([]gomponents.Node, 0, len(rows))
	for i := range rows {
		r := rows[i]
		stageNodes := make([]gomponents.Node, 0, len(r.Stages))
		for _, s := range r.Stages {
			stageNodes = append(stageNodes, html.Div(html.Class("stage-slot"), gomponents.Text(s)))
		}
		tableRows = append(tableRows, html.Tr(
			data.Show(containsExpr(r.Filter)),
			html.Td(html.A(html.Href(r.HistoryURL), gomponents.Text(r.Name))),
			html.Td(statusLabel(r.State, r.StateTone)),
			html.Td(gomponents.Text(r.CurrentStage)),
			html.Td(gomponents.Text(r.Assignee)),
			html.Td(gomponents.Text(r.Days)),
			html.Td(gomponents.Text(r.LastUpdated)),
			html.Td(gomponents.Text(r.Project)),
			html.Td(gomponents.Text(r.Policy)),
			html.Td(gomponents.Text(r.Created)),
			html.Td(gomponents.Text(r.Owner)),
			html.Td(gomponents.Group(stageNodes)),
			html.Td(gomponents.Text(r.Branch)),
		))
	}

	countLine := html.Div(
		html.Class(cardClass()),
		html.P(html.Class(mutedClass()), gomponents.Text(fmt.Sprintf("%d bundles.", len(rows)))),
	)
	if len(rows) == 0 {
		return appPage("All Bundles", "bundles", emptyStateCard("No governance bundles found."))
	}

	return appPage(
		"All Bundles",
		"bundles",
		countLine,
		html.Div(
			data.Signals(map[string]any{"q": ""}),
			html.Div(html.Class(cardClass()), html.Label(gomponents.Text("Quick filter")), html.Input(html.Type("text"), data.Bind("q"), html.Placeholder("Filter by bundle, project, policy, or assignee"))),
			html.Div(html.Class(cardClass("table-wrap")),
				html.Table(
					html.THead(html.Tr(
						html.Th(gomponents.Text("Bundle")),
						html.Th(gomponents.Text("State")),
						html.Th(gomponents.Text("Current Stage")),
						html.Th(gomponents.Text("Assignee")),
						html.Th(gomponents.Text("Days in Stage")),
						html.Th(gomponents.Text("Last Updated")),
						html.Th(gomponents.Text("Project")),
						html.Th(gomponents.Text("Policy")),
						html.Th(gomponents.Text("Created")),
						html.Th(gomponents.Text("Owner")),
						html.Th(gomponents.Text("Stages")),
						html.Th(gomponents.Text("Branch")),
					)),
					html.TBody(gomponents.Group(tableRows)),
				),
			),
		),
	)
}
