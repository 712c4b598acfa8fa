package ui

import (
	"fmt"

	gomponents "maragu.dev/gomponents"
	html "maragu.dev/gomponents/html"
)

type historyRowData struct {
	Time    string
	Action  string
	Stage   string
	User    string
	Project string
	Bundle  string
	Before  string
	After   string
	Change  string
	Raw     string
}

type historyPageData struct {
	BundleNames     []string
	SelectedBundle  string
	Actions         []string
	SelectedActions map[string]bool
	Projects        []string
	SelectedProject string
	Since           string
	Until           string
	Rows            []historyRowData
}

func historyFilterCard(d historyPageData) gomponents.Node {
	bundleOpts := make([]gomponents.Node, 0, len(d.BundleNames)+1)
	bundleOpts = append(bundleOpts, html.Option(html.Value(""), gomponents.Text("Select a bundle...")))
	for _, name := range d.BundleNames {
		opt := []gomponents.Node{html.Value(name), gomponents.Text(name)}
		if name == d.SelectedBundle {
			opt = append(opt, html.Selected())
		}
		bundleOpts = append(bundleOpts, html.Option(opt...))
	}

	actionOpts := make([]gomponents.Node, 0, len(d.Actions))
	for _, a := range d.Actions {
		opt := []gomponents.Node{html.Value(a), gomponents.Text(a)}
		if d.SelectedActions[a] {
			opt = append(opt, html.Selected())
		}
		actionOpts = append(actionOpts, html.Option(opt...))
	}

	projectOpts := make([]gomponents.Node, 0, len(d.Projects)+1)
	projectOpts = append(projectOpts, html.Option(html.Value(""), gomponents.Text("All projects")))
	for _, p := range d.Projects {
		opt := []gomponents.Node{html.Value(p), gomponents.Text(p)}
		if p == d.SelectedProject {
			opt = append(opt, html.Selected())
		}
		projectOpts = append(projectOpts, html.Option(opt...))
	}

	return html.Div(
		html.Class(cardClass()),
		html.Form(
			html.Method("get"),
			html.Action("/ui/history"),
			html.Div(html.Class("form-row"),
				html.Label(html.For("bundle"), gomponents.Text("Bundle")),
				html.Select(html.ID("bundle"), html.Name("bundle"), gomponents.Group(bundleOpts)),
			),
			html.Div(html.Class("form-row"),
				html.Label(html.For("action"), gomponents.Text("Actions")),
				html.Select(html.ID("action"), html.Name("action"), html.Multiple(), gomponents.Group(actionOpts)),
			),
			html.Div(html.Class("form-row"),
				html.Label(html.For("project"), gomponents.Text("Project")),
				html.Select(html.ID("project"), html.Name("project"), gomponents.Group(projectOpts)),
			),
			html.Div(html.Class("form-row"),
				html.Label(html.For("since"), gomponents.Text("From")),
				html.Input(html.Type("date"), html.ID("since"), html.Name("since"), html.Value(d.Since)),
				html.Label(html.For("until"), gomponents.Text("To")),
				html.Input(html.Type("date"), html.ID("until"), html.Name("until"), html.Value(d.Until)),
			),
			html.Button(html.Type("submit"), html.Class("primary"), gomponents.Text("Apply filters")),
		),
	)
}

func historyPage(d historyPageData) gomponents.Node {
	body := []gomponents.Node{historyFilterCard(d)}

	switch {
	case d.SelectedBundle == "":
		body = append(body, emptyStateCard("Select a bundle to view its audit trail."))
	case len(d.Rows) == 0:
		body = append(body, emptyStateCard("No audit events match the current filters."))
	default:
		tableRows := make([]gomponents.Node, 0, len(d.Rows))
		for i := range d.Rows {
			r := d.Rows[i]
			tableRows = append(tableRows, html.Tr(
				html.Td(gomponents.Text(dash(r.Time))),
				html.Td(gomponents.Text(dash(r.Action))),
				html.Td(gomponents.Text(dash(r.Stage))),
				html.Td(gomponents.Text(dash(r.User))),
				html.Td(gomponents.Text(dash(r.Project))),
				html.Td(gomponents.Text(dash(r.Bundle))),
				html.Td(gomponents.Text(dash(r.Before))),
				html.Td(gomponents.Text(dash(r.After))),
				html.Td(gomponents.Text(dash(r.Change))),
				html.Td(html.Details(
					html.Summary(gomponents.Text("Raw")),
					html.Pre(gomponents.Text(r.Raw)),
				)),
			))
		}
		body = append(body,
			html.Div(html.Class(cardClass()), html.P(html.Class(mutedClass()), gomponents.Text(fmt.Sprintf("%d events.", len(d.Rows))))),
			html.Div(html.Class(cardClass("table-wrap")),
				html.Table(
					html.THead(html.Tr(
						html.Th(gomponents.Text("Time")),
						html.Th(gomponents.Text("Action")),
						html.Th(gomponents.Text("Stage")),
						html.Th(gomponents.Text("User")),
						html.Th(gomponents.Text("Project")),
						html.Th(gomponents.Text("Bundle")),
						html.Th(gomponents.Text("Before")),
						html.Th(gomponents.Text("After")),
						html.Th(gomponents.Text("Change")),
						html.Th(gomponents.Text("Details")),
					)),
					html.TBody(gomponents.Group(tableRows)),
				),
			),
		)
	}

	return appPage("Bundle History", "history", body...)
}
