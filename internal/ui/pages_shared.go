package ui

import (
	"strconv"
	"strings"

	gomponents "maragu.dev/gomponents"
	html "maragu.dev/gomponents/html"
)

type navItem struct {
	Label string
	Href  string
	Key   string
}

var navItems = []navItem{
	{Label: "All Bundles", Href: "/ui", Key: "bundles"},
	{Label: "Bundle History", Href: "/ui/history", Key: "history"},
	{Label: "Metrics", Href: "/ui/metrics", Key: "metrics"},
}

func appPage(title, active string, body ...gomponents.Node) gomponents.Node {
	nav := make([]gomponents.Node, 0, len(navItems))
	for _, item := range navItems {
		className := ""
		if item.Key == active {
			className = "active"
		}
		nav = append(nav, html.A(html.Href(item.Href), html.Class(className), gomponents.Text(item.Label)))
	}

	return html.HTML(
		html.Lang("en"),
		html.Head(
			html.Meta(html.Charset("utf-8")),
			html.Meta(html.Name("viewport"), html.Content("width=device-width, initial-scale=1")),
			html.TitleEl(gomponents.Text(title+" | Governance Explorer")),
			html.Link(html.Rel("stylesheet"), html.Href("/ui/static/app.css")),
			html.Script(
				html.Type("module"),
				html.Src("https://cdn.jsdelivr.net/gh/starfederation/datastar@1.0.0-RC.6/bundles/datastar.js"),
			),
		),
		html.Body(
			html.Main(
				html.Class("layout"),
				html.Div(
					html.Class("topbar"),
					html.Div(
						html.Strong(gomponents.Text("Governance Explorer")),
						html.P(html.Class("muted"), gomponents.Text("Read-only governance bundle browser")),
					),
				),
				html.Nav(html.Class("nav"), gomponents.Group(nav)),
				html.H1(html.Class("page-title"), gomponents.Text(title)),
				gomponents.Group(body),
			),
		),
	)
}

func errorPage(title, message string) gomponents.Node {
	return html.HTML(
		html.Lang("en"),
		html.Head(
			html.Meta(html.Charset("utf-8")),
			html.Meta(html.Name("viewport"), html.Content("width=device-width, initial-scale=1")),
			html.TitleEl(gomponents.Text(title+" | Governance Explorer")),
			html.Link(html.Rel("stylesheet"), html.Href("/ui/static/app.css")),
		),
		html.Body(
			html.Main(
				html.Class("layout"),
				html.H1(html.Class("page-title"), gomponents.Text(title)),
				html.P(gomponents.Text(message)),
				html.P(html.A(html.Href("/ui"), gomponents.Text("Back to bundles"))),
			),
		),
	)
}

func cardClass(extra ...string) string {
	parts := []string{"card"}
	parts = append(parts, extra...)
	return strings.Join(parts, " ")
}

func mutedClass() string {
	return "muted"
}

func containsExpr(value string) string {
	lower := strings.ToLower(value)
	return "$q === '' || " + strconv.Quote(lower) + ".includes($q.toLowerCase())"
}

func emptyStateCard(message string) gomponents.Node {
	return html.Div(
		html.Class(cardClass("blankslate")),
		html.P(html.Class(mutedClass()), gomponents.Text(message)),
	)
}

func statusLabel(text, tone string) gomponents.Node {
	className := "label"
	if tone != "" {
		className += " label-" + tone
	}
	return html.Span(html.Class(className), gomponents.Text(text))
}

// stateTone picks a label tone for a bundle state.
func stateTone(state string) string {
	switch strings.ToLower(state) {
	case "active":
		return "accent"
	case "approved":
		return "success"
	case "rejected", "archived":
		return "danger"
	default:
		return ""
	}
}
