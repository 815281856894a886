package tui

import "github.com/thenoetrevino/taskflow/internal/tui/state"

// route describes one top-level page
type route struct {
	Page     state.Page
	Label    string
	Icon     string
	Subtitle string
}

var routes = []route{
	{Page: state.PageAll, Label: "All Tasks", Icon: "☰", Subtitle: "Everything on your plate"},
	{Page: state.PageToday, Label: "Today", Icon: "◉", Subtitle: "Due today, most important first"},
	{Page: state.PageUpcoming, Label: "Upcoming", Icon: "◷", Subtitle: "Due after today"},
	{Page: state.PageArchive, Label: "Archive", Icon: "▣", Subtitle: "Completed tasks"},
}

func routeFor(p state.Page) route {
	for _, r := range routes {
		if r.Page == p {
			return r
		}
	}
	return routes[0]
}

func tabLabels() []string {
	labels := make([]string, len(routes))
	for i, r := range routes {
		labels[i] = r.Icon + " " + r.Label
	}
	return labels
}
