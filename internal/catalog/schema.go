package catalog

import "verifind.org/internal/filter"

// CaseSchema searches name and location and filters on status.
var CaseSchema = filter.Schema[Case]{
	Search: []func(Case) string{
		func(c Case) string { return c.Name },
		func(c Case) string { return c.Location },
	},
	Enums: map[string]func(Case) string{
		"status": func(c Case) string { return c.Status },
	},
}

// TipSchema searches the case name and description and filters on status.
var TipSchema = filter.Schema[Tip]{
	Search: []func(Tip) string{
		func(t Tip) string { return t.CaseName },
		func(t Tip) string { return t.Description },
	},
	Enums: map[string]func(Tip) string{
		"status": func(t Tip) string { return t.Status },
	},
}

// AlertSchema searches case name and location and filters on priority and status.
var AlertSchema = filter.Schema[Alert]{
	Search: []func(Alert) string{
		func(a Alert) string { return a.CaseName },
		func(a Alert) string { return a.Location },
	},
	Enums: map[string]func(Alert) string{
		"priority": func(a Alert) string { return a.Priority },
		"status":   func(a Alert) string { return a.Status },
	},
}
