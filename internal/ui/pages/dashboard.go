package pages

import (
	"github.com/finhub/console/internal/core/access"
	"github.com/finhub/console/internal/ui/gate"

	. "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Dashboard renders the console landing page. Every region is wrapped in a
// gate; the page itself never compares roles.
func Dashboard(s gate.Session) Node {
	return appPage("Dashboard", "home", s,
		h.Div(h.Class("grid"),
			budgetsCard(s),
			forecastsCard(s),
			journalCard(s),
			salesCard(s),
			analyticsCard(s),
			teamCard(s),
			adminCard(s),
			profileCard(s),
		),
	)
}

func budgetsCard(s gate.Session) Node {
	return gate.PermissionGate(s, access.ResourceBudgets, access.ActionRead,
		card("Budgets",
			h.P(Text("Track spend against approved budgets.")),
			gate.ComponentGate(s, access.CompBudgetCreate, actionButton("New budget", "budget.create")),
			gate.ComponentGate(s, access.CompBudgetApprove, actionButton("Review approvals", "budget.approve")),
			gate.PermissionGate(s, access.ResourceBudgets, access.ActionExport, actionButton("Export", "budget.export")),
		),
		gate.WithFallback(card("Budgets", noAccess("budgets"))),
	)
}

func forecastsCard(s gate.Session) Node {
	return gate.PermissionGate(s, access.ResourceForecasts, access.ActionRead,
		card("Forecasts",
			h.P(Text("Rolling forecasts and scenario comparison.")),
			gate.ComponentGate(s, access.CompForecastCreate, actionButton("New forecast", "forecast.create")),
			gate.ComponentGate(s, access.CompScenarioCompare, actionButton("Compare scenarios", "scenario.compare")),
		),
	)
}

func journalCard(s gate.Session) Node {
	return gate.PermissionGate(s, access.ResourceJournalEntries, access.ActionRead,
		card("Journal entries",
			gate.ComponentGate(s, access.CompJournalCreate, actionButton("New entry", "journal.create")),
			gate.ComponentGate(s, access.CompJournalApprove, actionButton("Approve pending", "journal.approve")),
		),
	)
}

func salesCard(s gate.Session) Node {
	return gate.ComponentGate(s, access.CompSalesView,
		card("Sales",
			gate.ComponentGate(s, access.CompSalesCreate, actionButton("Record sale", "sales.create")),
		),
	)
}

func analyticsCard(s gate.Session) Node {
	return gate.ComponentGate(s, access.CompAnalyticsDashboard,
		card("Analytics",
			h.P(Text("Revenue, expense and variance trends.")),
			gate.ComponentGate(s, access.CompAnalyticsExport, actionButton("Export report", "analytics.export")),
		),
	)
}

func teamCard(s gate.Session) Node {
	return gate.ComponentGate(s, access.CompTeamView,
		card("My team", actionLink("View team", "/ui/users")),
	)
}

func adminCard(s gate.Session) Node {
	return gate.PermissionGate(s, access.ResourceRoles, access.ActionRead,
		card("Administration",
			gate.ComponentGate(s, access.CompUsersManage, actionLink("Manage users", "/ui/users")),
			gate.ComponentGate(s, access.CompRolesAssign, actionLink("Assign roles", "/ui/roles")),
			gate.ComponentGate(s, access.CompBackupCreate, actionButton("Create backup", "backup.create")),
			gate.ComponentGate(s, access.CompBackupRestore, actionButton("Restore backup", "backup.restore")),
			gate.ComponentGate(s, access.CompIPManage, actionLink("IP allow/block list", "/ui/ip")),
		),
	)
}

func profileCard(s gate.Session) Node {
	return gate.ComponentGate(s, access.CompProfileEdit,
		card("Profile", actionLink("Edit profile", "/ui/profile")),
		gate.WithLoading(card("Profile", h.P(h.Class("muted"), Text("Loading…")))),
	)
}
