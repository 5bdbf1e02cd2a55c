package pages

import (
	"github.com/finhub/console/internal/core/access"
	"github.com/finhub/console/internal/ui/gate"

	. "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// SectionInfo describes one console area reachable from the navigation.
// Opening Href requires READ on Resource.
type SectionInfo struct {
	Key      string
	Label    string
	Href     string
	Resource access.Resource
}

var sections = []SectionInfo{
	{Key: "budgets", Label: "Budgets", Href: "/ui/budgets", Resource: access.ResourceBudgets},
	{Key: "forecasts", Label: "Forecasts", Href: "/ui/forecasts", Resource: access.ResourceForecasts},
	{Key: "journal", Label: "Journal", Href: "/ui/journal", Resource: access.ResourceJournalEntries},
	{Key: "sales", Label: "Sales", Href: "/ui/sales", Resource: access.ResourceSales},
	{Key: "analytics", Label: "Analytics", Href: "/ui/analytics", Resource: access.ResourceAnalytics},
	{Key: "users", Label: "Users", Href: "/ui/users", Resource: access.ResourceUsers},
	{Key: "roles", Label: "Roles", Href: "/ui/roles", Resource: access.ResourceRoles},
	{Key: "backups", Label: "Backups", Href: "/ui/backups", Resource: access.ResourceBackups},
	{Key: "ip", Label: "IP rules", Href: "/ui/ip", Resource: access.ResourceIPRestrictions},
	{Key: "profile", Label: "Profile", Href: "/ui/profile", Resource: access.ResourceProfile},
}

// Sections returns the navigable console areas in display order.
func Sections() []SectionInfo {
	out := make([]SectionInfo, len(sections))
	copy(out, sections)
	return out
}

var sectionBodies = map[string]func(gate.Session) Node{
	"budgets":   budgetsCard,
	"forecasts": forecastsCard,
	"journal":   journalCard,
	"sales":     salesCard,
	"analytics": analyticsCard,
	"users":     usersBody,
	"roles":     adminCard,
	"backups":   backupsBody,
	"ip":        ipBody,
	"profile":   profileCard,
}

// Section renders the page for key. It reports false for an unknown key.
func Section(s gate.Session, key string) (Node, bool) {
	for _, sec := range sections {
		if sec.Key != key {
			continue
		}
		body := sectionBodies[key]
		return appPage(sec.Label, sec.Key, s,
			h.Div(h.Class("grid"), body(s)),
		), true
	}
	return nil, false
}

func usersBody(s gate.Session) Node {
	return Group([]Node{
		teamCard(s),
		gate.ComponentGate(s, access.CompUsersManage,
			card("Accounts",
				h.P(Text("Create accounts and set their manager.")),
				actionButton("New user", "users.create"),
			),
		),
	})
}

func backupsBody(s gate.Session) Node {
	return card("Backups",
		gate.ComponentGate(s, access.CompBackupCreate, actionButton("Create backup", "backup.create")),
		gate.ComponentGate(s, access.CompBackupRestore, actionButton("Restore backup", "backup.restore")),
		gate.PermissionGate(s, access.ResourceBackups, access.ActionDelete, actionButton("Delete backup", "backup.delete")),
	)
}

func ipBody(s gate.Session) Node {
	return card("IP rules",
		h.P(Text("Addresses allowed or blocked from signing in.")),
		gate.PermissionGate(s, access.ResourceIPRestrictions, access.ActionCreate, actionButton("Add rule", "ip.create")),
	)
}
