package access

import "github.com/finhub/console/internal/core/domain"

// Role groups the console table is written in terms of. Each group is a
// superset of the one before it.
var (
	admins   = []domain.Role{domain.RoleSuperAdmin, domain.RoleAdmin}
	finance  = append(clone(admins), domain.RoleFinanceManager)
	books    = append(clone(finance), domain.RoleAccountant)
	staff    = append(clone(books), domain.RoleManager)
	everyone = domain.Roles()
)

func clone(in []domain.Role) []domain.Role {
	out := make([]domain.Role, len(in))
	copy(out, in)
	return out
}

func ra(r Resource, a Action, roles []domain.Role) Entry {
	return Entry{Capability: ResourceAction(r, a), Roles: roles}
}

func comp(id string, roles []domain.Role) Entry {
	return Entry{Capability: ComponentID(id), Roles: roles}
}

// Component ids used by the console pages.
const (
	CompBudgetCreate       = "budget.create"
	CompBudgetEdit         = "budget.edit"
	CompBudgetDelete       = "budget.delete"
	CompBudgetApprove      = "budget.approve"
	CompForecastCreate     = "forecast.create"
	CompScenarioCompare    = "scenario.compare"
	CompJournalCreate      = "journal.create"
	CompJournalApprove     = "journal.approve"
	CompSalesView          = "sales.view"
	CompSalesCreate        = "sales.create"
	CompAnalyticsDashboard = "analytics.dashboard"
	CompAnalyticsExport    = "analytics.export"
	CompTeamView           = "team.view"
	CompProfileEdit        = "profile.edit"
	CompUsersManage        = "users.manage"
	CompRolesAssign        = "roles.assign"
	CompBackupCreate       = "backup.create"
	CompBackupRestore      = "backup.restore"
	CompIPManage           = "ip.manage"
)

var defaultTable = NewTable(
	ra(ResourceRoles, ActionRead, finance),
	ra(ResourceRoles, ActionCreate, admins),
	ra(ResourceRoles, ActionUpdate, admins),
	ra(ResourceRoles, ActionDelete, admins),

	ra(ResourceUsers, ActionRead, staff),
	ra(ResourceUsers, ActionCreate, admins),
	ra(ResourceUsers, ActionUpdate, admins),
	ra(ResourceUsers, ActionDelete, admins),

	ra(ResourceBudgets, ActionRead, staff),
	ra(ResourceBudgets, ActionCreate, finance),
	ra(ResourceBudgets, ActionUpdate, finance),
	ra(ResourceBudgets, ActionDelete, admins),
	ra(ResourceBudgets, ActionApprove, finance),
	ra(ResourceBudgets, ActionExport, books),

	ra(ResourceForecasts, ActionRead, staff),
	ra(ResourceForecasts, ActionCreate, finance),
	ra(ResourceForecasts, ActionUpdate, finance),
	ra(ResourceForecasts, ActionDelete, admins),
	ra(ResourceForecasts, ActionExport, books),

	ra(ResourceScenarios, ActionRead, books),
	ra(ResourceScenarios, ActionCreate, finance),
	ra(ResourceScenarios, ActionUpdate, finance),
	ra(ResourceScenarios, ActionDelete, finance),

	ra(ResourceJournalEntries, ActionRead, books),
	ra(ResourceJournalEntries, ActionCreate, books),
	ra(ResourceJournalEntries, ActionUpdate, books),
	ra(ResourceJournalEntries, ActionDelete, finance),
	ra(ResourceJournalEntries, ActionApprove, finance),
	ra(ResourceJournalEntries, ActionExport, books),

	ra(ResourceSales, ActionRead, everyone),
	ra(ResourceSales, ActionCreate, books),
	ra(ResourceSales, ActionUpdate, books),
	ra(ResourceSales, ActionDelete, finance),
	ra(ResourceSales, ActionExport, books),

	ra(ResourceAnalytics, ActionRead, staff),
	ra(ResourceAnalytics, ActionExport, finance),

	ra(ResourceBackups, ActionRead, admins),
	ra(ResourceBackups, ActionCreate, admins),
	ra(ResourceBackups, ActionDelete, []domain.Role{domain.RoleSuperAdmin}),

	ra(ResourceIPRestrictions, ActionRead, admins),
	ra(ResourceIPRestrictions, ActionCreate, admins),
	ra(ResourceIPRestrictions, ActionUpdate, admins),
	ra(ResourceIPRestrictions, ActionDelete, admins),

	ra(ResourceProfile, ActionRead, everyone),
	ra(ResourceProfile, ActionUpdate, everyone),

	comp(CompBudgetCreate, finance),
	comp(CompBudgetEdit, finance),
	comp(CompBudgetDelete, admins),
	comp(CompBudgetApprove, finance),
	comp(CompForecastCreate, finance),
	comp(CompScenarioCompare, books),
	comp(CompJournalCreate, books),
	comp(CompJournalApprove, finance),
	comp(CompSalesView, everyone),
	comp(CompSalesCreate, books),
	comp(CompAnalyticsDashboard, staff),
	comp(CompAnalyticsExport, finance),
	comp(CompTeamView, []domain.Role{domain.RoleSuperAdmin, domain.RoleAdmin, domain.RoleFinanceManager, domain.RoleManager}),
	comp(CompProfileEdit, everyone),
	comp(CompUsersManage, admins),
	comp(CompRolesAssign, admins),
	comp(CompBackupCreate, admins),
	comp(CompBackupRestore, admins),
	comp(CompIPManage, admins),
)

// Default returns the console's capability table.
func Default() *Table { return defaultTable }

// IsAllowed evaluates role against the console table.
func IsAllowed(role domain.Role, c Capability) bool {
	return defaultTable.IsAllowed(role, c)
}

// CapabilitiesFor lists every key in the console table granted to role.
func CapabilitiesFor(role domain.Role) []Capability {
	return defaultTable.CapabilitiesFor(role)
}
