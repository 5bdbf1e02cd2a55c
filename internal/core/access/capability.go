// Package access holds the console's static capability table and the
// permission evaluator every gate and route check goes through.
package access

import "strings"

// Capability is a key in the capability table. Coarse keys have the form
// "RESOURCE:ACTION"; fine keys are opaque component ids such as "budget.create".
type Capability string

// Resource names a family of console data.
type Resource string

// Action names an operation on a Resource.
type Action string

const (
	ResourceRoles          Resource = "ROLES"
	ResourceUsers          Resource = "USERS"
	ResourceBudgets        Resource = "BUDGETS"
	ResourceForecasts      Resource = "FORECASTS"
	ResourceScenarios      Resource = "SCENARIOS"
	ResourceJournalEntries Resource = "JOURNAL_ENTRIES"
	ResourceSales          Resource = "SALES"
	ResourceAnalytics      Resource = "ANALYTICS"
	ResourceBackups        Resource = "BACKUPS"
	ResourceIPRestrictions Resource = "IP_RESTRICTIONS"
	ResourceProfile        Resource = "PROFILE"
)

const (
	ActionRead    Action = "READ"
	ActionCreate  Action = "CREATE"
	ActionUpdate  Action = "UPDATE"
	ActionDelete  Action = "DELETE"
	ActionApprove Action = "APPROVE"
	ActionExport  Action = "EXPORT"
)

// ResourceAction builds the coarse key for a (resource, action) pair.
// Both parts are upper-cased so "roles"/"read" and "ROLES"/"READ" address
// the same entry.
func ResourceAction(resource Resource, action Action) Capability {
	return Capability(strings.ToUpper(string(resource)) + ":" + strings.ToUpper(string(action)))
}

// ComponentID builds the fine-grained key for an opaque component id.
func ComponentID(id string) Capability {
	return Capability(strings.TrimSpace(id))
}

func (c Capability) String() string { return string(c) }
