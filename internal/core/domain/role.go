package domain

import "strings"

// Role is the closed set of identity categories that drive every access decision.
type Role string

const (
	RoleSuperAdmin     Role = "super_admin"
	RoleAdmin          Role = "admin"
	RoleFinanceManager Role = "finance_manager"
	RoleAccountant     Role = "accountant"
	RoleManager        Role = "manager"
	RoleEmployee       Role = "employee"
)

// RoleDefault is what unrecognised backend values collapse to.
const RoleDefault = RoleEmployee

var roles = []Role{
	RoleSuperAdmin,
	RoleAdmin,
	RoleFinanceManager,
	RoleAccountant,
	RoleManager,
	RoleEmployee,
}

// roleAliases maps every accepted spelling (after folding) to its canonical role.
var roleAliases = map[string]Role{
	"super_admin":     RoleSuperAdmin,
	"superadmin":      RoleSuperAdmin,
	"admin":           RoleAdmin,
	"administrator":   RoleAdmin,
	"finance_manager": RoleFinanceManager,
	"financemanager":  RoleFinanceManager,
	"finance_admin":   RoleFinanceManager,
	"financeadmin":    RoleFinanceManager,
	"finance":         RoleFinanceManager,
	"accountant":      RoleAccountant,
	"manager":         RoleManager,
	"employee":        RoleEmployee,
	"user":            RoleEmployee,
}

// Roles returns every role in the closed set, most privileged first.
func Roles() []Role {
	out := make([]Role, len(roles))
	copy(out, roles)
	return out
}

// NormalizeRole folds a raw role string into the closed set.
//
// Matching is case-insensitive, ignores surrounding whitespace and treats
// '-' and ' ' as '_'. Unknown or empty input yields RoleDefault.
func NormalizeRole(raw string) Role {
	key := strings.ToLower(strings.TrimSpace(raw))
	key = strings.NewReplacer("-", "_", " ", "_").Replace(key)
	if r, ok := roleAliases[key]; ok {
		return r
	}
	return RoleDefault
}

// ParseRole is the strict variant of NormalizeRole used for explicit writes:
// it rejects values that are not a known spelling instead of defaulting.
func ParseRole(raw string) (Role, error) {
	key := strings.ToLower(strings.TrimSpace(raw))
	key = strings.NewReplacer("-", "_", " ", "_").Replace(key)
	r, ok := roleAliases[key]
	if !ok {
		return "", ErrInvalidRole
	}
	return r, nil
}

// Valid reports whether r is a member of the closed set.
func (r Role) Valid() bool {
	for _, known := range roles {
		if r == known {
			return true
		}
	}
	return false
}

func (r Role) String() string { return string(r) }
