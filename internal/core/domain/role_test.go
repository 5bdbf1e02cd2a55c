package domain

import "testing"

func TestNormalizeRole(t *testing.T) {
	cases := map[string]Role{
		"admin":           RoleAdmin,
		"ADMIN":           RoleAdmin,
		" Administrator ": RoleAdmin,
		"super_admin":     RoleSuperAdmin,
		"Super-Admin":     RoleSuperAdmin,
		"superadmin":      RoleSuperAdmin,
		"finance_manager": RoleFinanceManager,
		"FINANCE_ADMIN":   RoleFinanceManager,
		"finance admin":   RoleFinanceManager,
		"accountant":      RoleAccountant,
		"Manager":         RoleManager,
		"employee":        RoleEmployee,
		"user":            RoleEmployee,
		"":                RoleEmployee,
		"bogus_role":      RoleEmployee,
		"root":            RoleEmployee,
	}
	for raw, want := range cases {
		if got := NormalizeRole(raw); got != want {
			t.Fatalf("NormalizeRole(%q) = %q, want %q", raw, got, want)
		}
	}
}

func TestNormalizeRole_AlwaysValid(t *testing.T) {
	for _, raw := range []string{"", "x", "admin", "💥", "finance__admin"} {
		if r := NormalizeRole(raw); !r.Valid() {
			t.Fatalf("NormalizeRole(%q) produced invalid role %q", raw, r)
		}
	}
}

func TestParseRole(t *testing.T) {
	r, err := ParseRole("Finance-Admin")
	if err != nil || r != RoleFinanceManager {
		t.Fatalf("expected finance_manager, got %q (%v)", r, err)
	}
	if _, err := ParseRole("bogus"); err != ErrInvalidRole {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}

func TestRoles_ReturnsCopy(t *testing.T) {
	rs := Roles()
	if len(rs) != 6 {
		t.Fatalf("expected 6 roles, got %d", len(rs))
	}
	rs[0] = "mutated"
	if Roles()[0] != RoleSuperAdmin {
		t.Fatalf("Roles leaked its backing array")
	}
}

func TestUser_Current(t *testing.T) {
	u := &User{ID: "u1", Username: "ana", Role: Role("FINANCE_ADMIN"), ManagerID: "m1", IsActive: true}
	cu := u.Current()
	if cu.Role != RoleFinanceManager || cu.ID != "u1" || cu.ManagerID != "m1" || !cu.IsActive {
		t.Fatalf("unexpected current user: %+v", cu)
	}
}
