package domain

// Permission is a named capability gating a specific operation.
type Permission string

const (
	PermHoldingsRead   Permission = "HOLDINGS_READ"
	PermHoldingsWrite  Permission = "HOLDINGS_WRITE"
	PermAdmin          Permission = "ADMIN"
	PermAdminDashboard Permission = "ADMIN_DASHBOARD"
	PermSecretary      Permission = "SECRETARY"
	PermSuperAdmin     Permission = "SUPER_ADMIN"
	PermLeadership     Permission = "LEADERSHIP"
	PermPresident      Permission = "PRESIDENT"
	PermVicePresident  Permission = "VICE_PRESIDENT"
)

// PermissionTable maps each permission to the set of roles allowed to
// exercise it. Membership is authoritative: a role absent from a key's set
// is denied even when it outranks every listed role.
type PermissionTable map[Permission]map[Role]struct{}

// Allows reports whether role may exercise perm.
func (t PermissionTable) Allows(perm Permission, role Role) bool {
	_, ok := t[perm][role]
	return ok
}

// DefaultPermissions returns the production permission table.
//
// Every content-mutating key (ADMIN, ADMIN_DASHBOARD, SECRETARY,
// HOLDINGS_WRITE) must include admin, president and vice_president so the
// top-rank roles are never locked out of features below them. This is a
// manual invariant, kept honest by a regression test.
func DefaultPermissions() PermissionTable {
	return PermissionTable{
		PermSuperAdmin:     grant(RoleAdmin),
		PermAdmin:          grant(RoleAdmin, RolePresident, RoleVicePresident),
		PermAdminDashboard: grant(RoleAdmin, RolePresident, RoleVicePresident, RoleSecretary),
		PermSecretary:      grant(RoleAdmin, RolePresident, RoleVicePresident, RoleSecretary),
		PermHoldingsWrite:  grant(RoleAdmin, RolePresident, RoleVicePresident, RoleHoldingsWrite),
		PermHoldingsRead: grant(
			RoleAdmin, RolePresident, RoleVicePresident,
			RoleSecretary, RoleHoldingsWrite, RoleHoldingsRead,
		),
		PermLeadership:    grant(RolePresident, RoleVicePresident),
		PermPresident:     grant(RolePresident),
		PermVicePresident: grant(RoleVicePresident),
	}
}

func grant(roles ...Role) map[Role]struct{} {
	set := make(map[Role]struct{}, len(roles))
	for _, r := range roles {
		set[r] = struct{}{}
	}
	return set
}
