package domain

// Role is the single authority tag attached to each member account.
type Role string

const (
	RoleAdmin         Role = "admin"
	RolePresident     Role = "president"
	RoleVicePresident Role = "vice_president"
	RoleSecretary     Role = "secretary"
	RoleHoldingsWrite Role = "holdings_write"
	RoleHoldingsRead  Role = "holdings_read"
	RoleUser          Role = "user"
)

// roleRanks orders roles for role-mutation eligibility checks only.
// Feature access is decided by the permission table, never by rank.
var roleRanks = map[Role]int{
	RoleAdmin:         4,
	RolePresident:     3,
	RoleVicePresident: 2,
	RoleSecretary:     1,
	RoleHoldingsWrite: 1,
	RoleHoldingsRead:  1,
	RoleUser:          0,
}

// Valid reports whether r is one of the enumerated roles.
func (r Role) Valid() bool {
	_, ok := roleRanks[r]
	return ok
}

// Rank returns the authority level of r. Higher means more authority.
// Unknown roles rank below every valid role.
func (r Role) Rank() int {
	rank, ok := roleRanks[r]
	if !ok {
		return -1
	}
	return rank
}

// Leadership reports whether r is one of the two transferable leadership roles.
func (r Role) Leadership() bool {
	return r == RolePresident || r == RoleVicePresident
}

// HigherRank reports whether a strictly outranks b.
func HigherRank(a, b Role) bool {
	return a.Rank() > b.Rank()
}

// Roles returns every valid role.
func Roles() []Role {
	return []Role{
		RoleAdmin,
		RolePresident,
		RoleVicePresident,
		RoleSecretary,
		RoleHoldingsWrite,
		RoleHoldingsRead,
		RoleUser,
	}
}
