package domain

import "testing"

func TestRole_Rank_DeclaredTable(t *testing.T) {
	want := map[Role]int{
		RoleAdmin:         4,
		RolePresident:     3,
		RoleVicePresident: 2,
		RoleSecretary:     1,
		RoleHoldingsWrite: 1,
		RoleHoldingsRead:  1,
		RoleUser:          0,
	}
	for role, rank := range want {
		if got := role.Rank(); got != rank {
			t.Fatalf("rank(%s) = %d, want %d", role, got, rank)
		}
	}
}

func TestRole_Rank_UnknownBelowEverything(t *testing.T) {
	unknown := Role("treasurer")
	if unknown.Valid() {
		t.Fatalf("expected %q to be invalid", unknown)
	}
	for _, r := range Roles() {
		if !HigherRank(r, unknown) {
			t.Fatalf("expected %s to outrank unknown role", r)
		}
	}
}

func TestHigherRank_Irreflexive(t *testing.T) {
	for _, r := range Roles() {
		if HigherRank(r, r) {
			t.Fatalf("HigherRank(%s, %s) must be false", r, r)
		}
	}
}

func TestHigherRank_Transitive(t *testing.T) {
	all := Roles()
	for _, a := range all {
		for _, b := range all {
			for _, c := range all {
				if HigherRank(a, b) && HigherRank(b, c) && !HigherRank(a, c) {
					t.Fatalf("transitivity violated: %s > %s > %s but not %s > %s", a, b, c, a, c)
				}
			}
		}
	}
}

func TestRole_Leadership(t *testing.T) {
	for _, r := range Roles() {
		want := r == RolePresident || r == RoleVicePresident
		if got := r.Leadership(); got != want {
			t.Fatalf("Leadership(%s) = %v, want %v", r, got, want)
		}
	}
}
